package forms

import (
	"fmt"
	"regexp"
	"strings"
	"unicode/utf8"
)

// FieldError points at the first form field that failed validation
// together with the Arabic message shown next to it.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

func (e *FieldError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

var (
	emailRx = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)
	phoneRx = regexp.MustCompile(`^(\+9665\d{8}|05\d{8})$`)
)

const minPasswordLength = 8

func required(field, value, label string) *FieldError {
	if strings.TrimSpace(value) == "" {
		return &FieldError{Field: field, Message: label + " مطلوب"}
	}
	return nil
}

func validEmail(field, value string) *FieldError {
	if !emailRx.MatchString(value) {
		return &FieldError{Field: field, Message: "البريد الإلكتروني غير صالح"}
	}
	return nil
}

func validPhone(field, value string) *FieldError {
	cleaned := strings.ReplaceAll(value, " ", "")
	if !phoneRx.MatchString(cleaned) {
		return &FieldError{Field: field, Message: "رقم الجوال غير صالح"}
	}
	return nil
}

func validPassword(field, value string) *FieldError {
	if utf8.RuneCountInString(value) < minPasswordLength {
		return &FieldError{Field: field, Message: "كلمة المرور يجب أن تكون 8 أحرف على الأقل"}
	}
	return nil
}

func passwordsMatch(field, password, confirmation string) *FieldError {
	if password != confirmation {
		return &FieldError{Field: field, Message: "كلمتا المرور غير متطابقتين"}
	}
	return nil
}

// firstError runs checks in declaration order and reports the first
// failure, so the user fixes one problem at a time.
func firstError(checks ...func() *FieldError) error {
	for _, check := range checks {
		if err := check(); err != nil {
			return err
		}
	}
	return nil
}
