package forms

import "mazadWeb/internal/models"

type SignUpForm struct {
	Name            string `json:"name"`
	Phone           string `json:"phone"`
	Email           string `json:"email"`
	Password        string `json:"password"`
	ConfirmPassword string `json:"confirm_password"`
	Role            string `json:"role"`
	City            string `json:"city"`
}

func (f *SignUpForm) Validate() error {
	return firstError(
		func() *FieldError { return required("name", f.Name, "الاسم") },
		func() *FieldError { return required("phone", f.Phone, "رقم الجوال") },
		func() *FieldError { return validPhone("phone", f.Phone) },
		func() *FieldError { return required("email", f.Email, "البريد الإلكتروني") },
		func() *FieldError { return validEmail("email", f.Email) },
		func() *FieldError { return required("password", f.Password, "كلمة المرور") },
		func() *FieldError { return validPassword("password", f.Password) },
		func() *FieldError { return passwordsMatch("confirm_password", f.Password, f.ConfirmPassword) },
		func() *FieldError {
			if f.Role != "" && !models.Role(f.Role).Known() {
				return &FieldError{Field: "role", Message: "نوع الحساب غير معروف"}
			}
			return nil
		},
	)
}

type SignInForm struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (f *SignInForm) Validate() error {
	return firstError(
		func() *FieldError { return required("email", f.Email, "البريد الإلكتروني") },
		func() *FieldError { return validEmail("email", f.Email) },
		func() *FieldError { return required("password", f.Password, "كلمة المرور") },
	)
}

type ResetRequestForm struct {
	Email string `json:"email"`
}

func (f *ResetRequestForm) Validate() error {
	return firstError(
		func() *FieldError { return required("email", f.Email, "البريد الإلكتروني") },
		func() *FieldError { return validEmail("email", f.Email) },
	)
}

type ResetVerifyForm struct {
	Email string `json:"email"`
	Code  string `json:"code"`
}

func (f *ResetVerifyForm) Validate() error {
	return firstError(
		func() *FieldError { return required("email", f.Email, "البريد الإلكتروني") },
		func() *FieldError { return validEmail("email", f.Email) },
		func() *FieldError { return required("code", f.Code, "رمز التحقق") },
	)
}

type ResetConfirmForm struct {
	Email           string `json:"email"`
	Code            string `json:"code"`
	NewPassword     string `json:"new_password"`
	ConfirmPassword string `json:"confirm_password"`
}

func (f *ResetConfirmForm) Validate() error {
	return firstError(
		func() *FieldError { return required("email", f.Email, "البريد الإلكتروني") },
		func() *FieldError { return validEmail("email", f.Email) },
		func() *FieldError { return required("code", f.Code, "رمز التحقق") },
		func() *FieldError { return required("new_password", f.NewPassword, "كلمة المرور الجديدة") },
		func() *FieldError { return validPassword("new_password", f.NewPassword) },
		func() *FieldError { return passwordsMatch("confirm_password", f.NewPassword, f.ConfirmPassword) },
	)
}

type ProfileForm struct {
	Name  string `json:"name"`
	Phone string `json:"phone"`
	City  string `json:"city"`
}

func (f *ProfileForm) Validate() error {
	return firstError(
		func() *FieldError { return required("name", f.Name, "الاسم") },
		func() *FieldError {
			if f.Phone == "" {
				return nil
			}
			return validPhone("phone", f.Phone)
		},
	)
}
