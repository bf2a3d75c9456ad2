package forms

import (
	"errors"
	"testing"
)

func fieldOf(t *testing.T, err error) string {
	t.Helper()
	var fe *FieldError
	if !errors.As(err, &fe) {
		t.Fatalf("expected *FieldError, got %T: %v", err, err)
	}
	return fe.Field
}

func TestSignUpFormValid(t *testing.T) {
	f := SignUpForm{
		Name:            "سالم العتيبي",
		Phone:           "0551234567",
		Email:           "salem@example.com",
		Password:        "verysecret1",
		ConfirmPassword: "verysecret1",
		Role:            "buyer",
	}
	if err := f.Validate(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestSignUpFormStopsAtFirstFailure(t *testing.T) {
	f := SignUpForm{
		Phone:    "not-a-phone",
		Email:    "broken",
		Password: "short",
	}
	if field := fieldOf(t, f.Validate()); field != "name" {
		t.Fatalf("first failing field = %q, want name", field)
	}

	f.Name = "سالم"
	if field := fieldOf(t, f.Validate()); field != "phone" {
		t.Fatalf("first failing field = %q, want phone", field)
	}
}

func TestSignUpFormPasswordRules(t *testing.T) {
	f := SignUpForm{
		Name:            "سالم",
		Phone:           "+966551234567",
		Email:           "salem@example.com",
		Password:        "1234567",
		ConfirmPassword: "1234567",
	}
	if field := fieldOf(t, f.Validate()); field != "password" {
		t.Fatalf("seven characters should fail on password, got %q", field)
	}

	f.Password = "12345678"
	f.ConfirmPassword = "12345679"
	if field := fieldOf(t, f.Validate()); field != "confirm_password" {
		t.Fatalf("mismatch should fail on confirm_password, got %q", field)
	}

	f.ConfirmPassword = "12345678"
	if err := f.Validate(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestSignUpFormUnknownRole(t *testing.T) {
	f := SignUpForm{
		Name:            "سالم",
		Phone:           "0551234567",
		Email:           "salem@example.com",
		Password:        "verysecret1",
		ConfirmPassword: "verysecret1",
		Role:            "landlord",
	}
	if field := fieldOf(t, f.Validate()); field != "role" {
		t.Fatalf("unknown role should fail on role, got %q", field)
	}
}

func TestSignInForm(t *testing.T) {
	f := SignInForm{Email: "salem@example.com", Password: "x"}
	if err := f.Validate(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	f = SignInForm{Email: "nope", Password: "x"}
	if field := fieldOf(t, f.Validate()); field != "email" {
		t.Fatalf("bad email should fail on email, got %q", field)
	}
}

func TestResetConfirmForm(t *testing.T) {
	f := ResetConfirmForm{
		Email:           "salem@example.com",
		Code:            "204518",
		NewPassword:     "freshsecret",
		ConfirmPassword: "freshsecret",
	}
	if err := f.Validate(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	f.ConfirmPassword = "other"
	if field := fieldOf(t, f.Validate()); field != "confirm_password" {
		t.Fatalf("mismatch should fail on confirm_password, got %q", field)
	}
}

func TestPropertyForm(t *testing.T) {
	f := PropertyForm{Title: "فيلا مودرن", Type: "villa", City: "الرياض", Price: 1200000}
	if err := f.Validate(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	f.Type = "castle"
	if field := fieldOf(t, f.Validate()); field != "type" {
		t.Fatalf("unknown type should fail on type, got %q", field)
	}

	f.Type = "villa"
	f.Price = 0
	if field := fieldOf(t, f.Validate()); field != "price" {
		t.Fatalf("zero price should fail on price, got %q", field)
	}
}

func TestBidForm(t *testing.T) {
	cases := []struct {
		name      string
		form      BidForm
		wantField string
		wantValue float64
	}{
		{"valid", BidForm{Amount: "155000", MinAllowed: 155000}, "", 155000},
		{"above minimum", BidForm{Amount: "200000", MinAllowed: 155000}, "", 200000},
		{"empty", BidForm{Amount: ""}, "amount", 0},
		{"not numeric", BidForm{Amount: "ألف ريال"}, "amount", 0},
		{"negative", BidForm{Amount: "-5"}, "amount", 0},
		{"below minimum", BidForm{Amount: "154999", MinAllowed: 155000}, "amount", 0},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.form.Validate()
			if tc.wantField == "" {
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				if tc.form.Value() != tc.wantValue {
					t.Fatalf("Value() = %v, want %v", tc.form.Value(), tc.wantValue)
				}
				return
			}
			if field := fieldOf(t, err); field != tc.wantField {
				t.Fatalf("failing field = %q, want %q", field, tc.wantField)
			}
		})
	}
}

func TestPhoneFormats(t *testing.T) {
	valid := []string{"0551234567", "+966551234567", "055 123 4567"}
	for _, phone := range valid {
		if err := validPhone("phone", phone); err != nil {
			t.Fatalf("phone %q should be valid: %v", phone, err)
		}
	}

	invalid := []string{"123", "9665512345678", "05512345678", "abc"}
	for _, phone := range invalid {
		if err := validPhone("phone", phone); err == nil {
			t.Fatalf("phone %q should be invalid", phone)
		}
	}
}
