package ulpforms

import (
	"errors"
	"testing"
)

func validSignupForm() SignupForm {
	return SignupForm{
		Email:           "jane.roe@example.com",
		ConfirmEmail:    "jane.roe@example.com",
		Password:        "Abc123@x",
		ConfirmPassword: "Abc123@x",
		FirstName:       "Jane",
		LastName:        "Roe",
		DOBMonth:        "4",
		DOBDay:          "12",
		DOBYear:         "1990",
		Mobile:          "+1 (555) 123-4567",
		City:            "Austin",
		State:           "TX",
		Zip:             "78701",
		Gender:          "female",
		TermsAgreement:  true,
	}
}

func TestSignupFormValidateAcceptsCompleteForm(t *testing.T) {
	t.Parallel()

	form := validSignupForm()
	if err := form.Validate(false); err != nil {
		t.Fatalf("expected valid form, got %v", err)
	}
}

func TestSignupFormEmailRules(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		email string
		want  string
	}{
		{"empty", "", "Email is required"},
		{"no at sign", "janeexample.com", "Invalid email address"},
		{"no tld", "jane@example", "Invalid email address"},
		{"single letter tld", "jane@example.c", "Invalid email address"},
		{"uppercase ok", "JANE@EXAMPLE.COM", ""},
		{"plus tag ok", "jane+tag@sub.example.co", ""},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			form := validSignupForm()
			form.Email = tt.email
			form.ConfirmEmail = tt.email
			got := FormatValidationErrorToMap(form.Validate(false))[FieldEmail]
			if got != tt.want {
				t.Fatalf("email %q: got %q, want %q", tt.email, got, tt.want)
			}
		})
	}
}

func TestSignupFormPasswordLengthBounds(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		password string
		want     string
	}{
		{"seven chars rejected", "Ab1@xyz", "Password must be at least 8 characters"},
		{"eight chars accepted", "Ab1@wxyz", ""},
		{"twenty chars accepted", "Ab1@wxyzAb1@wxyzAb1@", ""},
		{"twenty one chars rejected", "Ab1@wxyzAb1@wxyzAb1@w", "Password must be at most 20 characters"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			form := validSignupForm()
			form.Password = tt.password
			form.ConfirmPassword = tt.password
			got := FormatValidationErrorToMap(form.Validate(false))[FieldPassword]
			if got != tt.want {
				t.Fatalf("password %q: got %q, want %q", tt.password, got, tt.want)
			}
		})
	}
}

func TestSignupFormCrossFieldRules(t *testing.T) {
	t.Parallel()

	t.Run("emails must match", func(t *testing.T) {
		t.Parallel()
		form := validSignupForm()
		form.ConfirmEmail = "other@example.com"
		got := FormatValidationErrorToMap(form.Validate(false))[FieldConfirmEmail]
		if got != "Emails do not match" {
			t.Fatalf("got %q", got)
		}
	})

	t.Run("passwords must match", func(t *testing.T) {
		t.Parallel()
		form := validSignupForm()
		form.ConfirmPassword = "Different1@"
		got := FormatValidationErrorToMap(form.Validate(false))[FieldConfirmPassword]
		if got != "Passwords do not match" {
			t.Fatalf("got %q", got)
		}
	})

	t.Run("confirm password required", func(t *testing.T) {
		t.Parallel()
		form := validSignupForm()
		form.ConfirmPassword = ""
		got := FormatValidationErrorToMap(form.Validate(false))[FieldConfirmPassword]
		if got != "Please confirm your password" {
			t.Fatalf("got %q", got)
		}
	})

	t.Run("changing email invalidates match", func(t *testing.T) {
		t.Parallel()
		form := validSignupForm()
		if err := form.Validate(false); err != nil {
			t.Fatalf("baseline should pass: %v", err)
		}
		form.Email = "changed@example.com"
		got := FormatValidationErrorToMap(form.Validate(false))[FieldConfirmEmail]
		if got != "Emails do not match" {
			t.Fatalf("got %q", got)
		}
	})
}

func TestSignupFormFieldMessages(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		mutate func(*SignupForm)
		field  string
		want   string
	}{
		{"first name required", func(f *SignupForm) { f.FirstName = "" }, FieldFirstName, "First name is required"},
		{"last name required", func(f *SignupForm) { f.LastName = "" }, FieldLastName, "Last name is required"},
		{"month required", func(f *SignupForm) { f.DOBMonth = "" }, FieldDOBMonth, "Month is required"},
		{"day required", func(f *SignupForm) { f.DOBDay = "" }, FieldDOBDay, "Day is required"},
		{"year required", func(f *SignupForm) { f.DOBYear = "" }, FieldDOBYear, "Year is required"},
		{"two digit year", func(f *SignupForm) { f.DOBYear = "90" }, FieldDOBYear, "Please enter a valid 4-digit year"},
		{"phone charset", func(f *SignupForm) { f.Mobile = "555-CALL-NOW" }, FieldMobile, "Please enter a valid phone number"},
		{"city required", func(f *SignupForm) { f.City = "" }, FieldCity, "City is required"},
		{"state outside set", func(f *SignupForm) { f.State = "Texas" }, FieldState, "State is required"},
		{"zip required", func(f *SignupForm) { f.Zip = "" }, FieldZip, "Zip or Postal Code is required"},
		{"gender outside set", func(f *SignupForm) { f.Gender = "unknown" }, FieldGender, "Gender is required"},
		{"terms required", func(f *SignupForm) { f.TermsAgreement = false }, FieldTermsAgreement, "Terms agreement is required"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			form := validSignupForm()
			tt.mutate(&form)
			got := FormatValidationErrorToMap(form.Validate(false))[tt.field]
			if got != tt.want {
				t.Fatalf("got %q, want %q", got, tt.want)
			}
		})
	}
}

func TestSignupFormCaptchaGate(t *testing.T) {
	t.Parallel()

	form := validSignupForm()

	if err := form.Validate(false); err != nil {
		t.Fatalf("captcha must not be gated without the capability: %v", err)
	}

	got := FormatValidationErrorToMap(form.Validate(true))[FieldCaptcha]
	if got != "Please complete the CAPTCHA" {
		t.Fatalf("got %q", got)
	}

	form.Captcha = "a1b2c3"
	if err := form.Validate(true); err != nil {
		t.Fatalf("captcha value should satisfy the gate: %v", err)
	}
}

func TestLoginFormValidate(t *testing.T) {
	t.Parallel()

	form := LoginForm{Email: "jane@example.com", Password: "Abc123@x"}
	if err := form.Validate(false); err != nil {
		t.Fatalf("expected valid login form: %v", err)
	}

	form.Email = ""
	got := FormatValidationErrorToMap(form.Validate(false))[FieldEmail]
	if got != "Email or Username is required" {
		t.Fatalf("got %q", got)
	}
}

func TestLoginIDFormValidate(t *testing.T) {
	t.Parallel()

	form := LoginIDForm{Email: "jane@example.com"}
	if err := form.Validate(false); err != nil {
		t.Fatalf("expected valid login-id form: %v", err)
	}

	form.Email = "not-an-email"
	got := FormatValidationErrorToMap(form.Validate(false))[FieldEmail]
	if got != "Invalid email address" {
		t.Fatalf("got %q", got)
	}
}

func TestValidateSignupField(t *testing.T) {
	t.Parallel()

	form := validSignupForm()
	form.ConfirmEmail = "other@example.com"

	if got := ValidateSignupField(form, FieldConfirmEmail, false); got != "Emails do not match" {
		t.Fatalf("got %q", got)
	}
	if got := ValidateSignupField(form, FieldEmail, false); got != "" {
		t.Fatalf("email should be valid, got %q", got)
	}
}

func TestStrictMobile(t *testing.T) {
	t.Parallel()

	rule := StrictMobile("US")

	if err := rule("6502530000"); err != nil {
		t.Fatalf("valid US number rejected: %v", err)
	}
	if err := rule("12"); err == nil {
		t.Fatal("expected short number to be rejected")
	}
	if err := rule(""); err != nil {
		t.Fatalf("empty value must pass, required owns that case: %v", err)
	}
}

func TestFormatValidationErrorToMap(t *testing.T) {
	t.Parallel()

	if got := FormatValidationErrorToMap(nil); len(got) != 0 {
		t.Fatalf("nil error must map to empty, got %v", got)
	}

	got := FormatValidationErrorToMap(errors.New("boom"))
	if got["form"] != "boom" {
		t.Fatalf("non-field error should land under form, got %v", got)
	}
}
