package ulpforms

import (
	"errors"
	"regexp"

	validation "github.com/go-ozzo/ozzo-validation"
	"github.com/nyaruka/phonenumbers"
)

// Field names as they appear on the wire and in validation error maps.
const (
	FieldEmail           = "email"
	FieldConfirmEmail    = "confirmEmail"
	FieldPassword        = "password"
	FieldConfirmPassword = "confirmPassword"
	FieldFirstName       = "firstName"
	FieldLastName        = "lastName"
	FieldDOBMonth        = "dob.month"
	FieldDOBDay          = "dob.day"
	FieldDOBYear         = "dob.year"
	FieldMobile          = "mobile"
	FieldCity            = "city"
	FieldState           = "state"
	FieldZip             = "zip"
	FieldGender          = "gender"
	FieldCaptcha         = "captcha"
	FieldNewsletter      = "newsletter"
	FieldMarketing       = "marketing"
	FieldFinancial       = "financialIncentive"
	FieldTermsAgreement  = "termsAgreement"
)

var (
	// RFC-lite: ASCII local part, letters/digits/dot/hyphen domain, 2+ letter TLD.
	emailPattern = regexp.MustCompile(`^(?i)[A-Z0-9._%+-]+@[A-Z0-9.-]+\.[A-Z]{2,}$`)
	phonePattern = regexp.MustCompile(`^[0-9+()\-.\s]+$`)
	yearPattern  = regexp.MustCompile(`^\d{4}$`)
)

// SignupForm carries the raw values collected from the signup screen. It is
// created fresh per submission attempt and discarded after the payload is
// built; validation never mutates it.
type SignupForm struct {
	Email              string `form:"email" json:"email"`
	ConfirmEmail       string `form:"confirmEmail" json:"confirmEmail"`
	Password           string `form:"password" json:"password"`
	ConfirmPassword    string `form:"confirmPassword" json:"confirmPassword"`
	FirstName          string `form:"firstName" json:"firstName"`
	LastName           string `form:"lastName" json:"lastName"`
	DOBMonth           string `form:"dob.month" json:"dob.month"`
	DOBDay             string `form:"dob.day" json:"dob.day"`
	DOBYear            string `form:"dob.year" json:"dob.year"`
	Mobile             string `form:"mobile" json:"mobile"`
	City               string `form:"city" json:"city"`
	State              string `form:"state" json:"state"`
	Zip                string `form:"zip" json:"zip"`
	Gender             string `form:"gender" json:"gender"`
	Captcha            string `form:"captcha" json:"captcha"`
	Newsletter         bool   `form:"newsletter" json:"newsletter"`
	Marketing          bool   `form:"marketing" json:"marketing"`
	FinancialIncentive bool   `form:"financialIncentive" json:"financialIncentive"`
	TermsAgreement     bool   `form:"termsAgreement" json:"termsAgreement"`
}

// Validate runs every field rule. captchaRequired reflects the screen's
// captcha capability: the captcha field is only gated when the upstream
// reports the capability as enabled.
func (r SignupForm) Validate(captchaRequired bool) error {
	fields := []*validation.FieldRules{
		validation.Field(&r.FirstName,
			validation.Required.Error("First name is required"),
		),
		validation.Field(&r.LastName,
			validation.Required.Error("Last name is required"),
		),
		validation.Field(&r.Email,
			validation.Required.Error("Email is required"),
			validation.Match(emailPattern).Error("Invalid email address"),
		),
		validation.Field(&r.ConfirmEmail,
			validation.Required.Error("Confirm Email is required"),
			validation.Match(emailPattern).Error("Invalid email address"),
			validation.By(ValidateStringEquals(r.Email, "Emails do not match")),
		),
		validation.Field(&r.Mobile,
			validation.Required.Error("Mobile Number is required"),
			validation.Match(phonePattern).Error("Please enter a valid phone number"),
		),
		validation.Field(&r.DOBMonth,
			validation.Required.Error("Month is required"),
		),
		validation.Field(&r.DOBDay,
			validation.Required.Error("Day is required"),
			validation.By(r.validateDOB),
		),
		validation.Field(&r.DOBYear,
			validation.Required.Error("Year is required"),
			validation.Match(yearPattern).Error("Please enter a valid 4-digit year"),
			validation.By(r.validateDOB),
		),
		validation.Field(&r.City,
			validation.Required.Error("City is required"),
		),
		validation.Field(&r.State,
			validation.Required.Error("State is required"),
			validation.In(stateValues()...).Error("State is required"),
		),
		validation.Field(&r.Zip,
			validation.Required.Error("Zip or Postal Code is required"),
		),
		validation.Field(&r.Gender,
			validation.Required.Error("Gender is required"),
			validation.In(genderValues()...).Error("Gender is required"),
		),
		validation.Field(&r.Password,
			validation.Required.Error("Password is required"),
			validation.RuneLength(8, 0).Error("Password must be at least 8 characters"),
			validation.RuneLength(0, 20).Error("Password must be at most 20 characters"),
		),
		validation.Field(&r.ConfirmPassword,
			validation.Required.Error("Please confirm your password"),
			validation.By(ValidateStringEquals(r.Password, "Passwords do not match")),
		),
		validation.Field(&r.TermsAgreement,
			validation.Required.Error("Terms agreement is required"),
		),
	}

	if captchaRequired {
		fields = append(fields, validation.Field(&r.Captcha,
			validation.Required.Error("Please complete the CAPTCHA"),
			validation.RuneLength(0, 15).Error("CAPTCHA too long"),
		))
	}

	return validation.ValidateStruct(&r, fields...)
}

func (r SignupForm) validateDOB(any) error {
	if msg := ValidateDateOfBirth(r.DOBMonth, r.DOBDay, r.DOBYear); msg != "" {
		return errors.New(msg)
	}
	return nil
}

// LoginForm carries the raw values collected from the login screen.
type LoginForm struct {
	Email    string `form:"email" json:"email"`
	Password string `form:"password" json:"password"`
	Captcha  string `form:"captcha" json:"captcha"`
}

// Validate will run validation rules
func (r LoginForm) Validate(captchaRequired bool) error {
	fields := []*validation.FieldRules{
		validation.Field(&r.Email,
			validation.Required.Error("Email or Username is required"),
			validation.Match(emailPattern).Error("Invalid email address"),
		),
		validation.Field(&r.Password,
			validation.Required.Error("Password is required"),
			validation.RuneLength(8, 0).Error("Password must be at least 8 characters"),
			validation.RuneLength(0, 20).Error("Password must be at most 20 characters"),
		),
	}

	if captchaRequired {
		fields = append(fields, validation.Field(&r.Captcha,
			validation.Required.Error("Please complete the CAPTCHA"),
			validation.RuneLength(0, 15).Error("CAPTCHA too long"),
		))
	}

	return validation.ValidateStruct(&r, fields...)
}

// LoginIDForm carries the identifier-first login values.
type LoginIDForm struct {
	Email   string `form:"email" json:"email"`
	Captcha string `form:"captcha" json:"captcha"`
}

// Validate will run validation rules
func (r LoginIDForm) Validate(captchaRequired bool) error {
	fields := []*validation.FieldRules{
		validation.Field(&r.Email,
			validation.Required.Error("Email or Username is required"),
			validation.Match(emailPattern).Error("Invalid email address"),
		),
	}

	if captchaRequired {
		fields = append(fields, validation.Field(&r.Captcha,
			validation.Required.Error("Please complete the CAPTCHA"),
			validation.RuneLength(0, 15).Error("CAPTCHA too long"),
		))
	}

	return validation.ValidateStruct(&r, fields...)
}

// ValidateSignupField validates a single field and returns its message, or ""
// when the field is valid. Cross-field rules read the live counterpart values
// held by form.
func ValidateSignupField(form SignupForm, field string, captchaRequired bool) string {
	return FormatValidationErrorToMap(form.Validate(captchaRequired))[field]
}

// ValidateStringEquals will check that the value matches the live counterpart
// value, reporting message on mismatch.
func ValidateStringEquals(counterpart, message string) validation.RuleFunc {
	return func(value any) error {
		s, _ := value.(string)
		if s != counterpart {
			return errors.New(message)
		}
		return nil
	}
}

// StrictMobile parses the number for the given region and rejects numbers the
// region's numbering plan considers invalid. Opt-in, stricter than the
// character-set gate applied by Validate.
func StrictMobile(region string) validation.RuleFunc {
	return func(value any) error {
		s, _ := value.(string)
		if s == "" {
			return nil
		}
		num, err := phonenumbers.Parse(s, region)
		if err != nil || !phonenumbers.IsValidNumber(num) {
			return errors.New("Please enter a valid phone number")
		}
		return nil
	}
}

// FormatValidationErrorToMap flattens a validation error set into a
// field-to-message map. Nested error sets are flattened with dot paths.
func FormatValidationErrorToMap(err error) map[string]string {
	out := map[string]string{}
	if err == nil {
		return out
	}

	var verrs validation.Errors
	if errors.As(err, &verrs) {
		flattenValidationErrors("", verrs, out)
		return out
	}

	out["form"] = err.Error()
	return out
}

func flattenValidationErrors(prefix string, errs validation.Errors, out map[string]string) {
	for name, err := range errs {
		if err == nil {
			continue
		}
		key := name
		if prefix != "" {
			key = prefix + "." + name
		}
		var nested validation.Errors
		if errors.As(err, &nested) {
			flattenValidationErrors(key, nested, out)
			continue
		}
		out[key] = err.Error()
	}
}
