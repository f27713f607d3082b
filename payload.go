package ulpforms

import "strings"

// Payload keys the authorization server expects. Profile fields carry the
// ulp- prefix with dot-paths flattened; username, password, and captcha stay
// unprefixed.
const (
	KeyUsername           = "username"
	KeyPassword           = "password"
	KeyCaptcha            = "captcha"
	KeyFirstName          = "ulp-firstName"
	KeyLastName           = "ulp-lastName"
	KeyDOBMonth           = "ulp-dob-month"
	KeyDOBDay             = "ulp-dob-day"
	KeyDOBYear            = "ulp-dob-year"
	KeyMobile             = "ulp-mobile"
	KeyCity               = "ulp-city"
	KeyState              = "ulp-state"
	KeyZip                = "ulp-zip"
	KeyGender             = "ulp-gender"
	KeyNewsletter         = "ulp-newsletter"
	KeyMarketing          = "ulp-marketing"
	KeyFinancialIncentive = "ulp-financial-incentive"
	KeyTermsAgreement     = "ulp-terms-agreement"
)

// ProfileKey renames a form field for server-side processing: ulp- prefix,
// dot-paths flattened with a dash (dob.month becomes ulp-dob-month).
func ProfileKey(field string) string {
	return "ulp-" + strings.ReplaceAll(field, ".", "-")
}

// SignupPayload maps a validated signup form onto the normalized payload.
// String values are trimmed, absent optional strings become "", and consent
// booleans pass through defaulting to false. The captcha key is included only
// when the screen reports the captcha capability AND a value is present;
// otherwise it is absent entirely. Pure: the same form always yields the same
// payload and the form is never mutated.
func SignupPayload(form SignupForm, captchaAvailable bool) map[string]any {
	payload := map[string]any{
		KeyUsername:           strings.TrimSpace(form.Email),
		KeyPassword:           strings.TrimSpace(form.Password),
		KeyFirstName:          strings.TrimSpace(form.FirstName),
		KeyLastName:           strings.TrimSpace(form.LastName),
		KeyDOBMonth:           form.DOBMonth,
		KeyDOBDay:             form.DOBDay,
		KeyDOBYear:            form.DOBYear,
		KeyMobile:             strings.TrimSpace(form.Mobile),
		KeyCity:               strings.TrimSpace(form.City),
		KeyState:              form.State,
		KeyZip:                strings.TrimSpace(form.Zip),
		KeyGender:             form.Gender,
		KeyNewsletter:         form.Newsletter,
		KeyMarketing:          form.Marketing,
		KeyFinancialIncentive: form.FinancialIncentive,
		KeyTermsAgreement:     form.TermsAgreement,
	}

	if captcha, ok := captchaValue(form.Captcha, captchaAvailable); ok {
		payload[KeyCaptcha] = captcha
	}

	return payload
}

// LoginOptions maps the login form values onto the submission options.
func LoginOptions(email, password, captcha string, captchaAvailable bool) map[string]any {
	options := map[string]any{
		KeyUsername: strings.TrimSpace(email),
		KeyPassword: strings.TrimSpace(password),
	}

	if v, ok := captchaValue(captcha, captchaAvailable); ok {
		options[KeyCaptcha] = v
	}

	return options
}

// LoginIDOptions maps the identifier-first login values onto the submission
// options.
func LoginIDOptions(identifier, captcha string, captchaAvailable bool) map[string]any {
	options := map[string]any{
		KeyUsername: strings.TrimSpace(identifier),
	}

	if v, ok := captchaValue(captcha, captchaAvailable); ok {
		options[KeyCaptcha] = v
	}

	return options
}

// captchaValue applies the omission rule: no capability or a blank value
// means no captcha key at all.
func captchaValue(captcha string, captchaAvailable bool) (string, bool) {
	if !captchaAvailable {
		return "", false
	}
	trimmed := strings.TrimSpace(captcha)
	if trimmed == "" {
		return "", false
	}
	return trimmed, true
}
