package ulpforms

// fieldDependents is the explicit cross-field dependency table: when a field
// changes, its dependents are revalidated against the new live value.
var fieldDependents = map[string][]string{
	FieldEmail:    {FieldConfirmEmail},
	FieldPassword: {FieldConfirmPassword},
	FieldDOBMonth: {FieldDOBDay, FieldDOBYear},
	FieldDOBDay:   {FieldDOBYear},
	FieldDOBYear:  {FieldDOBDay},
}

// FormSession owns the value snapshot of one active signup form and re-runs
// validators as values change, pushing inline messages through the bound
// FieldBinder. One session per form instance; there is no concurrent writer,
// so no locking.
type FormSession struct {
	form            SignupForm
	binder          FieldBinder
	captchaRequired bool
	errors          map[string]string
	touched         map[string]bool
	onStrength      func(PasswordStrength)
}

// FormSessionOption customizes a FormSession.
type FormSessionOption func(*FormSession)

// WithStrengthObserver registers a callback invoked with the recomputed
// password strength readout whenever the password or email value changes.
func WithStrengthObserver(fn func(PasswordStrength)) FormSessionOption {
	return func(s *FormSession) {
		s.onStrength = fn
	}
}

// NewFormSession creates a session bound to the given binder. captchaRequired
// reflects the screen's captcha capability.
func NewFormSession(binder FieldBinder, captchaRequired bool, opts ...FormSessionOption) *FormSession {
	s := &FormSession{
		binder:          binder,
		captchaRequired: captchaRequired,
		errors:          map[string]string{},
		touched:         map[string]bool{},
	}
	for _, opt := range opts {
		if opt != nil {
			opt(s)
		}
	}
	return s
}

// Set records a string field change, revalidates the field and its
// dependents, and pushes the resulting messages through the binder.
func (s *FormSession) Set(field, value string) {
	if !s.setString(field, value) {
		return
	}

	s.touched[field] = true
	s.validateField(field)
	// dependents are only revalidated once they have been entered themselves
	for _, dep := range fieldDependents[field] {
		if s.touched[dep] {
			s.validateField(dep)
		}
	}

	if s.onStrength != nil && (field == FieldPassword || field == FieldEmail) {
		s.onStrength(EvaluatePasswordStrength(s.form.Password, s.form.Email))
	}
}

// SetBool records a consent checkbox change.
func (s *FormSession) SetBool(field string, value bool) {
	switch field {
	case FieldNewsletter:
		s.form.Newsletter = value
	case FieldMarketing:
		s.form.Marketing = value
	case FieldFinancial:
		s.form.FinancialIncentive = value
	case FieldTermsAgreement:
		s.form.TermsAgreement = value
	default:
		return
	}
	s.touched[field] = true
	s.validateField(field)
}

// Sync pulls every string field's current value from the binder and
// revalidates the whole form. Useful when the UI owns the values and the
// session is attached late.
func (s *FormSession) Sync() {
	for _, field := range stringFields {
		s.setString(field, s.binder.GetValue(field))
		s.touched[field] = true
	}
	for _, field := range stringFields {
		s.validateField(field)
	}
}

// Form returns a copy of the current value snapshot.
func (s *FormSession) Form() SignupForm {
	return s.form
}

// Errors returns a copy of the current per-field messages. Fields that are
// currently valid are absent.
func (s *FormSession) Errors() map[string]string {
	out := make(map[string]string, len(s.errors))
	for k, v := range s.errors {
		out[k] = v
	}
	return out
}

// Valid reports whether every required validator passes for the current
// values. Submission must not proceed while this is false.
func (s *FormSession) Valid() bool {
	return len(FormatValidationErrorToMap(s.form.Validate(s.captchaRequired))) == 0
}

// Strength returns the current password strength readout.
func (s *FormSession) Strength() PasswordStrength {
	return EvaluatePasswordStrength(s.form.Password, s.form.Email)
}

var stringFields = []string{
	FieldEmail, FieldConfirmEmail, FieldPassword, FieldConfirmPassword,
	FieldFirstName, FieldLastName, FieldDOBMonth, FieldDOBDay, FieldDOBYear,
	FieldMobile, FieldCity, FieldState, FieldZip, FieldGender, FieldCaptcha,
}

func (s *FormSession) setString(field, value string) bool {
	switch field {
	case FieldEmail:
		s.form.Email = value
	case FieldConfirmEmail:
		s.form.ConfirmEmail = value
	case FieldPassword:
		s.form.Password = value
	case FieldConfirmPassword:
		s.form.ConfirmPassword = value
	case FieldFirstName:
		s.form.FirstName = value
	case FieldLastName:
		s.form.LastName = value
	case FieldDOBMonth:
		s.form.DOBMonth = value
	case FieldDOBDay:
		s.form.DOBDay = value
	case FieldDOBYear:
		s.form.DOBYear = value
	case FieldMobile:
		s.form.Mobile = value
	case FieldCity:
		s.form.City = value
	case FieldState:
		s.form.State = value
	case FieldZip:
		s.form.Zip = value
	case FieldGender:
		s.form.Gender = value
	case FieldCaptcha:
		s.form.Captcha = value
	default:
		return false
	}
	return true
}

func (s *FormSession) validateField(field string) {
	msg := ValidateSignupField(s.form, field, s.captchaRequired)
	if msg == "" {
		delete(s.errors, field)
	} else {
		s.errors[field] = msg
	}
	if s.binder != nil {
		s.binder.SetError(field, msg)
	}
}
