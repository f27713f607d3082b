package ulpforms

// TransactionError is one entry of the upstream transaction error list.
// Errors without a field name are general, top-of-form alerts; field-scoped
// errors are merged into that field's inline message by the renderer.
type TransactionError struct {
	Field   string `json:"field,omitempty"`
	Message string `json:"message"`
}

// Connection identifies an authentication method or identity provider,
// e.g. "password", "email", or a social provider name.
type Connection struct {
	Name        string `json:"name"`
	DisplayName string `json:"display_name,omitempty"`
	Strategy    string `json:"strategy,omitempty"`
}

// Transaction is the read-only snapshot of the current auth attempt as
// reported by the upstream collaborator.
type Transaction struct {
	State                   string             `json:"state"`
	Errors                  []TransactionError `json:"errors,omitempty"`
	IsSignupEnabled         bool               `json:"is_signup_enabled"`
	IsForgotPasswordEnabled bool               `json:"is_forgot_password_enabled"`
	IsPasskeyEnabled        bool               `json:"is_passkey_enabled"`
	AlternateConnections    []Connection       `json:"alternate_connections,omitempty"`
}

// Screen is the read-only snapshot of the current screen's display data.
type Screen struct {
	Name               string            `json:"name"`
	Texts              map[string]string `json:"texts,omitempty"`
	SignupLink         string            `json:"signup_link,omitempty"`
	LoginLink          string            `json:"login_link,omitempty"`
	ResetPasswordLink  string            `json:"reset_password_link,omitempty"`
	CaptchaImage       string            `json:"captcha_image,omitempty"`
	IsCaptchaAvailable bool              `json:"is_captcha_available"`
}

// GeneralErrors returns the errors with no field association.
func (t *Transaction) GeneralErrors() []TransactionError {
	if t == nil {
		return nil
	}
	var out []TransactionError
	for _, e := range t.Errors {
		if e.Field == "" {
			out = append(out, e)
		}
	}
	return out
}

// FieldErrors returns field-scoped errors keyed by field name. When the
// upstream reports several errors for one field the first one wins.
func (t *Transaction) FieldErrors() map[string]string {
	if t == nil {
		return nil
	}
	out := map[string]string{}
	for _, e := range t.Errors {
		if e.Field == "" {
			continue
		}
		if _, ok := out[e.Field]; !ok {
			out[e.Field] = e.Message
		}
	}
	return out
}

// Text returns a screen text with a fallback, the way the screens resolve
// display strings.
func (s *Screen) Text(key, fallback string) string {
	if s == nil || s.Texts == nil {
		return fallback
	}
	if v, ok := s.Texts[key]; ok && v != "" {
		return v
	}
	return fallback
}
