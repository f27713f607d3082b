package acul

import (
	"encoding/json"

	goerrors "github.com/goliatone/go-errors"
	ulpforms "github.com/ulpkit/go-ulpforms"
)

// contextDocument mirrors the JSON the authorization server injects for the
// active screen. Only the fields the screens consume are decoded.
type contextDocument struct {
	Screen      screenDocument      `json:"screen"`
	Transaction transactionDocument `json:"transaction"`
}

type screenDocument struct {
	Name    string            `json:"name"`
	Texts   map[string]string `json:"texts"`
	Links   linksDocument     `json:"links"`
	Captcha *captchaDocument  `json:"captcha"`
}

type linksDocument struct {
	Signup        string `json:"signup"`
	Login         string `json:"login"`
	ResetPassword string `json:"reset_password"`
}

type captchaDocument struct {
	Image string `json:"image"`
}

type transactionDocument struct {
	State                   string                `json:"state"`
	Errors                  []errorDocument       `json:"errors"`
	IsSignupEnabled         bool                  `json:"is_signup_enabled"`
	IsForgotPasswordEnabled bool                  `json:"is_forgot_password_enabled"`
	IsPasskeyEnabled        bool                  `json:"is_passkey_enabled"`
	AlternateConnections    []connectionDocument  `json:"alternate_connections"`
}

type errorDocument struct {
	Field   *string `json:"field"`
	Message string  `json:"message"`
}

type connectionDocument struct {
	Name        string `json:"name"`
	DisplayName string `json:"display_name"`
	Strategy    string `json:"strategy"`
}

// ParseContext decodes a context document into the read-only snapshots the
// screens consume. A null or missing error field marks a general error.
func ParseContext(data []byte) (*ulpforms.Transaction, *ulpforms.Screen, error) {
	var doc contextDocument
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, nil, goerrors.Wrap(err, goerrors.CategoryBadInput, "unable to parse context document")
	}

	tx := &ulpforms.Transaction{
		State:                   doc.Transaction.State,
		IsSignupEnabled:         doc.Transaction.IsSignupEnabled,
		IsForgotPasswordEnabled: doc.Transaction.IsForgotPasswordEnabled,
		IsPasskeyEnabled:        doc.Transaction.IsPasskeyEnabled,
	}

	for _, e := range doc.Transaction.Errors {
		field := ""
		if e.Field != nil {
			field = *e.Field
		}
		tx.Errors = append(tx.Errors, ulpforms.TransactionError{
			Field:   field,
			Message: e.Message,
		})
	}

	for _, c := range doc.Transaction.AlternateConnections {
		tx.AlternateConnections = append(tx.AlternateConnections, ulpforms.Connection{
			Name:        c.Name,
			DisplayName: c.DisplayName,
			Strategy:    c.Strategy,
		})
	}

	screen := &ulpforms.Screen{
		Name:              doc.Screen.Name,
		Texts:             doc.Screen.Texts,
		SignupLink:        doc.Screen.Links.Signup,
		LoginLink:         doc.Screen.Links.Login,
		ResetPasswordLink: doc.Screen.Links.ResetPassword,
	}

	if doc.Screen.Captcha != nil {
		screen.CaptchaImage = doc.Screen.Captcha.Image
		screen.IsCaptchaAvailable = doc.Screen.Captcha.Image != ""
	}

	return tx, screen, nil
}
