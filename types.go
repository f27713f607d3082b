package ulpforms

import (
	"context"
	"fmt"
)

type Logger interface {
	Debug(format string, args ...any)
	Info(format string, args ...any)
	Error(format string, args ...any)
}

// LoginSubmitter performs the password login submission against the
// authorization server. Fire-and-forget: a nil return only means the request
// was handed off, the outcome surfaces via the next transaction snapshot.
type LoginSubmitter interface {
	Login(ctx context.Context, options map[string]any) error
}

// SignupSubmitter performs the signup submission.
type SignupSubmitter interface {
	Signup(ctx context.Context, payload map[string]any) error
}

// FederatedSubmitter hands off to a federated identity provider connection.
type FederatedSubmitter interface {
	FederatedLogin(ctx context.Context, connection string) error
	FederatedSignup(ctx context.Context, connection string) error
}

// PasskeySubmitter starts a passkey challenge.
type PasskeySubmitter interface {
	PasskeyLogin(ctx context.Context) error
}

// Navigator performs the hidden-form POST navigation that moves the browser
// into a continuation step. Repeating the call with the same state is safe.
type Navigator interface {
	SubmitRedirect(connection, state string) error
}

// ConnectionLookup resolves the authentication connections known for an
// identifier. Used by the login-id connection probe.
type ConnectionLookup interface {
	Connections(ctx context.Context, email string) ([]string, error)
}

// FieldBinder is the adapter between the validation core and whatever UI
// layer renders the form. The core reads values and pushes inline messages
// through it without knowing about concrete widgets.
type FieldBinder interface {
	GetValue(field string) string
	SetError(field, message string)
}

type defLogger struct{}

func (d defLogger) Error(format string, args ...any) {
	fmt.Printf("[ERR] ULP "+newline(format), args...)
}

func (d defLogger) Info(format string, args ...any) {
	fmt.Printf("[INF] ULP "+newline(format), args...)
}

func (d defLogger) Debug(format string, args ...any) {
	fmt.Printf("[DBG] ULP "+newline(format), args...)
}

func newline(s string) string {
	if len(s) > 0 && s[len(s)-1] != '\n' {
		s += "\n"
	}
	return s
}
