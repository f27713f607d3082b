package ulpforms

import (
	"context"

	"github.com/goliatone/go-print"
)

// LoginManager drives the password login screen: it shapes submission
// options from raw field values and hands them to the upstream submitter.
// One manager per rendered screen; the caller must not overlap submits.
type LoginManager struct {
	Transaction *Transaction
	Screen      *Screen
	Logger      Logger
	Submitter   LoginSubmitter
	Federated   FederatedSubmitter
	busy        bool
}

type LoginManagerOption func(*LoginManager) *LoginManager

// WithLoginFederated wires the federated submitter.
func WithLoginFederated(f FederatedSubmitter) LoginManagerOption {
	return func(m *LoginManager) *LoginManager {
		m.Federated = f
		return m
	}
}

// WithLoginLogger overrides the default logger.
func WithLoginLogger(l Logger) LoginManagerOption {
	return func(m *LoginManager) *LoginManager {
		m.Logger = l
		return m
	}
}

func NewLoginManager(tx *Transaction, screen *Screen, submitter LoginSubmitter, opts ...LoginManagerOption) *LoginManager {
	m := &LoginManager{
		Transaction: tx,
		Screen:      screen,
		Logger:      defLogger{},
		Submitter:   submitter,
	}

	for _, opt := range opts {
		m = opt(m)
	}

	if m.Transaction == nil || m.Screen == nil {
		panic("Missing transaction or screen snapshot in login manager...")
	}

	if m.Submitter == nil {
		panic("Missing LoginSubmitter in login manager...")
	}

	return m
}

// HandleLogin builds the normalized login options and submits them. The
// captcha value is forwarded only when the screen reports the capability.
func (m *LoginManager) HandleLogin(ctx context.Context, email, password, captcha string) error {
	if m.busy {
		return ErrSubmitInFlight
	}
	m.busy = true
	defer func() { m.busy = false }()

	options := LoginOptions(email, password, captcha, m.Screen.IsCaptchaAvailable)
	executeSafely(m.Logger, "login submit", func() error {
		m.Logger.Debug("login options: %s", print.MaybePrettyJSON(options))
		return m.Submitter.Login(ctx, options)
	})
	return nil
}

// HandleFederatedLogin hands off to the named connection.
func (m *LoginManager) HandleFederatedLogin(ctx context.Context, connection string) error {
	if m.Federated == nil {
		return nil
	}
	if m.busy {
		return ErrSubmitInFlight
	}
	m.busy = true
	defer func() { m.busy = false }()

	executeSafely(m.Logger, "federated login with connection: "+connection, func() error {
		return m.Federated.FederatedLogin(ctx, connection)
	})
	return nil
}
