package ulpforms

import (
	"context"

	"github.com/goliatone/go-print"
)

// SignupManager drives the signup screen: it validates the collected form,
// builds the ulp-prefixed payload, and hands it to the upstream submitter.
type SignupManager struct {
	Transaction *Transaction
	Screen      *Screen
	Logger      Logger
	Submitter   SignupSubmitter
	Federated   FederatedSubmitter
	busy        bool
}

type SignupManagerOption func(*SignupManager) *SignupManager

// WithSignupFederated wires the federated submitter.
func WithSignupFederated(f FederatedSubmitter) SignupManagerOption {
	return func(m *SignupManager) *SignupManager {
		m.Federated = f
		return m
	}
}

// WithSignupLogger overrides the default logger.
func WithSignupLogger(l Logger) SignupManagerOption {
	return func(m *SignupManager) *SignupManager {
		m.Logger = l
		return m
	}
}

func NewSignupManager(tx *Transaction, screen *Screen, submitter SignupSubmitter, opts ...SignupManagerOption) *SignupManager {
	m := &SignupManager{
		Transaction: tx,
		Screen:      screen,
		Logger:      defLogger{},
		Submitter:   submitter,
	}

	for _, opt := range opts {
		m = opt(m)
	}

	if m.Transaction == nil || m.Screen == nil {
		panic("Missing transaction or screen snapshot in signup manager...")
	}

	if m.Submitter == nil {
		panic("Missing SignupSubmitter in signup manager...")
	}

	return m
}

// HandleSignup validates the form and submits the normalized payload. A
// validation failure is returned as-is so the caller can render the
// per-field message map; it never reaches the submitter.
func (m *SignupManager) HandleSignup(ctx context.Context, form SignupForm) error {
	if m.busy {
		return ErrSubmitInFlight
	}
	m.busy = true
	defer func() { m.busy = false }()

	if err := form.Validate(m.Screen.IsCaptchaAvailable); err != nil {
		return err
	}

	payload := SignupPayload(form, m.Screen.IsCaptchaAvailable)
	executeSafely(m.Logger, "signup submit", func() error {
		m.Logger.Debug("signup payload: %s", print.MaybePrettyJSON(payload))
		return m.Submitter.Signup(ctx, payload)
	})
	return nil
}

// HandleFederatedSignup hands off to the named connection.
func (m *SignupManager) HandleFederatedSignup(ctx context.Context, connection string) error {
	if m.Federated == nil {
		return nil
	}
	if m.busy {
		return ErrSubmitInFlight
	}
	m.busy = true
	defer func() { m.busy = false }()

	executeSafely(m.Logger, "federated signup with connection: "+connection, func() error {
		return m.Federated.FederatedSignup(ctx, connection)
	})
	return nil
}
