package ulpforms

import (
	"context"
	"strings"
)

// Connections the probe understands. Anything else is logged and ignored.
const (
	ConnectionPassword = "password"
	ConnectionEmail    = "email"
)

// LoginIDManager drives the identifier-first login screen. Before any
// password is collected it probes the user-lookup collaborator for the
// connections known for the identifier and redirects into the matching
// continuation step via the Navigator.
type LoginIDManager struct {
	Transaction *Transaction
	Screen      *Screen
	Logger      Logger
	Lookup      ConnectionLookup
	Navigator   Navigator
	Federated   FederatedSubmitter
	Passkey     PasskeySubmitter
	busy        bool
}

type LoginIDManagerOption func(*LoginIDManager) *LoginIDManager

// WithLoginIDNavigator wires the redirect navigator.
func WithLoginIDNavigator(n Navigator) LoginIDManagerOption {
	return func(m *LoginIDManager) *LoginIDManager {
		m.Navigator = n
		return m
	}
}

// WithLoginIDFederated wires the federated submitter.
func WithLoginIDFederated(f FederatedSubmitter) LoginIDManagerOption {
	return func(m *LoginIDManager) *LoginIDManager {
		m.Federated = f
		return m
	}
}

// WithLoginIDPasskey wires the passkey submitter.
func WithLoginIDPasskey(p PasskeySubmitter) LoginIDManagerOption {
	return func(m *LoginIDManager) *LoginIDManager {
		m.Passkey = p
		return m
	}
}

// WithLoginIDLogger overrides the default logger.
func WithLoginIDLogger(l Logger) LoginIDManagerOption {
	return func(m *LoginIDManager) *LoginIDManager {
		m.Logger = l
		return m
	}
}

func NewLoginIDManager(tx *Transaction, screen *Screen, lookup ConnectionLookup, opts ...LoginIDManagerOption) *LoginIDManager {
	m := &LoginIDManager{
		Transaction: tx,
		Screen:      screen,
		Logger:      defLogger{},
		Lookup:      lookup,
	}

	for _, opt := range opts {
		m = opt(m)
	}

	if m.Transaction == nil || m.Screen == nil {
		panic("Missing transaction or screen snapshot in login-id manager...")
	}

	return m
}

// HandleLoginID runs the connection probe for the trimmed identifier and, on
// a known connection, performs the hidden-form POST redirect carrying the
// transaction state. Lookup failures halt the flow silently: they are logged
// and the form stays in place for retry. At most one probe may be in flight
// per form instance; there is no cancellation.
func (m *LoginIDManager) HandleLoginID(ctx context.Context, identifier, captcha string) error {
	if m.busy {
		return ErrSubmitInFlight
	}
	m.busy = true
	defer func() { m.busy = false }()

	id := strings.TrimSpace(identifier)
	if id == "" {
		return ErrEmptyIdentifier
	}
	if m.Lookup == nil {
		return ErrMissingLookup
	}

	connections, err := m.Lookup.Connections(ctx, id)
	if err != nil {
		m.Logger.Error("user lookup for %q failed: %v", id, err)
		return nil
	}

	switch {
	case containsConnection(connections, ConnectionPassword):
		return m.redirect(ConnectionPassword)
	case containsConnection(connections, ConnectionEmail):
		return m.redirect(ConnectionEmail)
	default:
		m.Logger.Info("unsupported connection types for %q: %v", id, connections)
		return nil
	}
}

// HandleFederatedLogin hands off to the named connection.
func (m *LoginIDManager) HandleFederatedLogin(ctx context.Context, connection string) error {
	if m.Federated == nil {
		return nil
	}
	executeSafely(m.Logger, "federated login with connection: "+connection, func() error {
		return m.Federated.FederatedLogin(ctx, connection)
	})
	return nil
}

// HandlePasskeyLogin starts a passkey challenge when the transaction reports
// passkey support; otherwise it is a no-op.
func (m *LoginIDManager) HandlePasskeyLogin(ctx context.Context) error {
	if m.Passkey == nil || !m.Transaction.IsPasskeyEnabled {
		return nil
	}
	executeSafely(m.Logger, "passkey login", func() error {
		return m.Passkey.PasskeyLogin(ctx)
	})
	return nil
}

// Retrying the redirect with the same state is safe; the authorization
// server treats the state token as the idempotency key.
func (m *LoginIDManager) redirect(connection string) error {
	if m.Navigator == nil {
		return ErrMissingNavigator
	}
	m.Logger.Debug("redirecting to %s continuation", connection)
	return m.Navigator.SubmitRedirect(connection, m.Transaction.State)
}
