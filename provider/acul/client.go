package acul

import (
	"context"
	"fmt"
	"strconv"

	"github.com/go-resty/resty/v2"
	goerrors "github.com/goliatone/go-errors"
	ulpforms "github.com/ulpkit/go-ulpforms"
)

var _ ulpforms.LoginSubmitter = (*Client)(nil)
var _ ulpforms.SignupSubmitter = (*Client)(nil)
var _ ulpforms.FederatedSubmitter = (*Client)(nil)
var _ ulpforms.PasskeySubmitter = (*Client)(nil)

// Client submits normalized payloads to the authorization server's screen
// endpoints. One client per transaction; the state token rides on every
// request.
type Client struct {
	cfg  Config
	http *resty.Client
}

// NewClient creates a submission client for the transaction in cfg.
func NewClient(cfg Config) *Client {
	http := cfg.HTTPClient
	if http == nil {
		http = resty.New()
	}
	if cfg.Timeout > 0 {
		http.SetTimeout(cfg.Timeout)
	}

	return &Client{
		cfg:  cfg,
		http: http,
	}
}

// Login submits password login options to the login endpoint.
func (c *Client) Login(ctx context.Context, options map[string]any) error {
	return c.submit(ctx, "login", options)
}

// Signup submits the ulp-prefixed signup payload.
func (c *Client) Signup(ctx context.Context, payload map[string]any) error {
	return c.submit(ctx, "signup", payload)
}

// FederatedLogin hands the transaction to a federated connection.
func (c *Client) FederatedLogin(ctx context.Context, connection string) error {
	return c.submit(ctx, "login", map[string]any{"connection": connection})
}

// FederatedSignup hands the transaction to a federated connection.
func (c *Client) FederatedSignup(ctx context.Context, connection string) error {
	return c.submit(ctx, "signup", map[string]any{"connection": connection})
}

// PasskeyLogin starts the passkey continuation for the transaction.
func (c *Client) PasskeyLogin(ctx context.Context) error {
	return c.submit(ctx, "login-passkey", map[string]any{})
}

func (c *Client) submit(ctx context.Context, screen string, payload map[string]any) error {
	form := make(map[string]string, len(payload)+1)
	for key, value := range payload {
		switch v := value.(type) {
		case string:
			form[key] = v
		case bool:
			form[key] = strconv.FormatBool(v)
		default:
			form[key] = fmt.Sprint(v)
		}
	}
	form["state"] = c.cfg.State

	resp, err := c.http.R().
		SetContext(ctx).
		SetFormData(form).
		Post(c.cfg.issuerURL() + "u/" + screen)
	if err != nil {
		return goerrors.Wrap(err, goerrors.CategoryOperation, "screen submission failed")
	}

	// Redirects are the success path; the server navigates the transaction
	// forward and reports attempt outcomes in the next context document.
	if resp.StatusCode() >= 400 {
		return goerrors.New(fmt.Sprintf("screen submission returned status %d", resp.StatusCode()), goerrors.CategoryOperation)
	}

	return nil
}
