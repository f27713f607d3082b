// Package lookup implements the user-lookup collaborator used by the
// login-id connection probe: a small HTTP client that resolves the
// authentication connections known for an email identifier.
package lookup

import (
	"context"
	"fmt"
	"time"

	"github.com/go-resty/resty/v2"
	goerrors "github.com/goliatone/go-errors"
)

const (
	TextCodeUserNotFound  = "lookup_user_not_found"
	TextCodeLookupFailed  = "lookup_request_failed"
	TextCodeLookupRefused = "lookup_non_success"
)

// ErrUserNotFound is returned when the endpoint reports no user for the
// identifier. Callers treat this the same as an empty connection list.
var ErrUserNotFound = goerrors.New("no user found for identifier", goerrors.CategoryNotFound).
	WithTextCode(TextCodeUserNotFound).
	WithCode(goerrors.CodeNotFound)

// Config holds lookup client options.
type Config struct {
	// BaseURL of the lookup endpoint, e.g. "http://localhost:4001".
	BaseURL string

	// Timeout for each lookup request. Default: 5 seconds.
	Timeout time.Duration

	// HTTPClient overrides the default resty client, mainly for tests.
	HTTPClient *resty.Client
}

// Client queries the user-lookup endpoint.
type Client struct {
	http    *resty.Client
	baseURL string
}

// New creates a lookup client.
func New(cfg Config) *Client {
	http := cfg.HTTPClient
	if http == nil {
		http = resty.New()
	}

	timeout := cfg.Timeout
	if timeout == 0 {
		timeout = 5 * time.Second
	}
	http.SetTimeout(timeout)

	return &Client{
		http:    http,
		baseURL: cfg.BaseURL,
	}
}

type userResponse struct {
	Connections []string `json:"connections"`
}

// Connections returns the connection names known for the email identifier.
// One request per call; the caller owns in-flight bookkeeping.
func (c *Client) Connections(ctx context.Context, email string) ([]string, error) {
	var body userResponse

	resp, err := c.http.R().
		SetContext(ctx).
		SetQueryParam("email", email).
		SetResult(&body).
		Get(c.baseURL + "/user")
	if err != nil {
		return nil, goerrors.Wrap(err, goerrors.CategoryOperation, "user lookup request failed").
			WithTextCode(TextCodeLookupFailed)
	}

	if resp.StatusCode() == 404 {
		return nil, ErrUserNotFound
	}

	if !resp.IsSuccess() {
		return nil, goerrors.New(fmt.Sprintf("user lookup returned status %d", resp.StatusCode()), goerrors.CategoryOperation).
			WithTextCode(TextCodeLookupRefused)
	}

	return body.Connections, nil
}
