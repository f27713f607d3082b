package acul

import (
	"fmt"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
)

// Config holds the connection to one authorization-server transaction.
// A client is bound to a single state token; screens build one client per
// render, mirroring the per-screen SDK instance upstream.
type Config struct {
	// Domain is the tenant domain (e.g. "example.us.auth0.com").
	Domain string

	// Issuer overrides the default issuer URL (optional).
	// Default: "https://{Domain}/".
	Issuer string

	// State is the transaction state token carried on every submission.
	State string

	// Timeout for each submission request. Default: 10 seconds.
	Timeout time.Duration

	// HTTPClient overrides the default resty client, mainly for tests.
	HTTPClient *resty.Client
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig(domain, state string) Config {
	return Config{
		Domain:  domain,
		State:   state,
		Timeout: 10 * time.Second,
	}
}

func (c Config) issuerURL() string {
	if c.Issuer != "" {
		return normalizeIssuer(c.Issuer)
	}

	domain := strings.TrimSpace(c.Domain)
	if domain == "" {
		return ""
	}

	if strings.HasPrefix(domain, "http://") || strings.HasPrefix(domain, "https://") {
		return normalizeIssuer(domain)
	}

	return fmt.Sprintf("https://%s/", strings.TrimSuffix(domain, "/"))
}

func normalizeIssuer(issuer string) string {
	issuer = strings.TrimSpace(issuer)
	if issuer == "" {
		return issuer
	}
	if strings.HasSuffix(issuer, "/") {
		return issuer
	}
	return issuer + "/"
}
