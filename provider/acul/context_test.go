package acul

import "testing"

func TestParseContext(t *testing.T) {
	t.Parallel()

	doc := []byte(`{
		"screen": {
			"name": "signup",
			"texts": {"title": "Create your account"},
			"links": {
				"signup": "/u/signup?state=st-123",
				"login": "/u/login?state=st-123",
				"reset_password": "/u/reset-password?state=st-123"
			},
			"captcha": {"image": "data:image/png;base64,abc"}
		},
		"transaction": {
			"state": "st-123",
			"errors": [
				{"field": null, "message": "Something went wrong"},
				{"field": "email", "message": "Email is taken"}
			],
			"is_signup_enabled": true,
			"is_passkey_enabled": true,
			"alternate_connections": [
				{"name": "google-oauth2", "display_name": "Google", "strategy": "oauth2"}
			]
		}
	}`)

	tx, screen, err := ParseContext(doc)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if tx.State != "st-123" {
		t.Fatalf("state = %q", tx.State)
	}
	if !tx.IsSignupEnabled || !tx.IsPasskeyEnabled || tx.IsForgotPasswordEnabled {
		t.Fatalf("capability flags = %+v", tx)
	}
	if len(tx.Errors) != 2 {
		t.Fatalf("errors = %v", tx.Errors)
	}
	if tx.Errors[0].Field != "" || tx.Errors[0].Message != "Something went wrong" {
		t.Fatalf("null field should map to a general error, got %+v", tx.Errors[0])
	}
	if tx.Errors[1].Field != "email" {
		t.Fatalf("field error = %+v", tx.Errors[1])
	}
	if len(tx.AlternateConnections) != 1 || tx.AlternateConnections[0].Name != "google-oauth2" {
		t.Fatalf("connections = %v", tx.AlternateConnections)
	}

	if screen.Name != "signup" {
		t.Fatalf("screen name = %q", screen.Name)
	}
	if screen.Texts["title"] != "Create your account" {
		t.Fatalf("texts = %v", screen.Texts)
	}
	if screen.LoginLink != "/u/login?state=st-123" {
		t.Fatalf("login link = %q", screen.LoginLink)
	}
	if !screen.IsCaptchaAvailable || screen.CaptchaImage == "" {
		t.Fatalf("captcha = %+v", screen)
	}
}

func TestParseContextWithoutCaptcha(t *testing.T) {
	t.Parallel()

	tx, screen, err := ParseContext([]byte(`{
		"screen": {"name": "login"},
		"transaction": {"state": "st-9"}
	}`))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if screen.IsCaptchaAvailable {
		t.Fatal("no captcha block means the capability is off")
	}
	if tx.State != "st-9" {
		t.Fatalf("state = %q", tx.State)
	}
}

func TestParseContextRejectsMalformedDocument(t *testing.T) {
	t.Parallel()

	if _, _, err := ParseContext([]byte(`{"screen":`)); err == nil {
		t.Fatal("expected error on malformed document")
	}
}
