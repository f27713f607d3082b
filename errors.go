package ulpforms

import (
	"errors"

	goerrors "github.com/goliatone/go-errors"
)

const (
	TextCodeSubmitInFlight    = "ulp_submit_in_flight"
	TextCodeEmptyIdentifier   = "ulp_empty_identifier"
	TextCodeUnknownConnection = "ulp_unknown_connection"
	TextCodeInvalidForm       = "ulp_invalid_form"
)

// ErrSubmitInFlight is returned when a submit is attempted while a prior
// submit or lookup for the same form instance has not resolved yet.
var ErrSubmitInFlight = goerrors.New("submission already in flight", goerrors.CategoryConflict).
	WithTextCode(TextCodeSubmitInFlight).
	WithCode(goerrors.CodeConflict)

// ErrEmptyIdentifier is returned when the login-id probe is invoked with a
// blank identifier.
var ErrEmptyIdentifier = goerrors.New("identifier is required", goerrors.CategoryValidation).
	WithTextCode(TextCodeEmptyIdentifier).
	WithCode(goerrors.CodeBadRequest)

// ErrMissingNavigator is returned when a probe resolves to a redirect but no
// Navigator was configured.
var ErrMissingNavigator = errors.New("navigator not configured")

// ErrMissingLookup is returned when the login-id manager has no lookup client.
var ErrMissingLookup = errors.New("connection lookup not configured")

// IsValidationError reports whether err carries a field validation error map.
func IsValidationError(err error) bool {
	if err == nil {
		return false
	}
	var richErr *goerrors.Error
	if goerrors.As(err, &richErr) {
		return richErr.Category == goerrors.CategoryValidation
	}
	return len(FormatValidationErrorToMap(err)) > 0
}
