package domain

import "errors"

// Sentinel errors for the domain layer.
var (
	ErrMissingFields   = errors.New("required fields are missing")
	ErrUnknownProvider = errors.New("unknown identity provider")
)

// AuthError is a failure reported by the identity service. Message is the
// human-readable text from the service and is shown to the user verbatim.
type AuthError struct {
	Message string
	// Code is the provider's status code when it sends one (HTTP status for REST
	// backends). It is informational only.
	Code int
	Err  error
}

func (e *AuthError) Error() string {
	return e.Message
}

func (e *AuthError) Unwrap() error {
	return e.Err
}

// NewAuthError wraps err as an AuthError using its text as the message.
func NewAuthError(err error) *AuthError {
	return &AuthError{Message: err.Error(), Err: err}
}

// MessageOf returns the message to show the user for err. AuthErrors yield their
// provider message; anything else yields err.Error().
func MessageOf(err error) string {
	var authErr *AuthError
	if errors.As(err, &authErr) {
		return authErr.Message
	}
	return err.Error()
}
