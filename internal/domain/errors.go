package domain

import (
	"errors"
	"net/http"
)

// HTTPError defines errors that can be mapped to HTTP status codes.
type HTTPError interface {
	error
	StatusCode() int
}

// Sentinel errors - use with errors.Is()
var (
	ErrNotFound     = errors.New("not found")
	ErrConflict     = errors.New("already exists")
	ErrValidation   = errors.New("validation failed")
	ErrUnauthorized = errors.New("unauthorized")
	ErrForbidden    = errors.New("forbidden")

	// ErrConfiguration marks a missing or invalid process setting. It is
	// never caused by request input and always surfaces as a 500.
	ErrConfiguration = errors.New("configuration error")
)

// RedirectError is returned for any resource the requester may not see:
// missing, malformed id, or denied by policy. Location is the listing the
// client should fall back to. The message never says which case applied.
type RedirectError struct {
	Location string
}

func (e *RedirectError) Error() string   { return "resource not found" }
func (e *RedirectError) StatusCode() int { return http.StatusNotFound }

// Is allows errors.Is() to match against ErrNotFound
func (e *RedirectError) Is(target error) bool {
	return target == ErrNotFound
}

// AuthenticationRequiredError asks the client to sign in and retry the
// same request. ReturnTo is the path to come back to after signing in.
type AuthenticationRequiredError struct {
	ReturnTo string
	Email    string
}

func (e *AuthenticationRequiredError) Error() string   { return "authentication required" }
func (e *AuthenticationRequiredError) StatusCode() int { return http.StatusUnauthorized }

// Is allows errors.Is() to match against ErrUnauthorized
func (e *AuthenticationRequiredError) Is(target error) bool {
	return target == ErrUnauthorized
}

// PaywallError blocks embedding for owners without a paid team plan.
type PaywallError struct{}

func (e *PaywallError) Error() string   { return "embedding requires a team plan" }
func (e *PaywallError) StatusCode() int { return http.StatusForbidden }

// Is allows errors.Is() to match against ErrForbidden
func (e *PaywallError) Is(target error) bool {
	return target == ErrForbidden
}
