package apperrors

import "errors"

// ErrNotFound indicates that a requested resource could not be found.
var ErrNotFound = errors.New("resource not found")

// ErrValidation indicates that input data failed validation checks before
// any upstream request was issued.
var ErrValidation = errors.New("validation error")

// ErrUpstream indicates the remote backend reported or caused a failure.
// Errors wrapping it carry the normalized, user-facing message as their
// Error() text.
var ErrUpstream = errors.New("upstream error")

// ErrUnauthorized indicates a missing or invalid credential.
var ErrUnauthorized = errors.New("unauthorized")

// UpstreamError carries the normalized, user-facing message for a failed
// backend call. Its Error() text is exactly that message, with no
// classification prefix, because it is stored and displayed as-is. It
// unwraps to ErrUpstream so callers can still classify it.
type UpstreamError struct {
	Message string
}

func (e *UpstreamError) Error() string { return e.Message }

func (e *UpstreamError) Unwrap() error { return ErrUpstream }

// NewUpstreamError builds an UpstreamError from a user-facing message.
func NewUpstreamError(message string) error {
	return &UpstreamError{Message: message}
}
