package domain

import (
	"errors"
	"fmt"
)

var (
	ErrNotFound               = errors.New("record not found")
	ErrUnauthorized           = errors.New("actor is not authorized for this action")
	ErrPackageTierUnsupported = errors.New("package tier does not support collaborators")
	ErrEventNotReady          = errors.New("event is not approved yet")
	ErrInvalidState           = errors.New("event is not in a state that permits this action")
)

// ValidationError reports malformed caller input. The field and reason
// give the caller enough to correct the request.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation failed on %s: %s", e.Field, e.Reason)
}

func NewValidationError(field, reason string) error {
	return &ValidationError{Field: field, Reason: reason}
}

// IsValidationError reports whether err is (or wraps) a ValidationError.
func IsValidationError(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}

// QuotaExceededError reports a reservation that would overdraw the
// actor's remaining capacity. Remaining is the capacity still available
// at the actor's scope, so the caller can display it.
type QuotaExceededError struct {
	Remaining int32
	Requested int32
}

func (e *QuotaExceededError) Error() string {
	return fmt.Sprintf("quota exceeded: requested %d seats, %d remaining", e.Requested, e.Remaining)
}

// IsQuotaExceeded reports whether err is (or wraps) a QuotaExceededError.
func IsQuotaExceeded(err error) bool {
	var qe *QuotaExceededError
	return errors.As(err, &qe)
}
