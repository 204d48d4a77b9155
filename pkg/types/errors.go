package types

import (
	"errors"
	"fmt"
)

var (
	ErrApplicationNotFound = errors.New("lease application not found")
	ErrPropertyNotFound    = errors.New("property not found")
	ErrProfileNotFound     = errors.New("tenant profile not found")
	ErrHistoryNotFound     = errors.New("rental history entry not found")
	ErrReviewNotFound      = errors.New("landlord review not found")
	ErrSettingsNotFound    = errors.New("passport settings not found")

	// ErrUnauthorized covers wrong-actor rejections: a reviewer who does not
	// own the tenancy's property, a consent attempt by someone other than the
	// reviewed tenant, edits to entries the caller does not own.
	ErrUnauthorized = errors.New("caller is not permitted to perform this action")
)

// ValidationError is a terminal rejection of the current call. Nothing is
// mutated and nothing partial is returned alongside one.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	if e.Field == "" {
		return e.Reason
	}
	return fmt.Sprintf("%s: %s", e.Field, e.Reason)
}

func NewValidationError(field, format string, args ...any) *ValidationError {
	return &ValidationError{Field: field, Reason: fmt.Sprintf(format, args...)}
}

// IsValidation reports whether err is (or wraps) a ValidationError.
func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}
