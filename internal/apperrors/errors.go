package apperrors

import (
	"errors"
	"fmt"
)

// ErrValidation indicates that input data failed validation checks.
var ErrValidation = errors.New("validation error")

// ErrInternal indicates a storage or other server-side fault. Callers only ever see
// an opaque message for it.
var ErrInternal = errors.New("internal error")

// ValidationError carries a caller-facing reason for a rejected request.
// It matches ErrValidation with errors.Is.
type ValidationError struct {
	Reason string
}

// NewValidationError builds a ValidationError with a formatted reason.
func NewValidationError(format string, args ...any) error {
	return &ValidationError{Reason: fmt.Sprintf(format, args...)}
}

func (e *ValidationError) Error() string {
	return e.Reason
}

func (e *ValidationError) Is(target error) bool {
	return target == ErrValidation
}

// PublicReason returns the reason that may be shown to an API caller for err.
// Anything that is not a validation error collapses to a generic message.
func PublicReason(err error) string {
	var ve *ValidationError
	if errors.As(err, &ve) {
		return ve.Reason
	}
	return "Internal Error"
}
