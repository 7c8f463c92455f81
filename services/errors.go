package services

import (
	"errors"
	"fmt"
)

// ErrNotFound signals an absent record. It is not a fault: callers decide
// how to surface it.
var ErrNotFound = errors.New("record not found")

// ErrDeleteDisabled is returned when the customer-delete capability is
// turned off for this deployment.
var ErrDeleteDisabled = errors.New("customer delete is disabled")

// ValidationError carries a field-level message for malformed input. The
// operation is aborted with no partial write.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}
