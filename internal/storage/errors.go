package storage

import (
	"errors"
	"fmt"
)

// ConstraintViolationError signals that persisted data breaks an invariant
// the store depends on: a malformed source address, a start block that does
// not fit in a uint64, or data sources out of creation order. It indicates
// corrupted or inconsistently written state and is never worth retrying.
// Query and driver errors are deliberately not wrapped in this type so
// callers can keep the two failure classes apart.
type ConstraintViolationError struct {
	Message string
}

func (e *ConstraintViolationError) Error() string {
	return fmt.Sprintf("constraint violation: %s", e.Message)
}

func constraintViolation(format string, args ...interface{}) error {
	return &ConstraintViolationError{Message: fmt.Sprintf(format, args...)}
}

// IsConstraintViolation reports whether err is a ConstraintViolationError.
func IsConstraintViolation(err error) bool {
	var cv *ConstraintViolationError
	return errors.As(err, &cv)
}
