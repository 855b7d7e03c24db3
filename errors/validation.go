package errors

import "fmt"

// ValidationError is a logical problem in an otherwise well formed document.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

func NewValidationError(format string, arg ...interface{}) *ValidationError {
	return &ValidationError{Message: fmt.Sprintf(format, arg...)}
}
