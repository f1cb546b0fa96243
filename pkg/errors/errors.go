package errors

import "fmt"

// ValidationError rejected input: missing, malformed or duplicate values. Maps to 400.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string { return e.Message }

// NotFoundError a target or referenced entity does not exist. Maps to 404.
type NotFoundError struct {
	Message string
}

func (e *NotFoundError) Error() string { return e.Message }

// Validation returns a ValidationError with a formatted message.
func Validation(format string, args ...interface{}) error {
	return &ValidationError{Message: fmt.Sprintf(format, args...)}
}

// NotFound returns a NotFoundError with the given message.
func NotFound(message string) error {
	return &NotFoundError{Message: message}
}
