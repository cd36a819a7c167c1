package table

import "fmt"

// NotFoundError indicates an input file does not exist.
type NotFoundError struct {
	Message string
	Err     error
}

func (e *NotFoundError) Error() string { return e.Message }
func (e *NotFoundError) Unwrap() error { return e.Err }

// SchemaError indicates a required column is absent, duplicated, or of the wrong type.
type SchemaError struct {
	Message string
}

func (e *SchemaError) Error() string { return e.Message }

// IOError indicates a read or write failure other than a missing input.
type IOError struct {
	Message string
	Err     error
}

func (e *IOError) Error() string {
	if e.Err == nil {
		return e.Message
	}
	return e.Message + ": " + e.Err.Error()
}

func (e *IOError) Unwrap() error { return e.Err }

// ErrNotFound creates a NotFoundError with a formatted message.
func ErrNotFound(cause error, format string, args ...interface{}) *NotFoundError {
	return &NotFoundError{Message: fmt.Sprintf(format, args...), Err: cause}
}

// ErrSchema creates a SchemaError with a formatted message.
func ErrSchema(format string, args ...interface{}) *SchemaError {
	return &SchemaError{Message: fmt.Sprintf(format, args...)}
}

// ErrIO creates an IOError wrapping cause.
func ErrIO(cause error, format string, args ...interface{}) *IOError {
	return &IOError{Message: fmt.Sprintf(format, args...), Err: cause}
}
