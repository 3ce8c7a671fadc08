package apperrors

import "errors"

// Common errors
var (
	// Resource errors
	ErrStudentNotFound  = errors.New("student not found")
	ErrDuplicateStudent = errors.New("student already exists")

	// Authentication and authorization errors
	ErrMissingAuthContext = errors.New("missing authentication context")
	ErrPermissionDenied   = errors.New("permission denied")

	// Validation errors
	ErrValidationFailed = errors.New("validation failed")
	ErrBadRequest       = errors.New("bad request")
)

// CustomError represents application-specific errors with additional context.
type CustomError struct {
	Err     error
	Message string
}

// Error implements the error interface.
func (e *CustomError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	if e.Err != nil {
		return e.Err.Error()
	}
	return "unknown error"
}

// Unwrap implements errors.Unwrap.
func (e *CustomError) Unwrap() error {
	return e.Err
}

// NewNotFoundError creates a student-not-found error with a message.
func NewNotFoundError(message string) error {
	return &CustomError{Err: ErrStudentNotFound, Message: message}
}

// NewDuplicateError creates a duplicate-student error with a message.
func NewDuplicateError(message string) error {
	return &CustomError{Err: ErrDuplicateStudent, Message: message}
}

// NewForbiddenError creates a permission-denied error with a message.
func NewForbiddenError(message string) error {
	return &CustomError{Err: ErrPermissionDenied, Message: message}
}

// NewValidationError creates a validation error with a message.
func NewValidationError(message string) error {
	return &CustomError{Err: ErrValidationFailed, Message: message}
}
