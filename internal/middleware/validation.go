package middleware

import (
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"
)

// BindingErrorMessage turns a request binding failure into a readable
// message. Validator field errors are summarized per field; other decode
// errors pass through unchanged.
func BindingErrorMessage(err error) string {
	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return err.Error()
	}

	parts := make([]string, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		parts = append(parts, formatFieldError(fe))
	}
	return strings.Join(parts, "; ")
}

// formatFieldError creates a human-readable validation error message.
func formatFieldError(e validator.FieldError) string {
	switch e.Tag() {
	case "required":
		return e.Field() + " is required"
	case "min":
		return e.Field() + " must be at least " + e.Param() + " characters"
	case "max":
		return e.Field() + " must be at most " + e.Param() + " characters"
	case "email":
		return e.Field() + " must be a valid email address"
	case "oneof":
		return e.Field() + " must be one of: " + e.Param()
	default:
		return e.Field() + " validation failed: " + e.Tag()
	}
}
