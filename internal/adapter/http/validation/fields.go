package validation

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"

	"taskboard/pkg/apierrors"
)

// FieldErrors flattens a binding failure into the details list of a 400
// response. Returns nil when the error is not a field validation error.
func FieldErrors(err error) []apierrors.FieldError {
	var validationErrs validator.ValidationErrors
	if !errors.As(err, &validationErrs) {
		return nil
	}

	details := make([]apierrors.FieldError, 0, len(validationErrs))
	for _, fieldErr := range validationErrs {
		details = append(details, apierrors.FieldError{
			Field:   strings.ToLower(fieldErr.Field()[:1]) + fieldErr.Field()[1:],
			Message: fieldMessage(fieldErr),
		})
	}

	return details
}

func fieldMessage(err validator.FieldError) string {
	switch err.Tag() {
	case "required":
		return "is required"
	case "email":
		return "must be a valid email address"
	case "min":
		return fmt.Sprintf("must be at least %s characters", err.Param())
	case "max":
		return fmt.Sprintf("cannot exceed %s characters", err.Param())
	case "oneof":
		return fmt.Sprintf("must be one of: %s", err.Param())
	case "gt":
		return fmt.Sprintf("must be greater than %s", err.Param())
	case "datetime":
		return fmt.Sprintf("must be a date in %s format", err.Param())
	default:
		return "is invalid"
	}
}
