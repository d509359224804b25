package domain

import (
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// validateStruct runs the struct tags of an entity and converts the first
// failure into a ValidationError wrapping the matching domain sentinel.
func validateStruct(v any) error {
	err := validate.Struct(v)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) || len(fieldErrs) == 0 {
		return fmt.Errorf("%w: %v", ErrValidation, err)
	}

	fe := fieldErrs[0]
	switch fe.Tag() {
	case "required":
		return NewValidationError(fe.Field(), "cannot be empty", ErrEmptyName)
	case "gt", "gte":
		return NewValidationError(fe.Field(), "must be a positive integer", ErrInvalidID)
	default:
		return NewValidationError(fe.Field(), fmt.Sprintf("failed %q check", fe.Tag()), ErrValidation)
	}
}
