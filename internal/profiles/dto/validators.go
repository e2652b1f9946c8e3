package dto

import (
	"fmt"
	"regexp"

	"github.com/go-playground/validator/v10"
)

// RegisterCustomValidators registers custom validation rules for the profiles module
func RegisterCustomValidators(validate *validator.Validate) error {
	if err := validate.RegisterValidation("lord_pseudo", validateLordPseudo); err != nil {
		return fmt.Errorf("failed to register lord_pseudo validator: %w", err)
	}
	return nil
}

// validateLordPseudo validates lord display names: 3-32 characters,
// letters, numbers, spaces and a few name punctuation marks.
func validateLordPseudo(fl validator.FieldLevel) bool {
	matched, _ := regexp.MatchString(`^[a-zA-Z0-9\s'\-\.]{3,32}$`, fl.Field().String())
	return matched
}

// ValidateStruct validates a struct and returns user-facing messages
func ValidateStruct(validate *validator.Validate, s interface{}) []string {
	var errs []string

	if err := validate.Struct(s); err != nil {
		for _, fieldErr := range err.(validator.ValidationErrors) {
			errs = append(errs, formatValidationError(fieldErr))
		}
	}

	return errs
}

func formatValidationError(err validator.FieldError) string {
	switch err.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", err.Field())
	case "min":
		return fmt.Sprintf("%s must be at least %s characters long", err.Field(), err.Param())
	case "max":
		return fmt.Sprintf("%s must be at most %s characters long", err.Field(), err.Param())
	case "lord_pseudo":
		return fmt.Sprintf("%s must be a valid lord name", err.Field())
	default:
		return fmt.Sprintf("%s is invalid", err.Field())
	}
}
