// Package validator adapts go-playground/validator to echo.Validator.
package validator

import (
	"reflect"
	"strings"

	"cleanrecord/internal/errors"

	"github.com/go-playground/validator/v10"
)

// CustomValidator implements echo.Validator.
type CustomValidator struct {
	validator *validator.Validate
}

// New creates a validator that reports field names by their json tag.
func New() *CustomValidator {
	validate := validator.New(validator.WithRequiredStructEnabled())
	validate.RegisterTagNameFunc(func(field reflect.StructField) string {
		name, _, _ := strings.Cut(field.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}

		return name
	})

	return &CustomValidator{validator: validate}
}

// Validate validates a bound request struct.
func (cv *CustomValidator) Validate(i any) error {
	if err := cv.validator.Struct(i); err != nil {
		return errors.WithStack(err)
	}

	return nil
}

// FieldErrors lists the failing fields of a validation error as "field: tag".
func FieldErrors(err error) []string {
	var validationErrs validator.ValidationErrors
	if !errors.As(err, &validationErrs) {
		return nil
	}

	fields := make([]string, 0, len(validationErrs))
	for _, fieldErr := range validationErrs {
		fields = append(fields, fieldErr.Field()+": "+fieldErr.Tag())
	}

	return fields
}
