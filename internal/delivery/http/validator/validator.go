// Package validator adapts go-playground/validator to echo's Validator interface.
package validator

import (
	"reflect"
	"strings"

	domainerrors "mise/internal/domain/errors"

	playground "github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

type echoValidator struct {
	validate *playground.Validate
}

// New creates an echo.Validator backed by go-playground/validator struct tags.
// Tag failures are reported per field, keyed by the field's json name.
func New() echo.Validator {
	validate := playground.New(playground.WithRequiredStructEnabled())
	validate.RegisterTagNameFunc(jsonFieldName)

	return &echoValidator{validate: validate}
}

// Validate implements echo.Validator.
func (v *echoValidator) Validate(i any) error {
	err := v.validate.Struct(i)
	if err == nil {
		return nil
	}

	var tagErrs playground.ValidationErrors
	if !errors.As(err, &tagErrs) {
		return err
	}

	fields := make([]domainerrors.FieldError, 0, len(tagErrs))
	for _, fe := range tagErrs {
		fields = append(fields, domainerrors.FieldError{
			Field:  fe.Field(),
			Reason: tagFailureReason(fe),
		})
	}

	return domainerrors.NewValidationError(fields...)
}

func jsonFieldName(field reflect.StructField) string {
	name, _, _ := strings.Cut(field.Tag.Get("json"), ",")
	if name == "-" {
		return ""
	}

	return name
}

func tagFailureReason(fe playground.FieldError) string {
	switch fe.Tag() {
	case "required":
		return fe.Field() + " is required"
	case "email":
		return fe.Field() + " must be a valid address"
	case "min":
		return fe.Field() + " must be at least " + fe.Param() + " characters"
	default:
		return fe.Field() + " is invalid"
	}
}
