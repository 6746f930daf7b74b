// Package validator plugs go-playground/validator into echo.
package validator

import (
	"reflect"
	"strings"

	domainerrors "wishlist/internal/domain/errors"

	playground "github.com/go-playground/validator/v10"
	"github.com/pkg/errors"
)

// Validator implements echo.Validator.
type Validator struct {
	validate *playground.Validate
}

// New builds a validator that reports fields by their JSON names.
func New() *Validator {
	validate := playground.New(playground.WithRequiredStructEnabled())
	validate.RegisterTagNameFunc(func(field reflect.StructField) string {
		name, _, _ := strings.Cut(field.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}

		return name
	})

	return &Validator{validate: validate}
}

// Validate returns a validation AppError naming every failing field.
func (v *Validator) Validate(i any) error {
	err := v.validate.Struct(i)
	if err == nil {
		return nil
	}

	var fieldErrs playground.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return errors.WithStack(domainerrors.ErrValidationFailed.WithDetails(err.Error()))
	}

	required := make([]string, 0, len(fieldErrs))
	invalid := make([]string, 0, len(fieldErrs))
	for _, fieldErr := range fieldErrs {
		if fieldErr.Tag() == "required" {
			required = append(required, fieldErr.Field())
		} else {
			invalid = append(invalid, fieldErr.Field())
		}
	}

	var parts []string
	if len(required) > 0 {
		parts = append(parts, joinFields(required)+" required")
	}
	if len(invalid) > 0 {
		parts = append(parts, "invalid "+strings.Join(invalid, ", "))
	}

	return errors.WithStack(domainerrors.ErrValidationFailed.WithMessage(strings.Join(parts, "; ")))
}

func joinFields(fields []string) string {
	verb := " is"
	if len(fields) > 1 {
		verb = " are"
	}

	switch len(fields) {
	case 1:
		return fields[0] + verb
	case 2:
		return fields[0] + " and " + fields[1] + verb
	default:
		return strings.Join(fields[:len(fields)-1], ", ") + " and " + fields[len(fields)-1] + verb
	}
}
