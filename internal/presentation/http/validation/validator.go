// Package validation plugs go-playground/validator into echo and turns its errors
// into messages naming the JSON field at fault.
package validation

import (
	"encoding/json"
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"

	"github.com/Additional-Code/storehouse/pkg/errorbank"
)

// Validator satisfies echo.Validator.
type Validator struct {
	validate *validator.Validate
}

var _ echo.Validator = (*Validator)(nil)

// New returns a Validator that reports fields by their json names.
func New() *Validator {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(field reflect.StructField) string {
		name := strings.SplitN(field.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		if name == "" {
			return field.Name
		}
		return name
	})
	return &Validator{validate: v}
}

// Validate checks i against its `validate` tags. Failures come back as a
// validation_failure AppError describing the first offending field.
func (v *Validator) Validate(i any) error {
	err := v.validate.Struct(i)
	if err == nil {
		return nil
	}
	return errorbank.ValidationFailure(Describe(err), errorbank.WithCause(err))
}

// BindError classifies a failure from echo.Context.Bind. A well formed document
// carrying a value of the wrong type is a validation failure naming the field;
// anything else is an undecodable body.
func BindError(err error) error {
	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &typeErr) && typeErr.Field != "" {
		return errorbank.ValidationFailure(fmt.Sprintf("%s must be a %s", typeErr.Field, typeErr.Type), errorbank.WithCause(err))
	}
	return errorbank.BadRequest("Malformed request body.", errorbank.WithCause(err))
}

// Describe renders the first field error of err in a short human form.
func Describe(err error) string {
	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) || len(fieldErrs) == 0 {
		return "invalid payload"
	}

	fe := fieldErrs[0]
	switch fe.Tag() {
	case "required":
		return fe.Field() + " is required"
	case "email":
		return fe.Field() + " must be a valid email address"
	case "min", "gte":
		return fmt.Sprintf("%s must be at least %s", fe.Field(), fe.Param())
	case "max", "lte":
		return fmt.Sprintf("%s must be at most %s", fe.Field(), fe.Param())
	default:
		return fmt.Sprintf("%s failed %s validation", fe.Field(), fe.Tag())
	}
}
