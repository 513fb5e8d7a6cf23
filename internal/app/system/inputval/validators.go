// internal/app/system/inputval/validators.go
package inputval

import (
	"errors"
	"reflect"

	"github.com/go-playground/validator/v10"

	"github.com/dalemusser/pulsehub/internal/domain/models"
)

// FieldError is one validation failure with a ready-to-display message.
type FieldError struct {
	Field   string
	Message string
}

// Result collects validation failures for a payload.
type Result struct {
	Errors []FieldError
}

// HasErrors reports whether any field failed validation.
func (r *Result) HasErrors() bool {
	return len(r.Errors) > 0
}

// First returns the first error message, or "" when validation passed.
// Handlers surface one message at a time.
func (r *Result) First() string {
	if len(r.Errors) == 0 {
		return ""
	}
	return r.Errors[0].Message
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())

	// Messages use the label tag when present, falling back to the Go
	// field name.
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		if label := fld.Tag.Get("label"); label != "" {
			return label
		}
		return fld.Name
	})

	// Rules for values the built-in tags do not cover.
	_ = v.RegisterValidation("entityid", func(fl validator.FieldLevel) bool {
		return IsValidEntityID(fl.Field().String())
	})
	_ = v.RegisterValidation("audience", func(fl validator.FieldLevel) bool {
		return models.IsValidAudience(fl.Field().String())
	})

	return v
}

// Validate checks input against its `validate` tags and returns a Result
// with display-ready messages. Input must be a struct or struct pointer.
func Validate(input any) *Result {
	res := &Result{}

	err := validate.Struct(input)
	if err == nil {
		return res
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		res.Errors = append(res.Errors, FieldError{Message: "Invalid input."})
		return res
	}

	for _, fe := range verrs {
		res.Errors = append(res.Errors, FieldError{
			Field:   fe.Field(),
			Message: message(fe),
		})
	}
	return res
}

// message maps a validator failure to a display message.
func message(fe validator.FieldError) string {
	label := fe.Field()
	switch fe.Tag() {
	case "required":
		return label + " is required."
	case "max":
		return label + " must be at most " + fe.Param() + " characters."
	case "min":
		return label + " must be at least " + fe.Param() + " characters."
	case "email":
		return "A valid email address is required."
	case "gte":
		return label + " must be at least " + fe.Param() + "."
	case "lte":
		return label + " must be at most " + fe.Param() + "."
	case "oneof":
		return label + " must be one of: " + fe.Param() + "."
	case "entityid":
		return label + " must be a valid identifier."
	case "audience":
		return label + " must be one of: all, staff, students."
	default:
		return label + " is invalid."
	}
}
