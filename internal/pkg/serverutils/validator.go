package serverutils

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"notetaking-be/internal/service"
	"notetaking-be/pkg/slugify"

	"github.com/go-playground/validator/v10"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())

	// Report fields by their wire name so errors line up with form inputs.
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" || name == "" {
			return fld.Name
		}
		return name
	})

	_ = v.RegisterValidation("slug", func(fl validator.FieldLevel) bool {
		return slugify.IsValid(fl.Field().String())
	})

	return v
}

func ValidateRequest(req interface{}) error {
	return validate.Struct(req)
}

// FieldErrors flattens a validation failure into field -> messages. Errors
// that are not validator errors end up under "__all__".
func FieldErrors(err error) map[string][]string {
	if err == nil {
		return nil
	}

	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		return map[string][]string{"__all__": {err.Error()}}
	}

	out := make(map[string][]string, len(validationErrors))
	for _, fe := range validationErrors {
		out[fe.Field()] = append(out[fe.Field()], fieldMessage(fe))
	}
	return out
}

func fieldMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return service.FieldRequiredMessage
	case "max":
		return fmt.Sprintf("Ensure this value has at most %s characters.", fe.Param())
	case "min":
		return fmt.Sprintf("Ensure this value has at least %s characters.", fe.Param())
	case "email":
		return "Enter a valid email address."
	case "slug":
		return "Enter a valid slug consisting of letters, numbers, underscores or hyphens."
	default:
		return fmt.Sprintf("Failed on the '%s' rule.", fe.Tag())
	}
}
