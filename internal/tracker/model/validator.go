package model

import (
	"reflect"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
)

var (
	validate *validator.Validate
	once     sync.Once
)

func GetValidator() *validator.Validate {
	once.Do(func() {
		validate = validator.New(validator.WithRequiredStructEnabled())
		// Report json/query names so field errors match the request payload.
		validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
			for _, tag := range []string{"json", "query", "param"} {
				name := strings.SplitN(fld.Tag.Get(tag), ",", 2)[0]
				if name != "" && name != "-" {
					return name
				}
			}
			return fld.Name
		})
	})
	return validate
}

// FormatValidationError converts validator errors to an ErrorDetail carrying every failed field.
func FormatValidationError(err error) *ErrorDetail {
	if err == nil {
		return nil
	}

	if validationErrors, ok := err.(validator.ValidationErrors); ok && len(validationErrors) > 0 {
		fields := make(map[string]string, len(validationErrors))
		for _, e := range validationErrors {
			fields[e.Field()] = describeTag(e)
		}
		first := validationErrors[0]
		return &ErrorDetail{
			Code:    CodeBadRequest,
			Message: "Field validation for '" + first.Field() + "' failed on the '" + first.Tag() + "' tag",
			Fields:  fields,
		}
	}

	return &ErrorDetail{
		Code:    CodeBadRequest,
		Message: err.Error(),
	}
}

func describeTag(e validator.FieldError) string {
	switch e.Tag() {
	case "required":
		return "this field is required"
	case "email":
		return "must be a valid email address"
	case "min":
		return "must be at least " + e.Param() + " characters"
	case "max":
		return "must be at most " + e.Param() + " characters"
	case "oneof":
		return "must be one of: " + e.Param()
	case "eqfield":
		return "must match " + e.Param()
	case "datetime":
		return "must be a date formatted as " + e.Param()
	case "gt", "gte":
		return "must be greater than " + e.Param()
	default:
		return "failed on the '" + e.Tag() + "' rule"
	}
}
