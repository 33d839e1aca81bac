package contribute

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate *validator.Validate

func init() {
	validate = validator.New()

	// Report fields by their json names so details match the request payload.
	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
}

// ValidationError describes one rejected field.
type ValidationError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidateSubmission returns one entry per failed rule, nil when valid.
func ValidateSubmission(sub *Submission) []ValidationError {
	err := validate.Struct(sub)
	if err == nil {
		return nil
	}

	var out []ValidationError
	for _, fe := range err.(validator.ValidationErrors) {
		field := fe.Field()
		param := fe.Param()

		var message string
		switch fe.Tag() {
		case "required":
			message = fmt.Sprintf("%s is required", field)
		case "url":
			message = fmt.Sprintf("%s must be a valid URL", field)
		case "max":
			message = fmt.Sprintf("%s must be at most %s characters", field, param)
		default:
			message = fmt.Sprintf("%s is invalid", field)
		}

		out = append(out, ValidationError{
			Field:   field,
			Message: message,
		})
	}

	return out
}
