package handler

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

// formatValidationError flattens validator output into one message listing
// every violated field, mirroring the aggregate messages the API has always
// returned.
func formatValidationError(err error) string {
	errs, ok := err.(validator.ValidationErrors)
	if !ok {
		return "Invalid request body"
	}

	problems := make([]string, 0, len(errs))
	for _, fe := range errs {
		field := jsonFieldName(fe.Field())
		switch fe.Tag() {
		case "required":
			problems = append(problems, fmt.Sprintf("%s is required", field))
		case "email":
			problems = append(problems, fmt.Sprintf("%s must be a valid email", field))
		case "min":
			problems = append(problems, fmt.Sprintf("%s must be at least %s characters", field, fe.Param()))
		default:
			problems = append(problems, fmt.Sprintf("%s is invalid", field))
		}
	}
	return strings.Join(problems, ", ")
}

// jsonFieldName lower-cases the leading rune so messages reference the JSON
// field rather than the Go struct field.
func jsonFieldName(field string) string {
	if field == "" {
		return field
	}
	return strings.ToLower(field[:1]) + field[1:]
}
