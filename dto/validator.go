package dto

import (
	"github.com/go-playground/validator/v10"
)

var validate *validator.Validate

func init() {
	validate = validator.New()
}

func GetValidator() *validator.Validate {
	return validate
}

// ValidationMessage turns a validator error into the message the web client
// expects. Missing required fields win over length failures, matching the
// order the checks have always been applied in.
func ValidationMessage(err error, requiredMessage string) string {
	validationErrors, ok := err.(validator.ValidationErrors)
	if !ok {
		return "Invalid request"
	}

	for _, fieldError := range validationErrors {
		if fieldError.Tag() == "required" {
			return requiredMessage
		}
	}

	for _, fieldError := range validationErrors {
		if fieldError.Tag() == "min" && fieldError.Field() == "Password" {
			return "Password must be at least 6 characters"
		}
	}

	return "Invalid request"
}
