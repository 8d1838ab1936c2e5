// internal/utils/validator.go
package utils

import (
	"regexp"
	"strings"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

var validate *validator.Validate

var taxNoPattern = regexp.MustCompile(`^[0-9]{10,11}$`)

func init() {
	validate = validator.New()
	validate.RegisterValidation("taxno", validateTaxNo)

	// The binding engine needs the custom tag too or gin panics on it.
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		v.RegisterValidation("taxno", validateTaxNo)
	}
}

func ValidateStruct(s interface{}) error {
	return validate.Struct(s)
}

// Turkish tax numbers are 10 digits (companies) or 11 (sole proprietors).
func validateTaxNo(fl validator.FieldLevel) bool {
	return taxNoPattern.MatchString(fl.Field().String())
}

type ValidationError struct {
	Field   string `json:"field"`
	Tag     string `json:"tag"`
	Message string `json:"message"`
}

func GetValidationErrors(err error) []ValidationError {
	var validationErrors []ValidationError

	if validationErrs, ok := err.(validator.ValidationErrors); ok {
		for _, e := range validationErrs {
			validationErrors = append(validationErrors, ValidationError{
				Field:   strings.ToLower(e.Field()),
				Tag:     e.Tag(),
				Message: getValidationMessage(e),
			})
		}
	}

	return validationErrors
}

func getValidationMessage(e validator.FieldError) string {
	switch e.Tag() {
	case "required":
		return e.Field() + " is required"
	case "email":
		return "Invalid email format"
	case "uuid":
		return e.Field() + " must be a valid UUID"
	case "oneof":
		return e.Field() + " must be one of: " + e.Param()
	case "taxno":
		return "Tax number must be 10 or 11 digits"
	case "min":
		return e.Field() + " must be at least " + e.Param()
	case "max":
		return e.Field() + " must be at most " + e.Param()
	default:
		return e.Field() + " is invalid"
	}
}
