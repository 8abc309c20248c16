package validator

import (
	"fmt"
	"regexp"
	"unicode"

	"github.com/go-playground/validator/v10"
)

var (
	isoDateRgx    = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)
	clockTimeRgx  = regexp.MustCompile(`^\d{1,2}:\d{2}$`)
	hasSpecialRgx = regexp.MustCompile(`[!@#$%^&*]`)
)

func NewValidator() *validator.Validate {
	validator := validator.New(validator.WithRequiredStructEnabled())

	validator.RegisterValidation("isodate", validateISODate)
	validator.RegisterValidation("clocktime", validateClockTime)
	validator.RegisterValidation("showlang", validateShowtimeLanguage)
	validator.RegisterValidation("password", validatePassword)

	return validator
}

func validateISODate(fl validator.FieldLevel) bool {
	return isoDateRgx.MatchString(fl.Field().String())
}

func validateClockTime(fl validator.FieldLevel) bool {
	return clockTimeRgx.MatchString(fl.Field().String())
}

func validateShowtimeLanguage(fl validator.FieldLevel) bool {
	lang := fl.Field().String()

	return lang == "" || lang == "Italiano" || lang == "Original"
}

func validatePassword(fl validator.FieldLevel) bool {
	password := fl.Field().String()

	if len(password) < 8 || len(password) > 25 {
		return false
	}

	containsUpper, containsLower, containsDigit, containsSpecial := false, false, false, false

	for _, ch := range password {
		switch {
		case unicode.IsUpper(ch):
			containsUpper = true
		case unicode.IsLower(ch):
			containsLower = true
		case unicode.IsDigit(ch):
			containsDigit = true
		case hasSpecialRgx.MatchString(string(ch)):
			containsSpecial = true
		}
	}

	return containsUpper && containsLower && containsDigit && containsSpecial
}

// ValidationMessage converts validator errors into readable messages
func ValidationMessage(err validator.FieldError) string {
	switch err.Tag() {
	case "required":
		return "is required"
	case "email":
		return "must be a valid email address"
	case "max":
		return fmt.Sprintf("must be at most %s characters long", err.Param())
	case "isodate":
		return "must be a date in YYYY-MM-DD format"
	case "clocktime":
		return "must be a time in HH:MM format"
	case "showlang":
		return "must be either 'Italiano' or 'Original'"
	case "password":
		return "must be at least 8 characters long and include at least one uppercase letter, one lowercase letter, " +
			"one number, and one special character (!@#$%^&*)."
	default:
		return "is invalid"
	}
}
