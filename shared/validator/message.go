package validator

import (
	"errors"
	"strings"

	val "github.com/go-playground/validator/v10"
)

var (
	messages = map[string]string{
		"required":    "{field} is required",
		"gte":         "{field} must be greater than or equal to {param}",
		"lte":         "{field} must be less than or equal to {param}",
		"gt":          "{field} must be greater than {param}",
		"oneof":       "{field} must be one of {param}",
		"max":         "{field} must be less than or equal to {param}",
		"min":         "{field} must be greater than or equal to {param}",
		"len":         "{field} must be exactly {param} characters",
		"email":       "{field} must be a valid email address",
		"eqfield":     "{field} must match {param}",
		"ymd":         "{field} must be a valid date (YYYYMMDD)",
		"hhmm":        "{field} must be a valid time (HHMM)",
		"roomno":      "{field} must be a 3 digit room number",
		"yn":          "{field} must be Y or N",
		"mimetypes":   "{field} must be one of {param}",
		"maxfilesize": "{field} must not exceed {param}MB",
	}
)

func message(err error) string {
	var valErrors val.ValidationErrors

	if errors.As(err, &valErrors) {
		for _, valErr := range valErrors {
			errStr := ""
			field := valErr.Field()
			param := valErr.Param()

			errStr = messages[valErr.Tag()]
			if errStr != "" {
				errStr = strings.ReplaceAll(errStr, "{field}", field)
				errStr = strings.ReplaceAll(errStr, "{param}", param)

				return errStr
			}
		}

		return valErrors.Error()
	}

	return err.Error()
}
