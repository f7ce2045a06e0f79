package validator

import (
	"errors"
	"fmt"

	val "github.com/go-playground/validator/v10"
)

// message turns the first failed rule into a client facing sentence, e.g. "Text is required".
func message(err error) string {
	var valErrors val.ValidationErrors
	if !errors.As(err, &valErrors) || len(valErrors) == 0 {
		return err.Error()
	}

	for _, fieldErr := range valErrors {
		if msg, ok := ruleMessage(fieldErr); ok {
			return msg
		}
	}

	return valErrors.Error()
}

func ruleMessage(fieldErr val.FieldError) (string, bool) {
	field := fieldErr.Field()

	switch fieldErr.Tag() {
	case "required":
		return field + " is required", true
	case "max":
		return fmt.Sprintf("%s must be at most %s", field, fieldErr.Param()), true
	case "min":
		return fmt.Sprintf("%s must be at least %s", field, fieldErr.Param()), true
	default:
		return "", false
	}
}
