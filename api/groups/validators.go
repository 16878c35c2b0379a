package groups

import (
	"reflect"
	"regexp"

	"gopkg.in/go-playground/validator.v8"
)

const maxFunctionNameLength = 64

var functionNameRegex = regexp.MustCompile(`^[a-zA-Z][a-zA-Z0-9]*$`)

type validatorInput struct {
	Name      string
	Validator validator.Func
}

func createRequestValidator() (*validator.Validate, error) {
	v := validator.New(&validator.Config{TagName: "validate"})

	validators := []validatorInput{
		{Name: "functionName", Validator: functionNameValidator},
	}
	for _, validatorFunc := range validators {
		err := v.RegisterValidation(validatorFunc.Name, validatorFunc.Validator)
		if err != nil {
			return nil, err
		}
	}

	return v, nil
}

// functionNameValidator accepts alphanumeric identifiers starting with a letter
func functionNameValidator(
	_ *validator.Validate,
	_ reflect.Value,
	_ reflect.Value,
	field reflect.Value,
	_ reflect.Type,
	fieldKind reflect.Kind,
	_ string,
) bool {
	if fieldKind != reflect.String {
		return false
	}

	name := field.String()
	return len(name) <= maxFunctionNameLength && functionNameRegex.MatchString(name)
}
