package utils

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	pkgerrors "user-service/pkg/errors"

	"github.com/go-playground/validator/v10"
	"github.com/go-playground/validator/v10/non-standard/validators"
)

var validate = newValidator()

// structRuleMessages maps struct-level rule tags to their fixed message.
var structRuleMessages = map[string]string{}

func newValidator() *validator.Validate {
	v := validator.New()
	// Report fields under their JSON names
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
		if name == "-" || name == "" {
			return f.Name
		}
		return name
	})
	if err := v.RegisterValidation("notblank", validators.NotBlank); err != nil {
		panic(err)
	}
	return v
}

// RegisterStructRule registers a cross-field rule for the given types. Violations are
// reported by the rule under tag and rendered as message.
func RegisterStructRule(tag, message string, fn validator.StructLevelFunc, types ...interface{}) {
	structRuleMessages[tag] = message
	validate.RegisterStructValidation(fn, types...)
}

// ValidateStruct validates a struct based on its validation tags. Violations are
// returned as a validation AppError holding one message per failure.
func ValidateStruct(s interface{}) error {
	if err := validate.Struct(s); err != nil {
		return formatValidationError(err)
	}
	return nil
}

// formatValidationError formats validation errors into readable messages
func formatValidationError(err error) error {
	var validationErrors validator.ValidationErrors
	if errors.As(err, &validationErrors) {
		messages := make([]string, 0, len(validationErrors))
		for _, e := range validationErrors {
			messages = append(messages, formatFieldError(e))
		}
		return pkgerrors.NewValidationError(messages...)
	}
	return err
}

// formatFieldError formats a single field validation error
func formatFieldError(e validator.FieldError) string {
	if msg, ok := structRuleMessages[e.Tag()]; ok {
		return msg
	}

	field := e.Field()

	switch e.Tag() {
	case "required", "notblank":
		return fmt.Sprintf("'%s' should not be null", field)
	case "min":
		return fmt.Sprintf("'%s' must be at least %s characters", field, e.Param())
	case "max":
		return fmt.Sprintf("'%s' must be at most %s characters", field, e.Param())
	case "email":
		return fmt.Sprintf("'%s' must be a valid email", field)
	case "uuid", "uuid4":
		return fmt.Sprintf("'%s' should be a valid UUID", field)
	default:
		return fmt.Sprintf("'%s' is invalid", field)
	}
}
