package validation

import (
	"fmt"
	"reflect"
	"regexp"
	"strings"
	"sync"

	"budget-engine/internal/models"

	"github.com/go-playground/validator/v10"
)

// moneyPattern accepts signed amounts with at most two decimal places
var moneyPattern = regexp.MustCompile(`^-?\d{1,13}(\.\d{1,2})?$`)

// Validator wraps the go-playground validator with custom rules and error formatting
type Validator struct {
	validate *validator.Validate
}

// GetValidate returns the underlying validator.Validate instance for use with Echo
func (v *Validator) GetValidate() *validator.Validate {
	return v.validate
}

var (
	instance *Validator
	once     sync.Once
)

// GetValidator returns the singleton validator instance
func GetValidator() *Validator {
	once.Do(func() {
		instance = NewValidator()
	})
	return instance
}

// NewValidator creates a new validator instance with custom rules and configuration
func NewValidator() *Validator {
	v := validator.New()

	_ = v.RegisterValidation("money", validateMoney)
	_ = v.RegisterValidation("budget_category", validateBudgetCategory)

	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		for _, tag := range []string{"json", "query"} {
			name := strings.SplitN(fld.Tag.Get(tag), ",", 2)[0]
			if name == "-" {
				return ""
			}
			if name != "" {
				return name
			}
		}
		return fld.Name
	})

	return &Validator{validate: v}
}

// Struct validates a struct and returns the first-level field errors keyed by field name
func (v *Validator) Struct(s interface{}) error {
	return v.validate.Struct(s)
}

// FieldErrors converts validator errors into field -> message pairs. Errors of
// other types are reported under "request".
func FieldErrors(err error) map[string]string {
	fieldErrors := make(map[string]string)

	validationErrs, ok := err.(validator.ValidationErrors)
	if !ok {
		fieldErrors["request"] = err.Error()
		return fieldErrors
	}

	for _, fieldErr := range validationErrs {
		fieldErrors[fieldPath(fieldErr)] = describe(fieldErr)
	}
	return fieldErrors
}

// fieldPath drops the top-level struct name from the namespace, e.g.
// "SaveBudgetRequest.allocations[Food & Dining]" -> "allocations[Food & Dining]"
func fieldPath(fieldErr validator.FieldError) string {
	namespace := fieldErr.Namespace()
	if idx := strings.Index(namespace, "."); idx >= 0 {
		return namespace[idx+1:]
	}
	return fieldErr.Field()
}

func describe(fieldErr validator.FieldError) string {
	switch fieldErr.Tag() {
	case "required":
		return "is required"
	case "money":
		return "must be a decimal amount with at most 2 decimal places"
	case "budget_category":
		return "must be a valid budget category"
	case "min":
		return fmt.Sprintf("must be at least %s", fieldErr.Param())
	case "max":
		return fmt.Sprintf("must be at most %s", fieldErr.Param())
	default:
		return fmt.Sprintf("failed on the '%s' rule", fieldErr.Tag())
	}
}

// Custom validation functions

// validateMoney validates a decimal amount given as a string or json.Number
func validateMoney(fl validator.FieldLevel) bool {
	if fl.Field().Kind() != reflect.String {
		return false
	}
	return moneyPattern.MatchString(strings.TrimSpace(fl.Field().String()))
}

// validateBudgetCategory validates that a string is one of the eight budget categories
func validateBudgetCategory(fl validator.FieldLevel) bool {
	return models.IsValidCategory(fl.Field().String())
}
