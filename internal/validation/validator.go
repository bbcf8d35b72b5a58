package validation

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
	"sync"

	"finance-tracker/internal/models"

	"github.com/go-playground/validator/v10"
)

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

	_ = v.RegisterValidation("account_kind", validateAccountKind)
	_ = v.RegisterValidation("transaction_direction", validateTransactionDirection)
	_ = v.RegisterValidation("due_day", validateDueDay)
	_ = v.RegisterValidation("positive_amount", validatePositiveAmount)

	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	return &Validator{validate: v}
}

// Struct validates a struct against its validate tags
func (v *Validator) Struct(s interface{}) error {
	return v.validate.Struct(s)
}

// FormatErrors turns validator failures into "field: reason" detail lines.
// Errors that did not come from the validator are returned as a single line.
func FormatErrors(err error) []string {
	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		return []string{err.Error()}
	}

	details := make([]string, 0, len(validationErrors))
	for _, fe := range validationErrors {
		details = append(details, fmt.Sprintf("%s: %s", fe.Field(), describe(fe)))
	}
	return details
}

func describe(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "account_kind":
		return "must be one of recurring_fixed, loan, credit_card, subscription, other"
	case "transaction_direction":
		return "must be income or expense"
	case "due_day":
		return fmt.Sprintf("must be between %d and %d", models.MinDueDay, models.MaxDueDay)
	case "positive_amount", "gt":
		return "must be greater than 0"
	case "min":
		return "must be at least " + fe.Param()
	case "max":
		return "must be at most " + fe.Param()
	case "uuid":
		return "must be a valid UUID"
	case "email":
		return "must be a valid email address"
	default:
		return "failed " + fe.Tag() + " validation"
	}
}

// validateAccountKind accepts the known account kinds; empty is left to "required"
func validateAccountKind(fl validator.FieldLevel) bool {
	kind := fl.Field().String()
	return kind == "" || models.IsValidAccountKind(kind)
}

func validateTransactionDirection(fl validator.FieldLevel) bool {
	return models.IsValidDirection(fl.Field().String())
}

func validateDueDay(fl validator.FieldLevel) bool {
	day := fl.Field().Int()
	return day >= models.MinDueDay && day <= models.MaxDueDay
}

// validatePositiveAmount validates that an amount is greater than 0
func validatePositiveAmount(fl validator.FieldLevel) bool {
	switch fl.Field().Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return fl.Field().Int() > 0
	case reflect.Float32, reflect.Float64:
		return fl.Field().Float() > 0
	default:
		return false
	}
}
