package validation

import (
	"reflect"
	"regexp"
	"strings"

	"audit-statements/internal/models"

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

// singleton instance of the validator
var instance *Validator

// GetValidator returns the singleton validator instance
func GetValidator() *Validator {
	if instance == nil {
		instance = NewValidator()
	}
	return instance
}

// NewValidator creates a new validator instance with custom rules and configuration
func NewValidator() *Validator {
	v := validator.New()

	_ = v.RegisterValidation("account_code", validateAccountCode)
	_ = v.RegisterValidation("statement_type", validateStatementType)
	_ = v.RegisterValidation("financial_year", validateFinancialYear)
	_ = v.RegisterValidation("currency_code", validateCurrencyCode)
	_ = v.RegisterValidation("non_negative_amount", validateNonNegativeAmount)

	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	return &Validator{validate: v}
}

// Custom validation functions

// validateAccountCode validates that an account code is a short numeric string
// Format: 1-20 digits
func validateAccountCode(fl validator.FieldLevel) bool {
	code := fl.Field().String()
	if code == "" {
		return false
	}

	matched, _ := regexp.MatchString(`^\d{1,20}$`, code)
	return matched
}

// validateStatementType validates that the value names a known statement type
func validateStatementType(fl validator.FieldLevel) bool {
	return models.IsValidStatementType(strings.ToLower(fl.Field().String()))
}

// validateFinancialYear validates a 4-digit year, optionally a YYYY/YYYY range
func validateFinancialYear(fl validator.FieldLevel) bool {
	year := fl.Field().String()
	if year == "" {
		return false
	}

	matched, _ := regexp.MatchString(`^\d{4}(/\d{4})?$`, year)
	return matched
}

// validateCurrencyCode validates an ISO 4217 style 3-letter currency code
func validateCurrencyCode(fl validator.FieldLevel) bool {
	currency := fl.Field().String()
	matched, _ := regexp.MatchString(`^[A-Z]{3}$`, currency)
	return matched
}

// validateNonNegativeAmount validates that an amount is zero or greater
func validateNonNegativeAmount(fl validator.FieldLevel) bool {
	switch fl.Field().Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return fl.Field().Int() >= 0
	case reflect.Float32, reflect.Float64:
		return fl.Field().Float() >= 0
	default:
		return false
	}
}
