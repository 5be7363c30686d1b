package validation

import (
	"reflect"
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"

	"financehub/internal/models"
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

	_ = v.RegisterValidation("category", validateCategory)
	_ = v.RegisterValidation("source", validateSource)
	_ = v.RegisterValidation("iso_date", validateISODate)
	_ = v.RegisterValidation("month", validateMonth)

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

// validateCategory checks the value against the fixed category set.
func validateCategory(fl validator.FieldLevel) bool {
	return models.IsValidCategory(fl.Field().String())
}

// validateSource accepts the known sources plus "auto" for header sniffing.
func validateSource(fl validator.FieldLevel) bool {
	source := strings.ToLower(fl.Field().String())
	return source == "auto" || models.IsValidSource(source)
}

var isoDatePattern = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)

// validateISODate checks for the canonical YYYY-MM-DD form.
func validateISODate(fl validator.FieldLevel) bool {
	return isoDatePattern.MatchString(fl.Field().String())
}

var monthPattern = regexp.MustCompile(`^\d{4}-\d{2}$`)

// validateMonth checks for the YYYY-MM form used by insights queries.
func validateMonth(fl validator.FieldLevel) bool {
	return monthPattern.MatchString(fl.Field().String())
}
