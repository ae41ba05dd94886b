package validation

import (
	"reflect"
	"regexp"
	"strings"

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

	_ = v.RegisterValidation("cpt_code", validateCPTCode)
	_ = v.RegisterValidation("report_group", validateReportGroup)

	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "" {
			name = strings.SplitN(fld.Tag.Get("query"), ",", 2)[0]
		}
		if name == "" {
			name = strings.SplitN(fld.Tag.Get("param"), ",", 2)[0]
		}
		if name == "-" {
			return ""
		}
		return name
	})

	return &Validator{validate: v}
}

// Custom validation functions

// validateCPTCode validates that a value looks like a CPT/HCPCS procedure code.
// Format: five characters, four digits followed by a digit or an uppercase
// letter (99213, 0042T, 0001U)
func validateCPTCode(fl validator.FieldLevel) bool {
	code := fl.Field().String()
	if code == "" {
		return false
	}

	matched, _ := regexp.MatchString(`^\d{4}[0-9A-Z]$`, code)
	return matched
}

// validateReportGroup validates that a summary group name is one of the
// supported aggregate tables
func validateReportGroup(fl validator.FieldLevel) bool {
	group := strings.ToLower(fl.Field().String())
	validGroups := map[string]bool{
		"codes":     true,
		"payers":    true,
		"providers": true,
	}
	return validGroups[group]
}
