package validation

import (
	"reflect"
	"strings"

	"courtside/internal/models"

	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
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

	_ = v.RegisterValidation("iso_date", validateISODate)
	_ = v.RegisterValidation("time_of_day", validateTimeOfDay)
	_ = v.RegisterValidation("statement_month", validateStatementMonth)
	_ = v.RegisterValidation("session_type", validateSessionType)
	_ = v.RegisterValidation("client_status", validateClientStatus)
	_ = v.RegisterValidation("day_event_kind", validateDayEventKind)
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

// Custom validation functions

// validateISODate validates a zero-padded "YYYY-MM-DD" calendar date.
// Zero padding matters: the billing core compares dates lexicographically.
func validateISODate(fl validator.FieldLevel) bool {
	return models.IsValidDate(fl.Field().String())
}

// validateTimeOfDay validates a zero-padded "HH:MM" time of day
func validateTimeOfDay(fl validator.FieldLevel) bool {
	return models.IsValidTimeOfDay(fl.Field().String())
}

// validateStatementMonth validates a "YYYY-MM" statement month selector
func validateStatementMonth(fl validator.FieldLevel) bool {
	return models.IsValidMonth(fl.Field().String())
}

// validateSessionType validates the session type enum
func validateSessionType(fl validator.FieldLevel) bool {
	return models.IsValidSessionType(fl.Field().String())
}

// validateClientStatus validates the client status enum
func validateClientStatus(fl validator.FieldLevel) bool {
	return models.IsValidClientStatus(fl.Field().String())
}

// validateDayEventKind validates the day event kind enum
func validateDayEventKind(fl validator.FieldLevel) bool {
	return models.IsValidDayEventKind(fl.Field().String())
}

// validatePositiveAmount validates that a money string parses to a positive
// decimal with at most two fraction digits
func validatePositiveAmount(fl validator.FieldLevel) bool {
	raw := fl.Field().String()
	amount, err := decimal.NewFromString(raw)
	if err != nil {
		return false
	}
	if amount.LessThanOrEqual(decimal.Zero) {
		return false
	}
	return amount.Exponent() >= -2
}

// Struct validates a struct using the configured rules
func (v *Validator) Struct(s interface{}) error {
	return v.validate.Struct(s)
}
