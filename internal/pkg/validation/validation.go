// Package validation implements the declarative, fail-fast rule engine used
// to validate request objects before they reach the application core.
//
// A Rule is a small value pairing a field name with a predicate and the
// message reported when the predicate fails. Cross-field rules capture their
// sibling values through closures at construction time; no reflection is
// involved and rules never mutate the object under validation.
//
// Apply evaluates rules in declared order and stops at the first failure,
// so callers surface exactly one error message per request.
package validation

import (
	"strings"
	"time"

	"ordering/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

// DateLayout is the only calendar format accepted at the API boundary
// (dd-MM-yyyy in Go reference time notation).
const DateLayout = "02-01-2006"

// Rule couples a field with a predicate and a client-facing failure message.
type Rule struct {
	Field   string
	Message string
	Valid   func() bool
}

// Apply evaluates the rules in declared order and returns the first failure
// as a *errs.ValidationError. Returns nil when every rule passes.
func Apply(rules ...Rule) error {
	for _, rule := range rules {
		if !rule.Valid() {
			return errs.NewValidationError(rule.Field, rule.Message)
		}
	}
	return nil
}

// Required fails when the value is empty.
func Required(field string, value string) Rule {
	return Rule{
		Field:   field,
		Message: field + " is required.",
		Valid:   func() bool { return value != "" },
	}
}

// Range fails when the value falls outside [min, max] inclusive.
func Range(field string, value, min, max int, message string) Rule {
	return Rule{
		Field:   field,
		Message: message,
		Valid:   func() bool { return value >= min && value <= max },
	}
}

// OptionalRange behaves like Range but passes when the value is absent.
func OptionalRange(field string, value *int, min, max int, message string) Rule {
	return Rule{
		Field:   field,
		Message: message,
		Valid: func() bool {
			if value == nil {
				return true
			}
			return *value >= min && *value <= max
		},
	}
}

// DecimalRange fails when a monetary value falls outside [min, max] inclusive.
func DecimalRange(field string, value decimal.Decimal, min, max int64, message string) Rule {
	return Rule{
		Field:   field,
		Message: message,
		Valid: func() bool {
			return value.GreaterThanOrEqual(decimal.NewFromInt(min)) &&
				value.LessThanOrEqual(decimal.NewFromInt(max))
		},
	}
}

// AllowedValues fails unless the value case-insensitively matches one of the
// allowed tokens exactly. Absent values pass; presence is Required's concern.
func AllowedValues(field string, value string, allowed []string, message string) Rule {
	return Rule{
		Field:   field,
		Message: message,
		Valid: func() bool {
			if value == "" {
				return true
			}
			for _, candidate := range allowed {
				if strings.EqualFold(candidate, value) {
					return true
				}
			}
			return false
		},
	}
}

// DateFormat fails unless the value parses exactly against DateLayout.
// Absent values pass.
func DateFormat(field string, value string) Rule {
	return Rule{
		Field:   field,
		Message: "Date format must be 'dd-MM-yyyy'.",
		Valid: func() bool {
			if value == "" {
				return true
			}
			parsed, err := time.Parse(DateLayout, value)
			// Round-trip guards against lenient parsing of unpadded digits.
			return err == nil && parsed.Format(DateLayout) == value
		},
	}
}

// RequiredWith fails when the value is absent while every named sibling is
// present. Used in both directions for mutually dependent field pairs.
func RequiredWith(field string, present bool, siblingsPresent bool, message string) Rule {
	return Rule{
		Field:   field,
		Message: message,
		Valid:   func() bool { return present || !siblingsPresent },
	}
}
