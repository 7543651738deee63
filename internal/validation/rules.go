// Package validation provides custom validation rules for the application.
package validation

import (
	"net/url"
	"reflect"
	"regexp"
	"strings"
	"time"

	validation "github.com/jellydator/validation"

	apperrors "github.com/allisson/users/internal/errors"
)

var timeType = reflect.TypeOf(time.Time{})

var (
	// emailRegex is a basic email validation pattern
	emailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)

	// tokenRegex matches the token charset: letters, digits and underscore
	tokenRegex = regexp.MustCompile(`^\w+$`)

	// ppsRegex matches an Irish PPS number: 7 digits followed by 1-2 letters
	ppsRegex = regexp.MustCompile(`^(\d{7})([A-Za-z]{1,2})$`)
)

// WrapValidationError wraps validation errors as domain ErrInvalidInput
func WrapValidationError(err error) error {
	if err == nil {
		return nil
	}
	return apperrors.Wrap(apperrors.ErrInvalidInput, err.Error())
}

// Email validates email format using regex
var Email = validation.NewStringRuleWithError(
	func(s string) bool {
		return emailRegex.MatchString(s)
	},
	validation.NewError("validation_email_format", "must be a valid email address"),
)

// Token validates that a string contains only letters, digits and underscores
var Token = validation.NewStringRuleWithError(
	func(s string) bool {
		return tokenRegex.MatchString(s)
	},
	validation.NewError("validation_token_charset", "must contain only letters, numbers and underscores"),
)

// PPS validates a PPS number (7 digits plus 1-2 letters, case-insensitive)
var PPS = validation.NewStringRuleWithError(
	func(s string) bool {
		return ppsRegex.MatchString(s)
	},
	validation.NewError("validation_pps_format", "must be 7 digits followed by 1 or 2 letters"),
)

// URI validates that a string is an absolute URI
var URI = validation.NewStringRuleWithError(
	func(s string) bool {
		u, err := url.Parse(s)
		return err == nil && u.Scheme != "" && u.Host != ""
	},
	validation.NewError("validation_uri_format", "must be a valid URI"),
)

// NotBlank validates that a string is not empty after trimming whitespace
var NotBlank = validation.NewStringRuleWithError(
	func(s string) bool {
		return strings.TrimSpace(s) != ""
	},
	validation.NewError("validation_not_blank", "must not be blank"),
)

// DateBetween validates that a date falls within an inclusive range.
// The upper bound may be dynamic (e.g., "now") by supplying a Max function.
type DateBetween struct {
	Min time.Time
	Max func() time.Time
}

// Validate checks if the date is within the configured range
func (d DateBetween) Validate(value interface{}) error {
	value, isNil := validation.Indirect(value)
	if isNil || validation.IsEmpty(value) {
		return nil
	}

	t, ok := value.(time.Time)
	if !ok {
		// Accept named types with a time.Time underlying type
		rv := reflect.ValueOf(value)
		if !rv.Type().ConvertibleTo(timeType) {
			return validation.NewError("validation_date_type", "must be a date")
		}
		t = rv.Convert(timeType).Interface().(time.Time)
	}

	if t.Before(d.Min) {
		return validation.NewError(
			"validation_date_min",
			"must not be before "+d.Min.Format("2006-01-02"),
		)
	}

	if d.Max != nil && t.After(d.Max()) {
		return validation.NewError(
			"validation_date_max",
			"must not be after "+d.Max().Format("2006-01-02"),
		)
	}

	return nil
}
