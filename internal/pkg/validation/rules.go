package validation

import (
	"regexp"
	"strconv"
	"time"

	"github.com/go-playground/validator/v10"
)

// Validation rule patterns
var (
	// CNIC format: 5-7-1 digit groups, e.g. 12345-1234567-1
	CNICPattern = `^\d{5}-\d{7}-\d{1}$`

	// Pakistani phone format: +92 followed by 10 digits, e.g. +923123456789
	PhonePattern = `^\+92\d{10}$`

	// DateLayout is the form date format
	DateLayout = "2006-01-02"
)

// CompiledPatterns caches compiled regex patterns
var CompiledPatterns = struct {
	CNIC  *regexp.Regexp
	Phone *regexp.Regexp
}{
	CNIC:  regexp.MustCompile(CNICPattern),
	Phone: regexp.MustCompile(PhonePattern),
}

// IsCNIC reports whether s matches the national identity card format.
func IsCNIC(s string) bool {
	return CompiledPatterns.CNIC.MatchString(s)
}

// IsPhone reports whether s matches the +92 phone format.
func IsPhone(s string) bool {
	return CompiledPatterns.Phone.MatchString(s)
}

// ParseDate parses a form date in 2006-01-02 layout.
func ParseDate(s string) (time.Time, error) {
	return time.Parse(DateLayout, s)
}

// IsFutureDate reports whether s parses as a date after now.
// A parse failure returns false; callers that care use ParseDate first.
func IsFutureDate(s string, now time.Time) bool {
	d, err := ParseDate(s)
	if err != nil {
		return false
	}
	return d.After(now)
}

// IsOneOf reports whether s equals one of the allowed values.
func IsOneOf(s string, allowed ...string) bool {
	for _, a := range allowed {
		if s == a {
			return true
		}
	}
	return false
}

// IntInRange parses s and checks min <= n <= max.
func IntInRange(s string, min, max int) (int, bool) {
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, false
	}
	return n, n >= min && n <= max
}

// RegisterCustomValidators adds the cnic and pkphone tags to a validator
// engine so DTOs can use them in binding tags.
func RegisterCustomValidators(v *validator.Validate) error {
	if err := v.RegisterValidation("cnic", func(fl validator.FieldLevel) bool {
		return IsCNIC(fl.Field().String())
	}); err != nil {
		return err
	}
	return v.RegisterValidation("pkphone", func(fl validator.FieldLevel) bool {
		return IsPhone(fl.Field().String())
	})
}
