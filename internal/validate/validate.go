// Package validate checks structural field constraints before requests
// reach the repositories.
package validate

import (
	"fmt"
	"regexp"
	"time"
	"unicode/utf8"
)

var (
	emailRe = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)
	phoneRe = regexp.MustCompile(`^\+?[0-9]{10,15}$`)
)

// Errors maps field names to human-readable constraint violations.
type Errors map[string]string

func (e Errors) Error() string {
	return fmt.Sprintf("validation failed for %d field(s)", len(e))
}

// Add records a violation for the named field, keeping the first one.
func (e Errors) Add(field, msg string) {
	if _, ok := e[field]; !ok {
		e[field] = msg
	}
}

// OrNil returns the collected violations, or nil when there are none.
func (e Errors) OrNil() error {
	if len(e) == 0 {
		return nil
	}
	return e
}

// Length checks an inclusive rune-count bound.
func Length(errs Errors, field, value string, min, max int) {
	n := utf8.RuneCountInString(value)
	if n < min || n > max {
		errs.Add(field, fmt.Sprintf("must be between %d and %d characters", min, max))
	}
}

// Email checks the address format.
func Email(errs Errors, field, value string) {
	if !emailRe.MatchString(value) {
		errs.Add(field, "must be a valid email address")
	}
}

// Phone checks the digits-with-optional-plus pattern.
func Phone(errs Errors, field, value string) {
	if !phoneRe.MatchString(value) {
		errs.Add(field, "must match +?[0-9]{10,15}")
	}
}

// Date checks a YYYY-MM-DD value.
func Date(errs Errors, field, value string) {
	if _, err := time.Parse("2006-01-02", value); err != nil {
		errs.Add(field, "must be a date in YYYY-MM-DD format")
	}
}

// TimeOfDay checks an HH:MM or HH:MM:SS value.
func TimeOfDay(errs Errors, field, value string) {
	if _, err := time.Parse("15:04", value); err == nil {
		return
	}
	if _, err := time.Parse("15:04:05", value); err == nil {
		return
	}
	errs.Add(field, "must be a time in HH:MM or HH:MM:SS format")
}
