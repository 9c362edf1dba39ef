// Package validator holds the pure input checks run before any event
// mutation. It never touches storage.
package validator

import (
	"fmt"
	"regexp"
	"strings"
	"unicode/utf8"

	"countdown/internal/domain"
)

const maxNameLength = 256

// dateShape matches the exact YYYY-MM-DD pattern. Shape is checked separately
// from calendar validity so the two failure modes stay distinguishable.
var dateShape = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)

// Name fails with domain.ErrInvalidName if name is empty, longer than 256
// characters, or contains a tab or newline.
func Name(name string) error {
	if name == "" {
		return fmt.Errorf("%w: name is empty", domain.ErrInvalidName)
	}
	if n := utf8.RuneCountInString(name); n > maxNameLength {
		return fmt.Errorf("%w: name is %d characters, max %d", domain.ErrInvalidName, n, maxNameLength)
	}
	if strings.ContainsAny(name, "\t\n") {
		return fmt.Errorf("%w: name contains tab or newline", domain.ErrInvalidName)
	}
	return nil
}

// DateFormat fails with domain.ErrInvalidDateFormat unless text has the exact
// YYYY-MM-DD shape.
func DateFormat(text string) error {
	if !dateShape.MatchString(text) {
		return fmt.Errorf("%w: %q", domain.ErrInvalidDateFormat, text)
	}
	return nil
}

// DateValue fails with domain.ErrInvalidCalendarDate if the numeric
// components do not form a real calendar date (month 13, February 30 in a
// non-leap year).
func DateValue(text string) error {
	if _, err := domain.ParseTargetDate(text); err != nil {
		return fmt.Errorf("%w: %q", domain.ErrInvalidCalendarDate, text)
	}
	return nil
}

// Event runs all checks in sequence, short-circuiting on the first failure.
// The single entry point used before any create.
func Event(name, targetDate string) error {
	if err := Name(name); err != nil {
		return err
	}
	if err := DateFormat(targetDate); err != nil {
		return err
	}
	return DateValue(targetDate)
}
