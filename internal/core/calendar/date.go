// Package calendar holds the calendar-date exchange format used across the
// lifecycle engine. The check is syntactic only: "2024-13-99" is accepted.
package calendar

import (
	"fmt"
	"strings"
	"time"

	"github.com/example/slt/internal/core/caseerr"
)

// Layout is the time layout of the exchange format.
const Layout = "2006-01-02"

// TodaySentinel asks for the current local date instead of an explicit one.
const TodaySentinel = "today"

// IsValid reports whether s is exactly YYYY-MM-DD: ten characters, dashes at
// positions 4 and 7, ASCII digits everywhere else.
func IsValid(s string) bool {
	if len(s) != 10 {
		return false
	}
	for i := 0; i < len(s); i++ {
		c := s[i]
		if i == 4 || i == 7 {
			if c != '-' {
				return false
			}
			continue
		}
		if c < '0' || c > '9' {
			return false
		}
	}
	return true
}

// Check returns ErrInvalidDate wrapped with the offending value.
func Check(s string) error {
	if IsValid(s) {
		return nil
	}
	return fmt.Errorf("%q: %w", s, caseerr.ErrInvalidDate)
}

// Format renders t in the exchange format.
func Format(t time.Time) string {
	return t.Format(Layout)
}

// Resolve turns a session date input into a stored date. An empty input or the
// "today" sentinel resolves to now; anything else must pass Check.
func Resolve(input string, now time.Time) (string, error) {
	trimmed := strings.TrimSpace(input)
	if trimmed == "" || strings.EqualFold(trimmed, TodaySentinel) {
		return Format(now), nil
	}
	if err := Check(trimmed); err != nil {
		return "", err
	}
	return trimmed, nil
}
