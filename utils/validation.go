// utils/validation.go
package utils

import (
	"fmt"
	"regexp"
	"strings"
)

var emailRegex = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)

// NormalizePhone strips every non-digit character. A leading "1" country
// code on an 11-digit number is dropped, so "+1 (234) 567-8901" and
// "234-567-8901" normalize to the same string.
func NormalizePhone(raw string) string {
	var b strings.Builder
	for _, r := range raw {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	digits := b.String()
	if len(digits) == 11 && digits[0] == '1' {
		digits = digits[1:]
	}
	return digits
}

// ValidatePhone reports whether a normalized phone is exactly 10 digits.
func ValidatePhone(digits string) bool {
	if len(digits) != 10 {
		return false
	}
	for _, r := range digits {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

// FormatPhone renders a stored 10-digit phone for display. Anything else is
// returned unchanged.
func FormatPhone(digits string) string {
	if len(digits) != 10 {
		return digits
	}
	return fmt.Sprintf("(%s) %s-%s", digits[0:3], digits[3:6], digits[6:10])
}

func ValidateEmail(email string) bool {
	return emailRegex.MatchString(email)
}
