// Package validate holds the field checks shared by every signup path.
package validate

import (
	"regexp"
	"strings"
)

// MinPasswordLength is the policy floor for account passwords.
const MinPasswordLength = 6

// PhoneDigits is the exact number of digits a phone number must have.
const PhoneDigits = 10

var emailPattern = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)

// Email reports whether s has a local-part@domain.tld shape, matched
// against the whole string.
func Email(s string) bool {
	return emailPattern.MatchString(s)
}

// Phone reports whether s is exactly ten ASCII digits.
func Phone(s string) bool {
	if len(s) != PhoneDigits {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

// AllPresent reports whether every field is non-empty after trimming
// surrounding whitespace.
func AllPresent(fields ...string) bool {
	for _, f := range fields {
		if strings.TrimSpace(f) == "" {
			return false
		}
	}
	return true
}
