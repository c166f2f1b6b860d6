// Package models defines data structures used throughout the application.
package models

import (
	"errors"
	"strings"
	"unicode"
)

// ErrInvalidPhoneNumber is returned when a phone number has no digits or contains
// characters other than digits, whitespace and a single leading '+'.
var ErrInvalidPhoneNumber = errors.New("invalid phone number")

// PhoneNumber is a normalized phone number: '+' followed by ASCII digits.
type PhoneNumber string

// NormalizePhoneNumber strips whitespace and guarantees a single leading '+'.
func NormalizePhoneNumber(raw string) (PhoneNumber, error) {
	var b strings.Builder
	b.Grow(len(raw) + 1)
	b.WriteByte('+')

	digits := 0
	seenPlus := false
	for _, r := range raw {
		switch {
		case unicode.IsSpace(r):
			continue
		case r == '+' && !seenPlus && digits == 0:
			seenPlus = true
		case r >= '0' && r <= '9':
			b.WriteRune(r)
			digits++
		default:
			return "", ErrInvalidPhoneNumber
		}
	}

	if digits == 0 {
		return "", ErrInvalidPhoneNumber
	}

	return PhoneNumber(b.String()), nil
}

func (p PhoneNumber) String() string {
	return string(p)
}

// Masked hides all but the last four digits, for logs.
func (p PhoneNumber) Masked() string {
	return MaskDigits(string(p))
}

// MaskDigits replaces every digit of s except the last four with '*'.
func MaskDigits(s string) string {
	digits := 0
	for _, r := range s {
		if r >= '0' && r <= '9' {
			digits++
		}
	}

	b := []byte(s)
	for i := range b {
		if digits <= 4 {
			break
		}
		if b[i] >= '0' && b[i] <= '9' {
			b[i] = '*'
			digits--
		}
	}
	return string(b)
}
