package util

import (
	"strings"
	"unicode"
)

// NormalizeCompanyNumber upper-cases a Companies House company number
// and left-pads purely numeric values to the registry's 8-character
// form (e.g. "1234567" -> "01234567"). Prefixed numbers (SC, NI, OC,
// ...) are only upper-cased.
func NormalizeCompanyNumber(s string) string {
	s = strings.ToUpper(strings.TrimSpace(s))
	if s == "" {
		return s
	}
	if isDigits(s) && len(s) < 8 {
		s = strings.Repeat("0", 8-len(s)) + s
	}
	return s
}

// IsCompanyNumber reports whether s looks like a normalized company
// number: 8 characters, either all digits or a 2-letter prefix
// followed by 6 digits.
func IsCompanyNumber(s string) bool {
	if len(s) != 8 {
		return false
	}
	if isDigits(s) {
		return true
	}
	prefix, rest := s[:2], s[2:]
	for _, r := range prefix {
		if !unicode.IsUpper(r) {
			return false
		}
	}
	return isDigits(rest)
}

func isDigits(s string) bool {
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
