package typenv

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// DefaultAllowedChars is the character set permitted in variable names unless
// Options.AllowedChars overrides it.
const DefaultAllowedChars = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789_"

// validateName checks a fully-qualified name against the allowed set.
// Rules are checked in order: empty, invalid character, leading digit.
func validateName(name, allowed string) error {
	if name == "" {
		return &NameError{Name: name, Reason: ReasonEmpty}
	}

	for _, r := range name {
		if !strings.ContainsRune(allowed, r) {
			return &NameError{Name: name, Reason: ReasonInvalidChar}
		}
	}

	if first, _ := utf8.DecodeRuneInString(name); unicode.IsDigit(first) {
		return &NameError{Name: name, Reason: ReasonLeadingDigit}
	}

	return nil
}
