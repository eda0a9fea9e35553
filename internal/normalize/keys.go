package normalize

import (
	"strings"
)

// Qualify builds a fully-qualified variable name from prefix fragments and a name.
// Fragments are concatenated in order without separators, then the name is appended.
// When upper is true the whole result is upper-cased.
// Examples:
//   - Qualify([]string{"PF1_", "PF2_"}, "STRING", false) → "PF1_PF2_STRING"
//   - Qualify(nil, "aN_iNtEgEr", true) → "AN_INTEGER"
func Qualify(fragments []string, name string, upper bool) string {
	qualified := Join(fragments) + name
	if upper {
		return strings.ToUpper(qualified)
	}
	return qualified
}

// Join concatenates prefix fragments in push order.
// Returns an empty string when there are no fragments.
func Join(fragments []string) string {
	switch len(fragments) {
	case 0:
		return ""
	case 1:
		return fragments[0]
	}
	var b strings.Builder
	for _, f := range fragments {
		b.WriteString(f)
	}
	return b.String()
}

// HexDigits prepares a hex literal for decoding: lower-case, optional "0x"
// stripped, and a leading "0" added when the digit count is odd.
// Examples:
//   - "0x01FE" → "01fe"
//   - "1fe" → "01fe"
func HexDigits(s string) string {
	s = strings.ToLower(s)
	s = strings.TrimPrefix(s, "0x")
	if len(s)%2 == 1 {
		s = "0" + s
	}
	return s
}
