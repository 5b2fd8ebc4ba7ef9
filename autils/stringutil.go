package autils

import "strings"

// ToStringTrimLower returns the input string in lowercase after trimming whitespace.
func ToStringTrimLower(target string) string {
	return strings.ToLower(strings.TrimSpace(target))
}
