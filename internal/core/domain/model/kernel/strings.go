package kernel

import "strings"

// IsBlank reports whether s is empty or consists only of whitespace.
// Required-field validation across the domain treats blank as missing.
func IsBlank(s string) bool {
	return strings.TrimSpace(s) == ""
}
