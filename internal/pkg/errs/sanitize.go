package errs

import "strings"

// sanitize flattens multi-line values so error messages stay on one line
// when they end up in logs or HTTP responses.
func sanitize(s string) string {
	s = strings.ReplaceAll(s, "\r", " ")
	return strings.ReplaceAll(s, "\n", " ")
}
