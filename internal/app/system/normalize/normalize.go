// Package normalize canonicalizes user-supplied strings before they reach
// a store or a comparison.
package normalize

import "strings"

// Email lowercases and trims an email address.
func Email(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// Name trims a display name; case is preserved.
func Name(s string) string {
	return strings.TrimSpace(s)
}

// Role lowercases and trims a role string.
func Role(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// QueryParam trims a query parameter value; case is preserved.
func QueryParam(s string) string {
	return strings.TrimSpace(s)
}

// ID trims an identifier taken from a URL or form. Identifiers containing
// path separators or whitespace are rejected as "".
func ID(s string) string {
	s = strings.TrimSpace(s)
	if strings.ContainsAny(s, "/\\ \t\r\n") {
		return ""
	}
	return s
}
