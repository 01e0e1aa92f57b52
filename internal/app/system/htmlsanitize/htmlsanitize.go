// Package htmlsanitize cleans profile and school data before it is shown.
//
// Display strings (names, class names, assignment titles) come from the
// data store and may have been written by other tools. They are reduced to
// plain text here; html/template then escapes them once on output.
package htmlsanitize

import (
	"html"
	"strings"
	"sync"

	"github.com/dalemusser/waffle/pantry/urlutil"
	"github.com/microcosm-cc/bluemonday"
)

var (
	strictOnce sync.Once
	strict     *bluemonday.Policy
)

func strictPolicy() *bluemonday.Policy {
	strictOnce.Do(func() {
		strict = bluemonday.StrictPolicy()
	})
	return strict
}

// PlainText strips all markup from s and collapses surrounding whitespace.
// The result is unescaped text, ready for html/template.
func PlainText(s string) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return ""
	}
	if IsPlainText(s) {
		return s
	}
	return strings.TrimSpace(html.UnescapeString(strictPolicy().Sanitize(s)))
}

// IsPlainText reports whether s contains no HTML tags.
// A lone "<" or ">" (e.g. "5 < 10") is treated as plain text.
func IsPlainText(s string) bool {
	return !(strings.Contains(s, "<") && strings.Contains(s, ">"))
}

// AvatarURL returns u if it is an absolute http(s) URL, or "" otherwise.
func AvatarURL(u string) string {
	u = strings.TrimSpace(u)
	if u == "" {
		return ""
	}
	if !urlutil.IsValidAbsHTTPURL(u) {
		return ""
	}
	return u
}
