// Package tagname turns user-typed text into Git tag names and checks them
// against the tags a repository already has.
package tagname

import (
	"regexp"
	"strings"
	"unicode"
)

// invalidRefChars matches every sequence git check-ref-format rejects in a
// single ref component: control characters, space, DEL, the glob and revision
// metacharacters, "@{", ".." runs, a leading or trailing dot, a trailing
// ".lock" and a trailing slash.
var invalidRefChars = regexp.MustCompile(`[\x00-\x20\x7F~^:?*\[\\|"<>]+|@\{|\.\.+|^\.|\.$|\.lock$|/$`)

// leadingDashes matches the '-' and '+' characters a tag name may not start with.
var leadingDashes = regexp.MustCompile(`^[-+]*`)

// Replacement is substituted for each invalid sequence.
const Replacement = "-"

// Sanitize maps raw input to a string usable as a tag name.
//
// Each disallowed sequence becomes a single "-" and leading '-'/'+' are
// dropped. Stripping can expose a new leading dot, so the rewrite repeats
// until nothing changes; Sanitize(Sanitize(s)) == Sanitize(s) for every s.
// The result can be empty or consist only of Unicode whitespace, see IsBlank.
func Sanitize(raw string) string {
	s := raw
	for {
		next := sanitizeOnce(s)
		if next == s {
			return s
		}
		s = next
	}
}

func sanitizeOnce(s string) string {
	s = invalidRefChars.ReplaceAllString(s, Replacement)
	return leadingDashes.ReplaceAllString(s, "")
}

// IsBlank reports whether s is empty or made only of whitespace.
// A blank sanitized name can never be submitted.
func IsBlank(s string) bool {
	return strings.TrimFunc(s, unicode.IsSpace) == ""
}
