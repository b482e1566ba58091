// Package sanitize neutralises HTML-significant characters in submitter text.
//
// Text is escaped exactly once, when a record is built. Artwork links are
// stored raw and escaped with Escape when a document is rendered. Escaping is
// not idempotent: running Text over its own output turns "&amp;" into
// "&amp;amp;".
package sanitize

import (
	"strings"
	"unicode/utf8"
)

// replacements run in order; the ampersand goes first so entities produced
// by the later steps are not escaped again.
var replacements = [][2]string{
	{"&", "&amp;"},
	{"<", "&lt;"},
	{">", "&gt;"},
	{`"`, "&quot;"},
	{"'", "&#x27;"},
}

// Text truncates s to maxLength characters and then escapes it.
func Text(s string, maxLength int) string {
	if s == "" {
		return ""
	}
	return Escape(Truncate(s, maxLength))
}

// Escape replaces the five HTML-significant characters with entities.
func Escape(s string) string {
	for _, r := range replacements {
		s = strings.ReplaceAll(s, r[0], r[1])
	}
	return s
}

// Truncate cuts s to at most n characters (runes, not bytes).
func Truncate(s string, n int) string {
	if n < 0 {
		n = 0
	}
	if utf8.RuneCountInString(s) <= n {
		return s
	}
	i := 0
	for pos := range s {
		if i == n {
			return s[:pos]
		}
		i++
	}
	return s
}
