package templates

import (
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/shopspring/decimal"
)

var (
	lineBreakReplacer = strings.NewReplacer("<br>", "\n", "</p>", "\n")
	tagPattern        = regexp.MustCompile(`<[^<]+?>`)
)

// PlainText derives the text alternative of an HTML body: line-break and
// paragraph-close tags become newlines, every other tag is removed.
func PlainText(html string) string {
	return tagPattern.ReplaceAllString(lineBreakReplacer.Replace(html), "")
}

// FormatCurrency renders an amount as US dollars with thousands separators,
// e.g. $1,234.56. Negative amounts render as -$1.00.
func FormatCurrency(amount decimal.Decimal) string {
	fixed := amount.Abs().StringFixed(2)
	whole, cents := fixed[:len(fixed)-3], fixed[len(fixed)-2:]

	var b strings.Builder
	if amount.IsNegative() && fixed != "0.00" {
		b.WriteByte('-')
	}
	b.WriteByte('$')
	for i, c := range whole {
		if i > 0 && (len(whole)-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteRune(c)
	}
	b.WriteByte('.')
	b.WriteString(cents)
	return b.String()
}

// ProductLabel turns a product type such as "die_cut_sticker" into
// "Die Cut Sticker". HTML entities in the already-escaped value are copied
// through untouched.
func ProductLabel(productType string) string {
	s := strings.ReplaceAll(productType, "_", " ")

	var b strings.Builder
	prevLetter := false
	for i := 0; i < len(s); {
		if s[i] == '&' {
			if end := strings.IndexByte(s[i:], ';'); end > 0 && end <= 10 {
				b.WriteString(s[i : i+end+1])
				i += end + 1
				prevLetter = false
				continue
			}
		}
		r, size := utf8.DecodeRuneInString(s[i:])
		switch {
		case unicode.IsLetter(r) && prevLetter:
			b.WriteRune(unicode.ToLower(r))
		case unicode.IsLetter(r):
			b.WriteRune(unicode.ToUpper(r))
		default:
			b.WriteRune(r)
		}
		prevLetter = unicode.IsLetter(r)
		i += size
	}
	return b.String()
}

// truncateRunes cuts s to n characters.
func truncateRunes(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n])
}
