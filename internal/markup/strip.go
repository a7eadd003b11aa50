package markup

import (
	"strings"

	"golang.org/x/net/html"
)

// StripHTML removes everything between '<' and '>' from s. An unterminated
// tag swallows the rest of the input.
func StripHTML(s string) string {
	var b strings.Builder
	b.Grow(len(s))

	inside := false
	for _, r := range s {
		switch {
		case r == '<':
			inside = true
		case r == '>':
			inside = false
		case !inside:
			b.WriteRune(r)
		}
	}

	return b.String()
}

// VisibleLength counts the decoded text characters of s the way the truncator
// does: each text span between tags is trimmed and entity-decoded first.
func VisibleLength(s string) int {
	total := 0
	for s != "" {
		lt := strings.IndexByte(s, '<')
		if lt == -1 {
			return total + spanLength(s)
		}
		total += spanLength(s[:lt])

		gt := strings.IndexByte(s[lt:], '>')
		if gt == -1 {
			return total
		}
		s = s[lt+gt+1:]
	}
	return total
}

// PlainText strips tags, decodes entities and normalizes whitespace.
func PlainText(s string) string {
	return strings.TrimSpace(NormalizeSpace(html.UnescapeString(StripHTML(s))))
}

