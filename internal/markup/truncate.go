package markup

import (
	"errors"
	"strings"
	"unicode/utf8"

	"golang.org/x/net/html"
)

const (
	// Ellipsis is appended to truncated output before the synthetic closing tags.
	Ellipsis = "... "
	// MaxIterations caps the number of scan steps for a single call.
	MaxIterations = 999
	// OverflowMessage is the legacy string returned when the scan hits the cap.
	OverflowMessage = "Error: HTML too complex!"
)

// ErrTooComplex is reported by Result.Err when the scan exceeded its iteration cap.
var ErrTooComplex = errors.New("html too complex")

var spaceReplacer = strings.NewReplacer("\t", " ", "\r", " ", "\n", " ")

// Status tells how a truncation call ended.
type Status int

const (
	// StatusComplete means the whole input fit into the budget.
	StatusComplete Status = iota
	// StatusTruncated means the input was cut and open tags were closed.
	StatusTruncated
	// StatusOverflow means the scan was aborted by the iteration cap.
	StatusOverflow
)

func (s Status) String() string {
	switch s {
	case StatusComplete:
		return "complete"
	case StatusTruncated:
		return "truncated"
	case StatusOverflow:
		return "overflow"
	default:
		return "unknown"
	}
}

// Options tune TruncateWith. The zero value matches Truncate.
type Options struct {
	// Ellipsis replaces the default marker when not empty.
	Ellipsis string
	// MaxIterations replaces the default cap when positive.
	MaxIterations int
	// EscapeCut re-encodes entities in the text fragment that was cut.
	EscapeCut bool
	// SkipVoid treats void elements, comments and declarations as self-closing.
	SkipVoid bool
}

// Result is the outcome of TruncateWith.
type Result struct {
	Output string
	Status Status
	// Visible is the number of decoded text characters kept in Output.
	Visible int
	// Closed lists the names of the synthetic closing tags, in emission order.
	Closed []string
}

// Truncated reports whether the input was cut.
func (r Result) Truncated() bool { return r.Status == StatusTruncated }

// Err returns ErrTooComplex for an overflowed result and nil otherwise.
func (r Result) Err() error {
	if r.Status == StatusOverflow {
		return ErrTooComplex
	}
	return nil
}

// String returns the output, or OverflowMessage when the scan was aborted.
func (r Result) String() string {
	if r.Status == StatusOverflow {
		return OverflowMessage
	}
	return r.Output
}

// Truncate shortens markup to limit visible characters, closing every tag that
// is still open at the cut point. It returns OverflowMessage for input too
// complex to scan.
func Truncate(markup string, limit int) string {
	return TruncateWith(markup, limit, Options{}).String()
}

// TruncateWith is Truncate with options and a tagged result.
//
// Visible characters are counted on entity-decoded, whitespace-trimmed text
// spans between tags. Tags are always kept whole.
func TruncateWith(markup string, limit int, opts Options) Result {
	if limit < 0 {
		limit = 0
	}

	ellipsis := opts.Ellipsis
	if ellipsis == "" {
		ellipsis = Ellipsis
	}

	maxIterations := opts.MaxIterations
	if maxIterations <= 0 {
		maxIterations = MaxIterations
	}

	s := NormalizeSpace(markup)
	if s == "" {
		return Result{Status: StatusComplete}
	}

	var (
		open    tagStack
		cursor  int
		visible int
	)

	for iteration := 1; ; iteration++ {
		if iteration > maxIterations {
			return Result{Output: OverflowMessage, Status: StatusOverflow}
		}

		end := strings.IndexByte(s[cursor:], '<')
		last := end == -1
		if last {
			end = len(s)
		} else {
			end += cursor
		}

		span := spanLength(s[cursor:end])

		if (last && visible+span > limit) || (!last && visible+span >= limit) {
			if !last && visible+span == limit && VisibleLength(s[end:]) == 0 {
				return Result{Output: s, Status: StatusComplete, Visible: limit}
			}

			remaining := limit - visible
			out := s[:cursor] + cutSpan(s[cursor:end], remaining, opts.EscapeCut)
			return open.close(out+ellipsis, limit)
		}

		visible += span
		if last {
			return Result{Output: s, Status: StatusComplete, Visible: visible}
		}

		gt := strings.IndexByte(s[end:], '>')
		if gt == -1 {
			return open.close(s[:end]+ellipsis, visible)
		}
		gt += end
		cursor = gt + 1

		if s[gt-1] == '/' {
			continue
		}

		name := tagName(s[end : gt+1])
		if name == "" {
			continue
		}

		if strings.HasPrefix(name, "/") {
			open.closeLast(name[1:])
			continue
		}

		if opts.SkipVoid && isVoid(name) {
			continue
		}

		open.push(name)
	}
}

// NormalizeSpace turns tabs and line breaks into spaces and collapses runs of
// spaces into one.
func NormalizeSpace(s string) string {
	s = spaceReplacer.Replace(s)
	for strings.Contains(s, "  ") {
		s = strings.ReplaceAll(s, "  ", " ")
	}
	return s
}

// tagName returns the token between '<' and the first space or '>' of tag.
func tagName(tag string) string {
	name := tag[1 : len(tag)-1]
	if i := strings.IndexByte(name, ' '); i != -1 {
		name = name[:i]
	}
	return name
}

func spanLength(span string) int {
	span = strings.TrimSpace(span)
	if span == "" {
		return 0
	}
	return utf8.RuneCountInString(html.UnescapeString(span))
}

func cutSpan(span string, n int, escape bool) string {
	runes := []rune(html.UnescapeString(strings.TrimSpace(span)))
	if n > len(runes) {
		n = len(runes)
	}

	cut := string(runes[:n])
	if escape {
		return html.EscapeString(cut)
	}
	return cut
}

var voidElements = map[string]struct{}{
	"area": {}, "base": {}, "br": {}, "col": {}, "embed": {}, "hr": {}, "img": {},
	"input": {}, "link": {}, "meta": {}, "source": {}, "track": {}, "wbr": {},
}

func isVoid(name string) bool {
	if name[0] == '!' || name[0] == '?' {
		return true
	}
	_, ok := voidElements[strings.ToLower(name)]
	return ok
}
