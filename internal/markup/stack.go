package markup

import "strings"

// tagStack holds the names of tags opened but not yet closed, oldest first.
type tagStack []string

func (t *tagStack) push(name string) {
	*t = append(*t, name)
}

// closeLast drops the most recent entry matching name together with every
// entry opened after it. Names without a match are ignored.
func (t *tagStack) closeLast(name string) {
	for i := len(*t) - 1; i >= 0; i-- {
		if strings.EqualFold((*t)[i], name) {
			*t = (*t)[:i]
			return
		}
	}
}

// close appends a closing tag for every open entry, newest first.
func (t tagStack) close(out string, visible int) Result {
	var b strings.Builder
	b.WriteString(out)

	closed := make([]string, 0, len(t))
	for i := len(t) - 1; i >= 0; i-- {
		b.WriteString("</")
		b.WriteString(t[i])
		b.WriteString(">")
		closed = append(closed, t[i])
	}

	return Result{
		Output:  b.String(),
		Status:  StatusTruncated,
		Visible: visible,
		Closed:  closed,
	}
}
