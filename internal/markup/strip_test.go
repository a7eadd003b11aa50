package markup

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestStripHTML(t *testing.T) {
	t.Parallel()

	require.Equal(t, "Hello world", StripHTML("<p>Hello <b>world</b></p>"))
	require.Equal(t, "a & b", StripHTML(`<a href="x">a & b</a>`))
	require.Equal(t, "before", StripHTML("before<unterminated"))
	require.Equal(t, "", StripHTML(""))
}

func TestVisibleLength(t *testing.T) {
	t.Parallel()

	require.Equal(t, 12, VisibleLength("<p>Fish &amp; Chips</p>"))
	require.Equal(t, 0, VisibleLength("<br/><p> </p>"))
	require.Equal(t, 5, VisibleLength("Hello<b"))
	require.Equal(t, 10, VisibleLength("Hello <i>world</i>"))
}

func TestPlainText(t *testing.T) {
	t.Parallel()

	require.Equal(t, "Fish & Chips", PlainText("<p>Fish &amp;\n Chips</p>"))
}
