package textutil

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSlashes(t *testing.T) {
	t.Parallel()

	require.Equal(t, "", AppendSlash(""))
	require.Equal(t, "/sites/a/", AppendSlash("/sites/a"))
	require.Equal(t, "/sites/a/", AppendSlash("/sites/a/"))

	require.Equal(t, "/sites/a", TrimSlash("/sites/a//"))
	require.Equal(t, "/sites/a", TrimSlash("/sites/a"))
	require.Equal(t, "", TrimSlash(""))
}

func TestURLPath(t *testing.T) {
	t.Parallel()

	encoded := URLPathEncode("/sites/my docs/a#b")
	require.Equal(t, "/sites/my%20docs/a%23b", encoded)

	decoded, err := URLPathDecode(encoded)
	require.NoError(t, err)
	require.Equal(t, "/sites/my docs/a#b", decoded)

	_, err = URLPathDecode("%zz")
	require.Error(t, err)
}
