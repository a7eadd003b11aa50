package textutil

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestToDateTime(t *testing.T) {
	t.Parallel()

	got, err := ToDateTime("2024-03-05")
	require.NoError(t, err)
	require.Equal(t, 2024, got.Year())
	require.Equal(t, time.March, got.Month())
	require.Equal(t, 5, got.Day())

	require.True(t, IsDateTime("2024-03-05T10:00:00Z"))
	require.False(t, IsDateTime("not a date"))
	require.False(t, IsDateTime(""))
}

func TestTimestamp(t *testing.T) {
	t.Parallel()

	ts := time.Date(2024, 3, 5, 7, 8, 9, 123456789, time.UTC)
	require.Equal(t, "20240305070809123456", Timestamp(ts))

	ts = time.Date(2024, 12, 31, 23, 59, 5, 1000, time.UTC)
	require.Equal(t, "20241231235905000001", Timestamp(ts))
}
