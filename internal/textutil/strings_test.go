package textutil

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSafeString(t *testing.T) {
	t.Parallel()

	var nilErr error
	require.Equal(t, "", SafeString(nil))
	require.Equal(t, "", SafeString(nilErr))
	require.Equal(t, "42", SafeString(42))
	require.Equal(t, "text", SafeString("text"))
	require.Equal(t, "{1 2}", SafeString(struct{ A, B int }{1, 2}))
}

func TestProperCase(t *testing.T) {
	t.Parallel()

	require.Equal(t, "Hello World", ProperCase("hELLO wORLD"))
	require.Equal(t, "", ProperCase(""))
}

func TestAppendString(t *testing.T) {
	t.Parallel()

	tests := []struct {
		input, suffix, expect string
	}{
		{"", "", ""},
		{"a", "", "a"},
		{"", "b", "b"},
		{"a", "b", "a b"},
	}

	for _, tt := range tests {
		require.Equal(t, tt.expect, AppendString(tt.input, tt.suffix))
	}
	require.Equal(t, "abc", RemoveSpaces(" a b  c "))
}

func TestIsGUID(t *testing.T) {
	t.Parallel()

	tests := []struct {
		input  string
		expect bool
	}{
		{input: "6ba7b810-9dad-11d1-80b4-00c04fd430c8", expect: true},
		{input: "{6BA7B810-9DAD-11D1-80B4-00C04FD430C8}", expect: true},
		{input: "6ba7b8109dad11d180b400c04fd430c8", expect: false},
		{input: "urn:uuid:6ba7b810-9dad-11d1-80b4-00c04fd430c8", expect: false},
		{input: "6ba7b810-9dad-11d1-80b4-00c04fd430cz", expect: false},
		{input: "", expect: false},
	}

	for _, tt := range tests {
		require.Equal(t, tt.expect, IsGUID(tt.input), "input %q", tt.input)
	}
}

func TestBools(t *testing.T) {
	t.Parallel()

	for _, v := range []any{"true", " FALSE ", "1", "0", 1, true} {
		require.True(t, IsBool(v), "value %v", v)
	}
	for _, v := range []any{nil, "yes", "t", "", 2} {
		require.False(t, IsBool(v), "value %v", v)
	}

	require.True(t, ToBool("True"))
	require.True(t, ToBool("1"))
	require.False(t, ToBool("0"))
	require.False(t, ToBool("yes"))
}
