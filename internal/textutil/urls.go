package textutil

import (
	"net/url"
	"strings"
)

// AppendSlash adds a trailing slash unless s is empty or already has one.
func AppendSlash(s string) string {
	if s == "" || strings.HasSuffix(s, "/") {
		return s
	}
	return s + "/"
}

// TrimSlash removes every trailing slash.
func TrimSlash(s string) string {
	return strings.TrimRight(s, "/")
}

// URLPathEncode escapes s for use as a URL path, keeping the slashes.
func URLPathEncode(s string) string {
	return (&url.URL{Path: s}).EscapedPath()
}

// URLPathDecode reverses URLPathEncode.
func URLPathDecode(s string) (string, error) {
	return url.PathUnescape(s)
}
