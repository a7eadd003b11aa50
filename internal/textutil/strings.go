package textutil

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/spf13/cast"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// SafeString formats v as a string, returning "" for nil.
func SafeString(v any) string {
	if v == nil {
		return ""
	}
	if s, err := cast.ToStringE(v); err == nil {
		return s
	}
	return fmt.Sprint(v)
}

// ProperCase title-cases every word of s.
func ProperCase(s string) string {
	return cases.Title(language.Und).String(strings.ToLower(s))
}

// RemoveSpaces drops every space character from s.
func RemoveSpaces(s string) string {
	return strings.ReplaceAll(s, " ", "")
}

// AppendString joins input and suffix with a single space. When either is
// empty the other is returned unchanged.
func AppendString(input, suffix string) string {
	switch {
	case input == "":
		return suffix
	case suffix == "":
		return input
	default:
		return input + " " + suffix
	}
}

// IsGUID reports whether s is a GUID in the 8-4-4-4-12 hex form, optionally
// wrapped in braces.
func IsGUID(s string) bool {
	s = strings.TrimSuffix(strings.TrimPrefix(s, "{"), "}")
	if len(s) != 36 {
		return false
	}
	return uuid.Validate(s) == nil
}

// IsBool reports whether v reads as true, false, 1 or 0.
func IsBool(v any) bool {
	if v == nil {
		return false
	}
	switch strings.ToLower(strings.TrimSpace(SafeString(v))) {
	case "true", "false", "1", "0":
		return true
	}
	return false
}

// ToBool converts s to a bool. Anything IsBool rejects is false.
func ToBool(s string) bool {
	if !IsBool(s) {
		return false
	}
	return cast.ToBool(strings.ToLower(strings.TrimSpace(s)))
}
