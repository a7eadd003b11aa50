package textutil

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
)

var (
	ErrEmpty      = errors.New("value is empty")
	ErrNotNumeric = errors.New("value is not numeric")
	ErrOverflow   = errors.New("value is out of range")
)

// IsNumeric reports whether s parses as a number. Surrounding spaces and
// thousands separators are allowed.
func IsNumeric(s string) bool {
	_, err := parseFloat(s)
	return err == nil
}

// ToDouble parses s as a float64.
func ToDouble(s string) (float64, error) {
	if strings.TrimSpace(s) == "" {
		return 0, ErrEmpty
	}

	f, err := parseFloat(s)
	if err != nil {
		if errors.Is(err, strconv.ErrRange) {
			return 0, fmt.Errorf("%q: %w", s, ErrOverflow)
		}
		return 0, fmt.Errorf("%q: %w", s, ErrNotNumeric)
	}
	return f, nil
}

// ToInt parses s as a 32-bit integer.
func ToInt(s string) (int32, error) {
	if !IsNumeric(s) {
		return 0, fmt.Errorf("%q: %w", s, ErrNotNumeric)
	}

	n, err := strconv.ParseInt(strings.TrimSpace(s), 10, 32)
	if err != nil {
		if errors.Is(err, strconv.ErrRange) {
			return 0, fmt.Errorf("%q: %w", s, ErrOverflow)
		}
		return 0, fmt.Errorf("%q: %w", s, ErrNotNumeric)
	}
	return int32(n), nil
}

// ToIntOr converts v to a 32-bit integer. With nullAsZero, nil and empty
// values yield 0 instead of an error.
func ToIntOr(v any, nullAsZero bool) (int32, error) {
	s := SafeString(v)
	if nullAsZero && strings.TrimSpace(s) == "" {
		return 0, nil
	}
	return ToInt(s)
}

func parseFloat(s string) (float64, error) {
	s = strings.ReplaceAll(strings.TrimSpace(s), ",", "")
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, err
	}
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, strconv.ErrSyntax
	}
	return f, nil
}
