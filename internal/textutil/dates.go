package textutil

import (
	"fmt"
	"time"

	"github.com/spf13/cast"
)

// IsDateTime reports whether s parses as a non-zero date.
func IsDateTime(s string) bool {
	_, err := ToDateTime(s)
	return err == nil
}

// ToDateTime parses s using the layouts cast understands.
func ToDateTime(s string) (time.Time, error) {
	t, err := cast.ToTimeE(s)
	if err != nil {
		return time.Time{}, fmt.Errorf("parsing date %q: %w", s, err)
	}
	if t.IsZero() {
		return time.Time{}, fmt.Errorf("parsing date %q: zero time", s)
	}
	return t, nil
}

// Timestamp formats t as yyyyMMddHHmmss followed by six fractional digits.
func Timestamp(t time.Time) string {
	return fmt.Sprintf("%s%06d", t.Format("20060102150405"), t.Nanosecond()/int(time.Microsecond))
}
