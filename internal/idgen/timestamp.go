package idgen

import "time"

// TimestampLayout is the canonical hash-input form of a timestamp: UTC, millisecond
// precision. Earlier data keyed on a date-only form is not reproducible with it.
const TimestampLayout = "2006-01-02T15:04:05.000Z"

// CanonicalTimestamp renders t in TimestampLayout.
func CanonicalTimestamp(t time.Time) string {
	return t.UTC().Format(TimestampLayout)
}

// ParseTimestamp accepts TimestampLayout and RFC 3339 (with or without fractional
// seconds) and returns the instant truncated to milliseconds.
func ParseTimestamp(s string) (time.Time, error) {
	t, err := time.Parse(TimestampLayout, s)
	if err != nil {
		t, err = time.Parse(time.RFC3339Nano, s)
		if err != nil {
			return time.Time{}, err
		}
	}
	return t.UTC().Truncate(time.Millisecond), nil
}
