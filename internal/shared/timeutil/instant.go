package timeutil

import (
	"errors"
	"strings"
	"time"
)

var ErrInvalidInstant = errors.New("invalid instant")

var layouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
	"2006-01-02",
}

// ParseInstant accepts RFC 3339 timestamps, zone-less date-times (read as
// UTC) and plain dates (UTC midnight). The result is always UTC.
func ParseInstant(raw string) (time.Time, error) {
	s := strings.TrimSpace(raw)
	if s == "" {
		return time.Time{}, ErrInvalidInstant
	}

	for _, layout := range layouts {
		t, err := time.Parse(layout, s)
		if err == nil {
			return t.UTC(), nil
		}
	}

	return time.Time{}, ErrInvalidInstant
}

// Format renders an instant the way it is stored and returned.
func Format(t time.Time) string {
	return t.UTC().Format(time.RFC3339Nano)
}

// Now is the UTC wall clock without a monotonic reading, so values survive
// an encode/decode round trip unchanged.
func Now() time.Time {
	return time.Now().UTC().Round(0)
}
