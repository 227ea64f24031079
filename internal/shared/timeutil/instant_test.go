package timeutil_test

import (
	"testing"
	"time"

	"go-hris-backoffice/internal/shared/timeutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseInstant(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  time.Time
	}{
		{"rfc3339", "2024-01-01T09:00:00Z", time.Date(2024, 1, 1, 9, 0, 0, 0, time.UTC)},
		{"fraction", "2024-01-01T09:00:00.250Z", time.Date(2024, 1, 1, 9, 0, 0, 250_000_000, time.UTC)},
		{"offset", "2024-01-01T16:00:00+07:00", time.Date(2024, 1, 1, 9, 0, 0, 0, time.UTC)},
		{"no zone", "2024-01-01T09:00:00", time.Date(2024, 1, 1, 9, 0, 0, 0, time.UTC)},
		{"no seconds", "2024-01-01T09:00", time.Date(2024, 1, 1, 9, 0, 0, 0, time.UTC)},
		{"date", "2024-02-29", time.Date(2024, 2, 29, 0, 0, 0, 0, time.UTC)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := timeutil.ParseInstant(tt.input)
			require.NoError(t, err)
			assert.True(t, tt.want.Equal(got))
			assert.Equal(t, time.UTC, got.Location())
		})
	}
}

func TestParseInstant_Invalid(t *testing.T) {
	for _, input := range []string{"", "   ", "yesterday", "2024-13-01", "2023-02-29", "09:00"} {
		_, err := timeutil.ParseInstant(input)
		assert.ErrorIs(t, err, timeutil.ErrInvalidInstant, input)
	}
}

func TestFormat(t *testing.T) {
	at := time.Date(2024, 1, 1, 16, 0, 0, 0, time.FixedZone("WIB", 7*3600))
	assert.Equal(t, "2024-01-01T09:00:00Z", timeutil.Format(at))
}
