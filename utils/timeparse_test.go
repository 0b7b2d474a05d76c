package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeClock(t *testing.T) {
	testCases := []struct {
		input string
		want  string
	}{
		{"6pm", "18:00:00"},
		{"12am", "00:00:00"},
		{"12pm", "12:00:00"},
		{"6:30", "06:30:00"},
		{"6:30 pm", "18:30:00"},
		{"9 PM", "21:00:00"},
		{"18", "18:00:00"},
		{"", "00:00:00"},
		{"noonish", "00:00:00"},
	}

	for _, tc := range testCases {
		t.Run(tc.input, func(t *testing.T) {
			assert.Equal(t, tc.want, NormalizeClock(tc.input))
		})
	}
}

func TestEventSpan(t *testing.T) {
	loc := time.UTC

	t.Run("normal range", func(t *testing.T) {
		start, end, err := EventSpan("2026-11-01", "6pm", "9pm", loc)
		require.NoError(t, err)
		assert.Equal(t, "2026-11-01T18:00:00Z", start.Format(time.RFC3339))
		assert.Equal(t, "2026-11-01T21:00:00Z", end.Format(time.RFC3339))
	})

	t.Run("end before start is coerced to start plus one hour", func(t *testing.T) {
		start, end, err := EventSpan("2026-11-01", "6pm", "5pm", loc)
		require.NoError(t, err)
		assert.Equal(t, start.Add(time.Hour), end)
	})

	t.Run("end equal to start is coerced", func(t *testing.T) {
		start, end, err := EventSpan("2026-11-01", "6pm", "6pm", loc)
		require.NoError(t, err)
		assert.Equal(t, start.Add(time.Hour), end)
	})

	t.Run("missing end defaults to one hour", func(t *testing.T) {
		start, end, err := EventSpan("2026-11-01", "6pm", "", loc)
		require.NoError(t, err)
		assert.Equal(t, start.Add(time.Hour), end)
	})

	t.Run("end is always strictly after start", func(t *testing.T) {
		for _, endStr := range []string{"", "1am", "6pm", "9pm", "garbage"} {
			start, end, err := EventSpan("2026-11-01", "6pm", endStr, loc)
			require.NoError(t, err)
			assert.True(t, end.After(start), "end %q must be after start", endStr)
		}
	})

	t.Run("invalid date errors", func(t *testing.T) {
		_, _, err := EventSpan("next friday", "6pm", "9pm", loc)
		assert.Error(t, err)
	})
}
