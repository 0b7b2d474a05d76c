package assistant

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeDate(t *testing.T) {
	now := time.Date(2026, 8, 28, 12, 0, 0, 0, time.UTC)

	testCases := []struct {
		name  string
		input string
		want  string
	}{
		{"ordinal month-day", "November 1st", "2026-11-01"},
		{"lowercase month-day", "november 1", "2026-11-01"},
		{"day month order", "1 November", "2026-11-01"},
		{"iso date", "2025-11-01", "2025-11-01"},
		{"month day year", "November 1, 2026", "2026-11-01"},
		{"slash date", "11/01/2026", "2026-11-01"},
		{"trailing punctuation", "November 1st.", "2026-11-01"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got, ok := NormalizeDate(tc.input, now)
			assert.True(t, ok)
			assert.Equal(t, tc.want, got)
		})
	}

	t.Run("past date without a year rolls to next occurrence", func(t *testing.T) {
		got, ok := NormalizeDate("March 3rd", now)
		assert.True(t, ok)
		assert.Equal(t, "2027-03-03", got)
	})

	t.Run("explicit year is kept even when past", func(t *testing.T) {
		got, ok := NormalizeDate("2025-03-03", now)
		assert.True(t, ok)
		assert.Equal(t, "2025-03-03", got)
	})

	t.Run("casual expression", func(t *testing.T) {
		got, ok := NormalizeDate("tomorrow", now)
		assert.True(t, ok)
		assert.Equal(t, "2026-08-29", got)
	})

	t.Run("non-date text fails", func(t *testing.T) {
		_, ok := NormalizeDate("pasta and pizza please", now)
		assert.False(t, ok)
	})
}
