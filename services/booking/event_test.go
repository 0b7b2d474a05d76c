package booking

import (
	"testing"
	"time"

	"salvatore/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testRecord() models.BookingRecord {
	return models.BookingRecord{
		Date:      "2026-11-01",
		StartTime: "6pm",
		EndTime:   "9pm",
		PartySize: 25,
		EventType: "Birthday Party",
		Food:      "pasta",
		Email:     "guest@example.com",
		Phone:     "330-502-9339",
	}
}

func TestBuildCalendarEvent(t *testing.T) {
	t.Run("full record", func(t *testing.T) {
		ev, err := buildCalendarEvent(testRecord(), time.UTC)
		require.NoError(t, err)

		assert.Equal(t, "Banquet: Birthday Party - 25 guests", ev.Summary)
		assert.Equal(t, "2026-11-01T18:00:00Z", ev.Start.DateTime)
		assert.Equal(t, "2026-11-01T21:00:00Z", ev.End.DateTime)
		assert.Equal(t, "UTC", ev.Start.TimeZone)
		assert.Contains(t, ev.Description, "Customer: guest@example.com")
		assert.Contains(t, ev.Description, "Guests: 25")
		require.Len(t, ev.Attendees, 1)
		assert.Equal(t, "guest@example.com", ev.Attendees[0].Email)
	})

	t.Run("end before start gets one hour", func(t *testing.T) {
		rec := testRecord()
		rec.EndTime = "5pm"
		ev, err := buildCalendarEvent(rec, time.UTC)
		require.NoError(t, err)
		assert.Equal(t, "2026-11-01T19:00:00Z", ev.End.DateTime)
	})

	t.Run("missing end defaults to one hour", func(t *testing.T) {
		rec := testRecord()
		rec.EndTime = ""
		ev, err := buildCalendarEvent(rec, time.UTC)
		require.NoError(t, err)
		assert.Equal(t, "2026-11-01T19:00:00Z", ev.End.DateTime)
	})

	t.Run("unparseable date errors", func(t *testing.T) {
		rec := testRecord()
		rec.Date = "whenever works"
		_, err := buildCalendarEvent(rec, time.UTC)
		assert.Error(t, err)
	})
}

func TestSheetRow(t *testing.T) {
	createdAt := time.Date(2026, 8, 28, 10, 30, 0, 0, time.UTC)

	t.Run("column order", func(t *testing.T) {
		row := sheetRow(testRecord(), createdAt)
		want := []interface{}{
			"2026-08-28T10:30:00Z",
			"2026-11-01",
			"6pm",
			"9pm",
			25,
			"Birthday Party",
			"pasta",
			"guest@example.com",
			"330-502-9339",
			"None",
			"None",
		}
		assert.Equal(t, want, row)
	})

	t.Run("empty optionals fall back", func(t *testing.T) {
		rec := testRecord()
		rec.EndTime = ""
		rec.Phone = ""
		rec.Decor = ""
		rec.Extras = "balloons"
		row := sheetRow(rec, createdAt)
		assert.Equal(t, "N/A", row[3])
		assert.Equal(t, "N/A", row[8])
		assert.Equal(t, "None", row[9])
		assert.Equal(t, "balloons", row[10])
	})
}
