package booking

import (
	"fmt"
	"time"

	"salvatore/models"
	"salvatore/utils"

	calendar "google.golang.org/api/calendar/v3"
)

// buildCalendarEvent synthesizes the calendar event for a booking: a title
// naming the event type and headcount, a description embedding the contact
// details, and an RFC3339 span in the configured time zone.
func buildCalendarEvent(rec models.BookingRecord, loc *time.Location) (*calendar.Event, error) {
	start, end, err := utils.EventSpan(rec.Date, rec.StartTime, rec.EndTime, loc)
	if err != nil {
		return nil, err
	}

	eventType := rec.EventType
	if eventType == "" {
		eventType = "Event"
	}
	food := rec.Food
	if food == "" {
		food = "Not specified"
	}
	notes := rec.Extras
	if notes == "" {
		notes = "None"
	}

	event := &calendar.Event{
		Summary: fmt.Sprintf("Banquet: %s - %d guests", eventType, rec.PartySize),
		Description: fmt.Sprintf("Customer: %s\nPhone: %s\nGuests: %d\nFood: %s\nNotes: %s",
			rec.Email, orNA(rec.Phone), rec.PartySize, food, notes),
		Start: &calendar.EventDateTime{
			DateTime: start.Format(time.RFC3339),
			TimeZone: loc.String(),
		},
		End: &calendar.EventDateTime{
			DateTime: end.Format(time.RFC3339),
			TimeZone: loc.String(),
		},
	}
	if rec.Email != "" {
		event.Attendees = []*calendar.EventAttendee{{Email: rec.Email}}
	}
	return event, nil
}

// sheetRow lays the booking out in the spreadsheet's fixed column order.
func sheetRow(rec models.BookingRecord, createdAt time.Time) []interface{} {
	decor := rec.Decor
	if decor == "" {
		decor = "None"
	}
	extras := rec.Extras
	if extras == "" {
		extras = "None"
	}
	return []interface{}{
		createdAt.Format(time.RFC3339),
		rec.Date,
		rec.StartTime,
		orNA(rec.EndTime),
		rec.PartySize,
		orNA(rec.EventType),
		orNA(rec.Food),
		rec.Email,
		orNA(rec.Phone),
		decor,
		extras,
	}
}

func orNA(s string) string {
	if s == "" {
		return "N/A"
	}
	return s
}
