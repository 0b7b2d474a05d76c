package models

import (
	"fmt"
	"strings"
	"time"
)

// BookingRecord is the structured set of fields required to create a banquet
// reservation. Empty string / zero means the field is not yet known.
type BookingRecord struct {
	Date      string `json:"date" bson:"date"` // YYYY-MM-DD
	StartTime string `json:"startTime" bson:"startTime"`
	EndTime   string `json:"endTime" bson:"endTime"`
	PartySize int    `json:"partySize" bson:"partySize"`
	EventType string `json:"eventType" bson:"eventType"`
	Food      string `json:"food" bson:"food"`
	Email     string `json:"email" bson:"email"`
	Phone     string `json:"phone" bson:"phone"`
	Decor     string `json:"decor" bson:"decor"`
	Extras    string `json:"extras" bson:"extras"`
}

// Complete reports whether the record carries every field required before it
// may be persisted: date, start time, party size, email and event type.
func (b BookingRecord) Complete() bool {
	return b.Date != "" &&
		b.StartTime != "" &&
		b.PartySize > 0 &&
		b.Email != "" &&
		b.EventType != ""
}

// MissingFields lists the required fields still unset, for logging.
func (b BookingRecord) MissingFields() []string {
	var missing []string
	if b.Date == "" {
		missing = append(missing, "date")
	}
	if b.StartTime == "" {
		missing = append(missing, "startTime")
	}
	if b.PartySize <= 0 {
		missing = append(missing, "partySize")
	}
	if b.Email == "" {
		missing = append(missing, "email")
	}
	if b.EventType == "" {
		missing = append(missing, "eventType")
	}
	return missing
}

// Summary renders the record as the confirmation text shown to the customer.
func (b BookingRecord) Summary() string {
	orTBD := func(s string) string {
		if s == "" {
			return "TBD"
		}
		return s
	}
	timeRange := orTBD(b.StartTime)
	if b.EndTime != "" {
		timeRange += " - " + b.EndTime
	}
	party := "TBD"
	if b.PartySize > 0 {
		party = fmt.Sprintf("%d", b.PartySize)
	}
	decor := b.Decor
	if decor == "" {
		decor = "None"
	}
	lines := []string{
		"Date: " + orTBD(b.Date),
		"Time: " + timeRange,
		"Guests: " + party,
		"Event Type: " + orTBD(b.EventType),
		"Food: " + orTBD(b.Food),
		"Email: " + orTBD(b.Email),
		"Phone: " + orTBD(b.Phone),
		"Decor: " + decor,
	}
	return strings.Join(lines, "\n")
}

// StoredBooking is an archived copy of a persisted booking.
type StoredBooking struct {
	ID        string        `json:"id" bson:"id"`
	Booking   BookingRecord `json:"booking" bson:"booking"`
	CreatedAt time.Time     `json:"createdAt" bson:"createdAt"`
}
