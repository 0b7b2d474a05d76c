package assistant

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"salvatore/models"
	ai "salvatore/services/intelligence"

	"go.uber.org/zap"
)

const extractionSystemPrompt = "You extract booking details from conversations. Return ONLY valid JSON, no other text."

const extractionInstruction = `Extract booking information from this conversation:

%s

Return JSON in this exact format:
{
  "date": "2025-11-01",
  "startTime": "2:00 PM",
  "endTime": "5:00 PM",
  "partySize": 25,
  "eventType": "Graduation Party",
  "food": "pasta and pizza",
  "email": "guest@example.com",
  "phone": "330-555-0139",
  "notes": ""
}

Rules:
- date must be YYYY-MM-DD format
- times in 12-hour format with AM/PM
- partySize as a number
- Use null for any missing fields
- Return ONLY the JSON object

Extract the data now:`

// extractedBooking mirrors the schema the model is told to emit. Pointers
// keep the literal-null convention for unknown fields intact.
type extractedBooking struct {
	Date      *string `json:"date"`
	StartTime *string `json:"startTime"`
	EndTime   *string `json:"endTime"`
	PartySize *int    `json:"partySize"`
	EventType *string `json:"eventType"`
	Food      *string `json:"food"`
	Email     *string `json:"email"`
	Phone     *string `json:"phone"`
	Notes     *string `json:"notes"`
}

func (e extractedBooking) toRecord() models.BookingRecord {
	str := func(p *string) string {
		if p == nil {
			return ""
		}
		return strings.TrimSpace(*p)
	}
	rec := models.BookingRecord{
		Date:      str(e.Date),
		StartTime: str(e.StartTime),
		EndTime:   str(e.EndTime),
		EventType: str(e.EventType),
		Food:      str(e.Food),
		Email:     str(e.Email),
		Phone:     str(e.Phone),
		Extras:    str(e.Notes),
	}
	if e.PartySize != nil {
		rec.PartySize = *e.PartySize
	}
	return rec
}

// Extractor asks the language model to emit a structured booking record from
// the recent conversation. Anything short of a parseable record with all
// required fields means "not yet complete", never an error: the conversation
// simply continues next turn. One call per turn, no retry.
type Extractor struct {
	Model  ai.ChatModel
	Window int
	Logger *zap.Logger
}

func (e *Extractor) Extract(ctx context.Context, history []models.Message) *models.BookingRecord {
	window := e.Window
	if window <= 0 {
		window = 15
	}
	recent := history
	if len(recent) > window {
		recent = recent[len(recent)-window:]
	}

	var convo strings.Builder
	for _, m := range recent {
		convo.WriteString(m.Sender)
		convo.WriteString(": ")
		convo.WriteString(m.Text)
		convo.WriteString("\n")
	}

	out, err := e.Model.Complete(ctx, []models.Message{
		{Sender: models.SenderSystem, Text: extractionSystemPrompt},
		{Sender: models.SenderUser, Text: fmt.Sprintf(extractionInstruction, convo.String())},
	})
	if err != nil {
		e.Logger.Warn("Booking extraction call failed", zap.Error(err))
		return nil
	}

	var parsed extractedBooking
	if err := json.Unmarshal([]byte(ai.StripCodeFence(out)), &parsed); err != nil {
		e.Logger.Debug("Extraction output was not valid JSON", zap.Error(err))
		return nil
	}

	rec := parsed.toRecord()
	if !rec.Complete() {
		e.Logger.Debug("Booking not yet complete", zap.Strings("missing", rec.MissingFields()))
		return nil
	}
	return &rec
}
