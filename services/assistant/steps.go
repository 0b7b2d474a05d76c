package assistant

import (
	"regexp"
	"strconv"
	"strings"

	"salvatore/models"
)

// Step is a position in the guided booking flow's fixed question sequence.
type Step int

const (
	// StepGreeting is the initial state; the first message decides between
	// the booking flow and free-form chat.
	StepGreeting Step = iota
	// StepFreeChat handles general questions until booking intent shows up.
	StepFreeChat
	StepDate
	StepTime
	StepPartySize
	StepEventType
	StepFood
	StepEmail
	StepPhone
	StepDecor
	// StepExtras is the terminal step: either one more free-text note or a
	// negation that closes the booking.
	StepExtras
)

func (s Step) String() string {
	switch s {
	case StepGreeting:
		return "greeting"
	case StepFreeChat:
		return "free-chat"
	case StepDate:
		return "awaiting-date"
	case StepTime:
		return "awaiting-time"
	case StepPartySize:
		return "awaiting-party-size"
	case StepEventType:
		return "awaiting-event-type"
	case StepFood:
		return "awaiting-food"
	case StepEmail:
		return "awaiting-email"
	case StepPhone:
		return "awaiting-phone"
	case StepDecor:
		return "awaiting-decor"
	case StepExtras:
		return "awaiting-extras"
	default:
		return "unknown"
	}
}

const (
	greetingPrompt = "Hi there! I'm your Salvatore AI assistant, I can help you book a banquet or answer any questions! " +
		"Would you like to book a banquet or ask a general question?"
	datePrompt      = "Wonderful, what date would you like to book your banquet for?"
	timePrompt      = "Got it! What time would you like your event to start (and end), e.g. '6pm' or '6pm-9pm'?"
	partySizePrompt = "Perfect. How many guests are you expecting?"
	eventTypePrompt = `Noted. What type of event is this? Options include:
- Anniversary Party
- Bar/Bat Mitzvah
- Birthday Party
- Business Meeting
- Charity Event
- Corporate Event
- Engagement Party
- Wedding Reception
- Graduation Party
- Holiday Party`
	foodPrompt   = "Sounds great! What kind of food or catering would you like to have?"
	emailPrompt  = "Excellent, could you please provide a contact email so we can send confirmation?"
	phonePrompt  = "Thanks! And a phone number for quick contact?"
	decorPrompt  = "Got it. Would you like any specific decor or theme for the event?"
	extrasPrompt = "Any other special requests or questions you'd like noted?"

	contactFooter = "We'll follow up to confirm. For immediate help call 330.422.3304 or email salvatoresHowland@gmail.com."
)

var bookingKeywords = []string{"book", "banquet", "reserve", "party", "event"}

// hasBookingIntent applies the keyword classifier on the initial steps.
func hasBookingIntent(msg string) bool {
	lower := strings.ToLower(msg)
	for _, kw := range bookingKeywords {
		if strings.Contains(lower, kw) {
			return true
		}
	}
	return false
}

var negationKeywords = []string{"no", "that's it", "thats it", "nope"}

// declinesExtras detects a terminal-step negation closing the booking.
func declinesExtras(msg string) bool {
	lower := strings.ToLower(msg)
	for _, kw := range negationKeywords {
		if strings.Contains(lower, kw) {
			return true
		}
	}
	return false
}

var (
	emailRe     = regexp.MustCompile(`(?i)[A-Z0-9._%+-]+@[A-Z0-9.-]+\.[A-Z]{2,}`)
	phoneRe     = regexp.MustCompile(`\+?\d[\d\-\s()]{6,}\d`)
	partyRe     = regexp.MustCompile(`\d{1,4}`)
	timeRangeRe = regexp.MustCompile(`(?i)(\d{1,2}(?::\d{2})?\s*(?:am|pm)?)\s*(?:-|–|to)\s*(\d{1,2}(?::\d{2})?\s*(?:am|pm)?)`)
)

// transition describes one row of the guided flow: how the current message
// is captured into the booking record, and which step and prompt follow.
type transition struct {
	capture func(m *Machine, b *models.BookingRecord, msg string)
	next    Step
	prompt  string
}

var transitions = map[Step]transition{
	StepDate: {
		capture: func(m *Machine, b *models.BookingRecord, msg string) {
			if normalized, ok := NormalizeDate(msg, m.Now()); ok {
				b.Date = normalized
				return
			}
			// Unparseable dates are captured verbatim, never rejected.
			b.Date = msg
		},
		next:   StepTime,
		prompt: timePrompt,
	},
	StepTime: {
		capture: func(_ *Machine, b *models.BookingRecord, msg string) {
			if m := timeRangeRe.FindStringSubmatch(msg); m != nil {
				b.StartTime = strings.TrimSpace(m[1])
				b.EndTime = strings.TrimSpace(m[2])
				return
			}
			b.StartTime = strings.TrimSpace(msg)
		},
		next:   StepPartySize,
		prompt: partySizePrompt,
	},
	StepPartySize: {
		capture: func(_ *Machine, b *models.BookingRecord, msg string) {
			if m := partyRe.FindString(msg); m != "" {
				b.PartySize, _ = strconv.Atoi(m)
			}
		},
		next:   StepEventType,
		prompt: eventTypePrompt,
	},
	StepEventType: {
		capture: func(_ *Machine, b *models.BookingRecord, msg string) {
			b.EventType = msg
		},
		next:   StepFood,
		prompt: foodPrompt,
	},
	StepFood: {
		capture: func(_ *Machine, b *models.BookingRecord, msg string) {
			b.Food = msg
		},
		next:   StepEmail,
		prompt: emailPrompt,
	},
	StepEmail: {
		capture: func(_ *Machine, b *models.BookingRecord, msg string) {
			if m := emailRe.FindString(msg); m != "" {
				b.Email = m
				return
			}
			b.Email = msg
		},
		next:   StepPhone,
		prompt: phonePrompt,
	},
	StepPhone: {
		capture: func(_ *Machine, b *models.BookingRecord, msg string) {
			if m := phoneRe.FindString(msg); m != "" {
				b.Phone = m
				return
			}
			b.Phone = msg
		},
		next:   StepDecor,
		prompt: decorPrompt,
	},
	StepDecor: {
		capture: func(_ *Machine, b *models.BookingRecord, msg string) {
			b.Decor = msg
		},
		next:   StepExtras,
		prompt: extrasPrompt,
	},
}
