package models

// Message sender roles. The same values appear in the persisted session
// history and in prompts sent to the language model.
const (
	SenderSystem    = "system"
	SenderUser      = "user"
	SenderAssistant = "assistant"
)

// Message is one entry of a session's ordered history.
type Message struct {
	Sender string `json:"sender"`
	Text   string `json:"text"`
}

// SystemPrompt seeds every new session's history.
const SystemPrompt = "You are Salvatore AI, a polite, friendly banquet-booking assistant. " +
	"Ask one question at a time. Treat BookingDetails from the server as authoritative."

// Session is the server-side conversation state keyed by an opaque identifier.
// The client only ever holds the identifier.
type Session struct {
	ID         string        `json:"id"`
	Step       int           `json:"step"`
	Booking    BookingRecord `json:"booking"`
	History    []Message     `json:"history"`
	LastPrompt string        `json:"lastPrompt"`
}

// NewSession returns a fresh session at the greeting step with only the
// system message in its history.
func NewSession(id string) *Session {
	return &Session{
		ID: id,
		History: []Message{
			{Sender: SenderSystem, Text: SystemPrompt},
		},
	}
}

// AddMessage appends one entry to the session history.
func (s *Session) AddMessage(sender, text string) {
	s.History = append(s.History, Message{Sender: sender, Text: text})
}

// RecentHistory returns at most the last n messages.
func (s *Session) RecentHistory(n int) []Message {
	if n <= 0 || len(s.History) <= n {
		return s.History
	}
	return s.History[len(s.History)-n:]
}
