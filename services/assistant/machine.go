package assistant

import (
	"fmt"
	"time"

	"salvatore/models"
)

// Outcome is the result of advancing the step machine by one message.
// Exactly one of Reply or FreeChat is meaningful: a non-empty Reply is a
// fixed prompt to stream back, FreeChat hands the turn to the language model.
// Completed carries the finished booking record when the flow just closed;
// closing always implies a session reset, whatever persistence does.
type Outcome struct {
	Reply     string
	FreeChat  bool
	Completed *models.BookingRecord
}

// Machine drives the guided booking flow over a session.
type Machine struct {
	// Now is injectable for date-normalization tests.
	Now func() time.Time
}

func NewMachine() *Machine {
	return &Machine{Now: time.Now}
}

// Advance consumes one user message, mutating the session's step and booking
// record, and decides what the assistant says next.
func (m *Machine) Advance(sess *models.Session, msg string) Outcome {
	step := Step(sess.Step)

	switch step {
	case StepGreeting:
		if hasBookingIntent(msg) {
			return m.ask(sess, StepDate, datePrompt)
		}
		return m.ask(sess, StepFreeChat, greetingPrompt)

	case StepFreeChat:
		if hasBookingIntent(msg) {
			return m.ask(sess, StepDate, datePrompt)
		}
		return Outcome{FreeChat: true}

	case StepExtras:
		return m.close(sess, msg)
	}

	tr, ok := transitions[step]
	if !ok {
		// Unknown step value, e.g. from an old persisted session. Fall
		// back to free-form chat rather than failing the turn.
		return Outcome{FreeChat: true}
	}

	tr.capture(m, &sess.Booking, msg)
	return m.ask(sess, tr.next, tr.prompt)
}

func (m *Machine) ask(sess *models.Session, next Step, prompt string) Outcome {
	sess.Step = int(next)
	sess.LastPrompt = prompt
	return Outcome{Reply: prompt}
}

// close handles the terminal step: a negation closes the booking as-is, any
// other message is recorded as one extra note first.
func (m *Machine) close(sess *models.Session, msg string) Outcome {
	var reply string
	if declinesExtras(msg) {
		reply = "Thanks, here's a summary of your booking:\n\n" +
			sess.Booking.Summary() + "\n\n" + contactFooter
	} else {
		sess.Booking.Extras = msg
		reply = fmt.Sprintf("Noted. I've added: %q. We'll include that in your booking. %s", msg, contactFooter)
	}

	completed := sess.Booking
	return Outcome{Reply: reply, Completed: &completed}
}
