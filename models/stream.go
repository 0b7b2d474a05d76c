package models

import (
	"encoding/json"
	"strings"
)

// StreamEventType discriminates the frames multiplexed onto the assistant's
// server-sent event channel.
type StreamEventType int

const (
	// EventSessionAssigned announces the session identifier. Always the
	// first frame of a response.
	EventSessionAssigned StreamEventType = iota
	// EventTextChunk carries one fragment of assistant text.
	EventTextChunk
	// EventBookingSaved signals that a completed booking was persisted.
	EventBookingSaved
	// EventDone terminates the frame sequence. Always the last frame.
	EventDone
)

const (
	doneMarker         = "[DONE]"
	bookingSavedMarker = "[BOOKING_SAVED]"
)

// StreamEvent is one frame of the incremental server-to-client channel,
// decoded once at the transport boundary rather than prefix-sniffed per layer.
type StreamEvent struct {
	Type      StreamEventType
	SessionID string
	Text      string
}

func SessionAssigned(id string) StreamEvent {
	return StreamEvent{Type: EventSessionAssigned, SessionID: id}
}

func TextChunk(text string) StreamEvent {
	return StreamEvent{Type: EventTextChunk, Text: text}
}

func BookingSaved() StreamEvent {
	return StreamEvent{Type: EventBookingSaved}
}

func Done() StreamEvent {
	return StreamEvent{Type: EventDone}
}

// Frame encodes the event as one SSE frame. Newlines inside text payloads are
// escaped so a chunk never spans frames; the client unescapes them.
func (e StreamEvent) Frame() string {
	switch e.Type {
	case EventSessionAssigned:
		payload, _ := json.Marshal(map[string]string{"sessionId": e.SessionID})
		return "data: " + string(payload) + "\n\n"
	case EventBookingSaved:
		return "data: " + bookingSavedMarker + "\n\n"
	case EventDone:
		return "data: " + doneMarker + "\n\n"
	default:
		text := strings.ReplaceAll(e.Text, "\r", "\\r")
		text = strings.ReplaceAll(text, "\n", "\\n")
		return "data: " + text + "\n\n"
	}
}
