// File: services/intelligence/interface.go
package ai

import (
	"context"
	"strings"

	"salvatore/models"
)

// ChatModel is the contract every language-model backend satisfies. The
// assistant only needs two operations: a single-shot completion and a
// token-by-token stream.
type ChatModel interface {
	// Complete sends the conversation and returns the full reply.
	Complete(ctx context.Context, msgs []models.Message) (string, error)
	// Stream sends the conversation and forwards reply fragments to
	// onChunk as they arrive. A non-nil error from onChunk aborts the
	// stream.
	Stream(ctx context.Context, msgs []models.Message, onChunk func(string) error) error
}

// FlattenConversation renders a message history as plain prompt text for
// backends without a native chat-role API.
func FlattenConversation(msgs []models.Message) string {
	var sb strings.Builder
	for _, m := range msgs {
		switch m.Sender {
		case models.SenderSystem:
			sb.WriteString("System: ")
		case models.SenderAssistant:
			sb.WriteString("Assistant: ")
		default:
			sb.WriteString("User: ")
		}
		sb.WriteString(m.Text)
		sb.WriteString("\n")
	}
	sb.WriteString("Assistant:")
	return sb.String()
}

// StripCodeFence removes incidental markdown fencing around model output so
// structural parsing sees bare JSON.
func StripCodeFence(s string) string {
	s = strings.TrimSpace(s)
	s = strings.Trim(s, "`")
	s = strings.TrimSpace(s)
	s = strings.TrimPrefix(s, "json")
	return strings.TrimSpace(s)
}
