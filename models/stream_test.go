package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStreamEventFrame(t *testing.T) {
	t.Run("session assignment", func(t *testing.T) {
		ev := SessionAssigned("abc-123")
		assert.Equal(t, "data: {\"sessionId\":\"abc-123\"}\n\n", ev.Frame())
	})

	t.Run("text chunk", func(t *testing.T) {
		assert.Equal(t, "data: hello\n\n", TextChunk("hello").Frame())
	})

	t.Run("newlines in text are escaped so a chunk stays one frame", func(t *testing.T) {
		frame := TextChunk("line one\nline two").Frame()
		assert.Equal(t, "data: line one\\nline two\n\n", frame)
	})

	t.Run("booking saved marker", func(t *testing.T) {
		assert.Equal(t, "data: [BOOKING_SAVED]\n\n", BookingSaved().Frame())
	})

	t.Run("done marker", func(t *testing.T) {
		assert.Equal(t, "data: [DONE]\n\n", Done().Frame())
	})
}

func TestNewSession(t *testing.T) {
	s := NewSession("id-1")
	assert.Equal(t, "id-1", s.ID)
	assert.Len(t, s.History, 1)
	assert.Equal(t, SenderSystem, s.History[0].Sender)
	assert.Zero(t, s.Step)
}

func TestSessionRecentHistory(t *testing.T) {
	s := NewSession("id-1")
	for i := 0; i < 5; i++ {
		s.AddMessage(SenderUser, "msg")
	}
	assert.Len(t, s.History, 6)
	assert.Len(t, s.RecentHistory(4), 4)
	assert.Len(t, s.RecentHistory(0), 6)
	assert.Len(t, s.RecentHistory(100), 6)
}
