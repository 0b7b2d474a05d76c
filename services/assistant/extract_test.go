package assistant

import (
	"context"
	"errors"
	"testing"

	"salvatore/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// fakeModel satisfies ai.ChatModel with canned output.
type fakeModel struct {
	completeOut  string
	completeErr  error
	streamChunks []string
	streamErr    error

	completeCalls [][]models.Message
}

func (f *fakeModel) Complete(_ context.Context, msgs []models.Message) (string, error) {
	f.completeCalls = append(f.completeCalls, msgs)
	return f.completeOut, f.completeErr
}

func (f *fakeModel) Stream(_ context.Context, _ []models.Message, onChunk func(string) error) error {
	if f.streamErr != nil {
		return f.streamErr
	}
	for _, c := range f.streamChunks {
		if err := onChunk(c); err != nil {
			return err
		}
	}
	return nil
}

const completeExtractionJSON = `{
  "date": "2026-11-01",
  "startTime": "6:00 PM",
  "endTime": "9:00 PM",
  "partySize": 25,
  "eventType": "Birthday Party",
  "food": "pasta",
  "email": "guest@example.com",
  "phone": "330-502-9339",
  "notes": "window table"
}`

func newExtractor(model *fakeModel) *Extractor {
	return &Extractor{Model: model, Window: 15, Logger: zap.NewNop()}
}

func TestExtractorExtract(t *testing.T) {
	history := []models.Message{
		{Sender: models.SenderUser, Text: "I'd like to book a birthday party"},
		{Sender: models.SenderAssistant, Text: "Perfetto! When?"},
	}

	t.Run("complete record", func(t *testing.T) {
		model := &fakeModel{completeOut: completeExtractionJSON}
		rec := newExtractor(model).Extract(context.Background(), history)

		require.NotNil(t, rec)
		assert.Equal(t, "2026-11-01", rec.Date)
		assert.Equal(t, "6:00 PM", rec.StartTime)
		assert.Equal(t, 25, rec.PartySize)
		assert.Equal(t, "window table", rec.Extras)
	})

	t.Run("code-fenced output is accepted", func(t *testing.T) {
		model := &fakeModel{completeOut: "```json\n" + completeExtractionJSON + "\n```"}
		rec := newExtractor(model).Extract(context.Background(), history)
		require.NotNil(t, rec)
		assert.Equal(t, "guest@example.com", rec.Email)
	})

	t.Run("null required field means not yet complete", func(t *testing.T) {
		model := &fakeModel{completeOut: `{
			"date": "2026-11-01",
			"startTime": "6:00 PM",
			"endTime": null,
			"partySize": 25,
			"eventType": "Birthday Party",
			"food": null,
			"email": null,
			"phone": null,
			"notes": null
		}`}
		assert.Nil(t, newExtractor(model).Extract(context.Background(), history))
	})

	t.Run("non-JSON output means not yet complete", func(t *testing.T) {
		model := &fakeModel{completeOut: "I could not find any booking details."}
		assert.Nil(t, newExtractor(model).Extract(context.Background(), history))
	})

	t.Run("model error means not yet complete", func(t *testing.T) {
		model := &fakeModel{completeErr: errors.New("rate limited")}
		assert.Nil(t, newExtractor(model).Extract(context.Background(), history))
	})

	t.Run("history is windowed", func(t *testing.T) {
		long := make([]models.Message, 40)
		for i := range long {
			long[i] = models.Message{Sender: models.SenderUser, Text: "filler"}
		}
		model := &fakeModel{completeOut: completeExtractionJSON}
		ex := newExtractor(model)
		ex.Window = 5
		ex.Extract(context.Background(), long)

		require.Len(t, model.completeCalls, 1)
		// One system message plus one user message carrying the windowed
		// conversation text.
		require.Len(t, model.completeCalls[0], 2)
		assert.Equal(t, models.SenderSystem, model.completeCalls[0][0].Sender)
	})
}
