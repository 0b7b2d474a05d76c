package assistant

import (
	"context"

	"salvatore/models"
	"salvatore/services/booking"
	ai "salvatore/services/intelligence"
	"salvatore/services/session"
	"salvatore/utils"

	bookingsRepo "salvatore/database/repository/bookings"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Deployment modes. Guided walks the fixed question sequence and resets the
// session after confirmation; freeform lets the model host the conversation
// and extracts the booking from the retained history every turn.
const (
	ModeGuided   = "guided"
	ModeFreeform = "freeform"
)

// FreeformSystemPrompt hosts the conversation in freeform mode.
const FreeformSystemPrompt = `You are Salvatore's banquet assistant.
Be friendly, warm, and conversational, like a real Italian restaurant host.
Ask for booking details naturally, one or two questions at a time:
- What type of event? (wedding, birthday, corporate, etc.)
- What date?
- What time?
- How many guests?
- Any food preferences or menu requests?
- Email address for confirmation
- Phone number

Once you have ALL the details, say something like: "Perfect! Let me confirm your booking..." and summarize everything.
Keep your tone natural, warm, and human. Use Italian expressions occasionally like "Perfetto!" or "Magnifico!"`

const upstreamErrorText = "Sorry, the assistant hit a backend error. Please try again later."

// EmitFunc delivers one stream event to the client. A non-nil error means
// the client is gone; producers stop without retrying.
type EmitFunc func(models.StreamEvent) error

// DefaultAssistantService runs one conversation turn per call. Every turn
// announces the session identifier first and terminates the stream with the
// end-of-stream event, whatever happens in between.
type DefaultAssistantService struct {
	Store     session.Store
	Model     ai.ChatModel
	Saver     booking.Saver
	Archive   bookingsRepo.BookingArchive // nil when no archive is configured
	Machine   *Machine
	Extractor *Extractor
	Mode      string
	ChunkSize int
	Logger    *zap.Logger
}

// HandleTurn processes one inbound message and streams the response.
func (s *DefaultAssistantService) HandleTurn(ctx context.Context, sessionID, message string, emit EmitFunc) {
	message = utils.CleanText(message)

	if sessionID == "" {
		sessionID = uuid.New().String()
	}
	if err := emit(models.SessionAssigned(sessionID)); err != nil {
		return
	}

	// An empty message closes the stream immediately; not an error.
	if message == "" {
		_ = emit(models.Done())
		return
	}

	sess, err := s.Store.GetOrCreate(ctx, sessionID)
	if err != nil {
		s.Logger.Error("Session load failed", zap.String("sessionId", sessionID), zap.Error(err))
		s.failTurn(emit)
		return
	}

	if s.Mode == ModeFreeform {
		s.freeformTurn(ctx, sess, message, emit)
		return
	}
	s.guidedTurn(ctx, sess, message, emit)
}

// guidedTurn advances the step machine. Fixed prompts are chunk-streamed;
// non-booking input falls through to the language model with the session
// history as context. Closing the flow persists the record (when complete)
// and resets the session before the confirmation streams out.
func (s *DefaultAssistantService) guidedTurn(ctx context.Context, sess *models.Session, message string, emit EmitFunc) {
	out := s.Machine.Advance(sess, message)

	if out.FreeChat {
		sess.AddMessage(models.SenderUser, message)
		reply, err := s.streamModel(ctx, sess.History, emit)
		if err != nil {
			s.Logger.Error("Model stream failed", zap.String("sessionId", sess.ID), zap.Error(err))
			s.failTurn(emit)
			return
		}
		sess.AddMessage(models.SenderAssistant, reply)
		if err := s.Store.Save(ctx, sess); err != nil {
			s.Logger.Error("Session save failed", zap.String("sessionId", sess.ID), zap.Error(err))
		}
		_ = emit(models.Done())
		return
	}

	if out.Completed != nil {
		s.persistBooking(ctx, *out.Completed, nil)
		// Closing always resets the session, whether or not persistence
		// succeeded.
		if _, err := s.Store.Reset(ctx, sess.ID); err != nil {
			s.Logger.Error("Session reset failed", zap.String("sessionId", sess.ID), zap.Error(err))
		}
	} else {
		if err := s.Store.Save(ctx, sess); err != nil {
			s.Logger.Error("Session save failed", zap.String("sessionId", sess.ID), zap.Error(err))
		}
	}

	s.streamChunks(out.Reply, emit)
	_ = emit(models.Done())
}

// freeformTurn streams the model's reply, then runs booking extraction over
// the retained history. The session is never reset in this mode.
func (s *DefaultAssistantService) freeformTurn(ctx context.Context, sess *models.Session, message string, emit EmitFunc) {
	sess.AddMessage(models.SenderUser, message)

	msgs := make([]models.Message, 0, len(sess.History)+1)
	msgs = append(msgs, models.Message{Sender: models.SenderSystem, Text: FreeformSystemPrompt})
	for _, m := range sess.History {
		if m.Sender != models.SenderSystem {
			msgs = append(msgs, m)
		}
	}

	reply, err := s.streamModel(ctx, msgs, emit)
	if err != nil {
		s.Logger.Error("Model stream failed", zap.String("sessionId", sess.ID), zap.Error(err))
		s.failTurn(emit)
		return
	}

	sess.AddMessage(models.SenderAssistant, reply)
	if err := s.Store.Save(ctx, sess); err != nil {
		s.Logger.Error("Session save failed", zap.String("sessionId", sess.ID), zap.Error(err))
	}

	if rec := s.Extractor.Extract(ctx, sess.History); rec != nil {
		s.persistBooking(ctx, *rec, emit)
	}

	_ = emit(models.Done())
}

// persistBooking writes a completed record to the external sinks and the
// archive. Incomplete records never reach persistence. When emit is non-nil
// a successful save is announced on the stream.
func (s *DefaultAssistantService) persistBooking(ctx context.Context, rec models.BookingRecord, emit EmitFunc) {
	if !rec.Complete() {
		s.Logger.Warn("Skipping persistence of incomplete booking",
			zap.Strings("missing", rec.MissingFields()))
		return
	}

	if err := s.Saver.Save(ctx, rec); err != nil {
		s.Logger.Error("Booking save failed", zap.Error(err))
		return
	}

	s.Logger.Info("Booking saved",
		zap.String("date", rec.Date),
		zap.String("eventType", rec.EventType),
		zap.Int("partySize", rec.PartySize),
	)
	if emit != nil {
		_ = emit(models.BookingSaved())
	}

	if s.Archive != nil {
		if _, err := s.Archive.Create(ctx, models.StoredBooking{Booking: rec}); err != nil {
			s.Logger.Error("Booking archive write failed", zap.Error(err))
		}
	}
}

// streamModel forwards model output chunk by chunk and returns the full
// accumulated reply.
func (s *DefaultAssistantService) streamModel(ctx context.Context, msgs []models.Message, emit EmitFunc) (string, error) {
	var reply []byte
	err := s.Model.Stream(ctx, msgs, func(chunk string) error {
		reply = append(reply, chunk...)
		return emit(models.TextChunk(chunk))
	})
	return string(reply), err
}

// streamChunks splits a fixed prompt into frames of ChunkSize runes.
func (s *DefaultAssistantService) streamChunks(text string, emit EmitFunc) {
	text = utils.CleanText(text)
	size := s.ChunkSize
	if size <= 0 {
		size = 40
	}

	runes := []rune(text)
	for i := 0; i < len(runes); i += size {
		end := i + size
		if end > len(runes) {
			end = len(runes)
		}
		if err := emit(models.TextChunk(string(runes[i:end]))); err != nil {
			return
		}
	}
}

func (s *DefaultAssistantService) failTurn(emit EmitFunc) {
	_ = emit(models.TextChunk(upstreamErrorText))
	_ = emit(models.Done())
}
