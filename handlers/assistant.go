package handlers

import (
	"net/http"

	"salvatore/models"
	"salvatore/services/assistant"
	"salvatore/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// AssistantRequest is the body of POST /api/assistant.
type AssistantRequest struct {
	SessionID string `json:"sessionId"`
	Message   string `json:"message"`
}

// AssistantHandler exposes the conversational endpoint as a server-sent
// event stream.
type AssistantHandler struct {
	Svc    *assistant.DefaultAssistantService
	Logger *zap.Logger
}

func NewAssistantHandler(svc *assistant.DefaultAssistantService, logger *zap.Logger) *AssistantHandler {
	return &AssistantHandler{Svc: svc, Logger: logger}
}

// HandleAssistant streams one conversation turn. Once streaming starts all
// failures surface as text frames, never as an HTTP status.
func (h *AssistantHandler) HandleAssistant(c *gin.Context) {
	var req AssistantRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid request body", err.Error())
		return
	}

	c.Header("Content-Type", "text/event-stream")
	c.Header("Cache-Control", "no-cache")
	c.Header("Connection", "keep-alive")
	c.Writer.WriteHeader(http.StatusOK)

	flusher, _ := c.Writer.(http.Flusher)
	emit := func(ev models.StreamEvent) error {
		if _, err := c.Writer.WriteString(ev.Frame()); err != nil {
			return err
		}
		if flusher != nil {
			flusher.Flush()
		}
		return nil
	}

	h.Svc.HandleTurn(c.Request.Context(), req.SessionID, req.Message, emit)
}
