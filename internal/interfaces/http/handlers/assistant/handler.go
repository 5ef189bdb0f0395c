package assistant

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/nexus-desk/nexus/internal/application/assistant"
	domain "github.com/nexus-desk/nexus/internal/domain/assistant"
	"github.com/nexus-desk/nexus/internal/domain/session"
	"github.com/nexus-desk/nexus/internal/interfaces/http/handlers/common"
	"github.com/nexus-desk/nexus/internal/shared/logger"
	"github.com/nexus-desk/nexus/internal/shared/utils"
)

type ChatService interface {
	Start(ctx context.Context, sess session.Session) (*assistant.TranscriptDTO, error)
	Transcript(ctx context.Context, sess session.Session, conversationID string) (*assistant.TranscriptDTO, error)
	Submit(ctx context.Context, sess session.Session, conversationID, text string) (<-chan assistant.Event, error)
	Reset(ctx context.Context, sess session.Session, conversationID string) (*assistant.TranscriptDTO, error)
	ToTurn(t domain.Turn) assistant.TurnDTO
}

type SubmitMessageRequest struct {
	Text string `json:"text" binding:"required,max=4000"`
}

type chunkPayload struct {
	Text string `json:"text"`
}

type turnPayload struct {
	Turn *assistant.TurnDTO `json:"turn,omitempty"`
}

type AssistantHandler struct {
	*common.EventStreamer
	service ChatService
	logger  logger.Interface
}

func NewAssistantHandler(service ChatService, sse *common.EventStreamer, logger logger.Interface) *AssistantHandler {
	return &AssistantHandler{
		EventStreamer: sse,
		service:       service,
		logger:        logger,
	}
}

// StartConversation handles POST /api/assistant/conversations
func (h *AssistantHandler) StartConversation(c *gin.Context) {
	s, err := utils.GetSession(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.service.Start(c.Request.Context(), s)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, result, "Conversation started")
}

// GetConversation handles GET /api/assistant/conversations/:id
func (h *AssistantHandler) GetConversation(c *gin.Context) {
	s, conversationID, ok := h.sessionAndID(c)
	if !ok {
		return
	}

	result, err := h.service.Transcript(c.Request.Context(), s, conversationID)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

// ResetConversation handles POST /api/assistant/conversations/:id/reset
func (h *AssistantHandler) ResetConversation(c *gin.Context) {
	s, conversationID, ok := h.sessionAndID(c)
	if !ok {
		return
	}

	result, err := h.service.Reset(c.Request.Context(), s, conversationID)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Conversation reset", result)
}

// SendMessage handles POST /api/assistant/conversations/:id/messages
// The reply is streamed as server-sent events: any number of "chunk" events
// followed by exactly one of "completed", "failed" or "cancelled".
// Errors detected before streaming starts are returned as JSON.
func (h *AssistantHandler) SendMessage(c *gin.Context) {
	s, conversationID, ok := h.sessionAndID(c)
	if !ok {
		return
	}

	var req SubmitMessageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for chat message", "error", err)
		utils.ErrorResponseWithError(c, err)
		return
	}

	// cancelling ctx when the handler returns stops the producer if the
	// client went away mid-stream
	ctx, cancel := context.WithCancel(c.Request.Context())
	defer cancel()

	events, err := h.service.Submit(ctx, s, conversationID, req.Text)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	if !h.Open(c) {
		h.logger.Warnw("chat stream initial write failed", "conversation_id", conversationID)
		return
	}

	common.Pump(ctx, h.EventStreamer, c, events, func(e assistant.Event) error {
		return h.writeEvent(c, e)
	})
}

func (h *AssistantHandler) writeEvent(c *gin.Context, e assistant.Event) error {
	switch e.Type {
	case assistant.EventChunk:
		return h.Emit(c, string(e.Type), chunkPayload{Text: e.Text})
	default:
		payload := turnPayload{}
		if e.Reply != nil {
			turn := h.service.ToTurn(*e.Reply)
			payload.Turn = &turn
		}
		return h.Emit(c, string(e.Type), payload)
	}
}

func (h *AssistantHandler) sessionAndID(c *gin.Context) (session.Session, string, bool) {
	s, err := utils.GetSession(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return session.Session{}, "", false
	}
	conversationID, err := utils.ParseIDParam(c, "id", "conversation")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return session.Session{}, "", false
	}
	return s, conversationID, true
}
