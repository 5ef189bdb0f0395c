package assistant

import (
	"context"
	"html"
	"time"

	"github.com/nexus-desk/nexus/internal/application/access"
	"github.com/nexus-desk/nexus/internal/application/store"
	"github.com/nexus-desk/nexus/internal/domain/assistant"
	permvo "github.com/nexus-desk/nexus/internal/domain/permission/value_objects"
	"github.com/nexus-desk/nexus/internal/domain/session"
	"github.com/nexus-desk/nexus/internal/shared/logger"
	"github.com/nexus-desk/nexus/internal/shared/services/markdown"
)

type TurnDTO struct {
	Role      string    `json:"role"`
	Text      string    `json:"text"`
	HTML      string    `json:"html"`
	Timestamp time.Time `json:"timestamp"`
	Failed    bool      `json:"failed,omitempty"`
}

type TranscriptDTO struct {
	ID        string    `json:"id"`
	Streaming bool      `json:"streaming"`
	Turns     []TurnDTO `json:"turns"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type SettingsSource interface {
	Snapshot() *store.State
}

// ChatService puts the access guard and the configured model in front of
// the conversation manager. Conversations are owned by the session subject.
type ChatService struct {
	manager  *Manager
	store    SettingsSource
	guard    *access.Guard
	renderer markdown.Renderer
	logger   logger.Interface
}

func NewChatService(
	manager *Manager,
	store SettingsSource,
	guard *access.Guard,
	renderer markdown.Renderer,
	logger logger.Interface,
) *ChatService {
	return &ChatService{
		manager:  manager,
		store:    store,
		guard:    guard,
		renderer: renderer,
		logger:   logger,
	}
}

func (s *ChatService) authorize(sess session.Session) error {
	_, err := s.guard.Authorize(sess, s.store.Snapshot(), permvo.ResourceAssistant, permvo.ActionChat)
	return err
}

func (s *ChatService) Start(ctx context.Context, sess session.Session) (*TranscriptDTO, error) {
	if err := s.authorize(sess); err != nil {
		return nil, err
	}
	conv := s.manager.Create(sess.Subject())
	return s.ToTranscript(conv.Snapshot()), nil
}

func (s *ChatService) Transcript(ctx context.Context, sess session.Session, conversationID string) (*TranscriptDTO, error) {
	if err := s.authorize(sess); err != nil {
		return nil, err
	}
	conv, err := s.manager.Get(sess.Subject(), conversationID)
	if err != nil {
		return nil, err
	}
	return s.ToTranscript(conv.Snapshot()), nil
}

// Submit starts a reply using the model named in the current settings.
func (s *ChatService) Submit(ctx context.Context, sess session.Session, conversationID, text string) (<-chan Event, error) {
	if err := s.authorize(sess); err != nil {
		return nil, err
	}
	model := s.store.Snapshot().Settings.AIModel()
	return s.manager.Submit(ctx, sess.Subject(), conversationID, model, text)
}

func (s *ChatService) Reset(ctx context.Context, sess session.Session, conversationID string) (*TranscriptDTO, error) {
	if err := s.authorize(sess); err != nil {
		return nil, err
	}
	conv, err := s.manager.Reset(sess.Subject(), conversationID)
	if err != nil {
		return nil, err
	}
	return s.ToTranscript(conv.Snapshot()), nil
}

func (s *ChatService) ToTranscript(snap Snapshot) *TranscriptDTO {
	turns := make([]TurnDTO, 0, len(snap.Turns))
	for _, t := range snap.Turns {
		turns = append(turns, s.ToTurn(t))
	}
	return &TranscriptDTO{
		ID:        snap.ID,
		Streaming: snap.Streaming,
		Turns:     turns,
		CreatedAt: snap.CreatedAt,
		UpdatedAt: snap.UpdatedAt,
	}
}

func (s *ChatService) ToTurn(t assistant.Turn) TurnDTO {
	rendered, err := s.renderer.ToHTMLSanitized(t.Text)
	if err != nil {
		s.logger.Warnw("failed to render chat turn", "error", err)
		rendered = "<p>" + html.EscapeString(t.Text) + "</p>"
	}
	return TurnDTO{
		Role:      string(t.Role),
		Text:      t.Text,
		HTML:      rendered,
		Timestamp: t.Timestamp,
		Failed:    t.Failed,
	}
}
