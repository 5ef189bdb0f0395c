// Package assistant runs troubleshooting conversations against a streaming
// chat provider. Each conversation has at most one reply in flight.
package assistant

import (
	"context"
	"io"
	"strings"
	"sync"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"

	"github.com/nexus-desk/nexus/internal/domain/assistant"
	"github.com/nexus-desk/nexus/internal/shared/biztime"
	"github.com/nexus-desk/nexus/internal/shared/errors"
	"github.com/nexus-desk/nexus/internal/shared/goroutine"
	"github.com/nexus-desk/nexus/internal/shared/logger"
)

var (
	ErrStreamActive         = errors.NewConflictError("a reply is still being streamed for this conversation")
	ErrConversationNotFound = errors.NewNotFoundError("conversation not found")
	ErrEmptyMessage         = errors.NewValidationError("message is required")
)

const (
	// MaxMessageLength counts runes, like the request binding.
	MaxMessageLength = 4000

	// DefaultOwnerLimit caps live conversations per session subject.
	DefaultOwnerLimit = 20
	// DefaultIdleTTL is how long an untouched conversation is kept.
	DefaultIdleTTL = 2 * time.Hour

	eventBuffer = 16
)

type EventType string

const (
	EventChunk     EventType = "chunk"
	EventCompleted EventType = "completed"
	EventFailed    EventType = "failed"
	EventCancelled EventType = "cancelled"
)

// Event is sent on the submission channel. Chunk events carry incremental
// text; the single terminal event carries the final reply turn, if any.
type Event struct {
	Type  EventType
	Text  string
	Reply *assistant.Turn
}

func (e Event) IsTerminal() bool {
	return e.Type != EventChunk
}

type ManagerOption func(*Manager)

// WithOwnerLimit sets how many conversations one subject may keep. Values
// below one keep the default.
func WithOwnerLimit(n int) ManagerOption {
	return func(m *Manager) {
		if n > 0 {
			m.ownerLimit = n
		}
	}
}

// WithIdleTTL sets how long a conversation survives without activity.
func WithIdleTTL(d time.Duration) ManagerOption {
	return func(m *Manager) {
		if d > 0 {
			m.idleTTL = d
		}
	}
}

// Manager keeps conversations in memory only. Conversations idle for longer
// than the TTL are dropped, and a subject over its limit loses its least
// recently used conversation.
type Manager struct {
	provider   assistant.ChatProvider
	logger     logger.Interface
	now        func() time.Time
	ownerLimit int
	idleTTL    time.Duration

	mu            sync.RWMutex
	conversations map[string]*Conversation
}

func NewManager(provider assistant.ChatProvider, logger logger.Interface, opts ...ManagerOption) *Manager {
	m := &Manager{
		provider:      provider,
		logger:        logger,
		now:           biztime.NowUTC,
		ownerLimit:    DefaultOwnerLimit,
		idleTTL:       DefaultIdleTTL,
		conversations: make(map[string]*Conversation),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// Create starts a conversation holding only the greeting.
func (m *Manager) Create(owner string) *Conversation {
	now := m.now()
	conv := newConversation(uuid.NewString(), owner, now)

	m.mu.Lock()
	expired := m.evictIdleLocked(now)
	displaced := m.enforceOwnerLimitLocked(owner)
	m.conversations[conv.id] = conv
	m.mu.Unlock()

	if expired > 0 || displaced != "" {
		m.logger.Debugw("conversations evicted", "expired", expired, "displaced", displaced)
	}
	m.logger.Infow("conversation created", "conversation_id", conv.id, "owner", owner)
	return conv
}

// Len reports the number of live conversations.
func (m *Manager) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.conversations)
}

func (m *Manager) evictIdleLocked(now time.Time) int {
	n := 0
	for id, conv := range m.conversations {
		last, streaming := conv.activity()
		if !streaming && now.Sub(last) > m.idleTTL {
			delete(m.conversations, id)
			n++
		}
	}
	return n
}

// enforceOwnerLimitLocked frees one slot for owner when it is at its limit.
// Idle conversations go first; a streaming one is only dropped from the
// index and its reply still reaches the open stream.
func (m *Manager) enforceOwnerLimitLocked(owner string) string {
	var (
		count      int
		victim     *Conversation
		victimLast time.Time
		victimBusy bool
	)
	for _, conv := range m.conversations {
		if conv.owner != owner {
			continue
		}
		count++
		last, streaming := conv.activity()
		if victim == nil || (victimBusy && !streaming) ||
			(victimBusy == streaming && last.Before(victimLast)) {
			victim, victimLast, victimBusy = conv, last, streaming
		}
	}
	if count < m.ownerLimit || victim == nil {
		return ""
	}
	delete(m.conversations, victim.id)
	return victim.id
}

// Get returns the conversation if it belongs to owner. Conversations of
// other owners are reported as not found.
func (m *Manager) Get(owner, id string) (*Conversation, error) {
	m.mu.RLock()
	conv, ok := m.conversations[id]
	m.mu.RUnlock()

	if !ok || conv.owner != owner {
		return nil, ErrConversationNotFound
	}
	return conv, nil
}

// Reset truncates the transcript back to the greeting.
func (m *Manager) Reset(owner, id string) (*Conversation, error) {
	conv, err := m.Get(owner, id)
	if err != nil {
		return nil, err
	}
	if err := conv.reset(m.now()); err != nil {
		return nil, err
	}
	m.logger.Infow("conversation reset", "conversation_id", id)
	return conv, nil
}

// Submit sends text to the provider and streams the reply. The returned
// channel yields chunk events followed by exactly one terminal event and is
// then closed. Cancelling ctx stops the provider stream and rolls the
// exchange back.
func (m *Manager) Submit(ctx context.Context, owner, id, model, text string) (<-chan Event, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil, ErrEmptyMessage
	}
	if utf8.RuneCountInString(text) > MaxMessageLength {
		return nil, errors.NewValidationError("message is too long")
	}

	conv, err := m.Get(owner, id)
	if err != nil {
		return nil, err
	}

	history, idx, err := conv.begin(text, m.now())
	if err != nil {
		return nil, err
	}

	req := assistant.ChatRequest{
		Model:             model,
		SystemInstruction: assistant.SystemInstruction,
		History:           history,
		Message:           text,
	}

	events := make(chan Event, eventBuffer)
	goroutine.SafeGo(m.logger, "assistant-stream", func() {
		m.run(ctx, conv, idx, req, events)
	})
	return events, nil
}

func (m *Manager) run(ctx context.Context, conv *Conversation, idx int, req assistant.ChatRequest, events chan<- Event) {
	finished := false
	defer func() {
		if !finished {
			// reached only through a panic
			conv.rollback(idx)
		}
		close(events)
	}()

	log := m.logger.With("conversation_id", conv.id, "model", req.Model)

	cancel := func() {
		conv.rollback(idx)
		finished = true
		log.Infow("chat stream cancelled")
		select {
		case events <- Event{Type: EventCancelled}:
		default:
		}
	}
	fail := func(err error) {
		reply := conv.fail(idx, m.now())
		finished = true
		log.Warnw("chat stream failed", "error", err)
		m.send(ctx, events, Event{Type: EventFailed, Text: reply.Text, Reply: &reply})
	}

	stream, err := m.provider.StreamChat(ctx, req)
	if err != nil {
		if ctx.Err() != nil {
			cancel()
			return
		}
		fail(err)
		return
	}
	defer stream.Close()

	for {
		chunk, err := stream.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			if ctx.Err() != nil {
				cancel()
				return
			}
			fail(err)
			return
		}

		conv.appendReply(idx, chunk)
		if !m.send(ctx, events, Event{Type: EventChunk, Text: chunk}) {
			cancel()
			return
		}
	}

	if ctx.Err() != nil {
		cancel()
		return
	}

	reply := conv.complete(idx, m.now())
	finished = true
	log.Debugw("chat stream completed", "reply_length", len(reply.Text))
	m.send(ctx, events, Event{Type: EventCompleted, Text: reply.Text, Reply: &reply})
}

func (m *Manager) send(ctx context.Context, events chan<- Event, e Event) bool {
	select {
	case events <- e:
		return true
	case <-ctx.Done():
		return false
	}
}
