package assistant

import (
	"sync"
	"time"

	"github.com/nexus-desk/nexus/internal/domain/assistant"
)

// Conversation is one linear chat transcript owned by a session subject.
type Conversation struct {
	id        string
	owner     string
	createdAt time.Time

	mu        sync.Mutex
	turns     []assistant.Turn
	streaming bool
	updatedAt time.Time
}

func newConversation(id, owner string, now time.Time) *Conversation {
	return &Conversation{
		id:        id,
		owner:     owner,
		createdAt: now,
		updatedAt: now,
		turns:     []assistant.Turn{assistant.GreetingTurn(now)},
	}
}

func (c *Conversation) ID() string {
	return c.id
}

func (c *Conversation) Owner() string {
	return c.owner
}

func (c *Conversation) CreatedAt() time.Time {
	return c.createdAt
}

func (c *Conversation) activity() (last time.Time, streaming bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.updatedAt, c.streaming
}

// Snapshot is a consistent copy of the mutable part of a conversation.
type Snapshot struct {
	ID        string
	Turns     []assistant.Turn
	Streaming bool
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (c *Conversation) Snapshot() Snapshot {
	c.mu.Lock()
	defer c.mu.Unlock()

	turns := make([]assistant.Turn, len(c.turns))
	copy(turns, c.turns)
	return Snapshot{
		ID:        c.id,
		Turns:     turns,
		Streaming: c.streaming,
		CreatedAt: c.createdAt,
		UpdatedAt: c.updatedAt,
	}
}

// begin appends the user turn and an empty reply placeholder and returns
// the provider history and the index of the placeholder.
func (c *Conversation) begin(text string, now time.Time) ([]assistant.Turn, int, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.streaming {
		return nil, 0, ErrStreamActive
	}

	history := assistant.ProviderHistory(c.turns)
	c.turns = append(c.turns,
		assistant.Turn{Role: assistant.RoleUser, Text: text, Timestamp: now},
		assistant.Turn{Role: assistant.RoleModel, Timestamp: now},
	)
	c.streaming = true
	c.updatedAt = now
	return history, len(c.turns) - 1, nil
}

func (c *Conversation) appendReply(idx int, chunk string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.turns[idx].Text += chunk
}

func (c *Conversation) complete(idx int, now time.Time) assistant.Turn {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.turns[idx].Timestamp = now
	c.streaming = false
	c.updatedAt = now
	return c.turns[idx]
}

// fail discards the partial reply, puts the fixed error turn in its place and
// marks the exchange so it is never replayed to the provider.
func (c *Conversation) fail(idx int, now time.Time) assistant.Turn {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.turns[idx-1].Failed = true
	c.turns[idx] = assistant.Turn{
		Role:      assistant.RoleModel,
		Text:      assistant.ErrorReply,
		Timestamp: now,
		Failed:    true,
	}
	c.streaming = false
	c.updatedAt = now
	return c.turns[idx]
}

// rollback removes the user turn and the partial reply.
func (c *Conversation) rollback(idx int) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.turns = c.turns[:idx-1]
	c.streaming = false
}

func (c *Conversation) reset(now time.Time) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.streaming {
		return ErrStreamActive
	}
	c.turns = []assistant.Turn{assistant.GreetingTurn(now)}
	c.updatedAt = now
	return nil
}
