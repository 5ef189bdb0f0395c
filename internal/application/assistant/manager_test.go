package assistant

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nexus-desk/nexus/internal/domain/assistant"
	apperrors "github.com/nexus-desk/nexus/internal/shared/errors"
)

const owner = "client:c1"

func drain(t *testing.T, events <-chan Event) []Event {
	t.Helper()
	var got []Event
	timeout := time.After(2 * time.Second)
	for {
		select {
		case e, ok := <-events:
			if !ok {
				return got
			}
			got = append(got, e)
		case <-timeout:
			t.Fatal("stream did not finish")
			return got
		}
	}
}

func waitIdle(t *testing.T, conv *Conversation) {
	t.Helper()
	require.Eventually(t, func() bool { return !conv.Snapshot().Streaming }, 2*time.Second, 5*time.Millisecond)
}

func TestCreate_StartsWithGreeting(t *testing.T) {
	m := NewManager(&mockProvider{}, discardLogger())

	conv := m.Create(owner)
	snap := conv.Snapshot()

	require.Len(t, snap.Turns, 1)
	assert.Equal(t, assistant.RoleModel, snap.Turns[0].Role)
	assert.Equal(t, assistant.Greeting, snap.Turns[0].Text)
	assert.NotEmpty(t, conv.ID())
	assert.Equal(t, owner, conv.Owner())
}

func TestGet_OwnedBySession(t *testing.T) {
	m := NewManager(&mockProvider{}, discardLogger())
	conv := m.Create(owner)

	got, err := m.Get(owner, conv.ID())
	require.NoError(t, err)
	assert.Same(t, conv, got)

	_, err = m.Get("client:c2", conv.ID())
	assert.True(t, apperrors.IsNotFoundError(err))

	_, err = m.Get(owner, "missing")
	assert.True(t, apperrors.IsNotFoundError(err))
}

func TestSubmit_Completed(t *testing.T) {
	provider := &mockProvider{
		StreamChatFunc: func(ctx context.Context, req assistant.ChatRequest) (assistant.ChunkStream, error) {
			return &scriptedStream{chunks: []string{"Restart ", "the spooler."}}, nil
		},
	}
	m := NewManager(provider, discardLogger())
	conv := m.Create(owner)

	events, err := m.Submit(context.Background(), owner, conv.ID(), "gemini-3-flash-preview", "  printer offline ")
	require.NoError(t, err)
	got := drain(t, events)

	require.Len(t, got, 3)
	assert.Equal(t, Event{Type: EventChunk, Text: "Restart "}, got[0])
	assert.Equal(t, "the spooler.", got[1].Text)
	assert.Equal(t, EventCompleted, got[2].Type)
	assert.Equal(t, "Restart the spooler.", got[2].Text)
	require.NotNil(t, got[2].Reply)

	snap := conv.Snapshot()
	require.Len(t, snap.Turns, 3)
	assert.Equal(t, "printer offline", snap.Turns[1].Text)
	assert.Equal(t, "Restart the spooler.", snap.Turns[2].Text)
	assert.False(t, snap.Streaming)

	reqs := provider.Requests()
	require.Len(t, reqs, 1)
	assert.Equal(t, "gemini-3-flash-preview", reqs[0].Model)
	assert.Equal(t, assistant.SystemInstruction, reqs[0].SystemInstruction)
	assert.Equal(t, "printer offline", reqs[0].Message)
	require.Len(t, reqs[0].History, 1, "history holds prior turns only")
	assert.Equal(t, assistant.Greeting, reqs[0].History[0].Text)
}

func TestSubmit_FailureReplacesPartialReplyAndIsExcludedFromHistory(t *testing.T) {
	calls := 0
	provider := &mockProvider{
		StreamChatFunc: func(ctx context.Context, req assistant.ChatRequest) (assistant.ChunkStream, error) {
			calls++
			if calls == 1 {
				return &scriptedStream{chunks: []string{"partial"}, err: errors.New("connection reset")}, nil
			}
			return &scriptedStream{chunks: []string{"ok"}}, nil
		},
	}
	m := NewManager(provider, discardLogger())
	conv := m.Create(owner)

	events, err := m.Submit(context.Background(), owner, conv.ID(), "m", "first")
	require.NoError(t, err)
	got := drain(t, events)

	last := got[len(got)-1]
	assert.Equal(t, EventFailed, last.Type)
	assert.Equal(t, assistant.ErrorReply, last.Text)

	snap := conv.Snapshot()
	require.Len(t, snap.Turns, 3)
	assert.Equal(t, assistant.ErrorReply, snap.Turns[2].Text)
	assert.True(t, snap.Turns[1].Failed)
	assert.True(t, snap.Turns[2].Failed)

	events, err = m.Submit(context.Background(), owner, conv.ID(), "m", "second")
	require.NoError(t, err)
	drain(t, events)

	reqs := provider.Requests()
	require.Len(t, reqs, 2)
	require.Len(t, reqs[1].History, 1)
	assert.Equal(t, assistant.Greeting, reqs[1].History[0].Text)
	assert.Len(t, conv.Snapshot().Turns, 5)
}

func TestSubmit_ProviderOpenError(t *testing.T) {
	provider := &mockProvider{
		StreamChatFunc: func(ctx context.Context, req assistant.ChatRequest) (assistant.ChunkStream, error) {
			return nil, errors.New("401 unauthorized")
		},
	}
	m := NewManager(provider, discardLogger())
	conv := m.Create(owner)

	events, err := m.Submit(context.Background(), owner, conv.ID(), "m", "hello")
	require.NoError(t, err)
	got := drain(t, events)

	require.Len(t, got, 1)
	assert.Equal(t, EventFailed, got[0].Type)
}

func TestSubmit_OneActiveStream(t *testing.T) {
	gate := make(chan struct{})
	var stream *scriptedStream
	provider := &mockProvider{
		StreamChatFunc: func(ctx context.Context, req assistant.ChatRequest) (assistant.ChunkStream, error) {
			stream = &scriptedStream{chunks: []string{"a"}, gate: gate, ctx: ctx}
			return stream, nil
		},
	}
	m := NewManager(provider, discardLogger())
	conv := m.Create(owner)

	events, err := m.Submit(context.Background(), owner, conv.ID(), "m", "first")
	require.NoError(t, err)

	_, err = m.Submit(context.Background(), owner, conv.ID(), "m", "second")
	assert.ErrorIs(t, err, ErrStreamActive)
	assert.True(t, apperrors.IsConflictError(err))

	_, err = m.Reset(owner, conv.ID())
	assert.ErrorIs(t, err, ErrStreamActive)

	close(gate)
	got := drain(t, events)
	assert.Equal(t, EventCompleted, got[len(got)-1].Type)
	assert.True(t, stream.Closed())
}

func TestSubmit_CancelRollsBack(t *testing.T) {
	gate := make(chan struct{})
	var stream *scriptedStream
	provider := &mockProvider{
		StreamChatFunc: func(ctx context.Context, req assistant.ChatRequest) (assistant.ChunkStream, error) {
			stream = &scriptedStream{chunks: []string{"a", "b"}, gate: gate, ctx: ctx}
			return stream, nil
		},
	}
	m := NewManager(provider, discardLogger())
	conv := m.Create(owner)

	ctx, cancel := context.WithCancel(context.Background())
	events, err := m.Submit(ctx, owner, conv.ID(), "m", "help")
	require.NoError(t, err)

	gate <- struct{}{}
	first := <-events
	assert.Equal(t, EventChunk, first.Type)

	cancel()
	got := drain(t, events)
	if len(got) > 0 {
		assert.Equal(t, EventCancelled, got[len(got)-1].Type)
	}

	waitIdle(t, conv)
	snap := conv.Snapshot()
	require.Len(t, snap.Turns, 1, "user turn and partial reply are rolled back")
	assert.Equal(t, assistant.Greeting, snap.Turns[0].Text)
	assert.True(t, stream.Closed())
}

func TestSubmit_Validation(t *testing.T) {
	m := NewManager(&mockProvider{}, discardLogger())
	conv := m.Create(owner)

	_, err := m.Submit(context.Background(), owner, conv.ID(), "m", "   ")
	assert.True(t, apperrors.IsValidationError(err))

	_, err = m.Submit(context.Background(), "client:c2", conv.ID(), "m", "hi")
	assert.True(t, apperrors.IsNotFoundError(err))
}

func TestSubmit_LengthCountsRunes(t *testing.T) {
	provider := &mockProvider{
		StreamChatFunc: func(ctx context.Context, req assistant.ChatRequest) (assistant.ChunkStream, error) {
			return &scriptedStream{chunks: []string{"ok"}}, nil
		},
	}
	m := NewManager(provider, discardLogger())
	conv := m.Create(owner)

	// two bytes per rune, so twice the limit in bytes
	atLimit := strings.Repeat("é", MaxMessageLength)
	events, err := m.Submit(context.Background(), owner, conv.ID(), "m", atLimit)
	require.NoError(t, err)
	drain(t, events)

	_, err = m.Submit(context.Background(), owner, conv.ID(), "m", atLimit+"é")
	assert.True(t, apperrors.IsValidationError(err))
	assert.Len(t, provider.Requests(), 1)
}

func TestReset(t *testing.T) {
	provider := &mockProvider{
		StreamChatFunc: func(ctx context.Context, req assistant.ChatRequest) (assistant.ChunkStream, error) {
			return &scriptedStream{chunks: []string{"reply"}}, nil
		},
	}
	m := NewManager(provider, discardLogger())
	conv := m.Create(owner)

	events, err := m.Submit(context.Background(), owner, conv.ID(), "m", "hello")
	require.NoError(t, err)
	drain(t, events)
	require.Len(t, conv.Snapshot().Turns, 3)

	_, err = m.Reset(owner, conv.ID())
	require.NoError(t, err)

	snap := conv.Snapshot()
	require.Len(t, snap.Turns, 1)
	assert.Equal(t, assistant.Greeting, snap.Turns[0].Text)
}

func TestCreate_OwnerLimitDropsLeastRecentlyUsed(t *testing.T) {
	m := NewManager(&mockProvider{}, discardLogger(), WithOwnerLimit(3))
	clock := time.Date(2025, 5, 1, 8, 0, 0, 0, time.UTC)
	m.now = func() time.Time {
		clock = clock.Add(time.Second)
		return clock
	}

	var convs []*Conversation
	for range 3 {
		convs = append(convs, m.Create(owner))
	}
	other := m.Create("client:c2")

	// the oldest conversation is reused, so the second one becomes the victim
	_, err := m.Reset(owner, convs[0].ID())
	require.NoError(t, err)

	fresh := m.Create(owner)

	assert.Equal(t, 4, m.Len())
	_, err = m.Get(owner, convs[1].ID())
	assert.True(t, apperrors.IsNotFoundError(err))
	for _, conv := range []*Conversation{convs[0], convs[2], fresh} {
		_, err := m.Get(owner, conv.ID())
		assert.NoError(t, err)
	}
	_, err = m.Get("client:c2", other.ID())
	assert.NoError(t, err, "other subjects keep their conversations")
}

func TestCreate_ManyStartsStayBounded(t *testing.T) {
	m := NewManager(&mockProvider{}, discardLogger())

	for range 10 * DefaultOwnerLimit {
		m.Create("admin")
	}

	assert.Equal(t, DefaultOwnerLimit, m.Len())
}

func TestCreate_EvictsIdleConversations(t *testing.T) {
	now := time.Date(2025, 5, 1, 8, 0, 0, 0, time.UTC)
	m := NewManager(&mockProvider{}, discardLogger(), WithIdleTTL(time.Hour))
	m.now = func() time.Time { return now }

	stale := m.Create(owner)
	now = now.Add(30 * time.Minute)
	recent := m.Create("client:c2")

	now = now.Add(45 * time.Minute)
	m.Create("client:c3")

	_, err := m.Get(owner, stale.ID())
	assert.True(t, apperrors.IsNotFoundError(err), "idle past the TTL")
	_, err = m.Get("client:c2", recent.ID())
	assert.NoError(t, err)
	assert.Equal(t, 2, m.Len())
}

func TestCreate_NeverExpiresStreamingConversation(t *testing.T) {
	gate := make(chan struct{})
	provider := &mockProvider{
		StreamChatFunc: func(ctx context.Context, req assistant.ChatRequest) (assistant.ChunkStream, error) {
			return &scriptedStream{chunks: []string{"a"}, gate: gate, ctx: ctx}, nil
		},
	}
	now := time.Date(2025, 5, 1, 8, 0, 0, 0, time.UTC)
	m := NewManager(provider, discardLogger(), WithIdleTTL(time.Minute))
	m.now = func() time.Time { return now }

	busy := m.Create(owner)
	events, err := m.Submit(context.Background(), owner, busy.ID(), "m", "still typing")
	require.NoError(t, err)

	now = now.Add(time.Hour)
	m.Create("client:c2")

	_, err = m.Get(owner, busy.ID())
	assert.NoError(t, err)

	close(gate)
	drain(t, events)
}
