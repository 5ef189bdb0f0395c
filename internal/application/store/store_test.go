package store

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nexus-desk/nexus/internal/domain/client"
	"github.com/nexus-desk/nexus/internal/domain/setting"
	"github.com/nexus-desk/nexus/internal/domain/team"
	"github.com/nexus-desk/nexus/internal/domain/ticket"
	vo "github.com/nexus-desk/nexus/internal/domain/ticket/valueobjects"
	apperrors "github.com/nexus-desk/nexus/internal/shared/errors"
)

var fixedNow = time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC)

func sequentialIDs() IDGenerator {
	var mu sync.Mutex
	n := 0
	return func(prefix string) (string, error) {
		mu.Lock()
		defer mu.Unlock()
		n++
		return fmt.Sprintf("%s_%d", prefix, n), nil
	}
}

func newTestStore(t *testing.T, p *mockPersister, opts ...Option) *Store {
	t.Helper()
	base := []Option{WithIDGenerator(sequentialIDs()), WithClock(func() time.Time { return fixedNow })}
	s := New(p, newNopLogger(), append(base, opts...)...)
	require.NoError(t, s.Load(context.Background()))
	return s
}

func draftTicket(t *testing.T, title, clientID string) *ticket.Ticket {
	t.Helper()
	tk, err := ticket.NewTicket(title, "details", clientID, ticket.DefaultTriage(vo.PriorityMedium))
	require.NoError(t, err)
	return tk
}

func TestLoad_SeedsDemoDataWhenEmpty(t *testing.T) {
	s := newTestStore(t, &mockPersister{}, WithSeed(true))

	state := s.Snapshot()
	require.Len(t, state.Clients, 2)
	assert.Equal(t, "CyberDyne Systems", state.Clients[0].Company())
	assert.Equal(t, "Resistance IT", state.Clients[1].Company())
	require.Len(t, state.Team, 2)
	assert.Equal(t, "Alex Rivera", state.Team[0].Name())
	require.Len(t, state.Tickets, 1)
	assert.Equal(t, "Server downtime in US-EAST-1", state.Tickets[0].Title())
	assert.Equal(t, vo.PriorityUrgent, state.Tickets[0].Priority())
	assert.Equal(t, setting.DefaultAppName, state.Settings.AppName())
}

func TestLoad_EmptyWithoutSeed(t *testing.T) {
	s := newTestStore(t, &mockPersister{}, WithSeed(false))

	state := s.Snapshot()
	assert.Empty(t, state.Tickets)
	assert.Empty(t, state.Clients)
	assert.Empty(t, state.Team)
	assert.Equal(t, setting.DefaultAppName, state.Settings.AppName())
}

func TestLoad_PartialStateKeepsPersistedSlices(t *testing.T) {
	c, err := client.ReconstructClient("cl_a", "Jane Doe", "Acme Corp", "jane@acme.com", fixedNow)
	require.NoError(t, err)

	p := &mockPersister{
		LoadFunc: func(ctx context.Context) (*Loaded, error) {
			return &Loaded{State: State{Clients: []*client.Client{c}}, HasClients: true}, nil
		},
	}
	s := newTestStore(t, p, WithSeed(true))

	state := s.Snapshot()
	require.Len(t, state.Clients, 1)
	assert.Equal(t, "cl_a", state.Clients[0].ID())
	assert.Empty(t, state.Tickets, "seed data only applies to a completely empty store")
	assert.NotNil(t, state.Settings)
}

func TestLoad_PersisterError(t *testing.T) {
	p := &mockPersister{
		LoadFunc: func(ctx context.Context) (*Loaded, error) {
			return nil, errors.New("corrupt blob")
		},
	}
	s := New(p, newNopLogger())

	assert.Error(t, s.Load(context.Background()))
}

func TestAddTicket_PrependsAndPersists(t *testing.T) {
	p := &mockPersister{}
	s := newTestStore(t, p)
	ctx := context.Background()

	first, err := s.AddTicket(ctx, draftTicket(t, "first", "c1"))
	require.NoError(t, err)
	second, err := s.AddTicket(ctx, draftTicket(t, "second", "c1"))
	require.NoError(t, err)

	assert.Equal(t, "tk_1", first.ID())
	assert.Equal(t, fixedNow, second.CreatedAt())

	state := s.Snapshot()
	require.Len(t, state.Tickets, 2)
	assert.Equal(t, second.ID(), state.Tickets[0].ID())
	assert.Equal(t, first.ID(), state.Tickets[1].ID())
	assert.Equal(t, 2, p.SaveCalls())
	assert.Same(t, state, p.lastSaved)
}

func TestAddClientAndMember_Append(t *testing.T) {
	s := newTestStore(t, &mockPersister{})
	ctx := context.Background()

	for _, name := range []string{"Jane Doe", "Kyle Reese"} {
		draft, err := client.NewClient(name, "Acme Corp", "ops@acme.com")
		require.NoError(t, err)
		_, err = s.AddClient(ctx, draft)
		require.NoError(t, err)
	}
	member, err := team.NewMember("Sam Carter", "sam@nexus.io", "", "")
	require.NoError(t, err)
	created, err := s.AddTeamMember(ctx, member)
	require.NoError(t, err)

	state := s.Snapshot()
	require.Len(t, state.Clients, 2)
	assert.Equal(t, "Jane Doe", state.Clients[0].Name())
	assert.Equal(t, "Kyle Reese", state.Clients[1].Name())
	assert.Equal(t, "tm_3", created.ID())
	assert.Equal(t, team.DefaultRole, created.Role())
}

func TestAddTicket_DuplicateIDIsInternalError(t *testing.T) {
	p := &mockPersister{}
	s := newTestStore(t, p, WithIDGenerator(func(prefix string) (string, error) {
		return prefix + "_same", nil
	}))
	ctx := context.Background()

	_, err := s.AddTicket(ctx, draftTicket(t, "first", "c1"))
	require.NoError(t, err)

	_, err = s.AddTicket(ctx, draftTicket(t, "second", "c1"))
	require.Error(t, err)
	assert.True(t, apperrors.IsInternalError(err))
	assert.Len(t, s.Snapshot().Tickets, 1)
	assert.Equal(t, 1, p.SaveCalls())
}

func TestUpdateTicketStatus(t *testing.T) {
	p := &mockPersister{}
	s := newTestStore(t, p)
	ctx := context.Background()

	created, err := s.AddTicket(ctx, draftTicket(t, "vpn", "c1"))
	require.NoError(t, err)

	updated, found, err := s.UpdateTicketStatus(ctx, created.ID(), vo.StatusInProgress)
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, vo.StatusInProgress, updated.Status())
	assert.Equal(t, created.Title(), updated.Title())
	assert.Equal(t, created.CreatedAt(), updated.CreatedAt())
	assert.Equal(t, vo.StatusOpen, created.Status(), "previous snapshot entities are never modified")
}

func TestUpdateTicketStatus_UnknownIDIsNoOp(t *testing.T) {
	p := &mockPersister{}
	s := newTestStore(t, p)
	ctx := context.Background()

	_, err := s.AddTicket(ctx, draftTicket(t, "vpn", "c1"))
	require.NoError(t, err)
	before := s.Snapshot()
	saves := p.SaveCalls()

	updated, found, err := s.UpdateTicketStatus(ctx, "tk_missing", vo.StatusClosed)
	require.NoError(t, err)
	assert.False(t, found)
	assert.Nil(t, updated)
	assert.Same(t, before, s.Snapshot())
	assert.Equal(t, saves, p.SaveCalls())
}

func TestRemoveClient_DoesNotCascade(t *testing.T) {
	s := newTestStore(t, &mockPersister{}, WithSeed(true))
	ctx := context.Background()

	removed, err := s.RemoveClient(ctx, "c1")
	require.NoError(t, err)
	assert.True(t, removed)

	state := s.Snapshot()
	assert.False(t, state.ClientExists("c1"))
	require.Len(t, state.Tickets, 1)
	assert.Equal(t, "c1", state.Tickets[0].ClientID())

	removed, err = s.RemoveClient(ctx, "c1")
	require.NoError(t, err)
	assert.False(t, removed)
}

func TestRemoveTeamMember(t *testing.T) {
	s := newTestStore(t, &mockPersister{}, WithSeed(true))

	removed, err := s.RemoveTeamMember(context.Background(), "t2")
	require.NoError(t, err)
	assert.True(t, removed)
	require.Len(t, s.Snapshot().Team, 1)
	assert.Equal(t, "t1", s.Snapshot().Team[0].ID())
}

func TestUpdateSettings(t *testing.T) {
	s := newTestStore(t, &mockPersister{})

	params := setting.DefaultSystemSettings().Params()
	params.AppName = "Helpdesk"
	params.RetentionDays = 30
	next, err := setting.NewSystemSettings(params)
	require.NoError(t, err)

	require.NoError(t, s.UpdateSettings(context.Background(), next))
	assert.Equal(t, "Helpdesk", s.Snapshot().Settings.AppName())
	assert.Equal(t, 30, s.Snapshot().Settings.RetentionDays())

	assert.True(t, apperrors.IsValidationError(s.UpdateSettings(context.Background(), nil)))
}

func TestMutation_PersistFailureLeavesStateUnchanged(t *testing.T) {
	p := &mockPersister{}
	s := newTestStore(t, p, WithSeed(true))
	before := s.Snapshot()

	p.SaveFunc = func(ctx context.Context, state *State) error {
		return errors.New("quota exceeded")
	}

	_, err := s.AddTicket(context.Background(), draftTicket(t, "lost", "c1"))
	require.Error(t, err)
	assert.True(t, apperrors.IsInternalError(err))
	assert.Same(t, before, s.Snapshot())

	_, err = s.RemoveClient(context.Background(), "c2")
	require.Error(t, err)
	assert.True(t, s.Snapshot().ClientExists("c2"))
}

func TestMutation_PersistsDespiteCancelledRequest(t *testing.T) {
	p := &mockPersister{}
	s := newTestStore(t, p)
	p.SaveFunc = func(ctx context.Context, state *State) error {
		return ctx.Err()
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	added, err := s.AddTicket(ctx, draftTicket(t, "sent before hang-up", "c1"))
	require.NoError(t, err)
	state := s.Snapshot()
	_, found := state.FindTicket(added.ID())
	assert.True(t, found)
	assert.Same(t, state, p.lastSaved)
}

func TestStore_ConcurrentAddsAreSerialized(t *testing.T) {
	p := &mockPersister{}
	s := newTestStore(t, p)
	ctx := context.Background()

	drafts := make([]*ticket.Ticket, 20)
	for i := range drafts {
		drafts[i] = draftTicket(t, fmt.Sprintf("ticket %d", i), "c1")
	}

	var wg sync.WaitGroup
	for _, d := range drafts {
		wg.Add(1)
		go func(d *ticket.Ticket) {
			defer wg.Done()
			_, err := s.AddTicket(ctx, d)
			assert.NoError(t, err)
		}(d)
	}
	wg.Wait()

	assert.Len(t, s.Snapshot().Tickets, 20)
	assert.Equal(t, 20, p.SaveCalls())
}
