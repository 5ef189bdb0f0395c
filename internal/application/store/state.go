package store

import (
	"context"

	"github.com/nexus-desk/nexus/internal/domain/client"
	"github.com/nexus-desk/nexus/internal/domain/setting"
	"github.com/nexus-desk/nexus/internal/domain/team"
	"github.com/nexus-desk/nexus/internal/domain/ticket"
)

// State is an immutable snapshot of everything the store holds. Tickets are
// ordered newest first; clients and team members in insertion order.
type State struct {
	Tickets  []*ticket.Ticket
	Clients  []*client.Client
	Team     []*team.Member
	Settings *setting.SystemSettings
}

// ClientExists reports whether a client with the given ID is present.
func (s *State) ClientExists(id string) bool {
	_, ok := client.Find(s.Clients, id)
	return ok
}

func (s *State) FindTicket(id string) (*ticket.Ticket, bool) {
	for _, t := range s.Tickets {
		if t.ID() == id {
			return t, true
		}
	}
	return nil, false
}

// Loaded is the result of reading persisted state. The Has flags tell the
// store which slices were missing so it can fill them with defaults.
type Loaded struct {
	State
	HasTickets  bool
	HasClients  bool
	HasTeam     bool
	HasSettings bool
}

// IsEmpty reports whether nothing at all has been persisted yet.
func (l *Loaded) IsEmpty() bool {
	return !l.HasTickets && !l.HasClients && !l.HasTeam && !l.HasSettings
}

// Persister mirrors the state into durable storage. Save writes all four
// slices as one batch.
type Persister interface {
	Load(ctx context.Context) (*Loaded, error)
	Save(ctx context.Context, state *State) error
}

func (s *State) clone() *State {
	next := &State{
		Tickets:  make([]*ticket.Ticket, len(s.Tickets)),
		Clients:  make([]*client.Client, len(s.Clients)),
		Team:     make([]*team.Member, len(s.Team)),
		Settings: s.Settings,
	}
	copy(next.Tickets, s.Tickets)
	copy(next.Clients, s.Clients)
	copy(next.Team, s.Team)
	return next
}

func emptyState() *State {
	return &State{
		Tickets:  []*ticket.Ticket{},
		Clients:  []*client.Client{},
		Team:     []*team.Member{},
		Settings: setting.DefaultSystemSettings(),
	}
}
