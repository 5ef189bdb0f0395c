// Package store holds the canonical in-memory state of the support desk and
// mirrors every accepted mutation into a Persister.
package store

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"github.com/nexus-desk/nexus/internal/domain/client"
	"github.com/nexus-desk/nexus/internal/domain/setting"
	"github.com/nexus-desk/nexus/internal/domain/team"
	"github.com/nexus-desk/nexus/internal/domain/ticket"
	vo "github.com/nexus-desk/nexus/internal/domain/ticket/valueobjects"
	"github.com/nexus-desk/nexus/internal/shared/biztime"
	"github.com/nexus-desk/nexus/internal/shared/errors"
	"github.com/nexus-desk/nexus/internal/shared/id"
	"github.com/nexus-desk/nexus/internal/shared/logger"
)

type IDGenerator func(prefix string) (string, error)

type Option func(*Store)

// WithIDGenerator replaces the random ID source.
func WithIDGenerator(gen IDGenerator) Option {
	return func(s *Store) {
		s.newID = gen
	}
}

func WithClock(now func() time.Time) Option {
	return func(s *Store) {
		s.now = now
	}
}

// WithSeed controls whether an empty persistence layer is filled with demo data.
func WithSeed(enabled bool) Option {
	return func(s *Store) {
		s.seed = enabled
	}
}

// Store serializes writers with a mutex. Readers load the current snapshot
// pointer and never wait for persistence.
type Store struct {
	mu        sync.Mutex
	state     atomic.Pointer[State]
	persister Persister
	newID     IDGenerator
	now       func() time.Time
	seed      bool
	logger    logger.Interface
}

func New(persister Persister, logger logger.Interface, opts ...Option) *Store {
	s := &Store{
		persister: persister,
		newID: func(prefix string) (string, error) {
			return id.GenerateWithPrefix(prefix, id.DefaultLength)
		},
		now:    biztime.NowUTC,
		logger: logger,
	}
	for _, opt := range opts {
		opt(s)
	}
	s.state.Store(emptyState())
	return s
}

// Load replaces the in-memory state with what the persister holds. Missing
// slices fall back to defaults; when nothing was persisted at all and seeding
// is enabled the demo data is used instead.
func (s *Store) Load(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	loaded, err := s.persister.Load(ctx)
	if err != nil {
		s.logger.Errorw("failed to load persisted state", "error", err)
		return fmt.Errorf("load state: %w", err)
	}

	defaults := emptyState()
	if s.seed && loaded.IsEmpty() {
		demo, err := DemoState(s.now())
		if err != nil {
			return err
		}
		defaults = demo
		s.logger.Infow("no persisted state found, using demo data")
	}

	next := &State{
		Tickets:  pick(loaded.HasTickets, loaded.Tickets, defaults.Tickets),
		Clients:  pick(loaded.HasClients, loaded.Clients, defaults.Clients),
		Team:     pick(loaded.HasTeam, loaded.Team, defaults.Team),
		Settings: defaults.Settings,
	}
	if loaded.HasSettings && loaded.Settings != nil {
		next.Settings = loaded.Settings
	}

	s.state.Store(next)
	s.logger.Infow("state loaded",
		"tickets", len(next.Tickets),
		"clients", len(next.Clients),
		"team", len(next.Team),
	)
	return nil
}

func pick[T any](present bool, loaded, fallback []T) []T {
	if present && loaded != nil {
		return loaded
	}
	return fallback
}

// Snapshot returns the current state. Callers must not modify it.
func (s *Store) Snapshot() *State {
	return s.state.Load()
}

// AddTicket assigns an identity to the draft and places it at the head of
// the ticket list.
func (s *Store) AddTicket(ctx context.Context, draft *ticket.Ticket) (*ticket.Ticket, error) {
	var created *ticket.Ticket
	err := s.mutate(ctx, "add ticket", func(next *State) (bool, error) {
		ticketID, err := s.uniqueID(id.PrefixTicket, func(candidate string) bool {
			_, ok := next.FindTicket(candidate)
			return ok
		})
		if err != nil {
			return false, err
		}
		created, err = draft.WithIdentity(ticketID, s.now())
		if err != nil {
			return false, err
		}
		next.Tickets = append([]*ticket.Ticket{created}, next.Tickets...)
		return true, nil
	})
	if err != nil {
		return nil, err
	}
	return created, nil
}

func (s *Store) AddClient(ctx context.Context, draft *client.Client) (*client.Client, error) {
	var created *client.Client
	err := s.mutate(ctx, "add client", func(next *State) (bool, error) {
		clientID, err := s.uniqueID(id.PrefixClient, next.ClientExists)
		if err != nil {
			return false, err
		}
		created, err = draft.WithIdentity(clientID, s.now())
		if err != nil {
			return false, err
		}
		next.Clients = append(next.Clients, created)
		return true, nil
	})
	if err != nil {
		return nil, err
	}
	return created, nil
}

func (s *Store) AddTeamMember(ctx context.Context, draft *team.Member) (*team.Member, error) {
	var created *team.Member
	err := s.mutate(ctx, "add team member", func(next *State) (bool, error) {
		memberID, err := s.uniqueID(id.PrefixMember, func(candidate string) bool {
			for _, m := range next.Team {
				if m.ID() == candidate {
					return true
				}
			}
			return false
		})
		if err != nil {
			return false, err
		}
		created, err = draft.WithIdentity(memberID)
		if err != nil {
			return false, err
		}
		next.Team = append(next.Team, created)
		return true, nil
	})
	if err != nil {
		return nil, err
	}
	return created, nil
}

// UpdateTicketStatus changes only the status of the ticket with the given
// ID. An unknown ID is a no-op reported through found.
func (s *Store) UpdateTicketStatus(ctx context.Context, ticketID string, status vo.TicketStatus) (updated *ticket.Ticket, found bool, err error) {
	err = s.mutate(ctx, "update ticket status", func(next *State) (bool, error) {
		for i, t := range next.Tickets {
			if t.ID() != ticketID {
				continue
			}
			changed, err := t.WithStatus(status)
			if err != nil {
				return false, err
			}
			next.Tickets[i] = changed
			updated = changed
			found = true
			return true, nil
		}
		return false, nil
	})
	if err != nil {
		return nil, false, err
	}
	return updated, found, nil
}

// RemoveClient deletes the client but leaves its tickets in place.
func (s *Store) RemoveClient(ctx context.Context, clientID string) (bool, error) {
	var removed bool
	err := s.mutate(ctx, "remove client", func(next *State) (bool, error) {
		kept := make([]*client.Client, 0, len(next.Clients))
		for _, c := range next.Clients {
			if c.ID() == clientID {
				removed = true
				continue
			}
			kept = append(kept, c)
		}
		next.Clients = kept
		return removed, nil
	})
	return removed, err
}

func (s *Store) RemoveTeamMember(ctx context.Context, memberID string) (bool, error) {
	var removed bool
	err := s.mutate(ctx, "remove team member", func(next *State) (bool, error) {
		kept := make([]*team.Member, 0, len(next.Team))
		for _, m := range next.Team {
			if m.ID() == memberID {
				removed = true
				continue
			}
			kept = append(kept, m)
		}
		next.Team = kept
		return removed, nil
	})
	return removed, err
}

// UpdateSettings replaces the settings record as a whole.
func (s *Store) UpdateSettings(ctx context.Context, settings *setting.SystemSettings) error {
	if settings == nil {
		return errors.NewValidationError("settings are required")
	}
	return s.mutate(ctx, "update settings", func(next *State) (bool, error) {
		next.Settings = settings
		return true, nil
	})
}

// mutate applies fn to a copy of the current state, persists the copy and
// only then publishes it. fn reports whether anything changed; unchanged
// copies are discarded without touching the persister.
func (s *Store) mutate(ctx context.Context, op string, fn func(next *State) (bool, error)) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	next := s.state.Load().clone()
	changed, err := fn(next)
	if err != nil {
		if errors.IsAppError(err) {
			return err
		}
		s.logger.Errorw("state mutation rejected", "operation", op, "error", err)
		return errors.NewInternalError("failed to "+op, err.Error())
	}
	if !changed {
		return nil
	}

	// a client that disconnects mid-write must not leave the backend ahead
	// of the published state
	if err := s.persister.Save(context.WithoutCancel(ctx), next); err != nil {
		s.logger.Errorw("failed to persist state", "operation", op, "error", err)
		return errors.NewInternalError("failed to persist state", err.Error())
	}

	s.state.Store(next)
	return nil
}

const maxIDAttempts = 5

func (s *Store) uniqueID(prefix string, taken func(string) bool) (string, error) {
	for range maxIDAttempts {
		candidate, err := s.newID(prefix)
		if err != nil {
			return "", err
		}
		if !taken(candidate) {
			return candidate, nil
		}
		s.logger.Warnw("generated id collided with an existing entity", "id", candidate)
	}
	return "", fmt.Errorf("could not generate a unique %s id after %d attempts", prefix, maxIDAttempts)
}
