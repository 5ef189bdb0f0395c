// Package testutil builds the entity store and access guard used by the
// application layer tests.
package testutil

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/nexus-desk/nexus/internal/application/access"
	"github.com/nexus-desk/nexus/internal/application/store"
	"github.com/nexus-desk/nexus/internal/infrastructure/permission"
	"github.com/nexus-desk/nexus/internal/shared/logger"
)

// Now is the fixed clock every fixture store uses.
var Now = time.Date(2025, 3, 14, 10, 0, 0, 0, time.UTC)

func Logger() logger.Interface {
	return logger.NewNop()
}

func Guard(t *testing.T) *access.Guard {
	t.Helper()
	e, err := permission.NewEnforcer(Logger())
	require.NoError(t, err)
	return access.NewGuard(e, Logger())
}

// Persister keeps the last saved state in memory. SaveErr makes every save
// fail.
type Persister struct {
	mu      sync.Mutex
	saved   *store.State
	saves   int
	SaveErr error
}

func (p *Persister) Load(ctx context.Context) (*store.Loaded, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.saved == nil {
		return &store.Loaded{}, nil
	}
	return &store.Loaded{
		State:       *p.saved,
		HasTickets:  true,
		HasClients:  true,
		HasTeam:     true,
		HasSettings: true,
	}, nil
}

func (p *Persister) Save(ctx context.Context, state *store.State) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.SaveErr != nil {
		return p.SaveErr
	}
	p.saved = state
	p.saves++
	return nil
}

func (p *Persister) Saves() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.saves
}

// Store returns a loaded store holding the demo data: clients c1 and c2,
// members t1 and t2 and ticket tk1 owned by c1. IDs assigned later are
// sequential per prefix (tk_1, cl_1, ...).
func Store(t *testing.T, p *Persister) *store.Store {
	t.Helper()
	if p == nil {
		p = &Persister{}
	}
	var (
		mu  sync.Mutex
		seq = map[string]int{}
	)
	s := store.New(p, Logger(),
		store.WithSeed(true),
		store.WithClock(func() time.Time { return Now }),
		store.WithIDGenerator(func(prefix string) (string, error) {
			mu.Lock()
			defer mu.Unlock()
			seq[prefix]++
			return fmt.Sprintf("%s_%d", prefix, seq[prefix]), nil
		}),
	)
	require.NoError(t, s.Load(context.Background()))
	return s
}
