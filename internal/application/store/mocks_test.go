package store

import (
	"context"
	"sync"

	"github.com/nexus-desk/nexus/internal/shared/logger"
)

type mockPersister struct {
	mu        sync.Mutex
	LoadFunc  func(ctx context.Context) (*Loaded, error)
	SaveFunc  func(ctx context.Context, state *State) error
	saveCalls int
	lastSaved *State
}

func (m *mockPersister) Load(ctx context.Context) (*Loaded, error) {
	if m.LoadFunc != nil {
		return m.LoadFunc(ctx)
	}
	return &Loaded{}, nil
}

func (m *mockPersister) Save(ctx context.Context, state *State) error {
	m.mu.Lock()
	m.saveCalls++
	m.lastSaved = state
	m.mu.Unlock()
	if m.SaveFunc != nil {
		return m.SaveFunc(ctx, state)
	}
	return nil
}

func (m *mockPersister) SaveCalls() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.saveCalls
}

func newNopLogger() logger.Interface { return logger.NewNop() }
