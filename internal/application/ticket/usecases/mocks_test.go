package usecases

import (
	"context"
	"sync"

	"github.com/nexus-desk/nexus/internal/domain/ticket"
)

type mockClassifier struct {
	mu           sync.Mutex
	ClassifyFunc func(ctx context.Context, model, title, description string) ticket.Analysis
	calls        int
	lastModel    string
}

func (m *mockClassifier) Classify(ctx context.Context, model, title, description string) ticket.Analysis {
	m.mu.Lock()
	m.calls++
	m.lastModel = model
	m.mu.Unlock()
	if m.ClassifyFunc != nil {
		return m.ClassifyFunc(ctx, model, title, description)
	}
	return ticket.FallbackAnalysis()
}

func (m *mockClassifier) Calls() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.calls
}
