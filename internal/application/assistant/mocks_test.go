package assistant

import (
	"context"
	"io"
	"sync"

	"github.com/nexus-desk/nexus/internal/domain/assistant"
	"github.com/nexus-desk/nexus/internal/shared/logger"
)

type mockProvider struct {
	mu             sync.Mutex
	StreamChatFunc func(ctx context.Context, req assistant.ChatRequest) (assistant.ChunkStream, error)
	requests       []assistant.ChatRequest
}

func (m *mockProvider) StreamChat(ctx context.Context, req assistant.ChatRequest) (assistant.ChunkStream, error) {
	m.mu.Lock()
	m.requests = append(m.requests, req)
	m.mu.Unlock()
	return m.StreamChatFunc(ctx, req)
}

func (m *mockProvider) Requests() []assistant.ChatRequest {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]assistant.ChatRequest(nil), m.requests...)
}

// scriptedStream replays chunks, then returns err (io.EOF when nil).
type scriptedStream struct {
	chunks []string
	err    error
	// gate, when set, blocks each Next until a value is received or ctx ends
	gate   chan struct{}
	ctx    context.Context
	mu     sync.Mutex
	closed bool
}

func (s *scriptedStream) Next() (string, error) {
	if s.gate != nil {
		select {
		case <-s.gate:
		case <-s.ctx.Done():
			return "", s.ctx.Err()
		}
	}
	if len(s.chunks) > 0 {
		chunk := s.chunks[0]
		s.chunks = s.chunks[1:]
		return chunk, nil
	}
	if s.err != nil {
		return "", s.err
	}
	return "", io.EOF
}

func (s *scriptedStream) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.closed = true
	return nil
}

func (s *scriptedStream) Closed() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.closed
}

func discardLogger() logger.Interface {
	return logger.NewNop()
}
