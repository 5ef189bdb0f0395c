package gemini

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/url"
	"sync"

	"github.com/nexus-desk/nexus/internal/domain/assistant"
)

var _ assistant.ChatProvider = (*Client)(nil)

// StreamChat opens a streaming chat completion over SSE.
func (c *Client) StreamChat(ctx context.Context, req assistant.ChatRequest) (assistant.ChunkStream, error) {
	contents := make([]content, 0, len(req.History)+1)
	for _, turn := range req.History {
		contents = append(contents, textContent(string(turn.Role), turn.Text))
	}
	contents = append(contents, textContent(string(assistant.RoleUser), req.Message))

	wire := generateRequest{Contents: contents}
	if req.SystemInstruction != "" {
		sys := textContent("", req.SystemInstruction)
		wire.SystemInstruction = &sys
	}

	endpoint := c.endpoint(req.Model, "streamGenerateContent", url.Values{"alt": {"sse"}})
	resp, err := c.do(ctx, endpoint, wire, true)
	if err != nil {
		return nil, err
	}

	c.logger.Debugw("chat stream opened", "model", req.Model, "history", len(req.History))
	return &chunkStream{
		scanner: newSSEScanner(resp.Body),
		body:    resp.Body,
	}, nil
}

type chunkStream struct {
	scanner   *sseScanner
	body      io.ReadCloser
	closeOnce sync.Once
	closeErr  error
}

// Next returns the text of the next non-empty chunk, or io.EOF.
func (s *chunkStream) Next() (string, error) {
	for s.scanner.Next() {
		event := s.scanner.Event()
		if event.Data == "" || event.Data == "[DONE]" {
			continue
		}

		var chunk generateResponse
		if err := json.Unmarshal([]byte(event.Data), &chunk); err != nil {
			return "", fmt.Errorf("gemini: decoding stream chunk: %w", err)
		}
		if chunk.Error != nil {
			return "", &APIError{Status: chunk.Error.Status, Message: chunk.Error.Message}
		}
		if chunk.PromptFeedback != nil && chunk.PromptFeedback.BlockReason != "" {
			return "", fmt.Errorf("gemini: prompt blocked: %s", chunk.PromptFeedback.BlockReason)
		}

		if text := chunk.text(); text != "" {
			return text, nil
		}
	}
	if err := s.scanner.Err(); err != nil {
		return "", fmt.Errorf("gemini: reading stream: %w", err)
	}
	return "", io.EOF
}

func (s *chunkStream) Close() error {
	s.closeOnce.Do(func() {
		s.closeErr = s.body.Close()
	})
	return s.closeErr
}
