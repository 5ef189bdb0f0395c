// Package common holds helpers shared by several HTTP handlers.
package common

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/nexus-desk/nexus/internal/shared/logger"
)

const (
	SSEContentType = "text/event-stream"

	defaultKeepalive = 15 * time.Second
)

// EventStreamer writes server-sent events onto a gin response. Handlers that
// stream embed it.
type EventStreamer struct {
	keepalive time.Duration
	logger    logger.Interface
}

func NewEventStreamer(log logger.Interface) *EventStreamer {
	return &EventStreamer{keepalive: defaultKeepalive, logger: log.Named("sse")}
}

// WithKeepalive sets how long the stream may stay silent before a comment
// line is written. Non-positive values are ignored.
func (s *EventStreamer) WithKeepalive(d time.Duration) *EventStreamer {
	if d > 0 {
		s.keepalive = d
	}
	return s
}

// Open commits the response to an event stream. Nothing may be written
// through the JSON helpers afterwards.
func (s *EventStreamer) Open(c *gin.Context) bool {
	h := c.Writer.Header()
	h.Set("Content-Type", SSEContentType)
	h.Set("Cache-Control", "no-cache")
	h.Set("Connection", "keep-alive")
	h.Set("X-Accel-Buffering", "no")
	c.Status(http.StatusOK)
	return s.comment(c, "connected") == nil
}

// Emit writes one event whose data line is data encoded as JSON.
func (s *EventStreamer) Emit(c *gin.Context, event string, data any) error {
	body, err := json.Marshal(data)
	if err != nil {
		return fmt.Errorf("sse: encode %q: %w", event, err)
	}
	if _, err := fmt.Fprintf(c.Writer, "event: %s\ndata: %s\n\n", event, body); err != nil {
		return err
	}
	c.Writer.Flush()
	return nil
}

func (s *EventStreamer) comment(c *gin.Context, text string) error {
	if _, err := fmt.Fprintf(c.Writer, ": %s\n\n", text); err != nil {
		return err
	}
	c.Writer.Flush()
	return nil
}

// Pump forwards events through emit until the channel closes, ctx ends or a
// write fails. It reports whether the channel was drained to its end.
func Pump[T any](ctx context.Context, s *EventStreamer, c *gin.Context, events <-chan T, emit func(T) error) bool {
	idle := time.NewTicker(s.keepalive)
	defer idle.Stop()

	path := c.FullPath()
	for {
		select {
		case <-ctx.Done():
			s.logger.Debugw("event stream closed by client", "route", path)
			return false
		case e, open := <-events:
			if !open {
				return true
			}
			if err := emit(e); err != nil {
				s.logger.Warnw("event stream write failed", "route", path, "error", err)
				return false
			}
			idle.Reset(s.keepalive)
		case <-idle.C:
			if err := s.comment(c, "keepalive"); err != nil {
				s.logger.Warnw("event stream keepalive failed", "route", path, "error", err)
				return false
			}
		}
	}
}
