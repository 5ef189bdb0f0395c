package goroutine

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/nexus-desk/nexus/internal/shared/logger"
)

type recordingLogger struct {
	logger.Interface
	mu     sync.Mutex
	errors []string
	done   chan struct{}
}

func (l *recordingLogger) Errorw(msg string, keysAndValues ...interface{}) {
	l.mu.Lock()
	l.errors = append(l.errors, msg)
	l.mu.Unlock()
	close(l.done)
}

func TestSafeGo_RecoversPanic(t *testing.T) {
	log := &recordingLogger{done: make(chan struct{})}

	SafeGo(log, "assistant-stream", func() {
		panic("boom")
	})

	select {
	case <-log.done:
	case <-time.After(2 * time.Second):
		t.Fatal("panic was not reported")
	}

	log.mu.Lock()
	defer log.mu.Unlock()
	assert.Equal(t, []string{"goroutine panicked"}, log.errors)
}

func TestSafeGo_RunsFunction(t *testing.T) {
	done := make(chan struct{})
	SafeGo(&recordingLogger{done: make(chan struct{})}, "noop", func() { close(done) })

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("function did not run")
	}
}

func TestRun_ReportsOutcome(t *testing.T) {
	log := &recordingLogger{done: make(chan struct{})}

	assert.True(t, Run(log, "ok", func() {}))
	assert.False(t, Run(log, "store-load", func() { panic("corrupt blob") }))
	assert.Equal(t, []string{"goroutine panicked"}, log.errors)
}
