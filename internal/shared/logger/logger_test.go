package logger

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nexus-desk/nexus/internal/shared/config"
)

func TestConditionalSourceHandler_SourceOnlyForSelectedLevels(t *testing.T) {
	tests := []struct {
		name       string
		level      slog.Level
		wantSource bool
	}{
		{name: "info has no source", level: slog.LevelInfo, wantSource: false},
		{name: "warn has source", level: slog.LevelWarn, wantSource: true},
		{name: "error has source", level: slog.LevelError, wantSource: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			base := slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})
			log := slog.New(NewConditionalSourceHandler(base, slog.LevelWarn, slog.LevelError))

			log.Log(context.Background(), tt.level, "ticket stored", "ticket_id", "tk_1")

			assert.Equal(t, tt.wantSource, strings.Contains(buf.String(), "source="))
			assert.Contains(t, buf.String(), "ticket_id=tk_1")
		})
	}
}

func TestConditionalSourceHandler_KeepsAttrsAcrossWith(t *testing.T) {
	var buf bytes.Buffer
	base := slog.NewTextHandler(&buf, nil)
	log := slog.New(NewConditionalSourceHandler(base, slog.LevelError)).With("component", "store")

	log.Error("persist failed")

	out := buf.String()
	assert.Contains(t, out, "component=store")
	assert.Contains(t, out, "source=")
}

func TestInit_JSONFileOutput(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nexus.log")

	err := Init(&config.LoggerConfig{Level: "warn", Format: "json", OutputPath: path}, "release")
	require.NoError(t, err)
	t.Cleanup(func() { Logger = nil })

	Info("dropped below level")
	Warn("client removed", "client_id", "cl_1")

	raw, err := os.ReadFile(path)
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(string(raw)), "\n")
	require.Len(t, lines, 1)

	var record map[string]any
	require.NoError(t, json.Unmarshal([]byte(lines[0]), &record))
	assert.Equal(t, "client removed", record["msg"])
	assert.Equal(t, "cl_1", record["client_id"])
	source, ok := record[slog.SourceKey].(map[string]any)
	require.True(t, ok)
	assert.Contains(t, source["file"], "logger_test.go")
}

func TestSlogLogger_WithAndNamed(t *testing.T) {
	var buf bytes.Buffer
	log := NewLoggerWithSlog(slog.New(slog.NewTextHandler(&buf, nil)))

	log.Named("assistant").With("conversation_id", "c-1").Infow("stream completed", "chunks", 3)

	out := buf.String()
	assert.Contains(t, out, "logger=assistant")
	assert.Contains(t, out, "conversation_id=c-1")
	assert.Contains(t, out, "chunks=3")
}

func TestParseLevel(t *testing.T) {
	assert.Equal(t, slog.LevelDebug, ParseLevel("DEBUG"))
	assert.Equal(t, slog.LevelWarn, ParseLevel("warning"))
	assert.Equal(t, slog.LevelError, ParseLevel(" error "))
	assert.Equal(t, slog.LevelInfo, ParseLevel("verbose"))
}

func TestSlogLogger_SourcePointsAtCaller(t *testing.T) {
	var buf bytes.Buffer
	base := slog.NewTextHandler(&buf, nil)
	log := NewLoggerWithSlog(slog.New(NewConditionalSourceHandler(base, slog.LevelWarn)))

	log.Warnw("classification rejected")

	assert.Contains(t, buf.String(), "logger_test.go")
	assert.NotContains(t, buf.String(), "interface.go")
}

func TestNewNop(t *testing.T) {
	log := NewNop().Named("store").With("key", "nexus_tickets")
	assert.NotPanics(t, func() { log.Errorw("persist failed", "error", "disk full") })
}
