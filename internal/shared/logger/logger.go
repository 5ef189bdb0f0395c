package logger

import (
	"context"
	"io"
	"log/slog"
	"os"
	"runtime"
	"strings"
	"sync"
	"time"

	"github.com/lmittmann/tint"
	"golang.org/x/term"

	"github.com/nexus-desk/nexus/internal/shared/config"
)

var (
	mu      sync.RWMutex
	Logger  *slog.Logger
	level   = new(slog.LevelVar)
	allLvls = []slog.Level{slog.LevelDebug, slog.LevelInfo, slog.LevelWarn, slog.LevelError}
)

// Init builds the process-wide logger from cfg. mode is the gin server mode:
// in debug mode every record carries its source location, otherwise only
// warnings and errors do.
func Init(cfg *config.LoggerConfig, mode string) error {
	w, err := openOutput(cfg.OutputPath)
	if err != nil {
		return err
	}
	level.Set(ParseLevel(cfg.Level))

	sourceLevels := []slog.Level{slog.LevelWarn, slog.LevelError}
	if mode == "debug" {
		sourceLevels = allLvls
	}

	var base slog.Handler
	if strings.EqualFold(cfg.Format, "json") {
		base = slog.NewJSONHandler(w, &slog.HandlerOptions{Level: level})
	} else {
		base = consoleHandler(w, level)
	}

	set(slog.New(NewConditionalSourceHandler(base, sourceLevels...)))
	return nil
}

// ParseLevel maps a config level name onto slog. Unknown names mean info.
func ParseLevel(name string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

func openOutput(path string) (io.Writer, error) {
	switch strings.ToLower(path) {
	case "", "stdout":
		return os.Stdout, nil
	case "stderr":
		return os.Stderr, nil
	}
	return os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
}

// consoleHandler renders tint output, coloured only when w is a terminal.
func consoleHandler(w io.Writer, lvl slog.Leveler) slog.Handler {
	f, isFile := w.(*os.File)
	return tint.NewHandler(w, &tint.Options{
		Level:      lvl,
		TimeFormat: time.DateTime,
		NoColor:    !isFile || !term.IsTerminal(int(f.Fd())),
		ReplaceAttr: func(groups []string, a slog.Attr) slog.Attr {
			if err, ok := a.Value.Any().(error); ok && a.Key == "error" {
				return tint.Err(err)
			}
			return a
		},
	})
}

func set(l *slog.Logger) {
	mu.Lock()
	Logger = l
	mu.Unlock()
	slog.SetDefault(l)
}

// Get returns the process-wide logger, falling back to an info-level console
// logger when Init was never called.
func Get() *slog.Logger {
	mu.RLock()
	l := Logger
	mu.RUnlock()
	if l != nil {
		return l
	}

	fallback := slog.New(NewConditionalSourceHandler(consoleHandler(os.Stdout, slog.LevelInfo), slog.LevelWarn, slog.LevelError))
	set(fallback)
	return fallback
}

func Debug(msg string, args ...any) { emit(Get(), slog.LevelDebug, msg, args) }
func Info(msg string, args ...any)  { emit(Get(), slog.LevelInfo, msg, args) }
func Warn(msg string, args ...any)  { emit(Get(), slog.LevelWarn, msg, args) }
func Error(msg string, args ...any) { emit(Get(), slog.LevelError, msg, args) }

// emit records the caller of the exported logging function as the source.
func emit(l *slog.Logger, lvl slog.Level, msg string, args []any) {
	ctx := context.Background()
	if !l.Enabled(ctx, lvl) {
		return
	}
	var pcs [1]uintptr
	runtime.Callers(3, pcs[:]) // Callers, emit, exported wrapper
	r := slog.NewRecord(time.Now(), lvl, msg, pcs[0])
	r.Add(args...)
	_ = l.Handler().Handle(ctx, r)
}
