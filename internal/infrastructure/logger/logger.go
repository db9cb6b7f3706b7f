// Package logger owns the diagnostic log. The terminal belongs to the UI, so
// records go to a JSON file; until Setup runs they are discarded.
package logger

import (
	"errors"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/google/uuid"
)

// Config configures the diagnostic log.
type Config struct {
	Path  string
	Debug bool
}

var (
	mu        sync.RWMutex
	global    = discard()
	logFile   *os.File
	logPath   string
	sessionID string
)

// Setup opens the log file and installs it as the global and slog default
// logger. The returned func closes the file and restores the discard logger.
func Setup(cfg Config) (func() error, error) {
	if cfg.Path == "" {
		return nil, errors.New("log path is empty")
	}

	if err := os.MkdirAll(filepath.Dir(cfg.Path), 0o750); err != nil {
		setDiscard()
		return nil, err
	}

	f, err := os.OpenFile(cfg.Path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o600)
	if err != nil {
		setDiscard()
		return nil, err
	}

	level := slog.LevelInfo
	if cfg.Debug {
		level = slog.LevelDebug
	}

	id := uuid.NewString()
	l := slog.New(newHandler(f, level)).With("session", id)

	mu.Lock()
	global = l
	logFile = f
	logPath = cfg.Path
	sessionID = id
	mu.Unlock()
	slog.SetDefault(l)

	l.Info("logger.initialized", "path", cfg.Path, "debug", cfg.Debug)

	cleanup := func() error {
		mu.Lock()
		defer mu.Unlock()

		var cerr error
		if logFile != nil {
			cerr = logFile.Close()
		}
		logFile = nil
		logPath = ""
		sessionID = ""
		global = discard()
		slog.SetDefault(global)
		return cerr
	}
	return cleanup, nil
}

func newHandler(w io.Writer, level slog.Level) slog.Handler {
	return slog.NewJSONHandler(w, &slog.HandlerOptions{
		Level: level,
		ReplaceAttr: func(_ []string, a slog.Attr) slog.Attr {
			if a.Key == slog.TimeKey && a.Value.Kind() == slog.KindTime {
				a.Value = slog.StringValue(a.Value.Time().UTC().Format(time.RFC3339Nano))
			}
			return a
		},
	})
}

// L returns the current logger.
func L() *slog.Logger {
	mu.RLock()
	defer mu.RUnlock()
	return global
}

// Path returns the open log file path, or "" before Setup.
func Path() string {
	mu.RLock()
	defer mu.RUnlock()
	return logPath
}

// SessionID returns the id attached to every record of this run.
func SessionID() string {
	mu.RLock()
	defer mu.RUnlock()
	return sessionID
}

func discard() *slog.Logger {
	return slog.New(slog.DiscardHandler)
}

func setDiscard() {
	mu.Lock()
	defer mu.Unlock()
	global = discard()
	logFile = nil
	logPath = ""
	sessionID = ""
}
