package logger

import (
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"sync"
	"time"
)

type Config struct {
	// Verbosity 0 logs warnings, 1 progress, 2 and above debug.
	Verbosity int
	// File switches to a JSON log appended to this path.
	File string
	// Writer receives text logs when File is empty. Defaults to stderr.
	Writer io.Writer
}

var (
	mu      sync.RWMutex
	global  = slog.New(slog.NewTextHandler(io.Discard, nil))
	logFile *os.File
	logPath string
)

// LevelFor maps a verbosity count to a slog level.
func LevelFor(verbosity int) slog.Level {
	switch {
	case verbosity <= 0:
		return slog.LevelWarn
	case verbosity == 1:
		return slog.LevelInfo
	default:
		return slog.LevelDebug
	}
}

func Setup(cfg Config) (func() error, error) {
	level := LevelFor(cfg.Verbosity)
	debug := level <= slog.LevelDebug

	var (
		h    slog.Handler
		f    *os.File
		path string
	)
	if cfg.File != "" {
		path = filepath.Clean(cfg.File)
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			setDiscard()
			return nil, err
		}
		var err error
		f, err = os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o600)
		if err != nil {
			setDiscard()
			return nil, err
		}
		h = slog.NewJSONHandler(f, &slog.HandlerOptions{
			Level:     level,
			AddSource: debug,
			ReplaceAttr: func(_ []string, a slog.Attr) slog.Attr {
				if a.Key == slog.TimeKey && a.Value.Kind() == slog.KindTime {
					t := a.Value.Time().UTC()
					a.Value = slog.StringValue(t.Format(time.RFC3339Nano))
				}
				return a
			},
		})
	} else {
		w := cfg.Writer
		if w == nil {
			w = os.Stderr
		}
		h = slog.NewTextHandler(w, &slog.HandlerOptions{
			Level: level,
			ReplaceAttr: func(groups []string, a slog.Attr) slog.Attr {
				if len(groups) == 0 && a.Key == slog.TimeKey {
					return slog.Attr{}
				}
				return a
			},
		})
	}

	l := slog.New(h)

	mu.Lock()
	global = l
	logFile = f
	logPath = path
	mu.Unlock()

	l.Debug("logger.initialized", "path", path, "level", level.String())

	cleanup := func() error {
		mu.Lock()
		defer mu.Unlock()

		var cerr error
		if logFile != nil {
			cerr = logFile.Close()
		}
		logFile = nil
		logPath = ""
		global = slog.New(slog.NewTextHandler(io.Discard, nil))
		return cerr
	}

	return cleanup, nil
}

func L() *slog.Logger {
	mu.RLock()
	defer mu.RUnlock()
	return global
}

// Path is the JSON log file in use, or "" when logging as text.
func Path() string {
	mu.RLock()
	defer mu.RUnlock()
	return logPath
}

func setDiscard() {
	mu.Lock()
	defer mu.Unlock()
	global = slog.New(slog.NewTextHandler(io.Discard, nil))
	logFile = nil
	logPath = ""
}
