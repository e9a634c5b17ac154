// Package debug is tagit's file logger. The terminal belongs to the TUI, so
// log records go to ~/.config/tagit/debug.log and only when enabled.
package debug

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/charmbracelet/log"

	"github.com/stwalsh4118/tagit/internal/pathutil"
)

// EnvVar enables debug logging when set to "1".
const EnvVar = "TAGIT_DEBUG"

// DefaultLogPath is where Init writes when no path is given.
const DefaultLogPath = "~/.config/tagit/debug.log"

// Log levels accepted by ParseLevel.
const (
	LevelDebug = "debug"
	LevelInfo  = "info"
	LevelWarn  = "warn"
	LevelError = "error"
)

var (
	mu     sync.Mutex
	logger = log.NewWithOptions(io.Discard, log.Options{})
	file   *os.File
)

// Config controls Init.
type Config struct {
	Enabled bool
	Level   string // one of the Level* constants; "" means debug
	Path    string // "" means DefaultLogPath
	JSON    bool
}

// EnabledFromEnv reports whether EnvVar asks for debug logging.
func EnabledFromEnv() bool {
	return os.Getenv(EnvVar) == "1"
}

// ParseLevel maps a level name to a charm log level.
func ParseLevel(level string) (log.Level, error) {
	switch strings.ToLower(level) {
	case "", LevelDebug:
		return log.DebugLevel, nil
	case LevelInfo:
		return log.InfoLevel, nil
	case LevelWarn:
		return log.WarnLevel, nil
	case LevelError:
		return log.ErrorLevel, nil
	default:
		return log.InfoLevel, fmt.Errorf("unknown log level %q", level)
	}
}

// Init opens the log file and installs the package logger. With
// cfg.Enabled false it leaves logging discarded.
func Init(cfg Config) error {
	if !cfg.Enabled {
		return nil
	}

	level, err := ParseLevel(cfg.Level)
	if err != nil {
		return err
	}

	path := cfg.Path
	if path == "" {
		path = DefaultLogPath
	}
	path = pathutil.ExpandPath(path)

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("create log dir: %w", err)
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return fmt.Errorf("open debug log: %w", err)
	}

	SetOutput(f, level, cfg.JSON)

	mu.Lock()
	file = f
	mu.Unlock()

	Info("=== tagit started ===", "pid", os.Getpid())
	return nil
}

// SetOutput replaces the package logger with one writing to w.
func SetOutput(w io.Writer, level log.Level, json bool) {
	l := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		TimeFormat:      "15:04:05.000",
		Level:           level,
		Prefix:          "tagit",
	})
	if json {
		l.SetFormatter(log.JSONFormatter)
	}

	mu.Lock()
	logger = l
	mu.Unlock()
}

// Close flushes and closes the log file, if one is open.
func Close() error {
	mu.Lock()
	defer mu.Unlock()

	logger = log.NewWithOptions(io.Discard, log.Options{})
	if file == nil {
		return nil
	}
	err := file.Close()
	file = nil
	return err
}

func current() *log.Logger {
	mu.Lock()
	defer mu.Unlock()
	return logger
}

// Debug logs a debug record with key/value pairs.
func Debug(msg string, keyvals ...any) { current().Debug(msg, keyvals...) }

// Info logs an info record with key/value pairs.
func Info(msg string, keyvals ...any) { current().Info(msg, keyvals...) }

// Warn logs a warning record with key/value pairs.
func Warn(msg string, keyvals ...any) { current().Warn(msg, keyvals...) }

// Error logs an error record with key/value pairs.
func Error(msg string, keyvals ...any) { current().Error(msg, keyvals...) }
