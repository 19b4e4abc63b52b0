// Package logging hands out per-component logrus entries that share one
// configured logger.
package logging

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sync"

	"github.com/Makepad-fr/tada/internal/config"
	"github.com/sirupsen/logrus"
)

var (
	base      = newBase()
	loggers   = make(map[string]*logrus.Entry)
	loggersMu sync.Mutex
)

// Output is discarded until Configure says otherwise; the TUI owns the terminal.
func newBase() *logrus.Logger {
	l := logrus.New()
	l.SetOutput(io.Discard)
	l.SetLevel(logrus.InfoLevel)
	l.SetFormatter(&logrus.TextFormatter{DisableColors: true, FullTimestamp: true})
	return l
}

// NewLogger returns the entry for component, creating it on first use.
func NewLogger(component string) *logrus.Entry {
	loggersMu.Lock()
	defer loggersMu.Unlock()

	if logger, exists := loggers[component]; exists {
		return logger
	}
	logger := base.WithField("component", component)
	loggers[component] = logger
	return logger
}

// Configure applies cfg to the shared logger. When cfg.File is set logs are
// appended there; otherwise they go to fallback (nil keeps them discarded).
// The returned closer releases the log file, if any.
func Configure(cfg config.Logging, fallback io.Writer) (io.Closer, error) {
	levelStr := cfg.Level
	if levelStr == "" {
		levelStr = "info"
	}
	level, err := logrus.ParseLevel(levelStr)
	if err != nil {
		return nil, fmt.Errorf("log level: %w", err)
	}

	var formatter logrus.Formatter
	switch cfg.Format {
	case "json":
		formatter = &logrus.JSONFormatter{}
	default:
		formatter = &logrus.TextFormatter{DisableColors: true, FullTimestamp: true}
	}

	var out io.Writer = io.Discard
	var closer io.Closer = nopCloser{}
	switch {
	case cfg.File != "":
		if err := os.MkdirAll(filepath.Dir(cfg.File), 0o755); err != nil {
			return nil, fmt.Errorf("create log dir: %w", err)
		}
		f, err := os.OpenFile(cfg.File, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, fmt.Errorf("open log file: %w", err)
		}
		out, closer = f, f
	case fallback != nil:
		out = fallback
	}

	base.SetLevel(level)
	base.SetFormatter(formatter)
	base.SetOutput(out)
	return closer, nil
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }
