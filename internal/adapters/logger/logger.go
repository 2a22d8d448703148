// Package logger implements a logging adapter using log/slog.
package logger

import (
	"errors"
	"io"
	"log/slog"
	"os"
	"slices"
	"strings"
	"sync"

	"go.trai.ch/dxpatch/internal/core/ports"
)

// messager matches zerr errors, which report their message without the cause chain.
type messager interface {
	Message() string
}

// metadataCarrier matches zerr errors carrying key/value annotations.
type metadataCarrier interface {
	Metadata() map[string]any
}

// Logger implements ports.Logger using log/slog.
type Logger struct {
	mu     sync.RWMutex
	logger *slog.Logger
	level  *slog.LevelVar
	output io.Writer
}

// New creates a new Logger writing human-readable records to stderr.
func New() ports.Logger {
	return NewWithWriter(os.Stderr)
}

// NewWithWriter creates a new Logger writing to w.
func NewWithWriter(w io.Writer) *Logger {
	level := new(slog.LevelVar)
	level.Set(slog.LevelInfo)
	l := &Logger{level: level}
	l.SetOutput(w)
	return l
}

// SetOutput updates the logger's output destination.
// If w is nil, os.Stderr is used.
func (l *Logger) SetOutput(w io.Writer) {
	if w == nil {
		w = os.Stderr
	}
	handler := slog.NewTextHandler(w, &slog.HandlerOptions{Level: l.level})

	l.mu.Lock()
	defer l.mu.Unlock()
	l.output = w
	l.logger = slog.New(handler)
}

// SetVerbose switches debug records on or off.
func (l *Logger) SetVerbose(enabled bool) {
	if enabled {
		l.level.Set(slog.LevelDebug)
		return
	}
	l.level.Set(slog.LevelInfo)
}

// Debug logs a message shown only in verbose mode.
func (l *Logger) Debug(msg string) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	l.logger.Debug(msg)
}

// Info logs an informational message.
func (l *Logger) Info(msg string) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	l.logger.Info(msg)
}

// Warn logs a warning message.
func (l *Logger) Warn(msg string) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	l.logger.Warn(msg)
}

// Error logs err with its cause chain and annotations.
func (l *Logger) Error(err error) {
	if err == nil {
		return
	}

	msg, attrs := describe(err)

	l.mu.RLock()
	defer l.mu.RUnlock()
	l.logger.Error(msg, attrs...)
}

// describe renders the cause chain as "Error: ... / Caused by: -> ..." and collects the
// metadata of every zerr error in the chain.
func describe(err error) (string, []any) {
	var messages []string
	meta := make(map[string]any)

	for current := err; current != nil; {
		if c, ok := current.(metadataCarrier); ok {
			for k, v := range c.Metadata() {
				if _, seen := meta[k]; !seen {
					meta[k] = v
				}
			}
		}
		m, ok := current.(messager)
		if !ok {
			messages = append(messages, current.Error())
			break
		}
		if text := m.Message(); text != "" {
			messages = append(messages, text)
		}
		current = errors.Unwrap(current)
	}

	lines := make([]string, 0, len(messages)+2)
	for i, m := range messages {
		switch i {
		case 0:
			lines = append(lines, "Error: "+m)
		case 1:
			lines = append(lines, "Caused by:", "  -> "+m)
		default:
			lines = append(lines, "  -> "+m)
		}
	}

	keys := make([]string, 0, len(meta))
	for k := range meta {
		keys = append(keys, k)
	}
	slices.Sort(keys)

	attrs := make([]any, 0, 2*len(keys))
	for _, k := range keys {
		attrs = append(attrs, k, meta[k])
	}
	return strings.Join(lines, "\n"), attrs
}
