package logger

import (
	"io"
	"time"

	"github.com/charmbracelet/log"
)

// Logger wraps charm/log for structured logging
type Logger struct {
	*log.Logger
}

// New creates a new logger with the given output
func New(w io.Writer) *Logger {
	l := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		TimeFormat:      time.DateTime,
	})
	return &Logger{Logger: l}
}

// NewWithLevel creates a logger with a specific level
func NewWithLevel(w io.Writer, level log.Level) *Logger {
	l := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		TimeFormat:      time.DateTime,
		Level:           level,
	})
	return &Logger{Logger: l}
}

// Parse builds a logger from a level name such as "debug" or "warn".
func Parse(w io.Writer, level string) (*Logger, error) {
	lvl, err := log.ParseLevel(level)
	if err != nil {
		return nil, err
	}
	return NewWithLevel(w, lvl), nil
}

// Discard returns a logger that discards all output
func Discard() *Logger {
	return New(io.Discard)
}

// TemplateLoaded logs a parsed template and the slots it left to the defaults
func (l *Logger) TemplateLoaded(location string, missing []string) {
	l.Debug("template loaded",
		"template", location,
		"missing", len(missing),
		"defaulted", missing)
}

// DocumentRendered logs a successful render
func (l *Logger) DocumentRendered(input, renderer string, size int, duration time.Duration) {
	l.Debug("document rendered",
		"input", input,
		"renderer", renderer,
		"bytes", size,
		"duration", duration.Round(time.Millisecond))
}

// RenderFailed logs an error for a specific input
func (l *Logger) RenderFailed(input string, err error) {
	l.Error("render failed",
		"input", input,
		"error", err)
}

// FileWritten logs an output file
func (l *Logger) FileWritten(path string, size int) {
	l.Info("file written",
		"path", path,
		"bytes", size)
}

// BatchCompleted logs the completion of a batch
func (l *Logger) BatchCompleted(documents, failures int, duration time.Duration) {
	l.Info("batch completed",
		"documents", documents,
		"errors", failures,
		"duration", duration.Round(time.Millisecond))
}
