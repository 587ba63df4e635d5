// Package logger provides the leveled logging interface shared by the
// jbookdl mirror engine and CLI.
package logger

import (
	"fmt"
	"io"
	"log"
)

// Logger is the logging interface accepted by components that report
// progress or degradation without owning the output stream.
type Logger interface {
	// Info logs an informational message (e.g. "run recorded").
	Info(format string, args ...interface{})

	// Warning logs a recoverable problem (e.g. "journal disabled").
	Warning(format string, args ...interface{})

	// Error logs a failure (e.g. "cannot open journal").
	Error(format string, args ...interface{})
}

// StandardLogger writes prefixed lines to an io.Writer through the
// stdlib log package. Used when running as a console application.
type StandardLogger struct {
	logger *log.Logger
}

// NewStandardLogger creates a logger writing to w with no date prefix;
// mirror output is meant to be read as a report, not a log stream.
func NewStandardLogger(w io.Writer) *StandardLogger {
	return &StandardLogger{logger: log.New(w, "", 0)}
}

// Info logs an informational message with [INFO] prefix.
func (s *StandardLogger) Info(format string, args ...interface{}) {
	s.logger.Printf("[INFO] "+format, args...)
}

// Warning logs a warning message with [WARNING] prefix.
func (s *StandardLogger) Warning(format string, args ...interface{}) {
	s.logger.Printf("[WARNING] "+format, args...)
}

// Error logs an error message with [ERROR] prefix.
func (s *StandardLogger) Error(format string, args ...interface{}) {
	s.logger.Printf("[ERROR] "+format, args...)
}

// NopLogger discards all messages. Useful in tests or with -quiet.
type NopLogger struct{}

// NewNopLogger creates a logger that discards all messages.
func NewNopLogger() *NopLogger {
	return &NopLogger{}
}

// Info discards the message.
func (n *NopLogger) Info(format string, args ...interface{}) {}

// Warning discards the message.
func (n *NopLogger) Warning(format string, args ...interface{}) {}

// Error discards the message.
func (n *NopLogger) Error(format string, args ...interface{}) {}

// Recorder implements Logger for tests, keeping every formatted message
// for later inspection.
type Recorder struct {
	InfoLines    []string
	WarningLines []string
	ErrorLines   []string
}

// NewRecorder creates an empty Recorder.
func NewRecorder() *Recorder {
	return &Recorder{}
}

// Info records the formatted message.
func (r *Recorder) Info(format string, args ...interface{}) {
	r.InfoLines = append(r.InfoLines, fmt.Sprintf(format, args...))
}

// Warning records the formatted message.
func (r *Recorder) Warning(format string, args ...interface{}) {
	r.WarningLines = append(r.WarningLines, fmt.Sprintf(format, args...))
}

// Error records the formatted message.
func (r *Recorder) Error(format string, args ...interface{}) {
	r.ErrorLines = append(r.ErrorLines, fmt.Sprintf(format, args...))
}

var (
	_ Logger = (*StandardLogger)(nil)
	_ Logger = (*NopLogger)(nil)
	_ Logger = (*Recorder)(nil)
)
