// File: logger.go
// Title: Core Logger Implementation
// Description: Implements the Logger type providing leveled, structured
//              logging with contextual fields, named loggers, request-ID
//              correlation, and a text output format suitable for terminals.
// Author: msto63 with Claude Sonnet 4.0
// Version: v0.1.0
// Created: 2026-08-31
// Modified: 2026-08-31
//
// Change History:
// - 2026-08-31 v0.1.0: Initial implementation

package log

import (
	"fmt"
	"io"
	"os"
	"sort"
	"strings"
	"sync"
	"time"
)

// Fields holds contextual key-value pairs attached to log entries
type Fields map[string]interface{}

// Logger represents a structured logger with contextual information
type Logger struct {
	level         Level
	output        io.Writer
	name          string
	contextFields Fields
	requestID     string

	mutex sync.RWMutex
}

// New creates a new logger with default configuration (info level, stderr)
func New() *Logger {
	return &Logger{
		level:         DefaultLevel(),
		output:        os.Stderr,
		contextFields: make(Fields),
	}
}

// WithLevel returns a copy of the logger with the given minimum level
func (l *Logger) WithLevel(level Level) *Logger {
	clone := l.clone()
	clone.level = level
	return clone
}

// WithOutput returns a copy of the logger writing to the given destination
func (l *Logger) WithOutput(output io.Writer) *Logger {
	clone := l.clone()
	clone.output = output
	return clone
}

// WithName returns a copy of the logger with the given name
func (l *Logger) WithName(name string) *Logger {
	clone := l.clone()
	clone.name = name
	return clone
}

// WithField returns a copy of the logger with a persistent field added
// to all log entries
func (l *Logger) WithField(key string, value interface{}) *Logger {
	clone := l.clone()
	clone.contextFields[key] = value
	return clone
}

// WithFields returns a copy of the logger with persistent fields added
func (l *Logger) WithFields(fields Fields) *Logger {
	clone := l.clone()
	for k, v := range fields {
		clone.contextFields[k] = v
	}
	return clone
}

// WithRequestID returns a copy of the logger carrying a request ID for
// correlating all entries of one invocation
func (l *Logger) WithRequestID(requestID string) *Logger {
	clone := l.clone()
	clone.requestID = requestID
	return clone
}

// Trace logs a message at trace level
func (l *Logger) Trace(message string, fields ...Fields) {
	l.log(LevelTrace, message, fields...)
}

// Debug logs a message at debug level
func (l *Logger) Debug(message string, fields ...Fields) {
	l.log(LevelDebug, message, fields...)
}

// Info logs a message at info level
func (l *Logger) Info(message string, fields ...Fields) {
	l.log(LevelInfo, message, fields...)
}

// Warn logs a message at warn level
func (l *Logger) Warn(message string, fields ...Fields) {
	l.log(LevelWarn, message, fields...)
}

// Error logs a message at error level
func (l *Logger) Error(message string, fields ...Fields) {
	l.log(LevelError, message, fields...)
}

// ErrorWithErr logs a message at error level with an attached error value
func (l *Logger) ErrorWithErr(message string, err error, fields ...Fields) {
	merged := Fields{}
	for _, f := range fields {
		for k, v := range f {
			merged[k] = v
		}
	}
	if err != nil {
		merged["error"] = err.Error()
	}
	l.log(LevelError, message, merged)
}

// GetLevel returns the current minimum log level
func (l *Logger) GetLevel() Level {
	l.mutex.RLock()
	defer l.mutex.RUnlock()
	return l.level
}

// SetLevel changes the minimum log level in place
func (l *Logger) SetLevel(level Level) {
	l.mutex.Lock()
	defer l.mutex.Unlock()
	l.level = level
}

// IsLevelEnabled reports whether a message at the given level would be logged
func (l *Logger) IsLevelEnabled(level Level) bool {
	return level.ShouldLog(l.GetLevel())
}

// log formats and writes a single entry if the level passes the filter
func (l *Logger) log(level Level, message string, fields ...Fields) {
	l.mutex.RLock()
	defer l.mutex.RUnlock()

	if !level.ShouldLog(l.level) {
		return
	}

	var b strings.Builder
	b.WriteString(time.Now().Format("2006-01-02T15:04:05.000Z07:00"))
	b.WriteByte(' ')
	b.WriteString(level.ShortString())
	if l.name != "" {
		b.WriteString(" [")
		b.WriteString(l.name)
		b.WriteByte(']')
	}
	b.WriteByte(' ')
	b.WriteString(message)

	merged := make(Fields, len(l.contextFields))
	for k, v := range l.contextFields {
		merged[k] = v
	}
	for _, f := range fields {
		for k, v := range f {
			merged[k] = v
		}
	}
	if l.requestID != "" {
		merged["request_id"] = l.requestID
	}

	// Deterministic field order keeps the output diffable in tests
	keys := make([]string, 0, len(merged))
	for k := range merged {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		fmt.Fprintf(&b, " %s=%v", k, merged[k])
	}
	b.WriteByte('\n')

	io.WriteString(l.output, b.String())
}

// clone creates a copy of the logger for the With* builder methods
func (l *Logger) clone() *Logger {
	l.mutex.RLock()
	defer l.mutex.RUnlock()

	fields := make(Fields, len(l.contextFields))
	for k, v := range l.contextFields {
		fields[k] = v
	}
	return &Logger{
		level:         l.level,
		output:        l.output,
		name:          l.name,
		contextFields: fields,
		requestID:     l.requestID,
	}
}

var (
	defaultLogger = New()
	defaultMutex  sync.RWMutex
)

// GetDefault returns the default logger instance
func GetDefault() *Logger {
	defaultMutex.RLock()
	defer defaultMutex.RUnlock()
	return defaultLogger
}

// SetDefault replaces the default logger instance
func SetDefault(logger *Logger) {
	defaultMutex.Lock()
	defer defaultMutex.Unlock()
	defaultLogger = logger
}

// Global convenience functions using the default logger

// Debug logs a message at debug level using the default logger
func Debug(message string, fields ...Fields) {
	GetDefault().Debug(message, fields...)
}

// Info logs a message at info level using the default logger
func Info(message string, fields ...Fields) {
	GetDefault().Info(message, fields...)
}

// Warn logs a message at warn level using the default logger
func Warn(message string, fields ...Fields) {
	GetDefault().Warn(message, fields...)
}

// Error logs a message at error level using the default logger
func Error(message string, fields ...Fields) {
	GetDefault().Error(message, fields...)
}
