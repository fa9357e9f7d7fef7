package logging

import (
	"fmt"
	"io"
	"log"
	"os"
)

// Level describes severity of log message.
type Level int

const (
	// LevelInfo is default log level.
	LevelInfo Level = iota
	// LevelDebug enables verbose output.
	LevelDebug
)

// ParseLevel converts string to Level.
func ParseLevel(v string) Level {
	switch v {
	case "debug":
		return LevelDebug
	default:
		return LevelInfo
	}
}

// Logger is a thin wrapper around log.Logger with levels. A nil Logger
// discards everything, so callers never need to guard their log lines.
type Logger struct {
	logger *log.Logger
	level  Level
}

// New creates a logger writing to stdout, or to path when set.
func New(path string, level Level) (*Logger, error) {
	var output io.Writer = os.Stdout
	if path != "" {
		f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
		if err != nil {
			return nil, err
		}
		output = f
	}
	return &Logger{logger: log.New(output, "mcsync ", log.LstdFlags), level: level}, nil
}

func (l *Logger) logf(lvl Level, tag, format string, args ...interface{}) {
	if l == nil || lvl > l.level {
		return
	}
	l.logger.Printf("[%s] %s", tag, fmt.Sprintf(format, args...))
}

// Infof logs informational messages.
func (l *Logger) Infof(format string, args ...interface{}) {
	l.logf(LevelInfo, "INFO", format, args...)
}

// Debugf logs verbose diagnostic messages.
func (l *Logger) Debugf(format string, args ...interface{}) {
	l.logf(LevelDebug, "DEBUG", format, args...)
}

// Warnf logs recoverable conditions, like a failed HTTP status the
// caller still gets a body for.
func (l *Logger) Warnf(format string, args ...interface{}) {
	l.logf(LevelInfo, "WARN", format, args...)
}

// Errorf logs errors.
func (l *Logger) Errorf(format string, args ...interface{}) {
	l.logf(LevelInfo, "ERROR", format, args...)
}
