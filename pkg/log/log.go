// Package log provides the levelled logger shared by the machine and its
// components.
package log

import (
	"fmt"
	"io"
	"os"
	"sync"
)

// Level controls which messages a Logger emits.
type Level uint8

const (
	// LevelError only emits errors.
	LevelError Level = iota
	// LevelInfo emits errors and informational messages.
	LevelInfo
	// LevelDebug emits everything, including per-step traces.
	LevelDebug
)

type Logger interface {
	Infof(format string, args ...interface{})
	Errorf(format string, args ...interface{})
	Debugf(format string, args ...interface{})
}

type logger struct {
	w     io.Writer
	level Level
	mu    sync.Mutex
}

// New returns a Logger writing to w, dropping any message more
// verbose than level.
func New(w io.Writer, level Level) Logger {
	return &logger{w: w, level: level}
}

// NewStderr returns a Logger writing to standard error.
func NewStderr(level Level) Logger {
	return NewLogrus(os.Stderr, level)
}

func (l *logger) Infof(format string, args ...interface{}) {
	l.printf(LevelInfo, "[INFO]\t", format, args...)
}

func (l *logger) Errorf(format string, args ...interface{}) {
	l.printf(LevelError, "[ERROR]\t", format, args...)
}

func (l *logger) Debugf(format string, args ...interface{}) {
	l.printf(LevelDebug, "[DEBUG]\t", format, args...)
}

func (l *logger) printf(level Level, prefix, format string, args ...interface{}) {
	if level > l.level {
		return
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	fmt.Fprintf(l.w, prefix+format+"\n", args...)
}
