// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package logger provides a thin wrapper around zerolog.Logger that adds
// convenience constructors used throughout dragonchain-go.
//
// The Logger type embeds zerolog.Logger so all standard zerolog methods
// (Debug, Info, Warn, Error, etc.) are available directly on *Logger.
// SDK components hold their own *Logger; none of them writes through a
// process-wide logger. Components constructed without one fall back to Nop.
package logger

import (
	"io"
	"os"
	"runtime"

	"github.com/rs/zerolog"
)

// CallerFieldName holds the fully-qualified name of the logging function.
const CallerFieldName = "func"

// callerSkip is the number of frames between callerHook.Run and the code
// that called Msg, Msgf or Send: Run, Event.msg, Event.Msg.
const callerSkip = 3

// Logger is a thin wrapper around zerolog.Logger.
// Embedding zerolog.Logger exposes the full zerolog API while allowing the
// application to add helper methods without modifying the upstream type.
type Logger struct {
	zerolog.Logger
}

// NewLogger constructs a *Logger for the given role label (e.g. "dcctl").
//
// The logger is configured with:
//   - a "role" field set to role;
//   - a timestamp field added to every log entry;
//   - a "func" caller field that records the fully-qualified function name.
//
// Output is JSON written to os.Stderr at Info level, so that command output on
// stdout stays machine readable. Use SetLevel to adjust.
func NewLogger(role string) *Logger {
	return newLogger(role, os.Stderr, zerolog.InfoLevel)
}

func newLogger(role string, w io.Writer, level zerolog.Level) *Logger {
	logger := zerolog.New(w).Level(level).With().
		Str("role", role).
		Timestamp().
		Logger().
		Hook(callerHook{})

	return &Logger{logger}
}

// callerHook adds [CallerFieldName] to every entry without touching the
// package-level zerolog caller settings.
type callerHook struct{}

func (callerHook) Run(e *zerolog.Event, _ zerolog.Level, _ string) {
	pc, _, _, ok := runtime.Caller(callerSkip)
	if !ok {
		return
	}
	if fn := runtime.FuncForPC(pc); fn != nil {
		e.Str(CallerFieldName, fn.Name())
	}
}

// Nop returns a *Logger that discards all log output.
// It is the default for every SDK component constructed without a logger.
func Nop() *Logger {
	return &Logger{zerolog.Nop()}
}

// OrNop returns l, or a Nop logger when l is nil.
func OrNop(l *Logger) *Logger {
	if l == nil {
		return Nop()
	}
	return l
}

// SetLevel changes the minimum level of the receiver in place.
func (l *Logger) SetLevel(level zerolog.Level) {
	l.Logger = l.Level(level)
}

// Component returns a child *Logger that tags every entry with a
// "component" field. The parent logger is not affected.
func (l *Logger) Component(name string) *Logger {
	return &Logger{l.With().Str("component", name).Logger()}
}
