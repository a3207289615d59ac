// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package logger wraps zerolog for the intake portal.
//
// One process logger is built at startup. HTTP and gRPC middleware derive a
// child carrying the request trace id and store it in the request context;
// everything below the transport layer reads it back with FromContext, so
// a service never needs a logger of its own to produce correlated output.
package logger

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"runtime"
	"strings"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Logger embeds zerolog.Logger, so *Logger offers the full zerolog API.
type Logger struct {
	zerolog.Logger
}

// NewLogger returns a JSON logger writing to stdout. Every entry carries the
// process role, a timestamp and the calling function under "func".
func NewLogger(role string) *Logger {
	return newLogger(os.Stdout, role)
}

func newLogger(w io.Writer, role string) *Logger {
	zerolog.CallerFieldName = "func"
	zerolog.CallerMarshalFunc = callerFuncName

	return &Logger{zerolog.New(w).With().
		Str("role", role).
		Timestamp().
		Caller().
		Logger()}
}

func callerFuncName(pc uintptr, _ string, _ int) string {
	if fn := runtime.FuncForPC(pc); fn != nil {
		return fn.Name()
	}
	return "unknown"
}

// SetLevel sets the minimum level for every logger in the process. Names
// follow zerolog ("debug", "info", "warn", "error"); an empty name means
// debug.
func SetLevel(name string) error {
	name = strings.ToLower(strings.TrimSpace(name))
	if name == "" {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
		return nil
	}

	level, err := zerolog.ParseLevel(name)
	if err != nil || level == zerolog.NoLevel {
		return fmt.Errorf("invalid log level %q", name)
	}
	zerolog.SetGlobalLevel(level)
	return nil
}

// Nop returns a logger that discards everything. Used in tests.
func Nop() *Logger {
	return &Logger{zerolog.Nop()}
}

// FromContext returns the logger stored in ctx by zerolog's WithContext.
// Without one it returns zerolog's default logger, never nil.
func FromContext(ctx context.Context) *Logger {
	return &Logger{*log.Ctx(ctx)}
}

// FromRequest is FromContext for the request context.
func FromRequest(r *http.Request) *Logger {
	return FromContext(r.Context())
}

// WithTraceID returns a child that stamps every entry with trace_id.
func (l *Logger) WithTraceID(traceID string) *Logger {
	return &Logger{l.With().Str("trace_id", traceID).Logger()}
}
