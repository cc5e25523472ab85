// Package logging defines the structured-logging interface used across the
// storefront client. The default implementation wraps log/slog.
package logging

import "context"

// Logger is a context-aware, structured logger.
//
// The variadic args are interpreted as key-value pairs, e.g.:
//
//	log.Info(ctx, "catalog reloaded", "generation", gen, "categories", n)
type Logger interface {
	// Debug logs diagnostic detail that is off by default.
	Debug(ctx context.Context, msg string, args ...any)

	// Info logs an informational message.
	Info(ctx context.Context, msg string, args ...any)

	// Warn logs a degraded but recovered condition, e.g. a swallowed
	// storage failure.
	Warn(ctx context.Context, msg string, args ...any)

	// Error logs a failure surfaced to the user.
	Error(ctx context.Context, msg string, args ...any)

	// With returns a child logger that always includes the given key-value pairs.
	With(args ...any) Logger
}
