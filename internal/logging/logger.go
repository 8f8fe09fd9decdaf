// Package logging is the structured logger used by the server, the admin
// tool and their services. Request-scoped fields (request id, caller
// account, RPC method) travel in the context and are added to every line
// logged with that context.
package logging

import (
	"context"
	"log/slog"
)

// Logger is a context-aware, structured logger.
//
// The variadic args are interpreted as key–value pairs, e.g.:
//
//	log.Info(ctx, "post created", "post_id", id, "credits_used", c)
type Logger interface {
	Info(ctx context.Context, msg string, args ...any)
	Warn(ctx context.Context, msg string, args ...any)
	Error(ctx context.Context, msg string, args ...any)

	// With returns a child logger that always includes the given key–value pairs.
	With(args ...any) Logger
}

type fieldsKey struct{}

// WithFields returns a context whose log lines carry the given key–value
// pairs in addition to any fields already attached to ctx.
func WithFields(ctx context.Context, args ...any) context.Context {
	if len(args) == 0 {
		return ctx
	}
	prev := Fields(ctx)
	attrs := make([]slog.Attr, 0, len(prev)+len(args)/2)
	attrs = append(attrs, prev...)
	attrs = append(attrs, slog.Group("", args...).Value.Group()...)
	return context.WithValue(ctx, fieldsKey{}, attrs)
}

// Fields reports the fields attached to ctx by WithFields.
func Fields(ctx context.Context) []slog.Attr {
	if ctx == nil {
		return nil
	}
	attrs, _ := ctx.Value(fieldsKey{}).([]slog.Attr)
	return attrs
}
