package logging

import (
	"context"
	"log/slog"
)

type sessionKey struct{}

// WithSession tags ctx so records logged with it carry the terminal session ID.
func WithSession(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, sessionKey{}, id)
}

// SessionID returns the session ID stored by WithSession.
func SessionID(ctx context.Context) (string, bool) {
	id, ok := ctx.Value(sessionKey{}).(string)
	return id, ok
}

type sessionHandler struct {
	slog.Handler
}

func (h *sessionHandler) Handle(ctx context.Context, record slog.Record) error {
	if id, ok := SessionID(ctx); ok {
		record.Add("session", id)
	}
	return h.Handler.Handle(ctx, record)
}

func (h *sessionHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	return &sessionHandler{Handler: h.Handler.WithAttrs(attrs)}
}

func (h *sessionHandler) WithGroup(name string) slog.Handler {
	return &sessionHandler{Handler: h.Handler.WithGroup(name)}
}
