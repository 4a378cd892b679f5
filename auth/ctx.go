package auth

import (
	"context"
)

var sessionCtxKey = &contextKey{"session"}

type contextKey struct {
	name string
}

// WithSession sets the resolved session in the given context. The web layer
// calls this once per request; a nil session marks the request anonymous.
func WithSession(ctx context.Context, session *SessionObject) context.Context {
	return context.WithValue(ctx, sessionCtxKey, session)
}

// SessionFromContext finds the session from the context. Operations must
// treat a missing session exactly like an anonymous one.
func SessionFromContext(ctx context.Context) *SessionObject {
	session, ok := ctx.Value(sessionCtxKey).(*SessionObject)
	if !ok {
		return nil
	}
	return session
}
