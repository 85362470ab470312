package health

import "context"

type sessionCtxKey struct{}

type sessionValue struct {
	id    string
	store *RecordStore
}

// WithSession attaches the caller's session id and its record store to ctx.
func WithSession(ctx context.Context, sessionID string, store *RecordStore) context.Context {
	return context.WithValue(ctx, sessionCtxKey{}, sessionValue{id: sessionID, store: store})
}

// SessionFromContext returns the session id and record store set by WithSession.
func SessionFromContext(ctx context.Context) (string, *RecordStore, bool) {
	v, ok := ctx.Value(sessionCtxKey{}).(sessionValue)
	if !ok || v.store == nil {
		return "", nil, false
	}
	return v.id, v.store, true
}
