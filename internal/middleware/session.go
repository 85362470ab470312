package middleware

import (
	"context"
	"errors"
	"net/http"

	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/codes"

	"github.com/2beens/healthtracker/internal/health"
	"github.com/2beens/healthtracker/internal/session"
	"github.com/2beens/healthtracker/internal/telemetry/tracing"
)

//go:generate mockgen -source=$GOFILE -destination=session_mocks_test.go -package=middleware_test

type storeResolver interface {
	Store(ctx context.Context, token string) (*health.RecordStore, error)
}

type SessionMiddlewareHandler struct {
	resolver     storeResolver
	allowedPaths map[string]bool
}

func NewSessionMiddlewareHandler(resolver storeResolver) *SessionMiddlewareHandler {
	return &SessionMiddlewareHandler{
		resolver: resolver,
		allowedPaths: map[string]bool{
			"/":        true,
			"/version": true,
			"/myip":    true,
			"/bmi":     true,
			// session start/end is handled by the session handler itself
			"/session": true,
		},
	}
}

// SessionCheck resolves the session record store and puts it into the request context.
func (h *SessionMiddlewareHandler) SessionCheck() func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx, span := tracing.GlobalTracer.Start(r.Context(), "middleware.session")
			defer span.End()

			if r.Method == http.MethodOptions {
				w.Header().Add("Allow", "GET, POST, DELETE, OPTIONS")
				w.WriteHeader(http.StatusOK)
				span.SetStatus(codes.Ok, "options-ok")
				return
			}

			if h.allowedPaths[r.URL.Path] {
				span.SetStatus(codes.Ok, "ok")
				next.ServeHTTP(w, r)
				return
			}

			token := r.Header.Get(session.Header)
			if token == "" {
				log.Tracef("[missing token] [session middleware] unauthorized => %s", r.URL.Path)
				http.Error(w, "no session", http.StatusUnauthorized)
				span.SetStatus(codes.Error, "missing-session-token")
				return
			}

			store, err := h.resolver.Store(ctx, token)
			switch {
			case errors.Is(err, session.ErrSessionExpired):
				http.Error(w, "session expired", http.StatusUnauthorized)
				span.SetStatus(codes.Error, "session-expired")
				return
			case errors.Is(err, session.ErrSessionNotFound):
				http.Error(w, "unknown session", http.StatusUnauthorized)
				span.SetStatus(codes.Error, "session-not-found")
				return
			case err != nil:
				log.Errorf("[failed session check] => %s: %s", r.URL.Path, err)
				http.Error(w, "session check failed", http.StatusInternalServerError)
				span.SetStatus(codes.Error, "session-check-err")
				span.RecordError(err)
				return
			}

			span.SetStatus(codes.Ok, "ok")
			next.ServeHTTP(w, r.WithContext(health.WithSession(ctx, token, store)))
		})
	}
}
