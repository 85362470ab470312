package session

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/codes"

	"github.com/2beens/healthtracker/internal/telemetry/tracing"
	"github.com/2beens/healthtracker/pkg"
)

//go:generate mockgen -source=$GOFILE -destination=handler_mocks_test.go -package=session_test

// Header carries the session token on every session bound request.
const Header = "X-HEALTH-SESSION"

type sessionLifecycle interface {
	Start(ctx context.Context) (string, error)
	End(ctx context.Context, token string) error
}

type StartResponse struct {
	Token  string `json:"token"`
	Header string `json:"header"`
}

type Handler struct {
	sessions sessionLifecycle
}

func NewHandler(sessions sessionLifecycle) *Handler {
	return &Handler{
		sessions: sessions,
	}
}

func (handler *Handler) HandleStart(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.session.start")
	defer span.End()

	token, err := handler.sessions.Start(ctx)
	if err != nil {
		log.Errorf("start session: %s", err)
		http.Error(w, "failed to start session", http.StatusInternalServerError)
		span.SetStatus(codes.Error, "start-failed")
		span.RecordError(err)
		return
	}

	respJson, err := json.Marshal(StartResponse{
		Token:  token,
		Header: Header,
	})
	if err != nil {
		log.Errorf("marshal session start response: %s", err)
		http.Error(w, "failed to start session", http.StatusInternalServerError)
		return
	}

	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, respJson, http.StatusCreated)
}

func (handler *Handler) HandleEnd(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.session.end")
	defer span.End()

	token := r.Header.Get(Header)
	if token == "" {
		http.Error(w, "no session", http.StatusUnauthorized)
		span.SetStatus(codes.Error, "missing-session-token")
		return
	}

	err := handler.sessions.End(ctx, token)
	if errors.Is(err, ErrSessionNotFound) {
		http.Error(w, "unknown session", http.StatusNotFound)
		span.SetStatus(codes.Error, "session-not-found")
		return
	}
	if err != nil {
		log.Errorf("end session: %s", err)
		http.Error(w, "failed to end session", http.StatusInternalServerError)
		span.SetStatus(codes.Error, "end-failed")
		span.RecordError(err)
		return
	}

	pkg.WriteTextResponseOK(w, "ended")
}
