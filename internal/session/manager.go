package session

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	log "github.com/sirupsen/logrus"

	"github.com/2beens/healthtracker/internal/health"
	"github.com/2beens/healthtracker/internal/telemetry/metrics"
	"github.com/2beens/healthtracker/internal/telemetry/tracing"
	"github.com/2beens/healthtracker/pkg"
)

//go:generate mockgen -source=$GOFILE -destination=manager_mocks_test.go -package=session_test

const tokenBytes = 32

var (
	ErrSessionNotFound = errors.New("session not found")
	ErrSessionExpired  = errors.New("session expired")
)

type registry interface {
	Register(ctx context.Context, token string, createdAt time.Time) error
	IsActive(ctx context.Context, token string) (bool, error)
	Remove(ctx context.Context, token string) error
	ScanAndClean(ctx context.Context) ([]string, error)
}

// Manager owns one record store per session. Stores are never shared
// between sessions and live only in memory.
type Manager struct {
	mutex    sync.RWMutex
	stores   map[string]*health.RecordStore
	registry registry
	metrics  *metrics.Manager

	// ability to inject random string generator func for tokens (for unit and dev testing)
	RandStringFunc func(s int) (string, error)
	nowFunc        func() time.Time
}

func NewManager(registry registry, metricsManager *metrics.Manager) *Manager {
	return &Manager{
		stores:         make(map[string]*health.RecordStore),
		registry:       registry,
		metrics:        metricsManager,
		RandStringFunc: pkg.GenerateRandomString,
		nowFunc:        time.Now,
	}
}

// Start opens a new session with an empty record store and returns its token.
func (m *Manager) Start(ctx context.Context) (_ string, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "session.manager.start")
	defer func() { tracing.EndSpanWithErrCheck(span, err) }()

	token, err := m.RandStringFunc(tokenBytes)
	if err != nil {
		return "", fmt.Errorf("generate session token: %w", err)
	}

	if err := m.registry.Register(ctx, token, m.nowFunc()); err != nil {
		return "", fmt.Errorf("register session: %w", err)
	}

	m.mutex.Lock()
	m.stores[token] = health.NewRecordStore()
	active := len(m.stores)
	m.mutex.Unlock()

	m.metrics.CounterSessionsStarted.Inc()
	m.metrics.GaugeActiveSessions.Set(float64(active))

	return token, nil
}

// Store returns the record store owned by the session.
func (m *Manager) Store(ctx context.Context, token string) (*health.RecordStore, error) {
	m.mutex.RLock()
	store, ok := m.stores[token]
	m.mutex.RUnlock()
	if !ok {
		return nil, ErrSessionNotFound
	}

	active, err := m.registry.IsActive(ctx, token)
	if err != nil {
		return nil, fmt.Errorf("check session: %w", err)
	}
	if !active {
		m.discard(token)
		m.metrics.CounterSessionsExpired.Inc()
		if err := m.registry.Remove(ctx, token); err != nil {
			log.Errorf("remove expired session: %s", err)
		}
		return nil, ErrSessionExpired
	}

	return store, nil
}

// End discards the session and all of its records.
func (m *Manager) End(ctx context.Context, token string) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "session.manager.end")
	defer func() { tracing.EndSpanWithErrCheck(span, err) }()

	m.mutex.RLock()
	_, ok := m.stores[token]
	m.mutex.RUnlock()
	if !ok {
		return ErrSessionNotFound
	}

	m.discard(token)
	if err := m.registry.Remove(ctx, token); err != nil {
		return fmt.Errorf("remove session: %w", err)
	}

	return nil
}

// ScanAndClean drops expired sessions and returns how many stores were discarded.
func (m *Manager) ScanAndClean(ctx context.Context) int {
	removedTokens, err := m.registry.ScanAndClean(ctx)
	if err != nil {
		log.Errorf("!!! session manager, scan and clean: %s", err)
		return 0
	}

	discarded := 0
	for _, token := range removedTokens {
		if m.discard(token) {
			discarded++
		}
	}

	// stores whose tokens vanished from the registry are dead as well
	for _, token := range m.tokens() {
		active, err := m.registry.IsActive(ctx, token)
		if err != nil {
			log.Errorf("session manager, check token %s: %s", token, err)
			continue
		}
		if !active && m.discard(token) {
			discarded++
		}
	}

	if discarded > 0 {
		m.metrics.CounterSessionsExpired.Add(float64(discarded))
		log.Debugf("=> session manager, discarded %d expired sessions", discarded)
	}

	return discarded
}

func (m *Manager) ActiveCount() int {
	m.mutex.RLock()
	defer m.mutex.RUnlock()
	return len(m.stores)
}

func (m *Manager) tokens() []string {
	m.mutex.RLock()
	defer m.mutex.RUnlock()
	tokens := make([]string, 0, len(m.stores))
	for token := range m.stores {
		tokens = append(tokens, token)
	}
	return tokens
}

func (m *Manager) discard(token string) bool {
	m.mutex.Lock()
	_, ok := m.stores[token]
	delete(m.stores, token)
	active := len(m.stores)
	m.mutex.Unlock()

	m.metrics.GaugeActiveSessions.Set(float64(active))
	return ok
}
