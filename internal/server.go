package internal

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"strconv"
	"time"

	"github.com/getsentry/sentry-go"
	"github.com/go-redis/redis/v8"
	"github.com/go-redis/redis_rate/v9"
	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gorilla/mux/otelmux"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"

	"github.com/2beens/healthtracker/internal/cache"
	"github.com/2beens/healthtracker/internal/config"
	"github.com/2beens/healthtracker/internal/health"
	"github.com/2beens/healthtracker/internal/middleware"
	"github.com/2beens/healthtracker/internal/misc"
	"github.com/2beens/healthtracker/internal/session"
	"github.com/2beens/healthtracker/internal/telemetry/metrics"
	"github.com/2beens/healthtracker/internal/telemetry/tracing"
)

const ServiceName = "health-tracker"

type Server struct {
	httpServer        *http.Server
	metricsHttpServer *http.Server
	versionInfo       string

	config         *config.Config
	redisClient    *redis.Client
	rateLimiter    middleware.RequestRateLimiter
	sessionManager *session.Manager
	responseCache  *cache.ResponseCache

	// metrics
	metricsManager *metrics.Manager
	promRegistry   *prometheus.Registry
	otelShutdown   func()
}

type NewServerParams struct {
	Config                  *config.Config
	VersionInfo             string
	RedisPassword           string
	HoneycombTracingEnabled bool
}

func NewServer(
	ctx context.Context,
	params NewServerParams,
) (*Server, error) {
	promRegistry := metrics.SetupPrometheus()
	metricsManager := metrics.NewManager("health", "main", promRegistry)
	metricsManager.GaugeLifeSignal.Set(0) // will be set to 1 when all is set and running

	rdb := redis.NewClient(&redis.Options{
		Addr:     net.JoinHostPort(params.Config.RedisHost, params.Config.RedisPort),
		Password: params.RedisPassword,
		DB:       0, // use default DB
	})

	rdbStatus := rdb.Ping(ctx)
	if err := rdbStatus.Err(); err != nil {
		log.Errorf("--> failed to ping redis: %s", err)
	} else {
		log.Debugf("redis ping: %s", rdbStatus.Val())
	}

	// use honeycomb distro to setup OpenTelemetry SDK
	otelShutdown, err := tracing.HoneycombSetup(params.HoneycombTracingEnabled, ServiceName, rdb)
	if err != nil {
		return nil, fmt.Errorf("honeycomb setup: %w", err)
	}

	responseCache, err := cache.NewResponseCache(
		params.Config.ResponseCacheSizeMB,
		params.Config.ResponseCacheExpire(),
	)
	if err != nil {
		return nil, fmt.Errorf("new response cache: %w", err)
	}

	sessionManager := session.NewManager(
		session.NewRedisRegistry(params.Config.SessionTTL(), rdb),
		metricsManager,
	)
	go runSessionCleanup(ctx, sessionManager, params.Config.SessionCleanupInterval())

	return &Server{
		config:      params.Config,
		versionInfo: params.VersionInfo,

		redisClient:    rdb,
		rateLimiter:    redis_rate.NewLimiter(rdb),
		sessionManager: sessionManager,
		responseCache:  responseCache,

		// telemetry
		metricsManager: metricsManager,
		promRegistry:   promRegistry,
		otelShutdown:   otelShutdown,
	}, nil
}

func runSessionCleanup(ctx context.Context, sessionManager *session.Manager, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			log.Debugln("session cleanup stopped")
			return
		case <-ticker.C:
			discarded := sessionManager.ScanAndClean(ctx)
			log.Debugf("session cleanup done, discarded: %d, active: %d", discarded, sessionManager.ActiveCount())
		}
	}
}

func (s *Server) routerSetup() (*mux.Router, error) {
	r := mux.NewRouter()
	r.Use(otelmux.Middleware("health-tracker-router"))

	miscHandler := misc.NewHandler(ServiceName, s.versionInfo)
	miscHandler.SetupRoutes(r)

	sessionHandler := session.NewHandler(s.sessionManager)
	r.HandleFunc("/session", sessionHandler.HandleStart).Methods("POST", "OPTIONS").Name("session-start")
	r.HandleFunc("/session", sessionHandler.HandleEnd).Methods("DELETE").Name("session-end")

	healthHandler := health.NewHandler(s.metricsManager, s.responseCache)
	addRecordRateLimit := middleware.RateLimit(s.rateLimiter, "records", s.config.RecordsRateLimitPerMin, s.metricsManager)
	bmiRateLimit := middleware.RateLimit(s.rateLimiter, "bmi", s.config.BMIRateLimitPerMin, s.metricsManager)

	r.Handle("/records", addRecordRateLimit(http.HandlerFunc(healthHandler.HandleAddRecord))).Methods("POST", "OPTIONS").Name("add-record")
	r.HandleFunc("/records", healthHandler.HandleListRecords).Methods("GET").Name("list-records")
	r.HandleFunc("/stats", healthHandler.HandleStats).Methods("GET", "OPTIONS").Name("stats")
	r.HandleFunc("/dashboard", healthHandler.HandleDashboard).Methods("GET", "OPTIONS").Name("dashboard")
	r.Handle("/bmi", bmiRateLimit(http.HandlerFunc(healthHandler.HandleBMI))).Methods("GET", "OPTIONS").Name("bmi")

	// all the rest - unhandled paths
	r.HandleFunc("/{unknown}", func(w http.ResponseWriter, r *http.Request) {
		http.NotFound(w, r)
	}).Methods("GET", "POST", "PUT", "DELETE", "OPTIONS").Name("unknown")

	sessionMiddleware := middleware.NewSessionMiddlewareHandler(s.sessionManager)

	r.Use(middleware.PanicRecovery(s.metricsManager))
	r.Use(middleware.LogRequest())
	r.Use(middleware.RequestMetrics(s.metricsManager))
	r.Use(middleware.Cors(s.config.AllowedOrigins))
	r.Use(sessionMiddleware.SessionCheck())
	r.Use(middleware.DrainAndCloseRequest())

	return r, nil
}

func (s *Server) Serve(_ context.Context, host string, port int) {
	router, err := s.routerSetup()
	if err != nil {
		log.Fatalf("failed to setup router: %s", err)
	}

	ipAndPort := net.JoinHostPort(host, strconv.Itoa(port))
	s.httpServer = &http.Server{
		Handler:      router,
		Addr:         ipAndPort,
		WriteTimeout: time.Minute,
		ReadTimeout:  time.Minute,
		ConnState:    s.connStateMetrics,
	}

	metricsRouter := mux.NewRouter()
	metricsRouter.Handle("/metrics", otelhttp.NewHandler(
		promhttp.HandlerFor(s.promRegistry, promhttp.HandlerOpts{Registry: s.promRegistry}),
		"metrics",
	))
	metricsAddr := net.JoinHostPort(s.config.PrometheusMetricsHost, s.config.PrometheusMetricsPort)
	s.metricsHttpServer = &http.Server{
		Addr:              metricsAddr,
		Handler:           metricsRouter,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		log.Infof(" > server listening on: [%s]", ipAndPort)
		err := s.httpServer.ListenAndServe()
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("main service, listen and serve: %s", err)
		}
	}()

	go func() {
		log.Debugf(" > metrics listening on: [%s]", metricsAddr)
		err := s.metricsHttpServer.ListenAndServe()
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("metrics service, listen and serve: %s", err)
		}
	}()

	s.metricsManager.GaugeLifeSignal.Set(1)
}

func (s *Server) GracefulShutdown() {
	log.Debug("graceful shutdown initiated ...")

	s.metricsManager.GaugeLifeSignal.Set(0)

	maxWaitDuration := time.Second * 15
	ctx, timeoutCancel := context.WithTimeout(context.Background(), maxWaitDuration)
	defer timeoutCancel()

	// stop taking requests first, records live in memory only and die with the process
	if s.httpServer != nil {
		if err := s.httpServer.Shutdown(ctx); err != nil {
			log.Error(" >>> failed to gracefully shutdown http server")
		}
		log.Warnln("server shut down")
	}

	if s.metricsHttpServer != nil {
		if err := s.metricsHttpServer.Shutdown(ctx); err != nil {
			log.Error(" >>> failed to gracefully shutdown metrics http server")
		}
		log.Warnln("metrics server shut down")
	}

	log.Debugf("dropping %d active sessions", s.sessionManager.ActiveCount())

	if s.otelShutdown != nil {
		s.otelShutdown()
		log.Trace("otel shut down ...")
	}

	if s.redisClient != nil {
		if err := s.redisClient.Close(); err != nil {
			log.Errorf("failed to close redis client conn: %s", err)
		}
	}

	if ok := sentry.Flush(5 * time.Second); ok {
		log.Debugf("sentry flush ok: %t", ok)
	}
}

func (s *Server) connStateMetrics(_ net.Conn, state http.ConnState) {
	switch state {
	case http.StateNew:
		s.metricsManager.GaugeRequests.Add(1)
	case http.StateClosed:
		s.metricsManager.GaugeRequests.Add(-1)
	default:
		// do nothing
	}
}
