package health

import (
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"net/http"
	"strconv"
	"strings"

	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"

	"github.com/2beens/healthtracker/internal/cache"
	"github.com/2beens/healthtracker/internal/telemetry/metrics"
	"github.com/2beens/healthtracker/internal/telemetry/tracing"
	"github.com/2beens/healthtracker/pkg"
)

const noDataWarning = "No data available. Please enter data in the Data Input section."

type responseCache interface {
	Get(key string) ([]byte, bool)
	Set(key string, value []byte) error
}

type AddRecordResponse struct {
	Record HealthRecord `json:"record"`
	Total  int          `json:"total"`
}

type ListRecordsResponse struct {
	Records []HealthRecord `json:"records"`
	Total   int            `json:"total"`
}

type StatsResponse struct {
	Stats     Stats          `json:"stats"`
	Formatted FormattedStats `json:"formatted"`
}

type BMIResponse struct {
	BMIResult
	Message string `json:"message"`
	Gauge   Gauge  `json:"gauge"`
}

type ValidationErrorResponse struct {
	Error  string             `json:"error"`
	Fields []*ValidationError `json:"fields"`
}

type WarningResponse struct {
	Warning string `json:"warning"`
}

type Handler struct {
	metrics *metrics.Manager
	cache   responseCache
}

func NewHandler(metricsManager *metrics.Manager, cache responseCache) *Handler {
	return &Handler{
		metrics: metricsManager,
		cache:   cache,
	}
}

func (handler *Handler) HandleAddRecord(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.health.records.add")
	defer span.End()

	sessionID, store, ok := SessionFromContext(ctx)
	if !ok {
		http.Error(w, "no session", http.StatusUnauthorized)
		span.SetStatus(codes.Error, "no-session")
		return
	}

	if !strings.HasPrefix(r.Header.Get("Content-Type"), pkg.ContentType.JSON) {
		http.Error(w, "invalid content type", http.StatusBadRequest)
		return
	}

	var raw RawRecord
	if err := json.NewDecoder(r.Body).Decode(&raw); err != nil {
		log.Tracef("new record, unmarshal json params: %s", err)
		http.Error(w, "add record failed, invalid json", http.StatusBadRequest)
		span.SetStatus(codes.Error, "invalid-json")
		return
	}

	record, err := ParseAndAppend(store, raw)
	if err != nil {
		fieldErrs := ValidationErrors(err)
		for _, fe := range fieldErrs {
			handler.metrics.CounterValidationFailures.WithLabelValues(fe.Field).Inc()
		}
		log.Debugf("session [%s] rejected record: %s", sessionID, err)
		span.SetStatus(codes.Error, "validation-failed")
		handler.writeJSON(w, ValidationErrorResponse{
			Error:  "invalid record",
			Fields: fieldErrs,
		}, http.StatusBadRequest)
		return
	}

	handler.metrics.CounterRecordsAdded.Inc()
	total := store.Len()
	span.SetAttributes(attribute.Int("records.total", total))
	log.Debugf("session [%s] record added for %s, total: %d", sessionID, record.Date.Format(DateLayout), total)

	handler.writeJSON(w, AddRecordResponse{
		Record: record,
		Total:  total,
	}, http.StatusCreated)
}

func (handler *Handler) HandleListRecords(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.health.records.list")
	defer span.End()

	_, store, ok := SessionFromContext(ctx)
	if !ok {
		http.Error(w, "no session", http.StatusUnauthorized)
		return
	}

	records := store.All()
	handler.writeJSON(w, ListRecordsResponse{
		Records: records,
		Total:   len(records),
	}, http.StatusOK)
}

func (handler *Handler) HandleStats(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.health.stats")
	defer span.End()

	_, store, ok := SessionFromContext(ctx)
	if !ok {
		http.Error(w, "no session", http.StatusUnauthorized)
		return
	}

	stats, err := ComputeStatistics(store.All())
	if errors.Is(err, ErrEmptyInput) {
		handler.writeJSON(w, WarningResponse{Warning: noDataWarning}, http.StatusNotFound)
		return
	}
	if err != nil {
		log.Errorf("compute statistics: %s", err)
		http.Error(w, "failed to compute statistics", http.StatusInternalServerError)
		return
	}

	handler.writeJSON(w, StatsResponse{
		Stats:     stats,
		Formatted: stats.Formatted(),
	}, http.StatusOK)
}

func (handler *Handler) HandleDashboard(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.health.dashboard")
	defer span.End()

	sessionID, store, ok := SessionFromContext(ctx)
	if !ok {
		http.Error(w, "no session", http.StatusUnauthorized)
		return
	}

	records := store.All()
	// the store is append-only, so session + record count identifies the dashboard content
	cacheKey := fmt.Sprintf("dashboard::%s::%d", sessionID, len(records))
	if handler.cache != nil {
		if cached, found := handler.cache.Get(cacheKey); found {
			span.SetAttributes(attribute.Bool("cache.hit", true))
			pkg.WriteResponseBytesOK(w, pkg.ContentType.JSON, cached)
			return
		}
	}

	dashboard, err := BuildDashboard(records)
	if errors.Is(err, ErrEmptyInput) {
		handler.writeJSON(w, WarningResponse{Warning: noDataWarning}, http.StatusNotFound)
		return
	}
	if err != nil {
		log.Errorf("build dashboard: %s", err)
		http.Error(w, "failed to build dashboard", http.StatusInternalServerError)
		return
	}

	dashboardJson, err := json.Marshal(dashboard)
	if err != nil {
		log.Errorf("failed to marshal dashboard: %s", err)
		http.Error(w, "failed to build dashboard", http.StatusInternalServerError)
		return
	}

	if handler.cache != nil {
		err := handler.cache.Set(cacheKey, dashboardJson)
		switch {
		case errors.Is(err, cache.ErrEntryTooLarge):
			log.Debugf("dashboard [%s] too large to cache: %d bytes", cacheKey, len(dashboardJson))
		case err != nil:
			log.Warnf("cache dashboard [%s]: %s", cacheKey, err)
		}
	}

	pkg.WriteResponseBytesOK(w, pkg.ContentType.JSON, dashboardJson)
}

func (handler *Handler) HandleBMI(w http.ResponseWriter, r *http.Request) {
	_, span := tracing.GlobalTracer.Start(r.Context(), "handler.health.bmi")
	defer span.End()

	weight, err := queryFloat(r, "weight", CalculatorMinWeight, CalculatorMaxWeight)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	height, err := queryFloat(r, "height", CalculatorMinHeight, CalculatorMaxHeight)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	result, err := ComputeBMI(weight, height)
	if err != nil {
		http.Error(w, "Please enter a valid height.", http.StatusBadRequest)
		span.SetStatus(codes.Error, err.Error())
		return
	}

	handler.metrics.CounterBMICalculations.WithLabelValues(string(result.Category)).Inc()
	span.SetAttributes(
		attribute.Float64("bmi.value", result.Value),
		attribute.String("bmi.category", string(result.Category)),
	)

	handler.writeJSON(w, BMIResponse{
		BMIResult: result,
		Message:   result.Message(),
		Gauge:     GaugeFor(result),
	}, http.StatusOK)
}

func queryFloat(r *http.Request, name string, lo, hi float64) (float64, error) {
	valueStr := strings.TrimSpace(r.URL.Query().Get(name))
	if valueStr == "" {
		return 0, fmt.Errorf("error, %s empty", name)
	}
	value, err := strconv.ParseFloat(valueStr, 64)
	if err != nil || math.IsNaN(value) {
		return 0, fmt.Errorf("error, %s NaN", name)
	}
	if value < lo || value > hi {
		return 0, fmt.Errorf("error, %s must be within [%g, %g]", name, lo, hi)
	}
	return value, nil
}

func (handler *Handler) writeJSON(w http.ResponseWriter, v any, statusCode int) {
	respJson, err := json.Marshal(v)
	if err != nil {
		log.Errorf("failed to marshal response: %s", err)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, respJson, statusCode)
}
