//go:build integration

package test

import (
	"context"
	"net/http"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/2beens/healthtracker/internal/health"
)

func (s *IntegrationTestSuite) TestRecordsStatsAndDashboard() {
	t := s.T()
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	token := startSession(ctx, t)

	status := doRequest(ctx, t, "GET", "/stats", token, nil, nil)
	assert.Equal(t, http.StatusNotFound, status)

	for _, rec := range []map[string]any{
		{"date": "2024-01-01", "weight": 70, "steps": 1000, "calories": 2000, "water": 1.5},
		{"date": "2024-01-02", "weight": 80, "steps": 2000, "calories": 2200, "water": 2.5},
		{"date": "2024-01-03", "weight": 75, "steps": 3000, "calories": 1800, "water": 2},
	} {
		var added health.AddRecordResponse
		status := doRequest(ctx, t, "POST", "/records", token, rec, &added)
		require.Equal(t, http.StatusCreated, status)
	}

	status = doRequest(ctx, t, "POST", "/records", token, map[string]any{
		"date": "2024-01-04", "weight": 500, "steps": 3000, "calories": 1800, "water": 2,
	}, nil)
	assert.Equal(t, http.StatusBadRequest, status)

	var stats health.StatsResponse
	status = doRequest(ctx, t, "GET", "/stats", token, nil, &stats)
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, 75.0, stats.Stats.AvgWeight)
	assert.Equal(t, int64(6000), stats.Stats.TotalSteps)
	assert.Equal(t, 2.0, stats.Stats.AvgWater)
	assert.Equal(t, "6,000", stats.Formatted.TotalSteps)

	var dashboard health.Dashboard
	status = doRequest(ctx, t, "GET", "/dashboard", token, nil, &dashboard)
	require.Equal(t, http.StatusOK, status)
	assert.Len(t, dashboard.Weight.Series[0].Points, 3)
	assert.Equal(t, 3, dashboard.Stats.Records)
}

func (s *IntegrationTestSuite) TestBMIRateLimited() {
	t := s.T()
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	var bmi health.BMIResponse
	status := doRequest(ctx, t, "GET", "/bmi?weight=70&height=175", "", nil, &bmi)
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, "Your BMI is 22.9 (Normal)", bmi.Message)

	limited := false
	for i := 0; i < 5; i++ {
		if doRequest(ctx, t, "GET", "/bmi?weight=70&height=175", "", nil, nil) == http.StatusTooManyRequests {
			limited = true
			break
		}
	}
	assert.True(t, limited)
}
