//go:build integration

package test

import (
	"context"
	"net/http"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/2beens/healthtracker/internal/health"
)

func (s *IntegrationTestSuite) TestSessionRegisteredInRedis() {
	t := s.T()
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	token := startSession(ctx, t)

	isMember, err := s.redisClient.SIsMember(ctx, "health-tracker-sessions", token).Result()
	require.NoError(t, err)
	assert.True(t, isMember)

	// records never reach redis
	keys, err := s.redisClient.Keys(ctx, "*").Result()
	require.NoError(t, err)
	for _, key := range keys {
		assert.NotContains(t, key, "record")
	}

	status := doRequest(ctx, t, "DELETE", "/session", token, nil, nil)
	require.Equal(t, http.StatusOK, status)

	isMember, err = s.redisClient.SIsMember(ctx, "health-tracker-sessions", token).Result()
	require.NoError(t, err)
	assert.False(t, isMember)

	status = doRequest(ctx, t, "GET", "/records", token, nil, nil)
	assert.Equal(t, http.StatusUnauthorized, status)
}

func (s *IntegrationTestSuite) TestSessionsDoNotShareRecords() {
	t := s.T()
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	tokenA := startSession(ctx, t)
	tokenB := startSession(ctx, t)

	status := doRequest(ctx, t, "POST", "/records", tokenA, map[string]any{
		"date": "2024-02-01", "weight": 68.5, "steps": 7000, "calories": 2100, "water": 2.2,
	}, nil)
	require.Equal(t, http.StatusCreated, status)

	var listB health.ListRecordsResponse
	status = doRequest(ctx, t, "GET", "/records", tokenB, nil, &listB)
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, 0, listB.Total)

	var listA health.ListRecordsResponse
	status = doRequest(ctx, t, "GET", "/records", tokenA, nil, &listA)
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, 1, listA.Total)
}
