//go:build integration

package test

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/2beens/healthtracker/internal/session"
)

func newRequest(ctx context.Context, t *testing.T, method, path, token string, body any) *http.Request {
	t.Helper()

	var reqBody io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		require.NoError(t, err)
		reqBody = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, fmt.Sprintf("%s%s", serverEndpoint, path), reqBody)
	require.NoError(t, err)
	req.Header.Set("User-Agent", "test-agent")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set(session.Header, token)
	}

	return req
}

// doRequest sends the request and decodes a JSON response into out, when out is not nil.
func doRequest(ctx context.Context, t *testing.T, method, path, token string, body, out any) int {
	t.Helper()

	resp, err := http.DefaultClient.Do(newRequest(ctx, t, method, path, token, body))
	require.NoError(t, err)
	defer resp.Body.Close()

	respBytes, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	if out != nil && resp.StatusCode < http.StatusBadRequest {
		require.NoError(t, json.Unmarshal(respBytes, out), string(respBytes))
	}

	return resp.StatusCode
}

func startSession(ctx context.Context, t *testing.T) string {
	t.Helper()

	var startResp session.StartResponse
	status := doRequest(ctx, t, "POST", "/session", "", nil, &startResp)
	require.Equal(t, http.StatusCreated, status)
	require.NotEmpty(t, startResp.Token)

	return startResp.Token
}
