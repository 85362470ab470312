package session_test

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/2beens/healthtracker/internal/session"
)

func TestHandler_HandleStart(t *testing.T) {
	ctrl := gomock.NewController(t)
	lifecycle := NewMocksessionLifecycle(ctrl)
	handler := session.NewHandler(lifecycle)

	lifecycle.EXPECT().Start(gomock.Any()).Return("fresh-token", nil)

	rr := httptest.NewRecorder()
	handler.HandleStart(rr, httptest.NewRequest("POST", "/session", nil))
	require.Equal(t, http.StatusCreated, rr.Code)

	var resp session.StartResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	assert.Equal(t, "fresh-token", resp.Token)
	assert.Equal(t, session.Header, resp.Header)

	lifecycle.EXPECT().Start(gomock.Any()).Return("", errors.New("redis down"))
	rr = httptest.NewRecorder()
	handler.HandleStart(rr, httptest.NewRequest("POST", "/session", nil))
	assert.Equal(t, http.StatusInternalServerError, rr.Code)
}

func TestHandler_HandleEnd(t *testing.T) {
	ctrl := gomock.NewController(t)
	lifecycle := NewMocksessionLifecycle(ctrl)
	handler := session.NewHandler(lifecycle)

	testCases := []struct {
		name               string
		token              string
		endErr             error
		expectEnd          bool
		expectedStatusCode int
	}{
		{
			name:               "MissingToken",
			expectedStatusCode: http.StatusUnauthorized,
		},
		{
			name:               "Ended",
			token:              "live",
			expectEnd:          true,
			expectedStatusCode: http.StatusOK,
		},
		{
			name:               "Unknown",
			token:              "gone",
			endErr:             session.ErrSessionNotFound,
			expectEnd:          true,
			expectedStatusCode: http.StatusNotFound,
		},
		{
			name:               "RegistryFailure",
			token:              "live",
			endErr:             errors.New("redis down"),
			expectEnd:          true,
			expectedStatusCode: http.StatusInternalServerError,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if tc.expectEnd {
				lifecycle.EXPECT().End(gomock.Any(), tc.token).Return(tc.endErr)
			}

			req := httptest.NewRequest("DELETE", "/session", nil)
			if tc.token != "" {
				req.Header.Set(session.Header, tc.token)
			}
			rr := httptest.NewRecorder()
			handler.HandleEnd(rr, req)

			assert.Equal(t, tc.expectedStatusCode, rr.Code)
		})
	}
}
