package server

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nutrilabel/nutrictl/pkg/session"
)

func newTestServer(opts ...Option) *Server {
	s := New(append([]Option{
		WithName("nutrictl-api-test"),
		WithVersion("test"),
		WithHandler(map[string]http.HandlerFunc{
			"/v1/report": session.HandleReport,
		}),
	}, opts...)...)
	s.ready = true
	return s
}

func TestHandleHealth(t *testing.T) {
	s := newTestServer()
	w := httptest.NewRecorder()

	s.setupRoutes().ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/health", nil))

	require.Equal(t, http.StatusOK, w.Code)

	var resp HealthResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "healthy", resp.Status)
}

func TestHandleReady_NotReady(t *testing.T) {
	s := newTestServer()
	s.ready = false
	w := httptest.NewRecorder()

	s.setupRoutes().ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/ready", nil))

	require.Equal(t, http.StatusServiceUnavailable, w.Code)

	var resp HealthResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "not_ready", resp.Status)
}

func TestHandleDefault_ListsRoutes(t *testing.T) {
	s := newTestServer()
	w := httptest.NewRecorder()

	s.setupRoutes().ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))

	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Name   string   `json:"name"`
		Ready  bool     `json:"ready"`
		Routes []string `json:"routes"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "nutrictl-api-test", resp.Name)
	assert.True(t, resp.Ready)
	assert.Contains(t, resp.Routes, "POST /v1/report")
}

func TestMiddleware_AssignsRequestID(t *testing.T) {
	s := newTestServer()
	w := httptest.NewRecorder()

	req := httptest.NewRequest(http.MethodPost, "/v1/report", nil)
	s.setupRoutes().ServeHTTP(w, req)

	assert.NotEmpty(t, w.Header().Get("X-Request-Id"))
}

func TestMiddleware_PreservesClientRequestID(t *testing.T) {
	s := newTestServer()
	w := httptest.NewRecorder()

	req := httptest.NewRequest(http.MethodPost, "/v1/report", nil)
	req.Header.Set("X-Request-Id", "client-chosen")
	s.setupRoutes().ServeHTTP(w, req)

	assert.Equal(t, "client-chosen", w.Header().Get("X-Request-Id"))
}

func TestMiddleware_RateLimitsPerClient(t *testing.T) {
	cfg := DefaultConfig()
	cfg.RateLimit = 1
	cfg.RateLimitBurst = 1
	s := newTestServer(WithConfig(cfg))
	handler := s.setupRoutes()

	first := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/v1/report", nil)
	req.RemoteAddr = "10.0.0.1:1234"
	handler.ServeHTTP(first, req)
	assert.NotEqual(t, http.StatusTooManyRequests, first.Code)

	second := httptest.NewRecorder()
	req2 := httptest.NewRequest(http.MethodPost, "/v1/report", nil)
	req2.RemoteAddr = "10.0.0.1:1234"
	handler.ServeHTTP(second, req2)
	require.Equal(t, http.StatusTooManyRequests, second.Code)

	var resp ErrorResponse
	require.NoError(t, json.Unmarshal(second.Body.Bytes(), &resp))
	assert.Equal(t, ErrCodeRateLimitExceeded, resp.Code)
	assert.True(t, resp.Retryable)

	// A different client keeps its own budget.
	third := httptest.NewRecorder()
	req3 := httptest.NewRequest(http.MethodPost, "/v1/report", nil)
	req3.RemoteAddr = "10.0.0.2:1234"
	handler.ServeHTTP(third, req3)
	assert.NotEqual(t, http.StatusTooManyRequests, third.Code)
}
