package server

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agbru/eulerbatch/internal/config"
	"github.com/agbru/eulerbatch/internal/logging"
	"github.com/agbru/eulerbatch/internal/service"
	"github.com/agbru/eulerbatch/internal/service/mocks"
)

// testLogger is a minimal logger for testing that implements logging.Logger.
type testLogger struct{}

func newTestLogger() *testLogger                                  { return &testLogger{} }
func (l *testLogger) Info(_ string, _ ...logging.Field)           {}
func (l *testLogger) Error(_ string, _ error, _ ...logging.Field) {}
func (l *testLogger) Debug(_ string, _ ...logging.Field)          {}
func (l *testLogger) Printf(_ string, _ ...any)                   {}
func (l *testLogger) Println(_ ...any)                            {}

func newTestServer(t *testing.T, opts ...Option) *Server {
	t.Helper()
	cfg := config.AppConfig{Port: "0", MaxQueries: 100}
	base := []Option{
		WithLogger(newTestLogger()),
		WithRateLimiter(NewRateLimiter(RateLimiterConfig{RequestsPerMinute: 1_000_000})),
	}
	s := NewServer(cfg, append(base, opts...)...)
	t.Cleanup(s.rateLimiter.Stop)
	return s
}

func TestHandleSum(t *testing.T) {
	s := newTestServer(t)

	t.Run("valid bound", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/sum?n=1000", http.NoBody)
		rec := httptest.NewRecorder()

		s.handleSum(rec, req)

		require.Equal(t, http.StatusOK, rec.Code)

		var resp SumResponse
		require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
		assert.Equal(t, uint64(1000), resp.N)
		assert.Equal(t, uint64(233168), resp.Sum)
		assert.NotEmpty(t, resp.Duration)
	})

	t.Run("missing n", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/sum", http.NoBody)
		rec := httptest.NewRecorder()

		s.handleSum(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Contains(t, rec.Body.String(), "Missing 'n' parameter")
	})

	t.Run("non-numeric n", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/sum?n=ten", http.NoBody)
		rec := httptest.NewRecorder()

		s.handleSum(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("zero n rejected by solver", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/sum?n=0", http.NoBody)
		rec := httptest.NewRecorder()

		s.handleSum(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("bound above security cap", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/sum?n=1000000001", http.NoBody)
		rec := httptest.NewRecorder()

		s.handleSum(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Contains(t, rec.Body.String(), "exceeds maximum allowed")
	})

	t.Run("POST not allowed", func(t *testing.T) {
		req := httptest.NewRequest("POST", "/sum?n=10", http.NoBody)
		rec := httptest.NewRecorder()

		s.handleSum(rec, req)

		assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
	})
}

func TestHandleSolve(t *testing.T) {
	s := newTestServer(t)

	t.Run("batch with duplicates", func(t *testing.T) {
		body, err := json.Marshal(BatchRequest{Queries: []uint64{10, 100, 10, 100}})
		require.NoError(t, err)

		req := httptest.NewRequest("POST", "/solve", bytes.NewReader(body))
		rec := httptest.NewRecorder()

		s.handleSolve(rec, req)

		require.Equal(t, http.StatusOK, rec.Code)

		var resp BatchResponse
		require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
		assert.Equal(t, []uint64{23, 2318, 23, 2318}, resp.Results)
		assert.Equal(t, 4, resp.Count)
		assert.Equal(t, 2, resp.Unique)
	})

	t.Run("empty batch", func(t *testing.T) {
		req := httptest.NewRequest("POST", "/solve", strings.NewReader(`{"queries":[]}`))
		rec := httptest.NewRecorder()

		s.handleSolve(rec, req)

		require.Equal(t, http.StatusOK, rec.Code)

		var resp BatchResponse
		require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
		assert.Empty(t, resp.Results)
		assert.Zero(t, resp.Count)
	})

	t.Run("invalid JSON", func(t *testing.T) {
		req := httptest.NewRequest("POST", "/solve", strings.NewReader(`{"queries":`))
		rec := httptest.NewRecorder()

		s.handleSolve(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("invalid bound fails the whole batch", func(t *testing.T) {
		req := httptest.NewRequest("POST", "/solve", strings.NewReader(`{"queries":[10,0,100]}`))
		rec := httptest.NewRecorder()

		s.handleSolve(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("GET not allowed", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/solve", http.NoBody)
		rec := httptest.NewRecorder()

		s.handleSolve(rec, req)

		assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
	})
}

func TestHandleSolve_BatchTooLarge(t *testing.T) {
	cfg := config.AppConfig{Port: "0", MaxQueries: 2}
	s := NewServer(cfg,
		WithLogger(newTestLogger()),
		WithRateLimiter(NewRateLimiter(RateLimiterConfig{RequestsPerMinute: 1_000_000})),
	)
	t.Cleanup(s.rateLimiter.Stop)

	req := httptest.NewRequest("POST", "/solve", strings.NewReader(`{"queries":[10,100,1000]}`))
	rec := httptest.NewRecorder()

	s.handleSolve(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "maximum query count")
}

func TestHandleFibonacci(t *testing.T) {
	s := newTestServer(t)

	t.Run("default limit and filter", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/fibonacci/even", http.NoBody)
		rec := httptest.NewRecorder()

		s.handleFibonacci(rec, req)

		require.Equal(t, http.StatusOK, rec.Code)

		var resp FibonacciResponse
		require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
		assert.Equal(t, uint64(4_000_000), resp.Limit)
		assert.Equal(t, "even", resp.Filter)
		assert.Equal(t, "4613732", resp.Sum)
	})

	t.Run("explicit limit with brackets", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/fibonacci/even?limit=100&filter=even", http.NoBody)
		rec := httptest.NewRecorder()

		s.handleFibonacci(rec, req)

		require.Equal(t, http.StatusOK, rec.Code)

		var resp FibonacciResponse
		require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
		assert.Equal(t, "44", resp.Sum)
		assert.Equal(t, 3, resp.Count)
		assert.Equal(t, "34", resp.GLB)
		assert.Equal(t, "144", resp.LUB)
	})

	t.Run("unknown filter", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/fibonacci/even?filter=prime", http.NoBody)
		rec := httptest.NewRecorder()

		s.handleFibonacci(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("invalid limit", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/fibonacci/even?limit=-1", http.NoBody)
		rec := httptest.NewRecorder()

		s.handleFibonacci(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestHandleHealth(t *testing.T) {
	s := newTestServer(t)

	req := httptest.NewRequest("GET", "/health", http.NoBody)
	rec := httptest.NewRecorder()

	s.handleHealth(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var resp map[string]any
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	assert.Equal(t, "healthy", resp["status"])
	assert.Contains(t, resp, "goroutines")
	assert.Contains(t, resp, "uptime")
}

func TestHandleLimits(t *testing.T) {
	s := newTestServer(t)

	req := httptest.NewRequest("GET", "/limits", http.NoBody)
	rec := httptest.NewRecorder()

	s.handleLimits(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var resp LimitsResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	assert.Equal(t, 100, resp.MaxQueries)
	assert.Equal(t, uint64(1_000_000_000), resp.MaxBound)
	assert.Equal(t, uint64(4_000_000), resp.DefaultFibLimit)
}

func TestHandleSolve_ServiceErrorMapping(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc := mocks.NewMockService(ctrl)
	svc.EXPECT().SolveBatch(gomock.Any(), []uint64{10}).Return(nil, service.ErrBatchTooLarge)

	s := newTestServer(t, WithService(svc))

	req := httptest.NewRequest("POST", "/solve", strings.NewReader(`{"queries":[10]}`))
	rec := httptest.NewRecorder()

	s.handleSolve(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestServerRouting_FullMiddlewareChain(t *testing.T) {
	s := newTestServer(t)

	req := httptest.NewRequest("GET", "/sum?n=10", http.NoBody)
	req.RemoteAddr = "10.0.0.1:1"
	rec := httptest.NewRecorder()

	s.httpServer.Handler.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "nosniff", rec.Header().Get("X-Content-Type-Options"))

	var resp SumResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	assert.Equal(t, uint64(23), resp.Sum)
}
