package chi

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/Charlelielataste/escoffier-gallery/internal/config"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestRateLimiter_PerClient(t *testing.T) {
	// Arrange
	limiter := NewRateLimiter(config.RateLimitConfig{RequestsPerSecond: 0.001, Burst: 2})
	dropped := prometheus.NewCounter(prometheus.CounterOpts{Name: "dropped"})
	handler := limiter.Middleware(dropped)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	}))

	call := func(remoteAddr string) int {
		req := httptest.NewRequest(http.MethodPost, "/api/v1/upload/", nil)
		req.RemoteAddr = remoteAddr
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)
		return rec.Code
	}

	// Act
	first := call("10.0.0.1:1234")
	second := call("10.0.0.1:1235")
	third := call("10.0.0.1:1236")
	other := call("10.0.0.2:1234")

	// Assert
	assert.Equal(t, http.StatusNoContent, first)
	assert.Equal(t, http.StatusNoContent, second)
	assert.Equal(t, http.StatusTooManyRequests, third)
	assert.Equal(t, http.StatusNoContent, other)
	assert.Equal(t, 1.0, testutil.ToFloat64(dropped))
}
