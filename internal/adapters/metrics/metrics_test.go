package metrics_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/Charlelielataste/escoffier-gallery/internal/adapters/metrics"
	"github.com/Charlelielataste/escoffier-gallery/internal/core/domain"
	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestMetrics_ListingOutcome(t *testing.T) {
	// Arrange
	m := metrics.New(prometheus.NewRegistry())

	// Act
	m.ListingOutcome(domain.MediaKindImage, domain.OutcomeUpstreamFailed)
	m.ListingOutcome(domain.MediaKindImage, domain.OutcomeUpstreamFailed)
	m.ListingOutcome(domain.MediaKindVideo, domain.OutcomeOK)

	// Assert
	assert.Equal(t, 2.0, testutil.ToFloat64(m.ListingOutcomes.WithLabelValues("image", "upstream_failed")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.ListingOutcomes.WithLabelValues("video", "ok")))
}

func TestMetrics_Middleware(t *testing.T) {
	// Arrange
	m := metrics.New(prometheus.NewRegistry())
	r := chi.NewRouter()
	r.Use(m.Middleware)
	r.Get("/api/v1/media/{kind}", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	})
	r.Handle("/metrics", m.Handler())

	// Act
	r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/api/v1/media/images", nil))
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	// Assert
	assert.Equal(t, 1.0, testutil.ToFloat64(m.RequestsTotal.WithLabelValues("/api/v1/media/{kind}", "GET", "418")))
	assert.Contains(t, w.Body.String(), "gallery_http_requests_total")
}
