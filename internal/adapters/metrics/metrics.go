package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/Charlelielataste/escoffier-gallery/internal/core/domain"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics bundles prometheus collectors used by the gallery
type Metrics struct {
	registry           *prometheus.Registry
	RequestsTotal      *prometheus.CounterVec
	RequestDurationSec *prometheus.HistogramVec
	ListingOutcomes    *prometheus.CounterVec
	Uploads            *prometheus.CounterVec
	UsagePollFailures  prometheus.Counter
	Thumbnails         *prometheus.CounterVec
	RateLimitDropped   prometheus.Counter
}

// New registers every collector on registry
func New(registry *prometheus.Registry) *Metrics {
	m := &Metrics{
		registry: registry,
		RequestsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "gallery_http_requests_total",
			Help: "Total number of HTTP requests.",
		}, []string{"route", "method", "status"}),
		RequestDurationSec: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "gallery_http_request_duration_seconds",
			Help:    "HTTP request duration in seconds.",
			Buckets: prometheus.DefBuckets,
		}, []string{"route", "method", "status"}),
		ListingOutcomes: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "gallery_listing_outcomes_total",
			Help: "Total number of gallery pages served, by outcome.",
		}, []string{"kind", "outcome"}),
		Uploads: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "gallery_uploads_total",
			Help: "Total number of uploaded files, by result.",
		}, []string{"kind", "result"}),
		UsagePollFailures: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "gallery_usage_poll_failures_total",
			Help: "Total number of failed background usage refreshes.",
		}),
		Thumbnails: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "gallery_thumbnails_total",
			Help: "Total number of rendered thumbnails, by result.",
		}, []string{"result"}),
		RateLimitDropped: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "gallery_ratelimit_dropped_total",
			Help: "Total number of requests dropped by the rate limiter.",
		}),
	}

	registry.MustRegister(
		m.RequestsTotal,
		m.RequestDurationSec,
		m.ListingOutcomes,
		m.Uploads,
		m.UsagePollFailures,
		m.Thumbnails,
		m.RateLimitDropped,
	)

	return m
}

// Handler exposes the registry in the prometheus text format
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

func (m *Metrics) ListingOutcome(kind domain.MediaKind, outcome domain.ListOutcome) {
	m.ListingOutcomes.WithLabelValues(string(kind), string(outcome)).Inc()
}

func (m *Metrics) UploadOutcome(kind domain.MediaKind, success bool) {
	m.Uploads.WithLabelValues(string(kind), result(success)).Inc()
}

func (m *Metrics) UsagePollFailed() {
	m.UsagePollFailures.Inc()
}

func (m *Metrics) ThumbnailRendered(success bool) {
	m.Thumbnails.WithLabelValues(result(success)).Inc()
}

// Middleware records request count and latency per chi route pattern
func (m *Metrics) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		startedAt := time.Now()
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)

		next.ServeHTTP(ww, r)

		status := strconv.Itoa(ww.Status())
		route := routePattern(r)
		m.RequestsTotal.WithLabelValues(route, r.Method, status).Inc()
		m.RequestDurationSec.WithLabelValues(route, r.Method, status).Observe(time.Since(startedAt).Seconds())
	})
}

func routePattern(r *http.Request) string {
	if rctx := chi.RouteContext(r.Context()); rctx != nil {
		if pattern := rctx.RoutePattern(); pattern != "" {
			return pattern
		}
	}
	return "other"
}

func result(success bool) string {
	if success {
		return "success"
	}
	return "failure"
}
