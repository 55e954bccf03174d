package chi

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/Charlelielataste/escoffier-gallery/internal/adapters/handlers/http/chi/v1/media"
	"github.com/Charlelielataste/escoffier-gallery/internal/adapters/handlers/http/chi/v1/upload"
	"github.com/Charlelielataste/escoffier-gallery/internal/adapters/handlers/http/chi/v1/usage"
	"github.com/Charlelielataste/escoffier-gallery/internal/adapters/handlers/http/dto"
	"github.com/Charlelielataste/escoffier-gallery/internal/adapters/metrics"
	"github.com/Charlelielataste/escoffier-gallery/internal/config"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus"
)

// Handlers groups the v1 handlers. A nil handler is not mounted.
type Handlers struct {
	Media  *media.HandlerV1
	Usage  *usage.HandlerV1
	Upload *upload.HandlerV1
}

// NewRouter builds http.Handler with chi. m and limiter may be nil.
func NewRouter(logger *slog.Logger, m *metrics.Metrics, limiter *RateLimiter, handlers Handlers, server config.ServerConfig, env config.Env) http.Handler {
	r := chi.NewRouter()

	//handle requestID to facilitate debug (X-Request-ID)
	//It fetches from request if exists, or creates it
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(LoggerMiddleware(logger))
	r.Use(middleware.Recoverer)
	if m != nil {
		r.Use(m.Middleware)
	}

	if !env.IsProd() {
		r.Use(cors.Handler(cors.Options{
			AllowedOrigins:   server.AllowedOrigins,
			AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
			AllowedHeaders:   []string{"Accept", "Content-Type", "X-Request-ID"},
			ExposedHeaders:   []string{"Link", "Retry-After"},
			AllowCredentials: true,
			MaxAge:           300,
		}))
	}

	r.Route("/api/v1", func(r chi.Router) {
		// reads are bounded in time, uploads and the usage stream are not
		r.Group(func(r chi.Router) {
			r.Use(middleware.Timeout(60 * time.Second))
			r.Use(middleware.RequestSize(1 << 20))
			if handlers.Media != nil {
				r.Mount("/media", handlers.Media.Routes())
			}
		})

		if handlers.Usage != nil {
			r.Mount("/usage", handlers.Usage.Routes())
		}

		if handlers.Upload != nil {
			r.Group(func(r chi.Router) {
				if limiter != nil {
					r.Use(limiter.Middleware(droppedCounter(m)))
				}
				r.Mount("/upload", handlers.Upload.Routes())
			})
		}
	})

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		resp := HealthResponse{
			Status:    "ok",
			Timestamp: time.Now(),
		}
		if err := dto.WriteJSON(w, http.StatusOK, resp); err != nil {
			logger.Error("error encoding health response", "error", err)
		}
	})

	if m != nil {
		r.Handle("/metrics", m.Handler())
	}

	return r
}

type HealthResponse struct {
	Status    string    `json:"status"`
	Timestamp time.Time `json:"timestamp"`
}

func droppedCounter(m *metrics.Metrics) prometheus.Counter {
	if m != nil {
		return m.RateLimitDropped
	}
	return prometheus.NewCounter(prometheus.CounterOpts{Name: "unregistered_rate_limit_dropped_total"})
}
