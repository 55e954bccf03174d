package media

import (
	"log/slog"

	"github.com/Charlelielataste/escoffier-gallery/internal/core/port"
	"github.com/go-chi/chi/v5"
)

// HandlerV1 is the handler for v1 media routes
type HandlerV1 struct {
	mediaService port.MediaService
	logger       *slog.Logger
}

// NewMediaHandlerV1 creates HandlerV1
func NewMediaHandlerV1(service port.MediaService, logger *slog.Logger) *HandlerV1 {
	return &HandlerV1{
		mediaService: service,
		logger:       logger,
	}
}

// Routes exposes handler routes
func (h *HandlerV1) Routes() chi.Router {
	router := chi.NewRouter()

	router.Get("/", h.ListAllV1)
	router.Get("/images", h.ListImagesV1)
	router.Get("/videos", h.ListVideosV1)

	return router
}
