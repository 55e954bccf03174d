package upload

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/Charlelielataste/escoffier-gallery/internal/adapters/handlers/http/dto"
	"github.com/Charlelielataste/escoffier-gallery/internal/config"
	"github.com/Charlelielataste/escoffier-gallery/internal/core/domain"
	"github.com/Charlelielataste/escoffier-gallery/internal/core/port"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

const (
	// multipart parts above this size are spooled to disk
	multipartMemory = 32 << 20
	jsonBodyLimit   = 64 << 10
)

// HandlerV1 is the handler for v1 upload routes
type HandlerV1 struct {
	uploadService port.UploadService
	config        config.UploadConfig
	logger        *slog.Logger
}

// NewUploadHandlerV1 creates HandlerV1
func NewUploadHandlerV1(service port.UploadService, cfg config.UploadConfig, logger *slog.Logger) *HandlerV1 {
	return &HandlerV1{
		uploadService: service,
		config:        cfg,
		logger:        logger,
	}
}

// Routes exposes handler routes
func (h *HandlerV1) Routes() chi.Router {
	router := chi.NewRouter()

	router.Group(func(r chi.Router) {
		r.Use(middleware.RequestSize(h.config.MaxRequestBodyBytes))
		r.Post("/", h.UploadFileV1)
		r.Post("/batch", h.UploadBatchV1)
	})

	router.Group(func(r chi.Router) {
		r.Use(middleware.RequestSize(jsonBodyLimit))
		r.Post("/signature", h.SignParametersV1)
		r.Post("/presign", h.PresignUploadV1)
	})

	return router
}

// errorStatus maps an upload error to its HTTP status
func errorStatus(err error) int {
	var maxBytesErr *http.MaxBytesError
	switch {
	case errors.As(err, &maxBytesErr), errors.Is(err, domain.ErrBatchSizeExceeded):
		return http.StatusRequestEntityTooLarge
	case errors.Is(err, domain.ErrValidation):
		return http.StatusBadRequest
	case errors.Is(err, domain.ErrUnsupported):
		return http.StatusNotImplemented
	default:
		return http.StatusInternalServerError
	}
}

// errorMessage hides provider failures behind a generic message
func errorMessage(err error, fallback string) string {
	switch errorStatus(err) {
	case http.StatusInternalServerError:
		return fallback
	case http.StatusRequestEntityTooLarge:
		return "Upload too large"
	default:
		return err.Error()
	}
}

func (h *HandlerV1) writeError(w http.ResponseWriter, err error, fallback string) {
	status := errorStatus(err)
	if status == http.StatusInternalServerError {
		h.logger.Error(fallback, "error", err)
	} else {
		h.logger.Warn(fallback, "error", err)
	}
	h.writeJSON(w, status, dto.Error{Error: errorMessage(err, fallback)})
}

func (h *HandlerV1) writeJSON(w http.ResponseWriter, status int, body interface{}) {
	if err := dto.WriteJSON(w, status, body); err != nil {
		h.logger.Error("error encoding response", "error", err)
	}
}

// parseKind reads the type field. An empty type means image.
func parseKind(value string) (domain.MediaKind, error) {
	if value == "" {
		return domain.MediaKindImage, nil
	}
	return domain.ParseMediaKind(value)
}
