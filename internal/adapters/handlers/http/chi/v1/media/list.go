package media

import (
	"errors"
	"net/http"

	"github.com/Charlelielataste/escoffier-gallery/internal/adapters/handlers/http/dto"
	"github.com/Charlelielataste/escoffier-gallery/internal/core/domain"
)

// V1ImagesResponse is a page of images
type V1ImagesResponse struct {
	Images     []dto.Asset `json:"images"`
	NextCursor *string     `json:"nextCursor"`
	HasMore    bool        `json:"hasMore"`
}

// V1VideosResponse is a page of videos
type V1VideosResponse struct {
	Videos     []dto.Asset `json:"videos"`
	NextCursor *string     `json:"nextCursor"`
	HasMore    bool        `json:"hasMore"`
}

// ListImagesV1 serves one page of images
func (h *HandlerV1) ListImagesV1(w http.ResponseWriter, r *http.Request) {
	page, ok := h.list(w, r, domain.MediaKindImage)
	if !ok {
		return
	}
	h.respond(w, page, V1ImagesResponse{
		Images:     dto.NewAssets(page.Assets),
		NextCursor: nextCursor(page),
		HasMore:    page.HasMore,
	})
}

// ListVideosV1 serves one page of videos
func (h *HandlerV1) ListVideosV1(w http.ResponseWriter, r *http.Request) {
	page, ok := h.list(w, r, domain.MediaKindVideo)
	if !ok {
		return
	}
	h.respond(w, page, V1VideosResponse{
		Videos:     dto.NewAssets(page.Assets),
		NextCursor: nextCursor(page),
		HasMore:    page.HasMore,
	})
}

func (h *HandlerV1) list(w http.ResponseWriter, r *http.Request, kind domain.MediaKind) (domain.Page, bool) {
	page, err := h.mediaService.List(r.Context(), kind, r.URL.Query().Get("cursor"))
	switch {
	case errors.Is(err, domain.ErrInvalidCursor), errors.Is(err, domain.ErrInvalidMediaKind):
		h.logger.Warn("invalid listing request", "kind", kind, "error", err)
		h.writeJSON(w, http.StatusBadRequest, dto.Error{Error: err.Error()})
		return domain.Page{}, false
	case err != nil:
		h.logger.Error("error listing media", "kind", kind, "error", err)
		h.writeJSON(w, http.StatusInternalServerError, dto.Error{Error: "Failed to fetch " + string(kind) + "s"})
		return domain.Page{}, false
	default:
		return page, true
	}
}

// respond keeps an upstream failure out of the shared cache: its body looks like an empty gallery
func (h *HandlerV1) respond(w http.ResponseWriter, page domain.Page, body interface{}) {
	if page.Outcome == domain.OutcomeUpstreamFailed {
		w.Header().Set("Cache-Control", dto.CacheNone)
	} else {
		w.Header().Set("Cache-Control", dto.CacheListing)
	}
	h.writeJSON(w, http.StatusOK, body)
}

func (h *HandlerV1) writeJSON(w http.ResponseWriter, status int, body interface{}) {
	if err := dto.WriteJSON(w, status, body); err != nil {
		h.logger.Error("error encoding response", "error", err)
	}
}

func nextCursor(page domain.Page) *string {
	if page.NextCursor == "" {
		return nil
	}
	cursor := page.NextCursor
	return &cursor
}
