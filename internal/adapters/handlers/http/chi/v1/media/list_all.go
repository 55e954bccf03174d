package media

import (
	"net/http"

	"github.com/Charlelielataste/escoffier-gallery/internal/adapters/handlers/http/dto"
)

// V1MediaResponse is the combined listing
type V1MediaResponse struct {
	Images []dto.Asset `json:"images"`
	Videos []dto.Asset `json:"videos"`
}

// ListAllV1 serves the combined listing of both kinds
func (h *HandlerV1) ListAllV1(w http.ResponseWriter, r *http.Request) {
	listing, err := h.mediaService.ListAll(r.Context())
	if err != nil {
		h.logger.Error("error listing media", "error", err)
		h.writeJSON(w, http.StatusInternalServerError, dto.Error{Error: "Failed to fetch media"})
		return
	}

	if listing.UpstreamFailed {
		w.Header().Set("Cache-Control", dto.CacheNone)
	} else {
		w.Header().Set("Cache-Control", dto.CacheListing)
	}
	h.writeJSON(w, http.StatusOK, V1MediaResponse{
		Images: dto.NewAssets(listing.Images),
		Videos: dto.NewAssets(listing.Videos),
	})
}
