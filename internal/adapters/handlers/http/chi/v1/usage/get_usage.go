package usage

import (
	"errors"
	"net/http"
	"time"

	"github.com/Charlelielataste/escoffier-gallery/internal/adapters/handlers/http/dto"
	"github.com/Charlelielataste/escoffier-gallery/internal/core/domain"
)

// GetUsageV1 serves the account quota. A snapshot of the background poller is
// used while it is fresh, otherwise the provider is called.
func (h *HandlerV1) GetUsageV1(w http.ResponseWriter, r *http.Request) {
	if snapshot, ok := h.latest(); ok {
		h.respond(w, snapshot)
		return
	}

	snapshot, err := h.usageService.GetUsage(r.Context())
	if err != nil {
		h.logger.Error("error fetching usage", "error", err)

		resp := dto.Error{Error: "Failed to fetch usage data"}
		switch {
		case errors.Is(err, domain.ErrConfiguration):
			resp.Message = "Media provider configuration missing"
		case errors.Is(err, domain.ErrNoUsageData):
			resp.Message = "No usage data returned"
		default:
			resp.Message = "Media provider call failed"
		}
		if !h.env.IsProd() {
			resp.Details = err.Error()
		}

		h.writeJSON(w, http.StatusInternalServerError, resp)
		return
	}

	h.respond(w, snapshot)
}

func (h *HandlerV1) latest() (domain.UsageSnapshot, bool) {
	if h.feed == nil {
		return domain.UsageSnapshot{}, false
	}
	snapshot, ok := h.feed.Latest()
	if !ok || time.Since(snapshot.FetchedAt) > h.maxAge {
		return domain.UsageSnapshot{}, false
	}
	return snapshot, true
}

func (h *HandlerV1) respond(w http.ResponseWriter, snapshot domain.UsageSnapshot) {
	w.Header().Set("Cache-Control", dto.CacheUsage)
	h.writeJSON(w, http.StatusOK, dto.NewUsage(snapshot))
}

func (h *HandlerV1) writeJSON(w http.ResponseWriter, status int, body interface{}) {
	if err := dto.WriteJSON(w, status, body); err != nil {
		h.logger.Error("error encoding response", "error", err)
	}
}
