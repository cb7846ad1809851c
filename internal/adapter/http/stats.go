package httpadapter

import (
	"net/http"
)

// handleDashboardStats returns platform-wide counts and delivery metrics.
func (h *Handler) handleDashboardStats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.svc.Dashboard.GetStats(r.Context())
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, stats)
}
