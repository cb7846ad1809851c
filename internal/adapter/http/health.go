package httpadapter

import (
	"context"
	"log/slog"
	"net/http"
	"time"
)

type healthBody struct {
	Status    string    `json:"status"`
	Timestamp time.Time `json:"timestamp"`
	Database  string    `json:"database"`
}

func (h *Handler) handleHealth(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
	defer cancel()

	if err := h.infra.DB.Ping(ctx); err != nil {
		h.logger.ErrorContext(r.Context(), "health check failed", slog.Any("error", err))
		writeStatus(w, http.StatusServiceUnavailable, "Database disconnected")
		return
	}
	writeJSON(w, http.StatusOK, healthBody{Status: "ok", Timestamp: time.Now().UTC(), Database: "connected"})
}
