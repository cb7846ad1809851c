package httpadapter

import (
	"net/http"

	"mesa-market/internal/core/port"
)

func (h *Handler) handleSubscribe(w http.ResponseWriter, r *http.Request) {
	var in port.SubscribeInput
	if err := decodeJSON(w, r, &in); err != nil {
		h.writeError(w, r, err)
		return
	}
	if err := h.svc.Newsletter.Subscribe(r.Context(), in); err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, actionBody{Success: true, Message: "Thanks for subscribing!"})
}
