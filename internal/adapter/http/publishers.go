package httpadapter

import (
	"net/http"

	"mesa-market/internal/core/port"
)

func (h *Handler) handleListPublishers(w http.ResponseWriter, r *http.Request) {
	publishers, err := h.svc.Publishers.List(r.Context(), caller(r))
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, listBody{Data: publishers})
}

func (h *Handler) handleGetPublisher(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "Publisher")
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	p, err := h.svc.Publishers.Get(r.Context(), caller(r), id)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, p)
}

func (h *Handler) handleCreatePublisher(w http.ResponseWriter, r *http.Request) {
	var in port.CreatePublisherInput
	if err := decodeJSON(w, r, &in); err != nil {
		h.writeError(w, r, err)
		return
	}
	p, err := h.svc.Publishers.Create(r.Context(), caller(r), in)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, p)
}
