package httpadapter

import (
	"net/http"

	"mesa-market/internal/core/port"
)

func (h *Handler) handleListSponsors(w http.ResponseWriter, r *http.Request) {
	sponsors, err := h.svc.Sponsors.List(r.Context(), caller(r))
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, listBody{Data: sponsors})
}

func (h *Handler) handleGetSponsor(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "Sponsor")
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	s, err := h.svc.Sponsors.Get(r.Context(), caller(r), id)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, s)
}

func (h *Handler) handleCreateSponsor(w http.ResponseWriter, r *http.Request) {
	var in port.CreateSponsorInput
	if err := decodeJSON(w, r, &in); err != nil {
		h.writeError(w, r, err)
		return
	}
	s, err := h.svc.Sponsors.Create(r.Context(), caller(r), in)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, s)
}

func (h *Handler) handleUpdateSponsor(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "Sponsor")
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	var in port.UpdateSponsorInput
	if err = decodeJSON(w, r, &in); err != nil {
		h.writeError(w, r, err)
		return
	}
	s, err := h.svc.Sponsors.Update(r.Context(), caller(r), id, in)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, s)
}
