package httpadapter

import (
	"net/http"

	"mesa-market/internal/core/domain"
	"mesa-market/internal/core/port"
)

func (h *Handler) handleListCampaigns(w http.ResponseWriter, r *http.Request) {
	req := port.ListCampaignsReq{Status: queryEnum[domain.CampaignStatus](r, "status")}
	campaigns, err := h.svc.Campaigns.List(r.Context(), caller(r), req)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, listBody{Data: campaigns})
}

func (h *Handler) handleGetCampaign(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "Campaign")
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	c, err := h.svc.Campaigns.Get(r.Context(), caller(r), id)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, c)
}

func (h *Handler) handleCreateCampaign(w http.ResponseWriter, r *http.Request) {
	var in port.CreateCampaignInput
	if err := decodeJSON(w, r, &in); err != nil {
		h.writeError(w, r, err)
		return
	}
	c, err := h.svc.Campaigns.Create(r.Context(), caller(r), in)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, c)
}

func (h *Handler) handleUpdateCampaign(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "Campaign")
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	var in port.UpdateCampaignInput
	if err = decodeJSON(w, r, &in); err != nil {
		h.writeError(w, r, err)
		return
	}
	c, err := h.svc.Campaigns.Update(r.Context(), caller(r), id, in)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, c)
}

func (h *Handler) handleDeleteCampaign(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "Campaign")
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	if err = h.svc.Campaigns.Delete(r.Context(), caller(r), id); err != nil {
		h.writeError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
