package httpadapter

import (
	"net/http"

	"mesa-market/internal/core/domain"
	"mesa-market/internal/core/port"
)

// handleListPlacements returns placements visible to the caller as sponsor
// or publisher. Query parameters: campaignId, publisherId, status.
func (h *Handler) handleListPlacements(w http.ResponseWriter, r *http.Request) {
	ve := domain.NewValidationError()
	req := port.ListPlacementsReq{
		CampaignID:  queryUUID(r, ve, "campaignId"),
		PublisherID: queryUUID(r, ve, "publisherId"),
		Status:      queryEnum[domain.PlacementStatus](r, "status"),
	}
	if err := ve.OrNil(); err != nil {
		h.writeError(w, r, err)
		return
	}
	placements, err := h.svc.Placements.List(r.Context(), caller(r), req)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, listBody{Data: placements})
}

func (h *Handler) handleCreatePlacement(w http.ResponseWriter, r *http.Request) {
	var in port.CreatePlacementInput
	if err := decodeJSON(w, r, &in); err != nil {
		h.writeError(w, r, err)
		return
	}
	p, err := h.svc.Placements.Create(r.Context(), caller(r), in)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, p)
}
