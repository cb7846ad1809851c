package httpadapter

import (
	"net/http"

	"mesa-market/internal/core/domain"
	"mesa-market/internal/core/port"
)

type bookingBody struct {
	Success bool           `json:"success"`
	Message string         `json:"message"`
	AdSlot  *domain.AdSlot `json:"adSlot"`
}

// handleListAdSlots serves the marketplace browse. Query parameters: type,
// available=true, publisherId, page, limit.
func (h *Handler) handleListAdSlots(w http.ResponseWriter, r *http.Request) {
	ve := domain.NewValidationError()
	req := port.ListAdSlotsReq{
		Type:          queryEnum[domain.AdSlotType](r, "type"),
		AvailableOnly: r.URL.Query().Get("available") == "true",
		PublisherID:   queryUUID(r, ve, "publisherId"),
		Page:          queryInt(r, ve, "page"),
		Limit:         queryInt(r, ve, "limit"),
	}
	if err := ve.OrNil(); err != nil {
		h.writeError(w, r, err)
		return
	}

	items, page, err := h.svc.AdSlots.List(r.Context(), req)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, listBody{Data: items, Pagination: &page})
}

func (h *Handler) handleGetAdSlot(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "Ad slot")
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	slot, err := h.svc.AdSlots.Get(r.Context(), caller(r), id)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, slot)
}

func (h *Handler) handleCreateAdSlot(w http.ResponseWriter, r *http.Request) {
	var in port.CreateAdSlotInput
	if err := decodeJSON(w, r, &in); err != nil {
		h.writeError(w, r, err)
		return
	}
	slot, err := h.svc.AdSlots.Create(r.Context(), caller(r), in)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, slot)
}

func (h *Handler) handleUpdateAdSlot(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "Ad slot")
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	var in port.UpdateAdSlotInput
	if err = decodeJSON(w, r, &in); err != nil {
		h.writeError(w, r, err)
		return
	}
	slot, err := h.svc.AdSlots.Update(r.Context(), caller(r), id, in)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, slot)
}

func (h *Handler) handleDeleteAdSlot(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "Ad slot")
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	if err = h.svc.AdSlots.Delete(r.Context(), caller(r), id); err != nil {
		h.writeError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) handleBookAdSlot(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "Ad slot")
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	var in port.BookInput
	if err = decodeJSON(w, r, &in); err != nil {
		h.writeError(w, r, err)
		return
	}
	slot, err := h.svc.AdSlots.Book(r.Context(), caller(r), id, in)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, bookingBody{Success: true, Message: "Ad slot booked successfully!", AdSlot: slot})
}

func (h *Handler) handleUnbookAdSlot(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "Ad slot")
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	slot, err := h.svc.AdSlots.Unbook(r.Context(), caller(r), id)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, bookingBody{Success: true, Message: "Ad slot is now available again", AdSlot: slot})
}
