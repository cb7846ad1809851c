package httpadapter

import (
	"fmt"
	"net/http"

	"github.com/google/uuid"

	"mesa-market/internal/core/domain"
	"mesa-market/internal/core/port"
)

type quoteCreatedBody struct {
	Success bool      `json:"success"`
	Message string    `json:"message"`
	QuoteID uuid.UUID `json:"quoteId"`
}

func (h *Handler) handleRequestQuote(w http.ResponseWriter, r *http.Request) {
	var in port.RequestQuoteInput
	if err := decodeJSON(w, r, &in); err != nil {
		h.writeError(w, r, err)
		return
	}
	q, err := h.svc.Quotes.RequestQuote(r.Context(), caller(r), in)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, quoteCreatedBody{
		Success: true,
		Message: "Quote request submitted successfully",
		QuoteID: q.ID,
	})
}

// handleMyQuotes lists the caller's own quote requests, optionally for a
// single ad slot.
func (h *Handler) handleMyQuotes(w http.ResponseWriter, r *http.Request) {
	ve := domain.NewValidationError()
	slotID := queryUUID(r, ve, "adSlotId")
	if err := ve.OrNil(); err != nil {
		h.writeError(w, r, err)
		return
	}
	quotes, err := h.svc.Quotes.ListMine(r.Context(), caller(r), slotID)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, listBody{Data: quotes})
}

// handlePublisherQuotes is the publisher inbox.
func (h *Handler) handlePublisherQuotes(w http.ResponseWriter, r *http.Request) {
	quotes, err := h.svc.Quotes.ListForPublisher(r.Context(), caller(r))
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, listBody{Data: quotes})
}

func (h *Handler) handleUpdateQuoteStatus(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "Quote request")
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	var in port.UpdateQuoteStatusInput
	if err = decodeJSON(w, r, &in); err != nil {
		h.writeError(w, r, err)
		return
	}
	if err = h.svc.Quotes.UpdateStatus(r.Context(), caller(r), id, in); err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, actionBody{
		Success: true,
		Message: fmt.Sprintf("Quote status updated to %s", in.Status),
	})
}
