package httpadapter

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"mesa-market/internal/core/domain"
)

type meBody struct {
	User domain.User `json:"user"`
	Role domain.Role `json:"role"`
}

// handleResolveRole reports whether userId acts as a sponsor, a publisher
// or neither.
func (h *Handler) handleResolveRole(w http.ResponseWriter, r *http.Request) {
	role, err := h.svc.Auth.ResolveRole(r.Context(), chi.URLParam(r, "userId"))
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, role)
}

func (h *Handler) handleMe(w http.ResponseWriter, r *http.Request) {
	user := caller(r)
	role, err := h.svc.Auth.ResolveRole(r.Context(), user.ID)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, meBody{User: user, Role: role})
}
