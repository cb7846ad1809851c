package httpadapter

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"mesa-market/internal/core/domain"
)

// pathID parses the {id} URL parameter. A malformed id cannot name an
// existing resource, so it is reported as not found.
func pathID(r *http.Request, resource string) (uuid.UUID, error) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		return uuid.Nil, domain.NotFound(resource)
	}
	return id, nil
}

// queryUUID parses an optional uuid query parameter.
func queryUUID(r *http.Request, ve *domain.ValidationError, name string) *uuid.UUID {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return nil
	}
	id, err := uuid.Parse(raw)
	if err != nil {
		ve.Add(name, "must be a valid UUID")
		return nil
	}
	return &id
}

// queryInt parses an optional integer query parameter, returning zero when
// it is absent.
func queryInt(r *http.Request, ve *domain.ValidationError, name string) int {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return 0
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		ve.Add(name, "must be a number")
		return 0
	}
	return n
}

// queryEnum returns an optional string-backed enum query parameter. The
// use case validates the value.
func queryEnum[T ~string](r *http.Request, name string) *T {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return nil
	}
	v := T(raw)
	return &v
}
