package httpadapter

import (
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"

	"mesa-market/internal/core/domain"
)

const maxBodyBytes = 1 << 20

type errorBody struct {
	Error      string              `json:"error"`
	Status     int                 `json:"status"`
	StatusText string              `json:"statusText"`
	Details    map[string][]string `json:"details,omitempty"`
}

type listBody struct {
	Data       any                `json:"data"`
	Pagination *domain.Pagination `json:"pagination,omitempty"`
}

type actionBody struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if v == nil {
		return
	}
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("encode response error", slog.Any("error", err))
	}
}

func writeStatus(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, errorBody{Error: msg, Status: status, StatusText: http.StatusText(status)})
}

// writeError renders err in the error envelope. Anything that is not a
// known domain error is logged and reported as a bare 500.
func (h *Handler) writeError(w http.ResponseWriter, r *http.Request, err error) {
	body := errorBody{Status: http.StatusInternalServerError, Error: "Internal Server Error"}

	var (
		ve *domain.ValidationError
		nf *domain.NotFoundError
		fb *domain.ForbiddenError
	)
	switch {
	case errors.As(err, &ve):
		body.Status, body.Error, body.Details = http.StatusBadRequest, "Validation failed", ve.Fields
	case errors.Is(err, domain.ErrSlotUnavailable):
		body.Status, body.Error = http.StatusBadRequest, "Ad slot is no longer available"
	case errors.As(err, &nf):
		body.Status, body.Error = http.StatusNotFound, nf.Error()
	case errors.As(err, &fb):
		body.Status, body.Error = http.StatusForbidden, fb.Error()
	case errors.Is(err, domain.ErrUnauthenticated):
		body.Status, body.Error = http.StatusUnauthorized, "Authentication required"
	case errors.Is(err, domain.ErrConflict):
		body.Status, body.Error = http.StatusConflict, "Resource already exists"
	default:
		h.logger.ErrorContext(r.Context(), "request failed",
			slog.String("method", r.Method),
			slog.String("path", r.URL.Path),
			slog.String("request_id", requestIDFrom(r.Context())),
			slog.Any("error", err),
		)
	}
	body.StatusText = http.StatusText(body.Status)
	writeJSON(w, body.Status, body)
}

// decodeJSON reads the request body into dst. An empty body leaves dst
// untouched so that required-field validation reports what is missing.
func decodeJSON(w http.ResponseWriter, r *http.Request, dst any) error {
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	err := dec.Decode(dst)
	if err == nil || errors.Is(err, io.EOF) {
		return nil
	}

	ve := domain.NewValidationError()
	var typeErr *json.UnmarshalTypeError
	var maxErr *http.MaxBytesError
	switch {
	case errors.As(err, &typeErr) && typeErr.Field != "":
		ve.Add(typeErr.Field, "has an invalid type")
	case errors.As(err, &maxErr):
		ve.Add("body", "is too large")
	default:
		ve.Add("body", "must be valid JSON")
	}
	return ve
}
