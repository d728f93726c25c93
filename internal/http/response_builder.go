// JSON response helpers and the mapping from domain errors to HTTP status
// codes.
package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"kakeibo/internal/core"
	"kakeibo/internal/log"
)

type errorResponse struct {
	Error string `json:"error"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, errorResponse{Error: message})
}

func writeNotFound(w http.ResponseWriter, what string) {
	writeError(w, http.StatusNotFound, what+" not found")
}

// writeDomainError maps a failure to a status code: validation and currency
// problems are the caller's fault (422), anything else is a storage or
// infrastructure failure (500).
func writeDomainError(w http.ResponseWriter, r *http.Request, err error) {
	var mismatch *core.CurrencyMismatchError
	switch {
	case errors.As(err, &mismatch),
		errors.Is(err, core.ErrEmptyUserID),
		errors.Is(err, core.ErrInvalidType),
		errors.Is(err, core.ErrInvalidCategory),
		errors.Is(err, core.ErrDescriptionTooLong),
		errors.Is(err, core.ErrInvalidPeriod),
		errors.Is(err, core.ErrInvalidThreshold),
		errors.Is(err, core.ErrEmptyGroupName):
		writeError(w, http.StatusUnprocessableEntity, err.Error())
	default:
		log.FromContext(r.Context()).ErrorContext(r.Context(), "Request failed",
			log.FieldPath, r.URL.Path,
			log.FieldError, err.Error())
		writeError(w, http.StatusInternalServerError, "internal error")
	}
}
