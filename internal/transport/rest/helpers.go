// Package rest serves the HTTP API: clock actions, block history, and
// monthly reports.
package rest

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/praxora/praxis-backend/internal/domain"
)

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v) //nolint:errcheck
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]string{"error": message})
}

// handleError maps domain errors to HTTP statuses. Clock state machine
// violations are conflicts: the request was well-formed, the worker's
// state just doesn't allow it.
func handleError(log *slog.Logger, w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, domain.ErrValidation):
		writeError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, domain.ErrUnauthorized):
		writeError(w, http.StatusUnauthorized, "unauthorized")
	case errors.Is(err, domain.ErrForbidden):
		writeError(w, http.StatusForbidden, "forbidden")
	case errors.Is(err, domain.ErrNotFound), errors.Is(err, domain.ErrNoData):
		writeError(w, http.StatusNotFound, err.Error())
	case errors.Is(err, domain.ErrAlreadyClockedIn),
		errors.Is(err, domain.ErrNoOpenBlock),
		errors.Is(err, domain.ErrNotWorking),
		errors.Is(err, domain.ErrBreakAlreadyOpen),
		errors.Is(err, domain.ErrNoOpenBreak),
		errors.Is(err, domain.ErrDuplicateReport):
		writeError(w, http.StatusConflict, err.Error())
	case errors.Is(err, domain.ErrStoreUnavailable):
		writeError(w, http.StatusServiceUnavailable, "service unavailable")
	case errors.Is(err, domain.ErrInvariantViolation):
		log.ErrorContext(r.Context(), "invariant violation", slog.String("error", err.Error()))
		writeError(w, http.StatusInternalServerError, "internal server error")
	default:
		log.ErrorContext(r.Context(), "internal error", slog.String("error", err.Error()))
		writeError(w, http.StatusInternalServerError, "internal server error")
	}
}
