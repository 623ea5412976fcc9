package controllers

import (
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"gamenight/internal/delivery/http/helpers"
	"gamenight/internal/domain"
)

// writeServiceError maps domain errors onto the response envelope:
// validation -> 400, not-found -> 404, full/duplicate -> 409, anything
// else -> 500 with a logged diagnostic. Callers never leak raw internals.
func writeServiceError(logger *slog.Logger, w http.ResponseWriter, r *http.Request, err error) {
	var verr *domain.ValidationError
	switch {
	case errors.As(err, &verr):
		helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, strings.Join(verr.Fields, "; "))
	case errors.Is(err, domain.ErrNotFound):
		helpers.WriteJSONError(w, http.StatusNotFound, helpers.ErrCodeNotFound, "not found")
	case errors.Is(err, domain.ErrEventFull):
		helpers.WriteJSONError(w, http.StatusConflict, helpers.ErrCodeEventFull, "event is full")
	case errors.Is(err, domain.ErrDuplicateGuest):
		helpers.WriteJSONError(w, http.StatusConflict, helpers.ErrCodeDuplicateGuest, "guest already registered")
	case errors.Is(err, domain.ErrInvalidShareToken):
		helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, "invalid share token")
	default:
		logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		helpers.WriteJSONError(w, http.StatusInternalServerError, helpers.ErrCodeInternalError, "internal error")
	}
}
