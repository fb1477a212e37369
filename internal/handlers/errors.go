package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/sbilibin2017/foodgram/internal/apperr"
	"github.com/sbilibin2017/foodgram/internal/logger"
	"github.com/sbilibin2017/foodgram/internal/models"
	"github.com/sbilibin2017/foodgram/internal/validation"
)

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logger.Log.Errorw("failed to encode response", "error", err)
	}
}

// writeError maps typed failures to HTTP statuses. Unknown errors are logged and hidden.
func writeError(w http.ResponseWriter, err error) {
	var (
		validationErr *apperr.ValidationError
		conflictErr   *apperr.ConflictError
		emptyCartErr  *apperr.EmptyCartError
		authzErr      *apperr.AuthorizationError
		notFoundErr   *apperr.NotFoundError
	)

	switch {
	case errors.As(err, &validationErr):
		writeJSON(w, http.StatusBadRequest, models.ErrorResponse{Detail: validationErr.Message, Field: validationErr.Field})
	case errors.As(err, &conflictErr):
		writeJSON(w, http.StatusBadRequest, models.ErrorResponse{Detail: conflictErr.Message})
	case errors.As(err, &emptyCartErr):
		writeJSON(w, http.StatusBadRequest, models.ErrorResponse{Detail: emptyCartErr.Error()})
	case errors.As(err, &authzErr):
		writeJSON(w, http.StatusForbidden, models.ErrorResponse{Detail: authzErr.Error()})
	case errors.As(err, &notFoundErr):
		writeJSON(w, http.StatusNotFound, models.ErrorResponse{Detail: notFoundErr.Error()})
	default:
		logger.Log.Errorw("internal server error", "err", err)
		writeJSON(w, http.StatusInternalServerError, models.ErrorResponse{Detail: "internal server error"})
	}
}

// decodeJSON reads the body into dst and runs struct validation.
func decodeJSON(r *http.Request, dst any) error {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		return apperr.NewValidation("", "invalid request body")
	}
	return validation.Struct(dst)
}
