package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"bloqpoint-backend/internal/domain"
	"bloqpoint-backend/internal/logger"
)

type errorResponse struct {
	Error string `json:"error"`
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if body != nil {
		if err := json.NewEncoder(w).Encode(body); err != nil {
			logger.Error("Failed to encode response", "error", err)
		}
	}
}

// writeError is the single translation point from the domain error set to
// transport status codes.
func writeError(w http.ResponseWriter, err error) {
	var (
		notFound   *domain.NotFoundError
		occupied   *domain.LockerOccupiedError
		invStatus  *domain.InvalidStatusError
		invTransit *domain.InvalidTransitionError
		invField   *domain.InvalidFieldError
	)

	switch {
	case errors.As(err, &notFound):
		writeJSON(w, http.StatusNotFound, errorResponse{Error: err.Error()})
	case errors.As(err, &occupied):
		writeJSON(w, http.StatusConflict, errorResponse{Error: err.Error()})
	case errors.As(err, &invStatus), errors.As(err, &invTransit), errors.As(err, &invField):
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: err.Error()})
	default:
		logger.Error("Unexpected failure", "error", err)
		writeJSON(w, http.StatusInternalServerError, errorResponse{Error: "internal server error"})
	}
}

func decodeBody(w http.ResponseWriter, r *http.Request, dst any) bool {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid request body"})
		return false
	}
	return true
}
