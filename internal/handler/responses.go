package handler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/apts18o9/leaderboard/internal/domain"
	"github.com/apts18o9/leaderboard/internal/logger"
)

// Standard response types for consistent API responses

// ErrorResponse represents an error response
type ErrorResponse struct {
	Error string `json:"error"`
}

// respondJSON sends a JSON response with the given status code and payload
func respondJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(payload); err != nil {
		// Headers are already sent; nothing to do but log.
		slog.Error("Failed to encode JSON response", "error", err)
	}
}

// respondError sends a JSON error response
func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, ErrorResponse{Error: message})
}

// respondServiceError logs a failed service call and writes the mapped
// status code and user-facing message.
func respondServiceError(w http.ResponseWriter, r *http.Request, opName string, err error) {
	log := logger.FromContext(r.Context())
	status, message := mapServiceErrorToUserMessage(err)
	if status >= http.StatusInternalServerError {
		log.Error(opName+" failed", "error", err)
	} else {
		log.Warn(opName+" rejected", "error", err)
	}
	respondError(w, status, message)
}

// mapServiceErrorToUserMessage maps domain errors to user-friendly HTTP
// responses. Store and internal failures share a generic message; a failed
// claim must not be auto-retried, a retry would draw a new random value.
func mapServiceErrorToUserMessage(err error) (int, string) {
	if err == nil {
		return http.StatusInternalServerError, ErrMsgUnknownError
	}

	switch {
	case errors.Is(err, domain.ErrInvalidName):
		return http.StatusBadRequest, ErrMsgParticipantNameRequired
	case errors.Is(err, domain.ErrParticipantNotFound):
		return http.StatusNotFound, ErrMsgParticipantNotFoundHTTP
	case errors.Is(err, domain.ErrStoreUnavailable):
		return http.StatusServiceUnavailable, ErrMsgGenericServerError
	}

	return http.StatusInternalServerError, ErrMsgGenericServerError
}
