package handler

import (
	"net/http"

	"github.com/google/uuid"

	"github.com/apts18o9/leaderboard/internal/domain"
	"github.com/apts18o9/leaderboard/internal/leaderboard"
)

// HandleListHistory returns claim events most-recent-first. An optional
// participant_id query parameter filters to one participant; an unknown or
// malformed id yields an empty list, not an error.
func HandleListHistory(svc leaderboard.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		participantID := GetOptionalQueryParam(r, "participant_id", "")
		if participantID != "" {
			if _, err := uuid.Parse(participantID); err != nil {
				respondJSON(w, http.StatusOK, []domain.ClaimEvent{})
				return
			}
		}

		events, err := svc.ListHistory(r.Context(), participantID)
		if err != nil {
			respondServiceError(w, r, "List history", err)
			return
		}

		respondJSON(w, http.StatusOK, events)
	}
}
