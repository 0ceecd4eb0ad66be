package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/apts18o9/leaderboard/internal/domain"
	"github.com/apts18o9/leaderboard/internal/leaderboard"
	"github.com/apts18o9/leaderboard/internal/logger"
)

// ClaimPointsResponse is the result of one claim.
type ClaimPointsResponse struct {
	Participant   *domain.Participant `json:"participant"`
	PointsAwarded int                 `json:"points_awarded"`
}

// HandleClaimPoints awards a random 1-10 point value to the participant in
// the URL and records the claim in the audit trail.
func HandleClaimPoints(svc leaderboard.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromContext(r.Context())

		participantID := chi.URLParam(r, "id")
		// A malformed id cannot match any participant; reject it here instead
		// of letting the store surface a type error.
		if _, err := uuid.Parse(participantID); err != nil {
			log.Warn("Claim with malformed participant id", "participant_id", participantID)
			respondError(w, http.StatusNotFound, ErrMsgParticipantNotFoundHTTP)
			return
		}

		participant, points, err := svc.ClaimPoints(r.Context(), participantID)
		if err != nil {
			respondServiceError(w, r, "Claim points", err)
			return
		}

		respondJSON(w, http.StatusOK, ClaimPointsResponse{
			Participant:   participant,
			PointsAwarded: points,
		})
	}
}
