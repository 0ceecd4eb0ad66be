package handler

import (
	"net/http"

	"github.com/apts18o9/leaderboard/internal/leaderboard"
	"github.com/apts18o9/leaderboard/internal/logger"
)

// RegisterParticipantRequest represents the request to register a participant.
type RegisterParticipantRequest struct {
	Name string `json:"name" validate:"required,max=100"`
}

// HandleRegisterParticipant handles participant registration.
func HandleRegisterParticipant(svc leaderboard.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromContext(r.Context())

		var req RegisterParticipantRequest
		if err := DecodeAndValidateRequest(r, w, &req, "Register participant"); err != nil {
			return
		}

		participant, err := svc.RegisterParticipant(r.Context(), req.Name)
		if err != nil {
			respondServiceError(w, r, "Register participant", err)
			return
		}

		log.Info("Participant registered",
			"participant_id", participant.ID,
			"name", participant.Name)
		respondJSON(w, http.StatusCreated, participant)
	}
}

// HandleListRanked returns the full leaderboard, ordered by dense rank.
func HandleListRanked(svc leaderboard.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ranked, err := svc.ListRanked(r.Context())
		if err != nil {
			respondServiceError(w, r, "List leaderboard", err)
			return
		}

		respondJSON(w, http.StatusOK, ranked)
	}
}
