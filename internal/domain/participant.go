package domain

import "time"

// Claim point bounds. Every claim awards a uniform random value in this range.
const (
	MinClaimPoints = 1
	MaxClaimPoints = 10
)

// Participant represents an entity accumulating points on the leaderboard
type Participant struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Score     int       `json:"score"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// ClaimEvent is one append-only audit record of points awarded to a participant.
// ParticipantName is a snapshot of the display name at claim time; it does not
// track later renames.
type ClaimEvent struct {
	ID              string    `json:"id"`
	ParticipantID   string    `json:"participant_id"`
	ParticipantName string    `json:"participant_name"`
	PointsAwarded   int       `json:"points_awarded"`
	ClaimedAt       time.Time `json:"claimed_at"`
}

// RankedParticipant is a Participant with its computed rank. Derived on every
// read, never persisted.
type RankedParticipant struct {
	Participant
	Rank int `json:"rank"`
}
