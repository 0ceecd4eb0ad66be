package repository

import (
	"context"

	"github.com/apts18o9/leaderboard/internal/domain"
)

// Participant defines the interface for participant persistence
type Participant interface {
	// CreateParticipant inserts a new participant with score 0 and returns
	// the stored record with its assigned id and timestamps.
	CreateParticipant(ctx context.Context, name string) (*domain.Participant, error)

	// GetParticipantByID returns the participant or domain.ErrParticipantNotFound.
	GetParticipantByID(ctx context.Context, participantID string) (*domain.Participant, error)

	// ListParticipants returns all participants in no particular order.
	ListParticipants(ctx context.Context) ([]domain.Participant, error)

	// AddPoints atomically increments the participant's score and refreshes
	// updated_at, returning the updated record. Implementations must not use a
	// read-then-write pattern: two concurrent calls for the same participant
	// must both be reflected in the final score.
	AddPoints(ctx context.Context, participantID string, points int) (*domain.Participant, error)
}

// ClaimHistory defines the interface for the append-only claim event store
type ClaimHistory interface {
	// AppendClaimEvent durably records one claim. Called only after the
	// matching score increment has committed.
	AppendClaimEvent(ctx context.Context, event *domain.ClaimEvent) error

	// ListClaimEvents returns events most-recent-first. A non-empty
	// participantID filters to that participant; an unknown id yields an
	// empty slice, not an error.
	ListClaimEvents(ctx context.Context, participantID string) ([]domain.ClaimEvent, error)
}
