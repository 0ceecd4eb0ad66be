package leaderboard

import (
	"context"
	"fmt"
	"strings"

	"github.com/apts18o9/leaderboard/internal/domain"
	"github.com/apts18o9/leaderboard/internal/logger"
	"github.com/apts18o9/leaderboard/internal/metrics"
	"github.com/apts18o9/leaderboard/internal/repository"
	"github.com/apts18o9/leaderboard/internal/utils"
)

// Service defines the interface for leaderboard operations
type Service interface {
	// RegisterParticipant creates a participant with score 0. The name is
	// trimmed; an empty result fails with domain.ErrInvalidName.
	RegisterParticipant(ctx context.Context, name string) (*domain.Participant, error)

	// ClaimPoints draws a random value in [MinClaimPoints, MaxClaimPoints],
	// atomically applies it to the participant's score and records a claim
	// event. Returns the updated participant and the points awarded.
	ClaimPoints(ctx context.Context, participantID string) (*domain.Participant, int, error)

	// ListRanked returns all participants ordered by dense rank.
	ListRanked(ctx context.Context) ([]domain.RankedParticipant, error)

	// ListHistory returns claim events most-recent-first, optionally filtered
	// by participant. An unknown participant yields an empty slice.
	ListHistory(ctx context.Context, participantID string) ([]domain.ClaimEvent, error)
}

type service struct {
	repo    repository.Participant
	history repository.ClaimHistory

	// roll draws the points for one claim. Overridable in tests.
	roll func() int
}

// NewService creates a new leaderboard service
func NewService(repo repository.Participant, history repository.ClaimHistory) Service {
	return &service{
		repo:    repo,
		history: history,
		roll: func() int {
			return utils.RandomInt(domain.MinClaimPoints, domain.MaxClaimPoints)
		},
	}
}

// RegisterParticipant creates a new participant with a zero score
func (s *service) RegisterParticipant(ctx context.Context, name string) (*domain.Participant, error) {
	log := logger.FromContext(ctx)
	log.Debug(LogMsgRegisterCalled, "name", name)

	trimmed := strings.TrimSpace(name)
	if trimmed == "" {
		return nil, domain.ErrInvalidName
	}

	participant, err := s.repo.CreateParticipant(ctx, trimmed)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrContextFailedToCreateParticipant, err)
	}

	metrics.ParticipantsRegistered.Inc()
	log.Info("Participant registered", "participant_id", participant.ID, "name", participant.Name)
	return participant, nil
}

// ClaimPoints executes one claim for the participant.
//
// The score increment commits first; the history append follows. A crash
// between the two can leave a score increment with no matching event, but a
// claim event is never recorded without its increment having committed. An
// append failure is surfaced to the caller even though the score change
// persists.
func (s *service) ClaimPoints(ctx context.Context, participantID string) (*domain.Participant, int, error) {
	log := logger.FromContext(ctx)
	log.Debug(LogMsgClaimCalled, "participant_id", participantID)

	points := s.roll()

	updated, err := s.repo.AddPoints(ctx, participantID, points)
	if err != nil {
		return nil, 0, fmt.Errorf("%s: %w", ErrContextFailedToAddPoints, err)
	}

	event := &domain.ClaimEvent{
		ParticipantID:   updated.ID,
		ParticipantName: updated.Name,
		PointsAwarded:   points,
	}
	if err := s.history.AppendClaimEvent(ctx, event); err != nil {
		log.Error(LogMsgHistoryAppendErr,
			"participant_id", updated.ID,
			"points", points,
			"error", err)
		return nil, 0, fmt.Errorf("%s: %w", ErrContextFailedToAppendHistory, err)
	}

	metrics.ClaimsTotal.Inc()
	metrics.PointsAwarded.Add(float64(points))

	log.Info(LogMsgClaimCompleted,
		"participant_id", updated.ID,
		"points", points,
		"score", updated.Score)
	return updated, points, nil
}

// ListRanked reads all participants and ranks them
func (s *service) ListRanked(ctx context.Context) ([]domain.RankedParticipant, error) {
	participants, err := s.repo.ListParticipants(ctx)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrContextFailedToListParticipants, err)
	}

	return Rank(participants), nil
}

// ListHistory returns claim events, newest first
func (s *service) ListHistory(ctx context.Context, participantID string) ([]domain.ClaimEvent, error) {
	events, err := s.history.ListClaimEvents(ctx, participantID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrContextFailedToListHistory, err)
	}

	return events, nil
}
