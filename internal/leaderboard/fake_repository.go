package leaderboard

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/apts18o9/leaderboard/internal/domain"
)

// FakeRepository is a stateful in-memory implementation of both the
// participant and claim history repositories for testing. A single mutex
// serializes score mutations, which satisfies the no-lost-update contract
// the same way the SQL atomic increment does.
type FakeRepository struct {
	mu           sync.Mutex
	participants map[string]*domain.Participant
	events       []domain.ClaimEvent
	lastEventAt  time.Time

	// Injectable failures for error-path tests.
	CreateErr      error
	AddPointsErr   error
	AppendErr      error
	ListErr        error
	ListHistoryErr error
}

func NewFakeRepository() *FakeRepository {
	return &FakeRepository{
		participants: make(map[string]*domain.Participant),
	}
}

func (f *FakeRepository) CreateParticipant(ctx context.Context, name string) (*domain.Participant, error) {
	if f.CreateErr != nil {
		return nil, f.CreateErr
	}

	f.mu.Lock()
	defer f.mu.Unlock()

	now := time.Now()
	p := &domain.Participant{
		ID:        uuid.NewString(),
		Name:      name,
		Score:     0,
		CreatedAt: now,
		UpdatedAt: now,
	}
	f.participants[p.ID] = p

	cp := *p
	return &cp, nil
}

func (f *FakeRepository) GetParticipantByID(ctx context.Context, participantID string) (*domain.Participant, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	p, ok := f.participants[participantID]
	if !ok {
		return nil, domain.ErrParticipantNotFound
	}
	cp := *p
	return &cp, nil
}

func (f *FakeRepository) ListParticipants(ctx context.Context) ([]domain.Participant, error) {
	if f.ListErr != nil {
		return nil, f.ListErr
	}

	f.mu.Lock()
	defer f.mu.Unlock()

	out := make([]domain.Participant, 0, len(f.participants))
	for _, p := range f.participants {
		out = append(out, *p)
	}
	return out, nil
}

func (f *FakeRepository) AddPoints(ctx context.Context, participantID string, points int) (*domain.Participant, error) {
	if f.AddPointsErr != nil {
		return nil, f.AddPointsErr
	}

	f.mu.Lock()
	defer f.mu.Unlock()

	p, ok := f.participants[participantID]
	if !ok {
		return nil, domain.ErrParticipantNotFound
	}
	p.Score += points
	p.UpdatedAt = time.Now()

	cp := *p
	return &cp, nil
}

func (f *FakeRepository) AppendClaimEvent(ctx context.Context, event *domain.ClaimEvent) error {
	if f.AppendErr != nil {
		return f.AppendErr
	}

	f.mu.Lock()
	defer f.mu.Unlock()

	event.ID = uuid.NewString()

	// Strictly increasing timestamps so most-recent-first ordering is
	// unambiguous even for claims landing within the same clock tick.
	now := time.Now()
	if !now.After(f.lastEventAt) {
		now = f.lastEventAt.Add(time.Nanosecond)
	}
	f.lastEventAt = now
	event.ClaimedAt = now

	f.events = append(f.events, *event)
	return nil
}

func (f *FakeRepository) ListClaimEvents(ctx context.Context, participantID string) ([]domain.ClaimEvent, error) {
	if f.ListHistoryErr != nil {
		return nil, f.ListHistoryErr
	}

	f.mu.Lock()
	defer f.mu.Unlock()

	out := make([]domain.ClaimEvent, 0, len(f.events))
	for _, e := range f.events {
		if participantID != "" && e.ParticipantID != participantID {
			continue
		}
		out = append(out, e)
	}

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].ClaimedAt.After(out[j].ClaimedAt)
	})
	return out, nil
}
