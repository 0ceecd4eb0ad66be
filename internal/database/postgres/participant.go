package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/apts18o9/leaderboard/internal/domain"
)

// ParticipantRepository implements the participant repository for PostgreSQL
type ParticipantRepository struct {
	db *pgxpool.Pool
}

// NewParticipantRepository creates a new ParticipantRepository
func NewParticipantRepository(db *pgxpool.Pool) *ParticipantRepository {
	return &ParticipantRepository{db: db}
}

// CreateParticipant inserts a new participant with score 0
func (r *ParticipantRepository) CreateParticipant(ctx context.Context, name string) (*domain.Participant, error) {
	query := `
		INSERT INTO participants (name, score, created_at, updated_at)
		VALUES ($1, 0, NOW(), NOW())
		RETURNING participant_id, name, score, created_at, updated_at
	`

	var p domain.Participant
	err := r.db.QueryRow(ctx, query, name).Scan(&p.ID, &p.Name, &p.Score, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to insert participant: %v", domain.ErrStoreUnavailable, err)
	}

	return &p, nil
}

// GetParticipantByID retrieves a participant by its id
func (r *ParticipantRepository) GetParticipantByID(ctx context.Context, participantID string) (*domain.Participant, error) {
	query := `
		SELECT participant_id, name, score, created_at, updated_at
		FROM participants
		WHERE participant_id = $1
	`

	var p domain.Participant
	err := r.db.QueryRow(ctx, query, participantID).Scan(&p.ID, &p.Name, &p.Score, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrParticipantNotFound
		}
		return nil, fmt.Errorf("%w: failed to get participant: %v", domain.ErrStoreUnavailable, err)
	}

	return &p, nil
}

// ListParticipants retrieves all participants
func (r *ParticipantRepository) ListParticipants(ctx context.Context) ([]domain.Participant, error) {
	query := `
		SELECT participant_id, name, score, created_at, updated_at
		FROM participants
	`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to query participants: %v", domain.ErrStoreUnavailable, err)
	}
	defer rows.Close()

	participants := make([]domain.Participant, 0)
	for rows.Next() {
		var p domain.Participant
		if err := rows.Scan(&p.ID, &p.Name, &p.Score, &p.CreatedAt, &p.UpdatedAt); err != nil {
			return nil, fmt.Errorf("%w: failed to scan participant: %v", domain.ErrStoreUnavailable, err)
		}
		participants = append(participants, p)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: failed to read participants: %v", domain.ErrStoreUnavailable, err)
	}

	return participants, nil
}

// AddPoints increments the participant's score in a single statement.
// The increment happens inside the database, so concurrent claims for the
// same participant serialize on the row and no update is lost.
func (r *ParticipantRepository) AddPoints(ctx context.Context, participantID string, points int) (*domain.Participant, error) {
	query := `
		UPDATE participants
		SET score = score + $1, updated_at = NOW()
		WHERE participant_id = $2
		RETURNING participant_id, name, score, created_at, updated_at
	`

	var p domain.Participant
	err := r.db.QueryRow(ctx, query, points, participantID).Scan(&p.ID, &p.Name, &p.Score, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrParticipantNotFound
		}
		return nil, fmt.Errorf("%w: failed to add points: %v", domain.ErrStoreUnavailable, err)
	}

	return &p, nil
}
