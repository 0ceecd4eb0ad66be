package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/apts18o9/leaderboard/internal/domain"
)

// ClaimHistoryRepository implements the claim history repository for PostgreSQL
type ClaimHistoryRepository struct {
	db *pgxpool.Pool
}

// NewClaimHistoryRepository creates a new ClaimHistoryRepository
func NewClaimHistoryRepository(db *pgxpool.Pool) *ClaimHistoryRepository {
	return &ClaimHistoryRepository{db: db}
}

// AppendClaimEvent stores one claim event
func (r *ClaimHistoryRepository) AppendClaimEvent(ctx context.Context, event *domain.ClaimEvent) error {
	query := `
		INSERT INTO claim_events (participant_id, participant_name, points_awarded, claimed_at)
		VALUES ($1, $2, $3, NOW())
		RETURNING claim_event_id, claimed_at
	`

	err := r.db.QueryRow(ctx, query, event.ParticipantID, event.ParticipantName, event.PointsAwarded).
		Scan(&event.ID, &event.ClaimedAt)
	if err != nil {
		return fmt.Errorf("%w: failed to append claim event: %v", domain.ErrStoreUnavailable, err)
	}

	return nil
}

// ListClaimEvents retrieves claim events most-recent-first, optionally
// filtered by participant. An unknown participant id simply matches no rows.
func (r *ClaimHistoryRepository) ListClaimEvents(ctx context.Context, participantID string) ([]domain.ClaimEvent, error) {
	query := `
		SELECT claim_event_id, participant_id, participant_name, points_awarded, claimed_at
		FROM claim_events
	`

	args := []interface{}{}
	if participantID != "" {
		query += ` WHERE participant_id = $1`
		args = append(args, participantID)
	}
	query += ` ORDER BY claimed_at DESC`

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to query claim events: %v", domain.ErrStoreUnavailable, err)
	}
	defer rows.Close()

	return scanClaimEvents(rows)
}

func scanClaimEvents(rows pgx.Rows) ([]domain.ClaimEvent, error) {
	events := make([]domain.ClaimEvent, 0)

	for rows.Next() {
		var evt domain.ClaimEvent
		err := rows.Scan(
			&evt.ID,
			&evt.ParticipantID,
			&evt.ParticipantName,
			&evt.PointsAwarded,
			&evt.ClaimedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("%w: failed to scan claim event: %v", domain.ErrStoreUnavailable, err)
		}
		events = append(events, evt)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: failed to read claim events: %v", domain.ErrStoreUnavailable, err)
	}

	return events, nil
}
