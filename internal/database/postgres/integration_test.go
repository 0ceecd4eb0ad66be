package postgres

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/apts18o9/leaderboard/internal/database"
	"github.com/apts18o9/leaderboard/internal/domain"
)

// applyMigrations runs all migration files in order, stripping goose markers
func applyMigrations(ctx context.Context, pool *pgxpool.Pool, migrationsDir string) error {
	entries, err := os.ReadDir(migrationsDir)
	if err != nil {
		return fmt.Errorf("failed to read migrations dir: %w", err)
	}

	var migrationFiles []string
	for _, entry := range entries {
		if !entry.IsDir() && strings.HasSuffix(entry.Name(), ".sql") {
			migrationFiles = append(migrationFiles, filepath.Join(migrationsDir, entry.Name()))
		}
	}
	sort.Strings(migrationFiles)

	for _, file := range migrationFiles {
		content, err := os.ReadFile(file)
		if err != nil {
			return fmt.Errorf("failed to read migration file %s: %w", file, err)
		}

		contentStr := string(content)
		contentStr = strings.Replace(contentStr, "-- +goose Up", "", 1)
		if downIdx := strings.Index(contentStr, "-- +goose Down"); downIdx != -1 {
			contentStr = contentStr[:downIdx]
		}
		contentStr = strings.TrimSpace(contentStr)

		if _, err := pool.Exec(ctx, contentStr); err != nil {
			return fmt.Errorf("failed to execute migration %s: %w", file, err)
		}
	}
	return nil
}

func TestRepositories_Integration(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping integration test in short mode")
	}

	ctx := context.Background()

	var pgContainer *postgres.PostgresContainer
	var err error

	func() {
		defer func() {
			if r := recover(); r != nil {
				t.Skipf("Skipping integration test due to panic (likely Docker issue): %v", r)
			}
		}()
		pgContainer, err = postgres.Run(ctx,
			"postgres:15-alpine",
			postgres.WithDatabase("testdb"),
			postgres.WithUsername("testuser"),
			postgres.WithPassword("testpass"),
			testcontainers.WithWaitStrategy(
				wait.ForLog("database system is ready to accept connections").
					WithOccurrence(2).
					WithStartupTimeout(5*time.Second)),
		)
	}()

	if pgContainer == nil {
		if err != nil {
			t.Fatalf("failed to start postgres container: %v", err)
		}
		return
	}
	if err != nil {
		t.Fatalf("failed to start postgres container: %v", err)
	}
	defer func() {
		if err := pgContainer.Terminate(ctx); err != nil {
			t.Fatalf("failed to terminate container: %v", err)
		}
	}()

	connStr, err := pgContainer.ConnectionString(ctx, "sslmode=disable")
	if err != nil {
		t.Fatalf("failed to get connection string: %v", err)
	}

	pool, err := database.NewPool(connStr, 4, time.Minute, time.Hour)
	if err != nil {
		t.Fatalf("failed to connect to database: %v", err)
	}
	defer pool.Close()

	if err := applyMigrations(ctx, pool, "../../../migrations"); err != nil {
		t.Fatalf("failed to apply migrations: %v", err)
	}

	repo := NewParticipantRepository(pool)
	historyRepo := NewClaimHistoryRepository(pool)

	t.Run("CreateParticipant", func(t *testing.T) {
		p, err := repo.CreateParticipant(ctx, "Alice")
		if err != nil {
			t.Fatalf("CreateParticipant failed: %v", err)
		}
		if p.ID == "" {
			t.Error("expected participant ID to be set")
		}
		if p.Score != 0 {
			t.Errorf("expected score 0, got %d", p.Score)
		}

		retrieved, err := repo.GetParticipantByID(ctx, p.ID)
		if err != nil {
			t.Fatalf("GetParticipantByID failed: %v", err)
		}
		if retrieved.Name != "Alice" {
			t.Errorf("expected name Alice, got %s", retrieved.Name)
		}
	})

	t.Run("GetParticipantByID unknown", func(t *testing.T) {
		_, err := repo.GetParticipantByID(ctx, uuid.NewString())
		if !errors.Is(err, domain.ErrParticipantNotFound) {
			t.Errorf("expected ErrParticipantNotFound, got %v", err)
		}
	})

	t.Run("AddPoints", func(t *testing.T) {
		p, err := repo.CreateParticipant(ctx, "Bob")
		if err != nil {
			t.Fatalf("CreateParticipant failed: %v", err)
		}

		updated, err := repo.AddPoints(ctx, p.ID, 7)
		if err != nil {
			t.Fatalf("AddPoints failed: %v", err)
		}
		if updated.Score != 7 {
			t.Errorf("expected score 7, got %d", updated.Score)
		}

		updated, err = repo.AddPoints(ctx, p.ID, 3)
		if err != nil {
			t.Fatalf("AddPoints failed: %v", err)
		}
		if updated.Score != 10 {
			t.Errorf("expected score 10, got %d", updated.Score)
		}
	})

	t.Run("AddPoints unknown participant", func(t *testing.T) {
		_, err := repo.AddPoints(ctx, uuid.NewString(), 5)
		if !errors.Is(err, domain.ErrParticipantNotFound) {
			t.Errorf("expected ErrParticipantNotFound, got %v", err)
		}
	})

	t.Run("ListParticipants", func(t *testing.T) {
		participants, err := repo.ListParticipants(ctx)
		if err != nil {
			t.Fatalf("ListParticipants failed: %v", err)
		}
		if len(participants) < 2 {
			t.Errorf("expected at least 2 participants, got %d", len(participants))
		}
	})

	t.Run("ClaimHistory", func(t *testing.T) {
		p, err := repo.CreateParticipant(ctx, "Claire")
		if err != nil {
			t.Fatalf("CreateParticipant failed: %v", err)
		}

		for _, points := range []int{4, 9} {
			event := &domain.ClaimEvent{
				ParticipantID:   p.ID,
				ParticipantName: p.Name,
				PointsAwarded:   points,
			}
			if err := historyRepo.AppendClaimEvent(ctx, event); err != nil {
				t.Fatalf("AppendClaimEvent failed: %v", err)
			}
			if event.ID == "" {
				t.Error("expected event ID to be set")
			}
			if event.ClaimedAt.IsZero() {
				t.Error("expected event timestamp to be set")
			}
		}

		events, err := historyRepo.ListClaimEvents(ctx, p.ID)
		if err != nil {
			t.Fatalf("ListClaimEvents failed: %v", err)
		}
		if len(events) != 2 {
			t.Fatalf("expected 2 events, got %d", len(events))
		}
		// Most recent first
		if events[0].PointsAwarded != 9 || events[1].PointsAwarded != 4 {
			t.Errorf("expected events ordered most recent first, got %d then %d",
				events[0].PointsAwarded, events[1].PointsAwarded)
		}

		all, err := historyRepo.ListClaimEvents(ctx, "")
		if err != nil {
			t.Fatalf("ListClaimEvents (unfiltered) failed: %v", err)
		}
		if len(all) < 2 {
			t.Errorf("expected at least 2 events unfiltered, got %d", len(all))
		}
	})

	t.Run("ClaimHistory unknown participant", func(t *testing.T) {
		events, err := historyRepo.ListClaimEvents(ctx, uuid.NewString())
		if err != nil {
			t.Fatalf("ListClaimEvents failed: %v", err)
		}
		if len(events) != 0 {
			t.Errorf("expected no events, got %d", len(events))
		}
	})
}
