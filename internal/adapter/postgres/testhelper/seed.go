package testhelper

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/praxora/praxis-backend/internal/domain"
)

// SeedCompletedBlock inserts a completed time block and returns it.
// start must be UTC; gross duration is end − start, net is gross − breakMin.
func SeedCompletedBlock(t *testing.T, pool *pgxpool.Pool, practiceID, userID uuid.UUID, start, end time.Time, breakMin int, location domain.LocationType) domain.TimeBlock {
	t.Helper()
	ctx := context.Background()

	net := int(end.Sub(start).Minutes()) - breakMin
	block := domain.TimeBlock{
		ID:           uuid.New(),
		PracticeID:   practiceID,
		UserID:       userID,
		BlockDate:    time.Date(start.Year(), start.Month(), start.Day(), 0, 0, 0, 0, time.UTC),
		StartedAt:    start,
		EndedAt:      &end,
		Location:     location,
		BreakMinutes: breakMin,
		NetMinutes:   &net,
		Status:       domain.BlockStatusCompleted,
		Plausibility: domain.PlausibilityOK,
	}

	_, err := pool.Exec(ctx,
		`INSERT INTO time_blocks (id, practice_id, user_id, block_date, started_at, ended_at,
		        location_type, break_minutes, net_minutes, status, plausibility)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`,
		block.ID, block.PracticeID, block.UserID, block.BlockDate, block.StartedAt, block.EndedAt,
		block.Location, block.BreakMinutes, block.NetMinutes, block.Status, block.Plausibility,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedCompletedBlock insert: %v", err)
	}

	return block
}

// SeedOpenBlock inserts an active block for the worker.
func SeedOpenBlock(t *testing.T, pool *pgxpool.Pool, practiceID, userID uuid.UUID, start time.Time, location domain.LocationType) domain.TimeBlock {
	t.Helper()
	ctx := context.Background()

	block := domain.TimeBlock{
		ID:           uuid.New(),
		PracticeID:   practiceID,
		UserID:       userID,
		BlockDate:    time.Date(start.Year(), start.Month(), start.Day(), 0, 0, 0, 0, time.UTC),
		StartedAt:    start,
		Location:     location,
		Status:       domain.BlockStatusActive,
		Plausibility: domain.PlausibilityOK,
	}

	_, err := pool.Exec(ctx,
		`INSERT INTO time_blocks (id, practice_id, user_id, block_date, started_at, location_type, status, plausibility)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
		block.ID, block.PracticeID, block.UserID, block.BlockDate, block.StartedAt,
		block.Location, block.Status, block.Plausibility,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedOpenBlock insert: %v", err)
	}

	return block
}
