// Package timeblock implements the TimeBlock repository on PostgreSQL.
// The "at most one open block per worker" invariant is enforced by the
// partial unique index uniq_open_block_per_user, not by application checks.
package timeblock

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/praxora/praxis-backend/internal/adapter/postgres"
	"github.com/praxora/praxis-backend/internal/domain"
)

// OpenBlockConstraint is the partial unique index guarding the single open
// block per worker. Insert conflicts on it mean "already clocked in".
const OpenBlockConstraint = "uniq_open_block_per_user"

// Repo provides time block persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new time block repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

const blockColumns = `id, practice_id, user_id, block_date, started_at, ended_at, location_type,
       break_minutes, break_started_at, net_minutes, status, plausibility, created_at, updated_at`

const insertSQL = `
INSERT INTO time_blocks (practice_id, user_id, block_date, started_at, location_type, status)
VALUES ($1, $2, $3, $4, $5, 'active')
RETURNING id, break_minutes, plausibility, created_at, updated_at`

const getByIDSQL = `
SELECT ` + blockColumns + `
FROM time_blocks
WHERE id = $1 AND practice_id = $2 AND user_id = $3`

const openByUserSQL = `
SELECT ` + blockColumns + `
FROM time_blocks
WHERE practice_id = $1 AND user_id = $2 AND status = 'active'`

const updateSQL = `
UPDATE time_blocks
SET ended_at = $2, break_minutes = $3, break_started_at = $4,
    net_minutes = $5, status = $6, updated_at = now()
WHERE id = $1
RETURNING updated_at`

const listCompletedSQL = `
SELECT ` + blockColumns + `
FROM time_blocks
WHERE practice_id = $1 AND user_id = $2 AND status = 'completed'
  AND block_date >= $3 AND block_date <= $4
ORDER BY block_date ASC, started_at ASC`

const listByUserSQL = `
SELECT ` + blockColumns + `
FROM time_blocks
WHERE practice_id = $1 AND user_id = $2 AND status <> 'cancelled'
  AND block_date >= $3 AND block_date <= $4
ORDER BY block_date DESC, started_at DESC`

// CreateOpen inserts a new active block. A concurrent open block for the
// same worker trips the partial unique index and surfaces as
// domain.ErrAlreadyClockedIn; this is the race-proof guard the clock-in
// flow relies on.
func (r *Repo) CreateOpen(ctx context.Context, block *domain.TimeBlock) (*domain.TimeBlock, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	created := *block
	created.Status = domain.BlockStatusActive
	err := q.QueryRow(ctx, insertSQL,
		block.PracticeID,
		block.UserID,
		block.BlockDate,
		block.StartedAt,
		block.Location,
	).Scan(&created.ID, &created.BreakMinutes, &created.Plausibility, &created.CreatedAt, &created.UpdatedAt)
	if err != nil {
		if postgres.UniqueViolation(err, OpenBlockConstraint) {
			return nil, fmt.Errorf("create open block: %w", domain.ErrAlreadyClockedIn)
		}
		return nil, postgres.MapError(err, "time_block", block.UserID)
	}

	return &created, nil
}

// GetByID returns a block by primary key scoped to practice and user.
func (r *Repo) GetByID(ctx context.Context, practiceID, userID, blockID uuid.UUID) (*domain.TimeBlock, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	row := q.QueryRow(ctx, getByIDSQL, blockID, practiceID, userID)
	block, err := scanBlock(row)
	if err != nil {
		return nil, postgres.MapError(err, "time_block", blockID)
	}
	return block, nil
}

// GetOpenByUser returns the worker's single open block.
// Returns domain.ErrNotFound when the worker is idle. More than one open
// row means the partial unique index was bypassed, meaning corrupted state, and
// surfaces as domain.ErrInvariantViolation, never a silent pick.
func (r *Repo) GetOpenByUser(ctx context.Context, practiceID, userID uuid.UUID) (*domain.TimeBlock, error) {
	return r.openByUser(ctx, practiceID, userID, openByUserSQL)
}

// GetOpenByUserForUpdate is GetOpenByUser with FOR UPDATE row locking.
// Call inside RunInTx: break and clock-out mutations serialize on this lock.
func (r *Repo) GetOpenByUserForUpdate(ctx context.Context, practiceID, userID uuid.UUID) (*domain.TimeBlock, error) {
	return r.openByUser(ctx, practiceID, userID, openByUserSQL+" FOR UPDATE")
}

func (r *Repo) openByUser(ctx context.Context, practiceID, userID uuid.UUID, query string) (*domain.TimeBlock, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	rows, err := q.Query(ctx, query, practiceID, userID)
	if err != nil {
		return nil, fmt.Errorf("query open block: %w", err)
	}
	defer rows.Close()

	var blocks []*domain.TimeBlock
	for rows.Next() {
		block, err := scanBlock(rows)
		if err != nil {
			return nil, fmt.Errorf("scan open block: %w", err)
		}
		blocks = append(blocks, block)
	}
	if err := rows.Err(); err != nil {
		return nil, postgres.MapError(err, "time_block", userID)
	}

	switch len(blocks) {
	case 0:
		return nil, fmt.Errorf("open block for user %s: %w", userID, domain.ErrNotFound)
	case 1:
		return blocks[0], nil
	default:
		return nil, fmt.Errorf("found %d open blocks for user %s: %w", len(blocks), userID, domain.ErrInvariantViolation)
	}
}

// Update persists the mutable fields of a block (break state, end time,
// net minutes, status). Completed and cancelled blocks are immutable by
// convention; callers only pass blocks they hold a row lock on.
func (r *Repo) Update(ctx context.Context, block *domain.TimeBlock) error {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	err := q.QueryRow(ctx, updateSQL,
		block.ID,
		block.EndedAt,
		block.BreakMinutes,
		block.BreakStartedAt,
		block.NetMinutes,
		block.Status,
	).Scan(&block.UpdatedAt)
	if err != nil {
		return postgres.MapError(err, "time_block", block.ID)
	}

	return nil
}

// ListCompletedInRange returns completed blocks for a worker with
// block_date in [from, to] inclusive, oldest first. This is the monthly
// aggregation read path.
func (r *Repo) ListCompletedInRange(ctx context.Context, practiceID, userID uuid.UUID, from, to time.Time) ([]*domain.TimeBlock, error) {
	return r.list(ctx, listCompletedSQL, practiceID, userID, from, to)
}

// ListByUserInRange returns a worker's non-cancelled blocks in [from, to],
// newest first (month view in the UI).
func (r *Repo) ListByUserInRange(ctx context.Context, practiceID, userID uuid.UUID, from, to time.Time) ([]*domain.TimeBlock, error) {
	return r.list(ctx, listByUserSQL, practiceID, userID, from, to)
}

func (r *Repo) list(ctx context.Context, query string, practiceID, userID uuid.UUID, from, to time.Time) ([]*domain.TimeBlock, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	rows, err := q.Query(ctx, query, practiceID, userID, from, to)
	if err != nil {
		return nil, fmt.Errorf("list time_blocks: %w", err)
	}
	defer rows.Close()

	var blocks []*domain.TimeBlock
	for rows.Next() {
		block, err := scanBlock(rows)
		if err != nil {
			return nil, fmt.Errorf("scan time_block: %w", err)
		}
		blocks = append(blocks, block)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate time_blocks: %w", err)
	}

	return blocks, nil
}

func scanBlock(row pgx.Row) (*domain.TimeBlock, error) {
	var b domain.TimeBlock
	err := row.Scan(
		&b.ID, &b.PracticeID, &b.UserID, &b.BlockDate, &b.StartedAt, &b.EndedAt,
		&b.Location, &b.BreakMinutes, &b.BreakStartedAt, &b.NetMinutes,
		&b.Status, &b.Plausibility, &b.CreatedAt, &b.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &b, nil
}
