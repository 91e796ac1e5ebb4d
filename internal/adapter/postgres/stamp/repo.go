// Package stamp implements the append-only clock ledger on PostgreSQL.
// Stamps are inserted and read, never updated or deleted.
package stamp

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/praxora/praxis-backend/internal/adapter/postgres"
	"github.com/praxora/praxis-backend/internal/domain"
)

// Repo provides stamp ledger persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new stamp ledger repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

const insertSQL = `
INSERT INTO time_stamps (practice_id, user_id, stamp_type, stamped_at, location_type, comment)
VALUES ($1, $2, $3, $4, $5, $6)
RETURNING id, created_at`

const listByUserSQL = `
SELECT id, practice_id, user_id, stamp_type, stamped_at, location_type, comment, created_at
FROM time_stamps
WHERE practice_id = $1 AND user_id = $2 AND stamped_at >= $3 AND stamped_at < $4
ORDER BY stamped_at ASC`

// Create appends a stamp event to the ledger and returns it with the
// generated id and created_at filled in.
func (r *Repo) Create(ctx context.Context, stamp *domain.TimeStamp) (*domain.TimeStamp, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	created := *stamp
	err := q.QueryRow(ctx, insertSQL,
		stamp.PracticeID,
		stamp.UserID,
		stamp.Type,
		stamp.StampedAt,
		stamp.Location,
		stamp.Comment,
	).Scan(&created.ID, &created.CreatedAt)
	if err != nil {
		return nil, postgres.MapError(err, "time_stamp", stamp.UserID)
	}

	return &created, nil
}

// ListByUser returns a worker's stamps in [from, to), oldest first.
func (r *Repo) ListByUser(ctx context.Context, practiceID, userID uuid.UUID, from, to time.Time) ([]*domain.TimeStamp, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	rows, err := q.Query(ctx, listByUserSQL, practiceID, userID, from, to)
	if err != nil {
		return nil, fmt.Errorf("list time_stamps: %w", err)
	}
	defer rows.Close()

	var stamps []*domain.TimeStamp
	for rows.Next() {
		var s domain.TimeStamp
		if err := rows.Scan(&s.ID, &s.PracticeID, &s.UserID, &s.Type, &s.StampedAt, &s.Location, &s.Comment, &s.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan time_stamp: %w", err)
		}
		stamps = append(stamps, &s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate time_stamps: %w", err)
	}

	return stamps, nil
}
