package attendance

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/praxora/praxis-backend/internal/config"
	"github.com/praxora/praxis-backend/internal/domain"
)

// ---------------------------------------------------------------------------
// Consumer-defined interfaces (private)
// ---------------------------------------------------------------------------

type stampRepo interface {
	Create(ctx context.Context, stamp *domain.TimeStamp) (*domain.TimeStamp, error)
	ListByUser(ctx context.Context, practiceID, userID uuid.UUID, from, to time.Time) ([]*domain.TimeStamp, error)
}

type blockRepo interface {
	CreateOpen(ctx context.Context, block *domain.TimeBlock) (*domain.TimeBlock, error)
	GetByID(ctx context.Context, practiceID, userID, blockID uuid.UUID) (*domain.TimeBlock, error)
	GetOpenByUser(ctx context.Context, practiceID, userID uuid.UUID) (*domain.TimeBlock, error)
	GetOpenByUserForUpdate(ctx context.Context, practiceID, userID uuid.UUID) (*domain.TimeBlock, error)
	Update(ctx context.Context, block *domain.TimeBlock) error
	ListByUserInRange(ctx context.Context, practiceID, userID uuid.UUID, from, to time.Time) ([]*domain.TimeBlock, error)
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// ---------------------------------------------------------------------------
// Service
// ---------------------------------------------------------------------------

// Service implements the clock-in/clock-out business logic: the stamp
// ledger, the open block state machine and the break sub-ledger.
type Service struct {
	stamps stampRepo
	blocks blockRepo
	tx     txManager
	log    *slog.Logger
	cfg    config.AttendanceConfig

	// now is swappable in tests.
	now func() time.Time
}

// NewService creates a new attendance service.
func NewService(
	log *slog.Logger,
	stamps stampRepo,
	blocks blockRepo,
	tx txManager,
	cfg config.AttendanceConfig,
) *Service {
	return &Service{
		stamps: stamps,
		blocks: blocks,
		tx:     tx,
		log:    log,
		cfg:    cfg,
		now:    func() time.Time { return time.Now().UTC() },
	}
}

// blockDate truncates a stamp instant to its calendar date (UTC).
func blockDate(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
