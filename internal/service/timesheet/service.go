package timesheet

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

type blockRepo interface {
	ListCompletedInRange(ctx context.Context, practiceID, userID uuid.UUID, from, to time.Time) ([]*domain.TimeBlock, error)
}

type reportRepo interface {
	Create(ctx context.Context, r *domain.MonthlyReport) (*domain.MonthlyReport, error)
	Exists(ctx context.Context, practiceID, userID uuid.UUID, year, month int) (bool, error)
	GetByID(ctx context.Context, practiceID, reportID uuid.UUID) (*domain.MonthlyReport, error)
	List(ctx context.Context, practiceID uuid.UUID, filter domain.ReportFilter) ([]*domain.MonthlyReport, error)
}

// notifier is informed after a report is generated. Delivery is
// best-effort and runs off the request path; a failed notification never
// fails the generation.
type notifier interface {
	ReportGenerated(ctx context.Context, r *domain.MonthlyReport)
}

// ---------------------------------------------------------------------------
// Service
// ---------------------------------------------------------------------------

// Service implements monthly report generation, lookup and export.
type Service struct {
	blocks  blockRepo
	reports reportRepo
	notify  notifier
	log     *slog.Logger
	cfg     config.AttendanceConfig
}

// NewService creates a new timesheet service.
func NewService(
	log *slog.Logger,
	blocks blockRepo,
	reports reportRepo,
	notify notifier,
	cfg config.AttendanceConfig,
) *Service {
	return &Service{
		blocks:  blocks,
		reports: reports,
		notify:  notify,
		log:     log,
		cfg:     cfg,
	}
}
