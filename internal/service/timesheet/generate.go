package timesheet

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/praxora/praxis-backend/internal/domain"
	"github.com/praxora/praxis-backend/pkg/ctxutil"
)

// GenerateReport aggregates a worker's completed blocks for one calendar
// month into an immutable report row. Workers may only generate their own
// reports; admins may generate for anyone in the practice. Exactly one
// report per (worker, year, month): the pre-check catches the common case
// and the unique index settles the race.
func (s *Service) GenerateReport(ctx context.Context, input GenerateReportInput) (*domain.MonthlyReport, error) {
	practiceID, ok := ctxutil.PracticeIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}
	callerID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	userID := input.UserID
	if userID == uuid.Nil {
		userID = callerID
	}
	if userID != callerID && !ctxutil.IsAdminCtx(ctx) {
		return nil, domain.ErrForbidden
	}

	exists, err := s.reports.Exists(ctx, practiceID, userID, input.Year, input.Month)
	if err != nil {
		return nil, fmt.Errorf("check existing report: %w", err)
	}
	if exists {
		return nil, domain.ErrDuplicateReport
	}

	period := &domain.MonthlyReport{Year: input.Year, Month: time.Month(input.Month)}
	blocks, err := s.blocks.ListCompletedInRange(ctx, practiceID, userID,
		period.PeriodStart(), period.PeriodEnd().AddDate(0, 0, -1))
	if err != nil {
		return nil, fmt.Errorf("load completed blocks: %w", err)
	}
	if len(blocks) == 0 {
		return nil, domain.ErrNoData
	}

	rep := aggregate(practiceID, userID, input.Year, time.Month(input.Month), blocks, s.cfg.TargetMinutesPerDay)
	rep.GeneratedAt = time.Now().UTC()

	created, err := s.reports.Create(ctx, rep)
	if err != nil {
		// A concurrent generation may have won the unique index race
		// after our pre-check; that surfaces as ErrDuplicateReport here.
		return nil, fmt.Errorf("store report: %w", err)
	}

	s.log.InfoContext(ctx, "monthly report generated",
		slog.String("user_id", userID.String()),
		slog.Int("year", created.Year),
		slog.Int("month", int(created.Month)),
		slog.Int("work_days", created.WorkDays),
		slog.Int("net_minutes", created.NetMinutes),
	)

	// Notification is fire-and-forget: the report exists whether or not
	// anyone hears about it.
	go s.notify.ReportGenerated(context.WithoutCancel(ctx), created)

	return created, nil
}

// aggregate folds completed blocks into the report totals and the per-day
// breakdown. Block-level values are trusted as stored; nothing is
// recomputed from raw stamps here.
func aggregate(practiceID, userID uuid.UUID, year int, month time.Month, blocks []*domain.TimeBlock, targetPerDay int) *domain.MonthlyReport {
	rep := &domain.MonthlyReport{
		PracticeID: practiceID,
		UserID:     userID,
		Year:       year,
		Month:      month,
	}

	days := make(map[string]bool)

	for _, b := range blocks {
		date := b.BlockDate.Format("2006-01-02")
		days[date] = true
		// Homeoffice is tallied per block, not per date: a split shift
		// worked from home counts each of its blocks.
		if b.Location == domain.LocationHomeoffice {
			rep.HomeofficeDays++
		}

		gross := b.GrossMinutes(time.Time{}) // EndedAt is set on completed blocks
		net := 0
		if b.NetMinutes != nil {
			net = *b.NetMinutes
		}

		rep.GrossMinutes += gross
		rep.BreakMinutes += b.BreakMinutes
		rep.NetMinutes += net
		if b.Plausibility != domain.PlausibilityOK {
			rep.PlausibilityWarnings++
		}

		rec := domain.DayRecord{
			Date:         date,
			StartTime:    b.StartedAt,
			GrossMinutes: gross,
			BreakMinutes: b.BreakMinutes,
			NetMinutes:   net,
			Location:     b.Location,
			Plausibility: b.Plausibility,
		}
		if b.EndedAt != nil {
			rec.EndTime = *b.EndedAt
		}
		rep.DailyBreakdown = append(rep.DailyBreakdown, rec)
	}

	rep.WorkDays = len(days)
	rep.TargetMinutes = rep.WorkDays * targetPerDay
	rep.OvertimeMinutes = rep.NetMinutes - rep.TargetMinutes
	if rep.OvertimeMinutes < 0 {
		rep.UndertimeMinutes = -rep.OvertimeMinutes
	}

	return rep
}
