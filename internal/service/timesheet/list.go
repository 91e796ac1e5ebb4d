package timesheet

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/praxora/praxis-backend/internal/domain"
	"github.com/praxora/praxis-backend/pkg/ctxutil"
)

// ListReports returns the practice's reports matching the filter, newest
// period first. Non-admin callers only ever see their own reports,
// whatever filter they pass.
func (s *Service) ListReports(ctx context.Context, input ListReportsInput) ([]*domain.MonthlyReport, error) {
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

	filter := domain.ReportFilter{
		UserID: input.UserID,
		Year:   input.Year,
		Month:  input.Month,
	}
	if !ctxutil.IsAdminCtx(ctx) {
		filter.UserID = callerID
	}

	reports, err := s.reports.List(ctx, practiceID, filter)
	if err != nil {
		return nil, fmt.Errorf("list reports: %w", err)
	}

	return reports, nil
}

// GetReport returns one report by id, scoped to the caller's practice.
// Non-admin callers may only fetch their own reports.
func (s *Service) GetReport(ctx context.Context, reportID uuid.UUID) (*domain.MonthlyReport, error) {
	practiceID, ok := ctxutil.PracticeIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}
	callerID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if reportID == uuid.Nil {
		return nil, domain.NewValidationError("report_id", "required")
	}

	rep, err := s.reports.GetByID(ctx, practiceID, reportID)
	if err != nil {
		return nil, fmt.Errorf("get report: %w", err)
	}
	if rep.UserID != callerID && !ctxutil.IsAdminCtx(ctx) {
		// Indistinguishable from a missing report on purpose.
		return nil, domain.ErrNotFound
	}

	return rep, nil
}
