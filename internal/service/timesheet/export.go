package timesheet

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/praxora/praxis-backend/internal/service/timesheet/render"
)

// ExportPDF renders a persisted report as a paginated PDF. Access rules
// are the same as GetReport.
func (s *Service) ExportPDF(ctx context.Context, reportID uuid.UUID) ([]byte, error) {
	rep, err := s.GetReport(ctx, reportID)
	if err != nil {
		return nil, err
	}

	out, err := render.PDF(rep)
	if err != nil {
		return nil, fmt.Errorf("export report %s: %w", reportID, err)
	}
	return out, nil
}

// ExportCSV renders a persisted report's day-by-day breakdown as CSV.
func (s *Service) ExportCSV(ctx context.Context, reportID uuid.UUID) ([]byte, error) {
	rep, err := s.GetReport(ctx, reportID)
	if err != nil {
		return nil, err
	}

	out, err := render.CSV(rep)
	if err != nil {
		return nil, fmt.Errorf("export report %s: %w", reportID, err)
	}
	return out, nil
}

// ExportFilename suggests a download name for a report export, matching
// the pattern the web client historically used.
func ExportFilename(year, month int, format string) string {
	return fmt.Sprintf("zeiterfassung_%d-%02d.%s", year, month, format)
}
