// Package notify implements the notification sink the timesheet service
// informs about generated reports. The current implementation only writes
// a structured log line; a queue-backed sink can replace it behind the
// same method set without touching the service.
package notify

import (
	"context"
	"log/slog"

	"github.com/praxora/praxis-backend/internal/domain"
)

// LogSink logs report notifications.
type LogSink struct {
	log *slog.Logger
}

// NewLogSink creates a logging notification sink.
func NewLogSink(log *slog.Logger) *LogSink {
	return &LogSink{log: log}
}

// ReportGenerated records that a monthly report was created.
func (s *LogSink) ReportGenerated(ctx context.Context, r *domain.MonthlyReport) {
	s.log.InfoContext(ctx, "report notification",
		slog.String("report_id", r.ID.String()),
		slog.String("user_id", r.UserID.String()),
		slog.Int("year", r.Year),
		slog.Int("month", int(r.Month)),
	)
}
