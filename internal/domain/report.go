package domain

import (
	"time"

	"github.com/google/uuid"
)

// DayRecord is one row of a monthly report's embedded day-by-day breakdown.
// It is serialized to JSONB as part of the report snapshot.
type DayRecord struct {
	Date         string       `json:"date"`
	StartTime    time.Time    `json:"start_time"`
	EndTime      time.Time    `json:"end_time"`
	GrossMinutes int          `json:"gross_minutes"`
	BreakMinutes int          `json:"break_minutes"`
	NetMinutes   int          `json:"net_minutes"`
	Location     LocationType `json:"location"`
	Plausibility string       `json:"plausibility"`
}

// MonthlyReport is an immutable aggregation snapshot over one worker's
// completed time blocks in a calendar month. Exactly one report may exist
// per (practice, user, year, month); corrections happen through a manual
// workflow outside this service, never by mutating the row.
type MonthlyReport struct {
	ID         uuid.UUID
	PracticeID uuid.UUID
	UserID     uuid.UUID
	Year       int
	Month      time.Month

	WorkDays      int
	GrossMinutes  int
	BreakMinutes  int
	NetMinutes    int
	TargetMinutes int
	// OvertimeMinutes is signed: negative means undertime.
	OvertimeMinutes int
	// UndertimeMinutes is the non-negative mirror of negative overtime,
	// kept as its own column for dashboard queries.
	UndertimeMinutes     int
	HomeofficeDays       int
	PlausibilityWarnings int
	DailyBreakdown       []DayRecord
	GeneratedAt          time.Time
}

// ReportFilter narrows a report listing. Zero values mean "no filter" for
// that dimension.
type ReportFilter struct {
	UserID uuid.UUID
	Year   int
	Month  int
}

// PeriodStart returns the first instant of the report's calendar month (UTC).
func (r *MonthlyReport) PeriodStart() time.Time {
	return time.Date(r.Year, r.Month, 1, 0, 0, 0, 0, time.UTC)
}

// PeriodEnd returns the first instant of the following month (UTC),
// i.e. the exclusive upper bound of the report window.
func (r *MonthlyReport) PeriodEnd() time.Time {
	return r.PeriodStart().AddDate(0, 1, 0)
}
