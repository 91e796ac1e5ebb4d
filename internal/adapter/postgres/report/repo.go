// Package report implements the MonthlyReport repository on PostgreSQL.
// Reports are immutable snapshots: Create is the only write, and the unique
// index on (practice_id, user_id, year, month) rejects duplicates.
package report

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/praxora/praxis-backend/internal/adapter/postgres"
	"github.com/praxora/praxis-backend/internal/domain"
)

// ReportKeyConstraint is the unique index on (practice, user, year, month).
const ReportKeyConstraint = "uniq_monthly_report_key"

// Repo provides monthly report persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new monthly report repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

const reportColumns = `id, practice_id, user_id, year, month, work_days, gross_minutes,
       break_minutes, net_minutes, target_minutes, overtime_minutes, undertime_minutes,
       homeoffice_days, plausibility_warnings, daily_breakdown, generated_at`

const insertSQL = `
INSERT INTO monthly_reports (practice_id, user_id, year, month, work_days, gross_minutes,
       break_minutes, net_minutes, target_minutes, overtime_minutes, undertime_minutes,
       homeoffice_days, plausibility_warnings, daily_breakdown, generated_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)
RETURNING id`

const getByIDSQL = `
SELECT ` + reportColumns + `
FROM monthly_reports
WHERE id = $1 AND practice_id = $2`

const existsSQL = `
SELECT EXISTS (
    SELECT 1 FROM monthly_reports
    WHERE practice_id = $1 AND user_id = $2 AND year = $3 AND month = $4
)`

// Create persists a report snapshot as a single atomic insert. A concurrent
// generation for the same key loses the race on the unique index and gets
// domain.ErrDuplicateReport, same as the pre-check.
func (r *Repo) Create(ctx context.Context, report *domain.MonthlyReport) (*domain.MonthlyReport, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	breakdown, err := json.Marshal(report.DailyBreakdown)
	if err != nil {
		return nil, fmt.Errorf("marshal daily breakdown: %w", err)
	}

	created := *report
	err = q.QueryRow(ctx, insertSQL,
		report.PracticeID,
		report.UserID,
		report.Year,
		int(report.Month),
		report.WorkDays,
		report.GrossMinutes,
		report.BreakMinutes,
		report.NetMinutes,
		report.TargetMinutes,
		report.OvertimeMinutes,
		report.UndertimeMinutes,
		report.HomeofficeDays,
		report.PlausibilityWarnings,
		breakdown,
		report.GeneratedAt,
	).Scan(&created.ID)
	if err != nil {
		if postgres.UniqueViolation(err, ReportKeyConstraint) {
			return nil, fmt.Errorf("create monthly report: %w", domain.ErrDuplicateReport)
		}
		return nil, postgres.MapError(err, "monthly_report", report.UserID)
	}

	return &created, nil
}

// Exists reports whether a report for the key already exists. This is the
// cheap pre-check; the unique index remains the authoritative guard.
func (r *Repo) Exists(ctx context.Context, practiceID, userID uuid.UUID, year, month int) (bool, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	var exists bool
	if err := q.QueryRow(ctx, existsSQL, practiceID, userID, year, month).Scan(&exists); err != nil {
		return false, fmt.Errorf("check monthly report exists: %w", err)
	}
	return exists, nil
}

// GetByID returns a report by primary key scoped to the practice.
func (r *Repo) GetByID(ctx context.Context, practiceID, reportID uuid.UUID) (*domain.MonthlyReport, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	row := q.QueryRow(ctx, getByIDSQL, reportID, practiceID)
	report, err := scanReport(row)
	if err != nil {
		return nil, postgres.MapError(err, "monthly_report", reportID)
	}
	return report, nil
}

// List returns a practice's reports matching the filter, newest period
// first. Filters are optional, so the query is built dynamically.
func (r *Repo) List(ctx context.Context, practiceID uuid.UUID, filter domain.ReportFilter) ([]*domain.MonthlyReport, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	builder := sq.Select(
		"id", "practice_id", "user_id", "year", "month", "work_days", "gross_minutes",
		"break_minutes", "net_minutes", "target_minutes", "overtime_minutes", "undertime_minutes",
		"homeoffice_days", "plausibility_warnings", "daily_breakdown", "generated_at",
	).
		From("monthly_reports").
		Where(sq.Eq{"practice_id": practiceID}).
		OrderBy("year DESC", "month DESC", "generated_at DESC").
		PlaceholderFormat(sq.Dollar)

	if filter.UserID != uuid.Nil {
		builder = builder.Where(sq.Eq{"user_id": filter.UserID})
	}
	if filter.Year != 0 {
		builder = builder.Where(sq.Eq{"year": filter.Year})
	}
	if filter.Month != 0 {
		builder = builder.Where(sq.Eq{"month": filter.Month})
	}

	sql, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list query: %w", err)
	}

	rows, err := q.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("list monthly_reports: %w", err)
	}
	defer rows.Close()

	var reports []*domain.MonthlyReport
	for rows.Next() {
		report, err := scanReport(rows)
		if err != nil {
			return nil, fmt.Errorf("scan monthly_report: %w", err)
		}
		reports = append(reports, report)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate monthly_reports: %w", err)
	}

	return reports, nil
}

func scanReport(row pgx.Row) (*domain.MonthlyReport, error) {
	var (
		rep       domain.MonthlyReport
		month     int
		breakdown []byte
	)
	err := row.Scan(
		&rep.ID, &rep.PracticeID, &rep.UserID, &rep.Year, &month, &rep.WorkDays,
		&rep.GrossMinutes, &rep.BreakMinutes, &rep.NetMinutes, &rep.TargetMinutes,
		&rep.OvertimeMinutes, &rep.UndertimeMinutes, &rep.HomeofficeDays,
		&rep.PlausibilityWarnings, &breakdown, &rep.GeneratedAt,
	)
	if err != nil {
		return nil, err
	}

	rep.Month = time.Month(month)
	if err := json.Unmarshal(breakdown, &rep.DailyBreakdown); err != nil {
		return nil, fmt.Errorf("unmarshal daily breakdown: %w", err)
	}

	return &rep, nil
}
