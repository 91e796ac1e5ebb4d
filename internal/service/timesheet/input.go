package timesheet

import (
	"time"

	"github.com/google/uuid"

	"github.com/praxora/praxis-backend/internal/domain"
)

// GenerateReportInput holds the parameters for generating a monthly report.
// A zero UserID means "for the caller".
type GenerateReportInput struct {
	UserID uuid.UUID
	Year   int
	Month  int
}

// Validate checks all fields and collects all errors.
func (i *GenerateReportInput) Validate() error {
	var errs []domain.FieldError

	if i.Year < 2000 || i.Year > 2100 {
		errs = append(errs, domain.FieldError{Field: "year", Message: "must be between 2000 and 2100"})
	}
	if i.Month < 1 || i.Month > 12 {
		errs = append(errs, domain.FieldError{Field: "month", Message: "must be between 1 and 12"})
	}
	if i.Year != 0 && i.Month != 0 {
		periodStart := time.Date(i.Year, time.Month(i.Month), 1, 0, 0, 0, 0, time.UTC)
		if periodStart.After(time.Now().UTC()) {
			errs = append(errs, domain.FieldError{Field: "month", Message: "period must not be in the future"})
		}
	}

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

// ListReportsInput holds the optional filters for listing reports.
type ListReportsInput struct {
	UserID uuid.UUID
	Year   int
	Month  int
}

// Validate checks all fields and collects all errors.
func (i *ListReportsInput) Validate() error {
	var errs []domain.FieldError

	if i.Year != 0 && (i.Year < 2000 || i.Year > 2100) {
		errs = append(errs, domain.FieldError{Field: "year", Message: "must be between 2000 and 2100"})
	}
	if i.Month != 0 && (i.Month < 1 || i.Month > 12) {
		errs = append(errs, domain.FieldError{Field: "month", Message: "must be between 1 and 12"})
	}
	if i.Month != 0 && i.Year == 0 {
		errs = append(errs, domain.FieldError{Field: "year", Message: "required when month is set"})
	}

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}
