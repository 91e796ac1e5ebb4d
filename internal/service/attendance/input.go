package attendance

import (
	"time"

	"github.com/praxora/praxis-backend/internal/domain"
)

const maxCommentLen = 500

// ClockInInput holds the parameters for opening a work block.
type ClockInInput struct {
	Location domain.LocationType
	Comment  *string
}

// Validate checks all fields and collects all errors.
func (i *ClockInInput) Validate() error {
	var errs []domain.FieldError

	if !i.Location.IsValid() {
		errs = append(errs, domain.FieldError{Field: "location", Message: "must be office, homeoffice, or mobile"})
	}
	if i.Comment != nil && len(*i.Comment) > maxCommentLen {
		errs = append(errs, domain.FieldError{Field: "comment", Message: "max 500 characters"})
	}

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

// ClockOutInput holds the parameters for closing the open work block.
type ClockOutInput struct {
	Comment *string
}

// Validate checks all fields and collects all errors.
func (i *ClockOutInput) Validate() error {
	if i.Comment != nil && len(*i.Comment) > maxCommentLen {
		return domain.NewValidationError("comment", "max 500 characters")
	}
	return nil
}

// ListBlocksInput holds the parameters for the worker's block history.
type ListBlocksInput struct {
	From time.Time
	To   time.Time
}

// Validate checks all fields and collects all errors.
func (i *ListBlocksInput) Validate() error {
	var errs []domain.FieldError

	if i.From.IsZero() {
		errs = append(errs, domain.FieldError{Field: "from", Message: "required"})
	}
	if i.To.IsZero() {
		errs = append(errs, domain.FieldError{Field: "to", Message: "required"})
	}
	if !i.From.IsZero() && !i.To.IsZero() {
		if i.To.Before(i.From) {
			errs = append(errs, domain.FieldError{Field: "to", Message: "must not be before from"})
		} else if i.To.Sub(i.From) > 366*24*time.Hour {
			errs = append(errs, domain.FieldError{Field: "to", Message: "range too large, max 1 year"})
		}
	}

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}
