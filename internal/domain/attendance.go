package domain

import (
	"time"

	"github.com/google/uuid"
)

// TimeStamp is a single raw clock event in the append-only ledger.
// Rows are never updated or deleted; ordering is by StampedAt per worker.
type TimeStamp struct {
	ID         uuid.UUID
	PracticeID uuid.UUID
	UserID     uuid.UUID
	Type       StampType
	StampedAt  time.Time
	Location   LocationType
	Comment    *string
	CreatedAt  time.Time
}

// TimeBlock is the work interval between a clock-in and its matching
// clock-out. Mutable while active, immutable once completed or cancelled.
type TimeBlock struct {
	ID         uuid.UUID
	PracticeID uuid.UUID
	UserID     uuid.UUID
	// BlockDate is the calendar date derived from StartedAt when the block
	// is opened. A block never spans dates in reporting, even if the worker
	// forgets to clock out.
	BlockDate time.Time
	StartedAt time.Time
	EndedAt   *time.Time
	Location  LocationType
	// BreakMinutes accumulates closed breaks. Mutated only under the
	// block's row lock, and only while the block is active.
	BreakMinutes int
	// BreakStartedAt marks a currently open break. At most one break is
	// open per block, and only while the block itself is open.
	BreakStartedAt *time.Time
	// NetMinutes is set on close: gross duration minus break minutes.
	NetMinutes   *int
	Status       BlockStatus
	Plausibility string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// IsOpen reports whether the block has no clock-out yet.
func (b *TimeBlock) IsOpen() bool {
	return b.Status == BlockStatusActive
}

// OnBreak reports whether the block has a currently open break.
func (b *TimeBlock) OnBreak() bool {
	return b.IsOpen() && b.BreakStartedAt != nil
}

// GrossMinutes returns the whole-minute duration between start and end.
// For an open block, now is used as the provisional end.
func (b *TimeBlock) GrossMinutes(now time.Time) int {
	end := now
	if b.EndedAt != nil {
		end = *b.EndedAt
	}
	return int(end.Sub(b.StartedAt).Minutes())
}

// ClockStatus derives the worker-facing state from the block.
// A nil receiver means no open block, i.e. idle.
func (b *TimeBlock) ClockStatus() ClockStatus {
	if b == nil || !b.IsOpen() {
		return ClockStatusIdle
	}
	if b.OnBreak() {
		return ClockStatusOnBreak
	}
	return ClockStatusWorking
}
