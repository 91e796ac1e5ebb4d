package attendance

import (
	"time"

	"github.com/praxora/praxis-backend/internal/domain"
)

// ClockResult is the outcome of a clock-in or clock-out action.
type ClockResult struct {
	Block  *domain.TimeBlock
	Stamp  *domain.TimeStamp
	Status domain.ClockStatus
}

// BreakResult is the outcome of starting or ending a break.
type BreakResult struct {
	Block  *domain.TimeBlock
	Stamp  *domain.TimeStamp
	Status domain.ClockStatus
}

// StatusResult is the worker's current clock state snapshot.
type StatusResult struct {
	Status domain.ClockStatus
	// Block is nil when the worker is idle.
	Block *domain.TimeBlock
	// WorkedMinutes is the provisional net time of the open block: gross
	// minus accumulated breaks, minus the running break if one is open.
	WorkedMinutes int
	// BreakMinutes includes the running break, if any.
	BreakMinutes int
	AsOf         time.Time
}
