package domain

// StampType is the kind of a ledger stamp event.
type StampType string

const (
	StampTypeStart      StampType = "start"
	StampTypeStop       StampType = "stop"
	StampTypePauseStart StampType = "pause_start"
	StampTypePauseEnd   StampType = "pause_end"
)

func (s StampType) String() string { return string(s) }

func (s StampType) IsValid() bool {
	switch s {
	case StampTypeStart, StampTypeStop, StampTypePauseStart, StampTypePauseEnd:
		return true
	}
	return false
}

// LocationType is where a work block is performed.
type LocationType string

const (
	LocationOffice     LocationType = "office"
	LocationHomeoffice LocationType = "homeoffice"
	LocationMobile     LocationType = "mobile"
)

func (l LocationType) String() string { return string(l) }

func (l LocationType) IsValid() bool {
	switch l {
	case LocationOffice, LocationHomeoffice, LocationMobile:
		return true
	}
	return false
}

// BlockStatus is the lifecycle status of a time block. Cancellation is a
// soft edit: blocks are never hard-deleted.
type BlockStatus string

const (
	BlockStatusActive    BlockStatus = "active"
	BlockStatusCompleted BlockStatus = "completed"
	BlockStatusCancelled BlockStatus = "cancelled"
)

func (s BlockStatus) String() string { return string(s) }

func (s BlockStatus) IsValid() bool {
	switch s {
	case BlockStatusActive, BlockStatusCompleted, BlockStatusCancelled:
		return true
	}
	return false
}

// ClockStatus is the worker's current state as surfaced to UI clients.
type ClockStatus string

const (
	ClockStatusIdle    ClockStatus = "idle"
	ClockStatusWorking ClockStatus = "working"
	ClockStatusOnBreak ClockStatus = "on_break"
)

func (s ClockStatus) String() string { return string(s) }

// PlausibilityOK is the marker value meaning a block passed all plausibility
// checks. Anything else counts as a warning in monthly reports. The checks
// themselves run outside this service; the value is consumed read-only.
const PlausibilityOK = "ok"
