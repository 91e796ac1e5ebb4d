package domain

import (
	"testing"
	"time"
)

func TestTimeBlock_ClockStatus(t *testing.T) {
	t.Parallel()

	now := time.Now()

	var nilBlock *TimeBlock
	if got := nilBlock.ClockStatus(); got != ClockStatusIdle {
		t.Errorf("nil block: got %s, want %s", got, ClockStatusIdle)
	}

	working := &TimeBlock{Status: BlockStatusActive, StartedAt: now}
	if got := working.ClockStatus(); got != ClockStatusWorking {
		t.Errorf("active block: got %s, want %s", got, ClockStatusWorking)
	}

	onBreak := &TimeBlock{Status: BlockStatusActive, StartedAt: now, BreakStartedAt: &now}
	if got := onBreak.ClockStatus(); got != ClockStatusOnBreak {
		t.Errorf("active block with open break: got %s, want %s", got, ClockStatusOnBreak)
	}

	ended := now.Add(8 * time.Hour)
	completed := &TimeBlock{Status: BlockStatusCompleted, StartedAt: now, EndedAt: &ended}
	if got := completed.ClockStatus(); got != ClockStatusIdle {
		t.Errorf("completed block: got %s, want %s", got, ClockStatusIdle)
	}
}

func TestTimeBlock_OnBreak_RequiresOpenBlock(t *testing.T) {
	t.Parallel()

	now := time.Now()
	ended := now.Add(time.Hour)

	// A completed block can never be on break, even with a stale marker.
	b := &TimeBlock{Status: BlockStatusCompleted, StartedAt: now, EndedAt: &ended, BreakStartedAt: &now}
	if b.OnBreak() {
		t.Error("completed block must not report OnBreak")
	}
}

func TestTimeBlock_GrossMinutes(t *testing.T) {
	t.Parallel()

	start := time.Date(2026, time.March, 3, 8, 0, 0, 0, time.UTC)
	end := start.Add(8*time.Hour + 30*time.Minute)

	closed := &TimeBlock{StartedAt: start, EndedAt: &end}
	if got := closed.GrossMinutes(time.Now()); got != 510 {
		t.Errorf("closed block gross: got %d, want 510", got)
	}

	open := &TimeBlock{StartedAt: start}
	now := start.Add(95 * time.Minute)
	if got := open.GrossMinutes(now); got != 95 {
		t.Errorf("open block gross at now: got %d, want 95", got)
	}

	// Sub-minute remainders truncate to whole minutes.
	now = start.Add(95*time.Minute + 59*time.Second)
	if got := open.GrossMinutes(now); got != 95 {
		t.Errorf("gross must truncate: got %d, want 95", got)
	}
}

func TestMonthlyReport_Period(t *testing.T) {
	t.Parallel()

	r := &MonthlyReport{Year: 2026, Month: time.December}

	wantStart := time.Date(2026, time.December, 1, 0, 0, 0, 0, time.UTC)
	if got := r.PeriodStart(); !got.Equal(wantStart) {
		t.Errorf("PeriodStart: got %v, want %v", got, wantStart)
	}

	wantEnd := time.Date(2027, time.January, 1, 0, 0, 0, 0, time.UTC)
	if got := r.PeriodEnd(); !got.Equal(wantEnd) {
		t.Errorf("PeriodEnd: got %v, want %v", got, wantEnd)
	}
}
