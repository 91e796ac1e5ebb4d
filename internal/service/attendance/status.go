package attendance

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/praxora/praxis-backend/internal/domain"
	"github.com/praxora/praxis-backend/pkg/ctxutil"
)

// Status returns the worker's current clock state. It is a pure read:
// safe to call after a timed-out clock action to learn what actually
// happened.
func (s *Service) Status(ctx context.Context) (*StatusResult, error) {
	practiceID, ok := ctxutil.PracticeIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	now := s.now()

	block, err := s.blocks.GetOpenByUser(ctx, practiceID, userID)
	switch {
	case errors.Is(err, domain.ErrNotFound):
		return &StatusResult{Status: domain.ClockStatusIdle, AsOf: now}, nil
	case errors.Is(err, domain.ErrInvariantViolation):
		// Corrupted state: more than one open block. Surface loudly,
		// never guess which block is the real one.
		s.log.ErrorContext(ctx, "multiple open blocks for worker",
			slog.String("user_id", userID.String()),
		)
		return nil, err
	case err != nil:
		return nil, fmt.Errorf("get open block: %w", err)
	}

	breakMin := block.BreakMinutes
	if block.OnBreak() {
		if running := int(now.Sub(*block.BreakStartedAt).Minutes()); running > 0 {
			breakMin += running
		}
	}
	worked := block.GrossMinutes(now) - breakMin
	if worked < 0 {
		worked = 0
	}

	if openFor := now.Sub(block.StartedAt); openFor > time.Duration(s.cfg.MaxBlockHours)*time.Hour {
		s.log.WarnContext(ctx, "block open past plausible duration, worker likely forgot to clock out",
			slog.String("user_id", userID.String()),
			slog.String("block_id", block.ID.String()),
			slog.Duration("open_for", openFor),
		)
	}

	return &StatusResult{
		Status:        block.ClockStatus(),
		Block:         block,
		WorkedMinutes: worked,
		BreakMinutes:  breakMin,
		AsOf:          now,
	}, nil
}
