package attendance

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/praxora/praxis-backend/internal/domain"
	"github.com/praxora/praxis-backend/pkg/ctxutil"
)

// StartBreak opens a break on the worker's open block and appends a
// pause_start stamp. Fails with domain.ErrNotWorking when the worker has
// no open block and domain.ErrBreakAlreadyOpen when a break is running.
func (s *Service) StartBreak(ctx context.Context) (*BreakResult, error) {
	practiceID, ok := ctxutil.PracticeIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	now := s.now()

	var result BreakResult
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		block, err := s.blocks.GetOpenByUserForUpdate(txCtx, practiceID, userID)
		if err != nil {
			if errors.Is(err, domain.ErrNotFound) {
				return domain.ErrNotWorking
			}
			return fmt.Errorf("get open block: %w", err)
		}
		if block.OnBreak() {
			return domain.ErrBreakAlreadyOpen
		}

		block.BreakStartedAt = &now
		if err := s.blocks.Update(txCtx, block); err != nil {
			return fmt.Errorf("mark break open: %w", err)
		}

		stamp, err := s.stamps.Create(txCtx, &domain.TimeStamp{
			PracticeID: practiceID,
			UserID:     userID,
			Type:       domain.StampTypePauseStart,
			StampedAt:  now,
			Location:   block.Location,
		})
		if err != nil {
			return fmt.Errorf("create pause_start stamp: %w", err)
		}

		result = BreakResult{Block: block, Stamp: stamp, Status: domain.ClockStatusOnBreak}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.log.InfoContext(ctx, "break started",
		slog.String("user_id", userID.String()),
		slog.String("block_id", result.Block.ID.String()),
	)

	return &result, nil
}

// EndBreak closes the running break, rolling its whole minutes into the
// block's break counter, and appends a pause_end stamp. Fails with
// domain.ErrNotWorking when idle and domain.ErrNoOpenBreak when no break
// is running.
func (s *Service) EndBreak(ctx context.Context) (*BreakResult, error) {
	practiceID, ok := ctxutil.PracticeIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	now := s.now()

	var result BreakResult
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		block, err := s.blocks.GetOpenByUserForUpdate(txCtx, practiceID, userID)
		if err != nil {
			if errors.Is(err, domain.ErrNotFound) {
				return domain.ErrNotWorking
			}
			return fmt.Errorf("get open block: %w", err)
		}
		if !block.OnBreak() {
			return domain.ErrNoOpenBreak
		}

		breakMin := int(now.Sub(*block.BreakStartedAt).Minutes())
		if breakMin < 0 {
			return fmt.Errorf("break started in the future: %w", domain.ErrInvariantViolation)
		}

		block.BreakMinutes += breakMin
		block.BreakStartedAt = nil
		if err := s.blocks.Update(txCtx, block); err != nil {
			return fmt.Errorf("close break: %w", err)
		}

		stamp, err := s.stamps.Create(txCtx, &domain.TimeStamp{
			PracticeID: practiceID,
			UserID:     userID,
			Type:       domain.StampTypePauseEnd,
			StampedAt:  now,
			Location:   block.Location,
		})
		if err != nil {
			return fmt.Errorf("create pause_end stamp: %w", err)
		}

		result = BreakResult{Block: block, Stamp: stamp, Status: domain.ClockStatusWorking}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.log.InfoContext(ctx, "break ended",
		slog.String("user_id", userID.String()),
		slog.String("block_id", result.Block.ID.String()),
		slog.Int("break_minutes", result.Block.BreakMinutes),
	)

	return &result, nil
}
