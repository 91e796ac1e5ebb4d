package attendance

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/praxora/praxis-backend/internal/domain"
	"github.com/praxora/praxis-backend/pkg/ctxutil"
)

// ClockOut closes the worker's open block: an open break is auto-closed at
// the clock-out instant, net minutes are computed as gross minus breaks,
// and a stop stamp is appended. Without an open block it fails with
// domain.ErrNoOpenBlock.
func (s *Service) ClockOut(ctx context.Context, input ClockOutInput) (*ClockResult, error) {
	practiceID, ok := ctxutil.PracticeIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	now := s.now()

	var result ClockResult
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		block, err := s.blocks.GetOpenByUserForUpdate(txCtx, practiceID, userID)
		if err != nil {
			if errors.Is(err, domain.ErrNotFound) {
				return domain.ErrNoOpenBlock
			}
			return fmt.Errorf("get open block: %w", err)
		}

		// A break still running at clock-out ends implicitly at the
		// clock-out instant. The ledger records the pause end so the
		// stamps alone still replay to the same block.
		if block.OnBreak() {
			breakMin := int(now.Sub(*block.BreakStartedAt).Minutes())
			if breakMin < 0 {
				return fmt.Errorf("break started after clock-out instant: %w", domain.ErrInvariantViolation)
			}
			block.BreakMinutes += breakMin
			block.BreakStartedAt = nil

			if _, err := s.stamps.Create(txCtx, &domain.TimeStamp{
				PracticeID: practiceID,
				UserID:     userID,
				Type:       domain.StampTypePauseEnd,
				StampedAt:  now,
				Location:   block.Location,
			}); err != nil {
				return fmt.Errorf("create pause_end stamp: %w", err)
			}
		}

		gross := block.GrossMinutes(now)
		net := gross - block.BreakMinutes
		if net < 0 {
			return fmt.Errorf("breaks (%dm) exceed gross time (%dm): %w",
				block.BreakMinutes, gross, domain.ErrInvariantViolation)
		}

		block.EndedAt = &now
		block.NetMinutes = &net
		block.Status = domain.BlockStatusCompleted

		if err := s.blocks.Update(txCtx, block); err != nil {
			return fmt.Errorf("close block: %w", err)
		}

		stamp, err := s.stamps.Create(txCtx, &domain.TimeStamp{
			PracticeID: practiceID,
			UserID:     userID,
			Type:       domain.StampTypeStop,
			StampedAt:  now,
			Location:   block.Location,
			Comment:    input.Comment,
		})
		if err != nil {
			return fmt.Errorf("create stop stamp: %w", err)
		}

		result = ClockResult{Block: block, Stamp: stamp, Status: domain.ClockStatusIdle}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.log.InfoContext(ctx, "worker clocked out",
		slog.String("user_id", userID.String()),
		slog.String("block_id", result.Block.ID.String()),
		slog.Int("net_minutes", *result.Block.NetMinutes),
		slog.Int("break_minutes", result.Block.BreakMinutes),
	)

	return &result, nil
}
