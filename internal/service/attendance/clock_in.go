package attendance

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/praxora/praxis-backend/internal/domain"
	"github.com/praxora/praxis-backend/pkg/ctxutil"
)

// ClockIn opens a new work block for the calling worker and appends a
// start stamp to the ledger. The partial unique index on open blocks makes
// this safe under concurrent double-taps: the second attempt fails with
// domain.ErrAlreadyClockedIn and writes nothing.
func (s *Service) ClockIn(ctx context.Context, input ClockInInput) (*ClockResult, error) {
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
		// The block insert goes first: if the worker is already clocked
		// in, the unique index rejects it before any stamp is written.
		block, err := s.blocks.CreateOpen(txCtx, &domain.TimeBlock{
			PracticeID: practiceID,
			UserID:     userID,
			BlockDate:  blockDate(now),
			StartedAt:  now,
			Location:   input.Location,
		})
		if err != nil {
			return fmt.Errorf("create open block: %w", err)
		}

		stamp, err := s.stamps.Create(txCtx, &domain.TimeStamp{
			PracticeID: practiceID,
			UserID:     userID,
			Type:       domain.StampTypeStart,
			StampedAt:  now,
			Location:   input.Location,
			Comment:    input.Comment,
		})
		if err != nil {
			return fmt.Errorf("create start stamp: %w", err)
		}

		result = ClockResult{Block: block, Stamp: stamp, Status: domain.ClockStatusWorking}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.log.InfoContext(ctx, "worker clocked in",
		slog.String("user_id", userID.String()),
		slog.String("location", input.Location.String()),
		slog.String("block_id", result.Block.ID.String()),
	)

	return &result, nil
}
