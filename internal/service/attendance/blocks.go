package attendance

import (
	"context"
	"fmt"

	"github.com/praxora/praxis-backend/internal/domain"
	"github.com/praxora/praxis-backend/pkg/ctxutil"
)

// ListBlocks returns the caller's non-cancelled blocks with block_date in
// [input.From, input.To], newest first. Backs the worker's month view.
func (s *Service) ListBlocks(ctx context.Context, input ListBlocksInput) ([]*domain.TimeBlock, error) {
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

	blocks, err := s.blocks.ListByUserInRange(ctx, practiceID, userID, input.From, input.To)
	if err != nil {
		return nil, fmt.Errorf("list blocks: %w", err)
	}

	return blocks, nil
}

// ListStamps returns the caller's raw ledger stamps with both range dates
// inclusive, matching how block listings treat the range. Exposed for audit
// views; the ledger itself is append-only.
func (s *Service) ListStamps(ctx context.Context, input ListBlocksInput) ([]*domain.TimeStamp, error) {
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

	// The store query is half-open on the upper bound, so advance it one
	// day to keep stamps from the final date of the range.
	stamps, err := s.stamps.ListByUser(ctx, practiceID, userID, input.From, input.To.AddDate(0, 0, 1))
	if err != nil {
		return nil, fmt.Errorf("list stamps: %w", err)
	}

	return stamps, nil
}
