package runtime

import (
	"context"
	"errors"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/luciocodeigniter/statechain/internal/chain"
	"github.com/luciocodeigniter/statechain/internal/numeric"
)

// ErrMissingCall is returned by Prevalidate for an extrinsic that carries
// no call.
var ErrMissingCall = errors.New("runtime: extrinsic has no call")

// Prevalidate checks that a batch of pending blocks could execute in order
// on top of the current height, without touching any ledger. Headers must
// form the strictly increasing sequence height+1, height+2, ... and every
// extrinsic must carry a call.
//
// Checks run in parallel, bounded by maxConcurrency. Execution itself must
// stay serial; this only front-loads the cheap structural rejections.
func (r *Runtime[AccountID, BlockNumber, Nonce, Amount, Content]) Prevalidate(ctx context.Context, blocks []chain.Block[BlockNumber, AccountID, Call[AccountID, Amount, Content]], maxConcurrency int) error {
	if maxConcurrency < 1 {
		maxConcurrency = 1
	}

	eg, groupCtx := errgroup.WithContext(ctx)
	sem := make(chan struct{}, maxConcurrency)

	expected := r.system.BlockNumber()
	for i, block := range blocks {
		// A cancelled group means a check already failed or the caller
		// gave up; stop spawning and let Wait report which it was.
		if groupCtx.Err() != nil {
			break
		}

		next, ok := numeric.SafeAdd(expected, 1)
		if !ok {
			return fmt.Errorf("runtime: block sequence overflows the height type at index %d", i)
		}
		expected = next

		index := i
		want := expected
		candidate := block
		sem <- struct{}{}

		eg.Go(func() error {
			defer func() { <-sem }()

			if candidate.Header.Number != want {
				return fmt.Errorf("%w: block at index %d claims %v, want %v",
					ErrBlockNumberMismatch, index, candidate.Header.Number, want)
			}
			for j, extrinsic := range candidate.Extrinsics {
				if extrinsic.Call == nil {
					return fmt.Errorf("%w: block at index %d, extrinsic %d", ErrMissingCall, index, j)
				}
			}
			return nil
		})
	}

	if err := eg.Wait(); err != nil {
		return fmt.Errorf("pre-validation failed: %w", err)
	}
	// No check failed, but a cancelled caller may have cut the loop short.
	return ctx.Err()
}
