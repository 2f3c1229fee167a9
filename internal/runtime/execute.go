package runtime

import (
	"errors"
	"fmt"

	"github.com/luciocodeigniter/statechain/internal/chain"
)

// ErrBlockNumberMismatch is returned when a block's header number does not
// match the height the runtime advanced to. The whole block is rejected.
var ErrBlockNumberMismatch = errors.New("runtime: block number mismatch")

// ExecuteBlock applies one block against the runtime.
//
// The block number is incremented before the header is validated: the
// counter is the runtime's own clock, independent of what the supplier
// claims. A header mismatch rejects the block before any extrinsic runs,
// and the increment is kept.
//
// Extrinsics run in slice order. Each one consumes its caller's nonce
// before dispatch, whether or not the call succeeds. A failed dispatch is
// logged and counted, then execution moves on: one bad extrinsic never
// aborts the block or touches its neighbours' effects.
func (r *Runtime[AccountID, BlockNumber, Nonce, Amount, Content]) ExecuteBlock(block chain.Block[BlockNumber, AccountID, Call[AccountID, Amount, Content]]) error {
	r.system.IncrementBlockNumber()

	height := r.system.BlockNumber()
	if block.Header.Number != height {
		return fmt.Errorf("%w: header claims %v, runtime is at %v", ErrBlockNumberMismatch, block.Header.Number, height)
	}

	r.logger.Info("Executing block", "height", height, "extrinsics", len(block.Extrinsics))

	for i, extrinsic := range block.Extrinsics {
		r.system.IncrementNonce(extrinsic.Caller)

		if err := r.Dispatch(extrinsic.Caller, extrinsic.Call); err != nil {
			r.logger.Error("Extrinsic failed",
				"height", height,
				"extrinsic", i,
				"caller", extrinsic.Caller,
				"error", err)
			r.metrics.ExtrinsicFailed(err.Error())
			continue
		}
		r.metrics.ExtrinsicApplied()
	}

	r.metrics.BlockExecuted()
	return nil
}
