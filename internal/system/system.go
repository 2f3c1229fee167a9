// Package system implements the system pallet: the global block counter and
// the per-account nonces the rest of the runtime sequences against.
package system

import (
	"cmp"
	"fmt"
	"maps"

	"github.com/luciocodeigniter/statechain/internal/numeric"
)

// Pallet tracks the current block number and how many extrinsics each
// account has submitted. It exposes no dispatchable calls; the runtime
// drives it directly during block execution.
type Pallet[AccountID cmp.Ordered, BlockNumber, Nonce numeric.Unsigned] struct {
	blockNumber BlockNumber
	nonces      map[AccountID]Nonce
}

// New returns a pallet at genesis: block number zero, no recorded nonces.
func New[AccountID cmp.Ordered, BlockNumber, Nonce numeric.Unsigned]() *Pallet[AccountID, BlockNumber, Nonce] {
	return &Pallet[AccountID, BlockNumber, Nonce]{
		nonces: make(map[AccountID]Nonce),
	}
}

// BlockNumber returns the current block number.
func (p *Pallet[AccountID, BlockNumber, Nonce]) BlockNumber() BlockNumber {
	return p.blockNumber
}

// IncrementBlockNumber advances the chain by one block. The counter never
// decreases. Overflow means the height space is exhausted, which the system
// is not designed to survive, so it panics rather than returning an error.
func (p *Pallet[AccountID, BlockNumber, Nonce]) IncrementBlockNumber() {
	next, ok := numeric.SafeAdd(p.blockNumber, 1)
	if !ok {
		panic(fmt.Sprintf("system: block number overflow past %v", p.blockNumber))
	}
	p.blockNumber = next
}

// Nonce returns the number of extrinsics recorded for account, zero if the
// account never submitted one.
func (p *Pallet[AccountID, BlockNumber, Nonce]) Nonce(account AccountID) Nonce {
	return p.nonces[account]
}

// IncrementNonce records one more extrinsic attributed to account. It runs
// before dispatch, so a failing call still consumes its sequence slot.
// Overflow panics under the same discipline as the block counter.
func (p *Pallet[AccountID, BlockNumber, Nonce]) IncrementNonce(account AccountID) {
	next, ok := numeric.SafeAdd(p.nonces[account], 1)
	if !ok {
		panic(fmt.Sprintf("system: nonce overflow for account %v", account))
	}
	p.nonces[account] = next
}

// Nonces returns a copy of the nonce ledger.
func (p *Pallet[AccountID, BlockNumber, Nonce]) Nonces() map[AccountID]Nonce {
	return maps.Clone(p.nonces)
}
