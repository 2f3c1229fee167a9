package runtime

import (
	"cmp"

	"github.com/luciocodeigniter/statechain/internal/numeric"
)

// Snapshot is a copy of every ledger at one point in time, for state dumps
// and assertions. The maps are copies; mutating them does not touch the
// runtime.
type Snapshot[AccountID cmp.Ordered, BlockNumber, Nonce, Amount numeric.Unsigned, Content cmp.Ordered] struct {
	BlockNumber BlockNumber
	Balances    map[AccountID]Amount
	Nonces      map[AccountID]Nonce
	Claims      map[Content]AccountID
}

// Snapshot captures the current state of every pallet.
func (r *Runtime[AccountID, BlockNumber, Nonce, Amount, Content]) Snapshot() Snapshot[AccountID, BlockNumber, Nonce, Amount, Content] {
	return Snapshot[AccountID, BlockNumber, Nonce, Amount, Content]{
		BlockNumber: r.system.BlockNumber(),
		Balances:    r.balances.Balances(),
		Nonces:      r.system.Nonces(),
		Claims:      r.poe.Claims(),
	}
}
