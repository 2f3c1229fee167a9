package balances

import (
	"cmp"
	"fmt"

	"github.com/luciocodeigniter/statechain/internal/numeric"
)

// Call is the closed set of operations the pallet accepts through dispatch.
// The unexported marker keeps the set closed to this package.
type Call[AccountID cmp.Ordered, Amount numeric.Unsigned] interface {
	isCall()
}

// Transfer asks the pallet to move Amount from the dispatch caller to To.
type Transfer[AccountID cmp.Ordered, Amount numeric.Unsigned] struct {
	To     AccountID
	Amount Amount
}

func (Transfer[AccountID, Amount]) isCall() {}

// Dispatch routes call to the pallet operation that executes it.
func (p *Pallet[AccountID, Amount]) Dispatch(caller AccountID, call Call[AccountID, Amount]) error {
	switch c := call.(type) {
	case Transfer[AccountID, Amount]:
		return p.Transfer(caller, c.To, c.Amount)
	default:
		// Unreachable while the call set above stays closed.
		return fmt.Errorf("balances: unhandled call %T", call)
	}
}
