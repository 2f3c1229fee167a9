package runtime

import (
	"cmp"
	"fmt"

	"github.com/luciocodeigniter/statechain/internal/balances"
	"github.com/luciocodeigniter/statechain/internal/numeric"
	"github.com/luciocodeigniter/statechain/internal/poe"
)

// Call is the closed union of every pallet's dispatchable operations. Each
// variant wraps one pallet's own call union; the unexported marker keeps the
// set closed to this package.
type Call[AccountID cmp.Ordered, Amount numeric.Unsigned, Content cmp.Ordered] interface {
	isCall()
}

// BalancesCall wraps a balances pallet call.
type BalancesCall[AccountID cmp.Ordered, Amount numeric.Unsigned, Content cmp.Ordered] struct {
	Call balances.Call[AccountID, Amount]
}

// ProofOfExistenceCall wraps a proof of existence pallet call.
type ProofOfExistenceCall[AccountID cmp.Ordered, Amount numeric.Unsigned, Content cmp.Ordered] struct {
	Call poe.Call[Content]
}

func (BalancesCall[AccountID, Amount, Content]) isCall()         {}
func (ProofOfExistenceCall[AccountID, Amount, Content]) isCall() {}

// Dispatch routes call to the pallet that owns it and returns the pallet's
// result unchanged.
func (r *Runtime[AccountID, BlockNumber, Nonce, Amount, Content]) Dispatch(caller AccountID, call Call[AccountID, Amount, Content]) error {
	switch c := call.(type) {
	case BalancesCall[AccountID, Amount, Content]:
		return r.balances.Dispatch(caller, c.Call)
	case ProofOfExistenceCall[AccountID, Amount, Content]:
		return r.poe.Dispatch(caller, c.Call)
	default:
		// Unreachable while the call set above stays closed.
		return fmt.Errorf("runtime: unhandled call %T", call)
	}
}
