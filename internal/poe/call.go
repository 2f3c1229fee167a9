package poe

import (
	"cmp"
	"fmt"
)

// Call is the closed set of operations the pallet accepts through dispatch.
// The unexported marker keeps the set closed to this package.
type Call[Content cmp.Ordered] interface {
	isCall()
}

// CreateClaim asks the pallet to record the dispatch caller as the owner
// of Claim.
type CreateClaim[Content cmp.Ordered] struct {
	Claim Content
}

// RevokeClaim asks the pallet to release the dispatch caller's claim.
type RevokeClaim[Content cmp.Ordered] struct {
	Claim Content
}

func (CreateClaim[Content]) isCall() {}
func (RevokeClaim[Content]) isCall() {}

// Dispatch routes call to the pallet operation that executes it.
func (p *Pallet[AccountID, Content]) Dispatch(caller AccountID, call Call[Content]) error {
	switch c := call.(type) {
	case CreateClaim[Content]:
		return p.CreateClaim(caller, c.Claim)
	case RevokeClaim[Content]:
		return p.RevokeClaim(caller, c.Claim)
	default:
		// Unreachable while the call set above stays closed.
		return fmt.Errorf("poe: unhandled call %T", call)
	}
}
