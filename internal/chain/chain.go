// Package chain defines the block structure the runtime consumes and the
// dispatch contract that routes extrinsics to the pallet owning them.
package chain

import "github.com/luciocodeigniter/statechain/internal/numeric"

// Header carries the block number the supplier claims for a block.
type Header[BlockNumber numeric.Unsigned] struct {
	Number BlockNumber
}

// Extrinsic is one externally submitted instruction: the account it is
// attributed to and the call it requests.
type Extrinsic[Caller, Call any] struct {
	Caller Caller
	Call   Call
}

// Block is a header plus the ordered extrinsics to apply under it. Slice
// order is the chain's total order for the block.
type Block[BlockNumber numeric.Unsigned, Caller, Call any] struct {
	Header     Header[BlockNumber]
	Extrinsics []Extrinsic[Caller, Call]
}
