package chain

// Dispatcher executes a single call on behalf of a caller.
//
// Each pallet implements it over its own call union, routing every variant
// to the state transition that handles it. The runtime implements it over
// the union of pallet unions, routing every variant to the owning pallet.
// A returned error describes why the call was refused; it never signals a
// partially applied state transition.
type Dispatcher[Caller, Call any] interface {
	Dispatch(caller Caller, call Call) error
}
