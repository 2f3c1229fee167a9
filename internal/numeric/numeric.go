// Package numeric provides overflow-checked arithmetic over the unsigned
// integer types used for balances, nonces, and block heights.
package numeric

import "golang.org/x/exp/constraints"

// Unsigned is the set of types eligible for ledger arithmetic. Restricting
// the set to builtin unsigned integers gives every value copy semantics and
// a zero value usable as the additive identity.
type Unsigned = constraints.Unsigned

// SafeAdd returns x + y and reports whether the sum stayed within the
// type's range.
func SafeAdd[T Unsigned](x, y T) (T, bool) {
	sum := x + y
	if sum < x {
		return 0, false
	}
	return sum, true
}

// SafeSub returns x - y and reports whether the difference stayed at or
// above zero.
func SafeSub[T Unsigned](x, y T) (T, bool) {
	if y > x {
		return 0, false
	}
	return x - y, true
}
