// Package balances implements the balances pallet: the account to amount
// ledger and the transfer operation that moves funds between accounts.
package balances

import (
	"cmp"
	"errors"
	"maps"

	"github.com/luciocodeigniter/statechain/internal/numeric"
)

var (
	// ErrInsufficientBalance is returned when a transfer asks for more
	// than the caller holds.
	ErrInsufficientBalance = errors.New("balances: insufficient balance")

	// ErrOverflow is returned when a transfer would push the recipient's
	// balance past the amount type's range.
	ErrOverflow = errors.New("balances: overflow when adding to balance")
)

// Pallet is the fungible funds ledger. An account absent from the ledger
// holds a zero balance.
type Pallet[AccountID cmp.Ordered, Amount numeric.Unsigned] struct {
	balances map[AccountID]Amount
}

// New returns an empty ledger.
func New[AccountID cmp.Ordered, Amount numeric.Unsigned]() *Pallet[AccountID, Amount] {
	return &Pallet[AccountID, Amount]{
		balances: make(map[AccountID]Amount),
	}
}

// SetBalance overwrites account's balance unconditionally. This is the
// privileged genesis path: it bypasses dispatch and nonce accounting.
func (p *Pallet[AccountID, Amount]) SetBalance(account AccountID, amount Amount) {
	p.balances[account] = amount
}

// Balance returns account's balance, zero if the account was never funded.
func (p *Pallet[AccountID, Amount]) Balance(account AccountID) Amount {
	return p.balances[account]
}

// Transfer moves amount from caller to to. Both checks run against the
// pre-transfer balances before any write, so either both balances update or
// neither does.
func (p *Pallet[AccountID, Amount]) Transfer(caller, to AccountID, amount Amount) error {
	callerBalance := p.Balance(caller)
	toBalance := p.Balance(to)

	newCallerBalance, ok := numeric.SafeSub(callerBalance, amount)
	if !ok {
		return ErrInsufficientBalance
	}
	newToBalance, ok := numeric.SafeAdd(toBalance, amount)
	if !ok {
		return ErrOverflow
	}

	// A transfer to self must not mint or burn funds.
	if caller == to {
		return nil
	}

	p.balances[caller] = newCallerBalance
	p.balances[to] = newToBalance
	return nil
}

// Balances returns a copy of the ledger.
func (p *Pallet[AccountID, Amount]) Balances() map[AccountID]Amount {
	return maps.Clone(p.balances)
}
