// Package runtime composes the system, balances, and proof of existence
// pallets into one deterministic state machine and drives block execution
// over them.
//
// The runtime is single threaded: one block executes to completion before
// the next is accepted. The only concurrent entry point, Prevalidate, is
// read only.
package runtime

import (
	"cmp"
	"log/slog"

	"github.com/luciocodeigniter/statechain/internal/balances"
	"github.com/luciocodeigniter/statechain/internal/metrics"
	"github.com/luciocodeigniter/statechain/internal/numeric"
	"github.com/luciocodeigniter/statechain/internal/poe"
	"github.com/luciocodeigniter/statechain/internal/system"
)

// Runtime owns every pallet's state. Its five type parameters are the
// single configuration threading one concrete type set through all pallets:
// AccountID identifies participants, BlockNumber and Nonce drive sequencing,
// Amount denominates balances, and Content fingerprints claims.
type Runtime[AccountID cmp.Ordered, BlockNumber, Nonce, Amount numeric.Unsigned, Content cmp.Ordered] struct {
	system   *system.Pallet[AccountID, BlockNumber, Nonce]
	balances *balances.Pallet[AccountID, Amount]
	poe      *poe.Pallet[AccountID, Content]

	logger  *slog.Logger
	metrics *metrics.Recorder
}

// Options carries the observability hooks of a Runtime. The zero value logs
// through slog.Default and records no metrics.
type Options struct {
	Logger  *slog.Logger
	Metrics *metrics.Recorder
}

// New returns a Runtime at genesis: every ledger empty, block number zero.
func New[AccountID cmp.Ordered, BlockNumber, Nonce, Amount numeric.Unsigned, Content cmp.Ordered](opts Options) *Runtime[AccountID, BlockNumber, Nonce, Amount, Content] {
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}
	return &Runtime[AccountID, BlockNumber, Nonce, Amount, Content]{
		system:   system.New[AccountID, BlockNumber, Nonce](),
		balances: balances.New[AccountID, Amount](),
		poe:      poe.New[AccountID, Content](),
		logger:   logger,
		metrics:  opts.Metrics,
	}
}

// System exposes the system pallet for height and nonce reads.
func (r *Runtime[AccountID, BlockNumber, Nonce, Amount, Content]) System() *system.Pallet[AccountID, BlockNumber, Nonce] {
	return r.system
}

// Balances exposes the balances pallet. Genesis setup writes through it
// directly, bypassing dispatch and nonce accounting.
func (r *Runtime[AccountID, BlockNumber, Nonce, Amount, Content]) Balances() *balances.Pallet[AccountID, Amount] {
	return r.balances
}

// ProofOfExistence exposes the proof of existence pallet.
func (r *Runtime[AccountID, BlockNumber, Nonce, Amount, Content]) ProofOfExistence() *poe.Pallet[AccountID, Content] {
	return r.poe
}
