package statechain

import (
	"log/slog"
	"maps"
	"slices"

	"github.com/luciocodeigniter/statechain/internal/balances"
	"github.com/luciocodeigniter/statechain/internal/chain"
	"github.com/luciocodeigniter/statechain/internal/config"
	"github.com/luciocodeigniter/statechain/internal/metrics"
	"github.com/luciocodeigniter/statechain/internal/poe"
	"github.com/luciocodeigniter/statechain/internal/runtime"
)

// The concrete type set the CLI threads through the runtime: accounts and
// claimed content are strings, every counter and amount is a uint64.
type (
	ledgerRuntime   = runtime.Runtime[string, uint64, uint64, uint64, string]
	ledgerCall      = runtime.Call[string, uint64, string]
	ledgerSnapshot  = runtime.Snapshot[string, uint64, uint64, uint64, string]
	ledgerBlock     = chain.Block[uint64, string, ledgerCall]
	ledgerHeader    = chain.Header[uint64]
	ledgerExtrinsic = chain.Extrinsic[string, ledgerCall]
)

// newRuntime builds a genesis runtime with the configured balances endowed
// through the privileged SetBalance path.
func newRuntime(genesis config.GenesisConfig, recorder *metrics.Recorder) *ledgerRuntime {
	rt := runtime.New[string, uint64, uint64, uint64, string](runtime.Options{
		Logger:  slog.Default(),
		Metrics: recorder,
	})
	for account, balance := range genesis.Balances {
		rt.Balances().SetBalance(account, balance)
	}
	return rt
}

// buildBlocks converts scripted blocks into runtime blocks, numbering the
// headers consecutively from the height after from.
func buildBlocks(from uint64, blocks []config.BlockConfig) []ledgerBlock {
	out := make([]ledgerBlock, 0, len(blocks))
	for i, blockCfg := range blocks {
		block := ledgerBlock{
			Header: ledgerHeader{Number: from + uint64(i) + 1},
		}
		for _, extrinsic := range blockCfg.Extrinsics {
			block.Extrinsics = append(block.Extrinsics, ledgerExtrinsic{
				Caller: extrinsic.Caller,
				Call:   buildCall(extrinsic),
			})
		}
		out = append(out, block)
	}
	return out
}

// buildCall maps a scripted extrinsic to the runtime call it requests.
// Configuration validation guarantees exactly one call field is set.
func buildCall(extrinsic config.ExtrinsicConfig) ledgerCall {
	switch {
	case extrinsic.Transfer != nil:
		return runtime.BalancesCall[string, uint64, string]{
			Call: balances.Transfer[string, uint64]{
				To:     extrinsic.Transfer.To,
				Amount: extrinsic.Transfer.Amount,
			},
		}
	case extrinsic.CreateClaim != nil:
		return runtime.ProofOfExistenceCall[string, uint64, string]{
			Call: poe.CreateClaim[string]{Claim: extrinsic.CreateClaim.Claim},
		}
	case extrinsic.RevokeClaim != nil:
		return runtime.ProofOfExistenceCall[string, uint64, string]{
			Call: poe.RevokeClaim[string]{Claim: extrinsic.RevokeClaim.Claim},
		}
	default:
		return nil
	}
}

// logSnapshot dumps the final ledger state in deterministic order.
func logSnapshot(snap ledgerSnapshot) {
	slog.Info("Chain state", "height", snap.BlockNumber)
	for _, account := range slices.Sorted(maps.Keys(snap.Balances)) {
		slog.Info("Balance", "account", account, "amount", snap.Balances[account])
	}
	for _, account := range slices.Sorted(maps.Keys(snap.Nonces)) {
		slog.Info("Nonce", "account", account, "nonce", snap.Nonces[account])
	}
	for _, content := range slices.Sorted(maps.Keys(snap.Claims)) {
		slog.Info("Claim", "content", content, "owner", snap.Claims[content])
	}
}
