package statechain

import (
	"context"
	"fmt"
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/luciocodeigniter/statechain/internal/config"
	"github.com/luciocodeigniter/statechain/internal/metrics"
)

func testSimConfig() config.SimulationConfig {
	return config.SimulationConfig{
		Accounts:           4,
		Blocks:             10,
		ExtrinsicsPerBlock: 5,
		Seed:               7,
		Concurrency:        2,
		Endowment:          1000,
	}
}

func testAccounts(n int) []string {
	accounts := make([]string, n)
	for i := range accounts {
		accounts[i] = fmt.Sprintf("account-%03d", i)
	}
	return accounts
}

func TestGenerateBlocksIsDeterministic(t *testing.T) {
	sim := testSimConfig()
	accounts := testAccounts(sim.Accounts)

	first := generateBlocks(rand.New(rand.NewPCG(sim.Seed, 0)), accounts, sim)
	second := generateBlocks(rand.New(rand.NewPCG(sim.Seed, 0)), accounts, sim)

	assert.Equal(t, first, second)
}

func TestGenerateBlocksShape(t *testing.T) {
	sim := testSimConfig()
	accounts := testAccounts(sim.Accounts)
	known := make(map[string]bool, len(accounts))
	for _, account := range accounts {
		known[account] = true
	}

	blocks := generateBlocks(rand.New(rand.NewPCG(sim.Seed, 0)), accounts, sim)

	require.Len(t, blocks, sim.Blocks)
	for i, block := range blocks {
		assert.Equal(t, uint64(i+1), block.Header.Number)
		require.Len(t, block.Extrinsics, sim.ExtrinsicsPerBlock)
		for _, extrinsic := range block.Extrinsics {
			assert.True(t, known[extrinsic.Caller])
			assert.NotNil(t, extrinsic.Call)
		}
	}
}

func TestGeneratedWorkloadExecutes(t *testing.T) {
	sim := testSimConfig()
	accounts := testAccounts(sim.Accounts)

	genesis := config.GenesisConfig{Balances: make(map[string]uint64, len(accounts))}
	for _, account := range accounts {
		genesis.Balances[account] = sim.Endowment
	}
	rt := newRuntime(genesis, metrics.NewRecorder())

	blocks := generateBlocks(rand.New(rand.NewPCG(sim.Seed, 0)), accounts, sim)
	require.NoError(t, rt.Prevalidate(context.Background(), blocks, sim.Concurrency))

	for _, block := range blocks {
		require.NoError(t, rt.ExecuteBlock(block))
	}

	snap := rt.Snapshot()
	assert.Equal(t, uint64(sim.Blocks), snap.BlockNumber)

	// Endowed funds only move around; the workload never mints.
	var total uint64
	for _, balance := range snap.Balances {
		total += balance
	}
	assert.Equal(t, uint64(sim.Accounts)*sim.Endowment, total)
}
