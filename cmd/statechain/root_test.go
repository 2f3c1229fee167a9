package statechain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRootCommandRunsSampleScenario(t *testing.T) {
	rootCmd.SetArgs([]string{"run"})

	require.NoError(t, rootCmd.Execute())

	assert.Equal(t, "info", cfg.Logging.Level)
	assert.Equal(t, "text", cfg.Logging.Format)
	assert.Equal(t, 8, cfg.Simulation.Accounts)
	assert.Empty(t, cfg.Blocks)
}

func TestRootCommandBindsLoggingFlags(t *testing.T) {
	rootCmd.SetArgs([]string{"run", "--log-level", "debug", "--log-format", "json"})

	require.NoError(t, rootCmd.Execute())

	assert.Equal(t, "debug", cfg.Logging.Level)
	assert.Equal(t, "json", cfg.Logging.Format)
}
