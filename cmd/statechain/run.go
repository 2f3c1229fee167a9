package statechain

import (
	"log/slog"
	"os"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/luciocodeigniter/statechain/internal/config"
	"github.com/luciocodeigniter/statechain/internal/metrics"
)

var runShowMetrics bool

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Execute the configured blocks against a fresh runtime",
	Long:  "run endows the configured genesis balances, executes the scripted blocks in order, and dumps the final ledger state. Without configured blocks it runs the built-in sample scenario.",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runChain()
	},
}

func init() {
	runCmd.Flags().BoolVar(&runShowMetrics, "metrics", false, "dump execution counters on exit")
	rootCmd.AddCommand(runCmd)
}

func runChain() error {
	genesis := cfg.Genesis
	blocks := cfg.Blocks
	if len(blocks) == 0 {
		slog.Info("No blocks configured, running the built-in sample scenario")
		sample := config.Sample()
		genesis = sample.Genesis
		blocks = sample.Blocks
	}

	recorder := metrics.NewRecorder()
	rt := newRuntime(genesis, recorder)

	for _, block := range buildBlocks(rt.System().BlockNumber(), blocks) {
		if err := rt.ExecuteBlock(block); err != nil {
			return errors.WithMessagef(err, "failed to execute block %d", block.Header.Number)
		}
	}

	logSnapshot(rt.Snapshot())

	if runShowMetrics {
		if err := recorder.WriteText(os.Stdout); err != nil {
			return errors.WithMessage(err, "failed to dump metrics")
		}
	}
	return nil
}
