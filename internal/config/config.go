// Package config describes everything the CLI feeds the runtime: logging
// setup, genesis balances, scripted blocks, and simulation parameters.
package config

import (
	"fmt"

	"github.com/pkg/errors"
	"github.com/spf13/viper"
)

// Config is the root of the configuration file.
type Config struct {
	Logging    LoggingConfig    `mapstructure:"logging"`
	Genesis    GenesisConfig    `mapstructure:"genesis"`
	Blocks     []BlockConfig    `mapstructure:"blocks"`
	Simulation SimulationConfig `mapstructure:"simulation"`
}

// LoggingConfig selects the slog level and handler format.
type LoggingConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// GenesisConfig is the privileged starting state, written directly into the
// balances ledger before any block executes.
type GenesisConfig struct {
	Balances map[string]uint64 `mapstructure:"balances"`
}

// BlockConfig scripts one block. Header numbers are not configured; the
// supplier assigns the strictly increasing sequence 1..N.
type BlockConfig struct {
	Extrinsics []ExtrinsicConfig `mapstructure:"extrinsics"`
}

// ExtrinsicConfig scripts one extrinsic: the caller plus exactly one of the
// call fields.
type ExtrinsicConfig struct {
	Caller      string          `mapstructure:"caller"`
	Transfer    *TransferConfig `mapstructure:"transfer"`
	CreateClaim *ClaimConfig    `mapstructure:"create_claim"`
	RevokeClaim *ClaimConfig    `mapstructure:"revoke_claim"`
}

// TransferConfig moves Amount from the caller to To.
type TransferConfig struct {
	To     string `mapstructure:"to"`
	Amount uint64 `mapstructure:"amount"`
}

// ClaimConfig names the content a claim call operates on.
type ClaimConfig struct {
	Claim string `mapstructure:"claim"`
}

// SimulationConfig drives the simulate command's generated workload.
type SimulationConfig struct {
	Accounts           int    `mapstructure:"accounts"`
	Blocks             int    `mapstructure:"blocks"`
	ExtrinsicsPerBlock int    `mapstructure:"extrinsics_per_block"`
	Seed               uint64 `mapstructure:"seed"`
	Concurrency        int    `mapstructure:"concurrency"`
	Endowment          uint64 `mapstructure:"endowment"`
}

// SetDefaults registers every default value on v.
func SetDefaults(v *viper.Viper) {
	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.format", "text")
	v.SetDefault("simulation.accounts", 8)
	v.SetDefault("simulation.blocks", 50)
	v.SetDefault("simulation.extrinsics_per_block", 10)
	v.SetDefault("simulation.seed", 42)
	v.SetDefault("simulation.concurrency", 4)
	v.SetDefault("simulation.endowment", 1000000)
}

// Load decodes and validates the configuration held by v.
func Load(v *viper.Viper) (Config, error) {
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, errors.WithMessage(err, "failed to decode configuration")
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks the logging setup and the scripted blocks. Simulation
// parameters are validated separately by the command that uses them.
func (c Config) Validate() error {
	switch c.Logging.Format {
	case "", "text", "json":
	default:
		return fmt.Errorf("logging format %q is not text or json", c.Logging.Format)
	}

	for i, block := range c.Blocks {
		for j, extrinsic := range block.Extrinsics {
			if err := extrinsic.validate(); err != nil {
				return fmt.Errorf("block %d extrinsic %d: %w", i, j, err)
			}
		}
	}
	return nil
}

func (e ExtrinsicConfig) validate() error {
	if e.Caller == "" {
		return fmt.Errorf("caller is required")
	}

	calls := 0
	if e.Transfer != nil {
		calls++
		if e.Transfer.To == "" {
			return fmt.Errorf("transfer requires a recipient")
		}
	}
	if e.CreateClaim != nil {
		calls++
		if e.CreateClaim.Claim == "" {
			return fmt.Errorf("create_claim requires a claim")
		}
	}
	if e.RevokeClaim != nil {
		calls++
		if e.RevokeClaim.Claim == "" {
			return fmt.Errorf("revoke_claim requires a claim")
		}
	}
	if calls != 1 {
		return fmt.Errorf("exactly one of transfer, create_claim, revoke_claim must be set, got %d", calls)
	}
	return nil
}

// Validate checks the generated-workload parameters.
func (s SimulationConfig) Validate() error {
	if s.Accounts < 2 {
		return fmt.Errorf("simulation needs at least 2 accounts, got %d", s.Accounts)
	}
	if s.Blocks < 1 {
		return fmt.Errorf("simulation needs at least 1 block, got %d", s.Blocks)
	}
	if s.ExtrinsicsPerBlock < 1 {
		return fmt.Errorf("simulation needs at least 1 extrinsic per block, got %d", s.ExtrinsicsPerBlock)
	}
	if s.Concurrency < 1 {
		return fmt.Errorf("simulation concurrency must be positive, got %d", s.Concurrency)
	}
	return nil
}

// Sample returns the built-in demonstration scenario: miriam funds lucio,
// lucio claims and revokes MY_DOC, miriam claims documento_da_miriam.
func Sample() Config {
	return Config{
		Genesis: GenesisConfig{
			Balances: map[string]uint64{"miriam": 10000},
		},
		Blocks: []BlockConfig{
			{Extrinsics: []ExtrinsicConfig{
				{Caller: "miriam", Transfer: &TransferConfig{To: "lucio", Amount: 100}},
			}},
			{Extrinsics: []ExtrinsicConfig{
				{Caller: "lucio", CreateClaim: &ClaimConfig{Claim: "MY_DOC"}},
			}},
			{Extrinsics: []ExtrinsicConfig{
				{Caller: "lucio", RevokeClaim: &ClaimConfig{Claim: "MY_DOC"}},
			}},
			{Extrinsics: []ExtrinsicConfig{
				{Caller: "miriam", CreateClaim: &ClaimConfig{Claim: "documento_da_miriam"}},
			}},
		},
	}
}
