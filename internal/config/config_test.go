package config

import (
	"bytes"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func loadYAML(t *testing.T, yml string) (Config, error) {
	t.Helper()
	v := viper.New()
	SetDefaults(v)
	v.SetConfigType("yaml")
	require.NoError(t, v.ReadConfig(bytes.NewBufferString(yml)))
	return Load(v)
}

func TestLoadDefaults(t *testing.T) {
	v := viper.New()
	SetDefaults(v)

	cfg, err := Load(v)

	require.NoError(t, err)
	assert.Equal(t, "info", cfg.Logging.Level)
	assert.Equal(t, "text", cfg.Logging.Format)
	assert.Empty(t, cfg.Blocks)
	assert.Equal(t, 8, cfg.Simulation.Accounts)
	assert.Equal(t, 50, cfg.Simulation.Blocks)
	assert.Equal(t, 10, cfg.Simulation.ExtrinsicsPerBlock)
	assert.Equal(t, uint64(42), cfg.Simulation.Seed)
	assert.Equal(t, 4, cfg.Simulation.Concurrency)
	assert.Equal(t, uint64(1000000), cfg.Simulation.Endowment)
	assert.NoError(t, cfg.Simulation.Validate())
}

func TestLoadScriptedBlocks(t *testing.T) {
	cfg, err := loadYAML(t, `
logging:
  level: debug
  format: json
genesis:
  balances:
    miriam: 10000
blocks:
  - extrinsics:
      - caller: miriam
        transfer:
          to: lucio
          amount: 100
  - extrinsics:
      - caller: lucio
        create_claim:
          claim: MY_DOC
      - caller: lucio
        revoke_claim:
          claim: MY_DOC
`)

	require.NoError(t, err)
	assert.Equal(t, "debug", cfg.Logging.Level)
	assert.Equal(t, "json", cfg.Logging.Format)
	assert.Equal(t, map[string]uint64{"miriam": 10000}, cfg.Genesis.Balances)

	require.Len(t, cfg.Blocks, 2)
	require.Len(t, cfg.Blocks[0].Extrinsics, 1)
	first := cfg.Blocks[0].Extrinsics[0]
	assert.Equal(t, "miriam", first.Caller)
	require.NotNil(t, first.Transfer)
	assert.Equal(t, "lucio", first.Transfer.To)
	assert.Equal(t, uint64(100), first.Transfer.Amount)

	require.Len(t, cfg.Blocks[1].Extrinsics, 2)
	require.NotNil(t, cfg.Blocks[1].Extrinsics[0].CreateClaim)
	assert.Equal(t, "MY_DOC", cfg.Blocks[1].Extrinsics[0].CreateClaim.Claim)
	require.NotNil(t, cfg.Blocks[1].Extrinsics[1].RevokeClaim)
}

func TestLoadRejectsInvalidExtrinsics(t *testing.T) {
	cases := []struct {
		name    string
		yml     string
		wantErr string
	}{
		{
			name: "no call set",
			yml: `
blocks:
  - extrinsics:
      - caller: miriam
`,
			wantErr: "exactly one of",
		},
		{
			name: "two calls set",
			yml: `
blocks:
  - extrinsics:
      - caller: miriam
        transfer:
          to: lucio
          amount: 1
        create_claim:
          claim: MY_DOC
`,
			wantErr: "exactly one of",
		},
		{
			name: "missing caller",
			yml: `
blocks:
  - extrinsics:
      - transfer:
          to: lucio
          amount: 1
`,
			wantErr: "caller is required",
		},
		{
			name: "transfer without recipient",
			yml: `
blocks:
  - extrinsics:
      - caller: miriam
        transfer:
          amount: 1
`,
			wantErr: "transfer requires a recipient",
		},
		{
			name: "create_claim without claim",
			yml: `
blocks:
  - extrinsics:
      - caller: miriam
        create_claim: {}
`,
			wantErr: "create_claim requires a claim",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := loadYAML(t, tc.yml)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tc.wantErr)
		})
	}
}

func TestLoadRejectsUnknownLoggingFormat(t *testing.T) {
	_, err := loadYAML(t, `
logging:
  format: xml
`)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not text or json")
}

func TestSimulationValidate(t *testing.T) {
	cases := []struct {
		name    string
		mutate  func(*SimulationConfig)
		wantErr string
	}{
		{
			name:   "defaults are valid",
			mutate: func(*SimulationConfig) {},
		},
		{
			name:    "too few accounts",
			mutate:  func(s *SimulationConfig) { s.Accounts = 1 },
			wantErr: "at least 2 accounts",
		},
		{
			name:    "no blocks",
			mutate:  func(s *SimulationConfig) { s.Blocks = 0 },
			wantErr: "at least 1 block",
		},
		{
			name:    "no extrinsics",
			mutate:  func(s *SimulationConfig) { s.ExtrinsicsPerBlock = 0 },
			wantErr: "at least 1 extrinsic",
		},
		{
			name:    "bad concurrency",
			mutate:  func(s *SimulationConfig) { s.Concurrency = -1 },
			wantErr: "concurrency must be positive",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			s := SimulationConfig{
				Accounts:           8,
				Blocks:             50,
				ExtrinsicsPerBlock: 10,
				Seed:               42,
				Concurrency:        4,
				Endowment:          1000000,
			}
			tc.mutate(&s)

			err := s.Validate()
			if tc.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tc.wantErr)
		})
	}
}

func TestSampleIsValid(t *testing.T) {
	cfg := Sample()

	require.NoError(t, cfg.Validate())
	assert.Equal(t, uint64(10000), cfg.Genesis.Balances["miriam"])
	assert.Len(t, cfg.Blocks, 4)
}
