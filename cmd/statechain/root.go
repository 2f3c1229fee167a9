// Package statechain wires the command line interface around the ledger
// runtime: configuration loading, logging setup, and the run and simulate
// commands.
package statechain

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/luciocodeigniter/statechain/internal/config"
)

var (
	cfgFile string
	cfg     config.Config
	v       *viper.Viper
)

var rootCmd = &cobra.Command{
	Use:          "statechain",
	Short:        "A minimal deterministic ledger runtime",
	Long:         "statechain executes ordered blocks of extrinsics against an in-memory ledger runtime composed of system, balances, and proof of existence pallets.",
	SilenceUsage: true,
}

// Execute runs the root command and exits nonzero on failure.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "path to the configuration file")
	rootCmd.PersistentFlags().String("log-level", "info", "log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().String("log-format", "text", "log format (text, json)")

	// Assigned here rather than in the rootCmd literal: initConfig reads
	// rootCmd's flags, and a literal referencing it would not initialize.
	rootCmd.PersistentPreRunE = func(cmd *cobra.Command, args []string) error {
		return initConfig()
	}
}

func initConfig() error {
	v = viper.New()
	config.SetDefaults(v)

	if err := v.BindPFlag("logging.level", rootCmd.PersistentFlags().Lookup("log-level")); err != nil {
		return err
	}
	if err := v.BindPFlag("logging.format", rootCmd.PersistentFlags().Lookup("log-format")); err != nil {
		return err
	}

	v.SetEnvPrefix("STATECHAIN")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
	} else {
		v.SetConfigName("statechain")
		v.AddConfigPath(".")
	}
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return fmt.Errorf("failed to read configuration file: %w", err)
		}
	}

	loaded, err := config.Load(v)
	if err != nil {
		return err
	}
	cfg = loaded

	return setupLogging(cfg.Logging)
}

func setupLogging(logging config.LoggingConfig) error {
	var level slog.Level
	switch strings.ToLower(logging.Level) {
	case "debug":
		level = slog.LevelDebug
	case "", "info":
		level = slog.LevelInfo
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		return fmt.Errorf("unknown log level %q", logging.Level)
	}

	opts := &slog.HandlerOptions{Level: level}
	var handler slog.Handler
	if logging.Format == "json" {
		handler = slog.NewJSONHandler(os.Stderr, opts)
	} else {
		handler = slog.NewTextHandler(os.Stderr, opts)
	}
	slog.SetDefault(slog.New(handler))
	return nil
}
