package cli

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/andrescamacho/wakfudb/internal/adapters/api"
	"github.com/andrescamacho/wakfudb/internal/infrastructure/config"
)

var (
	// Global flags
	configPath string
	verbose    bool
)

// NewRootCommand creates the root command for the CLI
func NewRootCommand() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "wakfudb",
		Short: "wakfudb - Build a normalized item database from the Wakfu CDN",
		Long: `wakfudb ingests the Wakfu game-data JSON files (actions, item types,
item properties, states, items) and materializes them into a normalized
relational database, one snapshot per version.

Examples:
  wakfudb generate --outdir ./data
  wakfudb generate --indir ./data --version 1.88.1.30 --outdir ./data
  wakfudb extract --outdir ./data
  wakfudb version
  wakfudb categories`,
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
	}

	// Global flags
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "",
		"Path to config file (default: search ./config.yaml, ./configs, /etc/wakfudb)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "V", false,
		"Log individual duplicate and skipped records")

	// Add commands
	rootCmd.AddCommand(NewGenerateCommand())
	rootCmd.AddCommand(NewExtractCommand())
	rootCmd.AddCommand(NewVersionCommand())
	rootCmd.AddCommand(NewCategoriesCommand())

	return rootCmd
}

// Execute runs the root command
func Execute() {
	rootCmd := NewRootCommand()
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// newCDNClient builds the CDN client from configuration
func newCDNClient(cfg *config.Config) *api.AnkamaClient {
	return api.NewAnkamaClientWithConfig(
		cfg.API.BaseURL,
		cfg.API.Timeout,
		cfg.API.Retry.MaxAttempts,
		cfg.API.Retry.BackoffBase,
		cfg.API.RateLimit.Requests,
		cfg.API.RateLimit.Burst,
		nil,
	)
}

// loggingConfig applies the --verbose flag on top of the configured level
func loggingConfig(cfg *config.Config) *config.LoggingConfig {
	logCfg := cfg.Logging
	if verbose {
		logCfg.Level = "debug"
	}
	return &logCfg
}

func formatDuration(d time.Duration) string {
	return d.Round(time.Millisecond).String()
}
