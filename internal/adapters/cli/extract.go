package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/andrescamacho/wakfudb/internal/application/ingest"
	"github.com/andrescamacho/wakfudb/internal/infrastructure/config"
	"github.com/andrescamacho/wakfudb/internal/infrastructure/logging"
)

// NewExtractCommand creates the extract command
func NewExtractCommand() *cobra.Command {
	var (
		outDir  string
		version string
	)

	cmd := &cobra.Command{
		Use:   "extract",
		Short: "Save raw category JSON files for offline ingestion",
		Long: `Fetch every ingestible category for a version and write the raw
payloads to <outdir>/<category>_<version>.json. The files can later be
ingested without network access via 'wakfudb generate --indir'.

Examples:
  wakfudb extract --outdir ./data
  wakfudb extract --outdir ./data --version 1.88.1.30`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()

			cfg, err := config.LoadConfig(configPath)
			if err != nil {
				return err
			}

			logger, err := logging.NewLogger(loggingConfig(cfg))
			if err != nil {
				return err
			}
			defer logger.Sync() //nolint:errcheck

			client := newCDNClient(cfg)

			if version == "" {
				version, err = client.CurrentVersion(ctx)
				if err != nil {
					return fmt.Errorf("failed to discover current version: %w", err)
				}
			}

			extractor := ingest.NewExtractor(client, logger)
			if err := extractor.ExtractAll(ctx, version, outDir); err != nil {
				return err
			}

			fmt.Printf("Extracted all categories for version %s to %s\n", version, outDir)
			return nil
		},
	}

	cmd.Flags().StringVarP(&outDir, "outdir", "o", ".",
		"Directory where the raw JSON files are saved")
	cmd.Flags().StringVarP(&version, "version", "v", "",
		"Game-data version to extract (default: current upstream version)")

	return cmd
}
