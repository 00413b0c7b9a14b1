package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/andrescamacho/wakfudb/internal/infrastructure/config"
)

// NewVersionCommand creates the version command
func NewVersionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the current upstream game-data version",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.LoadConfig(configPath)
			if err != nil {
				return err
			}

			client := newCDNClient(cfg)
			version, err := client.CurrentVersion(context.Background())
			if err != nil {
				return fmt.Errorf("failed to discover current version: %w", err)
			}

			fmt.Println(version)
			return nil
		},
	}
}
