package cli

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/andrescamacho/wakfudb/internal/domain/catalog"
)

// NewCategoriesCommand creates the categories command
func NewCategoriesCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "categories",
		Short: "List the game-data categories and which ones are ingested",
		RunE: func(cmd *cobra.Command, args []string) error {
			ingested := make(map[catalog.Category]int)
			for i, category := range catalog.IngestionOrder() {
				ingested[category] = i + 1
			}

			bold := color.New(color.Bold)
			green := color.New(color.FgGreen)

			bold.Println("Game-data categories:")
			for _, category := range catalog.All() {
				if order, ok := ingested[category]; ok {
					green.Printf("  %-24s", category)
					fmt.Printf("%s (ingested, step %d)\n", category.Description(), order)
				} else {
					fmt.Printf("  %-24s%s\n", category, category.Description())
				}
			}
			return nil
		},
	}
}
