package cli

import (
	"fmt"

	"github.com/fatih/color"

	"github.com/andrescamacho/wakfudb/internal/application/ingest"
)

// printSummary renders the end-of-run report on stdout.
func printSummary(report *ingest.Report) {
	bold := color.New(color.Bold)
	green := color.New(color.FgGreen)
	yellow := color.New(color.FgYellow)
	red := color.New(color.FgRed)

	fmt.Println()
	bold.Printf("Ingestion run %s (version %s)\n", report.RunID, report.Version)

	for _, cat := range report.Categories {
		if cat.Aborted {
			red.Printf("  %-24s aborted: %s\n", cat.Category, cat.AbortReason)
			continue
		}

		fmt.Printf("  %-24s %d fetched, ", cat.Category, cat.Fetched)
		green.Printf("%d inserted", cat.Inserted)
		if cat.DuplicateSkipped > 0 {
			fmt.Print(", ")
			yellow.Printf("%d already present", cat.DuplicateSkipped)
		}
		if cat.MalformedSkipped > 0 {
			fmt.Print(", ")
			yellow.Printf("%d malformed", cat.MalformedSkipped)
		}
		if cat.Failed > 0 {
			fmt.Print(", ")
			red.Printf("%d failed", cat.Failed)
		}
		fmt.Println()

		for _, msg := range cat.Errors {
			fmt.Printf("      - %s\n", msg)
		}
	}

	fmt.Println()
	bold.Print("Total: ")
	green.Printf("%d ingested", report.TotalIngested())
	if failed := report.TotalFailed(); failed > 0 {
		fmt.Print(", ")
		red.Printf("%d failed", failed)
	}
	fmt.Printf(" in %s\n", formatDuration(report.FinishedAt.Sub(report.StartedAt)))

	if report.ReferenceDataUnavailable() {
		yellow.Println("Warning: no reference data could be fetched; item foreign keys cannot resolve.")
	}
}
