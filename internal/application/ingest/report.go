package ingest

import (
	"time"

	"github.com/andrescamacho/wakfudb/internal/domain/catalog"
)

// Report is the structured end-of-run summary for one batch.
type Report struct {
	RunID      string
	Version    string
	StartedAt  time.Time
	FinishedAt time.Time
	Categories []CategoryReport
}

// CategoryReport aggregates per-record outcomes for one category.
type CategoryReport struct {
	Category         catalog.Category
	Fetched          int
	Inserted         int
	DuplicateSkipped int
	MalformedSkipped int

	// Failed counts records the persistence layer rejected, most often
	// constraint violations but any non-duplicate error lands here.
	Failed int

	// Aborted is set when the category's fetch failed; records of other
	// categories are still processed.
	Aborted     bool
	AbortReason string

	// Errors holds the first N error messages for diagnosis.
	Errors []string
}

// recordError keeps at most max messages per category.
func (c *CategoryReport) recordError(max int, msg string) {
	if len(c.Errors) < max {
		c.Errors = append(c.Errors, msg)
	}
}

// TotalIngested counts records that are present in the store after the
// run, whether written now or already there from a previous run.
func (r *Report) TotalIngested() int {
	total := 0
	for _, c := range r.Categories {
		total += c.Inserted + c.DuplicateSkipped
	}
	return total
}

// TotalFailed counts records rejected at the persistence boundary.
func (r *Report) TotalFailed() int {
	total := 0
	for _, c := range r.Categories {
		total += c.Failed
	}
	return total
}

// ReferenceDataUnavailable reports whether every reference category
// (everything but items) failed to fetch, which guarantees that item
// foreign keys cannot resolve. Callers decide whether to stop; this is
// a recommendation, never a forced abort.
func (r *Report) ReferenceDataUnavailable() bool {
	sawReference := false
	for _, c := range r.Categories {
		if c.Category == catalog.Items {
			continue
		}
		sawReference = true
		if !c.Aborted {
			return false
		}
	}
	return sawReference
}
