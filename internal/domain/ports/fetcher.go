// Package ports defines the boundary interfaces the ingestion core
// consumes: document retrieval and row-tree materialization.
package ports

import (
	"context"
	"fmt"

	"github.com/andrescamacho/wakfudb/internal/domain/catalog"
	"github.com/andrescamacho/wakfudb/internal/domain/gamedata"
)

// DocumentFetcher retrieves raw game-data documents for one version
// snapshot. Implementations fail with shared.RetrievalError on
// network/HTTP failure, shared.DecodeError on unparseable payloads and
// shared.NotFoundError when the category/version combination does not
// exist upstream.
type DocumentFetcher interface {
	// CurrentVersion returns the provider's current version string.
	CurrentVersion(ctx context.Context) (string, error)

	// Fetch returns all raw records of one category for a version.
	Fetch(ctx context.Context, category catalog.Category, version string) ([]gamedata.RawRecord, error)
}

// FileName is the on-disk naming convention for an extracted category
// payload, shared by the extract writer and the local fetcher.
func FileName(category catalog.Category, version string) string {
	return fmt.Sprintf("%s_%s.json", category, version)
}
