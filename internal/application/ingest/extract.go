package ingest

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"go.uber.org/zap"

	"github.com/andrescamacho/wakfudb/internal/domain/catalog"
	"github.com/andrescamacho/wakfudb/internal/domain/ports"
)

// Extractor saves raw category payloads to disk so later runs can ingest
// offline through the local fetcher.
type Extractor struct {
	fetcher ports.DocumentFetcher
	logger  *zap.Logger
}

// NewExtractor creates an extractor over a fetcher.
func NewExtractor(fetcher ports.DocumentFetcher, logger *zap.Logger) *Extractor {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Extractor{fetcher: fetcher, logger: logger}
}

// ExtractAll fetches every ingestible category for a version and writes
// each payload to "<dir>/<category>_<version>.json". Unlike ingestion, a
// fetch failure here is fatal: a partial extract would silently abort
// categories on later offline runs.
func (e *Extractor) ExtractAll(ctx context.Context, version, dir string) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}

	for _, category := range catalog.IngestionOrder() {
		records, err := e.fetcher.Fetch(ctx, category, version)
		if err != nil {
			return fmt.Errorf("failed to extract category %s: %w", category, err)
		}

		data, err := json.MarshalIndent(records, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to encode category %s: %w", category, err)
		}

		path := filepath.Join(dir, ports.FileName(category, version))
		if err := os.WriteFile(path, data, 0o644); err != nil {
			return fmt.Errorf("failed to write %s: %w", path, err)
		}

		e.logger.Info("extracted category",
			zap.String("category", category.String()),
			zap.Int("records", len(records)),
			zap.String("path", path))
	}
	return nil
}
