package ingest_test

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/andrescamacho/wakfudb/internal/adapters/api"
	"github.com/andrescamacho/wakfudb/internal/application/ingest"
	"github.com/andrescamacho/wakfudb/internal/domain/catalog"
	"github.com/andrescamacho/wakfudb/internal/domain/gamedata"
	"github.com/andrescamacho/wakfudb/internal/domain/shared"
)

func TestExtractor_RoundTripThroughLocalFetcher(t *testing.T) {
	// Arrange
	dir := filepath.Join(t.TempDir(), "extracted")
	fetcher := fullFixtureFetcher(t)
	extractor := ingest.NewExtractor(fetcher, nil)

	// Act
	err := extractor.ExtractAll(context.Background(), "1.88.1.30", dir)

	// Assert
	require.NoError(t, err)

	local := api.NewLocalFetcher(dir, "1.88.1.30")
	for _, category := range catalog.IngestionOrder() {
		records, err := local.Fetch(context.Background(), category, "1.88.1.30")
		require.NoError(t, err, "category %s should round-trip", category)
		assert.NotEmpty(t, records)
	}

	// Round-tripped records normalize identically to the originals.
	actions, err := local.Fetch(context.Background(), catalog.Actions, "1.88.1.30")
	require.NoError(t, err)
	action, err := gamedata.NormalizeAction(actions[0])
	require.NoError(t, err)
	assert.Equal(t, int64(1), action.ID)
}

func TestExtractor_FetchFailureIsFatal(t *testing.T) {
	fetcher := fullFixtureFetcher(t)
	fetcher.SetFetchError(catalog.States, shared.NewRetrievalError("states", assert.AnError))
	extractor := ingest.NewExtractor(fetcher, nil)

	err := extractor.ExtractAll(context.Background(), "1.88.1.30", t.TempDir())

	require.Error(t, err)
	var retrieval *shared.RetrievalError
	assert.ErrorAs(t, err, &retrieval)
}
