package api

import (
	"context"
	"encoding/json"
	"errors"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/andrescamacho/wakfudb/internal/domain/catalog"
	"github.com/andrescamacho/wakfudb/internal/domain/gamedata"
	"github.com/andrescamacho/wakfudb/internal/domain/ports"
	"github.com/andrescamacho/wakfudb/internal/domain/shared"
)

// LocalFetcher serves category payloads from files previously saved by
// the extract command, named "<category>_<version>.json". It implements
// the DocumentFetcher port for offline ingestion.
type LocalFetcher struct {
	dir     string
	version string
}

// NewLocalFetcher creates a fetcher reading from dir. The version is
// fixed at construction since there is no discovery endpoint on disk.
func NewLocalFetcher(dir, version string) *LocalFetcher {
	return &LocalFetcher{dir: dir, version: version}
}

// CurrentVersion returns the version the fetcher was created with.
func (f *LocalFetcher) CurrentVersion(ctx context.Context) (string, error) {
	if f.version == "" {
		return "", shared.NewNotFoundError("local version (no version configured)")
	}
	return f.version, nil
}

// Fetch reads one category payload from disk.
func (f *LocalFetcher) Fetch(ctx context.Context, category catalog.Category, version string) ([]gamedata.RawRecord, error) {
	path := filepath.Join(f.dir, ports.FileName(category, version))

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, shared.NewNotFoundError(path)
		}
		return nil, shared.NewRetrievalError(path, err)
	}

	var records []gamedata.RawRecord
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, shared.NewDecodeError(path, err)
	}
	return records, nil
}
