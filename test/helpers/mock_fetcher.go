package helpers

import (
	"context"
	"sync"

	"github.com/andrescamacho/wakfudb/internal/domain/catalog"
	"github.com/andrescamacho/wakfudb/internal/domain/gamedata"
)

// MockFetcher simulates a document source for testing. Payloads and
// errors are registered per category; every fetch is recorded so tests
// can assert on ordering.
type MockFetcher struct {
	mu sync.Mutex

	version    string
	versionErr error
	payloads   map[catalog.Category][]gamedata.RawRecord
	fetchErrs  map[catalog.Category]error
	fetched    []catalog.Category
}

// NewMockFetcher creates a mock fetcher reporting the given version
func NewMockFetcher(version string) *MockFetcher {
	return &MockFetcher{
		version:   version,
		payloads:  make(map[catalog.Category][]gamedata.RawRecord),
		fetchErrs: make(map[catalog.Category]error),
	}
}

// SetPayload registers the records returned for a category
func (m *MockFetcher) SetPayload(category catalog.Category, records []gamedata.RawRecord) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.payloads[category] = records
}

// SetFetchError makes fetches of a category fail
func (m *MockFetcher) SetFetchError(category catalog.Category, err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.fetchErrs[category] = err
}

// SetVersionError makes version discovery fail
func (m *MockFetcher) SetVersionError(err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.versionErr = err
}

// Fetched returns the categories fetched so far, in order
func (m *MockFetcher) Fetched() []catalog.Category {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]catalog.Category, len(m.fetched))
	copy(out, m.fetched)
	return out
}

// CurrentVersion implements ports.DocumentFetcher
func (m *MockFetcher) CurrentVersion(ctx context.Context) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.versionErr != nil {
		return "", m.versionErr
	}
	return m.version, nil
}

// Fetch implements ports.DocumentFetcher
func (m *MockFetcher) Fetch(ctx context.Context, category catalog.Category, version string) ([]gamedata.RawRecord, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.fetched = append(m.fetched, category)

	if err, ok := m.fetchErrs[category]; ok {
		return nil, err
	}
	return m.payloads[category], nil
}
