package api_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/andrescamacho/wakfudb/internal/adapters/api"
	"github.com/andrescamacho/wakfudb/internal/domain/catalog"
	"github.com/andrescamacho/wakfudb/internal/domain/shared"
)

func newTestClient(baseURL string) *api.AnkamaClient {
	clock := shared.NewMockClock(time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC))
	return api.NewAnkamaClientWithConfig(
		baseURL,
		5*time.Second,
		3,
		time.Millisecond,
		1000, 1000,
		clock,
	)
}

func TestAnkamaClient_CurrentVersion(t *testing.T) {
	// Arrange
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/config.json", r.URL.Path)
		w.Write([]byte(`{"version": "1.88.1.30"}`))
	}))
	defer server.Close()

	client := newTestClient(server.URL)

	// Act
	version, err := client.CurrentVersion(context.Background())

	// Assert
	require.NoError(t, err)
	assert.Equal(t, "1.88.1.30", version)
}

func TestAnkamaClient_CurrentVersion_MissingKey(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"other": "value"}`))
	}))
	defer server.Close()

	client := newTestClient(server.URL)

	_, err := client.CurrentVersion(context.Background())

	var decodeErr *shared.DecodeError
	require.ErrorAs(t, err, &decodeErr)
}

func TestAnkamaClient_Fetch(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/1.88.1.30/actions.json", r.URL.Path)
		w.Write([]byte(`[{"definition": {"id": 1, "effect": "Gain: Vie"}}]`))
	}))
	defer server.Close()

	client := newTestClient(server.URL)

	records, err := client.Fetch(context.Background(), catalog.Actions, "1.88.1.30")

	require.NoError(t, err)
	require.Len(t, records, 1)
	def, ok := records[0]["definition"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, float64(1), def["id"])
}

func TestAnkamaClient_Fetch_NotFound(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer server.Close()

	client := newTestClient(server.URL)

	_, err := client.Fetch(context.Background(), catalog.Actions, "0.0.0.0")

	var notFound *shared.NotFoundError
	require.ErrorAs(t, err, &notFound)
}

func TestAnkamaClient_Fetch_InvalidJSON(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"not": "a list"}`))
	}))
	defer server.Close()

	client := newTestClient(server.URL)

	_, err := client.Fetch(context.Background(), catalog.Actions, "1.88.1.30")

	var decodeErr *shared.DecodeError
	require.ErrorAs(t, err, &decodeErr)
}

func TestAnkamaClient_RetriesServerErrors(t *testing.T) {
	var calls atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if calls.Add(1) < 3 {
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
		w.Write([]byte(`[]`))
	}))
	defer server.Close()

	client := newTestClient(server.URL)

	records, err := client.Fetch(context.Background(), catalog.Actions, "1.88.1.30")

	require.NoError(t, err)
	assert.Empty(t, records)
	assert.Equal(t, int32(3), calls.Load())
}

func TestAnkamaClient_GivesUpAfterMaxRetries(t *testing.T) {
	var calls atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer server.Close()

	client := newTestClient(server.URL)

	_, err := client.Fetch(context.Background(), catalog.Actions, "1.88.1.30")

	var retrievalErr *shared.RetrievalError
	require.ErrorAs(t, err, &retrievalErr)
	assert.Equal(t, int32(4), calls.Load(), "initial attempt plus three retries")
}

func TestAnkamaClient_NotFoundIsNotRetried(t *testing.T) {
	var calls atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusNotFound)
	}))
	defer server.Close()

	client := newTestClient(server.URL)

	_, err := client.Fetch(context.Background(), catalog.Actions, "1.88.1.30")

	var notFound *shared.NotFoundError
	require.ErrorAs(t, err, &notFound)
	assert.Equal(t, int32(1), calls.Load())
}
