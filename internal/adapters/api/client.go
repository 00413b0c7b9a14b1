package api

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"math/rand"
	"net/http"
	"time"

	"golang.org/x/time/rate"

	"github.com/andrescamacho/wakfudb/internal/domain/catalog"
	"github.com/andrescamacho/wakfudb/internal/domain/gamedata"
	"github.com/andrescamacho/wakfudb/internal/domain/shared"
)

const (
	defaultBaseURL     = "https://wakfu.cdn.ankama.com/gamedata"
	defaultTimeout     = 30 * time.Second
	defaultMaxRetries  = 3
	defaultBackoffBase = time.Second
)

// AnkamaClient fetches game-data documents from the Wakfu CDN. It
// implements the DocumentFetcher port.
type AnkamaClient struct {
	httpClient  *http.Client
	rateLimiter *rate.Limiter
	baseURL     string
	maxRetries  int
	backoffBase time.Duration
	clock       shared.Clock
}

// NewAnkamaClient creates a CDN client with default settings
// Rate limit: 4 requests per second with burst of 4
// Retry: max 3 attempts with 1s exponential backoff + jitter
func NewAnkamaClient() *AnkamaClient {
	return NewAnkamaClientWithConfig(
		defaultBaseURL,
		defaultTimeout,
		defaultMaxRetries,
		defaultBackoffBase,
		4, 4,
		nil, // Use RealClock by default
	)
}

// NewAnkamaClientWithConfig creates a CDN client with custom configuration
// If clock is nil, uses RealClock for production
func NewAnkamaClientWithConfig(
	baseURL string,
	timeout time.Duration,
	maxRetries int,
	backoffBase time.Duration,
	requestsPerSecond int,
	burst int,
	clock shared.Clock,
) *AnkamaClient {
	if clock == nil {
		clock = shared.NewRealClock()
	}
	return &AnkamaClient{
		httpClient: &http.Client{
			Timeout: timeout,
		},
		rateLimiter: rate.NewLimiter(rate.Limit(requestsPerSecond), burst),
		baseURL:     baseURL,
		maxRetries:  maxRetries,
		backoffBase: backoffBase,
		clock:       clock,
	}
}

// CurrentVersion retrieves the provider's current game-data version from
// the config endpoint.
func (c *AnkamaClient) CurrentVersion(ctx context.Context) (string, error) {
	url := c.baseURL + "/config.json"

	body, err := c.get(ctx, url)
	if err != nil {
		return "", err
	}

	var response struct {
		Version string `json:"version"`
	}
	if err := json.Unmarshal(body, &response); err != nil {
		return "", shared.NewDecodeError(url, err)
	}
	if response.Version == "" {
		return "", shared.NewDecodeError(url, fmt.Errorf("version key missing in response"))
	}
	return response.Version, nil
}

// Fetch retrieves all raw records of one category for a version.
func (c *AnkamaClient) Fetch(ctx context.Context, category catalog.Category, version string) ([]gamedata.RawRecord, error) {
	url := fmt.Sprintf("%s/%s/%s.json", c.baseURL, version, category)

	body, err := c.get(ctx, url)
	if err != nil {
		return nil, err
	}

	var records []gamedata.RawRecord
	if err := json.Unmarshal(body, &records); err != nil {
		return nil, shared.NewDecodeError(url, err)
	}
	return records, nil
}

// get performs a rate-limited GET with exponential backoff + jitter
// retries on network errors and retryable status codes.
func (c *AnkamaClient) get(ctx context.Context, url string) ([]byte, error) {
	var lastErr error

	for attempt := 0; attempt <= c.maxRetries; attempt++ {
		if err := c.rateLimiter.Wait(ctx); err != nil {
			return nil, shared.NewRetrievalError(url, err)
		}

		body, retryable, err := c.attempt(ctx, url)
		if err == nil {
			return body, nil
		}
		lastErr = err

		if !retryable || attempt >= c.maxRetries {
			break
		}
		if ctx.Err() != nil {
			return nil, shared.NewRetrievalError(url, ctx.Err())
		}

		// Sleep through the clock so MockClock makes retries instant in tests
		c.clock.Sleep(addJitter(c.backoffBase * time.Duration(1<<attempt)))
	}

	return nil, lastErr
}

// attempt performs one GET. The second return value reports whether the
// failure is worth retrying.
func (c *AnkamaClient) attempt(ctx context.Context, url string) ([]byte, bool, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, false, shared.NewRetrievalError(url, err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, true, shared.NewRetrievalError(url, err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusOK:
		body, err := io.ReadAll(resp.Body)
		if err != nil {
			return nil, true, shared.NewRetrievalError(url, err)
		}
		return body, false, nil

	case resp.StatusCode == http.StatusNotFound:
		return nil, false, shared.NewNotFoundError(url)

	case resp.StatusCode == http.StatusTooManyRequests || resp.StatusCode >= 500:
		return nil, true, shared.NewRetrievalError(url, fmt.Errorf("status %d", resp.StatusCode))

	default:
		return nil, false, shared.NewRetrievalError(url, fmt.Errorf("unexpected status %d", resp.StatusCode))
	}
}

// addJitter adds random jitter to a duration to avoid thundering herd
// Returns a duration between 50% and 150% of the original value
func addJitter(d time.Duration) time.Duration {
	jitter := 0.5 + rand.Float64() // 0.5 to 1.5
	return time.Duration(float64(d) * jitter)
}
