package feed

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/liwesley02/order-up/internal/common"
	"github.com/liwesley02/order-up/internal/model"
)

// HTTPFeed polls an HTTP endpoint that serves the current order snapshot
// as JSON.
type HTTPFeed struct {
	httpClient *http.Client
	url        string
	authToken  string
}

// HTTPOption configures an HTTPFeed.
type HTTPOption func(*HTTPFeed)

// WithHTTPClient replaces the default HTTP client.
func WithHTTPClient(client *http.Client) HTTPOption {
	return func(f *HTTPFeed) {
		f.httpClient = client
	}
}

// WithAuthToken sends a bearer token with every request.
func WithAuthToken(token string) HTTPOption {
	return func(f *HTTPFeed) {
		f.authToken = token
	}
}

// NewHTTPFeed creates a feed that fetches snapshots from the given URL.
func NewHTTPFeed(url string, opts ...HTTPOption) (*HTTPFeed, error) {
	if url == "" {
		return nil, fmt.Errorf("%w: feed URL", common.ErrMissingConfig)
	}
	if !strings.HasPrefix(url, "http://") && !strings.HasPrefix(url, "https://") {
		return nil, fmt.Errorf("%w: feed URL must be http or https", common.ErrInvalidConfig)
	}

	f := &HTTPFeed{
		url: url,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
	for _, opt := range opts {
		opt(f)
	}
	return f, nil
}

// Fetch retrieves and parses the current snapshot.
func (f *HTTPFeed) Fetch(ctx context.Context) ([]model.Order, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, f.url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create feed request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if f.authToken != "" {
		req.Header.Set("Authorization", "Bearer "+f.authToken)
	}

	resp, err := f.httpClient.Do(req)
	if err != nil {
		return nil, &common.RetryableError{
			Err:       fmt.Errorf("%w: %v", common.ErrFeedUnavailable, err),
			Retryable: true,
		}
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return nil, &common.RetryableError{
			Err:       fmt.Errorf("%w: feed returned status %d", common.ErrFeedUnavailable, resp.StatusCode),
			Retryable: resp.StatusCode >= 500,
		}
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read feed response: %w", err)
	}

	return parseSnapshot(data)
}
