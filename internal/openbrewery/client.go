// Package openbrewery provides access to the Open Brewery DB API, the
// authoritative remote catalog.
package openbrewery

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"golang.org/x/time/rate"

	apperrors "github.com/adamtorokhu/BriefBeer/internal/errors"
)

// DefaultPageSize is the fixed per_page value of the list endpoint.
const DefaultPageSize = 50

// Client provides access to the Open Brewery DB catalog API.
type Client struct {
	httpClient  *http.Client
	rateLimiter *rate.Limiter
	logger      *slog.Logger
	baseURL     string
	pageSize    int
}

// Options configures the catalog client.
type Options struct {
	BaseURL  string
	PageSize int
	Timeout  time.Duration
	Logger   *slog.Logger
}

// NewClient creates a new catalog client.
// Rate limited to 10 requests per second; the API asks bulk consumers to
// stay well under its burst protection.
func NewClient(opts Options) *Client {
	if opts.PageSize <= 0 {
		opts.PageSize = DefaultPageSize
	}
	if opts.Timeout <= 0 {
		opts.Timeout = 30 * time.Second
	}
	if opts.Logger == nil {
		opts.Logger = slog.New(slog.DiscardHandler)
	}

	return &Client{
		httpClient: &http.Client{
			Timeout: opts.Timeout,
		},
		rateLimiter: rate.NewLimiter(rate.Every(100*time.Millisecond), 5),
		logger:      opts.Logger,
		baseURL:     strings.TrimRight(opts.BaseURL, "/"),
		pageSize:    opts.PageSize,
	}
}

// PageSize returns the fixed page size of the list endpoint. A page
// shorter than this terminates pagination.
func (c *Client) PageSize() int {
	return c.pageSize
}

// SetHTTPClient overrides the HTTP client (for testing).
func (c *Client) SetHTTPClient(h *http.Client) {
	c.httpClient = h
}

// wait blocks until rate limiter allows a request.
func (c *Client) wait(ctx context.Context) error {
	return c.rateLimiter.Wait(ctx)
}

// get performs a GET and returns the response body.
// Non-2xx statuses map to the network failure code, except 404 which is
// a typed not-found so callers can distinguish absence from outage.
func (c *Client) get(ctx context.Context, url string) ([]byte, error) {
	if err := c.wait(ctx); err != nil {
		return nil, fmt.Errorf("rate limit: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, apperrors.Wrap(err, apperrors.CodeNetwork, "catalog request")
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return nil, apperrors.NotFoundf("catalog: %s", url)
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, apperrors.Networkf("catalog request failed: status %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, apperrors.Wrap(err, apperrors.CodeNetwork, "read response")
	}

	return body, nil
}
