// Package openfoodfacts provides the product-identification lookup used
// by the barcode scan path.
package openfoodfacts

import (
	"context"
	"encoding/json/v2"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"golang.org/x/time/rate"

	apperrors "github.com/adamtorokhu/BriefBeer/internal/errors"
)

// Product is the subset of the lookup payload the scan path consumes.
type Product struct {
	Code         string   `json:"code"`
	Name         string   `json:"product_name"`
	Brands       string   `json:"brands"`
	Categories   string   `json:"categories"`
	CategoryTags []string `json:"categories_tags"`
}

// Client provides access to the Open Food Facts product lookup.
type Client struct {
	httpClient  *http.Client
	rateLimiter *rate.Limiter
	logger      *slog.Logger
	baseURL     string
}

// Options configures the lookup client.
type Options struct {
	BaseURL string
	Timeout time.Duration
	Logger  *slog.Logger
}

// NewClient creates a new lookup client.
// Rate limited to roughly 100 requests per minute per the API's
// fair-use policy.
func NewClient(opts Options) *Client {
	if opts.Timeout <= 0 {
		opts.Timeout = 15 * time.Second
	}
	if opts.Logger == nil {
		opts.Logger = slog.New(slog.DiscardHandler)
	}

	return &Client{
		httpClient: &http.Client{
			Timeout: opts.Timeout,
		},
		rateLimiter: rate.NewLimiter(rate.Every(600*time.Millisecond), 3),
		logger:      opts.Logger,
		baseURL:     strings.TrimRight(opts.BaseURL, "/"),
	}
}

// SetHTTPClient overrides the HTTP client (for testing).
func (c *Client) SetHTTPClient(h *http.Client) {
	c.httpClient = h
}

// lookupResponse is the wire envelope: status 1 means matched.
type lookupResponse struct {
	Status  int     `json:"status"`
	Product Product `json:"product"`
}

// Lookup resolves a scanned code to a product. found is false when the
// service has no record for the code; that is not an error.
func (c *Client) Lookup(ctx context.Context, code string) (*Product, bool, error) {
	if err := c.rateLimiter.Wait(ctx); err != nil {
		return nil, false, fmt.Errorf("rate limit: %w", err)
	}

	lookupURL := c.baseURL + "/api/v0/product/" + url.PathEscape(code) + ".json"

	c.logger.Debug("looking up product", "code", code)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, lookupURL, nil)
	if err != nil {
		return nil, false, fmt.Errorf("create request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, false, apperrors.Wrap(err, apperrors.CodeNetwork, "product lookup")
	}
	defer resp.Body.Close()

	// The service reports unknown codes with a 404 carrying a status-0
	// body; treat both shapes as not-found.
	if resp.StatusCode == http.StatusNotFound {
		return nil, false, nil
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, false, apperrors.Networkf("product lookup failed: status %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, false, apperrors.Wrap(err, apperrors.CodeNetwork, "read response")
	}

	var lr lookupResponse
	if err := json.Unmarshal(body, &lr); err != nil {
		return nil, false, apperrors.Wrap(err, apperrors.CodeDecode, "parse lookup response")
	}

	if lr.Status != 1 {
		return nil, false, nil
	}

	lr.Product.Code = code
	return &lr.Product, true, nil
}
