package catalog

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"
)

const (
	DefaultBaseURL = "https://fakestoreapi.com"
	DefaultLimit   = 6

	defaultTimeout = 8 * time.Second
)

// ErrFetchFailed wraps every transport, status or decoding failure of the
// catalog endpoint.
var ErrFetchFailed = errors.New("catalog: fetch failed")

// Client fetches one bounded page of products. Implementations return an
// empty slice together with an error wrapping ErrFetchFailed on failure.
type Client interface {
	FetchProducts(ctx context.Context, limit int) ([]RawProduct, error)
}

// HTTPClient reads GET {base}/products?limit={n}. It does not retry.
type HTTPClient struct {
	baseURL string
	http    *http.Client
}

// NewHTTPClient builds a client; an empty baseURL uses the public Fake Store
// API and a timeout <= 0 uses 8s.
func NewHTTPClient(baseURL string, timeout time.Duration) *HTTPClient {
	baseURL = strings.TrimRight(strings.TrimSpace(baseURL), "/")
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	return &HTTPClient{
		baseURL: baseURL,
		http:    &http.Client{Timeout: timeout},
	}
}

func (c *HTTPClient) FetchProducts(ctx context.Context, limit int) ([]RawProduct, error) {
	if limit <= 0 {
		limit = DefaultLimit
	}
	endpoint, err := url.JoinPath(c.baseURL, "products")
	if err != nil {
		return []RawProduct{}, fmt.Errorf("%w: %v", ErrFetchFailed, err)
	}
	endpoint += "?limit=" + strconv.Itoa(limit)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return []RawProduct{}, fmt.Errorf("%w: %v", ErrFetchFailed, err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return []RawProduct{}, fmt.Errorf("%w: %v", ErrFetchFailed, err)
	}
	defer resp.Body.Close()
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		io.Copy(io.Discard, io.LimitReader(resp.Body, 4<<10))
		return []RawProduct{}, fmt.Errorf("%w: status %d", ErrFetchFailed, resp.StatusCode)
	}

	var products []RawProduct
	if err := json.NewDecoder(resp.Body).Decode(&products); err != nil {
		return []RawProduct{}, fmt.Errorf("%w: decode: %v", ErrFetchFailed, err)
	}
	if products == nil {
		products = []RawProduct{}
	}
	return products, nil
}

// StaticClient serves a fixed result. Used by the CLI's offline mode and tests.
type StaticClient struct {
	Products []RawProduct
	Err      error
}

func (c StaticClient) FetchProducts(_ context.Context, limit int) ([]RawProduct, error) {
	if c.Err != nil {
		return []RawProduct{}, fmt.Errorf("%w: %v", ErrFetchFailed, c.Err)
	}
	out := c.Products
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}
