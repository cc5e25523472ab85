package catalogclient

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/dmitrijs2005/storefront/internal/models"
	"github.com/tidwall/gjson"
	"golang.org/x/time/rate"
)

const (
	DefaultBaseURL = "https://dummyjson.com"
	DefaultTimeout = 10 * time.Second
)

// Client is the read side of the remote catalog.
type Client interface {
	ListByCategory(ctx context.Context, key string) ([]models.Product, error)
	GetByID(ctx context.Context, id string) (*models.Product, error)
}

// Config holds client configuration. RateLimit is in requests per second;
// zero or less disables throttling.
type Config struct {
	BaseURL   string
	Timeout   time.Duration
	RateLimit float64
	RateBurst int
	Metrics   *Metrics
}

// HTTPClient is the Client backed by net/http.
type HTTPClient struct {
	baseURL    string
	httpClient *http.Client
	limiter    *rate.Limiter
	metrics    *Metrics
}

var _ Client = (*HTTPClient)(nil)

// New creates a catalog client.
func New(cfg Config) *HTTPClient {
	baseURL := strings.TrimRight(cfg.BaseURL, "/")
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = DefaultTimeout
	}

	limit := rate.Inf
	if cfg.RateLimit > 0 {
		limit = rate.Limit(cfg.RateLimit)
	}
	burst := cfg.RateBurst
	if burst <= 0 {
		burst = 1
	}

	return &HTTPClient{
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: timeout},
		limiter:    rate.NewLimiter(limit, burst),
		metrics:    cfg.Metrics,
	}
}

// ListByCategory returns the products of one category key in API order.
func (c *HTTPClient) ListByCategory(ctx context.Context, key string) (products []models.Product, err error) {
	start := time.Now()
	defer func() { c.metrics.observe(opListByCategory, start, err) }()

	if key == "" {
		return nil, fmt.Errorf("%w: empty category key", ErrFetchFailed)
	}

	body, err := c.get(ctx, "/products/category/"+url.PathEscape(key))
	if err != nil {
		return nil, fmt.Errorf("list category %q: %w", key, err)
	}

	list := gjson.GetBytes(body, "products")
	if !list.IsArray() {
		return nil, fmt.Errorf("list category %q: %w: response has no products array", key, ErrFetchFailed)
	}
	if err := json.Unmarshal([]byte(list.Raw), &products); err != nil {
		return nil, fmt.Errorf("list category %q: %w: %v", key, ErrFetchFailed, err)
	}
	if products == nil {
		products = []models.Product{}
	}
	return products, nil
}

// GetByID returns one product. An empty id is ErrNotFound and makes no
// request.
func (c *HTTPClient) GetByID(ctx context.Context, id string) (product *models.Product, err error) {
	start := time.Now()
	defer func() { c.metrics.observe(opGetByID, start, err) }()

	if id == "" {
		return nil, fmt.Errorf("get product: %w: empty id", ErrNotFound)
	}

	body, err := c.get(ctx, "/products/"+url.PathEscape(id))
	if err != nil {
		return nil, fmt.Errorf("get product %q: %w", id, err)
	}

	var p models.Product
	if err := json.Unmarshal(body, &p); err != nil {
		return nil, fmt.Errorf("get product %q: %w: %v", id, ErrFetchFailed, err)
	}
	return &p, nil
}

func (c *HTTPClient) get(ctx context.Context, path string) ([]byte, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrFetchFailed, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: create request: %v", ErrFetchFailed, err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: send request: %v", ErrFetchFailed, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: read response: %v", ErrFetchFailed, err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		se := &StatusError{Code: resp.StatusCode}
		if gjson.ValidBytes(body) {
			se.Message = gjson.GetBytes(body, "message").String()
		}
		return nil, se
	}

	if !gjson.ValidBytes(body) {
		return nil, fmt.Errorf("%w: response is not valid JSON", ErrFetchFailed)
	}
	return body, nil
}

func isNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}
