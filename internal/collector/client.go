package collector

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"sync"

	"golang.org/x/time/rate"

	"resumi/internal/config"
	"resumi/internal/logging"
	"resumi/pkg/utils"
)

// Client wraps an HTTP client with per-source rate limiting for board APIs.
// Limiters are keyed by source name and created lazily from configuration.
type Client struct {
	httpClient *http.Client
	userAgent  string
	cfg        *config.Config
	limiters   map[string]*rate.Limiter
	mu         sync.Mutex
}

// NewClient creates a new rate-limited API client
func NewClient(cfg *config.Config) *Client {
	return &Client{
		httpClient: &http.Client{
			Timeout: cfg.Collector.RequestTimeout,
		},
		userAgent: cfg.Collector.UserAgent,
		cfg:       cfg,
		limiters:  make(map[string]*rate.Limiter),
	}
}

// FetchJSON fetches the URL and decodes the JSON response into v. Blocks
// until the source's rate limiter admits the request or the context is done.
func (c *Client) FetchJSON(ctx context.Context, source, url string, v interface{}) error {
	if err := c.limiterFor(source).Wait(ctx); err != nil {
		return fmt.Errorf("rate limit wait for %s: %w", source, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("User-Agent", c.userAgent)
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("request to %s failed: %w", url, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		io.Copy(io.Discard, resp.Body)
		return utils.NewCollectionError(fmt.Sprintf("unexpected status %d from %s", resp.StatusCode, url))
	}

	if err := json.NewDecoder(resp.Body).Decode(v); err != nil {
		return fmt.Errorf("failed to decode response from %s: %w", url, err)
	}

	return nil
}

// limiterFor returns the rate limiter for a source, creating it on first use.
// Requests per minute come from configuration, converted to a per-second
// rate with a small burst.
func (c *Client) limiterFor(source string) *rate.Limiter {
	c.mu.Lock()
	defer c.mu.Unlock()

	if limiter, exists := c.limiters[source]; exists {
		return limiter
	}

	rpm := c.cfg.RateLimitFor(source)
	rps := rate.Limit(float64(rpm) / 60.0)
	burst := 5

	limiter := rate.NewLimiter(rps, burst)
	c.limiters[source] = limiter

	logging.GetGlobalLogger().Debug("Created source rate limiter", map[string]interface{}{
		"source": source,
		"rate":   float64(rps),
		"burst":  burst,
	})

	return limiter
}
