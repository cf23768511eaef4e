// Package scraper implements the concrete source adapters. One
// generic extraction routine, driven by per-site declarative configs,
// covers every site; there is no bespoke code per source.
package scraper

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/time/rate"
)

const (
	// defaultRequestTimeout is the per-call deadline each adapter
	// enforces on itself. The engine never times out individual
	// adapters; it bounds the fan-out as a whole.
	defaultRequestTimeout = 15 * time.Second

	// maxResponseBodyBytes limits the size of fetched pages.
	maxResponseBodyBytes = 10 * 1024 * 1024

	// defaultUserAgent identifies the aggregator to origin sites.
	defaultUserAgent = "news-aggregator/1.0 (+https://github.com/jonesrussell/news-aggregator)"

	// requestsPerSecond throttles each adapter so a burst of client
	// traffic does not hammer one origin.
	requestsPerSecond = 2
	requestBurst      = 4
)

// Client is a rate-limited HTTP client that fetches one page and
// parses it into a goquery document. Each adapter owns its own Client
// so per-site throttling stays independent.
type Client struct {
	httpClient *http.Client
	limiter    *rate.Limiter
	userAgent  string
}

// NewClient creates a Client with the default timeout and rate limit.
func NewClient() *Client {
	return &Client{
		httpClient: &http.Client{Timeout: defaultRequestTimeout},
		limiter:    rate.NewLimiter(rate.Limit(requestsPerSecond), requestBurst),
		userAgent:  defaultUserAgent,
	}
}

// Fetch retrieves a URL and parses the response body as HTML.
func (c *Client) Fetch(ctx context.Context, pageURL string) (*goquery.Document, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("rate limit wait: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, pageURL, http.NoBody)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("User-Agent", c.userAgent)
	req.Header.Set("Accept", "text/html,application/xhtml+xml")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch %s: %w", pageURL, err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("fetch %s: unexpected status %d", pageURL, resp.StatusCode)
	}

	doc, err := goquery.NewDocumentFromReader(io.LimitReader(resp.Body, maxResponseBodyBytes))
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", pageURL, err)
	}

	return doc, nil
}
