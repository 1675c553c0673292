// Package http provides an HTTP-based implementation of pagewatch.Fetcher
// with retry, exponential backoff, and cooperative per-domain pacing.
package http

import (
	"context"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/pagewatch/pagewatch"
)

// DefaultFetchTimeout is the per-request timeout for HTTP requests.
const DefaultFetchTimeout = 15 * time.Second

// DefaultUserAgent identifies the monitor to remote servers.
const DefaultUserAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/91.0.4472.124 Safari/537.36 PagewatchBot/1.0"

// allowedContentTypes is the response content-type allow-list. Anything
// else is rejected without retry.
var allowedContentTypes = []string{"text/html", "text/plain", "application/xhtml"}

// DefaultRetryDelays returns the backoff delays between fetch attempts:
// 1s after the first failure, 2s after the second (3 attempts total).
func DefaultRetryDelays() []time.Duration {
	return []time.Duration{1 * time.Second, 2 * time.Second}
}

// Ensure Fetcher implements pagewatch.Fetcher at compile time.
var _ pagewatch.Fetcher = (*Fetcher)(nil)

// Fetcher retrieves HTML content from URLs using HTTP requests.
// Each Fetcher owns its per-domain pacing state; concurrent fetches to
// different domains proceed independently.
type Fetcher struct {
	client      *http.Client
	timeout     time.Duration
	userAgent   string
	retryDelays []time.Duration
	pacer       *domainPacer
}

// Option configures a Fetcher.
type Option func(*Fetcher)

// WithTimeout sets the per-request timeout.
// Defaults to DefaultFetchTimeout (15s) if not specified.
func WithTimeout(d time.Duration) Option {
	return func(f *Fetcher) {
		f.timeout = d
	}
}

// WithUserAgent sets the User-Agent header sent with each request.
func WithUserAgent(ua string) Option {
	return func(f *Fetcher) {
		f.userAgent = ua
	}
}

// WithRetryDelays sets the backoff delays between attempts. The number of
// attempts is len(delays)+1. Useful for testing without real waits.
func WithRetryDelays(delays []time.Duration) Option {
	return func(f *Fetcher) {
		f.retryDelays = delays
	}
}

// WithDomainDelay sets the minimum spacing between requests to one domain.
// Defaults to 1 second.
func WithDomainDelay(d time.Duration) Option {
	return func(f *Fetcher) {
		f.pacer = newDomainPacer(d)
	}
}

// NewFetcher creates a new HTTP-based Fetcher.
func NewFetcher(opts ...Option) *Fetcher {
	f := &Fetcher{
		timeout:     DefaultFetchTimeout,
		userAgent:   DefaultUserAgent,
		retryDelays: DefaultRetryDelays(),
		pacer:       newDomainPacer(1 * time.Second),
	}
	for _, opt := range opts {
		opt(f)
	}

	f.client = &http.Client{
		Timeout: f.timeout,
	}

	return f
}

// Fetch retrieves the HTML content from the given URL.
//
// Malformed URLs fail immediately with EINVALID. HTTP 401/403 return
// EUNAUTHORIZED and 404 returns ENOTFOUND, all without retry. Disallowed
// content types return EUNSUPPORTED without retry. Transport errors and
// server errors are retried with exponential backoff; once the attempt
// budget is exhausted the fetch fails with EUNAVAILABLE.
func (f *Fetcher) Fetch(ctx context.Context, rawURL string) (string, error) {
	u, err := url.Parse(rawURL)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return "", pagewatch.Errorf(pagewatch.EINVALID, "invalid URL: %s", rawURL)
	}

	// Pace against the last successful request to this domain.
	if err := f.pacer.Wait(ctx, u.Host); err != nil {
		return "", err
	}

	maxAttempts := len(f.retryDelays) + 1
	var lastErr error

	for attempt := 0; attempt < maxAttempts; attempt++ {
		html, err := f.fetchOnce(ctx, rawURL)
		if err == nil {
			f.pacer.Record(u.Host)
			return html, nil
		}

		// Client errors and unsupported content types are terminal.
		switch pagewatch.ErrorCode(err) {
		case pagewatch.EUNAUTHORIZED, pagewatch.ENOTFOUND, pagewatch.EUNSUPPORTED:
			return "", err
		}
		lastErr = err

		if attempt >= maxAttempts-1 {
			break
		}

		select {
		case <-ctx.Done():
			return "", ctx.Err()
		case <-time.After(f.retryDelays[attempt]):
		}
	}

	return "", pagewatch.Errorf(pagewatch.EUNAVAILABLE, "fetch failed after %d attempts: %v", maxAttempts, lastErr)
}

// fetchOnce performs a single HTTP attempt.
func (f *Fetcher) fetchOnce(ctx context.Context, rawURL string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return "", pagewatch.Errorf(pagewatch.EINVALID, "invalid URL: %v", err)
	}
	req.Header.Set("User-Agent", f.userAgent)

	resp, err := f.client.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden:
		return "", pagewatch.Errorf(pagewatch.EUNAUTHORIZED, "HTTP %d for %s", resp.StatusCode, rawURL)
	case resp.StatusCode == http.StatusNotFound:
		return "", pagewatch.Errorf(pagewatch.ENOTFOUND, "HTTP %d for %s", resp.StatusCode, rawURL)
	case resp.StatusCode != http.StatusOK:
		return "", pagewatch.Errorf(pagewatch.EUNAVAILABLE, "HTTP %d for %s", resp.StatusCode, rawURL)
	}

	contentType := strings.ToLower(resp.Header.Get("Content-Type"))
	if !isAllowedContentType(contentType) {
		return "", pagewatch.Errorf(pagewatch.EUNSUPPORTED, "unsupported content type %q for %s", contentType, rawURL)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", err
	}

	return string(body), nil
}

// Close releases resources. For HTTP fetcher this is a no-op since
// http.Client doesn't require explicit cleanup.
func (f *Fetcher) Close() error {
	return nil
}

func isAllowedContentType(contentType string) bool {
	for _, allowed := range allowedContentTypes {
		if strings.Contains(contentType, allowed) {
			return true
		}
	}
	return false
}
