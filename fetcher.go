package pagewatch

import "context"

// Fetcher retrieves raw HTML from URLs.
// Implementations may use plain HTTP or browser automation for
// JavaScript-rendered content.
//
// Expected failure modes are returned as coded errors, never panics:
// EINVALID for malformed URLs, EUNAUTHORIZED/ENOTFOUND for client errors,
// EUNSUPPORTED for non-HTML content types, and EUNAVAILABLE once the retry
// budget is exhausted. The scheduler treats all of them as "no content
// available this cycle".
type Fetcher interface {
	// Fetch retrieves the HTML content from the given URL.
	// The context controls timeout and cancellation.
	Fetch(ctx context.Context, url string) (html string, err error)

	// Close releases fetcher resources.
	// Must be called when the Fetcher is no longer needed.
	Close() error
}
