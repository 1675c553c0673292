package pagewatch

// ExtractResult holds the normalized text extracted from an HTML page.
type ExtractResult struct {
	// Text is the cleaned plain-text representation of the page's main
	// content. Boilerplate (nav, footer, ads, cookie banners) has been
	// removed, lines deduplicated, and noise filtered.
	Text string
}

// PageMetadata holds document-level metadata pulled independently of
// content extraction. A zero value means the field was absent.
type PageMetadata struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Language    string `json:"language"`
}

// Extractor reduces raw HTML to a normalized plain-text representation.
type Extractor interface {
	// Extract processes raw HTML and returns the main content as text.
	// Returns ENOCONTENT if nothing usable remains after cleaning.
	Extract(html string) (*ExtractResult, error)

	// Metadata pulls title, description, and language from the raw
	// document. Failures yield a zero value, never an error.
	Metadata(html string) PageMetadata
}
