// Package trafilatura provides a pagewatch.Extractor backed by
// go-trafilatura's boilerplate-removal algorithm, as an alternative to the
// heuristic goquery extractor.
package trafilatura

import (
	"strings"

	"github.com/markusmobius/go-trafilatura"
	"github.com/pagewatch/pagewatch"
)

// Ensure Extractor implements pagewatch.Extractor at compile time.
var _ pagewatch.Extractor = (*Extractor)(nil)

// Extractor wraps go-trafilatura to extract main content from HTML.
type Extractor struct{}

// NewExtractor creates a new Extractor.
func NewExtractor() *Extractor {
	return &Extractor{}
}

// Extract processes raw HTML and returns the main content as text.
func (e *Extractor) Extract(rawHTML string) (*pagewatch.ExtractResult, error) {
	if strings.TrimSpace(rawHTML) == "" {
		return nil, pagewatch.Errorf(pagewatch.ENOCONTENT, "empty HTML input")
	}

	opts := trafilatura.Options{
		EnableFallback: true,
	}

	result, err := trafilatura.Extract(strings.NewReader(rawHTML), opts)
	if err != nil {
		return nil, err
	}

	text := strings.TrimSpace(result.ContentText)
	if text == "" {
		return nil, pagewatch.Errorf(pagewatch.ENOCONTENT, "no substantial content found")
	}

	return &pagewatch.ExtractResult{Text: text}, nil
}

// Metadata pulls title, description, and language from the raw document.
func (e *Extractor) Metadata(rawHTML string) pagewatch.PageMetadata {
	result, err := trafilatura.Extract(strings.NewReader(rawHTML), trafilatura.Options{
		EnableFallback: true,
	})
	if err != nil {
		return pagewatch.PageMetadata{}
	}

	return pagewatch.PageMetadata{
		Title:       result.Metadata.Title,
		Description: result.Metadata.Description,
		Language:    result.Metadata.Language,
	}
}
