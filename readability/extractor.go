// Package readability provides a pagewatch.Extractor backed by
// go-readability's article extraction.
package readability

import (
	"strings"

	readability "github.com/go-shiori/go-readability"
	"github.com/pagewatch/pagewatch"
)

// Ensure Extractor implements pagewatch.Extractor at compile time.
var _ pagewatch.Extractor = (*Extractor)(nil)

// Extractor wraps go-readability to extract main content from HTML.
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

	article, err := readability.FromReader(strings.NewReader(rawHTML), nil)
	if err != nil {
		return nil, err
	}

	text := strings.TrimSpace(article.TextContent)
	if text == "" {
		return nil, pagewatch.Errorf(pagewatch.ENOCONTENT, "no substantial content found")
	}

	return &pagewatch.ExtractResult{Text: text}, nil
}

// Metadata pulls title, description, and language from the raw document.
// go-readability does not expose document language.
func (e *Extractor) Metadata(rawHTML string) pagewatch.PageMetadata {
	article, err := readability.FromReader(strings.NewReader(rawHTML), nil)
	if err != nil {
		return pagewatch.PageMetadata{}
	}

	return pagewatch.PageMetadata{
		Title:       article.Title,
		Description: article.Excerpt,
	}
}
