package mock

import (
	"github.com/pagewatch/pagewatch"
)

var _ pagewatch.Extractor = (*Extractor)(nil)

// Extractor is a mock implementation of pagewatch.Extractor.
type Extractor struct {
	ExtractFn  func(rawHTML string) (*pagewatch.ExtractResult, error)
	MetadataFn func(rawHTML string) pagewatch.PageMetadata
}

func (e *Extractor) Extract(rawHTML string) (*pagewatch.ExtractResult, error) {
	return e.ExtractFn(rawHTML)
}

func (e *Extractor) Metadata(rawHTML string) pagewatch.PageMetadata {
	if e.MetadataFn == nil {
		return pagewatch.PageMetadata{}
	}
	return e.MetadataFn(rawHTML)
}
