package pagewatch

import (
	"context"
	"time"
)

// PageVersion represents a snapshot of a page's extracted text.
// Versions are immutable once created and ordered by CapturedAt descending
// per page. One version is created per fetch-and-extract cycle that is
// judged changed (or unconditionally for the first check of a page).
type PageVersion struct {
	ID         string    `json:"id"`
	PageID     string    `json:"pageId"`
	CapturedAt time.Time `json:"capturedAt"`

	ExtractedText string `json:"extractedText"`

	// ContentHash is an xxhash of ExtractedText, used to short-circuit
	// comparison against the previous version.
	ContentHash string `json:"contentHash"`

	Metadata VersionMetadata `json:"metadata"`
}

// VersionMetadata holds derived statistics about a version's text.
type VersionMetadata struct {
	ContentLength int `json:"contentLength"`
	WordCount     int `json:"wordCount"`
}

// Validate returns an error if the version contains invalid fields.
func (v *PageVersion) Validate() error {
	if v.PageID == "" {
		return Errorf(EINVALID, "version page ID required")
	}
	if v.ExtractedText == "" {
		return Errorf(EINVALID, "version extracted text required")
	}
	return nil
}

// VersionService represents a service for managing page versions.
type VersionService interface {
	// CreateVersion stores a new version snapshot.
	CreateVersion(ctx context.Context, version *PageVersion) error

	// FindVersionByID retrieves a version by ID.
	// Returns ENOTFOUND if the version does not exist.
	FindVersionByID(ctx context.Context, id string) (*PageVersion, error)

	// FindVersionsByPage retrieves versions for a page ordered newest-first.
	// A limit of 0 means no limit.
	FindVersionsByPage(ctx context.Context, pageID string, limit int) ([]*PageVersion, error)

	// FindPreviousVersion retrieves the second-most-recent version for a
	// page. Comparison is always made against the last settled version, not
	// one written moments earlier. Returns ENOTFOUND if fewer than two
	// versions exist.
	FindPreviousVersion(ctx context.Context, pageID string) (*PageVersion, error)
}
