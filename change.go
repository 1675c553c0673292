package pagewatch

import (
	"context"
	"time"
)

// Severity buckets a detected change by magnitude. It gates and describes
// notifications.
type Severity string

// Severity constants.
const (
	SeverityMinor    Severity = "minor"    // ratio below 20%
	SeverityModerate Severity = "moderate" // ratio 20-50%
	SeverityMajor    Severity = "major"    // ratio above 50%
)

// ClassifySeverity buckets a change ratio (0-100) into a Severity.
func ClassifySeverity(ratio float64) Severity {
	switch {
	case ratio < 20:
		return SeverityMinor
	case ratio <= 50:
		return SeverityModerate
	default:
		return SeverityMajor
	}
}

// ChangeRecord is an append-only audit entry for one detected change.
// Records are never mutated after creation.
type ChangeRecord struct {
	ID         string    `json:"id"`
	PageID     string    `json:"pageId"`
	OwnerID    string    `json:"ownerId"`
	DetectedAt time.Time `json:"detectedAt"`

	// ChangePercentage is the 0-100 dissimilarity between the previous and
	// new text.
	ChangePercentage float64  `json:"changePercentage"`
	Severity         Severity `json:"severity"`

	PreviousLength int `json:"previousLength"`
	NewLength      int `json:"newLength"`

	NotificationSent bool `json:"notificationSent"`
}

// Validate returns an error if the change record contains invalid fields.
func (c *ChangeRecord) Validate() error {
	if c.PageID == "" {
		return Errorf(EINVALID, "change page ID required")
	}
	if c.OwnerID == "" {
		return Errorf(EINVALID, "change owner ID required")
	}
	return nil
}

// ChangeService represents a service for managing change records.
type ChangeService interface {
	// CreateChange appends a new change record.
	CreateChange(ctx context.Context, change *ChangeRecord) error

	// FindChangesByPage retrieves change records for a page, newest-first.
	// A limit of 0 means no limit.
	FindChangesByPage(ctx context.Context, pageID string, limit int) ([]*ChangeRecord, error)

	// FindChangesByOwner retrieves change records for an owner, newest-first.
	// A limit of 0 means no limit.
	FindChangesByOwner(ctx context.Context, ownerID string, limit int) ([]*ChangeRecord, error)
}
