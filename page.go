package pagewatch

import (
	"context"
	"strings"
	"time"
)

// DefaultCheckInterval is used when a page is registered without an
// explicit interval (24 hours).
const DefaultCheckInterval = 24 * time.Hour

// TrackedPage represents a web page monitored for content changes.
// A page is owned by exactly one user; (OwnerID, URL) is unique.
type TrackedPage struct {
	ID          string `json:"id"`
	OwnerID     string `json:"ownerId"`
	URL         string `json:"url"`
	DisplayName string `json:"displayName"`

	// CheckInterval is the minimum time between checks of this page.
	CheckInterval time.Duration `json:"checkInterval"`

	IsActive  bool      `json:"isActive"`
	CreatedAt time.Time `json:"createdAt"`

	// LastCheckedAt is nil until the scheduler has checked the page once.
	LastCheckedAt        *time.Time `json:"lastCheckedAt"`
	LastChangeDetectedAt *time.Time `json:"lastChangeDetectedAt"`

	// CurrentVersionID points at the most recently captured PageVersion
	// once at least one version exists. Lookup reference only.
	CurrentVersionID string `json:"currentVersionId"`
}

// Validate returns an error if the page contains invalid fields.
func (p *TrackedPage) Validate() error {
	if p.OwnerID == "" {
		return Errorf(EINVALID, "page owner ID required")
	}
	if p.URL == "" {
		return Errorf(EINVALID, "page URL required")
	}
	if !strings.HasPrefix(p.URL, "http://") && !strings.HasPrefix(p.URL, "https://") {
		return Errorf(EINVALID, "page URL must start with http:// or https://")
	}
	if p.CheckInterval <= 0 {
		return Errorf(EINVALID, "page check interval must be positive")
	}
	return nil
}

// Due reports whether the page is due for a check at the given time.
// A page that has never been checked is always due.
func (p *TrackedPage) Due(now time.Time) bool {
	if p.LastCheckedAt == nil {
		return true
	}
	return !now.Before(p.LastCheckedAt.Add(p.CheckInterval))
}

// PageService represents a service for managing tracked pages.
type PageService interface {
	// CreatePage registers a new tracked page.
	// Returns ECONFLICT if the owner already tracks the URL.
	CreatePage(ctx context.Context, page *TrackedPage) error

	// FindPageByID retrieves a page by ID.
	// Returns ENOTFOUND if the page does not exist.
	FindPageByID(ctx context.Context, id string) (*TrackedPage, error)

	// FindPages retrieves pages matching the filter.
	FindPages(ctx context.Context, filter PageFilter) ([]*TrackedPage, error)

	// FindDuePages retrieves active pages whose check interval has elapsed
	// at the given time, or which have never been checked.
	FindDuePages(ctx context.Context, now time.Time) ([]*TrackedPage, error)

	// UpdatePage updates an existing page.
	// Returns ENOTFOUND if the page does not exist.
	UpdatePage(ctx context.Context, id string, upd PageUpdate) (*TrackedPage, error)

	// DeletePage permanently removes a page and its versions and changes.
	// Returns ENOTFOUND if the page does not exist.
	DeletePage(ctx context.Context, id string) error
}

// PageFilter represents a filter for FindPages.
type PageFilter struct {
	ID      *string `json:"id"`
	OwnerID *string `json:"ownerId"`
	URL     *string `json:"url"`

	// ActiveOnly restricts results to active pages.
	ActiveOnly bool `json:"activeOnly"`

	Offset int `json:"offset"`
	Limit  int `json:"limit"`
}

// PageUpdate represents fields that can be updated on a tracked page.
// The scheduler uses the timestamp and version fields; deactivation and
// renaming come from the CLI.
type PageUpdate struct {
	DisplayName          *string        `json:"displayName"`
	CheckInterval        *time.Duration `json:"checkInterval"`
	IsActive             *bool          `json:"isActive"`
	LastCheckedAt        *time.Time     `json:"lastCheckedAt"`
	LastChangeDetectedAt *time.Time     `json:"lastChangeDetectedAt"`
	CurrentVersionID     *string        `json:"currentVersionId"`
}
