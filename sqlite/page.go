package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/pagewatch/pagewatch"
)

// Compile-time interface verification.
var _ pagewatch.PageService = (*PageService)(nil)

// PageService implements pagewatch.PageService using SQLite.
type PageService struct {
	db *DB
}

// NewPageService creates a new PageService.
func NewPageService(db *DB) *PageService {
	return &PageService{db: db}
}

const pageColumns = `id, owner_id, url, display_name, check_interval_seconds, is_active,
	created_at, last_checked_at, last_change_detected_at, current_version_id`

// CreatePage registers a new tracked page.
func (s *PageService) CreatePage(ctx context.Context, page *pagewatch.TrackedPage) error {
	if page.CheckInterval == 0 {
		page.CheckInterval = pagewatch.DefaultCheckInterval
	}
	if page.DisplayName == "" {
		page.DisplayName = page.URL
	}
	if err := page.Validate(); err != nil {
		return err
	}

	// New pages always start active; pausing is an update.
	page.IsActive = true

	page.ID = uuid.New().String()
	page.CreatedAt = time.Now().UTC()

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO tracked_pages (id, owner_id, url, display_name, check_interval_seconds, is_active, created_at, current_version_id)
		VALUES (?, ?, ?, ?, ?, ?, ?, '')
	`, page.ID, page.OwnerID, page.URL, page.DisplayName, int64(page.CheckInterval.Seconds()),
		boolToInt(page.IsActive), page.CreatedAt.Format(time.RFC3339))

	if isUniqueViolation(err) {
		return pagewatch.Errorf(pagewatch.ECONFLICT, "page already tracked: %s", page.URL)
	}
	return err
}

// FindPageByID retrieves a page by ID.
func (s *PageService) FindPageByID(ctx context.Context, id string) (*pagewatch.TrackedPage, error) {
	row := s.db.QueryRowContext(ctx, `
		SELECT `+pageColumns+`
		FROM tracked_pages
		WHERE id = ?
	`, id)

	page, err := scanPage(row)
	if err == sql.ErrNoRows {
		return nil, pagewatch.Errorf(pagewatch.ENOTFOUND, "page not found")
	}
	if err != nil {
		return nil, err
	}
	return page, nil
}

// FindPages retrieves pages matching the filter.
func (s *PageService) FindPages(ctx context.Context, filter pagewatch.PageFilter) ([]*pagewatch.TrackedPage, error) {
	var query strings.Builder
	var args []any

	query.WriteString("SELECT " + pageColumns + " FROM tracked_pages WHERE 1=1")

	if filter.ID != nil {
		query.WriteString(" AND id = ?")
		args = append(args, *filter.ID)
	}
	if filter.OwnerID != nil {
		query.WriteString(" AND owner_id = ?")
		args = append(args, *filter.OwnerID)
	}
	if filter.URL != nil {
		query.WriteString(" AND url = ?")
		args = append(args, *filter.URL)
	}
	if filter.ActiveOnly {
		query.WriteString(" AND is_active = 1")
	}

	query.WriteString(" ORDER BY created_at DESC")

	if filter.Limit > 0 {
		query.WriteString(" LIMIT ?")
		args = append(args, filter.Limit)
	}
	if filter.Offset > 0 {
		query.WriteString(" OFFSET ?")
		args = append(args, filter.Offset)
	}

	rows, err := s.db.QueryContext(ctx, query.String(), args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanPages(rows)
}

// FindDuePages retrieves active pages due for a check at the given time.
func (s *PageService) FindDuePages(ctx context.Context, now time.Time) ([]*pagewatch.TrackedPage, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT `+pageColumns+`
		FROM tracked_pages
		WHERE is_active = 1
		  AND (last_checked_at IS NULL
		       OR unixepoch(last_checked_at) + check_interval_seconds <= unixepoch(?))
		ORDER BY created_at ASC
	`, now.UTC().Format(time.RFC3339))
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanPages(rows)
}

// UpdatePage updates an existing page.
func (s *PageService) UpdatePage(ctx context.Context, id string, upd pagewatch.PageUpdate) (*pagewatch.TrackedPage, error) {
	page, err := s.FindPageByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if upd.DisplayName != nil {
		page.DisplayName = *upd.DisplayName
	}
	if upd.CheckInterval != nil {
		page.CheckInterval = *upd.CheckInterval
	}
	if upd.IsActive != nil {
		page.IsActive = *upd.IsActive
	}
	if upd.LastCheckedAt != nil {
		t := upd.LastCheckedAt.UTC()
		page.LastCheckedAt = &t
	}
	if upd.LastChangeDetectedAt != nil {
		t := upd.LastChangeDetectedAt.UTC()
		page.LastChangeDetectedAt = &t
	}
	if upd.CurrentVersionID != nil {
		page.CurrentVersionID = *upd.CurrentVersionID
	}

	if err := page.Validate(); err != nil {
		return nil, err
	}

	_, err = s.db.ExecContext(ctx, `
		UPDATE tracked_pages
		SET display_name = ?, check_interval_seconds = ?, is_active = ?,
		    last_checked_at = ?, last_change_detected_at = ?, current_version_id = ?
		WHERE id = ?
	`, page.DisplayName, int64(page.CheckInterval.Seconds()), boolToInt(page.IsActive),
		formatTimePtr(page.LastCheckedAt), formatTimePtr(page.LastChangeDetectedAt),
		page.CurrentVersionID, id)
	if err != nil {
		return nil, err
	}

	return page, nil
}

// DeletePage permanently removes a page and its versions and changes.
func (s *PageService) DeletePage(ctx context.Context, id string) error {
	result, err := s.db.ExecContext(ctx, "DELETE FROM tracked_pages WHERE id = ?", id)
	if err != nil {
		return err
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}

	if rows == 0 {
		return pagewatch.Errorf(pagewatch.ENOTFOUND, "page not found")
	}

	return nil
}

// rowScanner abstracts *sql.Row and *sql.Rows for scanPage.
type rowScanner interface {
	Scan(dest ...any) error
}

func scanPage(row rowScanner) (*pagewatch.TrackedPage, error) {
	var page pagewatch.TrackedPage
	var intervalSeconds int64
	var isActive int
	var createdAt string
	var lastCheckedAt, lastChangeDetectedAt sql.NullString

	if err := row.Scan(&page.ID, &page.OwnerID, &page.URL, &page.DisplayName,
		&intervalSeconds, &isActive, &createdAt, &lastCheckedAt, &lastChangeDetectedAt,
		&page.CurrentVersionID); err != nil {
		return nil, err
	}

	page.CheckInterval = time.Duration(intervalSeconds) * time.Second
	page.IsActive = isActive != 0

	var err error
	page.CreatedAt, err = time.Parse(time.RFC3339, createdAt)
	if err != nil {
		return nil, fmt.Errorf("failed to parse created_at: %w", err)
	}
	page.LastCheckedAt, err = parseTimePtr(lastCheckedAt)
	if err != nil {
		return nil, fmt.Errorf("failed to parse last_checked_at: %w", err)
	}
	page.LastChangeDetectedAt, err = parseTimePtr(lastChangeDetectedAt)
	if err != nil {
		return nil, fmt.Errorf("failed to parse last_change_detected_at: %w", err)
	}

	return &page, nil
}

func scanPages(rows *sql.Rows) ([]*pagewatch.TrackedPage, error) {
	var pages []*pagewatch.TrackedPage
	for rows.Next() {
		page, err := scanPage(rows)
		if err != nil {
			return nil, err
		}
		pages = append(pages, page)
	}
	return pages, rows.Err()
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}

func formatTimePtr(t *time.Time) any {
	if t == nil {
		return nil
	}
	return t.UTC().Format(time.RFC3339)
}

func parseTimePtr(s sql.NullString) (*time.Time, error) {
	if !s.Valid {
		return nil, nil
	}
	t, err := time.Parse(time.RFC3339, s.String)
	if err != nil {
		return nil, err
	}
	return &t, nil
}
