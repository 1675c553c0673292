package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/pagewatch/pagewatch"
)

// Compile-time interface verification.
var _ pagewatch.VersionService = (*VersionService)(nil)

// VersionService implements pagewatch.VersionService using SQLite.
// Versions are immutable; there are no update operations.
type VersionService struct {
	db *DB
}

// NewVersionService creates a new VersionService.
func NewVersionService(db *DB) *VersionService {
	return &VersionService{db: db}
}

// CreateVersion stores a new version snapshot.
func (s *VersionService) CreateVersion(ctx context.Context, version *pagewatch.PageVersion) error {
	if err := version.Validate(); err != nil {
		return err
	}

	version.ID = uuid.New().String()
	if version.CapturedAt.IsZero() {
		version.CapturedAt = time.Now().UTC()
	}

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO page_versions (id, page_id, captured_at, extracted_text, content_hash, content_length, word_count)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`, version.ID, version.PageID, version.CapturedAt.UTC().Format(time.RFC3339Nano),
		version.ExtractedText, version.ContentHash,
		version.Metadata.ContentLength, version.Metadata.WordCount)

	return err
}

// FindVersionByID retrieves a version by ID.
func (s *VersionService) FindVersionByID(ctx context.Context, id string) (*pagewatch.PageVersion, error) {
	row := s.db.QueryRowContext(ctx, `
		SELECT id, page_id, captured_at, extracted_text, content_hash, content_length, word_count
		FROM page_versions
		WHERE id = ?
	`, id)

	version, err := scanVersion(row)
	if err == sql.ErrNoRows {
		return nil, pagewatch.Errorf(pagewatch.ENOTFOUND, "version not found")
	}
	if err != nil {
		return nil, err
	}
	return version, nil
}

// FindVersionsByPage retrieves versions for a page ordered newest-first.
func (s *VersionService) FindVersionsByPage(ctx context.Context, pageID string, limit int) ([]*pagewatch.PageVersion, error) {
	query := `
		SELECT id, page_id, captured_at, extracted_text, content_hash, content_length, word_count
		FROM page_versions
		WHERE page_id = ?
		ORDER BY captured_at DESC
	`
	args := []any{pageID}
	if limit > 0 {
		query += " LIMIT ?"
		args = append(args, limit)
	}

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var versions []*pagewatch.PageVersion
	for rows.Next() {
		version, err := scanVersion(rows)
		if err != nil {
			return nil, err
		}
		versions = append(versions, version)
	}
	return versions, rows.Err()
}

// FindPreviousVersion retrieves the second-most-recent version for a page.
// Returns ENOTFOUND if fewer than two versions exist.
func (s *VersionService) FindPreviousVersion(ctx context.Context, pageID string) (*pagewatch.PageVersion, error) {
	versions, err := s.FindVersionsByPage(ctx, pageID, 2)
	if err != nil {
		return nil, err
	}
	if len(versions) < 2 {
		return nil, pagewatch.Errorf(pagewatch.ENOTFOUND, "no settled previous version")
	}
	return versions[1], nil
}

func scanVersion(row rowScanner) (*pagewatch.PageVersion, error) {
	var version pagewatch.PageVersion
	var capturedAt string

	if err := row.Scan(&version.ID, &version.PageID, &capturedAt, &version.ExtractedText,
		&version.ContentHash, &version.Metadata.ContentLength, &version.Metadata.WordCount); err != nil {
		return nil, err
	}

	var err error
	version.CapturedAt, err = time.Parse(time.RFC3339Nano, capturedAt)
	if err != nil {
		return nil, fmt.Errorf("failed to parse captured_at: %w", err)
	}

	return &version, nil
}
