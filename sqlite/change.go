package sqlite

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/pagewatch/pagewatch"
)

// Compile-time interface verification.
var _ pagewatch.ChangeService = (*ChangeService)(nil)

// ChangeService implements pagewatch.ChangeService using SQLite.
// Change records are append-only.
type ChangeService struct {
	db *DB
}

// NewChangeService creates a new ChangeService.
func NewChangeService(db *DB) *ChangeService {
	return &ChangeService{db: db}
}

// CreateChange appends a new change record.
func (s *ChangeService) CreateChange(ctx context.Context, change *pagewatch.ChangeRecord) error {
	if err := change.Validate(); err != nil {
		return err
	}

	change.ID = uuid.New().String()
	if change.DetectedAt.IsZero() {
		change.DetectedAt = time.Now().UTC()
	}

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO change_records (id, page_id, owner_id, detected_at, change_percentage, severity, previous_length, new_length, notification_sent)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
	`, change.ID, change.PageID, change.OwnerID, change.DetectedAt.UTC().Format(time.RFC3339Nano),
		change.ChangePercentage, string(change.Severity),
		change.PreviousLength, change.NewLength, boolToInt(change.NotificationSent))

	return err
}

// FindChangesByPage retrieves change records for a page, newest-first.
func (s *ChangeService) FindChangesByPage(ctx context.Context, pageID string, limit int) ([]*pagewatch.ChangeRecord, error) {
	return s.findChanges(ctx, "page_id", pageID, limit)
}

// FindChangesByOwner retrieves change records for an owner, newest-first.
func (s *ChangeService) FindChangesByOwner(ctx context.Context, ownerID string, limit int) ([]*pagewatch.ChangeRecord, error) {
	return s.findChanges(ctx, "owner_id", ownerID, limit)
}

func (s *ChangeService) findChanges(ctx context.Context, column, value string, limit int) ([]*pagewatch.ChangeRecord, error) {
	query := `
		SELECT id, page_id, owner_id, detected_at, change_percentage, severity, previous_length, new_length, notification_sent
		FROM change_records
		WHERE ` + column + ` = ?
		ORDER BY detected_at DESC
	`
	args := []any{value}
	if limit > 0 {
		query += " LIMIT ?"
		args = append(args, limit)
	}

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var changes []*pagewatch.ChangeRecord
	for rows.Next() {
		var change pagewatch.ChangeRecord
		var detectedAt, severity string
		var notificationSent int

		if err := rows.Scan(&change.ID, &change.PageID, &change.OwnerID, &detectedAt,
			&change.ChangePercentage, &severity, &change.PreviousLength, &change.NewLength,
			&notificationSent); err != nil {
			return nil, err
		}

		change.DetectedAt, err = time.Parse(time.RFC3339Nano, detectedAt)
		if err != nil {
			return nil, fmt.Errorf("failed to parse detected_at: %w", err)
		}
		change.Severity = pagewatch.Severity(severity)
		change.NotificationSent = notificationSent != 0

		changes = append(changes, &change)
	}
	return changes, rows.Err()
}
