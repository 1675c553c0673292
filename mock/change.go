package mock

import (
	"context"

	"github.com/pagewatch/pagewatch"
)

var _ pagewatch.ChangeService = (*ChangeService)(nil)

// ChangeService is a mock implementation of pagewatch.ChangeService.
type ChangeService struct {
	CreateChangeFn       func(ctx context.Context, change *pagewatch.ChangeRecord) error
	FindChangesByPageFn  func(ctx context.Context, pageID string, limit int) ([]*pagewatch.ChangeRecord, error)
	FindChangesByOwnerFn func(ctx context.Context, ownerID string, limit int) ([]*pagewatch.ChangeRecord, error)
}

func (s *ChangeService) CreateChange(ctx context.Context, change *pagewatch.ChangeRecord) error {
	return s.CreateChangeFn(ctx, change)
}

func (s *ChangeService) FindChangesByPage(ctx context.Context, pageID string, limit int) ([]*pagewatch.ChangeRecord, error) {
	return s.FindChangesByPageFn(ctx, pageID, limit)
}

func (s *ChangeService) FindChangesByOwner(ctx context.Context, ownerID string, limit int) ([]*pagewatch.ChangeRecord, error) {
	return s.FindChangesByOwnerFn(ctx, ownerID, limit)
}
