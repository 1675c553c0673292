package mock

import (
	"context"

	"github.com/pagewatch/pagewatch"
)

var _ pagewatch.VersionService = (*VersionService)(nil)

// VersionService is a mock implementation of pagewatch.VersionService.
type VersionService struct {
	CreateVersionFn       func(ctx context.Context, version *pagewatch.PageVersion) error
	FindVersionByIDFn     func(ctx context.Context, id string) (*pagewatch.PageVersion, error)
	FindVersionsByPageFn  func(ctx context.Context, pageID string, limit int) ([]*pagewatch.PageVersion, error)
	FindPreviousVersionFn func(ctx context.Context, pageID string) (*pagewatch.PageVersion, error)
}

func (s *VersionService) CreateVersion(ctx context.Context, version *pagewatch.PageVersion) error {
	return s.CreateVersionFn(ctx, version)
}

func (s *VersionService) FindVersionByID(ctx context.Context, id string) (*pagewatch.PageVersion, error) {
	return s.FindVersionByIDFn(ctx, id)
}

func (s *VersionService) FindVersionsByPage(ctx context.Context, pageID string, limit int) ([]*pagewatch.PageVersion, error) {
	return s.FindVersionsByPageFn(ctx, pageID, limit)
}

func (s *VersionService) FindPreviousVersion(ctx context.Context, pageID string) (*pagewatch.PageVersion, error) {
	return s.FindPreviousVersionFn(ctx, pageID)
}
