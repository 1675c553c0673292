package mock

import (
	"context"
	"time"

	"github.com/pagewatch/pagewatch"
)

var _ pagewatch.PageService = (*PageService)(nil)

// PageService is a mock implementation of pagewatch.PageService.
type PageService struct {
	CreatePageFn   func(ctx context.Context, page *pagewatch.TrackedPage) error
	FindPageByIDFn func(ctx context.Context, id string) (*pagewatch.TrackedPage, error)
	FindPagesFn    func(ctx context.Context, filter pagewatch.PageFilter) ([]*pagewatch.TrackedPage, error)
	FindDuePagesFn func(ctx context.Context, now time.Time) ([]*pagewatch.TrackedPage, error)
	UpdatePageFn   func(ctx context.Context, id string, upd pagewatch.PageUpdate) (*pagewatch.TrackedPage, error)
	DeletePageFn   func(ctx context.Context, id string) error
}

func (s *PageService) CreatePage(ctx context.Context, page *pagewatch.TrackedPage) error {
	return s.CreatePageFn(ctx, page)
}

func (s *PageService) FindPageByID(ctx context.Context, id string) (*pagewatch.TrackedPage, error) {
	return s.FindPageByIDFn(ctx, id)
}

func (s *PageService) FindPages(ctx context.Context, filter pagewatch.PageFilter) ([]*pagewatch.TrackedPage, error) {
	return s.FindPagesFn(ctx, filter)
}

func (s *PageService) FindDuePages(ctx context.Context, now time.Time) ([]*pagewatch.TrackedPage, error) {
	return s.FindDuePagesFn(ctx, now)
}

func (s *PageService) UpdatePage(ctx context.Context, id string, upd pagewatch.PageUpdate) (*pagewatch.TrackedPage, error) {
	return s.UpdatePageFn(ctx, id, upd)
}

func (s *PageService) DeletePage(ctx context.Context, id string) error {
	return s.DeletePageFn(ctx, id)
}
