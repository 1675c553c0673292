package mock

import (
	"context"

	"github.com/pagewatch/pagewatch"
)

var _ pagewatch.UserService = (*UserService)(nil)

// UserService is a mock implementation of pagewatch.UserService.
type UserService struct {
	CreateUserFn      func(ctx context.Context, user *pagewatch.User) error
	FindUserByIDFn    func(ctx context.Context, id string) (*pagewatch.User, error)
	FindUserByEmailFn func(ctx context.Context, email string) (*pagewatch.User, error)
}

func (s *UserService) CreateUser(ctx context.Context, user *pagewatch.User) error {
	return s.CreateUserFn(ctx, user)
}

func (s *UserService) FindUserByID(ctx context.Context, id string) (*pagewatch.User, error) {
	return s.FindUserByIDFn(ctx, id)
}

func (s *UserService) FindUserByEmail(ctx context.Context, email string) (*pagewatch.User, error) {
	return s.FindUserByEmailFn(ctx, email)
}
