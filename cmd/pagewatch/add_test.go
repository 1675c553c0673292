package main_test

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/pagewatch/pagewatch"
	main "github.com/pagewatch/pagewatch/cmd/pagewatch"
	"github.com/pagewatch/pagewatch/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAddCmd_Run(t *testing.T) {
	t.Parallel()

	t.Run("creates page for an existing owner", func(t *testing.T) {
		t.Parallel()

		users := &mock.UserService{
			FindUserByEmailFn: func(_ context.Context, email string) (*pagewatch.User, error) {
				return &pagewatch.User{ID: "user-1", Email: email}, nil
			},
		}

		var created *pagewatch.TrackedPage
		pages := &mock.PageService{
			CreatePageFn: func(_ context.Context, page *pagewatch.TrackedPage) error {
				page.ID = "page-1"
				created = page
				return nil
			},
		}

		stdout := &bytes.Buffer{}

		deps := &main.Dependencies{
			Ctx:    context.Background(),
			Stdout: stdout,
			Stderr: &bytes.Buffer{},
			Users:  users,
			Pages:  pages,
		}

		cmd := &main.AddCmd{
			URL:      "https://example.com/pricing",
			Owner:    "owner@example.com",
			Name:     "Pricing",
			Interval: 6 * time.Hour,
		}

		err := cmd.Run(deps)
		require.NoError(t, err)

		require.NotNil(t, created)
		assert.Equal(t, "user-1", created.OwnerID)
		assert.Equal(t, "https://example.com/pricing", created.URL)
		assert.Equal(t, "Pricing", created.DisplayName)
		assert.Equal(t, 6*time.Hour, created.CheckInterval)
		assert.Contains(t, stdout.String(), "page-1")
	})

	t.Run("registers unknown owner before creating the page", func(t *testing.T) {
		t.Parallel()

		var registered *pagewatch.User
		users := &mock.UserService{
			FindUserByEmailFn: func(_ context.Context, _ string) (*pagewatch.User, error) {
				return nil, pagewatch.Errorf(pagewatch.ENOTFOUND, "user not found")
			},
			CreateUserFn: func(_ context.Context, user *pagewatch.User) error {
				user.ID = "user-new"
				registered = user
				return nil
			},
		}

		pages := &mock.PageService{
			CreatePageFn: func(_ context.Context, page *pagewatch.TrackedPage) error {
				assert.Equal(t, "user-new", page.OwnerID)
				return nil
			},
		}

		stdout := &bytes.Buffer{}

		deps := &main.Dependencies{
			Ctx:    context.Background(),
			Stdout: stdout,
			Stderr: &bytes.Buffer{},
			Users:  users,
			Pages:  pages,
		}

		cmd := &main.AddCmd{
			URL:      "https://example.com/pricing",
			Owner:    "new@example.com",
			Interval: time.Hour,
		}

		err := cmd.Run(deps)
		require.NoError(t, err)

		require.NotNil(t, registered)
		assert.Equal(t, "new@example.com", registered.Email)
		assert.True(t, registered.EmailAlerts, "alerts default to enabled")
		assert.Contains(t, stdout.String(), "Registered owner")
	})

	t.Run("reports conflict for a duplicate URL", func(t *testing.T) {
		t.Parallel()

		users := &mock.UserService{
			FindUserByEmailFn: func(_ context.Context, email string) (*pagewatch.User, error) {
				return &pagewatch.User{ID: "user-1", Email: email}, nil
			},
		}
		pages := &mock.PageService{
			CreatePageFn: func(_ context.Context, _ *pagewatch.TrackedPage) error {
				return pagewatch.Errorf(pagewatch.ECONFLICT, "page already tracked")
			},
		}

		stderr := &bytes.Buffer{}

		deps := &main.Dependencies{
			Ctx:    context.Background(),
			Stdout: &bytes.Buffer{},
			Stderr: stderr,
			Users:  users,
			Pages:  pages,
		}

		cmd := &main.AddCmd{
			URL:      "https://example.com/pricing",
			Owner:    "owner@example.com",
			Interval: time.Hour,
		}

		err := cmd.Run(deps)
		require.Error(t, err)
		assert.Equal(t, pagewatch.ECONFLICT, pagewatch.ErrorCode(err))
		assert.Contains(t, stderr.String(), "already tracks")
	})
}
