package sqlite_test

import (
	"context"
	"testing"
	"time"

	"github.com/pagewatch/pagewatch"
	"github.com/pagewatch/pagewatch/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVersionService_CreateVersion(t *testing.T) {
	t.Parallel()

	t.Run("creates version with generated ID", func(t *testing.T) {
		t.Parallel()

		db := setupTestDB(t)
		owner := createTestUser(t, db, "owner@example.com")
		page := createTestPage(t, db, owner.ID, "https://example.com/docs")
		svc := sqlite.NewVersionService(db)
		ctx := context.Background()

		version := &pagewatch.PageVersion{
			PageID:        page.ID,
			ExtractedText: "the extracted page text",
			ContentHash:   "abc123",
			Metadata: pagewatch.VersionMetadata{
				ContentLength: 23,
				WordCount:     4,
			},
		}

		require.NoError(t, svc.CreateVersion(ctx, version))
		assert.NotEmpty(t, version.ID)
		assert.False(t, version.CapturedAt.IsZero())

		found, err := svc.FindVersionByID(ctx, version.ID)
		require.NoError(t, err)
		assert.Equal(t, version.ExtractedText, found.ExtractedText)
		assert.Equal(t, version.ContentHash, found.ContentHash)
		assert.Equal(t, 23, found.Metadata.ContentLength)
		assert.Equal(t, 4, found.Metadata.WordCount)
	})

	t.Run("returns EINVALID for empty text", func(t *testing.T) {
		t.Parallel()

		db := setupTestDB(t)
		svc := sqlite.NewVersionService(db)

		err := svc.CreateVersion(context.Background(), &pagewatch.PageVersion{PageID: "page-1"})
		require.Error(t, err)
		assert.Equal(t, pagewatch.EINVALID, pagewatch.ErrorCode(err))
	})
}

func TestVersionService_FindVersionsByPage(t *testing.T) {
	t.Parallel()

	t.Run("returns versions newest-first", func(t *testing.T) {
		t.Parallel()

		db := setupTestDB(t)
		owner := createTestUser(t, db, "owner@example.com")
		page := createTestPage(t, db, owner.ID, "https://example.com/docs")
		svc := sqlite.NewVersionService(db)
		ctx := context.Background()

		base := time.Now().UTC().Add(-time.Hour)
		for i, text := range []string{"first version", "second version", "third version"} {
			require.NoError(t, svc.CreateVersion(ctx, &pagewatch.PageVersion{
				PageID:        page.ID,
				CapturedAt:    base.Add(time.Duration(i) * time.Minute),
				ExtractedText: text,
			}))
		}

		versions, err := svc.FindVersionsByPage(ctx, page.ID, 0)
		require.NoError(t, err)
		require.Len(t, versions, 3)
		assert.Equal(t, "third version", versions[0].ExtractedText)
		assert.Equal(t, "first version", versions[2].ExtractedText)
	})

	t.Run("applies limit", func(t *testing.T) {
		t.Parallel()

		db := setupTestDB(t)
		owner := createTestUser(t, db, "owner@example.com")
		page := createTestPage(t, db, owner.ID, "https://example.com/docs")
		svc := sqlite.NewVersionService(db)
		ctx := context.Background()

		base := time.Now().UTC().Add(-time.Hour)
		for i := 0; i < 3; i++ {
			require.NoError(t, svc.CreateVersion(ctx, &pagewatch.PageVersion{
				PageID:        page.ID,
				CapturedAt:    base.Add(time.Duration(i) * time.Minute),
				ExtractedText: "version text",
			}))
		}

		versions, err := svc.FindVersionsByPage(ctx, page.ID, 2)
		require.NoError(t, err)
		assert.Len(t, versions, 2)
	})
}

func TestVersionService_FindPreviousVersion(t *testing.T) {
	t.Parallel()

	t.Run("returns the second-most-recent version", func(t *testing.T) {
		t.Parallel()

		db := setupTestDB(t)
		owner := createTestUser(t, db, "owner@example.com")
		page := createTestPage(t, db, owner.ID, "https://example.com/docs")
		svc := sqlite.NewVersionService(db)
		ctx := context.Background()

		base := time.Now().UTC().Add(-time.Hour)
		for i, text := range []string{"oldest", "settled", "latest"} {
			require.NoError(t, svc.CreateVersion(ctx, &pagewatch.PageVersion{
				PageID:        page.ID,
				CapturedAt:    base.Add(time.Duration(i) * time.Minute),
				ExtractedText: text,
			}))
		}

		prev, err := svc.FindPreviousVersion(ctx, page.ID)
		require.NoError(t, err)
		assert.Equal(t, "settled", prev.ExtractedText)
	})

	t.Run("returns ENOTFOUND with fewer than two versions", func(t *testing.T) {
		t.Parallel()

		db := setupTestDB(t)
		owner := createTestUser(t, db, "owner@example.com")
		page := createTestPage(t, db, owner.ID, "https://example.com/docs")
		svc := sqlite.NewVersionService(db)
		ctx := context.Background()

		_, err := svc.FindPreviousVersion(ctx, page.ID)
		require.Error(t, err)
		assert.Equal(t, pagewatch.ENOTFOUND, pagewatch.ErrorCode(err))

		require.NoError(t, svc.CreateVersion(ctx, &pagewatch.PageVersion{
			PageID:        page.ID,
			ExtractedText: "only version",
		}))

		_, err = svc.FindPreviousVersion(ctx, page.ID)
		require.Error(t, err)
		assert.Equal(t, pagewatch.ENOTFOUND, pagewatch.ErrorCode(err))
	})
}
