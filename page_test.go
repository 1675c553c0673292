package pagewatch_test

import (
	"testing"
	"time"

	"github.com/pagewatch/pagewatch"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTrackedPage_Validate(t *testing.T) {
	t.Parallel()

	valid := func() *pagewatch.TrackedPage {
		return &pagewatch.TrackedPage{
			OwnerID:       "user-1",
			URL:           "https://example.com/pricing",
			CheckInterval: time.Hour,
		}
	}

	t.Run("accepts a valid page", func(t *testing.T) {
		t.Parallel()
		require.NoError(t, valid().Validate())
	})

	t.Run("rejects missing owner", func(t *testing.T) {
		t.Parallel()
		p := valid()
		p.OwnerID = ""
		err := p.Validate()
		require.Error(t, err)
		assert.Equal(t, pagewatch.EINVALID, pagewatch.ErrorCode(err))
	})

	t.Run("rejects missing URL", func(t *testing.T) {
		t.Parallel()
		p := valid()
		p.URL = ""
		err := p.Validate()
		require.Error(t, err)
		assert.Equal(t, pagewatch.EINVALID, pagewatch.ErrorCode(err))
	})

	t.Run("rejects non-http scheme", func(t *testing.T) {
		t.Parallel()
		p := valid()
		p.URL = "ftp://example.com/file"
		err := p.Validate()
		require.Error(t, err)
		assert.Equal(t, pagewatch.EINVALID, pagewatch.ErrorCode(err))
	})

	t.Run("rejects non-positive interval", func(t *testing.T) {
		t.Parallel()
		p := valid()
		p.CheckInterval = 0
		err := p.Validate()
		require.Error(t, err)
		assert.Equal(t, pagewatch.EINVALID, pagewatch.ErrorCode(err))
	})
}

func TestTrackedPage_Due(t *testing.T) {
	t.Parallel()

	now := time.Date(2026, 8, 23, 12, 0, 0, 0, time.UTC)

	t.Run("never-checked page is always due", func(t *testing.T) {
		t.Parallel()
		p := &pagewatch.TrackedPage{CheckInterval: time.Hour}
		assert.True(t, p.Due(now))
	})

	t.Run("due exactly when the interval elapses", func(t *testing.T) {
		t.Parallel()
		checked := now.Add(-time.Hour)
		p := &pagewatch.TrackedPage{CheckInterval: time.Hour, LastCheckedAt: &checked}
		assert.True(t, p.Due(now))
	})

	t.Run("not due one second before the interval elapses", func(t *testing.T) {
		t.Parallel()
		checked := now.Add(-time.Hour + time.Second)
		p := &pagewatch.TrackedPage{CheckInterval: time.Hour, LastCheckedAt: &checked}
		assert.False(t, p.Due(now))
	})

	t.Run("due after the interval elapses", func(t *testing.T) {
		t.Parallel()
		checked := now.Add(-2 * time.Hour)
		p := &pagewatch.TrackedPage{CheckInterval: time.Hour, LastCheckedAt: &checked}
		assert.True(t, p.Due(now))
	})
}
