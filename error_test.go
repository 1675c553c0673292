package pagewatch_test

import (
	"errors"
	"testing"

	"github.com/pagewatch/pagewatch"
	"github.com/stretchr/testify/assert"
)

func TestErrorCode(t *testing.T) {
	t.Parallel()

	t.Run("returns code for application error", func(t *testing.T) {
		t.Parallel()
		err := pagewatch.Errorf(pagewatch.ENOTFOUND, "page not found")
		assert.Equal(t, pagewatch.ENOTFOUND, pagewatch.ErrorCode(err))
	})

	t.Run("returns code for wrapped application error", func(t *testing.T) {
		t.Parallel()
		inner := pagewatch.Errorf(pagewatch.ECONFLICT, "duplicate page")
		assert.Equal(t, pagewatch.ECONFLICT, pagewatch.ErrorCode(wrap(inner)))
	})

	t.Run("returns EINTERNAL for non-application error", func(t *testing.T) {
		t.Parallel()
		assert.Equal(t, pagewatch.EINTERNAL, pagewatch.ErrorCode(errors.New("disk full")))
	})

	t.Run("returns empty string for nil", func(t *testing.T) {
		t.Parallel()
		assert.Equal(t, "", pagewatch.ErrorCode(nil))
	})
}

func TestErrorMessage(t *testing.T) {
	t.Parallel()

	t.Run("returns message for application error", func(t *testing.T) {
		t.Parallel()
		err := pagewatch.Errorf(pagewatch.EINVALID, "page URL required")
		assert.Equal(t, "page URL required", pagewatch.ErrorMessage(err))
	})

	t.Run("masks non-application errors", func(t *testing.T) {
		t.Parallel()
		assert.Equal(t, "Internal error.", pagewatch.ErrorMessage(errors.New("disk full")))
	})

	t.Run("returns empty string for nil", func(t *testing.T) {
		t.Parallel()
		assert.Equal(t, "", pagewatch.ErrorMessage(nil))
	})
}

func wrap(err error) error {
	return errors.Join(errors.New("outer"), err)
}
