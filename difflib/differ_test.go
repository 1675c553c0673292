package difflib_test

import (
	"math"
	"testing"

	"github.com/pagewatch/pagewatch"
	"github.com/pagewatch/pagewatch/difflib"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDiffer_Compare(t *testing.T) {
	t.Parallel()

	differ := difflib.NewDiffer()

	t.Run("identical text yields zero ratio and no changes", func(t *testing.T) {
		t.Parallel()

		result, err := differ.Compare("same text\nsecond line", "same text\nsecond line")
		require.NoError(t, err)
		assert.Equal(t, 0.0, result.ChangeRatio)
		assert.Empty(t, result.Changes)
	})

	t.Run("both empty yields zero ratio", func(t *testing.T) {
		t.Parallel()

		result, err := differ.Compare("", "")
		require.NoError(t, err)
		assert.Equal(t, 0.0, result.ChangeRatio)
		assert.Empty(t, result.Changes)
	})

	t.Run("empty old text is a full change", func(t *testing.T) {
		t.Parallel()

		result, err := differ.Compare("", "brand new content")
		require.NoError(t, err)
		assert.Equal(t, 100.0, result.ChangeRatio)

		require.Len(t, result.Changes, 1)
		assert.Equal(t, pagewatch.ChangeAdded, result.Changes[0].Kind)
		assert.Equal(t, []string{"brand new content"}, result.Changes[0].NewLines)
	})

	t.Run("empty new text against non-empty old yields zero ratio", func(t *testing.T) {
		t.Parallel()

		result, err := differ.Compare("content that vanished", "")
		require.NoError(t, err)
		assert.Equal(t, 0.0, result.ChangeRatio)

		require.Len(t, result.Changes, 1)
		assert.Equal(t, pagewatch.ChangeRemoved, result.Changes[0].Kind)
	})

	t.Run("modified line maps to a modified change", func(t *testing.T) {
		t.Parallel()

		result, err := differ.Compare("alpha\nbeta\ngamma", "alpha\nBETA\ngamma")
		require.NoError(t, err)

		require.Len(t, result.Changes, 1)
		change := result.Changes[0]
		assert.Equal(t, pagewatch.ChangeModified, change.Kind)
		assert.Equal(t, 1, change.OldStart)
		assert.Equal(t, 2, change.OldEnd)
		assert.Equal(t, []string{"beta"}, change.OldLines)
		assert.Equal(t, []string{"BETA"}, change.NewLines)

		assert.Greater(t, result.ChangeRatio, 0.0)
		assert.Less(t, result.ChangeRatio, 100.0)
	})

	t.Run("appended line maps to an added change", func(t *testing.T) {
		t.Parallel()

		result, err := differ.Compare("alpha\nbeta", "alpha\nbeta\ngamma")
		require.NoError(t, err)

		require.Len(t, result.Changes, 1)
		change := result.Changes[0]
		assert.Equal(t, pagewatch.ChangeAdded, change.Kind)
		assert.Equal(t, 2, change.NewStart)
		assert.Equal(t, 3, change.NewEnd)
		assert.Equal(t, []string{"gamma"}, change.NewLines)
		assert.Empty(t, change.OldLines)
	})

	t.Run("deleted line maps to a removed change", func(t *testing.T) {
		t.Parallel()

		result, err := differ.Compare("alpha\nbeta\ngamma", "alpha\ngamma")
		require.NoError(t, err)

		require.Len(t, result.Changes, 1)
		change := result.Changes[0]
		assert.Equal(t, pagewatch.ChangeRemoved, change.Kind)
		assert.Equal(t, []string{"beta"}, change.OldLines)
		assert.Empty(t, change.NewLines)
	})

	t.Run("ratio is rounded to one decimal place", func(t *testing.T) {
		t.Parallel()

		result, err := differ.Compare("the quick brown fox", "the slow brown fox jumps")
		require.NoError(t, err)

		rounded := math.Round(result.ChangeRatio*10) / 10
		assert.Equal(t, rounded, result.ChangeRatio)
	})

	t.Run("trailing newline does not produce a phantom line", func(t *testing.T) {
		t.Parallel()

		result, err := differ.Compare("alpha\nbeta\n", "alpha\nbeta\ngamma\n")
		require.NoError(t, err)

		require.Len(t, result.Changes, 1)
		assert.Equal(t, pagewatch.ChangeAdded, result.Changes[0].Kind)
		assert.Equal(t, []string{"gamma"}, result.Changes[0].NewLines)
	})

	t.Run("is deterministic across repeated runs", func(t *testing.T) {
		t.Parallel()

		first, err := differ.Compare("one\ntwo\nthree", "one\n2\nthree\nfour")
		require.NoError(t, err)
		second, err := differ.Compare("one\ntwo\nthree", "one\n2\nthree\nfour")
		require.NoError(t, err)

		assert.Equal(t, first.ChangeRatio, second.ChangeRatio)
		assert.Equal(t, first.Changes, second.Changes)
	})
}
