package main_test

import (
	"bytes"
	"context"
	"path/filepath"
	"testing"

	main "github.com/pagewatch/pagewatch/cmd/pagewatch"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMain_Run(t *testing.T) {
	t.Parallel()

	// Global flags are valid before the subcommand; dispatch must follow
	// the parsed command, not the raw argument order.
	t.Run("watch --once runs with the database flag first", func(t *testing.T) {
		t.Parallel()

		db := filepath.Join(t.TempDir(), "pagewatch.db")
		stdout := &bytes.Buffer{}
		stderr := &bytes.Buffer{}

		m := main.NewMain()
		err := m.Run(context.Background(), []string{"--db", db, "watch", "--once"}, stdout, stderr)
		require.NoError(t, err)
		assert.Equal(t, db, m.DBPath)
	})

	t.Run("list runs with the database flag first", func(t *testing.T) {
		t.Parallel()

		db := filepath.Join(t.TempDir(), "pagewatch.db")
		stdout := &bytes.Buffer{}

		m := main.NewMain()
		err := m.Run(context.Background(), []string{"--db", db, "list"}, stdout, &bytes.Buffer{})
		require.NoError(t, err)
		assert.Contains(t, stdout.String(), "No tracked pages")
	})

	t.Run("list runs with the database flag after the command", func(t *testing.T) {
		t.Parallel()

		db := filepath.Join(t.TempDir(), "pagewatch.db")
		stdout := &bytes.Buffer{}

		m := main.NewMain()
		err := m.Run(context.Background(), []string{"list", "--db", db}, stdout, &bytes.Buffer{})
		require.NoError(t, err)
		assert.Contains(t, stdout.String(), "No tracked pages")
	})
}
