package store_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/shyptr/gqldb/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStore(t *testing.T) {
	ctx := context.Background()

	t.Run("memory bucket starts empty", func(t *testing.T) {
		s, err := store.Open(ctx, "mem://")
		require.NoError(t, err)
		defer s.Close()

		schema, err := s.Load(ctx)
		require.NoError(t, err)
		assert.Empty(t, schema)

		require.NoError(t, s.Save(ctx, "scalar Date"))
		schema, err = s.Load(ctx)
		require.NoError(t, err)
		assert.Equal(t, "scalar Date", schema)
	})

	t.Run("file bucket survives reopening", func(t *testing.T) {
		dir := t.TempDir()
		url := "file://" + filepath.ToSlash(dir)

		s, err := store.Open(ctx, url)
		require.NoError(t, err)
		require.NoError(t, s.Save(ctx, "type User {\n  id: ID!\n}"))
		require.NoError(t, s.Close())

		_, err = os.Stat(filepath.Join(dir, store.SchemaKey))
		require.NoError(t, err)

		s, err = store.Open(ctx, url)
		require.NoError(t, err)
		defer s.Close()
		schema, err := s.Load(ctx)
		require.NoError(t, err)
		assert.Equal(t, "type User {\n  id: ID!\n}", schema)
	})

	t.Run("unknown scheme", func(t *testing.T) {
		_, err := store.Open(ctx, "nosuch://bucket")
		assert.Error(t, err)
	})
}
