package database_test

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/shyptr/gqldb/config"
	"github.com/shyptr/gqldb/database"
	"github.com/shyptr/gqldb/errors"
	"github.com/shyptr/gqldb/logging"
	"github.com/shyptr/gqldb/store"
	"github.com/shyptr/gqldb/system/ast"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig() *config.Config {
	cfg := config.Default()
	cfg.Threads = 4
	cfg.ParseTimeout = config.Duration{Duration: 5 * time.Second}
	return cfg
}

func openStore(t *testing.T) *store.Store {
	t.Helper()
	st, err := store.Open(context.Background(), "mem://")
	require.NoError(t, err)
	t.Cleanup(func() { st.Close() })
	return st
}

func start(t *testing.T, db *database.Database) {
	t.Helper()
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- db.Run(ctx) }()
	t.Cleanup(func() {
		cancel()
		require.NoError(t, <-done)
	})
}

func TestDatabase(t *testing.T) {
	ctx := context.Background()

	t.Run("applies definitions and echoes the document", func(t *testing.T) {
		st := openStore(t)
		db := database.New(testConfig(), logging.Discard(), st)
		start(t, db)

		resp := db.Execute(ctx, "type User {\n  id: ID!\n}")
		require.NoError(t, resp.Err)
		assert.Equal(t, "type User {\n  id: ID!\n}", resp.String())

		resp = db.Execute(ctx, "extend type User { name: String }")
		require.NoError(t, resp.Err)

		schema, err := db.Schema(ctx)
		require.NoError(t, err)
		assert.Equal(t, "type User {\n  id: ID!\n  name: String\n}", schema.String())

		saved, err := st.Load(ctx)
		require.NoError(t, err)
		assert.Equal(t, schema.String(), saved)
	})

	t.Run("reports parse and validation errors", func(t *testing.T) {
		db := database.New(testConfig(), logging.Discard(), nil)
		start(t, db)

		resp := db.Execute(ctx, "type Empty {}")
		var parseErr *errors.ParseError
		require.ErrorAs(t, resp.Err, &parseErr)
		assert.Equal(t, errors.ObjectEmpty, parseErr.Kind)
		assert.Equal(t, "Parse Error: Object empty on line 1, column 6", resp.String())

		require.NoError(t, db.Execute(ctx, "scalar Date").Err)
		resp = db.Execute(ctx, "scalar Date")
		var validationErr *errors.ValidationError
		assert.ErrorAs(t, resp.Err, &validationErr)
	})

	t.Run("queries do not change the schema", func(t *testing.T) {
		st := openStore(t)
		db := database.New(testConfig(), logging.Discard(), st)
		start(t, db)

		resp := db.Execute(ctx, "{ user(id: 1) { name } }")
		require.NoError(t, resp.Err)
		assert.Equal(t, "{\n  user(id: 1) {\n    name\n  }\n}", resp.String())

		schema, err := db.Schema(ctx)
		require.NoError(t, err)
		assert.Empty(t, schema.Definitions)
		saved, err := st.Load(ctx)
		require.NoError(t, err)
		assert.Empty(t, saved)
	})

	t.Run("restores the saved schema", func(t *testing.T) {
		st := openStore(t)
		require.NoError(t, st.Save(ctx, "scalar Date\n\ntype Event {\n  at: Date\n}"))

		db := database.New(testConfig(), logging.Discard(), st)
		start(t, db)

		schema, err := db.Schema(ctx)
		require.NoError(t, err)
		assert.Len(t, schema.Definitions, 2)

		resp := db.Execute(ctx, "type Event { id: ID }")
		assert.Error(t, resp.Err)
	})

	t.Run("a corrupt snapshot stops the database", func(t *testing.T) {
		st := openStore(t)
		require.NoError(t, st.Save(ctx, "type {"))
		db := database.New(testConfig(), logging.Discard(), st)
		assert.Error(t, db.Run(ctx))
	})

	t.Run("applies concurrent documents one at a time", func(t *testing.T) {
		db := database.New(testConfig(), logging.Discard(), nil)
		start(t, db)
		require.NoError(t, db.Execute(ctx, "type Root { id: ID }").Err)

		var wg sync.WaitGroup
		errs := make([]error, 32)
		for i := range errs {
			wg.Add(1)
			go func(i int) {
				defer wg.Done()
				errs[i] = db.Execute(ctx, fmt.Sprintf("type T%d { id: ID } extend type Root { f%d: T%d }", i, i, i)).Err
			}(i)
		}
		wg.Wait()
		for _, err := range errs {
			assert.NoError(t, err)
		}

		schema, err := db.Schema(ctx)
		require.NoError(t, err)
		assert.Len(t, schema.Definitions, 33)
		assert.Len(t, schema.Definitions[0].(*ast.ObjectDefinition).Fields, 33)
	})

	t.Run("gives up after the parse timeout", func(t *testing.T) {
		cfg := testConfig()
		cfg.ParseTimeout = config.Duration{Duration: 20 * time.Millisecond}
		db := database.New(cfg, logging.Discard(), nil)

		resp := db.Execute(ctx, "scalar Date")
		assert.ErrorIs(t, resp.Err, context.DeadlineExceeded)
	})

	t.Run("drops documents whose caller gave up", func(t *testing.T) {
		cfg := testConfig()
		cfg.ParseTimeout = config.Duration{Duration: 20 * time.Millisecond}
		st := openStore(t)
		db := database.New(cfg, logging.Discard(), st)

		resp := db.Execute(ctx, "scalar Date")
		require.ErrorIs(t, resp.Err, context.DeadlineExceeded)

		start(t, db)
		require.NoError(t, db.Execute(ctx, "scalar Time").Err)

		schema, err := db.Schema(ctx)
		require.NoError(t, err)
		assert.Equal(t, "scalar Time", schema.String())
		saved, err := st.Load(ctx)
		require.NoError(t, err)
		assert.Equal(t, "scalar Time", saved)
	})

	t.Run("timed out documents are never applied", func(t *testing.T) {
		st := openStore(t)
		db := database.New(testConfig(), logging.Discard(), st)
		start(t, db)

		const n = 200
		failed := make([]bool, n)
		var wg sync.WaitGroup
		for i := 0; i < n; i++ {
			wg.Add(1)
			go func(i int) {
				defer wg.Done()
				ctx, cancel := context.WithTimeout(ctx, 20*time.Microsecond)
				defer cancel()
				failed[i] = db.Execute(ctx, fmt.Sprintf("type T%d { a: Int }", i)).Err != nil
			}(i)
		}
		wg.Wait()

		schema, err := db.Schema(ctx)
		require.NoError(t, err)
		applied := make(map[string]bool)
		for _, definition := range schema.Definitions {
			applied[definition.(*ast.ObjectDefinition).Name.Name] = true
		}
		for i, f := range failed {
			assert.Equal(t, !f, applied[fmt.Sprintf("T%d", i)], "T%d", i)
		}

		saved, err := st.Load(ctx)
		require.NoError(t, err)
		assert.Equal(t, schema.String(), saved)
	})
}
