/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package model_test

import (
	"context"
	"testing"
	"time"

	"github.com/go-openapi/strfmt"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/suparena/sqlrecord/datastore/sqldb"
	"github.com/suparena/sqlrecord/datastore/testmodels"
	"github.com/suparena/sqlrecord/errors"
	"github.com/suparena/sqlrecord/model"
	"github.com/suparena/sqlrecord/registry"
	_ "modernc.org/sqlite"
)

func sqliteCursor(t *testing.T, schema ...string) *sqldb.Cursor {
	t.Helper()

	ctx := context.Background()
	db, err := sqldb.Open(ctx, "sqlite", ":memory:")
	require.NoError(t, err)
	db.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = db.Close() })

	for _, stmt := range schema {
		_, err := db.ExecContext(ctx, stmt)
		require.NoError(t, err)
	}
	return sqldb.New(db)
}

func TestItemsOnSQLite(t *testing.T) {
	ctx := context.Background()
	cur := sqliteCursor(t, `CREATE TABLE items (id INTEGER PRIMARY KEY, name TEXT NOT NULL, price REAL NOT NULL)`)
	items, err := model.NewTable[Item](nil)
	require.NoError(t, err)

	require.NoError(t, items.Save(ctx, cur, &Item{ID: 1, Name: "a", Price: 1.5}))
	require.NoError(t, items.Save(ctx, cur, &Item{ID: 2, Name: "b", Price: 2.5}))

	item, err := items.Find(ctx, cur, 1)
	require.NoError(t, err)
	assert.Equal(t, &Item{ID: 1, Name: "a", Price: 1.5}, item)

	require.NoError(t, items.Update(ctx, cur, item, "price", 4.0))
	item, err = items.Find(ctx, cur, 1)
	require.NoError(t, err)
	assert.Equal(t, 4.0, item.Price)

	cheap, err := items.QueryMany(ctx, cur, "select name, id, price from items where price < ? order by id;", 3.0)
	require.NoError(t, err)
	require.Len(t, cheap, 1)
	assert.Equal(t, "b", cheap[0].Name)

	require.NoError(t, items.Delete(ctx, cur, 1))
	err = items.Delete(ctx, cur, 1)
	assert.True(t, errors.IsNotFound(err))

	all, err := items.All(ctx, cur)
	require.NoError(t, err)
	assert.Equal(t, []*Item{{ID: 2, Name: "b", Price: 2.5}}, all)
}

func TestPostsOnSQLite(t *testing.T) {
	ctx := context.Background()
	cur := sqliteCursor(t, `CREATE TABLE posts (title TEXT, slug TEXT PRIMARY KEY, body TEXT, tags TEXT, created_at TEXT)`)
	types := registry.NewDefaultTypeRegistry()
	registry.RegisterJSON[[]string](types)
	posts, err := model.NewTable[Post](types)
	require.NoError(t, err)

	post := &Post{Title: "Hello", Slug: "hello", Tags: []string{"go", "sql"}}
	require.NoError(t, posts.Save(ctx, cur, post))
	require.NoError(t, posts.Update(ctx, cur, post, "title", "Hello again"))

	got, err := posts.Find(ctx, cur, "hello")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "Hello again", got.Title)
	assert.Nil(t, got.Body)
	assert.Equal(t, []string{"go", "sql"}, got.Tags)
	assert.True(t, time.Time(got.CreatedAt).IsZero())
}

func TestRatingSystemsOnSQLite(t *testing.T) {
	ctx := context.Background()
	cur := sqliteCursor(t, testmodels.RatingSystemSchema)
	systems, err := model.NewTable[testmodels.RatingSystem](nil)
	require.NoError(t, err)

	id, name := "elo", "Elo"
	created := strfmt.DateTime(time.Date(2025, 1, 2, 3, 4, 5, 0, time.UTC))
	rs := &testmodels.RatingSystem{ID: &id, Name: &name, CreatedAt: &created}
	require.NoError(t, systems.Save(ctx, cur, rs))

	got, err := systems.Find(ctx, cur, "elo")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "Elo", *got.Name)
	assert.Nil(t, got.Description)
	assert.Nil(t, got.UpdatedAt)
	require.NotNil(t, got.CreatedAt)
	assert.True(t, time.Time(created).Equal(time.Time(*got.CreatedAt)))

	require.NoError(t, systems.Update(ctx, cur, got, "description", "chess ratings"))
	got, err = systems.Find(ctx, cur, "elo")
	require.NoError(t, err)
	require.NotNil(t, got.Description)
	assert.Equal(t, "chess ratings", *got.Description)

	require.NoError(t, systems.Destroy(ctx, cur, got))
	got, err = systems.Find(ctx, cur, "elo")
	require.NoError(t, err)
	assert.Nil(t, got)
}
