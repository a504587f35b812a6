/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package main

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/suparena/sqlrecord"
	"github.com/suparena/sqlrecord/config"
	"github.com/suparena/sqlrecord/model"
)

func testConfig(t *testing.T) *config.Config {
	cfg := config.Defaults()
	cfg.DSN = "file:" + filepath.Join(t.TempDir(), "shop.db")
	cfg.Tables = []config.TableConfig{{
		Name: "items",
		Columns: []config.ColumnConfig{
			{Name: "id", Type: "int64"},
			{Name: "name", Type: "string"},
		},
	}}
	require.NoError(t, cfg.Validate())
	return cfg
}

func TestParseKey(t *testing.T) {
	meta := &model.Meta{Table: "items", Fields: []model.Field{{Name: "id", Type: "int64"}}}
	key, err := parseKey(meta, "42")
	require.NoError(t, err)
	assert.Equal(t, int64(42), key)

	_, err = parseKey(meta, "x")
	assert.Error(t, err)

	meta = &model.Meta{Table: "posts", Fields: []model.Field{{Name: "id", Type: "string"}}}
	key, err = parseKey(meta, "42")
	require.NoError(t, err)
	assert.Equal(t, "42", key)
}

func TestBuildCatalogAndReadRows(t *testing.T) {
	ctx := context.Background()
	cfg := testConfig(t)

	catalog, err := buildCatalog(cfg, zerolog.Nop())
	require.NoError(t, err)
	assert.Equal(t, []string{"items"}, catalog.Tables())

	cur, closeFn, err := openCursor(ctx, cfg, catalog, zerolog.Nop())
	require.NoError(t, err)
	defer closeFn()

	_, err = cur.Execute(ctx, "create table items (id integer primary key, name text);")
	require.NoError(t, err)

	rows, err := sqlrecord.Lookup[model.Row](catalog, "items")
	require.NoError(t, err)

	row := model.NewRow(rows.Meta())
	require.NoError(t, row.Set("id", int64(7)))
	require.NoError(t, row.Set("name", "seven"))
	require.NoError(t, rows.Save(ctx, cur, row))

	key, err := parseKey(rows.Meta(), "7")
	require.NoError(t, err)
	found, err := rows.Find(ctx, cur, key)
	require.NoError(t, err)
	require.NotNil(t, found)
	assert.Equal(t, "seven", found.Get("name"))
}
