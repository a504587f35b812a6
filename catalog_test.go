/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package sqlrecord_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/suparena/sqlrecord"
	"github.com/suparena/sqlrecord/datastore/sqldb"
	"github.com/suparena/sqlrecord/errors"
	"github.com/suparena/sqlrecord/model"
	"github.com/suparena/sqlrecord/registry"
	_ "modernc.org/sqlite"
)

type Item struct {
	ID    int64
	Name  string
	Price float64
}

var itemMeta = &model.Meta{
	Name:  "Item",
	Table: "items",
	Fields: []model.Field{
		model.FieldOf[int64]("id"),
		model.FieldOf[string]("name"),
		model.FieldOf[float64]("price"),
	},
}

func (i *Item) Meta() *model.Meta { return itemMeta }
func (i *Item) Values() []any     { return []any{i.ID, i.Name, i.Price} }

func (i *Item) Set(field string, v any) error {
	switch field {
	case "id":
		return model.Assign(&i.ID, v)
	case "name":
		return model.Assign(&i.Name, v)
	case "price":
		return model.Assign(&i.Price, v)
	}
	return errors.NewValidationError(field, "not an Item field")
}

func TestCatalogRegister(t *testing.T) {
	catalog := sqlrecord.NewCatalog()
	items, err := model.NewTable[Item](nil)
	require.NoError(t, err)

	require.NoError(t, sqlrecord.Register(catalog, items))
	assert.Error(t, sqlrecord.Register(catalog, items))

	got, err := sqlrecord.Lookup[Item](catalog, "items")
	require.NoError(t, err)
	assert.Same(t, items, got)

	cols, ok := catalog.Columns("items")
	assert.True(t, ok)
	assert.Equal(t, []string{"id", "name", "price"}, cols)

	_, err = sqlrecord.Lookup[Item](catalog, "orders")
	assert.Error(t, err)
}

func TestCatalogLookupWrongType(t *testing.T) {
	catalog := sqlrecord.NewCatalog()
	rows, err := model.NewRowTable(itemMeta, nil)
	require.NoError(t, err)
	require.NoError(t, sqlrecord.Register(catalog, rows))

	_, err = sqlrecord.Lookup[Item](catalog, "items")
	assert.Error(t, err)

	_, err = sqlrecord.Lookup[model.Row](catalog, "items")
	assert.NoError(t, err)
}

func TestCatalogMeta(t *testing.T) {
	catalog := sqlrecord.NewCatalog()
	require.NoError(t, catalog.RegisterMeta(&model.Meta{Table: "tags", Fields: []model.Field{{Name: "id"}}}))
	require.NoError(t, catalog.RegisterMeta(itemMeta))
	assert.Error(t, catalog.RegisterMeta(itemMeta))

	err := catalog.RegisterMeta(&model.Meta{Table: "bad name", Fields: []model.Field{{Name: "id"}}})
	assert.True(t, errors.IsInvalidMeta(err))

	assert.Equal(t, []string{"items", "tags"}, catalog.Tables())

	meta, err := catalog.Meta("tags")
	require.NoError(t, err)
	assert.Equal(t, "id", meta.Key())

	require.NoError(t, catalog.Remove("tags"))
	assert.Error(t, catalog.Remove("tags"))
	_, ok := catalog.Columns("tags")
	assert.False(t, ok)
	assert.Equal(t, []string{"items"}, catalog.Tables())
}

func TestItemExampleOnSQLite(t *testing.T) {
	ctx := context.Background()
	db, err := sqldb.Open(ctx, "sqlite", ":memory:")
	require.NoError(t, err)
	db.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = db.Close() })

	_, err = db.ExecContext(ctx, `CREATE TABLE items (id INTEGER PRIMARY KEY, name TEXT, price REAL)`)
	require.NoError(t, err)

	catalog := sqlrecord.NewCatalog()
	items, err := model.NewTable[Item](registry.NewDefaultTypeRegistry())
	require.NoError(t, err)
	require.NoError(t, sqlrecord.Register(catalog, items))

	cur := sqldb.New(db)
	items, err = sqlrecord.Lookup[Item](catalog, "items")
	require.NoError(t, err)

	require.NoError(t, items.Save(ctx, cur, &Item{ID: 1, Name: "a", Price: 1.5}))

	found, err := items.Find(ctx, cur, 1)
	require.NoError(t, err)
	assert.Equal(t, &Item{ID: 1, Name: "a", Price: 1.5}, found)

	require.NoError(t, items.Delete(ctx, cur, 1))

	found, err = items.Find(ctx, cur, 1)
	require.NoError(t, err)
	assert.Nil(t, found)

	assert.True(t, errors.IsNotFound(items.Delete(ctx, cur, 1)))
}
