/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package model

import (
	"context"
	"fmt"

	"github.com/suparena/sqlrecord/datastore"
)

// Query executes query and deserializes the first result row. It returns a
// nil record and no error when the result is empty. Columns are matched to
// fields by the names the cursor reports, so column order and extra columns
// do not matter.
func (t *Table[T, PT]) Query(ctx context.Context, cur datastore.Cursor, query string, args ...any) (PT, error) {
	res, err := cur.Execute(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query %s: %w", t.meta.Table, err)
	}

	row, err := res.FetchOne()
	if err != nil {
		return nil, fmt.Errorf("query %s: fetch: %w", t.meta.Table, err)
	}
	if row == nil {
		return nil, nil
	}
	return t.Deserialize(datastore.RowMap(res.Description(), row))
}

// QueryMany executes query and deserializes every result row. The slice is
// empty, not nil, when nothing matches.
func (t *Table[T, PT]) QueryMany(ctx context.Context, cur datastore.Cursor, query string, args ...any) ([]PT, error) {
	res, err := cur.Execute(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query %s: %w", t.meta.Table, err)
	}

	rows, err := res.FetchAll()
	if err != nil {
		return nil, fmt.Errorf("query %s: fetch: %w", t.meta.Table, err)
	}

	columns := res.Description()
	records := make([]PT, 0, len(rows))
	for _, row := range rows {
		rec, err := t.Deserialize(datastore.RowMap(columns, row))
		if err != nil {
			return nil, err
		}
		records = append(records, rec)
	}
	return records, nil
}

// All returns every row of the table.
func (t *Table[T, PT]) All(ctx context.Context, cur datastore.Cursor) ([]PT, error) {
	return t.QueryMany(ctx, cur, selectAllSQL(t.meta.Table))
}

// Find returns the record with the given primary key, or nil when there is none.
func (t *Table[T, PT]) Find(ctx context.Context, cur datastore.Cursor, key any) (PT, error) {
	k, err := t.types.SerializeValue(key)
	if err != nil {
		return nil, err
	}
	return t.Query(ctx, cur, selectByKeySQL(t.meta.Table, t.meta.Key()), k)
}

// exists reports whether a row with the serialized key is stored.
func (t *Table[T, PT]) exists(ctx context.Context, cur datastore.Cursor, key any) (bool, error) {
	res, err := cur.Execute(ctx, selectByKeySQL(t.meta.Table, t.meta.Key()), key)
	if err != nil {
		return false, fmt.Errorf("find %s: %w", t.meta.Table, err)
	}
	row, err := res.FetchOne()
	if err != nil {
		return false, fmt.Errorf("find %s: fetch: %w", t.meta.Table, err)
	}
	return row != nil, nil
}
