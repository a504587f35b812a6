/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package model

import (
	"context"
	"fmt"

	"github.com/suparena/sqlrecord/datastore"
	"github.com/suparena/sqlrecord/errors"
)

// Delete removes the row with the given primary key. It fails with a
// NotFound error when no such row exists.
func (t *Table[T, PT]) Delete(ctx context.Context, cur datastore.Cursor, key any) error {
	k, err := t.types.SerializeValue(key)
	if err != nil {
		return err
	}

	found, err := t.exists(ctx, cur, k)
	if err != nil {
		return err
	}
	if !found {
		return errors.NewNotFoundError(t.meta.TypeName(), fmt.Sprint(k))
	}

	if _, err := cur.Execute(ctx, deleteByKeySQL(t.meta.Table, t.meta.Key()), k); err != nil {
		return fmt.Errorf("delete %s: %w", t.meta.Table, err)
	}
	t.logger.Debug().Interface("key", k).Msg("Deleted row")
	return nil
}

// Destroy deletes the record's row by its current primary key. The record
// itself is left as is.
func (t *Table[T, PT]) Destroy(ctx context.Context, cur datastore.Cursor, r PT) error {
	k, err := t.keyOf(r)
	if err != nil {
		return err
	}
	return t.Delete(ctx, cur, k)
}

// Save writes every field of the record. An existing row with the record's
// primary key is updated; otherwise a row is inserted.
func (t *Table[T, PT]) Save(ctx context.Context, cur datastore.Cursor, r PT) error {
	row, err := t.Serialize(r)
	if err != nil {
		return err
	}

	keyIdx := t.meta.Index(t.meta.Key())
	key := row[keyIdx]

	found, err := t.exists(ctx, cur, key)
	if err != nil {
		return err
	}

	if !found {
		return t.insert(ctx, cur, row, key)
	}
	if len(row) == 1 {
		// Only the key is stored and it already matches.
		return nil
	}

	columns := make([]string, 0, len(row)-1)
	args := make([]any, 0, len(row))
	for i, f := range t.meta.Fields {
		if i == keyIdx {
			continue
		}
		columns = append(columns, f.Name)
		args = append(args, row[i])
	}
	args = append(args, key)

	if _, err := cur.Execute(ctx, updateSQL(t.meta.Table, columns, t.meta.Key()), args...); err != nil {
		return fmt.Errorf("update %s: %w", t.meta.Table, err)
	}
	t.logger.Debug().Interface("key", key).Msg("Updated row")
	return nil
}

// Update sets one field on the record and persists it. The field must be
// declared and must not be the primary key; both are checked before the record
// is touched or any statement runs.
//
// When the record's row exists only that column is written. When it does
// not, the whole record is inserted as Save would. If persisting fails the
// field is restored to its previous value.
func (t *Table[T, PT]) Update(ctx context.Context, cur datastore.Cursor, r PT, field string, value any) error {
	idx := t.meta.Index(field)
	if idx < 0 {
		return errors.NewValidationError(field, "is not a valid field for "+t.meta.TypeName())
	}
	if field == t.meta.Key() {
		return errors.NewValidationError(field, "cannot change the primary key of a record")
	}

	before := r.Values()
	if len(before) != len(t.meta.Fields) {
		return errors.NewMetaError(t.meta.TypeName(),
			fmt.Sprintf("Values returned %d values for %d fields", len(before), len(t.meta.Fields)))
	}

	if err := r.Set(field, value); err != nil {
		return errors.NewValidationError(field, err.Error())
	}

	if err := t.persistField(ctx, cur, r, idx); err != nil {
		_ = r.Set(field, before[idx])
		return err
	}
	return nil
}

func (t *Table[T, PT]) persistField(ctx context.Context, cur datastore.Cursor, r PT, idx int) error {
	field := t.meta.Fields[idx].Name
	v, err := t.types.SerializeValue(r.Values()[idx])
	if err != nil {
		return fmt.Errorf("serialize %s.%s: %w", t.meta.TypeName(), field, err)
	}
	key, err := t.keyOf(r)
	if err != nil {
		return err
	}

	found, err := t.exists(ctx, cur, key)
	if err != nil {
		return err
	}
	if !found {
		row, err := t.Serialize(r)
		if err != nil {
			return err
		}
		return t.insert(ctx, cur, row, key)
	}

	if _, err := cur.Execute(ctx, updateSQL(t.meta.Table, []string{field}, t.meta.Key()), v, key); err != nil {
		return fmt.Errorf("update %s.%s: %w", t.meta.Table, field, err)
	}
	t.logger.Debug().Interface("key", key).Str("field", field).Msg("Updated field")
	return nil
}

func (t *Table[T, PT]) insert(ctx context.Context, cur datastore.Cursor, row []any, key any) error {
	if _, err := cur.Execute(ctx, insertSQL(t.meta.Table, len(row)), row...); err != nil {
		return fmt.Errorf("insert %s: %w", t.meta.Table, err)
	}
	t.logger.Debug().Interface("key", key).Msg("Inserted row")
	return nil
}
