/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package model

import (
	"fmt"

	"github.com/rs/zerolog"
	"github.com/suparena/sqlrecord/errors"
	"github.com/suparena/sqlrecord/registry"
)

// Table maps the record type T to its table. PT is *T and must implement Record.
//
//	items, err := model.NewTable[Item](types)
//	item, err := items.Find(ctx, cur, 1)
//
// A Table holds no cursor or connection; every operation uses the cursor it is given.
type Table[T any, PT interface {
	*T
	Record
}] struct {
	meta      *Meta
	types     *registry.TypeRegistry
	newRecord func() PT
	logger    zerolog.Logger
}

type options struct {
	logger      zerolog.Logger
	constructor any
}

// Option configures a Table.
type Option func(*options)

// WithLogger sets the logger used for statement-level debug logging.
func WithLogger(logger zerolog.Logger) Option {
	return func(o *options) {
		o.logger = logger
	}
}

// WithConstructor sets the function that creates empty records during
// deserialization. The default is new(T). PT must match the Table's record type.
func WithConstructor[PT Record](fn func() PT) Option {
	return func(o *options) {
		o.constructor = fn
	}
}

// NewTable binds T to the type registry and validates T's metadata.
// A nil registry is replaced by registry.NewDefaultTypeRegistry().
func NewTable[T any, PT interface {
	*T
	Record
}](types *registry.TypeRegistry, opts ...Option) (*Table[T, PT], error) {
	o := options{logger: zerolog.Nop()}
	for _, opt := range opts {
		opt(&o)
	}

	newRecord := func() PT { return PT(new(T)) }
	if o.constructor != nil {
		fn, ok := o.constructor.(func() PT)
		if !ok {
			return nil, errors.NewMetaError(fmt.Sprintf("%T", PT(nil)),
				fmt.Sprintf("constructor has type %T", o.constructor))
		}
		newRecord = fn
	}

	meta := newRecord().Meta()
	if err := meta.Validate(); err != nil {
		return nil, err
	}

	if types == nil {
		types = registry.NewDefaultTypeRegistry()
	}

	return &Table[T, PT]{
		meta:      meta,
		types:     types,
		newRecord: newRecord,
		logger:    o.logger.With().Str("table", meta.Table).Logger(),
	}, nil
}

// Meta returns the record type's metadata.
func (t *Table[T, PT]) Meta() *Meta {
	return t.meta
}

// Types returns the type registry the table maps values through.
func (t *Table[T, PT]) Types() *registry.TypeRegistry {
	return t.types
}

// Serialize returns the record's row: one normalized value per field, in
// declaration order.
func (t *Table[T, PT]) Serialize(r PT) ([]registry.Value, error) {
	values := r.Values()
	if len(values) != len(t.meta.Fields) {
		return nil, errors.NewMetaError(t.meta.TypeName(),
			fmt.Sprintf("Values returned %d values for %d fields", len(values), len(t.meta.Fields)))
	}

	row := make([]registry.Value, len(values))
	for i, v := range values {
		sv, err := t.types.SerializeValue(v)
		if err != nil {
			return nil, fmt.Errorf("serialize %s.%s: %w", t.meta.TypeName(), t.meta.Fields[i].Name, err)
		}
		row[i] = sv
	}
	return row, nil
}

// Deserialize builds a record from a column-name → value map. A nil map means
// no result and yields a nil record. Columns that are not fields are ignored;
// a field with no column fails with a MissingColumn error.
func (t *Table[T, PT]) Deserialize(row map[string]any) (PT, error) {
	if row == nil {
		return nil, nil
	}

	rec := t.newRecord()
	for _, f := range t.meta.Fields {
		raw, ok := row[f.Name]
		if !ok {
			return nil, errors.NewMissingColumnError(t.meta.TypeName(), f.Name)
		}
		v, err := t.types.DeserializeValue(raw, f.Type)
		if err != nil {
			return nil, fmt.Errorf("deserialize %s.%s: %w", t.meta.TypeName(), f.Name, err)
		}
		if err := rec.Set(f.Name, v); err != nil {
			return nil, fmt.Errorf("deserialize %s.%s: %w", t.meta.TypeName(), f.Name, err)
		}
	}
	return rec, nil
}

// keyOf returns the record's primary key value as stored.
func (t *Table[T, PT]) keyOf(r PT) (registry.Value, error) {
	values := r.Values()
	idx := t.meta.Index(t.meta.Key())
	if idx >= len(values) {
		return nil, errors.NewMetaError(t.meta.TypeName(),
			fmt.Sprintf("Values returned %d values for %d fields", len(values), len(t.meta.Fields)))
	}
	return t.types.SerializeValue(values[idx])
}
