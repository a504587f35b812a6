/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package model

import (
	"github.com/goccy/go-json"
	"github.com/suparena/sqlrecord/errors"
	"github.com/suparena/sqlrecord/registry"
)

// Row is a Record whose metadata is supplied at runtime, for tables that have
// no Go type of their own.
type Row struct {
	meta   *Meta
	values map[string]any
}

// NewRow returns an empty row of the given table.
func NewRow(meta *Meta) *Row {
	return &Row{meta: meta, values: make(map[string]any)}
}

// NewRowTable returns a Table of dynamic rows described by meta.
func NewRowTable(meta *Meta, types *registry.TypeRegistry, opts ...Option) (*Table[Row, *Row], error) {
	opts = append(opts, WithConstructor(func() *Row { return NewRow(meta) }))
	return NewTable[Row](types, opts...)
}

func (r *Row) Meta() *Meta {
	return r.meta
}

func (r *Row) Values() []any {
	if r.meta == nil {
		return nil
	}
	out := make([]any, len(r.meta.Fields))
	for i, f := range r.meta.Fields {
		out[i] = r.values[f.Name]
	}
	return out
}

func (r *Row) Set(field string, value any) error {
	if r.meta == nil || r.meta.Index(field) < 0 {
		return errors.NewValidationError(field, "is not a column of this row")
	}
	if r.values == nil {
		r.values = make(map[string]any)
	}
	r.values[field] = value
	return nil
}

// Get returns the value of a column.
func (r *Row) Get(field string) any {
	return r.values[field]
}

// Map returns a copy of the row's values keyed by column.
func (r *Row) Map() map[string]any {
	out := make(map[string]any, len(r.values))
	for k, v := range r.values {
		out[k] = v
	}
	return out
}

func (r *Row) MarshalJSON() ([]byte, error) {
	return json.Marshal(r.Map())
}
