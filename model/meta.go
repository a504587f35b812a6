/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package model

import (
	"regexp"

	"github.com/suparena/sqlrecord/errors"
	"github.com/suparena/sqlrecord/registry"
)

// DefaultPrimaryKey is the primary key field used when Meta.PrimaryKey is empty.
const DefaultPrimaryKey = "id"

var identPattern = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*$`)

// Field describes one column: its name and the declared type name used to
// look up a deserializer.
type Field struct {
	Name string
	Type string
}

// FieldOf declares a field whose type name is derived from T.
func FieldOf[T any](name string) Field {
	return Field{Name: name, Type: registry.TypeNameOf[T]()}
}

// Meta is the table metadata of a record type. Fields are in declaration
// order, which is also the positional order of insert statements.
type Meta struct {
	// Name identifies the record type in errors. Defaults to Table.
	Name       string
	Table      string
	PrimaryKey string
	Fields     []Field
}

// Key returns the primary key field name.
func (m *Meta) Key() string {
	if m.PrimaryKey == "" {
		return DefaultPrimaryKey
	}
	return m.PrimaryKey
}

// TypeName returns the name used for the record type in errors.
func (m *Meta) TypeName() string {
	if m.Name != "" {
		return m.Name
	}
	return m.Table
}

// Index returns the position of the named field, or -1.
func (m *Meta) Index(name string) int {
	for i, f := range m.Fields {
		if f.Name == name {
			return i
		}
	}
	return -1
}

// Columns returns the field names in declaration order.
func (m *Meta) Columns() []string {
	cols := make([]string, len(m.Fields))
	for i, f := range m.Fields {
		cols[i] = f.Name
	}
	return cols
}

// Validate checks that the table and field names are plain identifiers, that
// field names are unique and that the primary key is a declared field.
// Names are interpolated into SQL text, so nothing else is accepted.
func (m *Meta) Validate() error {
	if m == nil {
		return errors.NewMetaError("", "metadata is nil")
	}
	if m.Table == "" {
		return errors.NewMetaError(m.TypeName(), "table name is empty")
	}
	if !identPattern.MatchString(m.Table) {
		return errors.NewMetaError(m.TypeName(), "table name "+quote(m.Table)+" is not a valid identifier")
	}
	if len(m.Fields) == 0 {
		return errors.NewMetaError(m.TypeName(), "no fields declared")
	}

	seen := make(map[string]struct{}, len(m.Fields))
	for _, f := range m.Fields {
		if !identPattern.MatchString(f.Name) {
			return errors.NewMetaError(m.TypeName(), "field name "+quote(f.Name)+" is not a valid identifier")
		}
		if _, dup := seen[f.Name]; dup {
			return errors.NewMetaError(m.TypeName(), "field "+quote(f.Name)+" declared twice")
		}
		seen[f.Name] = struct{}{}
	}

	if m.Index(m.Key()) < 0 {
		return errors.NewMetaError(m.TypeName(), "primary key "+quote(m.Key())+" is not a declared field")
	}
	return nil
}

func quote(s string) string {
	return `"` + s + `"`
}
