/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

// Package mock provides an in-memory implementation of datastore.Cursor for testing
package mock

import (
	"context"
	"fmt"
	"math"
	"reflect"
	"sync"

	"github.com/suparena/sqlrecord/datastore"
	"github.com/suparena/sqlrecord/datastore/statement"
)

// QueryFunc answers a statement the mock does not interpret itself.
type QueryFunc func(ctx context.Context, query string, args []any) (columns []string, rows [][]any, err error)

// Statement is an executed statement as recorded by the mock.
type Statement struct {
	SQL  string
	Args []any
}

type table struct {
	columns []string
	rows    [][]any
}

// Cursor is an in-memory datastore.Cursor. It interprets the statements
// generated by the model package against tables declared with WithTable.
type Cursor struct {
	datastore.ResultSet

	mu           sync.Mutex
	tables       map[string]*table
	queryFunc    QueryFunc
	executeError error
	statements   []Statement
}

// New creates a new mock Cursor
func New() *Cursor {
	return &Cursor{
		tables: make(map[string]*table),
	}
}

// WithTable declares a table and its columns in storage order
func (m *Cursor) WithTable(name string, columns ...string) *Cursor {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.tables[name] = &table{columns: columns}
	return m
}

// WithQueryFunc sets a function that answers statements the mock does not interpret
func (m *Cursor) WithQueryFunc(f QueryFunc) *Cursor {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.queryFunc = f
	return m
}

// WithExecuteError makes every Execute return err
func (m *Cursor) WithExecuteError(err error) *Cursor {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.executeError = err
	return m
}

// Execute records the statement and runs it against the in-memory tables
func (m *Cursor) Execute(ctx context.Context, query string, args ...any) (datastore.Cursor, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.statements = append(m.statements, Statement{SQL: query, Args: append([]any(nil), args...)})
	m.Reset(nil, nil)

	if m.executeError != nil {
		return nil, m.executeError
	}

	stmt, ok := statement.Parse(query)
	if !ok {
		if m.queryFunc == nil {
			return nil, fmt.Errorf("mock: unsupported statement %q", query)
		}
		cols, rows, err := m.queryFunc(ctx, query, args)
		if err != nil {
			return nil, err
		}
		m.Reset(cols, rows)
		return m, nil
	}

	if len(args) != stmt.Params {
		return nil, fmt.Errorf("mock: %s expects %d arguments, got %d", stmt.Kind, stmt.Params, len(args))
	}
	t, ok := m.tables[stmt.Table]
	if !ok {
		return nil, fmt.Errorf("mock: no such table: %s", stmt.Table)
	}

	switch stmt.Kind {
	case statement.SelectAll:
		m.Reset(t.columns, copyRows(t.rows))

	case statement.SelectByKey:
		idx, err := t.index(stmt.Key)
		if err != nil {
			return nil, err
		}
		var rows [][]any
		for _, row := range t.rows {
			if sameKey(row[idx], args[0]) {
				rows = append(rows, append([]any(nil), row...))
			}
		}
		m.Reset(t.columns, rows)

	case statement.DeleteByKey:
		idx, err := t.index(stmt.Key)
		if err != nil {
			return nil, err
		}
		kept := t.rows[:0]
		for _, row := range t.rows {
			if !sameKey(row[idx], args[0]) {
				kept = append(kept, row)
			}
		}
		t.rows = kept

	case statement.Update:
		idx, err := t.index(stmt.Key)
		if err != nil {
			return nil, err
		}
		cols := make([]int, len(stmt.Columns))
		for i, c := range stmt.Columns {
			if cols[i], err = t.index(c); err != nil {
				return nil, err
			}
		}
		key := args[len(args)-1]
		for _, row := range t.rows {
			if !sameKey(row[idx], key) {
				continue
			}
			for i, c := range cols {
				row[c] = args[i]
			}
		}

	case statement.Insert:
		if len(args) != len(t.columns) {
			return nil, fmt.Errorf("mock: table %s has %d columns but %d values were supplied",
				stmt.Table, len(t.columns), len(args))
		}
		t.rows = append(t.rows, append([]any(nil), args...))
	}

	return m, nil
}

// Helper methods for testing

// Statements returns the statements executed so far
func (m *Cursor) Statements() []Statement {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]Statement(nil), m.statements...)
}

// ResetStatements forgets the recorded statements
func (m *Cursor) ResetStatements() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.statements = nil
}

// SetRows replaces the rows of a declared table
func (m *Cursor) SetRows(name string, rows [][]any) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if t, ok := m.tables[name]; ok {
		t.rows = copyRows(rows)
	}
}

// Rows returns a copy of a table's rows
func (m *Cursor) Rows(name string) [][]any {
	m.mu.Lock()
	defer m.mu.Unlock()
	if t, ok := m.tables[name]; ok {
		return copyRows(t.rows)
	}
	return nil
}

// Count returns the number of rows in a table
func (m *Cursor) Count(name string) int {
	m.mu.Lock()
	defer m.mu.Unlock()
	if t, ok := m.tables[name]; ok {
		return len(t.rows)
	}
	return 0
}

// Clear removes all rows from every table
func (m *Cursor) Clear() {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, t := range m.tables {
		t.rows = nil
	}
}

// Columns reports the declared columns of a table
func (m *Cursor) Columns(name string) ([]string, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	t, ok := m.tables[name]
	if !ok {
		return nil, false
	}
	return append([]string(nil), t.columns...), true
}

func (t *table) index(column string) (int, error) {
	for i, c := range t.columns {
		if c == column {
			return i, nil
		}
	}
	return -1, fmt.Errorf("mock: no such column: %s", column)
}

// sameKey compares keys by value. Integer kinds compare by numeric value so
// that int(1) matches int64(1); "1" does not match 1.
func sameKey(a, b any) bool {
	a, b = normalizeKey(a), normalizeKey(b)
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	if !reflect.TypeOf(a).Comparable() || !reflect.TypeOf(b).Comparable() {
		return reflect.DeepEqual(a, b)
	}
	return a == b
}

func normalizeKey(v any) any {
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return rv.Int()
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		u := rv.Uint()
		if u <= math.MaxInt64 {
			return int64(u)
		}
		return u
	}
	return v
}

func copyRows(rows [][]any) [][]any {
	out := make([][]any, len(rows))
	for i, row := range rows {
		out[i] = append([]any(nil), row...)
	}
	return out
}
