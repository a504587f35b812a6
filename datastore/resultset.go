/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package datastore

// ResultSet buffers the result of one statement. Cursor implementations embed
// it and call Reset on every Execute.
type ResultSet struct {
	columns []string
	rows    [][]any
	pos     int
}

// Reset replaces the buffered result.
func (rs *ResultSet) Reset(columns []string, rows [][]any) {
	rs.columns = columns
	rs.rows = rows
	rs.pos = 0
}

// FetchOne returns the next row, or nil when the result is exhausted.
func (rs *ResultSet) FetchOne() ([]any, error) {
	if rs.pos >= len(rs.rows) {
		return nil, nil
	}
	row := rs.rows[rs.pos]
	rs.pos++
	return row, nil
}

// FetchAll returns all remaining rows. The slice is never nil.
func (rs *ResultSet) FetchAll() ([][]any, error) {
	rest := make([][]any, 0, len(rs.rows)-rs.pos)
	rest = append(rest, rs.rows[rs.pos:]...)
	rs.pos = len(rs.rows)
	return rest, nil
}

// Description returns the buffered column names.
func (rs *ResultSet) Description() []string {
	return rs.columns
}

// RowMap zips column names with a row's values.
func RowMap(columns []string, row []any) map[string]any {
	m := make(map[string]any, len(columns))
	for i, col := range columns {
		if i < len(row) {
			m[col] = row[i]
		}
	}
	return m
}
