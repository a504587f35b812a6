/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package datastore

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResultSet(t *testing.T) {
	var rs ResultSet

	rows, err := rs.FetchAll()
	require.NoError(t, err)
	assert.NotNil(t, rows)
	assert.Empty(t, rows)

	rs.Reset([]string{"id", "name"}, [][]any{{int64(1), "a"}, {int64(2), "b"}, {int64(3), "c"}})
	assert.Equal(t, []string{"id", "name"}, rs.Description())

	row, err := rs.FetchOne()
	require.NoError(t, err)
	assert.Equal(t, []any{int64(1), "a"}, row)

	rows, err = rs.FetchAll()
	require.NoError(t, err)
	assert.Len(t, rows, 2)

	row, err = rs.FetchOne()
	require.NoError(t, err)
	assert.Nil(t, row)

	rs.Reset(nil, nil)
	assert.Empty(t, rs.Description())
}

func TestRowMap(t *testing.T) {
	m := RowMap([]string{"id", "name", "price"}, []any{int64(1), "a"})
	assert.Equal(t, map[string]any{"id": int64(1), "name": "a"}, m)
}
