/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package model_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/suparena/sqlrecord/datastore/mock"
	"github.com/suparena/sqlrecord/errors"
	"github.com/suparena/sqlrecord/model"
)

var userMeta = &model.Meta{
	Name:       "User",
	Table:      "users",
	PrimaryKey: "email",
	Fields: []model.Field{
		{Name: "email", Type: "string"},
		{Name: "name", Type: "string"},
		{Name: "age", Type: "int64"},
	},
}

func TestRowSetGet(t *testing.T) {
	row := model.NewRow(userMeta)
	require.NoError(t, row.Set("email", "a@example.com"))
	require.NoError(t, row.Set("age", int64(30)))

	err := row.Set("height", 180)
	assert.True(t, errors.IsValidationError(err))

	assert.Equal(t, "a@example.com", row.Get("email"))
	assert.Equal(t, []any{"a@example.com", nil, int64(30)}, row.Values())
	assert.Equal(t, map[string]any{"email": "a@example.com", "age": int64(30)}, row.Map())

	b, err := row.MarshalJSON()
	require.NoError(t, err)
	assert.JSONEq(t, `{"email":"a@example.com","age":30}`, string(b))
}

func TestRowTable(t *testing.T) {
	ctx := context.Background()
	users, err := model.NewRowTable(userMeta, nil)
	require.NoError(t, err)

	cur := mock.New().WithTable("users", "email", "name", "age")

	row := model.NewRow(userMeta)
	require.NoError(t, row.Set("email", "a@example.com"))
	require.NoError(t, row.Set("name", "Ann"))
	require.NoError(t, row.Set("age", int64(30)))
	require.NoError(t, users.Save(ctx, cur, row))

	require.NoError(t, users.Update(ctx, cur, row, "age", int64(31)))

	found, err := users.Find(ctx, cur, "a@example.com")
	require.NoError(t, err)
	require.NotNil(t, found)
	assert.Equal(t, int64(31), found.Get("age"))
	assert.Equal(t, "Ann", found.Get("name"))

	all, err := users.All(ctx, cur)
	require.NoError(t, err)
	assert.Len(t, all, 1)

	err = users.Update(ctx, cur, row, "email", "b@example.com")
	assert.True(t, errors.IsValidationError(err))
}

func TestRowTableRejectsBadMeta(t *testing.T) {
	_, err := model.NewRowTable(&model.Meta{Table: "users"}, nil)
	assert.True(t, errors.IsInvalidMeta(err))
}
