/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package model

import (
	"strings"
)

// Statement builders. Table and column names are interpolated as plain
// identifiers (Meta.Validate guarantees they are); values are always "?"
// parameters.

func selectAllSQL(table string) string {
	return "select * from " + table + ";"
}

func selectByKeySQL(table, key string) string {
	return "select * from " + table + " where " + key + " = ?;"
}

func deleteByKeySQL(table, key string) string {
	return "delete from " + table + " where " + key + " = ?;"
}

func updateSQL(table string, columns []string, key string) string {
	var b strings.Builder
	b.WriteString("update ")
	b.WriteString(table)
	b.WriteString(" set ")
	for i, col := range columns {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(col)
		b.WriteString(" = ?")
	}
	b.WriteString(" where ")
	b.WriteString(key)
	b.WriteString(" = ?;")
	return b.String()
}

func insertSQL(table string, n int) string {
	var b strings.Builder
	b.WriteString("insert into ")
	b.WriteString(table)
	b.WriteString(" values (")
	for i := 0; i < n; i++ {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString("?")
	}
	b.WriteString(");")
	return b.String()
}
