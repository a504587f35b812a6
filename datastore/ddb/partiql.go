/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package ddb

import (
	"fmt"
	"strings"

	"github.com/suparena/sqlrecord/datastore/statement"
)

// translate rewrites a generated SQL statement into PartiQL and reports the
// table it reads. Statements that are not generated forms are passed through
// unchanged.
func (c *Cursor) translate(query string) (string, string, error) {
	stmt, ok := statement.Parse(query)
	if !ok {
		return query, "", nil
	}

	table := quoteIdent(stmt.Table)
	switch stmt.Kind {
	case statement.SelectAll:
		return "SELECT * FROM " + table, stmt.Table, nil

	case statement.SelectByKey:
		return "SELECT * FROM " + table + " WHERE " + quoteIdent(stmt.Key) + " = ?", stmt.Table, nil

	case statement.DeleteByKey:
		return "DELETE FROM " + table + " WHERE " + quoteIdent(stmt.Key) + " = ?", "", nil

	case statement.Update:
		var b strings.Builder
		b.WriteString("UPDATE ")
		b.WriteString(table)
		for _, col := range stmt.Columns {
			b.WriteString(" SET ")
			b.WriteString(quoteIdent(col))
			b.WriteString(" = ?")
		}
		b.WriteString(" WHERE ")
		b.WriteString(quoteIdent(stmt.Key))
		b.WriteString(" = ?")
		return b.String(), "", nil

	case statement.Insert:
		var columns []string
		if c.columns != nil {
			columns, _ = c.columns.Columns(stmt.Table)
		}
		if len(columns) == 0 {
			return "", "", fmt.Errorf("insert into %s: columns of the table are unknown", stmt.Table)
		}
		if len(columns) != stmt.Params {
			return "", "", fmt.Errorf("insert into %s: %d values for %d columns", stmt.Table, stmt.Params, len(columns))
		}

		var b strings.Builder
		b.WriteString("INSERT INTO ")
		b.WriteString(table)
		b.WriteString(" VALUE {")
		for i, col := range columns {
			if i > 0 {
				b.WriteString(", ")
			}
			b.WriteString("'")
			b.WriteString(strings.ReplaceAll(col, "'", "''"))
			b.WriteString("': ?")
		}
		b.WriteString("}")
		return b.String(), "", nil
	}

	return query, "", nil
}

func quoteIdent(name string) string {
	return `"` + strings.ReplaceAll(name, `"`, `""`) + `"`
}
