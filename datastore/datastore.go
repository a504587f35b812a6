/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package datastore

import (
	"context"
)

// Cursor executes SQL and hands back result rows, in the manner of a DB-API cursor.
// Implementations are not safe for concurrent use.
type Cursor interface {
	// Execute runs query with positional ("?") or named arguments and returns a
	// cursor positioned before the first result row.
	Execute(ctx context.Context, query string, args ...any) (Cursor, error)

	// FetchOne returns the next row, or nil when the result is exhausted.
	FetchOne() ([]any, error)

	// FetchAll returns all remaining rows.
	FetchAll() ([][]any, error)

	// Description returns the result column names of the last executed statement, in order.
	Description() []string
}
