/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package sqldb

import (
	"context"
	"database/sql"
	"fmt"
	"regexp"
	"strings"

	"github.com/rs/zerolog"
	"github.com/suparena/sqlrecord/datastore"
)

// Executor is satisfied by *sql.DB, *sql.Tx and *sql.Conn.
type Executor interface {
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
}

// Cursor implements datastore.Cursor on top of database/sql. Results are read
// in full when a statement executes, so no *sql.Rows stays open between calls.
type Cursor struct {
	datastore.ResultSet

	exec     Executor
	bind     BindStyle
	logger   zerolog.Logger
	rowCount int64
}

// Option configures a Cursor.
type Option func(*Cursor)

// WithBindStyle sets the placeholder style statements are rewritten to.
func WithBindStyle(style BindStyle) Option {
	return func(c *Cursor) {
		c.bind = style
	}
}

// WithLogger sets the logger used for statement debug logging.
func WithLogger(logger zerolog.Logger) Option {
	return func(c *Cursor) {
		c.logger = logger
	}
}

// New returns a cursor executing statements through exec.
func New(exec Executor, opts ...Option) *Cursor {
	c := &Cursor{
		exec:   exec,
		bind:   Question,
		logger: zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Open opens a database and verifies the connection.
func Open(ctx context.Context, driver, dsn string) (*sql.DB, error) {
	db, err := sql.Open(driver, dsn)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}
	return db, nil
}

// Execute runs query. Row-returning statements are read into the cursor;
// other statements record the number of affected rows.
func (c *Cursor) Execute(ctx context.Context, query string, args ...any) (datastore.Cursor, error) {
	c.Reset(nil, nil)
	c.rowCount = -1

	q := Rebind(c.bind, query)
	c.logger.Debug().Str("sql", q).Int("args", len(args)).Msg("Executing statement")

	if !returnsRows(q) {
		res, err := c.exec.ExecContext(ctx, q, args...)
		if err != nil {
			return nil, err
		}
		if n, err := res.RowsAffected(); err == nil {
			c.rowCount = n
		}
		return c, nil
	}

	rows, err := c.exec.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	columns, err := rows.Columns()
	if err != nil {
		return nil, fmt.Errorf("read columns: %w", err)
	}

	var result [][]any
	for rows.Next() {
		values := make([]any, len(columns))
		ptrs := make([]any, len(columns))
		for i := range values {
			ptrs[i] = &values[i]
		}
		if err := rows.Scan(ptrs...); err != nil {
			return nil, fmt.Errorf("scan row: %w", err)
		}
		result = append(result, values)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	c.Reset(columns, result)
	c.rowCount = int64(len(result))
	return c, nil
}

// RowCount returns the number of rows affected or returned by the last
// statement, or -1 when the driver could not tell.
func (c *Cursor) RowCount() int64 {
	return c.rowCount
}

var rowsPattern = regexp.MustCompile(`(?is)^\s*(select|with|pragma|values|show|explain|describe)\b|\breturning\b`)

func returnsRows(query string) bool {
	return rowsPattern.MatchString(query)
}

// BindStyle is a driver's parameter placeholder syntax.
type BindStyle int

const (
	// Question is "?" (SQLite, MySQL).
	Question BindStyle = iota
	// Dollar is "$1", "$2", ... (PostgreSQL).
	Dollar
)

// BindStyleFor returns the placeholder style of a database/sql driver name.
func BindStyleFor(driver string) BindStyle {
	switch strings.ToLower(driver) {
	case "postgres", "postgresql", "pgx", "pgx/v5":
		return Dollar
	}
	return Question
}

// Rebind rewrites "?" placeholders for style. Placeholders inside quoted
// text are left alone.
func Rebind(style BindStyle, query string) string {
	if style == Question || !strings.Contains(query, "?") {
		return query
	}

	var b strings.Builder
	b.Grow(len(query) + 8)
	n := 0
	var quote rune
	for _, r := range query {
		switch {
		case quote != 0:
			if r == quote {
				quote = 0
			}
			b.WriteRune(r)
		case r == '\'' || r == '"' || r == '`':
			quote = r
			b.WriteRune(r)
		case r == '?':
			n++
			fmt.Fprintf(&b, "$%d", n)
		default:
			b.WriteRune(r)
		}
	}
	return b.String()
}
