/*
Package datastore defines the cursor boundary of sqlrecord.

Every mapping operation receives a Cursor from the caller, executes one or two
statements through it and returns. Nothing is cached between calls; the caller
owns connections, transactions and deadlines.

	type Cursor interface {
	    Execute(ctx context.Context, query string, args ...any) (Cursor, error)
	    FetchOne() ([]any, error)
	    FetchAll() ([][]any, error)
	    Description() []string
	}

Implementations:
  - sqldb: database/sql (SQLite, PostgreSQL, MySQL drivers)
  - ddb: DynamoDB through PartiQL ExecuteStatement
  - mock: In-memory cursor for testing

ResultSet is a small buffer the implementations share for FetchOne, FetchAll
and Description.
*/
package datastore
