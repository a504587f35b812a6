/*
Package sqldb provides a database/sql implementation of datastore.Cursor.

	db, err := sqldb.Open(ctx, "sqlite", "file:app.db")
	cur := sqldb.New(db, sqldb.WithBindStyle(sqldb.BindStyleFor("sqlite")))

	items.Save(ctx, cur, item)

The cursor accepts a *sql.DB, *sql.Tx or *sql.Conn, so callers decide the
transaction scope. Statements are written with "?" placeholders and rebound to
"$n" for PostgreSQL drivers (lib/pq, pgx).

Drivers are not imported here; register the ones you need in the main package.
*/
package sqldb
