/*
Package sqlrecord is a minimal object-relational mapping layer. A plain record
type describes its table once and gains row serialization plus generic find,
save, update and delete operations against any SQL-executing cursor.

The library is split into small packages:
  - model: record metadata, the Record contract and the generic Table operations
  - registry: type registry converting values to and from driver scalars
  - datastore: the Cursor boundary, with database/sql, DynamoDB PartiQL and mock cursors
  - errors: semantic error types (not found, invalid field, missing column)
  - config: YAML and environment configuration for the sqlrecord command

Nothing holds a connection. Every operation takes the cursor to run on, so the
caller decides connections, transactions and deadlines.

Basic Usage:

	types := registry.NewDefaultTypeRegistry()
	items, _ := model.NewTable[Item](types)

	db, _ := sqldb.Open(ctx, "sqlite", "file:shop.db")
	cur := sqldb.New(db)

	_ = items.Save(ctx, cur, &Item{ID: 1, Name: "a", Price: 1.5})
	item, _ := items.Find(ctx, cur, 1)

A Catalog collects the tables of an application and provides the column
lists a DynamoDB cursor needs:

	catalog := sqlrecord.NewCatalog()
	_ = sqlrecord.Register(catalog, items)
	cur := ddb.New(client, catalog)
*/
package sqlrecord
