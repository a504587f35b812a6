/*
Package ddb provides a DynamoDB implementation of datastore.Cursor.

Statements run through the PartiQL ExecuteStatement API. The SQL generated by
the model package is translated on the way:

	select * from items;                     SELECT * FROM "items"
	select * from items where id = ?;        SELECT * FROM "items" WHERE "id" = ?
	delete from items where id = ?;          DELETE FROM "items" WHERE "id" = ?
	update items set a = ?, b = ? where id = ?;
	                                         UPDATE "items" SET "a" = ? SET "b" = ? WHERE "id" = ?
	insert into items values (?, ?, ?);      INSERT INTO "items" VALUE {'id': ?, 'name': ?, 'price': ?}

Inserts need the column names of the table, which come from a ColumnSource
such as sqlrecord.Catalog. Any other statement is passed to DynamoDB as is, so
hand-written PartiQL works with Table.Query and Table.QueryMany.

	client, err := ddb.NewDynamoDBClient(ctx, ddb.Config{Region: "us-east-1"})
	cur := ddb.New(client, catalog, ddb.WithConsistentRead(true))

Result pages are followed until NextToken is empty. Result columns are the
table's known columns followed by any other attribute names, sorted; numbers
come back as int64 when integral and float64 otherwise.
*/
package ddb
