/*
Package model maps record types to relational rows.

A record type describes its table with a Meta (table name, primary key and an
ordered list of fields) and implements Record:

	type Item struct {
	    ID    int64
	    Name  string
	    Price float64
	}

	var itemMeta = &model.Meta{
	    Table: "items",
	    Fields: []model.Field{
	        model.FieldOf[int64]("id"),
	        model.FieldOf[string]("name"),
	        model.FieldOf[float64]("price"),
	    },
	}

	func (i *Item) Meta() *model.Meta { return itemMeta }
	func (i *Item) Values() []any     { return []any{i.ID, i.Name, i.Price} }
	func (i *Item) Set(field string, v any) error {
	    switch field {
	    case "id":
	        return model.Assign(&i.ID, v)
	    case "name":
	        return model.Assign(&i.Name, v)
	    case "price":
	        return model.Assign(&i.Price, v)
	    }
	    return errors.NewValidationError(field, "not an Item field")
	}

A Table binds the type to a registry.TypeRegistry and runs the generic
operations against whatever cursor the caller passes in:

	items, _ := model.NewTable[Item](registry.NewDefaultTypeRegistry())

	_ = items.Save(ctx, cur, &Item{ID: 1, Name: "a", Price: 1.5})
	item, _ := items.Find(ctx, cur, 1)           // nil when absent
	all, _ := items.All(ctx, cur)
	_ = items.Update(ctx, cur, item, "price", 2.0)
	_ = items.Delete(ctx, cur, 1)                // errors.ErrNotFound when absent

Generated statements:

	select * from {table};
	select * from {table} where {pk} = ?;
	delete from {table} where {pk} = ?;
	update {table} set {col1} = ?, {col2} = ? where {pk} = ?;
	insert into {table} values (?, ?, ...);

Field declaration order is the column order of the table. Reordering fields
without migrating stored data silently corrupts inserts.
*/
package model
