/*
Package registry converts between in-memory values and the normalized scalars
a SQL driver stores: nil, string, []byte, integers and floats.

A TypeRegistry maps a type name to a serializer (value → scalar) and a
deserializer (scalar → value). Serialization looks the pair up by the runtime
type name of the value; deserialization looks it up by the type name a record
declares for the field. Types without a pair pass through unchanged.

	types := registry.NewDefaultTypeRegistry()

	registry.Register(types,
	    func(c Cents) (registry.Value, error) { return int64(c), nil },
	    func(v registry.Value) (Cents, error) { return Cents(cast.ToInt64(v)), nil },
	)
	registry.RegisterJSON[[]string](types)

	v, _ := types.SerializeValue(time.Now())          // "2025-01-02T15:04:05.999Z"
	t, _ := types.DeserializeValue(v, "time.Time")    // time.Time

Type names are reflect.Type.String() values, see TypeName and TypeNameOf.

The registry is thread-safe. It is usually populated once at startup and then
shared by every model.Table that maps records through it.
*/
package registry
