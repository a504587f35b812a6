/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package registry

import (
	"fmt"
	"reflect"
	"strings"
	"sync"
)

// Value is a normalized scalar handed to or read back from a SQL driver:
// nil, string, []byte, an integer or a float. Values of unregistered types
// pass through unchanged.
type Value = any

// SerializeFunc converts an in-memory value into a normalized scalar.
type SerializeFunc func(v any) (Value, error)

// DeserializeFunc converts a normalized scalar back into an in-memory value.
type DeserializeFunc func(v Value) (any, error)

type codec struct {
	serialize   SerializeFunc
	deserialize DeserializeFunc
}

// TypeRegistry maps type names to serializer/deserializer pairs.
// It is safe for concurrent use.
type TypeRegistry struct {
	mu     sync.RWMutex
	codecs map[string]codec
}

// NewTypeRegistry returns an empty registry. Every type passes through it unchanged.
func NewTypeRegistry() *TypeRegistry {
	return &TypeRegistry{
		codecs: make(map[string]codec),
	}
}

// Register installs the codec pair for typeName, replacing any previous pair.
// The two functions are expected to be inverses; this is not checked.
func (r *TypeRegistry) Register(typeName string, serialize SerializeFunc, deserialize DeserializeFunc) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.codecs[typeName] = codec{serialize: serialize, deserialize: deserialize}
}

// Registered reports whether typeName has a codec pair.
func (r *TypeRegistry) Registered(typeName string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	_, ok := r.codecs[typeName]
	return ok
}

// Types returns the registered type names.
func (r *TypeRegistry) Types() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, 0, len(r.codecs))
	for name := range r.codecs {
		names = append(names, name)
	}
	return names
}

func (r *TypeRegistry) lookup(typeName string) (codec, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	c, ok := r.codecs[typeName]
	return c, ok
}

// SerializeValue normalizes v using the serializer registered for its runtime
// type name. Nil values and nil pointers serialize to nil; other pointers are
// dereferenced first. Unregistered types are returned unchanged.
func (r *TypeRegistry) SerializeValue(v any) (Value, error) {
	v, ok := indirect(v)
	if !ok {
		return nil, nil
	}

	name := TypeName(v)
	c, found := r.lookup(name)
	if !found || c.serialize == nil {
		return v, nil
	}

	out, err := c.serialize(v)
	if err != nil {
		return nil, fmt.Errorf("type registry: serialize %s: %w", name, err)
	}
	return out, nil
}

// DeserializeValue converts v using the deserializer registered for the declared
// type name. A "*T" name falls back to the "T" entry. Nil stays nil and
// unregistered types are returned unchanged.
func (r *TypeRegistry) DeserializeValue(v Value, typeName string) (any, error) {
	if v == nil {
		return nil, nil
	}

	c, found := r.lookup(typeName)
	if !found && strings.HasPrefix(typeName, "*") {
		c, found = r.lookup(strings.TrimPrefix(typeName, "*"))
	}
	if !found || c.deserialize == nil {
		return v, nil
	}

	out, err := c.deserialize(v)
	if err != nil {
		return nil, fmt.Errorf("type registry: deserialize %s: %w", typeName, err)
	}
	return out, nil
}

// TypeName returns the name values of v's type are registered under,
// for example "int64", "time.Time" or "strfmt.DateTime". It returns "" for nil.
func TypeName(v any) string {
	if v == nil {
		return ""
	}
	return reflect.TypeOf(v).String()
}

// TypeNameOf returns the registry name of T.
func TypeNameOf[T any]() string {
	return reflect.TypeOf((*T)(nil)).Elem().String()
}

// Register installs typed codec functions for T under TypeNameOf[T]().
func Register[T any](r *TypeRegistry, serialize func(T) (Value, error), deserialize func(Value) (T, error)) {
	r.Register(TypeNameOf[T](),
		func(v any) (Value, error) {
			tv, ok := v.(T)
			if !ok {
				return nil, fmt.Errorf("expected %s, got %T", TypeNameOf[T](), v)
			}
			return serialize(tv)
		},
		func(v Value) (any, error) {
			return deserialize(v)
		},
	)
}

// indirect unwraps pointers, reporting false for nil.
func indirect(v any) (any, bool) {
	if v == nil {
		return nil, false
	}
	rv := reflect.ValueOf(v)
	for rv.Kind() == reflect.Pointer {
		if rv.IsNil() {
			return nil, false
		}
		rv = rv.Elem()
	}
	return rv.Interface(), true
}
