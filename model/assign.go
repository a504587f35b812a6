/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package model

import (
	"fmt"
	"reflect"
	"time"

	"github.com/spf13/cast"
)

// Assign stores src in the variable dst points to, converting normalized
// scalars to the variable's type. A nil src zeroes the variable.
//
//	func (i *Item) Set(field string, v any) error {
//	    switch field {
//	    case "id":
//	        return model.Assign(&i.ID, v)
//	    ...
func Assign(dst any, src any) error {
	// Text protocols (MySQL) return every column as bytes.
	if b, ok := src.([]byte); ok {
		switch dst.(type) {
		case *[]byte, *any:
		default:
			src = string(b)
		}
	}

	var err error
	switch d := dst.(type) {
	case *string:
		err = convert(d, cast.ToStringE, src)
	case *int:
		err = convert(d, cast.ToIntE, src)
	case *int64:
		err = convert(d, cast.ToInt64E, src)
	case *int32:
		err = convert(d, cast.ToInt32E, src)
	case *uint64:
		err = convert(d, cast.ToUint64E, src)
	case *float64:
		err = convert(d, cast.ToFloat64E, src)
	case *float32:
		err = convert(d, cast.ToFloat32E, src)
	case *bool:
		err = convert(d, cast.ToBoolE, src)
	case *time.Time:
		if src == nil {
			*d = time.Time{}
			return nil
		}
		err = convert(d, cast.ToTimeE, src)
	case *[]byte:
		err = convert(d, toBytes, src)
	case *any:
		*d = src
	default:
		return assignReflect(dst, src)
	}
	if err != nil {
		return fmt.Errorf("assign %T to %T: %w", src, dst, err)
	}
	return nil
}

// convert leaves *dst untouched when the conversion fails.
func convert[V any](dst *V, conv func(any) (V, error), src any) error {
	v, err := conv(src)
	if err != nil {
		return err
	}
	*dst = v
	return nil
}

func toBytes(src any) ([]byte, error) {
	switch s := src.(type) {
	case nil:
		return nil, nil
	case []byte:
		return append([]byte(nil), s...), nil
	case string:
		return []byte(s), nil
	default:
		return nil, fmt.Errorf("cannot convert %T to []byte", src)
	}
}

// assignReflect handles pointer fields and named types.
func assignReflect(dst any, src any) error {
	dv := reflect.ValueOf(dst)
	if dv.Kind() != reflect.Pointer || dv.IsNil() {
		return fmt.Errorf("assign: destination must be a non-nil pointer, got %T", dst)
	}
	target := dv.Elem()

	if src == nil {
		target.Set(reflect.Zero(target.Type()))
		return nil
	}

	sv := reflect.ValueOf(src)
	if sv.Type().AssignableTo(target.Type()) {
		target.Set(sv)
		return nil
	}

	// *T field: allocate and assign into the new T.
	if target.Kind() == reflect.Pointer {
		elem := reflect.New(target.Type().Elem())
		if err := Assign(elem.Interface(), src); err != nil {
			return err
		}
		target.Set(elem)
		return nil
	}

	// Named scalar types such as `type Cents int64`.
	if base := baseScalar(target.Kind()); base != nil {
		tmp := reflect.New(base)
		if err := Assign(tmp.Interface(), src); err != nil {
			return err
		}
		target.Set(tmp.Elem().Convert(target.Type()))
		return nil
	}

	if sv.Type().ConvertibleTo(target.Type()) {
		target.Set(sv.Convert(target.Type()))
		return nil
	}
	return fmt.Errorf("assign: cannot assign %T to %s", src, target.Type())
}

func baseScalar(k reflect.Kind) reflect.Type {
	switch k {
	case reflect.String:
		return reflect.TypeOf("")
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return reflect.TypeOf(int64(0))
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return reflect.TypeOf(uint64(0))
	case reflect.Float32, reflect.Float64:
		return reflect.TypeOf(float64(0))
	case reflect.Bool:
		return reflect.TypeOf(false)
	}
	return nil
}
