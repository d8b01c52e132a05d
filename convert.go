// Copyright 2020 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ujson

import (
	"fmt"
	"reflect"
)

// Marshaler is implemented by types that know how to convert themselves to
// a Value. This is the Go-idiomatic form of the original library's
// to_json(T) conversion hook: overload resolution there becomes an
// interface satisfaction check here.
type Marshaler interface {
	ToJSON() (Value, error)
}

// From converts an arbitrary Go value into a Value. It type-switches over
// the JSON primitives first, then falls back to a Marshaler implementation
// if present, and finally to reflection for maps, slices, arrays, pointers,
// and structs. A struct without a Marshaler is converted field by field
// using its field names as object keys; unexported fields are skipped.
func From(x any) (Value, error) {
	switch val := x.(type) {
	case nil:
		return Null(), nil
	case Value:
		return val, nil
	case bool:
		return Bool(val), nil
	case string:
		return String(val)
	case float64:
		return Double(val)
	case float32:
		return Double(float64(val))
	case int:
		return Double(float64(val))
	case int32:
		return Int32(val), nil
	case uint32:
		return Uint32(val), nil
	case int64:
		return Double(float64(val))
	case []any:
		return fromSliceAny(val)
	case map[string]any:
		return fromMapAny(val)
	case Marshaler:
		return val.ToJSON()
	default:
		return fromReflect(reflect.ValueOf(x))
	}
}

func fromSliceAny(elems []any) (Value, error) {
	out := make([]Value, len(elems))
	for i, el := range elems {
		v, err := From(el)
		if err != nil {
			return Value{}, err
		}
		out[i] = v
	}
	return NewArray(out), nil
}

func fromMapAny(m map[string]any) (Value, error) {
	members := make([]Member, 0, len(m))
	for k, el := range m {
		v, err := From(el)
		if err != nil {
			return Value{}, err
		}
		members = append(members, Member{Key: k, Value: v})
	}
	return NewObject(members), nil
}

func fromReflect(rv reflect.Value) (Value, error) {
	if !rv.IsValid() {
		return Null(), nil
	}
	if m, ok := rv.Interface().(Marshaler); ok {
		return m.ToJSON()
	}
	switch rv.Kind() {
	case reflect.Ptr, reflect.Interface:
		if rv.IsNil() {
			return Null(), nil
		}
		return fromReflect(rv.Elem())
	case reflect.Bool:
		return Bool(rv.Bool()), nil
	case reflect.String:
		return String(rv.String())
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return Double(float64(rv.Int()))
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return Double(float64(rv.Uint()))
	case reflect.Float32, reflect.Float64:
		return Double(rv.Float())
	case reflect.Slice, reflect.Array:
		if rv.Kind() == reflect.Slice && rv.IsNil() {
			return NewArray(nil), nil
		}
		out := make([]Value, rv.Len())
		for i := range out {
			v, err := fromReflect(rv.Index(i))
			if err != nil {
				return Value{}, err
			}
			out[i] = v
		}
		return NewArray(out), nil
	case reflect.Map:
		if rv.IsNil() {
			return NewObject(nil), nil
		}
		members := make([]Member, 0, rv.Len())
		iter := rv.MapRange()
		for iter.Next() {
			k := iter.Key()
			if k.Kind() != reflect.String {
				return Value{}, badCast("a string-keyed map", KindObject)
			}
			v, err := fromReflect(iter.Value())
			if err != nil {
				return Value{}, err
			}
			members = append(members, Member{Key: k.String(), Value: v})
		}
		return NewObject(members), nil
	case reflect.Struct:
		return fromStruct(rv)
	default:
		return Value{}, fmt.Errorf("ujson: cannot convert %s to a value", rv.Type())
	}
}

func fromStruct(rv reflect.Value) (Value, error) {
	t := rv.Type()
	members := make([]Member, 0, t.NumField())
	for i := 0; i < t.NumField(); i++ {
		f := t.Field(i)
		if !f.IsExported() {
			continue
		}
		v, err := fromReflect(rv.Field(i))
		if err != nil {
			return Value{}, err
		}
		members = append(members, Member{Key: f.Name, Value: v})
	}
	return NewObject(members), nil
}
