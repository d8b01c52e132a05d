// Copyright 2020 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ujson

import "github.com/awkristensen/ujson/internal/utf8codec"

// Kind identifies which of the six JSON value alternatives a Value holds.
type Kind int

const (
	KindNull Kind = iota
	KindBool
	KindNumber
	KindString
	KindArray
	KindObject
)

func (k Kind) String() string {
	switch k {
	case KindNull:
		return "null"
	case KindBool:
		return "boolean"
	case KindNumber:
		return "number"
	case KindString:
		return "string"
	case KindArray:
		return "array"
	case KindObject:
		return "object"
	default:
		return "invalid"
	}
}

// Value is a tagged union over the six JSON alternatives. The zero Value is
// Null. A Value is small and cheap to copy: Null, Bool, and Number are
// stored inline, and String shares Go's already-immutable string header.
// Array and Object share a pointer to a container that is never mutated
// after construction, so copying a Value holding either is an O(1) pointer
// copy — the garbage collector frees the container once the last Value
// referencing it is gone, which is what gives Go's version of this type the
// "shared ownership with safe concurrent destruction" property the original
// design gets from reference counting (see DESIGN.md).
type Value struct {
	kind Kind
	b    bool
	n    float64
	s    string
	arr  *arrayBody
	obj  *objectBody
}

type arrayBody struct {
	elems []Value
}

// Member is a single key/value pair of an Object, in insertion order.
type Member struct {
	Key   string
	Value Value
}

type objectBody struct {
	members []Member
}

// Null returns the Null value. It is also the zero Value.
func Null() Value { return Value{kind: KindNull} }

// Bool constructs a Boolean value.
func Bool(b bool) Value { return Value{kind: KindBool, b: b} }

// Double constructs a Number value from a float64. It fails with
// BadNumberError if f is not finite — NaN and ±Inf can never be stored.
func Double(f float64) (Value, error) {
	if isNonFinite(f) {
		return Value{}, badNumber("value is not finite")
	}
	return Value{kind: KindNumber, n: f}, nil
}

// MustDouble is like Double but panics on a non-finite input. It is meant
// for constructing literal Values from constants known to be finite.
func MustDouble(f float64) Value {
	v, err := Double(f)
	if err != nil {
		panic(err)
	}
	return v
}

// Int32 constructs a Number value from an int32. Every int32 is exactly
// representable in a float64, so this never fails.
func Int32(i int32) Value { return Value{kind: KindNumber, n: float64(i)} }

// Uint32 constructs a Number value from a uint32. Every uint32 is exactly
// representable in a float64, so this never fails.
func Uint32(u uint32) Value { return Value{kind: KindNumber, n: float64(u)} }

// String constructs a String value, validating that s is well-formed UTF-8.
// It fails with BadStringError otherwise.
func String(s string) (Value, error) {
	if !utf8codec.Valid([]byte(s)) {
		return Value{}, badString("not well-formed UTF-8")
	}
	return Value{kind: KindString, s: s}, nil
}

// StringUnchecked constructs a String value without validating UTF-8
// well-formedness. The serializer still validates before emitting it
// (§4.6): an ill-formed Value built this way fails at ToString, not here.
func StringUnchecked(s string) Value {
	return Value{kind: KindString, s: s}
}

// NewArray constructs an Array value from elems. The elements are copied
// into a private, never-again-mutated backing slice, so later mutation of
// the caller's slice is never observable through the returned Value.
func NewArray(elems []Value) Value {
	cp := make([]Value, len(elems))
	copy(cp, elems)
	return Value{kind: KindArray, arr: &arrayBody{elems: cp}}
}

// NewObject constructs an Object value from members, preserved verbatim in
// insertion order. Duplicate keys are permitted and are not deduplicated
// (§3): the serializer will emit every member.
func NewObject(members []Member) Value {
	cp := make([]Member, len(members))
	copy(cp, members)
	return Value{kind: KindObject, obj: &objectBody{members: cp}}
}

func isNonFinite(f float64) bool {
	return f != f || f > maxFinite || f < -maxFinite
}

const maxFinite = 1.7976931348623157e+308 // math.MaxFloat64, spelled out to avoid importing math here

// Kind reports which alternative v holds.
func (v Value) Kind() Kind { return v.kind }

func (v Value) IsNull() bool   { return v.kind == KindNull }
func (v Value) IsBool() bool   { return v.kind == KindBool }
func (v Value) IsNumber() bool { return v.kind == KindNumber }
func (v Value) IsString() bool { return v.kind == KindString }
func (v Value) IsArray() bool  { return v.kind == KindArray }
func (v Value) IsObject() bool { return v.kind == KindObject }

// Swap exchanges the contents of a and b in O(1).
func Swap(a, b *Value) { *a, *b = *b, *a }

// Len reports the number of elements in an Array, or -1 if v is not an
// Array.
func (v Value) Len() int {
	if v.kind != KindArray {
		return -1
	}
	return len(v.arr.elems)
}

// Find returns the Value of the first member of an Object whose key equals
// key, and whether one was found. If v is not an Object, ok is always
// false. This is the at/find operation from the programmatic surface.
func (v Value) Find(key string) (result Value, ok bool) {
	if v.kind != KindObject {
		return Value{}, false
	}
	for _, m := range v.obj.members {
		if m.Key == key {
			return m.Value, true
		}
	}
	return Value{}, false
}
