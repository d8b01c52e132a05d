// Copyright 2020 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ujson

import "math"

// BoolCast returns the boolean held by v, failing with BadCastError if v is
// not a Boolean.
func BoolCast(v Value) (bool, error) {
	if v.kind != KindBool {
		return false, badCast("boolean", v.kind)
	}
	return v.b, nil
}

// BoolCastMove is like BoolCast, but also resets *v to Null on success,
// transferring ownership out of the Value the way the move-out casts of the
// original library do.
func BoolCastMove(v *Value) (bool, error) {
	b, err := BoolCast(*v)
	if err != nil {
		return false, err
	}
	*v = Null()
	return b, nil
}

// DoubleCast returns the float64 held by v, failing with BadCastError if v
// is not a Number.
func DoubleCast(v Value) (float64, error) {
	if v.kind != KindNumber {
		return 0, badCast("number", v.kind)
	}
	return v.n, nil
}

// DoubleCastMove is the move-out form of DoubleCast.
func DoubleCastMove(v *Value) (float64, error) {
	f, err := DoubleCast(*v)
	if err != nil {
		return 0, err
	}
	*v = Null()
	return f, nil
}

// Int32Cast returns the Number held by v as an int32, failing with
// BadCastError if v is not a Number or its value is not an integer
// representable as int32.
func Int32Cast(v Value) (int32, error) {
	f, err := DoubleCast(v)
	if err != nil {
		return 0, err
	}
	if f != math.Trunc(f) || f < math.MinInt32 || f > math.MaxInt32 {
		return 0, badCastRange("int32")
	}
	return int32(f), nil
}

// Int32CastMove is the move-out form of Int32Cast.
func Int32CastMove(v *Value) (int32, error) {
	i, err := Int32Cast(*v)
	if err != nil {
		return 0, err
	}
	*v = Null()
	return i, nil
}

// Uint32Cast returns the Number held by v as a uint32, failing with
// BadCastError if v is not a Number or its value is not an integer
// representable as uint32.
func Uint32Cast(v Value) (uint32, error) {
	f, err := DoubleCast(v)
	if err != nil {
		return 0, err
	}
	if f != math.Trunc(f) || f < 0 || f > math.MaxUint32 {
		return 0, badCastRange("uint32")
	}
	return uint32(f), nil
}

// Uint32CastMove is the move-out form of Uint32Cast.
func Uint32CastMove(v *Value) (uint32, error) {
	u, err := Uint32Cast(*v)
	if err != nil {
		return 0, err
	}
	*v = Null()
	return u, nil
}

// StringCast returns the string held by v, failing with BadCastError if v
// is not a String.
func StringCast(v Value) (string, error) {
	if v.kind != KindString {
		return "", badCast("string", v.kind)
	}
	return v.s, nil
}

// StringCastMove is the move-out form of StringCast.
func StringCastMove(v *Value) (string, error) {
	s, err := StringCast(*v)
	if err != nil {
		return "", err
	}
	*v = Null()
	return s, nil
}

// ArrayCast returns the elements of the Array held by v, failing with
// BadCastError if v is not an Array. The returned slice aliases v's backing
// storage and must not be mutated.
func ArrayCast(v Value) ([]Value, error) {
	if v.kind != KindArray {
		return nil, badCast("array", v.kind)
	}
	return v.arr.elems, nil
}

// ArrayCastMove returns the elements of the Array held by *v and resets *v
// to Null on success. Unlike ArrayCast, the returned slice is the sole
// owner of its backing storage and may be freely mutated by the caller.
func ArrayCastMove(v *Value) ([]Value, error) {
	elems, err := ArrayCast(*v)
	if err != nil {
		return nil, err
	}
	// Other Values may still share the backing storage, so hand out a copy.
	out := make([]Value, len(elems))
	copy(out, elems)
	*v = Null()
	return out, nil
}

// ObjectCast returns the members of the Object held by v, failing with
// BadCastError if v is not an Object. The returned slice aliases v's
// backing storage and must not be mutated.
func ObjectCast(v Value) ([]Member, error) {
	if v.kind != KindObject {
		return nil, badCast("object", v.kind)
	}
	return v.obj.members, nil
}

// ObjectCastMove returns the members of the Object held by *v and resets *v
// to Null on success. Unlike ObjectCast, the returned slice is the sole
// owner of its backing storage and may be freely mutated by the caller.
func ObjectCastMove(v *Value) ([]Member, error) {
	members, err := ObjectCast(*v)
	if err != nil {
		return nil, err
	}
	// Other Values may still share the backing storage, so hand out a copy.
	out := make([]Member, len(members))
	copy(out, members)
	*v = Null()
	return out, nil
}
