// Copyright 2020 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package ujson implements an in-memory JSON value tree: parsing bytes into
// a Value, and serializing a Value back into bytes.
//
// # Terminology
//
// A JSON "object" is an ordered sequence of key/value members; a JSON
// "array" is an ordered sequence of elements; a JSON "value" is one of
// null, a boolean, a number, a string, an object, or an array.
//
// # Scope
//
// This package covers a single-pass parse of a fully-materialized byte
// buffer into a Value, and a single-pass serialization of a Value into a
// fully-materialized byte buffer. It does not stream, does not validate
// against a schema, and does not support any numeric type other than
// IEEE-754 binary64. Comments, trailing commas, and other JSON5-style
// extensions are rejected.
package ujson
