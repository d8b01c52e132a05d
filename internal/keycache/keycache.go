// Copyright 2022 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package keycache interns object member keys during parsing, tuned for
// how the parser actually encounters them: an object's members are parsed
// key by key in document order, and the most common source of repetition
// is an array of structurally-identical records — where the key at field
// position i of one object is, in practice, byte-identical to the key at
// field position i of the previous object parsed at the same nesting
// depth. A small table indexed by (depth, field position) catches that
// case with no hashing at all; it simply misses (falling back to a fresh
// allocation) for keys that don't repeat this way, rather than attempting
// to intern arbitrary unrelated strings.
package keycache

// Cache is a per-document, depth-indexed intern table. The zero value is
// usable.
type Cache struct {
	depths [][]string // depths[d][i] is the key most recently seen at field position i of an object at nesting depth d
}

// Make returns the string form of b, reusing the string already recorded
// at the given (depth, field) position when its bytes are unchanged from
// the previous object parsed at that position — which is the common case
// for an array of records sharing a field layout.
func (c *Cache) Make(depth, field int, b []byte) string {
	for len(c.depths) <= depth {
		c.depths = append(c.depths, nil)
	}
	keys := c.depths[depth]

	if field < len(keys) && keys[field] == string(b) {
		return keys[field]
	}

	s := string(b)
	switch {
	case field < len(keys):
		keys[field] = s
	case field == len(keys):
		keys = append(keys, s)
		c.depths[depth] = keys
	default:
		// A field position beyond any recorded so far at this depth; pad
		// the skipped positions so future positions keep indexing correctly.
		for len(keys) < field {
			keys = append(keys, "")
		}
		keys = append(keys, s)
		c.depths[depth] = keys
	}
	return s
}
