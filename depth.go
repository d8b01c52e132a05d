// Copyright 2020 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ujson

// MaxNestingDepth bounds how deeply arrays and objects may nest during
// parsing and serialization. The lower bound demanded is 256; this package
// doubles that for headroom without risking a stack-exhausting recursion
// depth on ordinary goroutine stacks.
const MaxNestingDepth = 512

// nestingGuard tracks recursion depth through the parser's or serializer's
// value/array/object productions, rejecting input that nests deeper than
// MaxNestingDepth rather than recursing until the goroutine stack overflows.
type nestingGuard struct {
	depth int
}

// enter increments the depth and reports whether the new depth is still
// within bounds.
func (g *nestingGuard) enter() bool {
	g.depth++
	return g.depth <= MaxNestingDepth
}

func (g *nestingGuard) leave() {
	g.depth--
}
