// Copyright 2020 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ujson

// Equal reports whether a and b are structurally equal: same Kind, and
// recursively equal payloads. Numbers compare with ordinary float64 ==, so
// 0 and -0 are equal. Object equality is order-independent: two Objects are
// equal when, for every key, the multiset of values stored under that key
// in a matches the multiset of values stored under that key in b — so
// {"a":1,"b":2} equals {"b":2,"a":1}, and {"a":1,"a":2} equals
// {"a":2,"a":1} but not {"a":1,"a":1}.
func Equal(a, b Value) bool {
	if a.kind != b.kind {
		return false
	}
	switch a.kind {
	case KindNull:
		return true
	case KindBool:
		return a.b == b.b
	case KindNumber:
		return a.n == b.n
	case KindString:
		return a.s == b.s
	case KindArray:
		return arrayEqual(a.arr.elems, b.arr.elems)
	case KindObject:
		return objectEqual(a.obj.members, b.obj.members)
	default:
		return false
	}
}

// Equal is a method form of Equal, for use as v1.Equal(v2).
func (v Value) Equal(other Value) bool { return Equal(v, other) }

func arrayEqual(a, b []Value) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if !Equal(a[i], b[i]) {
			return false
		}
	}
	return true
}

// objectEqual compares two Objects as multisets of members: member order
// never matters, and duplicate keys are not deduplicated — each key's
// values are matched up as their own multiset, independent of any other
// key's values.
func objectEqual(a, b []Member) bool {
	if len(a) != len(b) {
		return false
	}
	groupsA := groupByKey(a)
	groupsB := groupByKey(b)
	if len(groupsA) != len(groupsB) {
		return false
	}
	for key, valsA := range groupsA {
		valsB, ok := groupsB[key]
		if !ok || !valueMultisetEqual(valsA, valsB) {
			return false
		}
	}
	return true
}

func groupByKey(members []Member) map[string][]Value {
	groups := make(map[string][]Value, len(members))
	for _, m := range members {
		groups[m.Key] = append(groups[m.Key], m.Value)
	}
	return groups
}

// valueMultisetEqual reports whether a and b contain the same Values with
// the same multiplicities, ignoring order. Values have no total order of
// their own (an Array or Object has nothing natural to sort by), so rather
// than sorting, this greedily matches each element of a against an unused
// element of b via Equal.
func valueMultisetEqual(a, b []Value) bool {
	if len(a) != len(b) {
		return false
	}
	used := make([]bool, len(b))
	for _, av := range a {
		found := false
		for j, bv := range b {
			if !used[j] && Equal(av, bv) {
				used[j] = true
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	return true
}
