// Copyright 2020 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ujson

import (
	"math/bits"
	"sync"
)

// ToString builds its whole result in a single append loop rather than
// writing incrementally to an io.Writer the way a streaming encoder would,
// so the cost this pool needs to avoid isn't "one long-lived buffer drifts
// to the wrong size over many writes" (what the teacher's strikes-counting
// bufferPool defends against) — it's "one huge document's output buffer
// gets reused for the next hundred tiny ones." Bucketing by size class
// keeps a document's buffer in the pool it actually fits, instead of
// pinning whatever the largest recent call needed.
const (
	minClassShift = 6  // smallest class holds 64 bytes
	numClasses    = 15 // largest class holds 64 << 14 = 1MiB; bigger buffers aren't pooled
)

var classPools [numClasses]sync.Pool

func init() {
	for i := range classPools {
		size := 1 << (minClassShift + i)
		classPools[i].New = func() any {
			buf := make([]byte, 0, size)
			return &buf
		}
	}
}

// classFor returns the index of the smallest class pool whose buffers hold
// at least n bytes, or an index >= numClasses if n exceeds every class.
func classFor(n int) int {
	if n <= 1<<minClassShift {
		return 0
	}
	shift := bits.Len(uint(n - 1))
	if shift < minClassShift {
		shift = minClassShift
	}
	return shift - minClassShift
}

// getBuffer returns a buffer from the smallest size class, since most
// documents this package serializes are modest; appends beyond its
// capacity grow it the ordinary way. It never draws from the larger class
// pools, so buffers that putBuffer files there are not handed out again.
func getBuffer() *[]byte {
	b := classPools[0].Get().(*[]byte)
	*b = (*b)[:0]
	return b
}

// putBuffer returns b to the class pool matching its current capacity, so
// a buffer that grew while serializing a large document is kept out of the
// smallest class that getBuffer draws from. Buffers larger than the biggest
// class are dropped and left to the GC.
func putBuffer(b *[]byte) {
	idx := classFor(cap(*b))
	*b = (*b)[:0]
	if idx >= numClasses {
		return
	}
	classPools[idx].Put(b)
}
