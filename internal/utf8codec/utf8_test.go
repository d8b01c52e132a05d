// Copyright 2020 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package utf8codec

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidASCII(t *testing.T) {
	assert.True(t, Valid([]byte("hello")))
}

func TestValidMultiByte(t *testing.T) {
	assert.True(t, Valid([]byte("héllo wörld 😀")))
}

func TestInvalidTruncatedSequence(t *testing.T) {
	assert.False(t, Valid([]byte{0xE2, 0x82})) // truncated 3-byte sequence (€ sign)
}

func TestInvalidOverlongEncoding(t *testing.T) {
	// 0xC0 0x80 is an overlong 2-byte encoding of NUL; must be rejected.
	assert.False(t, Valid([]byte{0xC0, 0x80}))
}

func TestInvalidSurrogateEncoding(t *testing.T) {
	// 0xED 0xA0 0x80 would decode to U+D800, a surrogate; surrogates are
	// never valid in UTF-8.
	assert.False(t, Valid([]byte{0xED, 0xA0, 0x80}))
}

func TestInvalidAboveMaxRune(t *testing.T) {
	// 0xF4 0x90 0x80 0x80 decodes to U+110000, above the U+10FFFF ceiling.
	assert.False(t, Valid([]byte{0xF4, 0x90, 0x80, 0x80}))
}

func TestInvalidBadContinuationByte(t *testing.T) {
	assert.False(t, Valid([]byte{0xC2, 0x20})) // continuation byte not 10xxxxxx
}

func TestAppendRuneRoundTrips(t *testing.T) {
	for _, r := range []rune{'a', 0xE9, 0x20AC, 0x1F600} {
		b := AppendRune(nil, r)
		got, n := DecodeRune(b)
		assert.Equal(t, len(b), n)
		assert.Equal(t, r, got)
	}
}

func TestIsSurrogate(t *testing.T) {
	assert.True(t, IsSurrogate(0xD800))
	assert.True(t, IsSurrogate(0xDFFF))
	assert.False(t, IsSurrogate(0xD7FF))
	assert.False(t, IsSurrogate(0xE000))
}
