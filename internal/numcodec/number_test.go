// Copyright 2020 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package numcodec

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScanValidLexemes(t *testing.T) {
	cases := []string{"0", "-0", "1", "-1", "1.5", "1e10", "1E+10", "1e-10", "0.001", "123456789"}
	for _, s := range cases {
		assert.Equal(t, len(s), Scan([]byte(s)), s)
	}
}

func TestScanStopsAtLexemeBoundary(t *testing.T) {
	assert.Equal(t, 1, Scan([]byte("0,")))
	assert.Equal(t, 3, Scan([]byte("1.5 ")))
}

func TestScanRejectsLeadingZeroDigitRun(t *testing.T) {
	assert.Equal(t, 1, Scan([]byte("01"))) // only "0" is a valid lexeme; "1" starts the next token
}

func TestScanRejectsTrailingDot(t *testing.T) {
	assert.Equal(t, 0, Scan([]byte("10.")))
}

func TestScanRejectsLeadingDot(t *testing.T) {
	assert.Equal(t, 0, Scan([]byte(".01")))
}

func TestScanRejectsEmptyExponent(t *testing.T) {
	assert.Equal(t, 0, Scan([]byte("1e")))
	assert.Equal(t, 0, Scan([]byte("1e+")))
}

func TestParseNegativeZero(t *testing.T) {
	f, err := Parse([]byte("-0"))
	require.NoError(t, err)
	assert.Equal(t, float64(0), f)
}

func TestParseOverflowToInfinity(t *testing.T) {
	_, err := Parse([]byte("1.8e+309"))
	assert.ErrorIs(t, err, ErrOverflow)
}

func TestParseRejectsPartialLexeme(t *testing.T) {
	_, err := Parse([]byte("1.5x"))
	assert.ErrorIs(t, err, ErrSyntax)
}

func TestFormatRoundTrips(t *testing.T) {
	for _, f := range []float64{0, 1, -1, 1.5, 1e21, 1e-7, 123456789.123} {
		b := Format(nil, f)
		got, err := Parse(b)
		require.NoError(t, err)
		assert.Equal(t, f, got)
	}
}

func TestFormatSwitchesToExponentNotation(t *testing.T) {
	assert.Equal(t, "1e+21", string(Format(nil, 1e21)))
	assert.Equal(t, "1e-7", string(Format(nil, 1e-7)))
}

func TestFormatCompactNotation(t *testing.T) {
	assert.Equal(t, "0", string(Format(nil, 0)))
	assert.Equal(t, "1.5", string(Format(nil, 1.5)))
}
