// Copyright 2020 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ujson

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLiterals(t *testing.T) {
	v, err := Parse([]byte("null"))
	require.NoError(t, err)
	assert.True(t, v.IsNull())

	v, err = Parse([]byte("true"))
	require.NoError(t, err)
	b, _ := BoolCast(v)
	assert.True(t, b)

	v, err = Parse([]byte("false"))
	require.NoError(t, err)
	b, _ = BoolCast(v)
	assert.False(t, b)
}

func TestParseNegativeZero(t *testing.T) {
	v, err := Parse([]byte("-0"))
	require.NoError(t, err)
	zero, _ := Double(0)
	assert.True(t, v.Equal(zero), `parse("-0") must equal 0`)
}

func TestParseRejectsLeadingZeroFraction(t *testing.T) {
	_, err := Parse([]byte("10."))
	assert.Error(t, err, `"10." is not valid JSON: a fraction needs digits after the dot`)

	_, err = Parse([]byte(".01"))
	assert.Error(t, err, `".01" is not valid JSON: an integer part is required`)
}

func TestParseOverflowingLiteralFails(t *testing.T) {
	_, err := Parse([]byte("1.8e+308e"))
	assert.Error(t, err)

	_, err = Parse([]byte("1" + repeatDigits(400)))
	require.Error(t, err)
	var badNum *BadNumberError
	assert.ErrorAs(t, err, &badNum)
}

func repeatDigits(n int) string {
	b := make([]byte, n)
	for i := range b {
		b[i] = '0'
	}
	return string(b)
}

func TestParseString(t *testing.T) {
	v, err := Parse([]byte(`"hello\nworld"`))
	require.NoError(t, err)
	s, err := StringCast(v)
	require.NoError(t, err)
	assert.Equal(t, "hello\nworld", s)
}

func TestParseStringSurrogatePair(t *testing.T) {
	v, err := Parse([]byte("\"\\ud83d\\ude00\""))
	require.NoError(t, err)
	s, err := StringCast(v)
	require.NoError(t, err)
	assert.Equal(t, "😀", s)
}

func TestParseStringRejectsLoneSurrogate(t *testing.T) {
	_, err := Parse([]byte(`"\ud83d"`))
	assert.Error(t, err)
}

func TestParseStringRejectsUnescapedControl(t *testing.T) {
	_, err := Parse([]byte("\"a\x01b\""))
	assert.Error(t, err)
}

func TestParseArray(t *testing.T) {
	v, err := Parse([]byte(`[1, 2, 3]`))
	require.NoError(t, err)
	elems, err := ArrayCast(v)
	require.NoError(t, err)
	require.Len(t, elems, 3)
	i, _ := Int32Cast(elems[1])
	assert.EqualValues(t, 2, i)
}

func TestParseEmptyArrayAndObject(t *testing.T) {
	v, err := Parse([]byte(`[]`))
	require.NoError(t, err)
	assert.Equal(t, 0, v.Len())

	v, err = Parse([]byte(`{}`))
	require.NoError(t, err)
	members, err := ObjectCast(v)
	require.NoError(t, err)
	assert.Empty(t, members)
}

func TestParseObject(t *testing.T) {
	v, err := Parse([]byte(`{"a": 1, "b": [true, null]}`))
	require.NoError(t, err)
	a, ok := v.Find("a")
	require.True(t, ok)
	i, _ := Int32Cast(a)
	assert.EqualValues(t, 1, i)
}

func TestParseRejectsTrailingComma(t *testing.T) {
	_, err := Parse([]byte(`[1, 2,]`))
	assert.Error(t, err)
}

func TestParseRejectsMultipleTopLevelValues(t *testing.T) {
	_, err := Parse([]byte(`1 2`))
	assert.Error(t, err)
}

func TestParseWhitespaceAroundValue(t *testing.T) {
	v, err := Parse([]byte("  \n 42 \t\n"))
	require.NoError(t, err)
	i, _ := Int32Cast(v)
	assert.EqualValues(t, 42, i)
}

func TestSyntaxErrorReportsLine(t *testing.T) {
	_, err := Parse([]byte("{\n  \"a\": ,\n}"))
	require.Error(t, err)
	var synErr *SyntaxError
	require.ErrorAs(t, err, &synErr)
	assert.Equal(t, 2, synErr.Line)
	assert.Equal(t, "Invalid syntax on line 2.", synErr.Error())
}

func TestParseRejectsExcessiveNesting(t *testing.T) {
	b := make([]byte, 0, MaxNestingDepth*2+8)
	for i := 0; i < MaxNestingDepth+1; i++ {
		b = append(b, '[')
	}
	for i := 0; i < MaxNestingDepth+1; i++ {
		b = append(b, ']')
	}
	_, err := Parse(b)
	assert.Error(t, err)
}

func TestParseUTF8ObjectKeyInterned(t *testing.T) {
	v, err := Parse([]byte(`[{"name": 1}, {"name": 2}]`))
	require.NoError(t, err)
	elems, err := ArrayCast(v)
	require.NoError(t, err)
	m0, err := ObjectCast(elems[0])
	require.NoError(t, err)
	m1, err := ObjectCast(elems[1])
	require.NoError(t, err)
	assert.Equal(t, m0[0].Key, m1[0].Key)
}
