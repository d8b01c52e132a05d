// Copyright 2020 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ujson

import "strconv"

// Error matches every error returned by this package according to errors.Is,
// so callers that only care whether a failure originated here can write
// errors.Is(err, ujson.Error) without naming a specific kind.
const Error = codecError("ujson error")

type codecError string

func (e codecError) Error() string        { return string(e) }
func (e codecError) Is(target error) bool { return e == target || target == Error }

// BadCastError is returned by a *Cast function when a Value's tag does not
// match the requested type, or when a numeric cast target cannot represent
// the Value's number (out of range or non-integral).
type BadCastError struct {
	str string
}

func (e *BadCastError) Error() string        { return e.str }
func (e *BadCastError) Is(target error) bool { return e == target || target == Error }

func badCast(wantKind string, got Kind) error {
	return &BadCastError{str: "bad cast: value is not a " + wantKind + ", has kind " + got.String() + "."}
}

func badCastRange(wantType string) error {
	return &BadCastError{str: "bad cast: number is out of range or non-integral for " + wantType + "."}
}

// BadNumberError is returned when constructing a Value from a non-finite
// float64, or when a parsed decimal literal overflows to infinity.
type BadNumberError struct {
	str string
}

func (e *BadNumberError) Error() string        { return e.str }
func (e *BadNumberError) Is(target error) bool { return e == target || target == Error }

func badNumber(reason string) error {
	return &BadNumberError{str: "bad number: " + reason + "."}
}

// BadStringError is returned when a string is not well-formed UTF-8 (and
// validation was requested), or a \u escape sequence is malformed.
type BadStringError struct {
	str string
}

func (e *BadStringError) Error() string        { return e.str }
func (e *BadStringError) Is(target error) bool { return e == target || target == Error }

func badString(reason string) error {
	return &BadStringError{str: "bad string: " + reason + "."}
}

// SyntaxError describes a JSON grammar violation encountered while parsing.
// Line is the 1-based line number at which the offending token begins.
type SyntaxError struct {
	Line int
}

func (e *SyntaxError) Error() string {
	return "Invalid syntax on line " + strconv.Itoa(e.Line) + "."
}
func (e *SyntaxError) Is(target error) bool { return e == target || target == Error }

func syntaxErrorAt(line int) error {
	return &SyntaxError{Line: line}
}

// MaxDepthError is returned by ToString when a Value nests arrays/objects
// deeper than MaxNestingDepth. It is the serialize-side counterpart of
// SyntaxError's parse-time depth guard: a Value built directly through the
// constructors or From never passes through the parser, so it needs its
// own guard to enforce the same bound on the way back out.
type MaxDepthError struct{}

func (e MaxDepthError) Error() string        { return "value nests deeper than the maximum allowed depth." }
func (e MaxDepthError) Is(target error) bool { return e == target || target == Error }

func errMaxDepth() error { return MaxDepthError{} }
