// Copyright 2020 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ujson

import "github.com/awkristensen/ujson/internal/strcodec"

// Encoding selects how non-ASCII string content is emitted by ToString.
type Encoding int

const (
	// UTF8 emits non-ASCII codepoints as raw UTF-8 bytes.
	UTF8 Encoding = iota
	// ASCII escapes every codepoint above U+007E as a \uXXXX sequence,
	// using a surrogate pair for codepoints above U+FFFF.
	ASCII
)

func (e Encoding) toWire() strcodec.Encoding {
	if e == ASCII {
		return strcodec.ASCII
	}
	return strcodec.UTF8
}

// Options controls ToString's output formatting.
type Options struct {
	// IndentAmount is the number of spaces used per nesting level. Zero
	// (the default Options value) produces the most compact representation,
	// with no inserted whitespace at all.
	IndentAmount int
	// Encoding selects the string escaping mode. The default, UTF8, passes
	// non-ASCII bytes through unescaped.
	Encoding Encoding
}

// Compact is the zero-value Options: no indentation, UTF-8 output.
var Compact = Options{}

// IndentedUTF8 is a convenience bundle matching the original library's
// default "pretty" preset: four-space indentation, UTF-8 output.
var IndentedUTF8 = Options{IndentAmount: 4, Encoding: UTF8}

// IndentedASCII is like IndentedUTF8 but escapes non-ASCII content.
var IndentedASCII = Options{IndentAmount: 4, Encoding: ASCII}
