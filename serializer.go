// Copyright 2020 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ujson

import (
	"github.com/awkristensen/ujson/internal/numcodec"
	"github.com/awkristensen/ujson/internal/strcodec"
)

// ToString serializes v into a freshly allocated byte slice, honoring opts.
// Strings and object keys are re-validated as well-formed UTF-8 at this
// point (not just at Value construction time), so a Value built via
// StringUnchecked with ill-formed content fails here with *BadStringError
// rather than producing corrupt output.
func ToString(v Value, opts Options) ([]byte, error) {
	pb := getBuffer()
	defer putBuffer(pb)

	e := &encoder{opts: opts, enc: opts.Encoding.toWire()}
	buf, err := e.appendValue(*pb, v, 0)
	if err != nil {
		return nil, err
	}
	*pb = buf
	out := make([]byte, len(buf))
	copy(out, buf)
	return out, nil
}

type encoder struct {
	opts  Options
	enc   strcodec.Encoding
	guard nestingGuard
}

func (e *encoder) appendValue(dst []byte, v Value, depth int) ([]byte, error) {
	switch v.kind {
	case KindNull:
		return append(dst, "null"...), nil
	case KindBool:
		if v.b {
			return append(dst, "true"...), nil
		}
		return append(dst, "false"...), nil
	case KindNumber:
		return numcodec.Format(dst, v.n), nil
	case KindString:
		return e.appendString(dst, v.s)
	case KindArray:
		return e.appendArray(dst, v.arr.elems, depth)
	case KindObject:
		return e.appendObject(dst, v.obj.members, depth)
	default:
		return dst, badCast("a recognized value kind", v.kind)
	}
}

func (e *encoder) appendString(dst []byte, s string) ([]byte, error) {
	out, err := strcodec.AppendQuoted(dst, s, e.enc)
	if err != nil {
		return dst, badString("not well-formed UTF-8")
	}
	return out, nil
}

func (e *encoder) appendArray(dst []byte, elems []Value, depth int) ([]byte, error) {
	if !e.guard.enter() {
		return dst, errMaxDepth()
	}
	defer e.guard.leave()

	dst = append(dst, '[')
	if len(elems) == 0 {
		return append(dst, ']'), nil
	}
	for i, el := range elems {
		if i > 0 {
			dst = append(dst, ',')
		}
		dst = e.newlineIndent(dst, depth+1)
		var err error
		dst, err = e.appendValue(dst, el, depth+1)
		if err != nil {
			return dst, err
		}
	}
	dst = e.newlineIndent(dst, depth)
	return append(dst, ']'), nil
}

func (e *encoder) appendObject(dst []byte, members []Member, depth int) ([]byte, error) {
	if !e.guard.enter() {
		return dst, errMaxDepth()
	}
	defer e.guard.leave()

	dst = append(dst, '{')
	if len(members) == 0 {
		return append(dst, '}'), nil
	}
	for i, m := range members {
		if i > 0 {
			dst = append(dst, ',')
		}
		dst = e.newlineIndent(dst, depth+1)
		var err error
		dst, err = e.appendString(dst, m.Key)
		if err != nil {
			return dst, err
		}
		dst = append(dst, ':')
		if e.opts.IndentAmount > 0 {
			dst = append(dst, ' ')
		}
		dst, err = e.appendValue(dst, m.Value, depth+1)
		if err != nil {
			return dst, err
		}
	}
	dst = e.newlineIndent(dst, depth)
	return append(dst, '}'), nil
}

func (e *encoder) newlineIndent(dst []byte, depth int) []byte {
	if e.opts.IndentAmount <= 0 {
		return dst
	}
	dst = append(dst, '\n')
	for i := 0; i < depth*e.opts.IndentAmount; i++ {
		dst = append(dst, ' ')
	}
	return dst
}
