// Copyright 2011 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gif

// cursor is a bounds-checked position in an immutable buffer. Reads return
// the value together with the advanced cursor; the receiver is never
// modified, so a parse step that fails leaves the caller's position intact.
type cursor struct {
	buf []byte
	pos int
}

func newCursor(buf []byte) cursor {
	return cursor{buf: buf}
}

func (c cursor) remaining() int {
	return len(c.buf) - c.pos
}

func (c cursor) truncated(need int) error {
	return &TruncatedBufferError{Offset: c.pos, Need: need, Have: c.remaining()}
}

func (c cursor) readByte() (byte, cursor, error) {
	if c.remaining() < 1 {
		return 0, c, c.truncated(1)
	}
	b := c.buf[c.pos]
	c.pos++
	return b, c, nil
}

// Little-endian.
func (c cursor) readUint16() (uint16, cursor, error) {
	if c.remaining() < 2 {
		return 0, c, c.truncated(2)
	}
	u := uint16(c.buf[c.pos]) | uint16(c.buf[c.pos+1])<<8
	c.pos += 2
	return u, c, nil
}

// readN returns the next n bytes without copying them. The slice aliases
// the input buffer and must not be modified.
func (c cursor) readN(n int) ([]byte, cursor, error) {
	if n < 0 || c.remaining() < n {
		return nil, c, c.truncated(n)
	}
	p := c.buf[c.pos : c.pos+n : c.pos+n]
	c.pos += n
	return p, c, nil
}

func (c cursor) skip(n int) (cursor, error) {
	_, c, err := c.readN(n)
	return c, err
}
