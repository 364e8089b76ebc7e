// Copyright 2011 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gif

import "sort"

// blockData is the concatenated payload of a sub-block chain, which
// comprises (n, (n bytes)) blocks with 1 <= n <= 255 followed by a zero
// length block. The compressed image bit stream ignores the blocking, but
// segs remembers where each payload came from so that errors found while
// decoding the stream can be reported at a buffer offset.
type blockData struct {
	data []byte
	segs []segment
	term int // offset of the zero length terminator
}

type segment struct {
	at  int // index in data
	off int // offset in the input buffer
}

// offset maps an index into data back to the input buffer. Indices past
// the payload map to the terminator.
func (b *blockData) offset(i int) int {
	if len(b.segs) == 0 || i >= len(b.data) {
		return b.term
	}
	k := sort.Search(len(b.segs), func(k int) bool { return b.segs[k].at > i }) - 1
	return b.segs[k].off + (i - b.segs[k].at)
}

// blocks splits data back into its sub-blocks.
func (b *blockData) blocks() [][]byte {
	out := make([][]byte, len(b.segs))
	for i, s := range b.segs {
		end := len(b.data)
		if i+1 < len(b.segs) {
			end = b.segs[i+1].at
		}
		out[i] = b.data[s.at:end:end]
	}
	return out
}

// readSubBlocks reads a sub-block chain up to and including its terminator.
// max bounds the concatenated payload; zero means no bound.
func readSubBlocks(c cursor, max int) (*blockData, cursor, error) {
	start := c.pos
	b := &blockData{}
	for {
		n, next, err := c.readByte()
		if err != nil {
			return nil, c, err
		}
		if n == 0 {
			b.term = c.pos
			return b, next, nil
		}
		if max > 0 && len(b.data)+int(n) > max {
			return nil, c, formatErrorf(start, "sub-block chain exceeds %d bytes", max)
		}
		p, next, err := next.readN(int(n))
		if err != nil {
			return nil, c, err
		}
		b.segs = append(b.segs, segment{at: len(b.data), off: c.pos + 1})
		b.data = append(b.data, p...)
		c = next
	}
}

// skipSubBlocks advances past a sub-block chain without keeping its payload.
func skipSubBlocks(c cursor) (cursor, error) {
	for {
		n, next, err := c.readByte()
		if err != nil {
			return c, err
		}
		if n == 0 {
			return next, nil
		}
		if next, err = next.skip(int(n)); err != nil {
			return c, err
		}
		c = next
	}
}
