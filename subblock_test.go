// Copyright 2011 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gif

import (
	"bytes"
	"errors"
	"testing"
)

func TestReadSubBlocks(t *testing.T) {
	buf := []byte{0xAA, 2, 'a', 'b', 1, 'c', 0, 0xBB}
	c := cursor{buf: buf, pos: 1}
	b, c, err := readSubBlocks(c, 0)
	if err != nil {
		t.Fatal(err)
	}
	if string(b.data) != "abc" {
		t.Errorf("data = %q, want %q", b.data, "abc")
	}
	if c.pos != 7 || b.term != 6 {
		t.Errorf("pos = %d, term = %d; want 7, 6", c.pos, b.term)
	}
	for i, want := range []int{2, 3, 5, 6} {
		if got := b.offset(i); got != want {
			t.Errorf("offset(%d) = %d, want %d", i, got, want)
		}
	}
	blocks := b.blocks()
	if len(blocks) != 2 || string(blocks[0]) != "ab" || string(blocks[1]) != "c" {
		t.Errorf("blocks = %q", blocks)
	}
}

func TestReadSubBlocksEmptyChain(t *testing.T) {
	b, c, err := readSubBlocks(newCursor([]byte{0}), 0)
	if err != nil {
		t.Fatal(err)
	}
	if len(b.data) != 0 || c.pos != 1 {
		t.Errorf("data = %q, pos = %d", b.data, c.pos)
	}
	if got := b.offset(0); got != 0 {
		t.Errorf("offset(0) = %d, want 0", got)
	}
}

func TestReadSubBlocksErrors(t *testing.T) {
	tests := []struct {
		name   string
		buf    []byte
		max    int
		offset int
		format bool
	}{
		{"missing terminator", []byte{2, 'a', 'b'}, 0, 3, false},
		{"short payload", []byte{4, 'a', 'b'}, 0, 1, false},
		{"empty input", nil, 0, 0, false},
		{"over budget", []byte{2, 'a', 'b', 2, 'c', 'd', 0}, 3, 0, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := readSubBlocks(newCursor(tt.buf), tt.max)
			if tt.format {
				var fe *FormatError
				if !errors.As(err, &fe) || fe.Offset != tt.offset {
					t.Fatalf("err = %v, want FormatError at %d", err, tt.offset)
				}
				return
			}
			var te *TruncatedBufferError
			if !errors.As(err, &te) || te.Offset != tt.offset {
				t.Fatalf("err = %v, want TruncatedBufferError at %d", err, tt.offset)
			}
		})
	}
}

func TestSkipSubBlocks(t *testing.T) {
	buf := []byte{3, 1, 2, 3, 255}
	buf = append(buf, bytes.Repeat([]byte{9}, 255)...)
	buf = append(buf, 0, 0x3B)
	c, err := skipSubBlocks(newCursor(buf))
	if err != nil {
		t.Fatal(err)
	}
	if c.pos != len(buf)-1 {
		t.Errorf("pos = %d, want %d", c.pos, len(buf)-1)
	}

	if _, err := skipSubBlocks(newCursor([]byte{5, 1})); err == nil {
		t.Error("expected error for a truncated chain")
	}
}
