// Copyright 2013 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package giftest builds GIF byte streams for tests. It writes exactly the
// blocks it is asked for, including malformed ones, and compresses pixel
// data with compress/lzw so that fixtures do not depend on the decoder
// under test.
package giftest

import (
	"bytes"
	"compress/lzw"
	"fmt"
	"image/color"
)

// Little-endian.
func writeUint16(b []uint8, u uint16) {
	b[0] = uint8(u)
	b[1] = uint8(u >> 8)
}

// tableBits returns the 3-bit size exponent for a color table of n
// entries and the padded entry count.
func tableBits(n int) (exp byte, size int) {
	size = 2
	for size < n && exp < 7 {
		size <<= 1
		exp++
	}
	return exp, size
}

// Builder accumulates a GIF stream. Write errors cannot happen on a
// bytes.Buffer; err records the first invalid request.
type Builder struct {
	buf bytes.Buffer
	err error
	tmp [16]byte
}

// New starts a stream with the given version ("89a", "87a"), logical
// screen size and optional global color table.
func New(version string, width, height int, global color.Palette) *Builder {
	b := &Builder{}
	b.buf.WriteString("GIF" + version)
	writeUint16(b.tmp[0:2], uint16(width))
	writeUint16(b.tmp[2:4], uint16(height))
	b.tmp[4] = 0x70 // 8 bits of color resolution
	if global != nil {
		exp, _ := tableBits(len(global))
		b.tmp[4] |= 0x80 | exp
	}
	b.tmp[5] = 0 // background color index
	b.tmp[6] = 0 // pixel aspect ratio
	b.buf.Write(b.tmp[:7])
	if global != nil {
		b.colorTable(global)
	}
	return b
}

func (b *Builder) colorTable(p color.Palette) {
	_, size := tableBits(len(p))
	for i := 0; i < size; i++ {
		if i < len(p) {
			r, g, bl, _ := p[i].RGBA()
			b.buf.Write([]byte{uint8(r >> 8), uint8(g >> 8), uint8(bl >> 8)})
		} else {
			// Pad with black.
			b.buf.Write([]byte{0, 0, 0})
		}
	}
}

// Raw appends bytes verbatim.
func (b *Builder) Raw(p ...byte) *Builder {
	b.buf.Write(p)
	return b
}

// GraphicControl appends a Graphic Control Extension. A negative
// transparent index leaves the transparent flag clear.
func (b *Builder) GraphicControl(disposal int, delay uint16, transparent int, userInput bool) *Builder {
	packed := byte(disposal&7) << 2
	if userInput {
		packed |= 0x02
	}
	var ti byte
	if transparent >= 0 {
		packed |= 0x01
		ti = byte(transparent)
	}
	b.tmp[0] = 0x21
	b.tmp[1] = 0xF9
	b.tmp[2] = 0x04
	b.tmp[3] = packed
	writeUint16(b.tmp[4:6], delay)
	b.tmp[6] = ti
	b.tmp[7] = 0x00 // Block Terminator.
	b.buf.Write(b.tmp[:8])
	return b
}

// Extension appends an extension with the given label whose body is the
// given sub-blocks, then the terminator.
func (b *Builder) Extension(label byte, blocks ...[]byte) *Builder {
	b.buf.Write([]byte{0x21, label})
	for _, blk := range blocks {
		if len(blk) == 0 || len(blk) > 255 {
			b.fail(fmt.Errorf("giftest: sub-block length %d", len(blk)))
			return b
		}
		b.buf.WriteByte(byte(len(blk)))
		b.buf.Write(blk)
	}
	b.buf.WriteByte(0x00)
	return b
}

// Comment appends a Comment Extension holding text.
func (b *Builder) Comment(text string) *Builder {
	return b.Extension(0xFE, chunk([]byte(text))...)
}

// LoopCount appends a NETSCAPE2.0 application extension.
func (b *Builder) LoopCount(n uint16) *Builder {
	var data [3]byte
	data[0] = 0x01 // Sub-block Index.
	writeUint16(data[1:3], n)
	return b.Extension(0xFF, []byte("NETSCAPE2.0"), data[:])
}

// Image describes a table-based image.
type Image struct {
	Left, Top     int
	Width, Height int
	Interlaced    bool
	Sorted        bool          // sets the sort flag of the local color table
	Local         color.Palette // written as a local color table when non-nil
	LitWidth      int           // LZW minimum code size, 2 when zero
}

func (b *Builder) descriptor(im Image) {
	b.tmp[0] = 0x2C
	writeUint16(b.tmp[1:3], uint16(im.Left))
	writeUint16(b.tmp[3:5], uint16(im.Top))
	writeUint16(b.tmp[5:7], uint16(im.Width))
	writeUint16(b.tmp[7:9], uint16(im.Height))
	var packed byte
	if im.Local != nil {
		exp, _ := tableBits(len(im.Local))
		packed |= 0x80 | exp
	}
	if im.Interlaced {
		packed |= 0x40
	}
	if im.Sorted {
		packed |= 0x20
	}
	b.tmp[9] = packed
	b.buf.Write(b.tmp[:10])
	if im.Local != nil {
		b.colorTable(im.Local)
	}
}

func (im Image) litWidth() int {
	if im.LitWidth == 0 {
		return 2
	}
	return im.LitWidth
}

// Frame appends an image whose pixels, given in row order, are compressed
// with compress/lzw. Interlaced images are written in pass order.
func (b *Builder) Frame(im Image, pix []uint8) *Builder {
	if len(pix) != im.Width*im.Height {
		b.fail(fmt.Errorf("giftest: %d pixels for a %dx%d image", len(pix), im.Width, im.Height))
		return b
	}
	if im.Interlaced {
		pix = Interlace(pix, im.Width, im.Height)
	}
	var comp bytes.Buffer
	w := lzw.NewWriter(&comp, lzw.LSB, im.litWidth())
	if _, err := w.Write(pix); err != nil {
		b.fail(err)
		return b
	}
	if err := w.Close(); err != nil {
		b.fail(err)
		return b
	}
	return b.RawFrame(im, comp.Bytes())
}

// RawFrame appends an image whose compressed data is given verbatim.
func (b *Builder) RawFrame(im Image, compressed []byte) *Builder {
	b.descriptor(im)
	b.buf.WriteByte(byte(im.litWidth()))
	for _, blk := range chunk(compressed) {
		b.buf.WriteByte(byte(len(blk)))
		b.buf.Write(blk)
	}
	b.buf.WriteByte(0x00) // Block Terminator.
	return b
}

// Trailer appends the trailer byte.
func (b *Builder) Trailer() *Builder {
	b.buf.WriteByte(0x3B)
	return b
}

// Bytes returns the stream built so far. It panics if any request was
// invalid; fixtures are programmer errors, not input.
func (b *Builder) Bytes() []byte {
	if b.err != nil {
		panic(b.err)
	}
	return append([]byte(nil), b.buf.Bytes()...)
}

func (b *Builder) fail(err error) {
	if b.err == nil {
		b.err = err
	}
}

// chunk splits p into sub-blocks of at most 255 bytes.
func chunk(p []byte) [][]byte {
	var out [][]byte
	for len(p) > 0 {
		n := len(p)
		if n > 255 {
			n = 255
		}
		out = append(out, p[:n])
		p = p[n:]
	}
	return out
}
