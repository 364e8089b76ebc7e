// Copyright 2013 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package giftest

// Code is one LZW code and the width it is written with.
type Code struct {
	Value int
	Width int
}

// PackCodes packs codes least significant bit first, the GIF bit order.
// The final partial byte is zero padded.
func PackCodes(codes ...Code) []byte {
	var (
		out   []byte
		acc   uint32
		nBits uint
	)
	for _, c := range codes {
		acc |= uint32(c.Value&(1<<c.Width-1)) << nBits
		nBits += uint(c.Width)
		for nBits >= 8 {
			out = append(out, byte(acc))
			acc >>= 8
			nBits -= 8
		}
	}
	if nBits > 0 {
		out = append(out, byte(acc))
	}
	return out
}

// Literals returns codes of a single width.
func Literals(width int, values ...int) []Code {
	codes := make([]Code, len(values))
	for i, v := range values {
		codes[i] = Code{Value: v, Width: width}
	}
	return codes
}

// Interlace reorders rows from top to bottom order into the four-pass
// order in which an interlaced GIF stores them.
func Interlace(pix []uint8, dx, dy int) []uint8 {
	out := make([]uint8, 0, len(pix))
	for _, pass := range []struct{ skip, start int }{{8, 0}, {8, 4}, {4, 2}, {2, 1}} {
		for y := pass.start; y < dy; y += pass.skip {
			out = append(out, pix[y*dx:(y+1)*dx]...)
		}
	}
	return out
}
