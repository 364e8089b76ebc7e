// Copyright 2011 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gif

import (
	"image"
	"image/color"
)

// Palette converts t to an opaque color.Palette.
func (t ColorTable) Palette() color.Palette {
	if t == nil {
		return nil
	}
	p := make(color.Palette, len(t))
	for i, c := range t {
		p[i] = color.RGBA{c.R, c.G, c.B, 0xFF}
	}
	return p
}

// Paletted returns the frame as an image positioned at its logical screen
// offset. When the frame has a transparent index, that palette entry is
// fully transparent.
func (f *Frame) Paletted() *image.Paletted {
	p := f.palette.Palette()
	if f.Transparent && int(f.TransparentIndex) < len(p) {
		p[f.TransparentIndex] = color.RGBA{}
	}
	m := image.NewPaletted(f.Bounds(), p)
	copy(m.Pix, f.Indices)
	return m
}

// NRGBA returns the resolved raster as an image positioned at the frame's
// logical screen offset. Transparent pixels get zero alpha.
func (f *Frame) NRGBA() *image.NRGBA {
	m := image.NewNRGBA(f.Bounds())
	for i, px := range f.Pixels {
		if px.Transparent {
			continue
		}
		j := i * 4
		m.Pix[j+0] = px.R
		m.Pix[j+1] = px.G
		m.Pix[j+2] = px.B
		m.Pix[j+3] = 0xFF
	}
	return m
}
