// Copyright 2011 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gif

import (
	"bytes"
	"errors"
	"image"
	"image/color"
	"testing"
	"time"

	"github.com/xanthousphoenix/gifdecode/internal/giftest"
)

func TestUninterlacePassOrder(t *testing.T) {
	// Row k of the input is the k-th row delivered by the passes.
	in := []uint8{0, 1, 2, 3, 4, 5, 6, 7}
	want := []uint8{0, 4, 2, 5, 1, 6, 3, 7}
	if got := uninterlace(in, 1, 8); !bytes.Equal(got, want) {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestUninterlaceRoundTrip(t *testing.T) {
	for dy := 1; dy <= 20; dy++ {
		const dx = 3
		pix := make([]uint8, dx*dy)
		for y := 0; y < dy; y++ {
			for x := 0; x < dx; x++ {
				pix[y*dx+x] = uint8(y)
			}
		}
		got := uninterlace(giftest.Interlace(pix, dx, dy), dx, dy)
		if !bytes.Equal(got, pix) {
			t.Errorf("height %d: got %v", dy, got)
		}
	}
}

func TestAssembleFrame(t *testing.T) {
	palette := ColorTable{{1, 1, 1}, {2, 2, 2}, {3, 3, 3}, {4, 4, 4}}
	desc := &imageDescriptor{left: 2, top: 1, width: 2, height: 2}
	gc := &GraphicControl{Disposal: DisposalDoNotDispose, Delay: 4, Transparent: true, TransparentIndex: 3}

	f, err := assembleFrame(desc, gc, palette, []uint8{0, 3, 3, 2})
	if err != nil {
		t.Fatal(err)
	}
	if f.Disposal != DisposalDoNotDispose || f.DelayDuration() != 40*time.Millisecond {
		t.Errorf("graphic control not copied: %+v", f)
	}
	want := []Pixel{
		{RGB: RGB{1, 1, 1}},
		{RGB: RGB{4, 4, 4}, Transparent: true},
		{RGB: RGB{4, 4, 4}, Transparent: true},
		{RGB: RGB{3, 3, 3}},
	}
	for i := range want {
		if f.Pixels[i] != want[i] {
			t.Errorf("pixel %d = %+v, want %+v", i, f.Pixels[i], want[i])
		}
	}

	if _, err := assembleFrame(desc, nil, palette[:2], []uint8{0, 1, 2, 1}); !errors.Is(err, ErrBadPixel) {
		t.Errorf("err = %v, want ErrBadPixel", err)
	}
}

func TestTransparentIndexWithoutFlag(t *testing.T) {
	// The index byte is only meaningful when the flag is set.
	gc := &GraphicControl{TransparentIndex: 0}
	f, err := assembleFrame(&imageDescriptor{width: 1, height: 1}, gc, ColorTable{{}, {}}, []uint8{0})
	if err != nil {
		t.Fatal(err)
	}
	if f.Pixels[0].Transparent {
		t.Error("pixel flagged transparent without the transparent flag")
	}
}

func TestFrameImages(t *testing.T) {
	f := &Frame{
		Left: 1, Top: 2, Width: 2, Height: 1,
		Transparent: true, TransparentIndex: 1,
		Indices: []uint8{0, 1},
		Pixels:  []Pixel{{RGB: RGB{10, 20, 30}}, {RGB: RGB{40, 50, 60}, Transparent: true}},
		palette: ColorTable{{10, 20, 30}, {40, 50, 60}},
	}

	p := f.Paletted()
	if p.Bounds() != image.Rect(1, 2, 3, 3) {
		t.Errorf("Paletted bounds = %v", p.Bounds())
	}
	if got := p.At(1, 2); got != (color.RGBA{10, 20, 30, 0xFF}) {
		t.Errorf("Paletted At(1, 2) = %v", got)
	}
	if got := p.At(2, 2); got != (color.RGBA{}) {
		t.Errorf("transparent entry = %v", got)
	}
	if f.palette[1] != (RGB{40, 50, 60}) {
		t.Error("Paletted modified the frame's color table")
	}

	n := f.NRGBA()
	if n.Bounds() != p.Bounds() {
		t.Errorf("NRGBA bounds = %v", n.Bounds())
	}
	if got := n.NRGBAAt(1, 2); got != (color.NRGBA{10, 20, 30, 0xFF}) {
		t.Errorf("NRGBA At(1, 2) = %v", got)
	}
	if got := n.NRGBAAt(2, 2); got.A != 0 {
		t.Errorf("transparent pixel alpha = %d", got.A)
	}
}

func TestColorTablePalette(t *testing.T) {
	var none ColorTable
	if none.Palette() != nil {
		t.Error("nil table converted to a non-nil palette")
	}
	p := ColorTable{{0xAB, 0xCD, 0xEF}}.Palette()
	if len(p) != 1 || p[0] != (color.RGBA{0xAB, 0xCD, 0xEF, 0xFF}) {
		t.Errorf("palette = %v", p)
	}
	if s := (RGB{1, 2, 3}).String(); s != "rgb(1, 2, 3)" {
		t.Errorf("String = %q", s)
	}
}
