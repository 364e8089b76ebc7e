// Copyright 2011 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gif

import (
	"fmt"
	"image"
	"time"
)

// RGB is one color table entry.
type RGB struct {
	R, G, B uint8
}

func (c RGB) String() string {
	return fmt.Sprintf("rgb(%d, %d, %d)", c.R, c.G, c.B)
}

// ColorTable is a global or local color table. Its length is always a
// power of two between 2 and 256.
type ColorTable []RGB

// Len returns the number of entries in t.
func (t ColorTable) Len() int { return len(t) }

// Pixel is a resolved raster entry. Transparent pixels keep the color of
// their table entry; how to composite them is up to the caller.
type Pixel struct {
	RGB
	Transparent bool
}

// DisposalMethod says what a renderer should do with a frame's area before
// drawing the next frame. The decoder only records it.
type DisposalMethod uint8

const (
	DisposalNone              DisposalMethod = 0 // no disposal specified
	DisposalDoNotDispose      DisposalMethod = 1 // leave the frame in place
	DisposalRestoreBackground DisposalMethod = 2 // clear to the background color
	DisposalRestorePrevious   DisposalMethod = 3 // restore what was there before
)

func (d DisposalMethod) String() string {
	switch d {
	case DisposalNone:
		return "None"
	case DisposalDoNotDispose:
		return "DoNotDispose"
	case DisposalRestoreBackground:
		return "RestoreBackground"
	case DisposalRestorePrevious:
		return "RestorePrevious"
	}
	return fmt.Sprintf("DisposalMethod(%d)", uint8(d))
}

// GraphicControl holds the fields of a Graphic Control Extension. It applies
// to the next image descriptor in the stream.
type GraphicControl struct {
	Disposal         DisposalMethod
	UserInput        bool
	Transparent      bool
	Delay            uint16 // hundredths of a second
	TransparentIndex uint8
}

// Frame is one decoded image of a GIF stream. Frames are not composited:
// Indices and Pixels cover only the frame's own rectangle.
type Frame struct {
	// Image Descriptor
	Left, Top     int
	Width, Height int
	Interlaced    bool

	// LocalColorTable is nil when the frame uses the global table.
	// Sorted reports that its entries are ordered by decreasing importance.
	LocalColorTable ColorTable
	Sorted          bool

	// Graphic Control Extension, zero when none preceded the frame.
	Disposal         DisposalMethod
	Delay            uint16
	UserInput        bool
	Transparent      bool
	TransparentIndex uint8

	// Indices holds Width*Height color table indices in row order, with
	// interlacing already undone. Pixels is the same raster resolved
	// through the active color table.
	Indices []uint8
	Pixels  []Pixel

	palette ColorTable
}

// Palette returns the color table the frame was resolved through.
func (f *Frame) Palette() ColorTable { return f.palette }

// Bounds returns the frame rectangle in logical screen coordinates.
func (f *Frame) Bounds() image.Rectangle {
	return image.Rect(f.Left, f.Top, f.Left+f.Width, f.Top+f.Height)
}

// DelayDuration converts Delay to a time.Duration.
func (f *Frame) DelayDuration() time.Duration {
	return time.Duration(f.Delay) * 10 * time.Millisecond
}

// IndexAt returns the color index at (x, y) relative to the frame origin.
func (f *Frame) IndexAt(x, y int) uint8 {
	return f.Indices[y*f.Width+x]
}

// PixelAt returns the resolved pixel at (x, y) relative to the frame origin.
func (f *Frame) PixelAt(x, y int) Pixel {
	return f.Pixels[y*f.Width+x]
}

// Document is a fully decoded GIF stream. It is not modified after the
// decode call that produced it returns.
type Document struct {
	// Header block
	Version string // "87a" or "89a" for well-formed files

	// Logical Screen Descriptor block
	Width           int
	Height          int
	ColorResolution int // in the range [1, 8]
	Sorted          bool
	BackgroundIndex uint8
	AspectRatio     uint8

	// GlobalColorTable is nil when the stream has none.
	GlobalColorTable ColorTable

	Frames []*Frame
}
