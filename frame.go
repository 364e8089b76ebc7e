// Copyright 2011 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gif

// interlaceScan defines the ordering for a pass of the interlace algorithm.
type interlaceScan struct {
	skip, start int
}

// interlacing represents the set of scans in an interlaced GIF image.
var interlacing = []interlaceScan{
	{8, 0}, // Group 1 : Every 8th. row, starting with row 0.
	{8, 4}, // Group 2 : Every 8th. row, starting with row 4.
	{4, 2}, // Group 3 : Every 4th. row, starting with row 2.
	{2, 1}, // Group 4 : Every 2nd. row, starting with row 1.
}

// uninterlace returns the rows of pix, delivered in interlace pass order,
// rearranged into top to bottom order.
func uninterlace(pix []uint8, dx, dy int) []uint8 {
	if dx == 0 || dy == 0 {
		return pix
	}
	nPix := make([]uint8, dx*dy)
	offset := 0 // steps through the input by sequential scan lines.
	for _, pass := range interlacing {
		nOffset := pass.start * dx // steps through the output as defined by pass.
		for y := pass.start; y < dy; y += pass.skip {
			copy(nPix[nOffset:nOffset+dx], pix[offset:offset+dx])
			offset += dx
			nOffset += dx * pass.skip
		}
	}
	return nPix
}

// assembleFrame resolves decoded indices through the active color table
// and attaches the graphic control pending for this image.
func assembleFrame(desc *imageDescriptor, gc *GraphicControl, palette ColorTable, indices []uint8) (*Frame, error) {
	f := &Frame{
		Left:            desc.left,
		Top:             desc.top,
		Width:           desc.width,
		Height:          desc.height,
		Interlaced:      desc.interlaced,
		LocalColorTable: desc.localColorTable,
		Sorted:          desc.sorted,
		palette:         palette,
	}
	if gc != nil {
		f.Disposal = gc.Disposal
		f.Delay = gc.Delay
		f.UserInput = gc.UserInput
		f.Transparent = gc.Transparent
		f.TransparentIndex = gc.TransparentIndex
	}

	if desc.interlaced {
		indices = uninterlace(indices, desc.width, desc.height)
	}
	f.Indices = indices

	f.Pixels = make([]Pixel, len(indices))
	for i, ci := range indices {
		if int(ci) >= len(palette) {
			return nil, ErrBadPixel
		}
		f.Pixels[i] = Pixel{
			RGB:         palette[ci],
			Transparent: f.Transparent && ci == f.TransparentIndex,
		}
	}
	return f, nil
}
