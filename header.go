// Copyright 2011 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gif

const headerSize = 13

// Masks etc.
const (
	// Fields.
	fColorTable         = 1 << 7
	fColorResolution    = 7 << 4
	fSorted             = 1 << 3
	fColorTableBitsMask = 7

	// Image fields.
	ifLocalColorTable = 1 << 7
	ifInterlace       = 1 << 6
	ifSorted          = 1 << 5
	ifColorTableMask  = 7

	// Graphic control flags.
	gcTransparentColorSet = 1 << 0
	gcUserInputSet        = 1 << 1
	gcDisposalMethodMask  = 7 << 2
)

// header is the Header block plus the Logical Screen Descriptor.
type header struct {
	version             string
	width, height       int
	hasGlobalColorTable bool
	colorResolution     int
	sorted              bool
	globalTableLen      int
	backgroundIndex     uint8
	aspectRatio         uint8
}

// colorTableLen converts the 3-bit size exponent of a packed field to a
// number of entries.
func colorTableLen(packed byte) int {
	return 1 << (int(packed&fColorTableBitsMask) + 1)
}

func readHeader(c cursor) (header, cursor, error) {
	start := c
	p, c, err := c.readN(headerSize)
	if err != nil {
		return header{}, start, err
	}
	if string(p[0:3]) != "GIF" {
		return header{}, start, formatErrorf(start.pos, "can't recognize signature %q", p[0:3])
	}
	h := header{
		version:             string(p[3:6]),
		width:               int(p[6]) | int(p[7])<<8,
		height:              int(p[8]) | int(p[9])<<8,
		hasGlobalColorTable: p[10]&fColorTable != 0,
		colorResolution:     int(p[10]&fColorResolution)>>4 + 1,
		sorted:              p[10]&fSorted != 0,
		globalTableLen:      colorTableLen(p[10]),
		backgroundIndex:     p[11],
		aspectRatio:         p[12],
	}
	return h, c, nil
}
