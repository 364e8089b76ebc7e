// Copyright 2011 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gif

const descriptorSize = 9

// imageDescriptor is an Image Descriptor block with its optional local
// color table.
type imageDescriptor struct {
	left, top     int
	width, height int
	interlaced    bool
	sorted        bool

	localColorTable ColorTable
}

func (d *imageDescriptor) pixels() int {
	return d.width * d.height
}

// imageBlock is one table-based image lifted out of the stream: everything
// needed to decode the frame without touching the input again.
type imageBlock struct {
	index    int
	offset   int // offset of the image separator
	desc     imageDescriptor
	gc       *GraphicControl
	palette  ColorTable
	litWidth int
	litAt    int // offset of the LZW minimum code size byte
	data     *blockData
}

// readImageDescriptor parses the descriptor fields and the local color
// table. c is positioned just after the image separator.
func readImageDescriptor(c cursor) (imageDescriptor, cursor, error) {
	p, c, err := c.readN(descriptorSize)
	if err != nil {
		return imageDescriptor{}, c, err
	}
	d := imageDescriptor{
		left:       int(p[0]) | int(p[1])<<8,
		top:        int(p[2]) | int(p[3])<<8,
		width:      int(p[4]) | int(p[5])<<8,
		height:     int(p[6]) | int(p[7])<<8,
		interlaced: p[8]&ifInterlace != 0,
		sorted:     p[8]&ifSorted != 0,
	}
	if p[8]&ifLocalColorTable != 0 {
		d.localColorTable, c, err = readColorTable(c, colorTableLen(p[8]&ifColorTableMask))
		if err != nil {
			return imageDescriptor{}, c, err
		}
	}
	return d, c, nil
}

// readImageBlock parses a whole table-based image: descriptor, local color
// table, LZW minimum code size and the compressed sub-block chain. The
// pixel data is left compressed.
func readImageBlock(c cursor, h *header, global ColorTable, opts *Options) (*imageBlock, cursor, error) {
	blk := &imageBlock{offset: c.pos - 1}
	desc, c, err := readImageDescriptor(c)
	if err != nil {
		return nil, c, err
	}
	blk.desc = desc

	// The GIF89a spec, Section 20 (Image Descriptor) says:
	// "Each image must fit within the boundaries of the Logical
	// Screen, as defined in the Logical Screen Descriptor."
	if opts.Strict && (desc.left+desc.width > h.width || desc.top+desc.height > h.height) {
		return nil, c, formatErrorf(blk.offset, "frame bounds larger than image bounds")
	}

	blk.palette = global
	if desc.localColorTable != nil {
		blk.palette = desc.localColorTable
	}

	blk.litAt = c.pos
	lit, c, err := c.readByte()
	if err != nil {
		return nil, c, err
	}
	blk.litWidth = int(lit)

	blk.data, c, err = readSubBlocks(c, opts.MaxBlockBytes)
	if err != nil {
		return nil, c, err
	}
	return blk, c, nil
}
