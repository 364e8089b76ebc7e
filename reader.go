// Copyright 2011 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package gif implements a GIF decoder that turns an in-memory GIF87a or
// GIF89a stream into its frames: color indices, the resolved RGB raster,
// and the timing, disposal and transparency recorded for each frame.
// Frames are not composited.
//
// The GIF specification is at http://www.w3.org/Graphics/GIF/spec-gif89a.txt.
package gif

import (
	"errors"
	"image"
	"io"

	"golang.org/x/sync/errgroup"
)

var errNoFrames = errors.New("gif: no frames")

// decoder is the type used to decode a GIF buffer.
type decoder struct {
	opts *Options
}

// DecodeBytes decodes a complete GIF stream held in buf.
//
// On a *DecodeError the returned Document is non-nil and holds the frames
// decoded before the corrupt one. On any other error it is nil.
func DecodeBytes(buf []byte) (*Document, error) {
	return DecodeBytesWithOptions(buf, nil)
}

// DecodeBytesWithOptions is DecodeBytes with explicit options.
func DecodeBytesWithOptions(buf []byte, opts *Options) (*Document, error) {
	if opts == nil {
		opts = DefaultOptions()
	}
	d := decoder{opts: opts}

	doc, blocks, scanErr := d.scan(newCursor(buf))
	if doc == nil {
		return nil, scanErr
	}
	// Every block precedes the point where scanning failed, so a frame
	// error is the one met first in stream order.
	frames, err := d.decodeFrames(blocks)
	doc.Frames = frames
	if err != nil {
		return doc, err
	}
	if scanErr != nil {
		return nil, scanErr
	}
	return doc, nil
}

// scan walks the block structure of the stream. It returns the document
// header, the table-based images found so far with their graphic control
// snapshots, and the error that stopped the walk, if any. The document is
// nil only when the header itself could not be read.
func (d *decoder) scan(c cursor) (*Document, []*imageBlock, error) {
	h, c, err := readHeader(c)
	if err != nil {
		return nil, nil, err
	}
	doc := &Document{
		Version:         h.version,
		Width:           h.width,
		Height:          h.height,
		ColorResolution: h.colorResolution,
		Sorted:          h.sorted,
		BackgroundIndex: h.backgroundIndex,
		AspectRatio:     h.aspectRatio,
	}
	if h.hasGlobalColorTable {
		doc.GlobalColorTable, c, err = readColorTable(c, h.globalTableLen)
		if err != nil {
			return nil, nil, err
		}
	}

	var (
		blocks  []*imageBlock
		pending *GraphicControl
	)
	for {
		at := c.pos
		b, next, err := c.readByte()
		if err != nil {
			return doc, blocks, err
		}
		switch b {
		case sExtension:
			var gc *GraphicControl
			gc, next, err = readExtension(next, d.opts)
			if err != nil {
				return doc, blocks, err
			}
			if gc != nil {
				pending = gc
			}

		case sImageDescriptor:
			if d.opts.MaxFrames > 0 && len(blocks) >= d.opts.MaxFrames {
				return doc, blocks, formatErrorf(at, "more than %d frames", d.opts.MaxFrames)
			}
			var blk *imageBlock
			blk, next, err = readImageBlock(next, &h, doc.GlobalColorTable, d.opts)
			if err != nil {
				return doc, blocks, err
			}
			blk.index = len(blocks)
			blk.gc, pending = pending, nil
			blocks = append(blocks, blk)

		case sTrailer:
			return doc, blocks, nil

		default:
			return doc, blocks, formatErrorf(at, "unknown block type: 0x%.2x", b)
		}
		c = next
	}
}

// decodeFrames decompresses and assembles every scanned image. On error it
// returns the frames preceding the first failing one.
func (d *decoder) decodeFrames(blocks []*imageBlock) ([]*Frame, error) {
	frames := make([]*Frame, len(blocks))
	if d.opts.Concurrency < 2 || len(blocks) < 2 {
		for i, blk := range blocks {
			f, err := d.decodeFrame(blk)
			if err != nil {
				return frames[:i], err
			}
			frames[i] = f
		}
		return frames, nil
	}

	errs := make([]error, len(blocks))
	var g errgroup.Group
	g.SetLimit(d.opts.Concurrency)
	for i, blk := range blocks {
		i, blk := i, blk
		g.Go(func() error {
			frames[i], errs[i] = d.decodeFrame(blk)
			return nil
		})
	}
	_ = g.Wait()
	for i, err := range errs {
		if err != nil {
			return frames[:i], err
		}
	}
	return frames, nil
}

func (d *decoder) decodeFrame(blk *imageBlock) (*Frame, error) {
	fail := func(offset int, reason error) error {
		return &DecodeError{Offset: offset, Frame: blk.index, Err: reason}
	}

	npix := blk.desc.pixels()
	if d.opts.MaxFramePixels > 0 && npix > d.opts.MaxFramePixels {
		return nil, fail(blk.offset, ErrFrameTooLarge)
	}
	if blk.palette == nil {
		return nil, fail(blk.offset, ErrNoColorTable)
	}
	if blk.litWidth < minLiteralWidth || blk.litWidth > maxLiteralWidth {
		return nil, fail(blk.litAt, ErrBadCodeSize)
	}

	indices, err := lzwDecode(blk.data, blk.litWidth, npix, d.opts.Strict)
	if err != nil {
		var de *DecodeError
		if errors.As(err, &de) {
			de.Frame = blk.index
		}
		return nil, err
	}

	f, err := assembleFrame(&blk.desc, blk.gc, blk.palette, indices)
	if err != nil {
		return nil, fail(blk.litAt, err)
	}
	return f, nil
}

// DecodeAll reads a GIF stream from r and decodes every frame.
func DecodeAll(r io.Reader) (*Document, error) {
	buf, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	return DecodeBytes(buf)
}

// Decode reads a GIF image from r and returns the first embedded
// image as an image.Image.
func Decode(r io.Reader) (image.Image, error) {
	doc, err := DecodeAll(r)
	if err != nil {
		return nil, err
	}
	if len(doc.Frames) == 0 {
		return nil, errNoFrames
	}
	return doc.Frames[0].Paletted(), nil
}

// DecodeConfig returns the global color model and dimensions of a GIF image
// without decoding the entire image.
func DecodeConfig(r io.Reader) (image.Config, error) {
	buf := make([]byte, headerSize, headerSize+3*256)
	if _, err := io.ReadFull(r, buf); err != nil {
		return image.Config{}, err
	}
	h, _, err := readHeader(newCursor(buf))
	if err != nil {
		return image.Config{}, err
	}
	var global ColorTable
	if h.hasGlobalColorTable {
		buf = buf[:headerSize+3*h.globalTableLen]
		if _, err := io.ReadFull(r, buf[headerSize:]); err != nil {
			return image.Config{}, err
		}
		c := cursor{buf: buf, pos: headerSize}
		if global, _, err = readColorTable(c, h.globalTableLen); err != nil {
			return image.Config{}, err
		}
	}
	return image.Config{
		ColorModel: global.Palette(),
		Width:      h.width,
		Height:     h.height,
	}, nil
}

func init() {
	image.RegisterFormat("gif", "GIF8?a", Decode, DecodeConfig)
}
