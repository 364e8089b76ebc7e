// Copyright 2011 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gif

import (
	"fmt"

	"golang.org/x/text/encoding/charmap"
)

// Section indicators.
const (
	sExtension       = 0x21
	sImageDescriptor = 0x2C
	sTrailer         = 0x3B
)

// Extensions.
const (
	eText           = 0x01 // Plain Text
	eGraphicControl = 0xF9 // Graphic Control
	eComment        = 0xFE // Comment
	eApplication    = 0xFF // Application
)

const gcBlockSize = 4

// Extension is a non-graphic-control extension block as delivered to
// Options.OnExtension. Data is the concatenated sub-block payload; Blocks
// holds the individual sub-blocks and aliases Data.
type Extension struct {
	Label  byte
	Offset int // offset of the extension introducer
	Data   []byte
	Blocks [][]byte
}

// Comment returns the text of a Comment Extension. GIF comments are
// meant to be 7-bit ASCII; bytes above 0x7F are read as ISO-8859-1.
func (e Extension) Comment() (string, bool) {
	if e.Label != eComment {
		return "", false
	}
	s, err := charmap.ISO8859_1.NewDecoder().Bytes(e.Data)
	if err != nil {
		return "", false
	}
	return string(s), true
}

// Application splits an Application Extension into its 8-byte identifier,
// its authentication code and the remaining application data. GIF89a
// requires an 11 byte first block, but Adobe sometimes writes 10.
func (e Extension) Application() (id, auth string, data []byte, ok bool) {
	if e.Label != eApplication || len(e.Blocks) == 0 || len(e.Blocks[0]) < 8 {
		return "", "", nil, false
	}
	first := e.Blocks[0]
	return string(first[:8]), string(first[8:]), e.Data[len(first):], true
}

// LoopCount reports the animation loop count carried by a NETSCAPE2.0 or
// ANIMEXTS1.0 application extension. Zero means loop forever.
func (e Extension) LoopCount() (int, bool) {
	id, auth, _, ok := e.Application()
	if !ok || len(e.Blocks) < 2 {
		return 0, false
	}
	if app := id + auth; app != "NETSCAPE2.0" && app != "ANIMEXTS1.0" {
		return 0, false
	}
	b := e.Blocks[1]
	if len(b) != 3 || b[0] != 1 {
		return 0, false
	}
	return int(b[1]) | int(b[2])<<8, true
}

func (e Extension) String() string {
	switch e.Label {
	case eText:
		return fmt.Sprintf("plain text extension (%d bytes)", len(e.Data))
	case eComment:
		return fmt.Sprintf("comment extension (%d bytes)", len(e.Data))
	case eApplication:
		if id, auth, data, ok := e.Application(); ok {
			return fmt.Sprintf("application extension %q (%d bytes)", id+auth, len(data))
		}
	}
	return fmt.Sprintf("extension 0x%.2x (%d bytes)", e.Label, len(e.Data))
}

// readExtension parses an extension block. c is positioned just after the
// extension introducer. A non-nil GraphicControl is returned for a Graphic
// Control Extension; every other label is skipped, or handed to the
// OnExtension hook when one is set.
func readExtension(c cursor, opts *Options) (*GraphicControl, cursor, error) {
	introducer := c.pos - 1
	label, c, err := c.readByte()
	if err != nil {
		return nil, c, err
	}
	if label == eGraphicControl {
		return readGraphicControl(c)
	}

	if opts.OnExtension == nil {
		c, err = skipSubBlocks(c)
		return nil, c, err
	}
	b, c, err := readSubBlocks(c, opts.MaxBlockBytes)
	if err != nil {
		return nil, c, err
	}
	ext := Extension{
		Label:  label,
		Offset: introducer,
		Data:   b.data,
		Blocks: b.blocks(),
	}
	if err := opts.OnExtension(ext); err != nil {
		return nil, c, &ExtensionError{Offset: introducer, Label: label, Err: err}
	}
	return nil, c, nil
}

func readGraphicControl(c cursor) (*GraphicControl, cursor, error) {
	at := c.pos
	size, c, err := c.readByte()
	if err != nil {
		return nil, c, err
	}
	if size != gcBlockSize {
		return nil, c, formatErrorf(at, "invalid graphic control extension block size: %d", size)
	}
	p, c, err := c.readN(gcBlockSize)
	if err != nil {
		return nil, c, err
	}
	gc := &GraphicControl{
		Disposal:    DisposalMethod(p[0]&gcDisposalMethodMask) >> 2,
		UserInput:   p[0]&gcUserInputSet != 0,
		Transparent: p[0]&gcTransparentColorSet != 0,
		Delay:       uint16(p[1]) | uint16(p[2])<<8,
	}
	if gc.Transparent {
		gc.TransparentIndex = p[3]
	}
	// The terminator should follow immediately. Consume it as a chain so
	// that encoders padding the block with extra sub-blocks still parse.
	c, err = skipSubBlocks(c)
	if err != nil {
		return nil, c, err
	}
	return gc, c, nil
}
