// Copyright 2011 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gif

const (
	maxWidth           = 12
	maxDictionarySize  = 1 << maxWidth
	minLiteralWidth    = 2
	maxLiteralWidth    = 8
	firstEntryAfterEOI = 1
)

// bitReader yields variable-width codes from a byte stream, least
// significant bit first. A code may straddle a byte boundary.
type bitReader struct {
	data  []byte
	pos   int
	bits  uint32
	nBits uint
}

// byteIndex returns the index of the byte holding the next unread bit.
func (br *bitReader) byteIndex() int {
	return br.pos - int(br.nBits+7)/8
}

func (br *bitReader) readCode(width uint) (uint16, bool) {
	for br.nBits < width {
		if br.pos >= len(br.data) {
			return 0, false
		}
		br.bits |= uint32(br.data[br.pos]) << br.nBits
		br.pos++
		br.nBits += 8
	}
	code := uint16(br.bits & (1<<width - 1))
	br.bits >>= width
	br.nBits -= width
	return code, true
}

// lzwDecoder expands the GIF flavour of LZW: explicit clear and
// end-of-information codes, code width growing from litWidth+1 to 12 bits.
//
// Dictionary entries are stored as (prefix code, suffix byte) pairs, so an
// entry's expansion is recovered by walking the prefix chain backwards.
type lzwDecoder struct {
	br       bitReader
	litWidth uint
	width    uint
	clear    uint16
	eoi      uint16
	hi       uint16 // next free dictionary slot
	last     uint16
	hasLast  bool

	suffix [maxDictionarySize]uint8
	prefix [maxDictionarySize]uint16
	stack  [maxDictionarySize]uint8
}

func newLZWDecoder(data []byte, litWidth int) *lzwDecoder {
	d := &lzwDecoder{
		br:       bitReader{data: data},
		litWidth: uint(litWidth),
		clear:    1 << uint(litWidth),
	}
	d.eoi = d.clear + 1
	d.reset()
	return d
}

func (d *lzwDecoder) reset() {
	d.width = d.litWidth + 1
	d.hi = d.eoi + firstEntryAfterEOI
	d.hasLast = false
}

// expand writes the expansion of code to the tail of d.stack and returns
// it. With kwkwk set, code must be d.last and the result is its expansion
// followed by its own first symbol.
func (d *lzwDecoder) expand(code uint16, kwkwk bool) []uint8 {
	i := len(d.stack)
	if kwkwk {
		i--
	}
	end := i
	c := code
	for c >= d.clear {
		i--
		d.stack[i] = d.suffix[c]
		c = d.prefix[c]
	}
	i--
	d.stack[i] = uint8(c)
	if kwkwk {
		d.stack[end] = d.stack[i]
	}
	return d.stack[i:]
}

// decode fills dst with color indices. It stops at the first
// end-of-information code or once dst is full; trailing bits are ignored
// unless strict is set.
func (d *lzwDecoder) decode(b *blockData, dst []uint8, strict bool) error {
	n := 0
	for n < len(dst) {
		at := d.br.byteIndex()
		code, ok := d.br.readCode(d.width)
		if !ok || code == d.eoi {
			return lzwError(b, at, ErrNotEnough)
		}
		if code == d.clear {
			d.reset()
			continue
		}

		var out []uint8
		switch {
		case !d.hasLast:
			// The first code after a reset must be a literal.
			if code >= d.clear {
				return lzwError(b, at, ErrInvalidCode)
			}
			out = d.expand(code, false)
		case code < d.hi:
			out = d.expand(code, false)
		case code == d.hi:
			out = d.expand(d.last, true)
		default:
			return lzwError(b, at, ErrInvalidCode)
		}
		n += copy(dst[n:], out)

		// A full dictionary stays frozen at 12 bits until the next clear.
		if d.hasLast && d.hi < maxDictionarySize {
			d.prefix[d.hi] = d.last
			d.suffix[d.hi] = out[0]
			d.hi++
			if d.hi == 1<<d.width && d.width < maxWidth {
				d.width++
			}
		}
		d.last = code
		d.hasLast = true
	}

	if strict {
		return d.checkTrailing(b)
	}
	return nil
}

// checkTrailing verifies that nothing but clear codes precede the
// end-of-information code once the raster is complete.
func (d *lzwDecoder) checkTrailing(b *blockData) error {
	for {
		at := d.br.byteIndex()
		code, ok := d.br.readCode(d.width)
		if !ok || code == d.eoi {
			return nil
		}
		if code != d.clear {
			return lzwError(b, at, ErrTooMuch)
		}
		d.reset()
	}
}

func lzwError(b *blockData, i int, reason error) error {
	return &DecodeError{Offset: b.offset(i), Err: reason}
}

// lzwDecode expands the compressed stream of one image into npix color
// indices.
func lzwDecode(b *blockData, litWidth, npix int, strict bool) ([]uint8, error) {
	if litWidth < minLiteralWidth || litWidth > maxLiteralWidth {
		return nil, lzwError(b, 0, ErrBadCodeSize)
	}
	// No code is narrower than litWidth+1 bits or expands to more than
	// maxDictionarySize symbols. Refuse to allocate a raster the stream
	// cannot possibly fill.
	if codes := len(b.data) * 8 / (litWidth + 1); npix > codes*maxDictionarySize {
		return nil, lzwError(b, len(b.data), ErrNotEnough)
	}
	dst := make([]uint8, npix)
	if err := newLZWDecoder(b.data, litWidth).decode(b, dst, strict); err != nil {
		return nil, err
	}
	return dst, nil
}
