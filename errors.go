// Copyright 2011 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gif

import (
	"errors"
	"fmt"
)

// Reasons wrapped by DecodeError.
var (
	ErrNotEnough     = errors.New("gif: not enough image data")
	ErrTooMuch       = errors.New("gif: too much image data")
	ErrBadPixel      = errors.New("gif: invalid pixel value")
	ErrInvalidCode   = errors.New("gif: invalid LZW code")
	ErrNoColorTable  = errors.New("gif: no color table")
	ErrBadCodeSize   = errors.New("gif: LZW minimum code size out of range")
	ErrFrameTooLarge = errors.New("gif: frame exceeds pixel budget")
)

// A FormatError reports that the input is not a well-formed GIF stream:
// a bad signature, an unknown block, or a malformed fixed-size block.
type FormatError struct {
	Offset int
	Msg    string
}

func (e *FormatError) Error() string {
	return fmt.Sprintf("gif: %s at offset %d", e.Msg, e.Offset)
}

// A TruncatedBufferError reports a read past the end of the input.
// Need is the number of bytes the read wanted, Have how many remained.
type TruncatedBufferError struct {
	Offset int
	Need   int
	Have   int
}

func (e *TruncatedBufferError) Error() string {
	return fmt.Sprintf("gif: truncated buffer at offset %d: need %d bytes, have %d", e.Offset, e.Need, e.Have)
}

// A DecodeError reports corrupt image data in one frame. Frame is the
// zero-based index of the offending frame and Err one of the Err* reasons
// declared in this package.
type DecodeError struct {
	Offset int
	Frame  int
	Err    error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("%v (frame %d, offset %d)", e.Err, e.Frame, e.Offset)
}

func (e *DecodeError) Unwrap() error { return e.Err }

// An ExtensionError reports that Options.OnExtension rejected an
// extension block. Offset is the offset of its extension introducer.
type ExtensionError struct {
	Offset int
	Label  byte
	Err    error
}

func (e *ExtensionError) Error() string {
	return fmt.Sprintf("gif: extension 0x%.2x at offset %d: %v", e.Label, e.Offset, e.Err)
}

func (e *ExtensionError) Unwrap() error { return e.Err }

func formatErrorf(offset int, format string, args ...interface{}) error {
	return &FormatError{Offset: offset, Msg: fmt.Sprintf(format, args...)}
}
