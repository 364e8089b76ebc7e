// Copyright 2011 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gif

// Options configures DecodeBytesWithOptions. A nil *Options is the same as
// DefaultOptions().
type Options struct {
	// Strict rejects streams that the decoder can otherwise read: frames
	// that do not fit in the logical screen, and compressed data that
	// continues after a frame's raster is complete.
	Strict bool

	// Concurrency is the number of frames decompressed in parallel once
	// the block structure has been scanned. Values below 2 decode frames
	// one after another.
	Concurrency int

	// MaxBlockBytes bounds the payload of a single sub-block chain.
	// Zero means no bound.
	MaxBlockBytes int

	// MaxFramePixels bounds width*height of a single frame. Zero means no
	// bound.
	MaxFramePixels int

	// MaxFrames bounds the number of image descriptors in a stream. Zero
	// means no bound.
	MaxFrames int

	// OnExtension, if set, receives every extension other than the
	// Graphic Control Extension. Returning an error aborts decoding with
	// an *ExtensionError wrapping it.
	// Without it those extensions are skipped.
	OnExtension func(Extension) error
}

// DefaultOptions returns options for default behavior: lenient parsing,
// sequential frame decoding and no budgets beyond the input's own bounds.
func DefaultOptions() *Options {
	return &Options{
		Strict:      false,
		Concurrency: 1,
	}
}
