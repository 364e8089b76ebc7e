// Copyright 2011 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gif

import (
	"bytes"

	"github.com/cespare/xxhash/v2"
	lru "github.com/hashicorp/golang-lru/v2"
)

type cacheKey struct {
	sum uint64
	n   int
}

// cacheEntry keeps the input next to its document so that a hash
// collision is detected instead of returning another buffer's document.
type cacheEntry struct {
	buf []byte
	doc *Document
}

// Cache memoizes decoded documents by the content of their input buffer.
// Decoding is deterministic and documents are never modified, so a cached
// document is shared between callers. Entries are found by an xxhash of the
// input and confirmed by comparing the input itself, so each entry holds a
// copy of its buffer. Failed decodes are not cached, and OnExtension is only
// invoked on a miss.
//
// A Cache is safe for concurrent use.
type Cache struct {
	docs *lru.Cache[cacheKey, cacheEntry]
	opts *Options
}

// NewCache returns a cache holding up to size documents decoded with opts.
func NewCache(size int, opts *Options) (*Cache, error) {
	docs, err := lru.New[cacheKey, cacheEntry](size)
	if err != nil {
		return nil, err
	}
	return &Cache{docs: docs, opts: opts}, nil
}

// Decode returns the cached document for buf, decoding it on a miss.
func (c *Cache) Decode(buf []byte) (*Document, error) {
	key := cacheKey{sum: xxhash.Sum64(buf), n: len(buf)}
	if e, ok := c.docs.Get(key); ok && bytes.Equal(e.buf, buf) {
		return e.doc, nil
	}
	doc, err := DecodeBytesWithOptions(buf, c.opts)
	if err != nil {
		return doc, err
	}
	c.docs.Add(key, cacheEntry{buf: append([]byte(nil), buf...), doc: doc})
	return doc, nil
}

// Len returns the number of cached documents.
func (c *Cache) Len() int { return c.docs.Len() }

// Purge drops every cached document.
func (c *Cache) Purge() { c.docs.Purge() }
