// Copyright 2011 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gif

// readColorTable reads n consecutive RGB triples.
func readColorTable(c cursor, n int) (ColorTable, cursor, error) {
	p, c, err := c.readN(3 * n)
	if err != nil {
		return nil, c, err
	}
	t := make(ColorTable, n)
	j := 0
	for i := range t {
		t[i] = RGB{p[j+0], p[j+1], p[j+2]}
		j += 3
	}
	return t, c, nil
}
