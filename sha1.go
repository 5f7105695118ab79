// Copyright (c) 2020 MinIO Inc. All rights reserved.
// Use of this source code is governed by a license that can be
// found in the LICENSE file.

package simdhash

import "encoding/binary"

var sha1init = [5]uint32{0x67452301, 0xefcdab89, 0x98badcfe, 0x10325476, 0xc3d2e1f0}

var sha1k = inflate([]uint32{0x5a827999, 0x6ed9eba1, 0x8f1bbcdc, 0xca62c1d6})

func initSHA1(c *Context) {
	c.algorithm = SHA1
	c.hSize = 5
	c.hashSize = SizeSHA1
	c.bufferSize = BlockSize
	c.order = binary.BigEndian
	for i, v := range sha1init {
		c.h[i] = broadcast(v)
	}
}

func transformSHA1(c *Context) {
	var w [80]vec
	for i := 0; i < blockWords; i++ {
		w[i] = c.block[i].bswap()
	}
	for i := blockWords; i < 80; i++ {
		w[i] = w[i-3].xor(w[i-8]).xor(w[i-14]).xor(w[i-16]).rotl(1)
	}

	a, b, cc, d, e := c.h[0], c.h[1], c.h[2], c.h[3], c.h[4]
	for i := 0; i < 80; i++ {
		var f vec
		switch i / 20 {
		case 0:
			f = choice(cc, d, b)
		case 2:
			f = majority(b, cc, d)
		default:
			f = parity(b, cc, d)
		}
		t := a.rotl(5).add(f).add(e).add(sha1k[i/20]).add(w[i])
		a, b, cc, d, e = t, a, b.rotl(30), cc, d
	}

	c.h[0] = c.h[0].add(a)
	c.h[1] = c.h[1].add(b)
	c.h[2] = c.h[2].add(cc)
	c.h[3] = c.h[3].add(d)
	c.h[4] = c.h[4].add(e)
	c.resetBlock()
}
