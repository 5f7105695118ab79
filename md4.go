// Copyright (c) 2020 MinIO Inc. All rights reserved.
// Use of this source code is governed by a license that can be
// found in the LICENSE file.

package simdhash

import "encoding/binary"

var md4init = [4]uint32{0x67452301, 0xefcdab89, 0x98badcfe, 0x10325476}

var md4k = inflate([]uint32{0, 0x5a827999, 0x6ed9eba1})

var md4shifts = [3][4]uint{
	{3, 7, 11, 19},
	{3, 5, 9, 13},
	{3, 9, 11, 15},
}

var md4index = [3][16]int{
	{0, 1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 13, 14, 15},
	{0, 4, 8, 12, 1, 5, 9, 13, 2, 6, 10, 14, 3, 7, 11, 15},
	{0, 8, 4, 12, 2, 10, 6, 14, 1, 9, 5, 13, 3, 11, 7, 15},
}

func initMD4(c *Context) {
	c.algorithm = MD4
	c.hSize = 4
	c.hashSize = SizeMD4
	c.bufferSize = BlockSize
	c.order = binary.LittleEndian
	for i, v := range md4init {
		c.h[i] = broadcast(v)
	}
}

func transformMD4(c *Context) {
	m := &c.block
	a, b, cc, d := c.h[0], c.h[1], c.h[2], c.h[3]

	for round := 0; round < 3; round++ {
		for i := 0; i < 16; i++ {
			var f vec
			switch round {
			case 0:
				f = choice(cc, d, b)
			case 1:
				f = majority(b, cc, d)
			default:
				f = parity(b, cc, d)
			}
			t := a.add(f).add(m[md4index[round][i]]).add(md4k[round])
			a, b, cc, d = d, t.rotl(md4shifts[round][i%4]), b, cc
		}
	}

	c.h[0] = c.h[0].add(a)
	c.h[1] = c.h[1].add(b)
	c.h[2] = c.h[2].add(cc)
	c.h[3] = c.h[3].add(d)
	c.resetBlock()
}
