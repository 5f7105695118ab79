// Copyright (c) 2020 MinIO Inc. All rights reserved.
// Use of this source code is governed by a license that can be
// found in the LICENSE file.

package simdhash

import "encoding/binary"

// MD5 magic numbers for one lane of hashing; inflated
// Lanes-way below at init time.
var md5consts = [64]uint32{
	0xd76aa478, 0xe8c7b756, 0x242070db, 0xc1bdceee,
	0xf57c0faf, 0x4787c62a, 0xa8304613, 0xfd469501,
	0x698098d8, 0x8b44f7af, 0xffff5bb1, 0x895cd7be,
	0x6b901122, 0xfd987193, 0xa679438e, 0x49b40821,
	0xf61e2562, 0xc040b340, 0x265e5a51, 0xe9b6c7aa,
	0xd62f105d, 0x02441453, 0xd8a1e681, 0xe7d3fbc8,
	0x21e1cde6, 0xc33707d6, 0xf4d50d87, 0x455a14ed,
	0xa9e3e905, 0xfcefa3f8, 0x676f02d9, 0x8d2a4c8a,
	0xfffa3942, 0x8771f681, 0x6d9d6122, 0xfde5380c,
	0xa4beea44, 0x4bdecfa9, 0xf6bb4b60, 0xbebfbc70,
	0x289b7ec6, 0xeaa127fa, 0xd4ef3085, 0x04881d05,
	0xd9d4d039, 0xe6db99e5, 0x1fa27cf8, 0xc4ac5665,
	0xf4292244, 0x432aff97, 0xab9423a7, 0xfc93a039,
	0x655b59c3, 0x8f0ccc92, 0xffeff47d, 0x85845dd1,
	0x6fa87e4f, 0xfe2ce6e0, 0xa3014314, 0x4e0811a1,
	0xf7537e82, 0xbd3af235, 0x2ad7d2bb, 0xeb86d391,
}

var md5k = inflate(md5consts[:])

var md5shifts = [4][4]uint{
	{7, 12, 17, 22},
	{5, 9, 14, 20},
	{4, 11, 16, 23},
	{6, 10, 15, 21},
}

var md5init = [4]uint32{0x67452301, 0xefcdab89, 0x98badcfe, 0x10325476}

// md5index holds the message word read by every round:
// i, 5i+1, 3i+5 and 7i, all mod 16.
var md5index = func() (idx [64]int) {
	for i := 0; i < 64; i++ {
		var g vec
		switch i / 16 {
		case 0:
			g = broadcast(uint32(i))
		case 1:
			g = broadcast(uint32(5*i + 1)).mod2(16)
		case 2:
			g = broadcast(uint32(3*i + 5)).mod2(16)
		default:
			g = broadcast(uint32(7 * i)).mod2(16)
		}
		idx[i] = int(g[0])
	}
	return
}()

func initMD5(c *Context) {
	c.algorithm = MD5
	c.hSize = 4
	c.hashSize = SizeMD5
	c.bufferSize = BlockSize
	c.order = binary.LittleEndian
	for i, v := range md5init {
		c.h[i] = broadcast(v)
	}
}

func transformMD5(c *Context) {
	m := &c.block
	a, b, cc, d := c.h[0], c.h[1], c.h[2], c.h[3]

	for i := 0; i < 64; i++ {
		var f vec
		switch i / 16 {
		case 0:
			f = choice(cc, d, b)
		case 1:
			f = choice(b, cc, d)
		case 2:
			f = parity(b, cc, d)
		default:
			f = cc.xor(b.or(d.not()))
		}
		f = f.add(a).add(md5k[i]).add(m[md5index[i]])
		a, d, cc = d, cc, b
		b = b.add(f.rotl(md5shifts[i/16][i%4]))
	}

	c.h[0] = c.h[0].add(a)
	c.h[1] = c.h[1].add(b)
	c.h[2] = c.h[2].add(cc)
	c.h[3] = c.h[3].add(d)
	c.resetBlock()
}
