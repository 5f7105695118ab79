// Copyright (c) 2020 MinIO Inc. All rights reserved.
// Use of this source code is governed by a license that can be
// found in the LICENSE file.

package simdhash

import "encoding/binary"

var sha256init = [8]uint32{
	0x6a09e667, 0xbb67ae85, 0x3c6ef372, 0xa54ff53a,
	0x510e527f, 0x9b05688c, 0x1f83d9ab, 0x5be0cd19,
}

var sha256consts = [64]uint32{
	0x428a2f98, 0x71374491, 0xb5c0fbcf, 0xe9b5dba5,
	0x3956c25b, 0x59f111f1, 0x923f82a4, 0xab1c5ed5,
	0xd807aa98, 0x12835b01, 0x243185be, 0x550c7dc3,
	0x72be5d74, 0x80deb1fe, 0x9bdc06a7, 0xc19bf174,
	0xe49b69c1, 0xefbe4786, 0x0fc19dc6, 0x240ca1cc,
	0x2de92c6f, 0x4a7484aa, 0x5cb0a9dc, 0x76f988da,
	0x983e5152, 0xa831c66d, 0xb00327c8, 0xbf597fc7,
	0xc6e00bf3, 0xd5a79147, 0x06ca6351, 0x14292967,
	0x27b70a85, 0x2e1b2138, 0x4d2c6dfc, 0x53380d13,
	0x650a7354, 0x766a0abb, 0x81c2c92e, 0x92722c85,
	0xa2bfe8a1, 0xa81a664b, 0xc24b8b70, 0xc76c51a3,
	0xd192e819, 0xd6990624, 0xf40e3585, 0x106aa070,
	0x19a4c116, 0x1e376c08, 0x2748774c, 0x34b0bcb5,
	0x391c0cb3, 0x4ed8aa4a, 0x5b9cca4f, 0x682e6ff3,
	0x748f82ee, 0x78a5636f, 0x84c87814, 0x8cc70208,
	0x90befffa, 0xa4506ceb, 0xbef9a3f7, 0xc67178f2,
}

var sha256k = inflate(sha256consts[:])

func initSHA256(c *Context) {
	c.algorithm = SHA256
	c.hSize = 8
	c.hashSize = SizeSHA256
	c.bufferSize = BlockSize
	c.order = binary.BigEndian
	for i, v := range sha256init {
		c.h[i] = broadcast(v)
	}
}

func smallSigma0(w vec) vec { return w.rotr(7).xor(w.rotr(18)).xor(w.shr(3)) }
func smallSigma1(w vec) vec { return w.rotr(17).xor(w.rotr(19)).xor(w.shr(10)) }

func sha256Schedule(b *messageBlock) (w [64]vec) {
	for i := 0; i < blockWords; i++ {
		w[i] = b[i].bswap()
	}
	for i := blockWords; i < 64; i++ {
		w[i] = smallSigma1(w[i-2]).add(w[i-7]).add(smallSigma0(w[i-15])).add(w[i-16])
	}
	return
}

// sha256State holds the eight working variables a..h.
type sha256State [8]vec

func newSHA256State(c *Context) (s sha256State) {
	copy(s[:], c.h[:8])
	return
}

func (s *sha256State) round(i int, w *[64]vec) {
	a, b, c, d, e, f, g, h := s[0], s[1], s[2], s[3], s[4], s[5], s[6], s[7]
	bigSigma1 := e.rotr(6).xor(e.rotr(11)).xor(e.rotr(25))
	t1 := h.add(bigSigma1).add(choice(f, g, e)).add(sha256k[i]).add(w[i])
	bigSigma0 := a.rotr(2).xor(a.rotr(13)).xor(a.rotr(22))
	t2 := bigSigma0.add(majority(a, b, c))
	*s = sha256State{t1.add(t2), a, b, c, d.add(t1), e, f, g}
}

func (s *sha256State) feedForward(c *Context) {
	for i := range s {
		c.h[i] = c.h[i].add(s[i])
	}
	c.resetBlock()
}

func transformSHA256(c *Context) {
	w := sha256Schedule(&c.block)
	s := newSHA256State(c)
	for i := 0; i < 64; i++ {
		s.round(i, &w)
	}
	s.feedForward(c)
}
