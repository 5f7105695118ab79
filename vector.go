// Copyright (c) 2020 MinIO Inc. All rights reserved.
// Use of this source code is governed by a license that can be
// found in the LICENSE file.

package simdhash

import (
	"fmt"
	"math/bits"
)

// vec holds one 32-bit word per lane. All arithmetic is lane-wise and
// wraps modulo 2^32.
type vec [Lanes]uint32

// LaneCount returns the number of messages hashed side by side.
func LaneCount() int { return Lanes }

func broadcast(v uint32) (r vec) {
	for i := range r {
		r[i] = v
	}
	return
}

// inflate the scalar table N-way, one broadcast vector per entry
func inflate(c []uint32) []vec {
	inf := make([]vec, len(c))
	for i := range c {
		inf[i] = broadcast(c[i])
	}
	return inf
}

func checkImm(n uint) {
	if n >= 32 {
		panic(fmt.Sprintf("simdhash: immediate shift count %d out of range [0,32)", n))
	}
}

func (a vec) add(b vec) (r vec) {
	for i := range r {
		r[i] = a[i] + b[i]
	}
	return
}

func (a vec) sub(b vec) (r vec) {
	for i := range r {
		r[i] = a[i] - b[i]
	}
	return
}

func (a vec) xor(b vec) (r vec) {
	for i := range r {
		r[i] = a[i] ^ b[i]
	}
	return
}

func (a vec) and(b vec) (r vec) {
	for i := range r {
		r[i] = a[i] & b[i]
	}
	return
}

// andnot returns (not a) and b, with the operand order of the andnot
// instructions.
func (a vec) andnot(b vec) (r vec) {
	for i := range r {
		r[i] = ^a[i] & b[i]
	}
	return
}

func (a vec) or(b vec) (r vec) {
	for i := range r {
		r[i] = a[i] | b[i]
	}
	return
}

func (a vec) not() (r vec) {
	for i := range r {
		r[i] = ^a[i]
	}
	return
}

func (a vec) shl(n uint) (r vec) {
	checkImm(n)
	for i := range r {
		r[i] = a[i] << n
	}
	return
}

func (a vec) shr(n uint) (r vec) {
	checkImm(n)
	for i := range r {
		r[i] = a[i] >> n
	}
	return
}

func (a vec) rotl(n uint) (r vec) {
	checkImm(n)
	for i := range r {
		r[i] = bits.RotateLeft32(a[i], int(n))
	}
	return
}

func (a vec) rotr(n uint) (r vec) {
	checkImm(n)
	for i := range r {
		r[i] = bits.RotateLeft32(a[i], -int(n))
	}
	return
}

// bswap reverses the four bytes of every lane.
func (a vec) bswap() (r vec) {
	for i := range r {
		r[i] = bits.ReverseBytes32(a[i])
	}
	return
}

// mulWide returns the full 64-bit product of every lane pair, split into
// low and high halves.
func (a vec) mulWide(b vec) (lo, hi vec) {
	for i := range lo {
		h, l := bits.Mul32(a[i], b[i])
		lo[i], hi[i] = l, h
	}
	return
}

func (a vec) mul(b vec) vec {
	lo, _ := a.mulWide(b)
	return lo
}

// mod2 returns a mod m for a power of two m, computed as
// a - m*(a >> log2(m)) rather than with a division.
func (a vec) mod2(m uint32) vec {
	if m == 0 || m&(m-1) != 0 {
		panic(fmt.Sprintf("simdhash: modulus %d is not a power of two", m))
	}
	quotient := a.shr(uint(bits.TrailingZeros32(m)))
	return a.sub(broadcast(m).mul(quotient))
}

// cmpeq returns a bit mask with bit i set when lane i of a and b are equal.
func (a vec) cmpeq(b vec) (mask uint64) {
	for i := range a {
		d := a[i] ^ b[i]
		ne := (d | -d) >> 31
		mask |= uint64(ne^1) << uint(i)
	}
	return
}

// choice selects bits of x where ctrl is set and bits of y elsewhere.
func choice(x, y, ctrl vec) vec {
	return ctrl.and(x).xor(ctrl.andnot(y))
}

// majority is set where at least two of a, b and c are set.
func majority(a, b, c vec) vec {
	return b.and(c).or(a.and(b.xor(c)))
}

func parity(a, b, c vec) vec {
	return a.xor(b).xor(c)
}
