// Copyright (c) 2020 MinIO Inc. All rights reserved.
// Use of this source code is governed by a license that can be
// found in the LICENSE file.

// Package simdhash computes MD4, MD5, SHA-1, SHA-256 and NTLM digests of
// Lanes independent messages at once. One 32-bit word of every message
// occupies one lane of a vector, so a single pass of a compression
// function advances all messages together.
//
// SHA-384 and SHA-512 are accepted by the same API but are computed one
// lane at a time with the scalar implementations.
package simdhash

import (
	"crypto/sha512"
	"encoding/binary"
	"errors"
	"fmt"
	"hash"
	"math/bits"
)

const maxStateWords = 8

// ErrUnsupported is returned when an operation is not available for the
// algorithm of a Context.
var ErrUnsupported = errors.New("simdhash: operation not supported for algorithm")

// Context carries the running state of Lanes messages. It is created once
// per batch, updated any number of times, finalized exactly once and then
// read. A Context must not be used from multiple goroutines at once.
type Context struct {
	h          [maxStateWords]vec
	block      messageBlock
	hSize      int // state words in use
	hashSize   int // digest bytes
	bufferSize int
	offset     [Lanes]int
	bitLength  [Lanes]uint64
	lanes      int
	algorithm  Algorithm
	order      binary.ByteOrder
	finalized  bool

	// scalar state for algorithms without a vector core
	wide *wideLanes
}

type wideLanes struct {
	h   [Lanes]hash.Hash
	sum [Lanes][]byte
}

// NewContext returns a Context initialised for alg.
func NewContext(alg Algorithm) *Context {
	c := new(Context)
	c.Init(alg)
	return c
}

// Init resets the context and selects alg. An unknown algorithm leaves a
// context on which every operation is a no-op.
func (c *Context) Init(alg Algorithm) {
	*c = Context{lanes: Lanes, order: binary.LittleEndian}
	switch alg {
	case MD4:
		initMD4(c)
	case MD5:
		initMD5(c)
	case SHA1:
		initSHA1(c)
	case SHA256:
		initSHA256(c)
	case NTLM:
		initMD4(c)
		c.algorithm = NTLM
	case SHA384, SHA512:
		c.algorithm = alg
		c.hashSize = alg.Size()
		c.wide = new(wideLanes)
		for lane := range c.wide.h {
			if alg == SHA384 {
				c.wide.h[lane] = sha512.New384()
			} else {
				c.wide.h[lane] = sha512.New()
			}
		}
	default:
		c.algorithm = Undefined
	}
}

// Algorithm returns the algorithm selected at Init.
func (c *Context) Algorithm() Algorithm { return c.algorithm }

// Size returns the digest size in bytes of a single lane.
func (c *Context) Size() int { return c.hashSize }

// Lanes returns the number of lanes in use.
func (c *Context) Lanes() int { return c.lanes }

// SetLaneCount restricts the context to its first n lanes. The remaining
// lanes receive no input and are not reported by GetDigests.
func (c *Context) SetLaneCount(n int) {
	if n < 1 || n > Lanes {
		panic(fmt.Sprintf("simdhash: lane count %d out of range [1,%d]", n, Lanes))
	}
	c.lanes = n
}

func (c *Context) checkOpen() {
	if c.finalized {
		panic("simdhash: context already finalized, Init it before reuse")
	}
}

// Update appends buffers[lane] to the message of every lane. Lanes
// without a buffer (nil, or beyond len(buffers)) are left untouched.
//
// NTLM converts every buffer to UTF-16 on its own, so chunks passed to
// separate Update calls must not split a multi-byte UTF-8 sequence.
func (c *Context) Update(buffers [][]byte) {
	c.checkOpen()
	switch {
	case c.algorithm == NTLM:
		c.update(ntlmBuffers(buffers, c.lanes))
	case c.algorithm.vectorized():
		c.update(buffers)
	case c.wide != nil:
		for lane := 0; lane < c.lanes && lane < len(buffers); lane++ {
			c.wide.h[lane].Write(buffers[lane])
		}
	}
}

// UpdateLanes appends the first lengths[lane] bytes of buffers[lane] to
// every lane.
func (c *Context) UpdateLanes(lengths []int, buffers [][]byte) {
	if len(lengths) < len(buffers) {
		panic("simdhash: fewer lengths than buffers")
	}
	trimmed := make([][]byte, len(buffers))
	for lane, p := range buffers {
		trimmed[lane] = p[:lengths[lane]]
	}
	c.Update(trimmed)
}

// UpdateAll appends the first length bytes of every buffer.
func (c *Context) UpdateAll(length int, buffers [][]byte) {
	lengths := make([]int, len(buffers))
	for i := range lengths {
		lengths[i] = length
	}
	c.UpdateLanes(lengths, buffers)
}

// update feeds the vector cores. A lane whose block fills up while it
// still has input needs a transform before it can continue; lanes that
// are done must not be transformed, so transformLanes only advances the
// lanes that asked for it.
func (c *Context) update(buffers [][]byte) {
	var remaining [Lanes][]byte
	for lane := 0; lane < c.lanes && lane < len(buffers); lane++ {
		remaining[lane] = buffers[lane]
	}

	for {
		var pending laneMask
		for lane := 0; lane < c.lanes; lane++ {
			p := remaining[lane]
			if len(p) == 0 {
				continue
			}
			left := c.updateLane(lane, p)
			remaining[lane] = p[len(p)-left:]
			if left != 0 {
				pending.set(lane)
			}
		}
		if pending == 0 {
			return
		}
		c.transformLanes(pending)
	}
}

// updateLane buffers as much of p as fits in the block of lane and
// returns the number of bytes not written.
func (c *Context) updateLane(lane int, p []byte) int {
	offset := c.offset[lane]
	n := c.bufferSize - offset
	if n > len(p) {
		n = len(p)
	}

	src := p[:n]
	for len(src) > 0 {
		switch {
		case offset&7 == 0 && len(src) >= 8:
			offset = c.writeDoubleword(offset, lane, c.order.Uint64(src))
			src = src[8:]
		case offset&3 == 0 && len(src) >= 4:
			offset = c.writeWord(offset, lane, c.order.Uint32(src))
			src = src[4:]
		case offset&1 == 0 && len(src) >= 2:
			offset = c.writeHalfword(offset, lane, c.order.Uint16(src))
			src = src[2:]
		default:
			offset = c.writeByte(offset, lane, src[0])
			src = src[1:]
		}
	}

	c.offset[lane] = offset
	c.bitLength[lane] += uint64(n) * 8
	return len(p) - n
}

// The write helpers take values in the byte order of the algorithm and
// store them in memory order in the block.

func (c *Context) writeByte(offset, lane int, v uint8) int {
	return c.block.writeByte(offset, lane, v)
}

func (c *Context) writeHalfword(offset, lane int, v uint16) int {
	if c.order == binary.BigEndian {
		v = bits.ReverseBytes16(v)
	}
	return c.block.writeHalfword(offset, lane, v)
}

func (c *Context) writeWord(offset, lane int, v uint32) int {
	if c.order == binary.BigEndian {
		v = bits.ReverseBytes32(v)
	}
	return c.block.writeWord(offset, lane, v)
}

func (c *Context) writeDoubleword(offset, lane int, v uint64) int {
	if c.order == binary.BigEndian {
		v = bits.ReverseBytes64(v)
	}
	return c.block.writeDoubleword(offset, lane, v)
}

// transform runs the compression function over every lane.
func (c *Context) transform() {
	switch c.algorithm {
	case MD4, NTLM:
		transformMD4(c)
	case MD5:
		transformMD5(c)
	case SHA1:
		transformSHA1(c)
	case SHA256:
		transformSHA256(c)
	}
}

// resetBlock clears the block and the offsets after a transform.
func (c *Context) resetBlock() {
	c.block.reset()
	c.offset = [Lanes]int{}
}

// transformLanes advances only the lanes in mask. When every lane is in
// mask the shared state is transformed in place; otherwise a copy is
// transformed and the masked lanes are merged back, leaving the other
// lanes exactly as they were.
func (c *Context) transformLanes(mask laneMask) {
	if mask == fullMask(c.lanes) {
		c.transform()
		return
	}

	work := *c
	work.transform()
	for lane := 0; lane < c.lanes; lane++ {
		if mask.has(lane) {
			c.copyLane(&work, lane)
		}
	}
}

// copyLane copies state, block and counters of one lane from src.
func (c *Context) copyLane(src *Context, lane int) {
	if c.algorithm != src.algorithm || c.bufferSize != src.bufferSize ||
		c.lanes != src.lanes || c.hSize != src.hSize || c.hashSize != src.hashSize {
		panic("simdhash: copyLane between mismatched contexts")
	}
	for i := 0; i < src.hSize; i++ {
		c.h[i][lane] = src.h[i][lane]
	}
	for i := 0; i < src.bufferSize/4; i++ {
		c.block[i][lane] = src.block[i][lane]
	}
	c.offset[lane] = src.offset[lane]
	c.bitLength[lane] = src.bitLength[lane]
}

// padding marker, one read-only slice per lane
var paddingMarker = func() [][]byte {
	m := make([][]byte, Lanes)
	for i := range m {
		m[i] = []byte{0x80}
	}
	return m
}()

// appendLength writes the 0x80 marker and the message bit length into
// the block of every lane, transforming the lanes whose length no longer
// fits.
func (c *Context) appendLength() {
	c.update(paddingMarker)

	lengthAt := c.bufferSize - 8
	var pending laneMask
	for lane := 0; lane < c.lanes; lane++ {
		c.bitLength[lane] -= 8
		if c.offset[lane] > lengthAt {
			pending.set(lane)
		}
	}
	if pending != 0 {
		c.transformLanes(pending)
	}

	for lane := 0; lane < c.lanes; lane++ {
		c.writeDoubleword(lengthAt, lane, c.bitLength[lane])
	}
}

// swapState converts a big endian state to digest byte order.
func (c *Context) swapState() {
	for i := 0; i < c.hSize; i++ {
		c.h[i] = c.h[i].bswap()
	}
}

// Finalize pads every lane and runs the last transform. The context is
// read-only afterwards.
func (c *Context) Finalize() {
	c.checkOpen()
	switch {
	case c.algorithm.vectorized():
		c.appendLength()
		c.transform()
		if c.order == binary.BigEndian {
			c.swapState()
		}
	case c.wide != nil:
		for lane := 0; lane < c.lanes; lane++ {
			c.wide.sum[lane] = c.wide.h[lane].Sum(nil)
		}
	}
	c.finalized = true
}

// GetDigest writes the digest of lane to out, which must hold Size bytes.
func (c *Context) GetDigest(lane int, out []byte) {
	if len(out) < c.hashSize {
		panic(fmt.Sprintf("simdhash: digest buffer of %d bytes, need %d", len(out), c.hashSize))
	}
	if c.wide != nil {
		copy(out, c.wide.sum[lane])
		return
	}
	for i := 0; i < c.hSize; i++ {
		binary.LittleEndian.PutUint32(out[i*4:], c.h[i][lane])
	}
}

// Digest returns the digest of lane.
func (c *Context) Digest(lane int) []byte {
	out := make([]byte, c.hashSize)
	c.GetDigest(lane, out)
	return out
}

// GetDigests2D writes the digest of lane i to out[i], which must hold
// Size bytes, for every lane in use.
func (c *Context) GetDigests2D(out [][]byte) {
	if len(out) < c.lanes {
		panic(fmt.Sprintf("simdhash: %d digest buffers for %d lanes", len(out), c.lanes))
	}
	for lane := 0; lane < c.lanes; lane++ {
		c.GetDigest(lane, out[lane])
	}
}

// GetDigests writes the digests of all lanes in use back to back into
// out, which must hold Lanes()*Size() bytes.
func (c *Context) GetDigests(out []byte) {
	if c.wide != nil {
		for lane := 0; lane < c.lanes; lane++ {
			c.GetDigest(lane, out[lane*c.hashSize:])
		}
		return
	}
	writeLinear(c.h[:c.hSize], c.lanes, out)
}

// writeLinear deinterleaves words so that lane l owns
// out[l*4*len(words):(l+1)*4*len(words)].
func writeLinear(words []vec, lanes int, out []byte) {
	n := len(words)
	if len(out) < lanes*n*4 {
		panic(fmt.Sprintf("simdhash: output buffer of %d bytes, need %d", len(out), lanes*n*4))
	}
	for i, w := range words {
		for l := 0; l < lanes; l++ {
			binary.LittleEndian.PutUint32(out[(l*n+i)*4:], w[l])
		}
	}
}
