// Copyright (c) 2020 MinIO Inc. All rights reserved.
// Use of this source code is governed by a license that can be
// found in the LICENSE file.

package simdhash

import (
	"encoding/binary"
	"fmt"
)

// OptimizedLength returns the longest message the single block path
// accepts for alg, or -1 when alg has no such path. The marker byte and
// the 64-bit length must fit in the same block as the message.
func OptimizedLength(alg Algorithm) int {
	switch alg {
	case MD4, MD5, SHA1, SHA256:
		return BlockSize - 9
	}
	return -1
}

func (c *Context) checkOptimized(lane, length int) {
	limit := OptimizedLength(c.algorithm)
	if limit < 0 {
		panic(fmt.Sprintf("simdhash: no single block path for %v", c.algorithm))
	}
	if length > limit {
		panic(fmt.Sprintf("simdhash: lane %d holds %d bytes, single block limit is %d", lane, length, limit))
	}
}

// UpdateOptimized appends short messages that fit, together with their
// padding, in one block. No lane ever fills its block, so no transform
// runs before FinalizeOptimized. It panics when a lane would grow past
// OptimizedLength.
func (c *Context) UpdateOptimized(buffers [][]byte) {
	c.checkOpen()
	for lane := 0; lane < c.lanes && lane < len(buffers); lane++ {
		c.checkOptimized(lane, c.offset[lane]+len(buffers[lane]))
	}
	for lane := 0; lane < c.lanes && lane < len(buffers); lane++ {
		c.updateLane(lane, buffers[lane])
	}
}

// UpdateAllOptimized appends the first length bytes of every buffer
// through UpdateOptimized.
func (c *Context) UpdateAllOptimized(length int, buffers [][]byte) {
	trimmed := make([][]byte, len(buffers))
	for lane, p := range buffers {
		trimmed[lane] = p[:length]
	}
	c.UpdateOptimized(trimmed)
}

// FinalizeOptimized pads every lane in place and runs a single transform.
// Every lane must hold at most OptimizedLength bytes in its block.
func (c *Context) FinalizeOptimized() {
	c.checkOpen()
	for lane := 0; lane < c.lanes; lane++ {
		c.checkOptimized(lane, c.offset[lane])
	}

	for lane := 0; lane < c.lanes; lane++ {
		c.writeByte(c.offset[lane], lane, 0x80)
		c.writeDoubleword(c.bufferSize-8, lane, c.bitLength[lane])
	}
	c.transform()
	if c.order == binary.BigEndian {
		c.swapState()
	}
	c.finalized = true
}

// HashOptimized is Hash for messages of at most OptimizedLength(alg)
// bytes. Algorithms without a single block path are hashed with Hash.
func HashOptimized(alg Algorithm, buffers [][]byte, out []byte) {
	if OptimizedLength(alg) < 0 {
		Hash(alg, buffers, out)
		return
	}
	if len(buffers) == 0 {
		return
	}
	if len(buffers) > Lanes {
		buffers = buffers[:Lanes]
	}

	var c Context
	c.Init(alg)
	c.SetLaneCount(len(buffers))
	c.UpdateOptimized(buffers)
	c.FinalizeOptimized()
	c.GetDigests(out)
}
