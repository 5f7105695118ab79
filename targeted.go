// Copyright (c) 2020 MinIO Inc. All rights reserved.
// Use of this source code is governed by a license that can be
// found in the LICENSE file.

package simdhash

import (
	"encoding/binary"
	"fmt"
)

// After this round the working variables a and e already hold the values
// that end up in d and h; the last three rounds only shift them.
const sha256CheckRound = 60

// FinalizeTargeted finalizes a SHA-256 context while searching for target,
// a 32 byte digest. It returns a mask with bit i set for every active lane
// whose digest may equal target. Only words 3 and 7 of the digest are
// compared, so callers must confirm candidates with GetDigest.
//
// When no lane matches the remaining rounds are skipped, 0 is returned and
// the digests of the context are undefined.
func (c *Context) FinalizeTargeted(target []byte) uint64 {
	c.checkOpen()
	if c.algorithm != SHA256 {
		panic(fmt.Sprintf("simdhash: targeted finalize needs SHA256, have %v", c.algorithm))
	}
	if len(target) != SizeSHA256 {
		panic(fmt.Sprintf("simdhash: target of %d bytes, need %d", len(target), SizeSHA256))
	}

	c.appendLength()
	c.finalized = true

	w := sha256Schedule(&c.block)
	s := newSHA256State(c)
	for i := 0; i <= sha256CheckRound; i++ {
		s.round(i, &w)
	}

	wantD := broadcast(binary.BigEndian.Uint32(target[12:]))
	wantH := broadcast(binary.BigEndian.Uint32(target[28:]))
	mask := c.h[3].add(s[0]).cmpeq(wantD) & c.h[7].add(s[4]).cmpeq(wantH)
	mask &= uint64(fullMask(c.lanes))
	if mask == 0 {
		return 0
	}

	for i := sha256CheckRound + 1; i < 64; i++ {
		s.round(i, &w)
	}
	s.feedForward(c)
	c.swapState()
	return mask
}
