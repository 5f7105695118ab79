// Copyright (c) 2020 MinIO Inc. All rights reserved.
// Use of this source code is governed by a license that can be
// found in the LICENSE file.

package simdhash

import "fmt"

// ExtendEntropy stretches the finalized digest of every lane to words
// 32-bit words and writes them lane after lane to out, which must hold
// Lanes()*words*4 bytes. Each lane's output equals
// ExtendSingle(c.Digest(lane), words).
func (c *Context) ExtendEntropy(out []byte, words int) error {
	if !c.algorithm.vectorized() {
		return ErrUnsupported
	}
	if !c.finalized {
		panic("simdhash: entropy extension needs a finalized context")
	}
	n := c.hSize
	if words < n {
		panic(fmt.Sprintf("simdhash: %d words requested, digest already has %d", words, n))
	}

	w := make([]vec, words)
	copy(w, c.h[:n])
	for i := n; i < words; i++ {
		w[i] = w[i-3].add(smallSigma0(w[i-n])).add(smallSigma1(w[i-2]))
	}
	writeLinear(w, c.lanes, out)
	return nil
}
