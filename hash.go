// Copyright (c) 2020 MinIO Inc. All rights reserved.
// Use of this source code is governed by a license that can be
// found in the LICENSE file.

package simdhash

// Hash computes the digests of up to Lanes messages in one pass and writes
// them back to back into out, which must hold len(buffers)*alg.Size()
// bytes. An unknown algorithm leaves out untouched.
func Hash(alg Algorithm, buffers [][]byte, out []byte) {
	if len(buffers) == 0 {
		return
	}
	if len(buffers) > Lanes {
		buffers = buffers[:Lanes]
	}
	if !alg.vectorized() {
		size := alg.Size()
		if size == 0 {
			return
		}
		for lane, p := range buffers {
			HashSingle(alg, p, out[lane*size:])
		}
		return
	}

	var c Context
	c.Init(alg)
	c.SetLaneCount(len(buffers))
	c.Update(buffers)
	c.Finalize()
	c.GetDigests(out)
}

// HashExtended is Hash followed by ExtendEntropy.
func HashExtended(alg Algorithm, buffers [][]byte, out []byte, words int) error {
	if !alg.vectorized() {
		return ErrUnsupported
	}
	if len(buffers) == 0 {
		return nil
	}
	if len(buffers) > Lanes {
		buffers = buffers[:Lanes]
	}

	var c Context
	c.Init(alg)
	c.SetLaneCount(len(buffers))
	c.Update(buffers)
	c.Finalize()
	return c.ExtendEntropy(out, words)
}
