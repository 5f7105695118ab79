// Copyright (c) 2020 MinIO Inc. All rights reserved.
// Use of this source code is governed by a license that can be
// found in the LICENSE file.

package simdhash

import (
	"crypto/sha512"
	"errors"
)

// digest - Type for computing a hash through a Server
type digest struct {
	alg    Algorithm
	sum    func([]byte) []byte
	x      []byte
	closed bool
}

func newDigest(alg Algorithm, sum func([]byte) []byte) *digest {
	return &digest{alg: alg, sum: sum}
}

// Size - Return size of checksum
func (d *digest) Size() int { return d.alg.Size() }

// BlockSize - Return blocksize of checksum
func (d *digest) BlockSize() int {
	if d.alg == SHA384 || d.alg == SHA512 {
		return sha512.BlockSize
	}
	return BlockSize
}

// Reset - reset digest to its initial values
func (d *digest) Reset() {
	d.x = d.x[:0]
	d.closed = false
}

// Write buffers p until Sum is called.
func (d *digest) Write(p []byte) (nn int, err error) {
	if d.closed {
		return 0, errors.New("simdhash: digest already closed. Reset first before writing again")
	}
	d.x = append(d.x, p...)
	return len(p), nil
}

// Sum appends the digest of everything written so far to in.
func (d *digest) Sum(in []byte) []byte {
	return append(in, d.sum(d.x)...)
}

func (d *digest) Close() {
	if !d.closed {
		d.x = nil
		d.closed = true
	}
}
