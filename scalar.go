// Copyright (c) 2020 MinIO Inc. All rights reserved.
// Use of this source code is governed by a license that can be
// found in the LICENSE file.

package simdhash

import (
	"crypto/md5"
	"crypto/sha1"
	"crypto/sha512"
	"encoding/binary"
	"fmt"

	sha256 "github.com/minio/sha256-simd"
	"golang.org/x/crypto/md4"
)

// Sum returns the digest of a single message, or nil for an unknown
// algorithm.
func Sum(alg Algorithm, buf []byte) []byte {
	switch alg {
	case MD4:
		h := md4.New()
		h.Write(buf)
		return h.Sum(nil)
	case NTLM:
		h := md4.New()
		h.Write(ntlmPassword(buf))
		return h.Sum(nil)
	case MD5:
		s := md5.Sum(buf)
		return s[:]
	case SHA1:
		s := sha1.Sum(buf)
		return s[:]
	case SHA256:
		s := sha256.Sum256(buf)
		return s[:]
	case SHA384:
		s := sha512.Sum384(buf)
		return s[:]
	case SHA512:
		s := sha512.Sum512(buf)
		return s[:]
	}
	return nil
}

// HashSingle writes the digest of buf to out, which must hold alg.Size()
// bytes.
func HashSingle(alg Algorithm, buf, out []byte) {
	if len(out) < alg.Size() {
		panic(fmt.Sprintf("simdhash: digest buffer of %d bytes, need %d", len(out), alg.Size()))
	}
	copy(out, Sum(alg, buf))
}

// HashSingleExtended hashes buf and extends the digest to words 32-bit
// words, matching one lane of HashExtended.
func HashSingleExtended(alg Algorithm, buf, out []byte, words int) error {
	if !alg.vectorized() {
		return ErrUnsupported
	}
	ext := ExtendSingle(Sum(alg, buf), words)
	if len(out) < len(ext) {
		panic(fmt.Sprintf("simdhash: output buffer of %d bytes, need %d", len(out), len(ext)))
	}
	copy(out, ext)
	return nil
}

// ExtendSingle stretches digest to words 32-bit words. The digest itself
// is the prefix of the result; the rest follows
//
//	w[i] = w[i-3] + σ0(w[i-n]) + σ1(w[i-2])
//
// where n is the number of digest words and σ0, σ1 are the SHA-256 message
// schedule functions.
func ExtendSingle(digest []byte, words int) []byte {
	n := len(digest) / 4
	if n < 3 || len(digest)%4 != 0 {
		panic(fmt.Sprintf("simdhash: cannot extend a %d byte digest", len(digest)))
	}
	if words < n {
		panic(fmt.Sprintf("simdhash: %d words requested, digest already has %d", words, n))
	}

	w := make([]uint32, words)
	for i := 0; i < n; i++ {
		w[i] = binary.LittleEndian.Uint32(digest[i*4:])
	}
	for i := n; i < words; i++ {
		w[i] = w[i-3] + sigma0(w[i-n]) + sigma1(w[i-2])
	}

	out := make([]byte, words*4)
	for i, v := range w {
		binary.LittleEndian.PutUint32(out[i*4:], v)
	}
	return out
}

func sigma0(x uint32) uint32 {
	return smallSigma0(broadcast(x))[0]
}

func sigma1(x uint32) uint32 {
	return smallSigma1(broadcast(x))[0]
}
