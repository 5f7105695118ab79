// Copyright (c) 2020 MinIO Inc. All rights reserved.
// Use of this source code is governed by a license that can be
// found in the LICENSE file.

package simdhash

import "strings"

// Algorithm selects the digest computed by a Context.
type Algorithm int

const (
	Undefined Algorithm = iota
	MD4
	MD5
	SHA1
	SHA256
	SHA384
	SHA512
	NTLM
)

// Digest sizes in bytes.
const (
	SizeMD4    = 16
	SizeMD5    = 16
	SizeSHA1   = 20
	SizeSHA256 = 32
	SizeSHA384 = 48
	SizeSHA512 = 64
	SizeNTLM   = SizeMD4
)

// BlockSize is the compression block size shared by MD4, MD5, SHA-1 and SHA-256.
const BlockSize = 64

// MaxSize is the largest digest any Algorithm produces.
const MaxSize = SizeSHA512

var algorithmNames = map[Algorithm]string{
	MD4:    "MD4",
	MD5:    "MD5",
	SHA1:   "SHA1",
	SHA256: "SHA256",
	SHA384: "SHA384",
	SHA512: "SHA512",
	NTLM:   "NTLM",
}

// Algorithms returns every supported algorithm.
func Algorithms() []Algorithm {
	return []Algorithm{MD4, MD5, SHA1, SHA256, SHA384, SHA512, NTLM}
}

// ParseAlgorithm parses a short name such as "md5" or "SHA256". Unknown
// names yield Undefined.
func ParseAlgorithm(s string) Algorithm {
	for a, name := range algorithmNames {
		if strings.EqualFold(s, name) {
			return a
		}
	}
	return Undefined
}

func (a Algorithm) String() string {
	if name, ok := algorithmNames[a]; ok {
		return name
	}
	return "Unknown"
}

// Size returns the digest length in bytes, or 0 for an unknown algorithm.
func (a Algorithm) Size() int {
	switch a {
	case MD4, NTLM:
		return SizeMD4
	case MD5:
		return SizeMD5
	case SHA1:
		return SizeSHA1
	case SHA256:
		return SizeSHA256
	case SHA384:
		return SizeSHA384
	case SHA512:
		return SizeSHA512
	}
	return 0
}

// vectorized reports whether the algorithm runs on the multi-lane cores.
func (a Algorithm) vectorized() bool {
	switch a {
	case MD4, MD5, SHA1, SHA256, NTLM:
		return true
	}
	return false
}

// DetectAlgorithm guesses the algorithm from a digest length. A 16 byte
// digest is reported as MD5.
func DetectAlgorithm(digestLen int) Algorithm {
	switch digestLen {
	case SizeMD5:
		return MD5
	case SizeSHA1:
		return SHA1
	case SizeSHA256:
		return SHA256
	case SizeSHA384:
		return SHA384
	case SizeSHA512:
		return SHA512
	}
	return Undefined
}
