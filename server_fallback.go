// Copyright (c) 2020 MinIO Inc. All rights reserved.
// Use of this source code is governed by a license that can be
// found in the LICENSE file.

package simdhash

// fallbackServer hashes every message directly with the scalar
// implementations.
type fallbackServer struct {
	alg Algorithm
}

func (s *fallbackServer) Sum(msg []byte) []byte {
	return Sum(s.alg, msg)
}

func (s *fallbackServer) NewHash() Hasher {
	return newDigest(s.alg, s.Sum)
}

func (s *fallbackServer) Close() {}
