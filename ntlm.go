// Copyright (c) 2020 MinIO Inc. All rights reserved.
// Use of this source code is governed by a license that can be
// found in the LICENSE file.

package simdhash

import (
	"golang.org/x/text/encoding/unicode"
)

var utf16le = unicode.UTF16(unicode.LittleEndian, unicode.IgnoreBOM)

// ntlmPassword converts a UTF-8 password to the UTF-16LE bytes NTLM
// hashes. If conversion fails the raw bytes are hashed instead.
func ntlmPassword(p []byte) []byte {
	u, err := utf16le.NewEncoder().Bytes(p)
	if err != nil {
		log().Warnw("ntlm: utf-16 conversion failed, hashing raw bytes", "len", len(p), "error", err)
		return p
	}
	return u
}

func ntlmBuffers(buffers [][]byte, lanes int) [][]byte {
	if len(buffers) > lanes {
		buffers = buffers[:lanes]
	}
	out := make([][]byte, len(buffers))
	for lane, p := range buffers {
		if len(p) == 0 {
			continue
		}
		out[lane] = ntlmPassword(p)
	}
	return out
}
