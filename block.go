// Copyright (c) 2020 MinIO Inc. All rights reserved.
// Use of this source code is governed by a license that can be
// found in the LICENSE file.

package simdhash

import "fmt"

const blockWords = BlockSize / 4

// messageBlock is Lanes independent 64 byte blocks interleaved word by
// word: word w of lane l lives at [w][l]. Bytes are packed in memory
// order, byte k of a word occupying bits 8k..8k+7.
type messageBlock [blockWords]vec

func checkBlockRange(offset, size int) {
	if offset < 0 || offset+size > BlockSize || offset%size != 0 {
		panic(fmt.Sprintf("simdhash: %d byte write at offset %d outside the block", size, offset))
	}
}

func (b *messageBlock) writeByte(offset, lane int, v uint8) int {
	checkBlockRange(offset, 1)
	w := &b[offset/4][lane]
	shift := uint(offset%4) * 8
	*w = *w&^(0xff<<shift) | uint32(v)<<shift
	return offset + 1
}

func (b *messageBlock) writeHalfword(offset, lane int, v uint16) int {
	checkBlockRange(offset, 2)
	w := &b[offset/4][lane]
	shift := uint(offset%4) * 8
	*w = *w&^(0xffff<<shift) | uint32(v)<<shift
	return offset + 2
}

func (b *messageBlock) writeWord(offset, lane int, v uint32) int {
	checkBlockRange(offset, 4)
	b[offset/4][lane] = v
	return offset + 4
}

func (b *messageBlock) writeDoubleword(offset, lane int, v uint64) int {
	checkBlockRange(offset, 8)
	b[offset/4][lane] = uint32(v)
	b[offset/4+1][lane] = uint32(v >> 32)
	return offset + 8
}

func (b *messageBlock) reset() {
	*b = messageBlock{}
}
