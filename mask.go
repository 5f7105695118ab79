// Copyright (c) 2020 MinIO Inc. All rights reserved.
// Use of this source code is governed by a license that can be
// found in the LICENSE file.

package simdhash

import "math/bits"

// laneMask has bit i set when lane i takes part in an operation.
type laneMask uint64

func fullMask(lanes int) laneMask {
	return laneMask(1)<<uint(lanes) - 1
}

func (m laneMask) has(lane int) bool { return m&(1<<uint(lane)) != 0 }

func (m *laneMask) set(lane int) { *m |= 1 << uint(lane) }

// LaneIndices translates a lane bit mask, as returned by FinalizeTargeted,
// into ascending lane indices.
func LaneIndices(mask uint64) []int {
	idx := make([]int, 0, bits.OnesCount64(mask))
	for mask != 0 {
		i := bits.TrailingZeros64(mask)
		idx = append(idx, i)
		mask &= mask - 1
	}
	return idx
}
