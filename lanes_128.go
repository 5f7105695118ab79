//go:build simd128

// Copyright (c) 2020 MinIO Inc. All rights reserved.
// Use of this source code is governed by a license that can be
// found in the LICENSE file.

package simdhash

// 4-way: one 32-bit lane per message in a 128-bit (xmm/neon sized) vector.
const (
	Lanes       = 4
	vectorWidth = 128
)

const vectorName = "neon"
