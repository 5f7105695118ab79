//go:build !simd512 && !simd128

// Copyright (c) 2020 MinIO Inc. All rights reserved.
// Use of this source code is governed by a license that can be
// found in the LICENSE file.

package simdhash

// 8-way: one 32-bit lane per message in a 256-bit (ymm sized) vector.
const (
	Lanes       = 8
	vectorWidth = 256
)

const vectorName = "avx2"
