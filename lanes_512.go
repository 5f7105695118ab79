//go:build simd512 && !simd128

// Copyright (c) 2020 MinIO Inc. All rights reserved.
// Use of this source code is governed by a license that can be
// found in the LICENSE file.

package simdhash

// 16-way: one 32-bit lane per message in a 512-bit (zmm sized) vector.
const (
	Lanes       = 16
	vectorWidth = 512
)

const vectorName = "avx512"
