// Copyright (c) 2020 MinIO Inc. All rights reserved.
// Use of this source code is governed by a license that can be
// found in the LICENSE file.

package simdhash

import (
	"github.com/klauspost/cpuid"
	"golang.org/x/sys/cpu"
)

var (
	hasAVX2   bool
	hasAVX512 bool
	hasASIMD  bool
)

func init() {
	hasAVX2 = cpuid.CPU.AVX2()
	hasAVX512 = cpuid.CPU.AVX512F()
	hasASIMD = cpu.ARM64.HasASIMD
}

// NativeLanes returns the number of 32-bit lanes the widest vector unit of
// the running CPU holds, or 1 when none was detected.
func NativeLanes() int {
	switch {
	case hasAVX512:
		return 16
	case hasAVX2:
		return 8
	case hasASIMD:
		return 4
	}
	return 1
}

// vectorUnit names the detected vector extension for logging.
func vectorUnit() string {
	switch {
	case hasAVX512:
		return "avx512"
	case hasAVX2:
		return "avx2"
	case hasASIMD:
		return "asimd"
	}
	return "none"
}
