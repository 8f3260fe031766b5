// Copyright (C) 2022 Sneller, Inc.
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU Affero General Public License for more details.
//
// You should have received a copy of the GNU Affero General Public License
// along with this program.  If not, see <http://www.gnu.org/licenses/>.

package gf2

import (
	"sync"

	"golang.org/x/sys/cpu"
)

// kernelTier identifies which limb-grouping width a primitive dispatches
// to. All tiers for a given primitive must produce bit-identical output
// (spec P6); they differ only in how many limbs are processed per step,
// the Go-idiomatic re-expression of "compile-time choice of SIMD kernels"
// per the design notes: a dispatch table of pure functions of shape.
type kernelTier int

const (
	tierScalar kernelTier = iota
	tier128
	tier256
)

var cpuFeatures struct {
	once  sync.Once
	sse2  bool
	sse41 bool
	avx2  bool
}

// probeFeatures memoizes the CPU feature probe into process-wide read-only
// state, mirroring vm/avx512level.go's one-shot setavx512level pattern.
func probeFeatures() {
	cpuFeatures.once.Do(func() {
		cpuFeatures.sse2 = cpu.X86.HasSSE2
		cpuFeatures.sse41 = cpu.X86.HasSSE41
		cpuFeatures.avx2 = cpu.X86.HasAVX2
	})
}

// xorAndTier selects the kernel tier for XOR and AND, whose dispatch rule
// is identical (spec §4.2 table).
func xorAndTier(cols uint32) kernelTier {
	probeFeatures()
	if cpuFeatures.avx2 && cols >= 256 && cols%wordBits == 0 {
		return tier256
	}
	if cpuFeatures.sse2 && cols%wordBits == 0 {
		return tier128
	}
	return tierScalar
}

// mulTier selects the kernel tier for vector x matrix multiply.
func mulTier(rows, cols uint32) kernelTier {
	probeFeatures()
	if cpuFeatures.avx2 && rows%wordBits == 0 && cols%256 == 0 {
		return tier256
	}
	if cpuFeatures.sse2 && rows%wordBits == 0 && cols%128 == 0 {
		return tier128
	}
	return tierScalar
}

// equalTier selects the kernel tier for equality comparison.
func equalTier(cols uint32) kernelTier {
	probeFeatures()
	if cpuFeatures.avx2 && cols >= 256 {
		return tier256
	}
	if cpuFeatures.sse41 || cpuFeatures.sse2 {
		return tier128
	}
	return tierScalar
}
