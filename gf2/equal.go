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

import "github.com/rachelsunqh/fish-begol/internal/simd"

// Equal reports whether a and b have identical dimensions and all NLimbs
// limbs of their row agree; stride padding limbs beyond NLimbs are not
// compared. Invariant B1 already zeroes the trailing bits of
// the final limb on both operands, so no masking is needed here — the
// tiered kernels below exist only to exercise the dispatch table
// consistently with XOR/AND/mul_v; scalar comparison is already O(nLimbs).
func Equal(a, b *BitBlock) bool {
	if !a.rowLayout.sameShape(b.rowLayout) {
		return false
	}
	al, bl := a.Limbs()[:a.nLimbs], b.Limbs()[:b.nLimbs]
	switch equalTier(a.nCols) {
	case tier256:
		return equal256(al, bl)
	case tier128:
		return equal128(al, bl)
	default:
		return equalScalar(al, bl)
	}
}

func equalScalar(a, b []uint64) bool {
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func equal128(a, b []uint64) bool {
	n := len(a)
	i := 0
	for ; i+2 <= n; i += 2 {
		var av, bv simd.Vec64x2
		copy(av[:], a[i:i+2])
		copy(bv[:], b[i:i+2])
		if av != bv {
			return false
		}
	}
	for ; i < n; i++ {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func equal256(a, b []uint64) bool {
	n := len(a)
	i := 0
	for ; i+4 <= n; i += 4 {
		var av, bv simd.Vec64x4
		copy(av[:], a[i:i+4])
		copy(bv[:], b[i:i+4])
		if av != bv {
			return false
		}
	}
	for ; i < n; i++ {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
