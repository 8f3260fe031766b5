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
	"fmt"

	"github.com/rachelsunqh/fish-begol/internal/simd"
)

// XOR computes dst := a ^ b element-wise over GF(2). If dst is nil, a
// fresh BitBlock of a's shape is allocated and returned; otherwise dst is
// written in place and returned. dst may alias a or b.
func XOR(dst, a, b *BitBlock) (*BitBlock, error) {
	if a.nCols != b.nCols {
		return nil, fmt.Errorf("gf2: xor cols a=%d b=%d: %w", a.nCols, b.nCols, ErrDimensionMismatch)
	}
	var err error
	dst, err = prepareOutput(dst, a.rowLayout)
	if err != nil {
		return nil, err
	}
	tier := xorAndTier(a.nCols)
	runBinary(tier, a.nCols, a.nLimbs, dst.Limbs(), a.Limbs(), b.Limbs(), kernelXORScalar, kernelXOR128, kernelXOR256)
	if tier == tierScalar {
		// The 128/256-bit tiers only run when HighBitmask is all-ones
		// (cols % W == 0, see xorAndTier), so B1 already holds on their
		// output without an explicit mask; only the scalar path, which
		// can run on a partial final limb, needs it.
		dst.rowLayout.maskHighLimb(dst.Limbs())
	}
	return dst, nil
}

// prepareOutput returns dst if non-nil (after checking its shape matches
// layout), or allocates a fresh BitBlock of that shape when dst is nil —
// the "return-null-on-failure" idiom from the source re-expressed per
// spec §9 as an explicit allocate-on-nil-output contract.
func prepareOutput(dst *BitBlock, layout rowLayout) (*BitBlock, error) {
	if dst == nil {
		return AllocBlock(layout.nCols)
	}
	if dst.nCols != layout.nCols {
		return nil, fmt.Errorf("gf2: output cols dst=%d want=%d: %w", dst.nCols, layout.nCols, ErrDimensionMismatch)
	}
	return dst, nil
}

type binaryKernel func(dst, a, b []uint64)

// runBinary dispatches a limb-wise binary op (XOR or AND) to the tier
// selected by the caller. Every tier computes the identical per-limb op;
// they differ only in how many limbs are grouped per loop step (spec P6).
func runBinary(tier kernelTier, cols, nLimbs uint32, dst, a, b []uint64, scalar, k128, k256 binaryKernel) {
	switch tier {
	case tier256:
		k256(dst[:nLimbs], a[:nLimbs], b[:nLimbs])
	case tier128:
		k128(dst[:nLimbs], a[:nLimbs], b[:nLimbs])
	default:
		scalar(dst[:nLimbs], a[:nLimbs], b[:nLimbs])
	}
}

func kernelXORScalar(dst, a, b []uint64) {
	for i := range dst {
		dst[i] = a[i] ^ b[i]
	}
}

func kernelXOR128(dst, a, b []uint64) {
	n := len(dst)
	i := 0
	for ; i+2 <= n; i += 2 {
		var av, bv, rv simd.Vec64x2
		copy(av[:], a[i:i+2])
		copy(bv[:], b[i:i+2])
		simd.VPXORQ128(&av, &bv, &rv)
		copy(dst[i:i+2], rv[:])
	}
	for ; i < n; i++ {
		dst[i] = a[i] ^ b[i]
	}
}

func kernelXOR256(dst, a, b []uint64) {
	n := len(dst)
	i := 0
	for ; i+4 <= n; i += 4 {
		var av, bv, rv simd.Vec64x4
		copy(av[:], a[i:i+4])
		copy(bv[:], b[i:i+4])
		simd.VPXORQ256(&av, &bv, &rv)
		copy(dst[i:i+4], rv[:])
	}
	for ; i < n; i++ {
		dst[i] = a[i] ^ b[i]
	}
}
