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

// AND computes dst := a & b element-wise over GF(2). Masking and output
// allocation follow the same rules as XOR. dst may alias a or b.
func AND(dst, a, b *BitBlock) (*BitBlock, error) {
	if a.nCols != b.nCols {
		return nil, fmt.Errorf("gf2: and cols a=%d b=%d: %w", a.nCols, b.nCols, ErrDimensionMismatch)
	}
	var err error
	dst, err = prepareOutput(dst, a.rowLayout)
	if err != nil {
		return nil, err
	}
	tier := xorAndTier(a.nCols)
	runBinary(tier, a.nCols, a.nLimbs, dst.Limbs(), a.Limbs(), b.Limbs(), kernelANDScalar, kernelAND128, kernelAND256)
	if tier == tierScalar {
		dst.rowLayout.maskHighLimb(dst.Limbs())
	}
	return dst, nil
}

func kernelANDScalar(dst, a, b []uint64) {
	for i := range dst {
		dst[i] = a[i] & b[i]
	}
}

func kernelAND128(dst, a, b []uint64) {
	n := len(dst)
	i := 0
	for ; i+2 <= n; i += 2 {
		var av, bv, rv simd.Vec64x2
		copy(av[:], a[i:i+2])
		copy(bv[:], b[i:i+2])
		simd.VPANDQ128(&av, &bv, &rv)
		copy(dst[i:i+2], rv[:])
	}
	for ; i < n; i++ {
		dst[i] = a[i] & b[i]
	}
}

func kernelAND256(dst, a, b []uint64) {
	n := len(dst)
	i := 0
	for ; i+4 <= n; i += 4 {
		var av, bv, rv simd.Vec64x4
		copy(av[:], a[i:i+4])
		copy(bv[:], b[i:i+4])
		simd.VPANDQ256(&av, &bv, &rv)
		copy(dst[i:i+4], rv[:])
	}
	for ; i < n; i++ {
		dst[i] = a[i] & b[i]
	}
}
