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

import "fmt"

// MulV computes c := v . At, the GF(2) product of the 1xk row vector v
// with the kxn matrix At — callers pass the transpose of the
// mathematical left-hand matrix, per spec. c is cleared first; if c is
// nil, a fresh BitBlock is allocated.
func MulV(c, v *BitBlock, at *BitMatrix) (*BitBlock, error) {
	out, err := prepareOutput(c, newRowLayout(at.nCols))
	if err != nil {
		return nil, err
	}
	limbs := out.Limbs()
	for i := range limbs[:out.nLimbs] {
		limbs[i] = 0
	}
	if err := addMulV(out, v, at); err != nil {
		return nil, err
	}
	return out, nil
}

// AddMulV computes c := c ^ (v . At) in place. This is the hot loop of
// signing: for each bit set in v, XOR the corresponding row of At into c.
// The loop walks each limb of v one nibble at a time, skipping zero
// nibbles and stopping once the rest of the limb is zero; within a
// nonzero nibble each set bit's row is XORed into c separately. There is
// no 16-case table that XORs a combination of four rows in one pass.
func AddMulV(c, v *BitBlock, at *BitMatrix) error {
	return addMulV(c, v, at)
}

func addMulV(c, v *BitBlock, at *BitMatrix) error {
	if at.nRows != v.nCols {
		return fmt.Errorf("gf2: addmul_v at.rows=%d v.cols=%d: %w", at.nRows, v.nCols, ErrDimensionMismatch)
	}
	if at.nCols != c.nCols {
		return fmt.Errorf("gf2: addmul_v at.cols=%d c.cols=%d: %w", at.nCols, c.nCols, ErrDimensionMismatch)
	}

	tier := mulTier(at.nRows, at.nCols)
	cLimbs := c.Limbs()[:c.nLimbs]
	vLimbs := v.Limbs()

	rowBase := uint32(0)
	for limbIdx := uint32(0); limbIdx < v.nLimbs; limbIdx++ {
		word := vLimbs[limbIdx]
		for word != 0 {
			nibble := word & 0xF
			if nibble != 0 {
				for b := uint32(0); b < 4; b++ {
					if nibble&(1<<b) != 0 {
						row := at.Row(rowBase + b)
						xorInto(tier, cLimbs, row.Limbs()[:at.nLimbs])
					}
				}
			}
			rowBase += 4
			word >>= 4
		}
		rowBase = (limbIdx + 1) * wordBits
	}

	c.rowLayout.maskHighLimb(cLimbs)
	return nil
}

// xorInto computes dst ^= src at the given tier, reusing the same
// width-grouped kernels XOR dispatches to.
func xorInto(tier kernelTier, dst, src []uint64) {
	runBinary(tier, 0, uint32(len(dst)), dst, dst, src, kernelXORScalar, kernelXOR128, kernelXOR256)
}
