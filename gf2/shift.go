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

// SHR computes dst := v logically shifted right by k bits across the
// whole concatenated row, 0 <= k < 64. k == 0 is equivalent to Copy. v
// and dst must not alias: SHR reads v[i+1] while writing dst[i], so an
// in-place call would read already-overwritten data.
func SHR(dst, v *BitBlock, k uint) (*BitBlock, error) {
	if k >= wordBits {
		return nil, fmt.Errorf("gf2: shr k=%d: %w", k, ErrContractViolation)
	}
	var err error
	dst, err = prepareOutput(dst, v.rowLayout)
	if err != nil {
		return nil, err
	}
	src := v.Limbs()
	out := dst.Limbs()
	n := int(v.nLimbs)
	for i := 0; i < n; i++ {
		lo := src[i] >> k
		var hi uint64
		if i+1 < n {
			hi = src[i+1] << (wordBits - k)
		}
		out[i] = lo | hi
	}
	dst.rowLayout.maskHighLimb(out)
	return dst, nil
}

// SHL computes dst := v logically shifted left by k bits across the whole
// concatenated row, 0 <= k < 64; the mirror image of SHR. v and dst must
// not alias, for the same reason as SHR.
func SHL(dst, v *BitBlock, k uint) (*BitBlock, error) {
	if k >= wordBits {
		return nil, fmt.Errorf("gf2: shl k=%d: %w", k, ErrContractViolation)
	}
	var err error
	dst, err = prepareOutput(dst, v.rowLayout)
	if err != nil {
		return nil, err
	}
	src := v.Limbs()
	out := dst.Limbs()
	n := int(v.nLimbs)
	for i := 0; i < n; i++ {
		lo := src[i] << k
		var hi uint64
		if i > 0 {
			hi = src[i-1] >> (wordBits - k)
		}
		out[i] = lo | hi
	}
	dst.rowLayout.maskHighLimb(out)
	return dst, nil
}
