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

// Package gf2 implements a compact, stride-padded representation of
// GF(2) row vectors (BitBlock) and matrices (BitMatrix) of fixed small
// dimensions, and the scalar/128-bit/256-bit kernels that operate on them.
package gf2

import "github.com/rachelsunqh/fish-begol/ints"

// wordBits is W from the spec: the machine word width in bits.
const wordBits = 64

// rowLayout is the per-row shape shared by BitBlock and BitMatrix: column
// count, limb count, row stride (in limbs, padded for alignment), the
// high-limb validity mask, and the alignment the row is guaranteed to
// start at.
type rowLayout struct {
	nCols        uint32
	nLimbs       uint32
	rowStride    uint32
	highBitmask  uint64
	alignmentTag uint32
}

func newRowLayout(cols uint32) rowLayout {
	nLimbs := uint32(ints.ChunkCount(uint64(cols), uint64(wordBits)))

	alignmentTag := uint32(16)
	if uint64(nLimbs)*wordBits >= 256 {
		alignmentTag = 32
	}
	limbsPerAlign := alignmentTag / 8 // 8 bytes per uint64 limb

	rowStride := uint32(ints.AlignUp64(uint64(nLimbs), uint64(limbsPerAlign)))

	rem := uint64(cols) % wordBits
	var highBitmask uint64
	if rem == 0 {
		highBitmask = ^uint64(0)
	} else {
		highBitmask = (uint64(1) << rem) - 1
	}

	return rowLayout{
		nCols:        cols,
		nLimbs:       nLimbs,
		rowStride:    rowStride,
		highBitmask:  highBitmask,
		alignmentTag: alignmentTag,
	}
}

// NCols returns the logical bit length of a row.
func (l rowLayout) NCols() uint32 { return l.nCols }

// NLimbs returns the number of machine-word limbs a row occupies.
func (l rowLayout) NLimbs() uint32 { return l.nLimbs }

// HighBitmask returns the mask selecting the valid bits of the final limb.
func (l rowLayout) HighBitmask() uint64 { return l.highBitmask }

// AlignmentTag reports the byte alignment (16 or 32) a row's stride is
// padded to. It is advisory stride metadata for the kernels' limb
// grouping, not an enforced start address: the backing storage comes
// from a plain make([]uint64, ...), which Go only guarantees to 8-byte
// alignment, and the kernels copy into local Vec64x2/Vec64x4 values
// rather than doing aligned loads off the slice directly.
func (l rowLayout) AlignmentTag() uint32 { return l.alignmentTag }

func (l rowLayout) sameShape(o rowLayout) bool {
	return l.nCols == o.nCols && l.nLimbs == o.nLimbs
}

// maskHighLimb clears the bits of limbs[nLimbs-1] outside highBitmask,
// restoring invariant B1 after a scalar-path computation that wrote the
// full word.
func (l rowLayout) maskHighLimb(limbs []uint64) {
	if l.nLimbs == 0 {
		return
	}
	limbs[l.nLimbs-1] &= l.highBitmask
}
