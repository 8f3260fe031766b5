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
	"encoding/binary"
	"fmt"

	"github.com/rachelsunqh/fish-begol/internal/memops"
)

// RandomSource is the PRNG contract BitBlock.Randomize consumes: a keyed
// byte stream. Concrete adapters (e.g. package prng) satisfy this
// structurally without gf2 importing them.
type RandomSource interface {
	Fill(buf []byte)
}

// BitMatrix is an m x n GF(2) matrix: NRows rows sharing one row layout
// (NCols, NLimbs, RowStride, HighBitmask) and one contiguous backing
// buffer. A BitBlock is the NRows == 1 case.
type BitMatrix struct {
	rowLayout
	nRows   uint32
	storage []uint64
	alloc   bool // custom-layout flag: set only by the alloc constructors
	freed   bool
}

// BitBlock is a 1 x n GF(2) row vector.
type BitBlock struct {
	BitMatrix
}

// AllocMatrix allocates a zero-initialized m x n BitMatrix. The single
// backing slice holds header, row-pointer bookkeeping (here: the slice
// header itself, since Go has no separate row-pointer table to co-locate)
// and the NRows*RowStride-limb payload, so a single BitMatrix value frees
// as a unit when it is discarded — see Free.
func AllocMatrix(rows, cols uint32) (*BitMatrix, error) {
	if rows == 0 || cols == 0 {
		return nil, fmt.Errorf("gf2: alloc rows=%d cols=%d: %w", rows, cols, ErrDimensionMismatch)
	}
	layout := newRowLayout(cols)
	storage := make([]uint64, uint64(rows)*uint64(layout.rowStride))
	memops.ZeroMemory(storage)
	return &BitMatrix{
		rowLayout: layout,
		nRows:     rows,
		storage:   storage,
		alloc:     true,
	}, nil
}

// AllocBlock allocates a zero-initialized 1 x n BitBlock.
func AllocBlock(cols uint32) (*BitBlock, error) {
	m, err := AllocMatrix(1, cols)
	if err != nil {
		return nil, err
	}
	return &BitBlock{BitMatrix: *m}, nil
}

// AllocBlocks allocates n independent BitBlocks of the given width.
func AllocBlocks(n int, cols uint32) ([]*BitBlock, error) {
	out := make([]*BitBlock, n)
	for i := range out {
		b, err := AllocBlock(cols)
		if err != nil {
			return nil, err
		}
		out[i] = b
	}
	return out, nil
}

// NRows returns the number of rows.
func (m *BitMatrix) NRows() uint32 { return m.nRows }

// Row returns a BitBlock aliasing row i of m: mutations through it are
// mutations of m. i must satisfy 0 <= i < NRows().
func (m *BitMatrix) Row(i uint32) BitBlock {
	off := uint64(i) * uint64(m.rowStride)
	return BitBlock{BitMatrix{
		rowLayout: m.rowLayout,
		nRows:     1,
		storage:   m.storage[off : off+uint64(m.rowStride)],
		alloc:     false, // a row view is not independently freeable
	}}
}

// Limbs returns the raw limb storage for row 0 of a BitBlock, i.e. its
// entire row. Callers must not resize it; it is sized exactly RowStride.
func (b *BitBlock) Limbs() []uint64 { return b.storage }

// Limbs returns the raw limb storage backing the whole matrix, row-major
// with stride RowStride limbs per row.
func (m *BitMatrix) Limbs() []uint64 { return m.storage }

// Free releases m. It is a contract violation (and refused) to free a
// value not obtained from AllocMatrix/AllocBlock/AllocBlocks — notably, a
// Row() view, which does not own its storage.
func (m *BitMatrix) Free() error {
	if !m.alloc {
		return fmt.Errorf("gf2: free of non-owning block: %w", ErrContractViolation)
	}
	if m.freed {
		return fmt.Errorf("gf2: double free: %w", ErrContractViolation)
	}
	memops.ZeroMemory(m.storage)
	m.storage = nil
	m.freed = true
	return nil
}

// FreeMany releases the blocks in bs, stopping at (and returning) the first
// error.
func FreeMany(bs []*BitBlock) error {
	for _, b := range bs {
		if err := b.Free(); err != nil {
			return err
		}
	}
	return nil
}

// Copy copies src into dst. dst's column count must equal src's, and
// dst must have at least as many rows as src.
func Copy(dst, src *BitMatrix) error {
	if dst.nCols != src.nCols {
		return fmt.Errorf("gf2: copy cols dst=%d src=%d: %w", dst.nCols, src.nCols, ErrDimensionMismatch)
	}
	if dst.nRows < src.nRows {
		return fmt.Errorf("gf2: copy rows dst=%d src=%d: %w", dst.nRows, src.nRows, ErrDimensionMismatch)
	}
	if dst.rowStride == src.rowStride {
		copy(dst.storage[:uint64(src.nRows)*uint64(src.rowStride)], src.storage)
		return nil
	}
	// Generic fallback: strides differ, copy row by row.
	for r := uint32(0); r < src.nRows; r++ {
		srow := src.Row(r)
		drow := dst.Row(r)
		copy(drow.storage, srow.storage)
	}
	return nil
}

// Randomize fills every row of b from pf, then masks the final limb of
// each row back down to HighBitmask to preserve invariant B1.
func (b *BitMatrix) Randomize(pf RandomSource) {
	bytesPerRow := int(b.nLimbs) * wordBits / 8
	buf := make([]byte, bytesPerRow)
	for r := uint32(0); r < b.nRows; r++ {
		pf.Fill(buf)
		row := b.Row(r)
		for i := uint32(0); i < b.nLimbs; i++ {
			row.storage[i] = binary.LittleEndian.Uint64(buf[i*8 : i*8+8])
		}
		b.rowLayout.maskHighLimb(row.storage)
	}
}
