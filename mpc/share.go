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

package mpc

import (
	"fmt"

	"github.com/rachelsunqh/fish-begol/gf2"
	"github.com/rachelsunqh/fish-begol/prng"
)

// ShareVector is a replicated 3-of-3 additive sharing of one BitBlock:
// Shares[0] ^ Shares[1] ^ Shares[2] equals the secret. All three Shares
// have identical shape. Randomness triples passed to the AND gate (§4.5)
// reuse this same type even though they need not XOR to anything in
// particular.
type ShareVector struct {
	Shares [3]*gf2.BitBlock
}

// AllocShareVector allocates a zero-valued (hence zero-secret) share
// vector of the given width.
func AllocShareVector(cols uint32) (*ShareVector, error) {
	blocks, err := gf2.AllocBlocks(3, cols)
	if err != nil {
		return nil, err
	}
	return &ShareVector{Shares: [3]*gf2.BitBlock{blocks[0], blocks[1], blocks[2]}}, nil
}

// Free releases all three shares.
func (s *ShareVector) Free() error {
	return gf2.FreeMany(s.Shares[:])
}

func (s *ShareVector) cols() uint32 { return s.Shares[0].NCols() }

func (s *ShareVector) sameShape(o *ShareVector) error {
	if s.cols() != o.cols() {
		return fmt.Errorf("mpc: share width mismatch %d != %d: %w", s.cols(), o.cols(), ErrDimensionMismatch)
	}
	return nil
}

// prepareShareOutput mirrors gf2's allocate-on-nil-output convention at
// the ShareVector level.
func prepareShareOutput(dst *ShareVector, cols uint32) (*ShareVector, error) {
	if dst == nil {
		return AllocShareVector(cols)
	}
	if dst.cols() != cols {
		return nil, fmt.Errorf("mpc: output width %d != %d: %w", dst.cols(), cols, ErrDimensionMismatch)
	}
	return dst, nil
}

// XOR computes dst := a ^ b share-wise; no communication is required
// since XOR is linear over a replicated sharing.
func XOR(dst, a, b *ShareVector) (*ShareVector, error) {
	if err := a.sameShape(b); err != nil {
		return nil, err
	}
	dst, err := prepareShareOutput(dst, a.cols())
	if err != nil {
		return nil, err
	}
	for i := 0; i < 3; i++ {
		if _, err := gf2.XOR(dst.Shares[i], a.Shares[i], b.Shares[i]); err != nil {
			return nil, err
		}
	}
	return dst, nil
}

// ANDConst computes dst := a & c share-wise, ANDing the same public
// constant c into every share. Unlike the two-share AND gate (§4.5/4.6)
// this needs no randomness or view: AND with a public constant
// distributes over a replicated sharing without leaking anything.
func ANDConst(dst, a *ShareVector, c *gf2.BitBlock) (*ShareVector, error) {
	if a.cols() != c.NCols() {
		return nil, fmt.Errorf("mpc: and_const width %d != %d: %w", a.cols(), c.NCols(), ErrDimensionMismatch)
	}
	dst, err := prepareShareOutput(dst, a.cols())
	if err != nil {
		return nil, err
	}
	for i := 0; i < 3; i++ {
		if _, err := gf2.AND(dst.Shares[i], a.Shares[i], c); err != nil {
			return nil, err
		}
	}
	return dst, nil
}

// SHL computes dst := a << k share-wise.
func SHL(dst, a *ShareVector, k uint) (*ShareVector, error) {
	dst, err := prepareShareOutput(dst, a.cols())
	if err != nil {
		return nil, err
	}
	for i := 0; i < 3; i++ {
		if _, err := gf2.SHL(dst.Shares[i], a.Shares[i], k); err != nil {
			return nil, err
		}
	}
	return dst, nil
}

// SHR computes dst := a >> k share-wise.
func SHR(dst, a *ShareVector, k uint) (*ShareVector, error) {
	dst, err := prepareShareOutput(dst, a.cols())
	if err != nil {
		return nil, err
	}
	for i := 0; i < 3; i++ {
		if _, err := gf2.SHR(dst.Shares[i], a.Shares[i], k); err != nil {
			return nil, err
		}
	}
	return dst, nil
}

// MulRight computes dst := a . At share-wise, where At is the transpose
// of a public matrix: the right-multiply form v.A.
func MulRight(dst, a *ShareVector, at *gf2.BitMatrix) (*ShareVector, error) {
	dst, err := prepareShareOutput(dst, at.NCols())
	if err != nil {
		return nil, err
	}
	for i := 0; i < 3; i++ {
		if _, err := gf2.MulV(dst.Shares[i], a.Shares[i], at); err != nil {
			return nil, err
		}
	}
	return dst, nil
}

// MulLeft computes dst := A . a share-wise for a public matrix A, given
// its transpose mT (the layout mul_v always expects, per spec): the
// left-multiply form used when a bit-sliced round applies its linear
// layer as "matrix times state" rather than "state times matrix". The
// underlying primitive is identical to MulRight; this entry point exists
// so callers can name the mathematical convention they mean.
func MulLeft(dst, a *ShareVector, mT *gf2.BitMatrix) (*ShareVector, error) {
	return MulRight(dst, a, mT)
}

// Copy copies src into dst share-wise.
func Copy(dst, src *ShareVector) error {
	for i := 0; i < 3; i++ {
		if err := gf2.Copy(&dst.Shares[i].BitMatrix, &src.Shares[i].BitMatrix); err != nil {
			return err
		}
	}
	return nil
}

// Clone allocates and returns an independent copy of s.
func Clone(s *ShareVector) (*ShareVector, error) {
	out, err := AllocShareVector(s.cols())
	if err != nil {
		return nil, err
	}
	if err := Copy(out, s); err != nil {
		out.Free()
		return nil, err
	}
	return out, nil
}

// Equal reports whether a and b are share-wise identical. Used by
// verify-mode transcript checks, which compare recomputed views against
// committed ones share by share.
func Equal(a, b *ShareVector) bool {
	if a.cols() != b.cols() {
		return false
	}
	for i := 0; i < 3; i++ {
		if !gf2.Equal(a.Shares[i], b.Shares[i]) {
			return false
		}
	}
	return true
}

// Reconstruct computes dst := shares[0] ^ shares[1] ^ shares[2], the
// secret a replicated sharing hides.
func Reconstruct(dst *gf2.BitBlock, s *ShareVector) (*gf2.BitBlock, error) {
	dst, err := gf2.XOR(dst, s.Shares[0], s.Shares[1])
	if err != nil {
		return nil, err
	}
	return gf2.XOR(dst, dst, s.Shares[2])
}

// AddConst XORs the public constant c into one share of s. party must be
// 0 (the convention) or 3 (an alias for "the last share", index 2); any
// other party value XORs into no well-defined location in the source
// this was lifted from and is rejected here rather than silently
// accepted.
func AddConst(s *ShareVector, c *gf2.BitBlock, party int) error {
	var idx int
	switch party {
	case 0:
		idx = 0
	case 3:
		idx = 2
	default:
		return fmt.Errorf("mpc: add_const party=%d: %w", party, ErrContractViolation)
	}
	_, err := gf2.XOR(s.Shares[idx], s.Shares[idx], c)
	return err
}

// InitShareVector produces an additive 3-of-3 sharing of v: two shares
// drawn uniformly from pf, the third derived so all three XOR back to v.
func InitShareVector(v *gf2.BitBlock, pf prng.Source) (*ShareVector, error) {
	s, err := AllocShareVector(v.NCols())
	if err != nil {
		return nil, err
	}
	s.Shares[0].Randomize(pf)
	s.Shares[1].Randomize(pf)
	if _, err := gf2.XOR(s.Shares[2], s.Shares[0], s.Shares[1]); err != nil {
		s.Free()
		return nil, err
	}
	if _, err := gf2.XOR(s.Shares[2], s.Shares[2], v); err != nil {
		s.Free()
		return nil, err
	}
	return s, nil
}

// InitPlainShareVector produces the trivial (v, v, v) triple used to
// share a public value: every party already knows it.
func InitPlainShareVector(v *gf2.BitBlock) (*ShareVector, error) {
	s, err := AllocShareVector(v.NCols())
	if err != nil {
		return nil, err
	}
	for i := 0; i < 3; i++ {
		if err := gf2.Copy(&s.Shares[i].BitMatrix, &v.BitMatrix); err != nil {
			s.Free()
			return nil, err
		}
	}
	return s, nil
}
