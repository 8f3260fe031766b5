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
	"math/rand"
	"testing"
)

func blockFromLimbs(t *testing.T, cols uint32, limbs ...uint64) *BitBlock {
	t.Helper()
	b, err := AllocBlock(cols)
	if err != nil {
		t.Fatalf("AllocBlock: %v", err)
	}
	copy(b.Limbs(), limbs)
	b.rowLayout.maskHighLimb(b.Limbs())
	return b
}

func randomBlock(t *testing.T, rng *rand.Rand, cols uint32) *BitBlock {
	t.Helper()
	b, err := AllocBlock(cols)
	if err != nil {
		t.Fatalf("AllocBlock: %v", err)
	}
	for i := range b.Limbs() {
		b.Limbs()[i] = rng.Uint64()
	}
	b.rowLayout.maskHighLimb(b.Limbs())
	return b
}

// Scenario 1.
func TestXORScenario(t *testing.T) {
	a := blockFromLimbs(t, 64, 0x00000000000000FF)
	b := blockFromLimbs(t, 64, 0x00000000000000F0)
	out, err := XOR(nil, a, b)
	if err != nil {
		t.Fatalf("XOR: %v", err)
	}
	if out.Limbs()[0] != 0x000000000000000F {
		t.Fatalf("got %#x, want %#x", out.Limbs()[0], 0x0F)
	}
}

// Scenario 2.
func TestANDScenarioMasking(t *testing.T) {
	a := blockFromLimbs(t, 60, 0xFFFFFFFFFFFFFFFF)
	b := blockFromLimbs(t, 60, 0x0123456789ABCDEF)
	if got, want := a.HighBitmask(), uint64(0x0FFFFFFFFFFFFFFF); got != want {
		t.Fatalf("high_bitmask = %#x, want %#x", got, want)
	}
	out, err := AND(nil, a, b)
	if err != nil {
		t.Fatalf("AND: %v", err)
	}
	if out.Limbs()[0] != 0x0123456789ABCDEF {
		t.Fatalf("got %#x, want %#x", out.Limbs()[0], 0x0123456789ABCDEF)
	}
	if out.Limbs()[0]&^out.HighBitmask() != 0 {
		t.Fatalf("bits outside high_bitmask are set: %#x", out.Limbs()[0])
	}
}

// Scenario 3.
func TestSHRScenario(t *testing.T) {
	v := blockFromLimbs(t, 128, 0xFEDCBA9876543210, 0x0000000000000001)
	out, err := SHR(nil, v, 4)
	if err != nil {
		t.Fatalf("SHR: %v", err)
	}
	want := []uint64{0x1FEDCBA987654321, 0x0000000000000000}
	for i, w := range want {
		if out.Limbs()[i] != w {
			t.Fatalf("limb %d = %#x, want %#x", i, out.Limbs()[i], w)
		}
	}
}

// Scenario 4.
func TestMulVScenario(t *testing.T) {
	at, err := AllocMatrix(5, 64)
	if err != nil {
		t.Fatalf("AllocMatrix: %v", err)
	}
	rows := []uint64{1, 2, 4, 8, 16}
	for i, r := range rows {
		at.Row(uint32(i)).Limbs()[0] = r
	}
	v := blockFromLimbs(t, 5, 0b10110)

	c, err := MulV(nil, v, at)
	if err != nil {
		t.Fatalf("MulV: %v", err)
	}
	want := uint64(2 ^ 4 ^ 16)
	if c.Limbs()[0] != want {
		t.Fatalf("mul_v = %#x, want %#x", c.Limbs()[0], want)
	}
}

func TestBitAccessors(t *testing.T) {
	b, err := AllocBlock(70)
	if err != nil {
		t.Fatalf("AllocBlock: %v", err)
	}
	for _, k := range []uint32{0, 1, 63, 64, 69} {
		if b.Bit(k) {
			t.Fatalf("bit %d set on a fresh block", k)
		}
		b.SetBit(k)
		if !b.Bit(k) {
			t.Fatalf("bit %d not set after SetBit", k)
		}
		b.FlipBit(k)
		if b.Bit(k) {
			t.Fatalf("bit %d still set after FlipBit", k)
		}
		b.FlipBit(k)
		if !b.Bit(k) {
			t.Fatalf("bit %d not set after second FlipBit", k)
		}
		b.ClearBit(k)
		if b.Bit(k) {
			t.Fatalf("bit %d still set after ClearBit", k)
		}
	}
}

func TestSHRZeroIsCopy(t *testing.T) {
	v := blockFromLimbs(t, 128, 0x1122334455667788, 0x8877665544332211)
	out, err := SHR(nil, v, 0)
	if err != nil {
		t.Fatalf("SHR: %v", err)
	}
	if !Equal(out, v) {
		t.Fatalf("SHR(v, 0) != v")
	}
}

// P1: every produced BitBlock has its trailing bits zeroed.
func TestP1TrailingBitsZero(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	for _, cols := range []uint32{1, 7, 63, 64, 65, 127, 250, 1024} {
		a := randomBlock(t, rng, cols)
		b := randomBlock(t, rng, cols)
		for _, out := range []*BitBlock{mustXOR(t, a, b), mustAND(t, a, b)} {
			last := out.Limbs()[out.NLimbs()-1]
			if last&^out.HighBitmask() != 0 {
				t.Fatalf("cols=%d: trailing bits not zero: %#x", cols, last)
			}
		}
	}
}

// P2: XOR(XOR(a,b),b) == a.
func TestP2XORInvolution(t *testing.T) {
	rng := rand.New(rand.NewSource(2))
	for _, cols := range []uint32{1, 63, 64, 129, 1024} {
		a := randomBlock(t, rng, cols)
		b := randomBlock(t, rng, cols)
		once := mustXOR(t, a, b)
		twice := mustXOR(t, once, b)
		if !Equal(twice, a) {
			t.Fatalf("cols=%d: XOR(XOR(a,b),b) != a", cols)
		}
	}
}

// P3: AND(a, AND(a,b)) == AND(a,b).
func TestP3ANDIdempotence(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	for _, cols := range []uint32{1, 63, 64, 129, 1024} {
		a := randomBlock(t, rng, cols)
		b := randomBlock(t, rng, cols)
		ab := mustAND(t, a, b)
		aab := mustAND(t, a, ab)
		if !Equal(aab, ab) {
			t.Fatalf("cols=%d: AND(a,AND(a,b)) != AND(a,b)", cols)
		}
	}
}

// P4: (v.A).B == v.(A.B) computed via mul_v, for small enough dimensions
// that the direct and composed products are both easy to state.
func TestP4MulVAssociativity(t *testing.T) {
	rng := rand.New(rand.NewSource(4))
	const k, n, m = 37, 53, 29

	v := randomBlock(t, rng, k)
	a, err := AllocMatrix(k, n)
	if err != nil {
		t.Fatalf("AllocMatrix A: %v", err)
	}
	for i := uint32(0); i < k; i++ {
		row := a.Row(i)
		for j := range row.Limbs() {
			row.Limbs()[j] = rng.Uint64()
		}
		row.rowLayout.maskHighLimb(row.Limbs())
	}
	b, err := AllocMatrix(n, m)
	if err != nil {
		t.Fatalf("AllocMatrix B: %v", err)
	}
	for i := uint32(0); i < n; i++ {
		row := b.Row(i)
		for j := range row.Limbs() {
			row.Limbs()[j] = rng.Uint64()
		}
		row.rowLayout.maskHighLimb(row.Limbs())
	}

	// Left-hand side: (v.A).B
	va, err := MulV(nil, v, a)
	if err != nil {
		t.Fatalf("v.A: %v", err)
	}
	lhs, err := MulV(nil, va, b)
	if err != nil {
		t.Fatalf("(v.A).B: %v", err)
	}

	// Right-hand side: v.(A.B), where A.B is computed row by row: row i
	// of A.B is row i of A multiplied by B.
	ab, err := AllocMatrix(k, m)
	if err != nil {
		t.Fatalf("AllocMatrix A.B: %v", err)
	}
	for i := uint32(0); i < k; i++ {
		arow := a.Row(i)
		abrow, err := MulV(nil, &arow, b)
		if err != nil {
			t.Fatalf("row %d: %v", i, err)
		}
		copy(ab.Row(i).Limbs(), abrow.Limbs())
	}
	rhs, err := MulV(nil, v, ab)
	if err != nil {
		t.Fatalf("v.(A.B): %v", err)
	}

	if !Equal(lhs, rhs) {
		t.Fatalf("(v.A).B != v.(A.B)")
	}
}

// P5: SHL(SHR(v,k),k) == v with its low k bits cleared.
func TestP5ShiftRoundTrip(t *testing.T) {
	rng := rand.New(rand.NewSource(5))
	for _, cols := range []uint32{64, 128, 192, 1024} {
		for k := uint(1); k < wordBits; k += 7 {
			v := randomBlock(t, rng, cols)
			shr, err := SHR(nil, v, k)
			if err != nil {
				t.Fatalf("SHR: %v", err)
			}
			got, err := SHL(nil, shr, k)
			if err != nil {
				t.Fatalf("SHL: %v", err)
			}

			want, err := AllocBlock(cols)
			if err != nil {
				t.Fatalf("AllocBlock: %v", err)
			}
			copy(want.Limbs(), v.Limbs())
			want.Limbs()[0] &^= (uint64(1) << k) - 1
			want.rowLayout.maskHighLimb(want.Limbs())

			if !Equal(got, want) {
				t.Fatalf("cols=%d k=%d: SHL(SHR(v,k),k) mismatch", cols, k)
			}
		}
	}
}

// P6: scalar, 128-bit and 256-bit kernels agree, exercised directly
// rather than through CPU-feature gating (which this process may or may
// not have available) by calling the kernel functions side by side.
func TestP6KernelAgreement(t *testing.T) {
	rng := rand.New(rand.NewSource(6))
	const nLimbs = 64 // divisible by both 2 and 4
	a := make([]uint64, nLimbs)
	b := make([]uint64, nLimbs)
	for i := range a {
		a[i] = rng.Uint64()
		b[i] = rng.Uint64()
	}

	xorScalar := make([]uint64, nLimbs)
	xor128 := make([]uint64, nLimbs)
	xor256 := make([]uint64, nLimbs)
	kernelXORScalar(xorScalar, a, b)
	kernelXOR128(xor128, a, b)
	kernelXOR256(xor256, a, b)
	for i := range xorScalar {
		if xorScalar[i] != xor128[i] || xorScalar[i] != xor256[i] {
			t.Fatalf("XOR kernel disagreement at limb %d", i)
		}
	}

	andScalar := make([]uint64, nLimbs)
	and128 := make([]uint64, nLimbs)
	and256 := make([]uint64, nLimbs)
	kernelANDScalar(andScalar, a, b)
	kernelAND128(and128, a, b)
	kernelAND256(and256, a, b)
	for i := range andScalar {
		if andScalar[i] != and128[i] || andScalar[i] != and256[i] {
			t.Fatalf("AND kernel disagreement at limb %d", i)
		}
	}

	if !equalScalar(a, a) || !equal128(a, a) || !equal256(a, a) {
		t.Fatalf("equal kernels disagree on a reflexive comparison")
	}
}

func TestDimensionMismatchErrors(t *testing.T) {
	a, _ := AllocBlock(64)
	b, _ := AllocBlock(128)
	if _, err := XOR(nil, a, b); err == nil {
		t.Fatal("expected dimension mismatch")
	}
	at, _ := AllocMatrix(3, 64)
	v, _ := AllocBlock(4)
	if _, err := MulV(nil, v, at); err == nil {
		t.Fatal("expected dimension mismatch for mul_v")
	}
}

func TestFreeContractViolation(t *testing.T) {
	m, _ := AllocMatrix(4, 64)
	row := m.Row(0)
	if err := row.Free(); err == nil {
		t.Fatal("expected contract violation freeing a non-owning row view")
	}
	if err := m.Free(); err != nil {
		t.Fatalf("Free: %v", err)
	}
	if err := m.Free(); err == nil {
		t.Fatal("expected contract violation on double free")
	}
}

func mustXOR(t *testing.T, a, b *BitBlock) *BitBlock {
	t.Helper()
	out, err := XOR(nil, a, b)
	if err != nil {
		t.Fatalf("XOR: %v", err)
	}
	return out
}

func mustAND(t *testing.T, a, b *BitBlock) *BitBlock {
	t.Helper()
	out, err := AND(nil, a, b)
	if err != nil {
		t.Fatalf("AND: %v", err)
	}
	return out
}
