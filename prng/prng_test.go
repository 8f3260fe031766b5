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

package prng

import (
	"bytes"
	"math/bits"
	"testing"
)

func engines() map[string]Source {
	return map[string]Source{
		"AESEngine":    &AESEngine{},
		"ChaChaEngine": &ChaChaEngine{},
	}
}

func TestDeterministicGivenSeed(t *testing.T) {
	seed := [16]byte{1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 13, 14, 15, 16}
	for name, e := range engines() {
		e.Init(seed)
		a := make([]byte, 256)
		e.Fill(a)

		e.Init(seed)
		b := make([]byte, 256)
		e.Fill(b)

		if !bytes.Equal(a, b) {
			t.Fatalf("%s: not deterministic given the same seed", name)
		}
	}
}

func TestDifferentSeedsDiverge(t *testing.T) {
	var seed1, seed2 [16]byte
	seed2[0] = 1
	for name, e := range engines() {
		e.Init(seed1)
		a := make([]byte, 64)
		e.Fill(a)

		e.Init(seed2)
		b := make([]byte, 64)
		e.Fill(b)

		if bytes.Equal(a, b) {
			t.Fatalf("%s: distinct seeds produced identical output", name)
		}
	}
}

func TestFillAcrossCallsContinuesStream(t *testing.T) {
	var seed [16]byte
	for name, e := range engines() {
		e.Init(seed)
		whole := make([]byte, 64)
		e.Fill(whole)

		e.Init(seed)
		var parts []byte
		for i := 0; i < 4; i++ {
			buf := make([]byte, 16)
			e.Fill(buf)
			parts = append(parts, buf...)
		}

		if !bytes.Equal(whole, parts) {
			t.Fatalf("%s: chunked Fill diverged from one-shot Fill", name)
		}
	}
}

// TestFillSurvivesUnalignedChunking guards against an engine dropping the
// unconsumed tail of a keystream block when a caller's Fill sizes don't
// evenly divide the block width (gf2.BitMatrix.Randomize does exactly
// this: it calls Fill once per row with nLimbs*8 bytes, which need not be
// a multiple of 16).
func TestFillSurvivesUnalignedChunking(t *testing.T) {
	var seed [16]byte
	for name, e := range engines() {
		e.Init(seed)
		whole := make([]byte, 40)
		e.Fill(whole)

		e.Init(seed)
		var parts []byte
		for _, n := range []int{8, 8, 8, 8, 8} {
			buf := make([]byte, n)
			e.Fill(buf)
			parts = append(parts, buf...)
		}

		if !bytes.Equal(whole, parts) {
			t.Fatalf("%s: unaligned chunked Fill diverged from one-shot Fill", name)
		}
	}
}

func TestClearResetsKeyedState(t *testing.T) {
	e := &AESEngine{}
	e.Init([16]byte{1})
	e.Clear()
	defer func() {
		if recover() == nil {
			t.Fatal("Fill after Clear should panic")
		}
	}()
	e.Fill(make([]byte, 16))
}

// TestBitBalance is a loose statistical check: over enough output bytes,
// roughly half the bits should be set.
func TestBitBalance(t *testing.T) {
	for name, e := range engines() {
		e.Init([16]byte{0xAA})
		buf := make([]byte, 1<<16)
		e.Fill(buf)

		ones := 0
		for _, b := range buf {
			ones += bits.OnesCount8(b)
		}
		total := len(buf) * 8
		frac := float64(ones) / float64(total)
		if frac < 0.47 || frac > 0.53 {
			t.Fatalf("%s: bit frequency %.4f out of [0.47, 0.53]", name, frac)
		}
	}
}
