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

import "github.com/rachelsunqh/fish-begol/gf2"

// View is the per-round transcript row an AND gate call XORs its output
// into: one BitBlock per party. The full multi-round transcript a
// prover/verifier accumulates over a LowMC evaluation is a BitMatrix per
// party (rounds x wire positions); View.Row pulls the row for one round
// out of three such matrices. The core never allocates a View — callers
// own the backing BitMatrices for the whole transcript.
type View struct {
	S [3]*gf2.BitBlock
}

// Transcript bundles the three per-party BitMatrices (rounds x wire
// positions) a full proof or verification accumulates its view into.
type Transcript struct {
	Party [3]*gf2.BitMatrix
}

// AllocTranscript allocates a zero-valued transcript of the given number
// of rounds and wire-position width.
func AllocTranscript(rounds, cols uint32) (*Transcript, error) {
	var t Transcript
	for i := 0; i < 3; i++ {
		m, err := gf2.AllocMatrix(rounds, cols)
		if err != nil {
			for j := 0; j < i; j++ {
				t.Party[j].Free()
			}
			return nil, err
		}
		t.Party[i] = m
	}
	return &t, nil
}

// Free releases all three per-party matrices.
func (t *Transcript) Free() error {
	for i := 0; i < 3; i++ {
		if err := t.Party[i].Free(); err != nil {
			return err
		}
	}
	return nil
}

// Row returns the View an AND gate call for LowMC round r should XOR
// its output into: the r'th row of each party's matrix, aliased in place.
func (t *Transcript) Row(r uint32) View {
	var v View
	for i := 0; i < 3; i++ {
		row := t.Party[i].Row(r)
		v.S[i] = &row
	}
	return v
}
