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

// Package prng provides the keyed, deterministic byte-stream contract the
// gf2 and mpc layers randomize BitBlocks and derive MPC randomness
// triples from. It is a thin adapter: init(seed), fill(buf), clear() —
// nothing here touches the network or disk.
package prng

// Source is the PRNG contract spec.md §6 names: deterministic given a
// 128-bit seed, streamed out in arbitrary-length chunks.
type Source interface {
	// Init seeds (or reseeds) the stream from a 16-byte key.
	Init(seed [16]byte)
	// Fill writes deterministic pseudorandom bytes into buf, advancing
	// the stream.
	Fill(buf []byte)
	// Clear wipes any key material held by the stream.
	Clear()
}
