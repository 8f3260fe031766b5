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
	"encoding/binary"

	"github.com/rachelsunqh/fish-begol/internal/aes"
	"github.com/rachelsunqh/fish-begol/internal/memops"
)

// AESEngine is the default Source: a CTR-mode keystream over the 128-bit
// seed, built on the teacher's AES-128 key schedule
// (internal/aes.ExpandedKey128 / ExpandFrom) and a from-scratch round
// function (internal/aes.EncryptBlock). No cryptographic strength claim
// is made beyond "deterministic given the seed, and not trivially
// predictable".
type AESEngine struct {
	rk       aes.ExpandedKey128
	counter  uint64
	keyed    bool
	leftover []byte // unconsumed tail of the most recent keystream block
}

var _ Source = (*AESEngine)(nil)

// Init expands seed into the AES-128 round-key schedule and resets the
// CTR-mode counter to zero.
func (e *AESEngine) Init(seed [16]byte) {
	var key aes.Key128
	key[0] = binary.LittleEndian.Uint32(seed[0:4])
	key[1] = binary.LittleEndian.Uint32(seed[4:8])
	key[2] = binary.LittleEndian.Uint32(seed[8:12])
	key[3] = binary.LittleEndian.Uint32(seed[12:16])
	e.rk.ExpandFrom(key)
	e.counter = 0
	e.keyed = true
	e.leftover = nil
}

// Fill writes len(buf) deterministic pseudorandom bytes: a single
// continuous CTR-mode stream over successive counter values, regardless
// of how callers chunk their Fill calls. A block's unconsumed tail is
// buffered in e.leftover and served to the next call instead of being
// discarded, so Fill(16) once and Fill(8) twice produce identical bytes.
func (e *AESEngine) Fill(buf []byte) {
	if !e.keyed {
		panic("prng: AESEngine.Fill called before Init")
	}
	for len(buf) > 0 {
		if len(e.leftover) == 0 {
			var block [16]byte
			binary.LittleEndian.PutUint64(block[0:8], e.counter)
			e.counter++
			ct := aes.EncryptBlock(&e.rk, block)
			e.leftover = ct[:]
		}
		n := copy(buf, e.leftover)
		buf = buf[n:]
		e.leftover = e.leftover[n:]
	}
}

// Clear wipes the expanded key schedule, resets the counter, and drops
// any buffered keystream tail.
func (e *AESEngine) Clear() {
	memops.ZeroMemory(e.rk[:])
	e.counter = 0
	e.keyed = false
	e.leftover = nil
}
