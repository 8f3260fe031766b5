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

package aes

import "github.com/rachelsunqh/fish-begol/internal/simd"

// EncryptBlock runs a single 128-bit block through the 10-round Rijndael
// cipher under the expanded key schedule rk. It is the software round
// function backing the keyed PRNG's CTR-mode keystream: no hardware
// AES-NI acceleration is assumed, only the same key schedule already
// produced by ExpandFrom.
func EncryptBlock(rk *ExpandedKey128, in [16]byte) [16]byte {
	state := in
	addRoundKey(&state, &rk[0])
	for r := 1; r < 10; r++ {
		subBytes(&state)
		shiftRows(&state)
		mixColumns(&state)
		addRoundKey(&state, &rk[r])
	}
	subBytes(&state)
	shiftRows(&state)
	addRoundKey(&state, &rk[10])
	return state
}

func addRoundKey(state *[16]byte, rk *Key128) {
	for w := 0; w < 4; w++ {
		word := rk[w]
		state[w*4+0] ^= byte(word)
		state[w*4+1] ^= byte(word >> 8)
		state[w*4+2] ^= byte(word >> 16)
		state[w*4+3] ^= byte(word >> 24)
	}
}

func subBytes(state *[16]byte) {
	for i := range state {
		state[i] = simd.AESSBox[state[i]]
	}
}

// shiftRows treats state as a column-major 4x4 byte matrix (state[col*4+row])
// and cyclically shifts row r left by r positions.
func shiftRows(state *[16]byte) {
	var rows [4][4]byte
	for col := 0; col < 4; col++ {
		for row := 0; row < 4; row++ {
			rows[row][col] = state[col*4+row]
		}
	}
	for row := 1; row < 4; row++ {
		rows[row] = [4]byte{rows[row][row%4], rows[row][(row+1)%4], rows[row][(row+2)%4], rows[row][(row+3)%4]}
	}
	for col := 0; col < 4; col++ {
		for row := 0; row < 4; row++ {
			state[col*4+row] = rows[row][col]
		}
	}
}

func xtime(b byte) byte {
	hi := b & 0x80
	b <<= 1
	if hi != 0 {
		b ^= 0x1b
	}
	return b
}

func gmul(a, b byte) byte {
	var p byte
	for i := 0; i < 8; i++ {
		if b&1 != 0 {
			p ^= a
		}
		a = xtime(a)
		b >>= 1
	}
	return p
}

func mixColumns(state *[16]byte) {
	for col := 0; col < 4; col++ {
		c := state[col*4 : col*4+4]
		a0, a1, a2, a3 := c[0], c[1], c[2], c[3]
		c[0] = gmul(a0, 2) ^ gmul(a1, 3) ^ a2 ^ a3
		c[1] = a0 ^ gmul(a1, 2) ^ gmul(a2, 3) ^ a3
		c[2] = a0 ^ a1 ^ gmul(a2, 2) ^ gmul(a3, 3)
		c[3] = gmul(a0, 3) ^ a1 ^ a2 ^ gmul(a3, 2)
	}
}
