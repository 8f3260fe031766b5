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
	"golang.org/x/crypto/chacha20"
)

// ChaChaEngine is the alternate, software-only Source backend: it keys
// golang.org/x/crypto/chacha20 from the 128-bit seed, stretched to
// ChaCha20's 256-bit key by encrypting two fixed counter blocks under the
// seed with AESEngine's own round function. Useful where a verifier wants
// a second, independently-sourced keystream implementation to cross-check
// determinism against AESEngine without depending on this package's own
// from-scratch AES round function for both.
type ChaChaEngine struct {
	cipher *chacha20.Cipher
}

var _ Source = (*ChaChaEngine)(nil)

func stretchSeed(seed [16]byte) [32]byte {
	var rk aes.ExpandedKey128
	var key aes.Key128
	key[0] = binary.LittleEndian.Uint32(seed[0:4])
	key[1] = binary.LittleEndian.Uint32(seed[4:8])
	key[2] = binary.LittleEndian.Uint32(seed[8:12])
	key[3] = binary.LittleEndian.Uint32(seed[12:16])
	rk.ExpandFrom(key)

	var stretched [32]byte
	block0 := aes.EncryptBlock(&rk, [16]byte{0: 0x01})
	block1 := aes.EncryptBlock(&rk, [16]byte{0: 0x02})
	copy(stretched[0:16], block0[:])
	copy(stretched[16:32], block1[:])
	return stretched
}

// Init derives a 256-bit ChaCha20 key from seed and resets the stream.
func (e *ChaChaEngine) Init(seed [16]byte) {
	key := stretchSeed(seed)
	var nonce [chacha20.NonceSize]byte
	c, err := chacha20.NewUnauthenticatedCipher(key[:], nonce[:])
	if err != nil {
		// NewUnauthenticatedCipher only fails on malformed key/nonce
		// lengths, which stretchSeed/the fixed nonce size rule out.
		panic(err)
	}
	e.cipher = c
}

// Fill writes len(buf) deterministic pseudorandom bytes.
func (e *ChaChaEngine) Fill(buf []byte) {
	if e.cipher == nil {
		panic("prng: ChaChaEngine.Fill called before Init")
	}
	for i := range buf {
		buf[i] = 0
	}
	e.cipher.XORKeyStream(buf, buf)
}

// Clear drops the keyed cipher state.
func (e *ChaChaEngine) Clear() {
	e.cipher = nil
}
