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

import "github.com/rachelsunqh/fish-begol/ints"

// Bit reports whether column k of b is set. k must satisfy 0 <= k < NCols().
func (b *BitBlock) Bit(k uint32) bool {
	return ints.TestBit(b.storage, k)
}

// SetBit sets column k of b. k must satisfy 0 <= k < NCols().
func (b *BitBlock) SetBit(k uint32) {
	ints.SetBit(b.storage, k)
}

// ClearBit clears column k of b. k must satisfy 0 <= k < NCols().
func (b *BitBlock) ClearBit(k uint32) {
	ints.ClearBit(b.storage, k)
}

// FlipBit inverts column k of b. k must satisfy 0 <= k < NCols().
func (b *BitBlock) FlipBit(k uint32) {
	ints.FlipBit(b.storage, k)
}
