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

package simd

// VPXORQ256 is the 256-bit-lane (YMM-width) XOR kernel primitive.
func VPXORQ256(a, b, r *Vec64x4) {
	for i := range *r {
		r[i] = a[i] ^ b[i]
	}
}

// VPANDQ256 is the 256-bit-lane AND counterpart of VPXORQ256.
func VPANDQ256(a, b, r *Vec64x4) {
	for i := range *r {
		r[i] = a[i] & b[i]
	}
}

// VPXORQ128 is the 128-bit-lane (XMM-width) XOR kernel primitive.
func VPXORQ128(a, b, r *Vec64x2) {
	for i := range *r {
		r[i] = a[i] ^ b[i]
	}
}

// VPANDQ128 is the 128-bit-lane AND counterpart of VPXORQ128.
func VPANDQ128(a, b, r *Vec64x2) {
	for i := range *r {
		r[i] = a[i] & b[i]
	}
}
