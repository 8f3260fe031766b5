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

// Package mpc lifts the gf2 bit-matrix primitives to replicated 3-party
// secret sharings, and implements the ZKBoo AND gate in both its 3-share
// proof form and its 2-share-plus-committed-view verify form.
package mpc

import "github.com/rachelsunqh/fish-begol/gf2"

// ErrDimensionMismatch is returned when shares, randomness, or view rows
// passed to a lifted operation do not share a common shape.
var ErrDimensionMismatch = gf2.ErrDimensionMismatch

// ErrContractViolation is returned for caller-side protocol violations:
// an add_const party argument outside {0, 3}.
var ErrContractViolation = gf2.ErrContractViolation
