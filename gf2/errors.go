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

import "errors"

// ErrDimensionMismatch is returned when an argument's row/column count
// does not satisfy a primitive's dimensional precondition.
var ErrDimensionMismatch = errors.New("gf2: dimension mismatch")

// ErrAllocationFailure names the aligned-allocator failure kind. No
// function in this package returns it: allocation goes through make,
// which panics rather than returning an error when memory runs out.
var ErrAllocationFailure = errors.New("gf2: allocation failure")

// ErrContractViolation is returned when a caller breaks a non-dimensional
// precondition: freeing a block that was never allocated through this
// package (or freeing it twice), or a shift amount outside [0, 64).
var ErrContractViolation = errors.New("gf2: contract violation")
