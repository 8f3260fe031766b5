// Copyright 2023 Sneller, Inc.
//
//  Licensed under the Apache License, Version 2.0 (the "License");
//  you may not use this file except in compliance with the License.
//  You may obtain a copy of the License at
//
//    http://www.apache.org/licenses/LICENSE-2.0
//
//  Unless required by applicable law or agreed to in writing, software
//  distributed under the License is distributed on an "AS IS" BASIS,
//  WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
//  See the License for the specific language governing permissions and
//  limitations under the License.

// Package simd provides fixed-width lane types and the kernels gf2
// dispatches its 128-bit- and 256-bit-tier primitives to.
package simd

import "fmt"

// Vec64x2 models a 128-bit (SSE2/XMM-width) lane of two 64-bit words.
type Vec64x2 [2]uint64

// Vec64x4 models a 256-bit (AVX2/YMM-width) lane of four 64-bit words.
type Vec64x4 [4]uint64

func (v Vec64x2) String() string {
	return fmt.Sprintf("{%016x, %016x}", v[1], v[0])
}

func (v Vec64x4) String() string {
	return fmt.Sprintf("{%016x, %016x, %016x, %016x}", v[3], v[2], v[1], v[0])
}
