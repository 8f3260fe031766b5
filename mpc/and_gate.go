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

import (
	"fmt"

	"github.com/rachelsunqh/fish-begol/gf2"
)

// MPCAndProof evaluates one ZKBoo AND gate in proof mode (all three
// simulated parties): for x, y share triples and a fresh-randomness
// triple r,
//
//	z[m] = (x[m] & y[m]) ^ (x[j] & y[m]) ^ (x[m] & y[j]) ^ r[m] ^ r[j]
//
// with j = (m+1) mod 3. All three z[m] are computed before any view
// update, since the view update aliases memory some callers read
// subsequently. viewshift is the bit offset within the current
// transcript row this gate's output occupies; buf is scratch shared
// across the three per-party computations (may be nil, in which case a
// fresh one is allocated and freed before return).
func MPCAndProof(res, x, y, r *ShareVector, view *View, viewshift uint, buf *ShareVector) (*ShareVector, error) {
	if err := x.sameShape(y); err != nil {
		return nil, err
	}
	if err := x.sameShape(r); err != nil {
		return nil, err
	}
	res, err := prepareShareOutput(res, x.cols())
	if err != nil {
		return nil, err
	}
	if buf == nil {
		buf, err = AllocShareVector(x.cols())
		if err != nil {
			return nil, err
		}
		defer buf.Free()
	} else if err := x.sameShape(buf); err != nil {
		return nil, err
	}

	// Pass 1: compute every z[m] into buf before touching the view.
	for m := 0; m < 3; m++ {
		j := (m + 1) % 3
		acc := buf.Shares[m]
		if _, err := gf2.AND(acc, x.Shares[m], y.Shares[m]); err != nil {
			return nil, err
		}
		t, err := gf2.AND(nil, x.Shares[j], y.Shares[m])
		if err != nil {
			return nil, err
		}
		_, err = gf2.XOR(acc, acc, t)
		t.Free()
		if err != nil {
			return nil, err
		}
		t, err = gf2.AND(nil, x.Shares[m], y.Shares[j])
		if err != nil {
			return nil, err
		}
		_, err = gf2.XOR(acc, acc, t)
		t.Free()
		if err != nil {
			return nil, err
		}
		if _, err := gf2.XOR(acc, acc, r.Shares[m]); err != nil {
			return nil, err
		}
		if _, err := gf2.XOR(acc, acc, r.Shares[j]); err != nil {
			return nil, err
		}
	}

	// Pass 2: commit every z[m] into its party's view row, then copy out.
	for m := 0; m < 3; m++ {
		shifted, err := gf2.SHR(nil, buf.Shares[m], viewshift)
		if err != nil {
			return nil, err
		}
		_, err = gf2.XOR(view.S[m], view.S[m], shifted)
		shifted.Free()
		if err != nil {
			return nil, err
		}
		if err := gf2.Copy(&res.Shares[m].BitMatrix, &buf.Shares[m].BitMatrix); err != nil {
			return nil, err
		}
	}
	return res, nil
}

// MPCAndVerify recomputes one ZKBoo AND gate in verify mode: the
// verifier holds shares 0 and 1 of a two-party opening (x, y, r all
// index 0/1 only; index 2 is unused) and the view row the prover
// committed in view.S[1]. It recomputes
//
//	z[0] = (x[0] & y[0]) ^ (x[1] & y[0]) ^ (x[0] & y[1]) ^ r[0] ^ r[1]
//	view.S[0] ^= SHR(z[0], viewshift)
//
// and recovers the missing share from the committed view:
//
//	z[1] = SHL(view.S[1], viewshift) & mask
//
// res.Shares[0] holds the recomputed z[0], res.Shares[1] the recovered
// z[1]; res.Shares[2] is left untouched. Equality of the recomputed
// z[0]/view.S[0] against a prover's transcript is checked by the caller,
// not by this function.
func MPCAndVerify(res, x, y, r *ShareVector, view *View, mask *gf2.BitBlock, viewshift uint, buf *ShareVector) (*ShareVector, error) {
	if x.cols() != y.cols() || x.cols() != r.cols() {
		return nil, fmt.Errorf("mpc: verify width mismatch: %w", ErrDimensionMismatch)
	}
	res, err := prepareShareOutput(res, x.cols())
	if err != nil {
		return nil, err
	}
	if buf == nil {
		buf, err = AllocShareVector(x.cols())
		if err != nil {
			return nil, err
		}
		defer buf.Free()
	}

	acc := buf.Shares[0]
	if _, err := gf2.AND(acc, x.Shares[0], y.Shares[0]); err != nil {
		return nil, err
	}
	t, err := gf2.AND(nil, x.Shares[1], y.Shares[0])
	if err != nil {
		return nil, err
	}
	_, err = gf2.XOR(acc, acc, t)
	t.Free()
	if err != nil {
		return nil, err
	}
	t, err = gf2.AND(nil, x.Shares[0], y.Shares[1])
	if err != nil {
		return nil, err
	}
	_, err = gf2.XOR(acc, acc, t)
	t.Free()
	if err != nil {
		return nil, err
	}
	if _, err := gf2.XOR(acc, acc, r.Shares[0]); err != nil {
		return nil, err
	}
	if _, err := gf2.XOR(acc, acc, r.Shares[1]); err != nil {
		return nil, err
	}

	shifted, err := gf2.SHR(nil, acc, viewshift)
	if err != nil {
		return nil, err
	}
	_, err = gf2.XOR(view.S[0], view.S[0], shifted)
	shifted.Free()
	if err != nil {
		return nil, err
	}
	if err := gf2.Copy(&res.Shares[0].BitMatrix, &buf.Shares[0].BitMatrix); err != nil {
		return nil, err
	}

	recovered, err := gf2.SHL(nil, view.S[1], viewshift)
	if err != nil {
		return nil, err
	}
	_, err = gf2.AND(recovered, recovered, mask)
	if err != nil {
		recovered.Free()
		return nil, err
	}
	if err := gf2.Copy(&res.Shares[1].BitMatrix, &recovered.BitMatrix); err != nil {
		recovered.Free()
		return nil, err
	}
	recovered.Free()
	return res, nil
}
