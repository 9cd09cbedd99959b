// Copyright © 2026 The Mercsig Authors
//
// This file is part of mercsig.
//
// Mercsig is free software: you can redistribute it and/or modify it under
// the terms of the GNU Lesser General Public License as published by the
// Free Software Foundation, either version 3 of the License, or (at your
// option) any later version.
//
// Mercsig is distributed in the hope that it will be useful, but WITHOUT ANY
// WARRANTY; without even the implied warranty of MERCHANTABILITY or FITNESS
// FOR A PARTICULAR PURPOSE. See the GNU Lesser General Public License for
// more details.
//
// You should have received a copy of the GNU Lesser General Public License
// along with mercsig. If not, see <http://www.gnu.org/licenses/>.

package varmsg

import (
	"io"

	"github.com/drand/kyber"

	"github.com/go-mercurial/mercsig"
)

// ChangeRepresentation moves message and sig to a new, unlinkable
// representative under mu: it rebuilds the tuples against the
// pre-update glue element H, runs the embedded ChangeRepresentation
// over each per-tuple signature (which mutates each tuple's copy of the
// message in place purely to drive its own internal signature math;
// that mutated tuple is discarded), and only then scales G, every U_i,
// and H by mu.
func ChangeRepresentation(rng io.Reader, curve mercsig.Curve, message *Message, sig *VarSignature, mu kyber.Scalar) error {
	h := sig.H
	tuples := message.toTuples(curve, h)
	for i, tuple := range tuples {
		if err := mercsig.ChangeRepresentation(rng, curve, tuple, sig.Sigs[i], mu); err != nil {
			return err
		}
	}

	g1 := curve.G1()
	message.G = g1.Point().Mul(mu, message.G)
	for i, u := range message.U {
		message.U[i] = g1.Point().Mul(mu, u)
	}
	sig.H = g1.Point().Mul(mu, h)
	return nil
}
