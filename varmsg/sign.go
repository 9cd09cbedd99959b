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

	"github.com/go-mercurial/mercsig"
)

// Sign produces a signature on a variable-length message. It first
// recovers the three values committed to by sk's five extra scalars
// (x = X7/X6, y1 = X9/X8, y2 = X10/X8), computes the glue element
//
//	h = sum_{i=0}^{n-1} U_i * x^i * (y1*y2)
//
// and then signs each of message's n 5-element tuples with the embedded
// fixed-length secret key.
//
// TODO: the signer is trusted here to have computed h honestly from x,
// y1, y2; the zero-knowledge proof that would let a receiver check this
// without learning x, y1, y2 is not implemented (it belongs to a
// higher-level credential-issuance protocol built atop this primitive,
// not to the signature scheme itself).
func (sk *SecretKey) Sign(rng io.Reader, pp *mercsig.PublicParameters, message *Message) (*VarSignature, error) {
	g1 := pp.Curve.G1()

	x := g1.Scalar().Div(sk.X7, sk.X6)
	y1 := g1.Scalar().Div(sk.X9, sk.X8)
	y2 := g1.Scalar().Div(sk.X10, sk.X8)
	y := g1.Scalar().Mul(y1, y2)

	h := g1.Point().Null()
	xi := g1.Scalar().One()
	for i, u := range message.U {
		if i > 0 {
			xi = g1.Scalar().Mul(xi, x)
		}
		exp := g1.Scalar().Mul(xi, y)
		h = g1.Point().Add(h, g1.Point().Mul(exp, u))
	}

	tuples := message.toTuples(pp.Curve, h)
	sigs := make([]*mercsig.Signature, len(tuples))
	for i, m := range tuples {
		sig, err := sk.Base.Sign(rng, pp, m)
		if err != nil {
			return nil, err
		}
		sigs[i] = sig
	}
	return &VarSignature{H: h, Sigs: sigs}, nil
}
