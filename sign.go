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

package mercsig

import (
	"io"

	"github.com/drand/kyber"
)

// Signature is the triple (Z, Y, Yhat) in G1 x G1 x G2 produced by Sign.
// It is mutated in place by Convert and by ChangeRepresentation; the
// invariant maintained across every exit from this package is that
// Verify, called against the current message and public key, returns
// true.
type Signature struct {
	Z    kyber.Point // G1
	Y    kyber.Point // G1
	Yhat kyber.Point // G2
}

// Sign produces a signature on message under sk. len(message.Points) must
// equal len(sk.X), and no message element may be the identity.
//
// The scalar y sampled here couples the three output components: Y and
// Yhat commit to the same y^-1 across G1 and G2 (checked by verification
// equation E2), and Z is bound to both the secret key and the message
// through y.
func (sk *SecretKey) Sign(rng io.Reader, pp *PublicParameters, message *Message) (*Signature, error) {
	l := len(sk.X)
	if len(message.Points) != l {
		return nil, ErrLengthMismatch
	}
	if containsIdentity(pp.Curve, message.Points) {
		return nil, ErrIdentityElement
	}

	g1 := pp.Curve.G1()
	stream := scalarStream(rng)
	y := nonzeroScalar(g1, stream)
	yInv := g1.Scalar().Inv(y)

	sigY := g1.Point().Mul(yInv, pp.P)
	sigYhat := pp.Curve.G2().Point().Mul(yInv, pp.Phat)

	sum := g1.Point().Null()
	term := g1.Point()
	for i, xi := range sk.X {
		term.Mul(xi, message.Points[i])
		sum.Add(sum, term)
	}
	z := g1.Point().Mul(y, sum)

	return &Signature{Z: z, Y: sigY, Yhat: sigYhat}, nil
}
