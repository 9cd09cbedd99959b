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

// ChangeRepresentation jointly scales message and sig by mu, in place, so
// that the new message is mu*M and sig remains valid against it under the
// same (possibly already-converted) public key. mu must be nonzero.
//
// A fresh scalar psi re-randomizes (Y, Yhat) the same way Signature.Convert
// does, for the same reason: without it, (Y, Yhat) would pass through
// unchanged, making the post-update signature trivially linkable to the
// pre-update one.
// Signature conversion (rho on the key) and representation change (mu on
// the message) are two faces of the same general randomizer (rho, mu,
// psi); they are exposed as separate operations so a caller can move the
// key's representative, the message's representative, or both,
// independently.
func ChangeRepresentation(rng io.Reader, curve Curve, message *Message, sig *Signature, mu kyber.Scalar) error {
	g1 := curve.G1()
	if isZeroScalar(g1, mu) {
		return ErrZeroScalar
	}
	stream := scalarStream(rng)
	psi := nonzeroScalar(g1, stream)
	psiInv := g1.Scalar().Inv(psi)

	for i, m := range message.Points {
		message.Points[i] = g1.Point().Mul(mu, m)
	}

	muPsi := g1.Scalar().Mul(psi, mu)
	sig.Z = g1.Point().Mul(muPsi, sig.Z)
	sig.Y = g1.Point().Mul(psiInv, sig.Y)
	sig.Yhat = curve.G2().Point().Mul(psiInv, sig.Yhat)
	return nil
}
