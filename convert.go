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

// Convert moves pk to an equivalent public key representing the same
// equivalence class: Xhat_i <- rho*Xhat_i for every i. rho must be
// nonzero; rho = 0 would collapse the key to the identity, which is
// trivially detectable and therefore forbidden rather than silently
// produced.
//
// Convert alone is enough for a party that only ever verifies, or that
// re-randomizes an existing signature to match. A party that must sign
// new messages under the converted key also needs SecretKey.Convert with
// the same rho.
func (pk *PublicKey) Convert(curve Curve, rho kyber.Scalar) error {
	if isZeroScalar(curve.G2(), rho) {
		return ErrZeroScalar
	}
	for i, xhat := range pk.Xhat {
		pk.Xhat[i] = curve.G2().Point().Mul(rho, xhat)
	}
	return nil
}

// Convert moves sk to the secret key matching the public key produced by
// PublicKey.Convert with the same rho: x_i <- rho*x_i for every i.
func (sk *SecretKey) Convert(curve Curve, rho kyber.Scalar) error {
	if isZeroScalar(curve.G1(), rho) {
		return ErrZeroScalar
	}
	for i, xi := range sk.X {
		sk.X[i] = curve.G1().Scalar().Mul(rho, xi)
	}
	return nil
}

// Convert re-randomizes sig so that it verifies against a public key
// previously moved by PublicKey.Convert with the same rho, while
// remaining valid on the same message.
//
// A fresh scalar psi couples the update: Z <- psi*rho*Z, Y <- psi^-1*Y,
// Yhat <- psi^-1*Yhat. Without psi, Z would scale by rho alone while
// (Y, Yhat) stayed untouched, making the converted signature trivially
// linkable to the one it replaced; psi re-randomizes (Y, Yhat) while
// keeping the triple internally consistent.
func (sig *Signature) Convert(rng io.Reader, curve Curve, rho kyber.Scalar) error {
	if isZeroScalar(curve.G1(), rho) {
		return ErrZeroScalar
	}
	g1 := curve.G1()
	stream := scalarStream(rng)
	psi := nonzeroScalar(g1, stream)
	psiInv := g1.Scalar().Inv(psi)

	rhoPsi := g1.Scalar().Mul(psi, rho)
	sig.Z = g1.Point().Mul(rhoPsi, sig.Z)
	sig.Y = g1.Point().Mul(psiInv, sig.Y)
	sig.Yhat = curve.G2().Point().Mul(psiInv, sig.Yhat)
	return nil
}
