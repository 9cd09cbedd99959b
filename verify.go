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

// Verify checks both pairing equations that bind sig to message and pk.
// It is a total boolean predicate: a malformed signature, a length
// mismatch, or a forbidden identity element all make it return false
// rather than raising an error, so callers never need to special-case a
// rejected signature versus a rejected input.
//
//	E1: prod_i e(M_i, Xhat_i) == e(Z, Yhat)
//	E2: e(Y, Phat) == e(P, Yhat)
func (pk *PublicKey) Verify(pp *PublicParameters, message *Message, sig *Signature) bool {
	if len(message.Points) != len(pk.Xhat) {
		return false
	}
	if containsIdentity(pp.Curve, message.Points) {
		return false
	}
	g1Null := pp.Curve.G1().Point().Null()
	g2Null := pp.Curve.G2().Point().Null()
	if sig.Y.Equal(g1Null) || sig.Yhat.Equal(g2Null) {
		return false
	}

	// E2: e(Y, Phat) == e(P, Yhat)
	lhs2 := pp.Curve.Pair(sig.Y, pp.Phat)
	rhs2 := pp.Curve.Pair(pp.P, sig.Yhat)
	if !lhs2.Equal(rhs2) {
		return false
	}

	// E1: prod_i e(M_i, Xhat_i) == e(Z, Yhat)
	left := pp.Curve.GT().Point().Null()
	for i, m := range message.Points {
		left.Add(left, pp.Curve.Pair(m, pk.Xhat[i]))
	}
	right := pp.Curve.Pair(sig.Z, sig.Yhat)
	return left.Equal(right)
}
