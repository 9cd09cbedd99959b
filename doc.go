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

/*
Package mercsig implements mercurial signatures: a pairing-based signature
scheme in which a signature on a vector message, under a public key, can be
jointly randomized so that the message, the public key, and the signature
are each replaced by equivalence-class representatives that are mutually
unlinkable to the originals, while verification continues to hold.
Mercurial signatures were introduced by Crites and Lysyanskaya in
"Delegatable Anonymous Credentials from Mercurial Signatures" (2018), where
they serve as the primitive underlying delegatable anonymous credentials.

Overview

The scheme operates over an asymmetric pairing e : G1 x G2 -> GT of prime
order r, with scalar field Fr and fixed generators P in G1, Phat in G2. The
protocol has four phases:

	pp            := New(rng, curve)
	pk, sk, err    = pp.KeyGen(rng, length)
	sig, err       = sk.Sign(rng, pp, message)
	ok             = pk.Verify(pp, message, sig)

A key pair and a signature can then be moved to new, unlinkable
representatives of the same equivalence class without invalidating the
signature:

	err := pk.Convert(curve, rho)                             // new key representative
	err  = sk.Convert(curve, rho)                              // only needed to sign again under the new key
	err  = sig.Convert(rng, curve, rho)                         // re-randomize the signature to match
	err  = ChangeRepresentation(rng, curve, message, sig, mu)   // new message representative

Equivalence Classes

Two messages M, M' are equivalent iff there is a nonzero scalar mu with
M' = mu*M; two public keys Xhat, Xhat' are equivalent iff there is a
nonzero scalar rho with Xhat' = rho*Xhat. Converting a key, or changing a
message's representation, produces a new class member that is
computationally indistinguishable from an independently sampled one: an
observer who sees only the new representative cannot link it back to the
one it replaced. This unlinkability is the entire point of the scheme, not
an accident of its algebra — consumers who need conventional,
non-malleable signatures must bind a context tag into the message vector
themselves.

Curve Abstraction

The scheme is written against the Curve interface (a thin subset of
github.com/drand/kyber's pairing.Suite: G1, G2, GT, and Pair) rather than
against a specific curve, so it can be re-targeted to any prime-order
asymmetric pairing. The default, and only instantiation wired up here, is
BLS12-381 via github.com/drand/kyber-bls12381:

	curve := bls12381.NewBLS12381Suite()
	pp := mercsig.New(rng, curve)

Security Properties

  - Correctness: a signature produced by Sign always verifies against the
    message and public key it was produced for.
  - Class-hiding: after ChangeRepresentation or Convert with a uniformly
    random nonzero scalar, the new message/key/signature triple is
    distributed as if freshly sampled from its equivalence class.
  - Unforgeability is assumed from the security of mercurial signatures
    under the curve's bilinear pairing assumptions; this package does not
    attempt to reprove it.

This package does not implement key management, wire protocols, threshold
or distributed key generation, signature aggregation, or any delegatable
credential built atop the primitive. See the sibling package varmsg for
the one extension (variable-length messages) kept in scope.

License

This package is free software: you can redistribute it and/or modify it
under the terms of the GNU Lesser General Public License as published by
the Free Software Foundation, either version 3 of the License, or (at your
option) any later version.
*/
package mercsig
