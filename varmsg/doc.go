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
Package varmsg extends mercsig to messages whose length is not fixed when
the key pair is generated. A variable-length message is folded into a
fixed number of 5-element tuples, bound together by a single "glue"
element so that the tuples cannot be permuted or partially replayed, and
each tuple is then signed with the ordinary fixed-length scheme from the
parent package.

A var key pair embeds a length-5 mercsig key pair plus five extra
scalars/points that commit to the three values (a message-folding
exponent and a two-part glue exponent) the signer needs to compute the
glue element without exposing them directly in the public key:

	pk, sk, err := varmsg.KeyGenEx(rng, pp)
	msg         := varmsg.NewMessage(curve, g, scalars)
	sig, err    := sk.Sign(rng, pp, msg)
	ok          := pk.Verify(pp, msg, sig)

Key and signature conversion, and message representation change, mirror
the parent package's operations, composed over every per-tuple
signature plus the shared glue and folding elements.

This package does not implement the zero-knowledge proof that a signer
computed the glue element honestly; see Sign for where that gap is.
*/
package varmsg
