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
	"crypto/cipher"
	"io"

	"github.com/drand/kyber"

	"github.com/go-mercurial/mercsig/internal/randstream"
)

// Curve names the groups G1, G2, GT, the scalar field Fr (shared by G1 and
// G2 on a pairing-friendly curve), and the pairing e : G1 x G2 -> GT that
// the scheme is built over. Any asymmetric pairing of prime order can
// satisfy this interface; the default instantiation is BLS12-381, wired up
// through github.com/drand/kyber-bls12381's pairing.Suite, which already
// implements every method below.
type Curve interface {
	// G1 returns the first source group.
	G1() kyber.Group
	// G2 returns the second source group.
	G2() kyber.Group
	// GT returns the target group.
	GT() kyber.Group
	// Pair evaluates the bilinear pairing e(p1, p2), where p1 is a point of
	// G1 and p2 is a point of G2.
	Pair(p1, p2 kyber.Point) kyber.Point
}

// Exportable is implemented by every entity that has a canonical byte
// encoding, delegated to the curve library's compressed point and scalar
// encodings.
type Exportable interface {
	io.WriterTo
	Bytes() []byte
}

// scalarStream adapts an io.Reader supplied by a caller into the
// cipher.Stream that kyber's Pick methods expect. See internal/randstream
// for the adapter itself.
func scalarStream(rng io.Reader) cipher.Stream {
	return randstream.New(rng)
}
