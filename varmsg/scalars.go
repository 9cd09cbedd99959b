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
	"crypto/cipher"
	"io"

	"github.com/drand/kyber"

	"github.com/go-mercurial/mercsig/internal/randstream"
)

func kyberStream(rng io.Reader) cipher.Stream {
	return randstream.New(rng)
}

func nonzero(group kyber.Group, stream cipher.Stream) kyber.Scalar {
	zero := group.Scalar().Zero()
	for {
		s := group.Scalar().Pick(stream)
		if !s.Equal(zero) {
			return s
		}
	}
}

func isZero(group kyber.Group, s kyber.Scalar) bool {
	return s.Equal(group.Scalar().Zero())
}
