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

	"github.com/go-mercurial/mercsig/internal/serial"
)

// PublicParameters holds the curve instantiation and the two fixed
// generators P (in G1) and Phat (in G2) that every key, message, and
// signature in a protocol instance is defined relative to. It carries no
// secrets and can be shared freely; it is immutable after construction.
type PublicParameters struct {
	Curve Curve
	P     kyber.Point // generator of G1
	Phat  kyber.Point // generator of G2
}

// New constructs a fresh set of public parameters over curve, sampling P
// and Phat from rng. Every later operation that needs public parameters
// takes the same *PublicParameters, so all participants of a protocol
// instance must share the value returned here.
func New(rng io.Reader, curve Curve) *PublicParameters {
	stream := scalarStream(rng)
	return &PublicParameters{
		Curve: curve,
		P:     curve.G1().Point().Pick(stream),
		Phat:  curve.G2().Point().Pick(stream),
	}
}

// RandomMessage samples a length-element vector of uniformly random,
// non-identity points in G1. It exists for tests and for callers that
// need to exercise the scheme against synthetic data; ordinary signers
// supply their own application-specific message vector to Sign.
func (pp *PublicParameters) RandomMessage(rng io.Reader, length int) (*Message, error) {
	if length < 1 {
		return nil, ErrLengthMismatch
	}
	stream := scalarStream(rng)
	points := make([]kyber.Point, length)
	for i := range points {
		p := pp.Curve.G1().Point()
		for {
			p.Pick(stream)
			if !p.Equal(pp.Curve.G1().Point().Null()) {
				break
			}
		}
		points[i] = p
	}
	return &Message{Points: points}, nil
}

func (pp *PublicParameters) WriteTo(w io.Writer) (int64, error) {
	var total int64
	n, err := serial.WriteElement(w, pp.P)
	total += n
	if err != nil {
		return total, err
	}
	n, err = serial.WriteElement(w, pp.Phat)
	total += n
	return total, err
}

func (pp *PublicParameters) Bytes() []byte { return serial.ConvertToBytes(pp) }

// Load restores public parameters previously written by WriteTo, against
// the given curve.
func Load(r io.Reader, curve Curve) (*PublicParameters, error) {
	p := curve.G1().Point()
	if _, err := serial.ReadElement(r, p); err != nil {
		return nil, err
	}
	phat := curve.G2().Point()
	if _, err := serial.ReadElement(r, phat); err != nil {
		return nil, err
	}
	return &PublicParameters{Curve: curve, P: p, Phat: phat}, nil
}
