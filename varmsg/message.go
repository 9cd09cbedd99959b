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

	"github.com/drand/kyber"

	"github.com/go-mercurial/mercsig"
	"github.com/go-mercurial/mercsig/internal/serial"
)

// Message is a variable-length message: a hidden generator G together
// with U = (U_1, ..., U_n) in G1^n, U_i = scalar_i*G. The scalars
// themselves are never retained once U is built; only the points travel
// with the message.
type Message struct {
	G kyber.Point
	U []kyber.Point
}

// NewMessage builds a Message from a generator g and a vector of scalar
// message components, computing U_i = scalars[i]*g.
func NewMessage(curve mercsig.Curve, g kyber.Point, scalars []kyber.Scalar) *Message {
	u := make([]kyber.Point, len(scalars))
	for i, s := range scalars {
		u[i] = curve.G1().Point().Mul(s, g)
	}
	return &Message{G: g, U: u}
}

// Length returns n, the number of message components (excluding G).
func (m *Message) Length() int { return len(m.U) }

// Randomize scales G and every U_i by w, in place. It lets a signer run a
// blind-signing-style protocol: the receiver randomizes its own message
// before sending it for signing, and un-randomizes the resulting
// signature itself.
func (m *Message) Randomize(curve mercsig.Curve, w kyber.Scalar) {
	g1 := curve.G1()
	m.G = g1.Point().Mul(w, m.G)
	for i, u := range m.U {
		m.U[i] = g1.Point().Mul(w, u)
	}
}

// toTuples builds, for i = 0..n-1, the 5-element fixed-length tuple
// [G, (i+1)*G, n*G, h, U_i] that the embedded fixed-length scheme signs.
// Binding every tuple to the same G, to n*G, and to the shared glue
// element h prevents a verifier from accepting a subset of tuples, a
// reordering of tuples, or tuples from two different messages mixed
// together.
func (m *Message) toTuples(curve mercsig.Curve, h kyber.Point) []*mercsig.Message {
	g1 := curve.G1()
	n := len(m.U)
	gs := make([]kyber.Point, n)
	gi := g1.Point().Null()
	for i := 0; i < n; i++ {
		gi = g1.Point().Add(gi, m.G)
		gs[i] = g1.Point().Set(gi)
	}
	gn := gs[n-1]

	tuples := make([]*mercsig.Message, n)
	for i := 0; i < n; i++ {
		tuples[i] = mercsig.NewMessage([]kyber.Point{m.G, gs[i], gn, h, m.U[i]})
	}
	return tuples
}

func (m *Message) WriteTo(w io.Writer) (int64, error) {
	var total int64
	n, err := serial.WriteElement(w, m.G)
	total += n
	if err != nil {
		return total, err
	}
	n, err = serial.WriteLen(w, len(m.U))
	total += n
	if err != nil {
		return total, err
	}
	for _, u := range m.U {
		n, err = serial.WriteElement(w, u)
		total += n
		if err != nil {
			return total, err
		}
	}
	return total, nil
}

func (m *Message) Bytes() []byte { return serial.ConvertToBytes(m) }

// LoadMessage restores a message previously written by WriteTo.
func LoadMessage(r io.Reader, curve mercsig.Curve) (*Message, error) {
	g := curve.G1().Point()
	if _, err := serial.ReadElement(r, g); err != nil {
		return nil, err
	}
	n, err := serial.ReadLen(r)
	if err != nil {
		return nil, err
	}
	u := make([]kyber.Point, n)
	for i := range u {
		u[i] = curve.G1().Point()
		if _, err := serial.ReadElement(r, u[i]); err != nil {
			return nil, err
		}
	}
	return &Message{G: g, U: u}, nil
}
