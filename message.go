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

// Message is the ordered vector M = (M_1, ..., M_l) in (G1 \ {O})^l that
// a Signature is produced for. The identity element is forbidden in every
// position: it would collapse the message's equivalence class. Message is
// mutated in place only by ChangeRepresentation.
type Message struct {
	Points []kyber.Point
}

// NewMessage wraps an existing slice of G1 points as a Message without
// copying it. The caller is responsible for ensuring none of the points
// is the group identity; Sign and Verify both reject such vectors.
func NewMessage(points []kyber.Point) *Message {
	return &Message{Points: points}
}

// Length returns l, the number of elements in the message vector.
func (m *Message) Length() int { return len(m.Points) }

func containsIdentity(curve Curve, points []kyber.Point) bool {
	null := curve.G1().Point().Null()
	for _, p := range points {
		if p.Equal(null) {
			return true
		}
	}
	return false
}

func (m *Message) WriteTo(w io.Writer) (int64, error) {
	var total int64
	n, err := serial.WriteLen(w, len(m.Points))
	total += n
	if err != nil {
		return total, err
	}
	for _, p := range m.Points {
		n, err = serial.WriteElement(w, p)
		total += n
		if err != nil {
			return total, err
		}
	}
	return total, nil
}

func (m *Message) Bytes() []byte { return serial.ConvertToBytes(m) }

// LoadMessage restores a message previously written by WriteTo.
func LoadMessage(r io.Reader, curve Curve) (*Message, error) {
	n, err := serial.ReadLen(r)
	if err != nil {
		return nil, err
	}
	points := make([]kyber.Point, n)
	for i := range points {
		points[i] = curve.G1().Point()
		if _, err := serial.ReadElement(r, points[i]); err != nil {
			return nil, err
		}
	}
	return &Message{Points: points}, nil
}
