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

// VarSignature is a signature on a variable-length Message: the glue
// element h used to build the signed tuples, plus one fixed-length
// signature per tuple.
type VarSignature struct {
	H    kyber.Point
	Sigs []*mercsig.Signature
}

// Convert re-randomizes sig to match a public key moved by
// PublicKey.Convert with the same rho, composing ChangeRepresentation
// (which handles the message side, under mu) with a per-tuple
// Signature.Convert(rho).
func (sig *VarSignature) Convert(rng io.Reader, curve mercsig.Curve, message *Message, rho, mu kyber.Scalar) error {
	if err := ChangeRepresentation(rng, curve, message, sig, mu); err != nil {
		return err
	}
	for _, s := range sig.Sigs {
		if err := s.Convert(rng, curve, rho); err != nil {
			return err
		}
	}
	return nil
}

func (sig *VarSignature) WriteTo(w io.Writer) (int64, error) {
	var total int64
	n, err := serial.WriteElement(w, sig.H)
	total += n
	if err != nil {
		return total, err
	}
	n, err = serial.WriteLen(w, len(sig.Sigs))
	total += n
	if err != nil {
		return total, err
	}
	for _, s := range sig.Sigs {
		n, err = serial.WriteElement(w, s.Z)
		total += n
		if err != nil {
			return total, err
		}
		n, err = serial.WriteElement(w, s.Y)
		total += n
		if err != nil {
			return total, err
		}
		n, err = serial.WriteElement(w, s.Yhat)
		total += n
		if err != nil {
			return total, err
		}
	}
	return total, nil
}

func (sig *VarSignature) Bytes() []byte { return serial.ConvertToBytes(sig) }

// LoadVarSignature restores a signature previously written by WriteTo.
func LoadVarSignature(r io.Reader, curve mercsig.Curve) (*VarSignature, error) {
	h := curve.G1().Point()
	if _, err := serial.ReadElement(r, h); err != nil {
		return nil, err
	}
	n, err := serial.ReadLen(r)
	if err != nil {
		return nil, err
	}
	sigs := make([]*mercsig.Signature, n)
	for i := range sigs {
		z := curve.G1().Point()
		if _, err := serial.ReadElement(r, z); err != nil {
			return nil, err
		}
		y := curve.G1().Point()
		if _, err := serial.ReadElement(r, y); err != nil {
			return nil, err
		}
		yhat := curve.G2().Point()
		if _, err := serial.ReadElement(r, yhat); err != nil {
			return nil, err
		}
		sigs[i] = &mercsig.Signature{Z: z, Y: y, Yhat: yhat}
	}
	return &VarSignature{H: h, Sigs: sigs}, nil
}
