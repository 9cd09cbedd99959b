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

// SecretKey is the ordered vector x = (x_1, ..., x_l) in Fr^l produced by
// KeyGen. It is private, and is mutated in place only by Convert.
type SecretKey struct {
	X []kyber.Scalar
}

// PublicKey is the ordered vector Xhat = (Xhat_1, ..., Xhat_l) in G2^l
// with Xhat_i = x_i*Phat, produced by KeyGen alongside the matching
// SecretKey. It is mutated in place only by Convert.
type PublicKey struct {
	Xhat []kyber.Point
}

// Length returns l, the number of scalar/point slots in the key.
func (sk *SecretKey) Length() int { return len(sk.X) }

// Length returns l, the number of scalar/point slots in the key.
func (pk *PublicKey) Length() int { return len(pk.Xhat) }

// KeyGen samples a fresh secret key of the given length (l >= 1) and
// derives the matching public key. Every x_i is resampled until nonzero,
// per spec: a zero component would trivially reveal that slot through the
// pairing even though it does not break correctness.
func (pp *PublicParameters) KeyGen(rng io.Reader, length int) (*PublicKey, *SecretKey, error) {
	if length < 1 {
		return nil, nil, ErrLengthMismatch
	}
	stream := scalarStream(rng)
	x := make([]kyber.Scalar, length)
	xhat := make([]kyber.Point, length)
	for i := range x {
		x[i] = nonzeroScalar(pp.Curve.G1(), stream)
		xhat[i] = pp.Curve.G2().Point().Mul(x[i], pp.Phat)
	}
	return &PublicKey{Xhat: xhat}, &SecretKey{X: x}, nil
}

func (sk *SecretKey) WriteTo(w io.Writer) (int64, error) {
	var total int64
	n, err := serial.WriteLen(w, len(sk.X))
	total += n
	if err != nil {
		return total, err
	}
	for _, xi := range sk.X {
		n, err = serial.WriteElement(w, xi)
		total += n
		if err != nil {
			return total, err
		}
	}
	return total, nil
}

func (sk *SecretKey) Bytes() []byte { return serial.ConvertToBytes(sk) }

// LoadSecretKey restores a secret key previously written by WriteTo.
func LoadSecretKey(r io.Reader, curve Curve) (*SecretKey, error) {
	n, err := serial.ReadLen(r)
	if err != nil {
		return nil, err
	}
	x := make([]kyber.Scalar, n)
	for i := range x {
		x[i] = curve.G1().Scalar()
		if _, err := serial.ReadElement(r, x[i]); err != nil {
			return nil, err
		}
	}
	return &SecretKey{X: x}, nil
}

func (pk *PublicKey) WriteTo(w io.Writer) (int64, error) {
	var total int64
	n, err := serial.WriteLen(w, len(pk.Xhat))
	total += n
	if err != nil {
		return total, err
	}
	for _, xi := range pk.Xhat {
		n, err = serial.WriteElement(w, xi)
		total += n
		if err != nil {
			return total, err
		}
	}
	return total, nil
}

func (pk *PublicKey) Bytes() []byte { return serial.ConvertToBytes(pk) }

// LoadPublicKey restores a public key previously written by WriteTo.
func LoadPublicKey(r io.Reader, curve Curve) (*PublicKey, error) {
	n, err := serial.ReadLen(r)
	if err != nil {
		return nil, err
	}
	xhat := make([]kyber.Point, n)
	for i := range xhat {
		xhat[i] = curve.G2().Point()
		if _, err := serial.ReadElement(r, xhat[i]); err != nil {
			return nil, err
		}
	}
	return &PublicKey{Xhat: xhat}, nil
}
