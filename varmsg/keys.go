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

// tupleLength is the fixed width of every per-tuple signature this
// extension produces: [G, (i+1)*G, n*G, h, U_i].
const tupleLength = 5

// SecretKey is a length-5 mercsig secret key plus five extra scalars
// that commit to three hidden values needed to compute the glue element
// h at signing time: a message-folding exponent x, and a two-part glue
// exponent (y1, y2). X7 = X6*x, X9 = X8*y1, X10 = X8*y2; X6 and X8 are
// independent nonzero blinding scalars. The commitment lets Sign recover
// x, y1, y2 as ratios without the secret key ever storing them as plain
// fields, matching the committed-scalar shape the rest of the scheme
// uses for X in the length-5 base key.
type SecretKey struct {
	Base *mercsig.SecretKey
	X6   kyber.Scalar
	X7   kyber.Scalar
	X8   kyber.Scalar
	X9   kyber.Scalar
	X10  kyber.Scalar
}

// PublicKey is the P-hat images of a SecretKey's ten scalars: the
// embedded base public key plus BX6..BX10.
type PublicKey struct {
	Base *mercsig.PublicKey
	BX6  kyber.Point
	BX7  kyber.Point
	BX8  kyber.Point
	BX9  kyber.Point
	BX10 kyber.Point
}

// KeyGenEx samples a fresh extension key pair: a length-5 base key pair
// plus the five committed scalars described on SecretKey.
func KeyGenEx(rng io.Reader, pp *mercsig.PublicParameters) (*PublicKey, *SecretKey, error) {
	basePk, baseSk, err := pp.KeyGen(rng, tupleLength)
	if err != nil {
		return nil, nil, err
	}

	g1 := pp.Curve.G1()
	stream := kyberStream(rng)
	x := nonzero(g1, stream)
	y1 := nonzero(g1, stream)
	y2 := nonzero(g1, stream)
	x6 := nonzero(g1, stream)
	x8 := nonzero(g1, stream)

	x7 := g1.Scalar().Mul(x6, x)
	x9 := g1.Scalar().Mul(x8, y1)
	x10 := g1.Scalar().Mul(x8, y2)

	g2 := pp.Curve.G2()
	point := func(s kyber.Scalar) kyber.Point { return g2.Point().Mul(s, pp.Phat) }

	sk := &SecretKey{Base: baseSk, X6: x6, X7: x7, X8: x8, X9: x9, X10: x10}
	pk := &PublicKey{
		Base: basePk,
		BX6:  point(x6),
		BX7:  point(x7),
		BX8:  point(x8),
		BX9:  point(x9),
		BX10: point(x10),
	}
	return pk, sk, nil
}

// Convert moves sk to an equivalent secret key under rho, matching
// PublicKey.Convert with the same rho: every committed scalar scales by
// rho, and the embedded base key converts the same way.
func (sk *SecretKey) Convert(curve mercsig.Curve, rho kyber.Scalar) error {
	if err := sk.Base.Convert(curve, rho); err != nil {
		return err
	}
	g1 := curve.G1()
	sk.X6 = g1.Scalar().Mul(rho, sk.X6)
	sk.X7 = g1.Scalar().Mul(rho, sk.X7)
	sk.X8 = g1.Scalar().Mul(rho, sk.X8)
	sk.X9 = g1.Scalar().Mul(rho, sk.X9)
	sk.X10 = g1.Scalar().Mul(rho, sk.X10)
	return nil
}

// Convert moves pk to an equivalent public key under rho: every
// committed point scales by rho, and the embedded base key converts the
// same way.
func (pk *PublicKey) Convert(curve mercsig.Curve, rho kyber.Scalar) error {
	if err := pk.Base.Convert(curve, rho); err != nil {
		return err
	}
	g2 := curve.G2()
	pk.BX6 = g2.Point().Mul(rho, pk.BX6)
	pk.BX7 = g2.Point().Mul(rho, pk.BX7)
	pk.BX8 = g2.Point().Mul(rho, pk.BX8)
	pk.BX9 = g2.Point().Mul(rho, pk.BX9)
	pk.BX10 = g2.Point().Mul(rho, pk.BX10)
	return nil
}

func (sk *SecretKey) WriteTo(w io.Writer) (int64, error) {
	var total int64
	n, err := sk.Base.WriteTo(w)
	total += n
	if err != nil {
		return total, err
	}
	for _, s := range []kyber.Scalar{sk.X6, sk.X7, sk.X8, sk.X9, sk.X10} {
		n, err = serial.WriteElement(w, s)
		total += n
		if err != nil {
			return total, err
		}
	}
	return total, nil
}

func (sk *SecretKey) Bytes() []byte { return serial.ConvertToBytes(sk) }

// LoadSecretKey restores a secret key previously written by WriteTo.
func LoadSecretKey(r io.Reader, curve mercsig.Curve) (*SecretKey, error) {
	base, err := mercsig.LoadSecretKey(r, curve)
	if err != nil {
		return nil, err
	}
	scalars := make([]kyber.Scalar, 5)
	for i := range scalars {
		scalars[i] = curve.G1().Scalar()
		if _, err := serial.ReadElement(r, scalars[i]); err != nil {
			return nil, err
		}
	}
	return &SecretKey{Base: base, X6: scalars[0], X7: scalars[1], X8: scalars[2], X9: scalars[3], X10: scalars[4]}, nil
}

func (pk *PublicKey) WriteTo(w io.Writer) (int64, error) {
	var total int64
	n, err := pk.Base.WriteTo(w)
	total += n
	if err != nil {
		return total, err
	}
	for _, p := range []kyber.Point{pk.BX6, pk.BX7, pk.BX8, pk.BX9, pk.BX10} {
		n, err = serial.WriteElement(w, p)
		total += n
		if err != nil {
			return total, err
		}
	}
	return total, nil
}

func (pk *PublicKey) Bytes() []byte { return serial.ConvertToBytes(pk) }

// LoadPublicKey restores a public key previously written by WriteTo.
func LoadPublicKey(r io.Reader, curve mercsig.Curve) (*PublicKey, error) {
	base, err := mercsig.LoadPublicKey(r, curve)
	if err != nil {
		return nil, err
	}
	points := make([]kyber.Point, 5)
	for i := range points {
		points[i] = curve.G2().Point()
		if _, err := serial.ReadElement(r, points[i]); err != nil {
			return nil, err
		}
	}
	return &PublicKey{Base: base, BX6: points[0], BX7: points[1], BX8: points[2], BX9: points[3], BX10: points[4]}, nil
}
