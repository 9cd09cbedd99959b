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

package mercsig_test

import (
	"bytes"
	"io"
	mrand "math/rand"
	"testing"

	"github.com/drand/kyber"
	bls12381 "github.com/drand/kyber-bls12381"
	"github.com/drand/kyber/util/random"

	"github.com/go-mercurial/mercsig"
)

type randPRNG mrand.Rand

func (prng *randPRNG) Read(p []byte) (n int, err error) {
	n = len(p)
	r := (*mrand.Rand)(prng)
	var x int64
	for i := 0; i < n; i++ {
		if i%7 == 0 {
			x = r.Int63()
		}
		p[i] = byte(x & 0xFF)
		x >>= 8
	}
	return
}

func newRandPRNG(seed int64) io.Reader { return (*randPRNG)(mrand.New(mrand.NewSource(seed))) }

func testExportable(t *testing.T, name string, data mercsig.Exportable, importer func(io.Reader) (mercsig.Exportable, error)) {
	t.Helper()
	buf := new(bytes.Buffer)

	n, err := data.WriteTo(buf)
	if err != nil {
		t.Errorf("failed to export %s: %v", name, err)
		return
	}
	dataBytes := append([]byte(nil), buf.Bytes()...)
	if n != int64(len(dataBytes)) {
		t.Errorf("export size mismatch for %s: reported %d, got %d", name, n, len(dataBytes))
	}
	data2, err := importer(bytes.NewReader(dataBytes))
	if err != nil {
		t.Errorf("failed to import %s: %v", name, err)
		return
	}
	buf2 := new(bytes.Buffer)
	data2.WriteTo(buf2)
	if !bytes.Equal(buf2.Bytes(), dataBytes) {
		t.Errorf("loading %s produced different export", name)
	}
	if !bytes.Equal(data2.Bytes(), dataBytes) {
		t.Errorf("%s returned different bytes than it wrote", name)
	}
}

// setup returns fresh public parameters, a key pair of the given length,
// a random message of matching length, and a valid signature on it.
func setup(t *testing.T, rng io.Reader, length int) (*mercsig.PublicParameters, *mercsig.PublicKey, *mercsig.SecretKey, *mercsig.Message, *mercsig.Signature) {
	t.Helper()
	curve := bls12381.NewBLS12381Suite()
	pp := mercsig.New(rng, curve)
	pk, sk, err := pp.KeyGen(rng, length)
	if err != nil {
		t.Fatalf("KeyGen: %v", err)
	}
	message, err := pp.RandomMessage(rng, length)
	if err != nil {
		t.Fatalf("RandomMessage: %v", err)
	}
	sig, err := sk.Sign(rng, pp, message)
	if err != nil {
		t.Fatalf("Sign: %v", err)
	}
	return pp, pk, sk, message, sig
}

// P1: correctness.
func TestSignVerifyRoundTrip(t *testing.T) {
	for _, length := range []int{1, 2, 5} {
		rng := newRandPRNG(int64(length))
		pp, pk, _, message, sig := setup(t, rng, length)
		if !pk.Verify(pp, message, sig) {
			t.Errorf("length %d: freshly signed message did not verify", length)
		}
	}
}

// P5: tampering with the message invalidates the signature.
func TestTamperedMessageFailsVerification(t *testing.T) {
	rng := newRandPRNG(100)
	pp, pk, _, _, sig := setup(t, rng, 3)

	other, err := pp.RandomMessage(rng, 3)
	if err != nil {
		t.Fatalf("RandomMessage: %v", err)
	}
	if pk.Verify(pp, other, sig) {
		t.Error("signature verified against an unrelated message")
	}
}

// P6: a signature made under one key does not verify under another.
func TestCrossKeyForgeryFails(t *testing.T) {
	rng := newRandPRNG(101)
	pp, _, _, message, sig := setup(t, rng, 3)

	otherPk, _, err := pp.KeyGen(rng, 3)
	if err != nil {
		t.Fatalf("KeyGen: %v", err)
	}
	if otherPk.Verify(pp, message, sig) {
		t.Error("signature verified under an unrelated public key")
	}
}

// P7: length mismatches are rejected rather than silently truncated/padded.
func TestLengthMismatchErrors(t *testing.T) {
	rng := newRandPRNG(102)
	pp, _, sk, _, _ := setup(t, rng, 3)

	shortMessage, err := pp.RandomMessage(rng, 2)
	if err != nil {
		t.Fatalf("RandomMessage: %v", err)
	}
	if _, err := sk.Sign(rng, pp, shortMessage); err != mercsig.ErrLengthMismatch {
		t.Errorf("Sign with mismatched length: have %v, want ErrLengthMismatch", err)
	}

	if _, _, err := pp.KeyGen(rng, 0); err != mercsig.ErrLengthMismatch {
		t.Errorf("KeyGen with length 0: have %v, want ErrLengthMismatch", err)
	}
}

// P4 / P2: converting the key pair and re-randomizing the signature
// preserves verification against the same message.
func TestKeyConvertPreservesVerification(t *testing.T) {
	rng := newRandPRNG(103)
	pp, pk, sk, message, sig := setup(t, rng, 4)

	rho := nonzeroTestScalar(pp, rng)
	if err := sk.Convert(pp.Curve, rho); err != nil {
		t.Fatalf("SecretKey.Convert: %v", err)
	}
	if err := pk.Convert(pp.Curve, rho); err != nil {
		t.Fatalf("PublicKey.Convert: %v", err)
	}
	if err := sig.Convert(rng, pp.Curve, rho); err != nil {
		t.Fatalf("Signature.Convert: %v", err)
	}

	if !pk.Verify(pp, message, sig) {
		t.Error("converted signature does not verify against the converted key")
	}

	// The re-randomized secret key can sign fresh messages too.
	newMessage, err := pp.RandomMessage(rng, 4)
	if err != nil {
		t.Fatalf("RandomMessage: %v", err)
	}
	newSig, err := sk.Sign(rng, pp, newMessage)
	if err != nil {
		t.Fatalf("Sign with converted key: %v", err)
	}
	if !pk.Verify(pp, newMessage, newSig) {
		t.Error("signature from converted secret key does not verify under converted public key")
	}
}

// P3: changing the message's representation preserves verification
// against the same (possibly already-converted) key.
func TestChangeRepresentationPreservesVerification(t *testing.T) {
	rng := newRandPRNG(104)
	pp, pk, _, message, sig := setup(t, rng, 3)

	mu := nonzeroTestScalar(pp, rng)
	if err := mercsig.ChangeRepresentation(rng, pp.Curve, message, sig, mu); err != nil {
		t.Fatalf("ChangeRepresentation: %v", err)
	}
	if !pk.Verify(pp, message, sig) {
		t.Error("signature does not verify after changing message representation")
	}
}

// Both transformations composed: converting the key and changing the
// message representation at once still verifies.
func TestKeyConvertAndChangeRepresentationCompose(t *testing.T) {
	rng := newRandPRNG(105)
	pp, pk, sk, message, sig := setup(t, rng, 3)

	rho := nonzeroTestScalar(pp, rng)
	if err := sk.Convert(pp.Curve, rho); err != nil {
		t.Fatalf("SecretKey.Convert: %v", err)
	}
	if err := pk.Convert(pp.Curve, rho); err != nil {
		t.Fatalf("PublicKey.Convert: %v", err)
	}
	if err := sig.Convert(rng, pp.Curve, rho); err != nil {
		t.Fatalf("Signature.Convert: %v", err)
	}

	mu := nonzeroTestScalar(pp, rng)
	if err := mercsig.ChangeRepresentation(rng, pp.Curve, message, sig, mu); err != nil {
		t.Fatalf("ChangeRepresentation: %v", err)
	}

	if !pk.Verify(pp, message, sig) {
		t.Error("signature does not verify after both key conversion and representation change")
	}
}

// P8: the identity element is forbidden in message positions.
func TestIdentityMessageElementRejected(t *testing.T) {
	rng := newRandPRNG(106)
	pp, _, sk, message, _ := setup(t, rng, 2)

	curve := pp.Curve
	message.Points[0] = curve.G1().Point().Null()
	if _, err := sk.Sign(rng, pp, message); err != mercsig.ErrIdentityElement {
		t.Errorf("Sign with identity message element: have %v, want ErrIdentityElement", err)
	}
}

func TestZeroScalarRejectedByConvertAndChangeRepresentation(t *testing.T) {
	rng := newRandPRNG(107)
	pp, pk, sk, message, sig := setup(t, rng, 2)

	zero := pp.Curve.G1().Scalar().Zero()
	if err := pk.Convert(pp.Curve, zero); err != mercsig.ErrZeroScalar {
		t.Errorf("PublicKey.Convert with zero rho: have %v, want ErrZeroScalar", err)
	}
	if err := sk.Convert(pp.Curve, zero); err != mercsig.ErrZeroScalar {
		t.Errorf("SecretKey.Convert with zero rho: have %v, want ErrZeroScalar", err)
	}
	if err := sig.Convert(rng, pp.Curve, zero); err != mercsig.ErrZeroScalar {
		t.Errorf("Signature.Convert with zero rho: have %v, want ErrZeroScalar", err)
	}
	if err := mercsig.ChangeRepresentation(rng, pp.Curve, message, sig, zero); err != mercsig.ErrZeroScalar {
		t.Errorf("ChangeRepresentation with zero mu: have %v, want ErrZeroScalar", err)
	}
}

func TestExportImport(t *testing.T) {
	rng := newRandPRNG(108)
	pp, pk, sk, message, sig := setup(t, rng, 3)
	curve := pp.Curve

	testExportable(t, "public parameters", pp, func(r io.Reader) (mercsig.Exportable, error) { return mercsig.Load(r, curve) })
	testExportable(t, "public key", pk, func(r io.Reader) (mercsig.Exportable, error) { return mercsig.LoadPublicKey(r, curve) })
	testExportable(t, "secret key", sk, func(r io.Reader) (mercsig.Exportable, error) { return mercsig.LoadSecretKey(r, curve) })
	testExportable(t, "message", message, func(r io.Reader) (mercsig.Exportable, error) { return mercsig.LoadMessage(r, curve) })

	// Signature itself has no exported Load function (it is never
	// transmitted without its message and key context in this package),
	// so round-trip it through its own fields directly instead.
	buf := new(bytes.Buffer)
	for _, p := range []kyber.Point{sig.Z, sig.Y, sig.Yhat} {
		if _, err := p.MarshalTo(buf); err != nil {
			t.Fatalf("marshal signature component: %v", err)
		}
	}
	z, y, yhat := curve.G1().Point(), curve.G1().Point(), curve.G2().Point()
	for _, p := range []kyber.Point{z, y, yhat} {
		if _, err := p.UnmarshalFrom(buf); err != nil {
			t.Fatalf("unmarshal signature component: %v", err)
		}
	}
	if !z.Equal(sig.Z) || !y.Equal(sig.Y) || !yhat.Equal(sig.Yhat) {
		t.Error("signature components changed in a marshal round trip")
	}
}

// nonzeroTestScalar samples a nonzero scalar for use as a rho/mu
// randomizer in tests, resampling on the zero outcome.
func nonzeroTestScalar(pp *mercsig.PublicParameters, rng io.Reader) kyber.Scalar {
	group := pp.Curve.G1()
	zero := group.Scalar().Zero()
	for {
		s := group.Scalar().Pick(random.New())
		if !s.Equal(zero) {
			return s
		}
	}
}
