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
	"crypto/rand"
	"fmt"

	bls12381 "github.com/drand/kyber-bls12381"
	"github.com/drand/kyber/util/random"

	"github.com/go-mercurial/mercsig"
)

func Example() {
	curve := bls12381.NewBLS12381Suite()

	// Every participant shares the same public parameters. In the real
	// world these would be generated once and distributed using
	// pp.WriteTo and then loaded by the clients using mercsig.Load.
	pp := mercsig.New(rand.Reader, curve)

	// Alice generates a key pair for signing two-element messages.
	alicePub, aliceSec, _ := pp.KeyGen(rand.Reader, 2)

	message, _ := pp.RandomMessage(rand.Reader, 2)

	sig, _ := aliceSec.Sign(rand.Reader, pp, message)

	if alicePub.Verify(pp, message, sig) {
		fmt.Println("signature verifies")
	}

	// Alice moves her key pair, and the signature, to fresh unlinkable
	// representatives of the same equivalence class. Anyone who only sees
	// alicePub after this point cannot connect it back to the key above,
	// yet the signature still verifies, against the same message.
	rho := curve.G1().Scalar().Pick(random.New())
	_ = aliceSec.Convert(curve, rho)
	_ = alicePub.Convert(curve, rho)
	_ = sig.Convert(rand.Reader, curve, rho)

	if alicePub.Verify(pp, message, sig) {
		fmt.Println("converted signature still verifies")
	}

	// Output:
	// signature verifies
	// converted signature still verifies
}
