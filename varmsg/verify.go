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

import "github.com/go-mercurial/mercsig"

// Verify rebuilds the same 5-element tuples that Sign would have built
// for message under sig's glue element H, and checks every per-tuple
// signature against pk's embedded base key. It never inspects x, y1, y2
// and does not check that H was computed from message the way Sign
// computes it: tuples built with whatever H the signer signed under
// verify. An H changed after signing produces tuples that fail the
// embedded Verify, exactly as if the message itself had been tampered
// with.
func (pk *PublicKey) Verify(pp *mercsig.PublicParameters, message *Message, sig *VarSignature) bool {
	if len(sig.Sigs) != message.Length() {
		return false
	}
	tuples := message.toTuples(pp.Curve, sig.H)
	for i, tuple := range tuples {
		if !pk.Base.Verify(pp, tuple, sig.Sigs[i]) {
			return false
		}
	}
	return true
}
