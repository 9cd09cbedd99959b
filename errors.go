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

import "errors"

var (
	// ErrLengthMismatch is returned when two vectors of incompatible length
	// are supplied to the same operation (e.g. a message shorter than the
	// key it is signed or verified against).
	ErrLengthMismatch = errors.New("mercsig: vector length mismatch")

	// ErrIdentityElement is returned by Sign when a message position is the
	// group identity. Verify reports an identity message position, Y, or
	// Yhat by returning false rather than this error.
	ErrIdentityElement = errors.New("mercsig: group identity element where a nonzero element is required")

	// ErrZeroScalar is returned when rho, mu, or a caller-supplied
	// randomizer is the zero scalar.
	ErrZeroScalar = errors.New("mercsig: zero scalar where a nonzero scalar is required")
)
