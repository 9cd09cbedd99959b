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

// Package randstream adapts an io.Reader into the crypto/cipher.Stream
// that github.com/drand/kyber's Pick methods require, so that callers of
// mercsig can keep supplying the stdlib's io.Reader as their entropy
// source (e.g. crypto/rand.Reader, or a deterministic reader in tests).
package randstream

import (
	"io"
)

type reader struct {
	r io.Reader
}

// New wraps rng as a cipher.Stream. Every call to XORKeyStream reads
// len(src) fresh bytes from rng and XORs them into dst; rng must never be
// reused concurrently with the returned stream.
func New(rng io.Reader) *reader {
	return &reader{r: rng}
}

func (s *reader) XORKeyStream(dst, src []byte) {
	key := make([]byte, len(src))
	if _, err := io.ReadFull(s.r, key); err != nil {
		panic(err)
	}
	for i := range src {
		dst[i] = src[i] ^ key[i]
	}
}
