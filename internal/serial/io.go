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

// Package serial provides the small framing helpers shared by every
// Exportable type's WriteTo/Load pair: a uint32 vector-length prefix
// followed by one curve element per slot. The element codec itself is
// never hand-rolled here — it is delegated to kyber.Marshaling
// (MarshalTo/UnmarshalFrom), the curve library's own canonical compressed
// encoding.
package serial

import (
	"encoding/binary"
	"io"

	"github.com/drand/kyber"
)

// ConvertToBytes runs wt.WriteTo against a fresh buffer and returns the
// result, for Exportable.Bytes implementations.
func ConvertToBytes(wt io.WriterTo) []byte {
	buf := new(bufferWriter)
	wt.WriteTo(buf)
	return buf.b
}

type bufferWriter struct{ b []byte }

func (w *bufferWriter) Write(p []byte) (int, error) {
	w.b = append(w.b, p...)
	return len(p), nil
}

// WriteLen writes a vector length prefix.
func WriteLen(w io.Writer, n int) (int64, error) {
	var buf [4]byte
	binary.BigEndian.PutUint32(buf[:], uint32(n))
	written, err := w.Write(buf[:])
	return int64(written), err
}

// ReadLen reads a vector length prefix written by WriteLen.
func ReadLen(r io.Reader) (int, error) {
	var buf [4]byte
	if _, err := io.ReadFull(r, buf[:]); err != nil {
		return 0, err
	}
	return int(binary.BigEndian.Uint32(buf[:])), nil
}

// WriteElement writes a single curve element using its own canonical
// encoding.
func WriteElement(w io.Writer, e kyber.Marshaling) (int64, error) {
	n, err := e.MarshalTo(w)
	return int64(n), err
}

// ReadElement decodes a single curve element of the given kind (produced
// by, e.g., group.Point() or group.Scalar()) from r into e.
func ReadElement(r io.Reader, e kyber.Marshaling) (int64, error) {
	n, err := e.UnmarshalFrom(r)
	return int64(n), err
}
