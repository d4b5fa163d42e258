// SPDX-License-Identifier: ISC
// Copyright (c) 2018-2026 GODcoin Developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package util - canonical binary encoding primitives
//
// An ordered write/read cursor over a growable byte buffer.  All
// multi-byte integers are big endian, blobs and strings are prefixed
// by a Varint64 length.  Field order is fixed by the caller; the
// cursor never pads or aligns.
package util

import (
	"encoding/binary"
	"math/big"

	"github.com/GODcoin/godcoin-go/fault"
)

// Writer - append-only encoder producing canonical bytes
type Writer struct {
	buffer []byte
}

// NewWriter - create an empty writer
func NewWriter() *Writer {
	return &Writer{
		buffer: make([]byte, 0, 256),
	}
}

// Bytes - the encoded bytes written so far
func (w *Writer) Bytes() []byte {
	return w.buffer
}

// WriteUint8 - append a single byte
func (w *Writer) WriteUint8(value uint8) {
	w.buffer = append(w.buffer, value)
}

// WriteUint16 - append a fixed 2 byte big endian integer
func (w *Writer) WriteUint16(value uint16) {
	var b [2]byte
	binary.BigEndian.PutUint16(b[:], value)
	w.buffer = append(w.buffer, b[:]...)
}

// WriteUint32 - append a fixed 4 byte big endian integer
func (w *Writer) WriteUint32(value uint32) {
	var b [4]byte
	binary.BigEndian.PutUint32(b[:], value)
	w.buffer = append(w.buffer, b[:]...)
}

// WriteUint64 - append a fixed 8 byte big endian integer
func (w *Writer) WriteUint64(value uint64) {
	var b [8]byte
	binary.BigEndian.PutUint64(b[:], value)
	w.buffer = append(w.buffer, b[:]...)
}

// WriteVarint64 - append a Varint64
func (w *Writer) WriteVarint64(value uint64) {
	w.buffer = append(w.buffer, ToVarint64(value)...)
}

// WriteRaw - append bytes of a fixed-width field, no length prefix
func (w *Writer) WriteRaw(data []byte) {
	w.buffer = append(w.buffer, data...)
}

// WriteBytes - append a Varint64 length prefixed blob
func (w *Writer) WriteBytes(data []byte) {
	w.WriteVarint64(uint64(len(data)))
	w.buffer = append(w.buffer, data...)
}

// WriteString - append a Varint64 length prefixed string
func (w *Writer) WriteString(s string) {
	w.WriteVarint64(uint64(len(s)))
	w.buffer = append(w.buffer, s...)
}

// WriteBigInt - append an arbitrary-precision signed integer
//
// encoded as: sign byte (0x00 for zero or positive, 0x01 for
// negative), Varint64 byte count, minimal big endian magnitude.
// zero is sign 0x00 with an empty magnitude
func (w *Writer) WriteBigInt(value *big.Int) {
	if value.Sign() < 0 {
		w.WriteUint8(0x01)
	} else {
		w.WriteUint8(0x00)
	}
	magnitude := value.Bytes() // minimal, empty for zero
	w.WriteBytes(magnitude)
}

// Reader - ordered cursor over a byte slice
//
// every read either consumes the exact field or fails with a decode
// error leaving the caller to discard the whole input
type Reader struct {
	buffer   []byte
	position int
}

// NewReader - create a cursor at the start of buffer
func NewReader(buffer []byte) *Reader {
	return &Reader{
		buffer: buffer,
	}
}

// Position - number of bytes consumed so far
func (r *Reader) Position() int {
	return r.position
}

// Remaining - number of unread bytes
func (r *Reader) Remaining() int {
	return len(r.buffer) - r.position
}

// ReadUint8 - consume a single byte
func (r *Reader) ReadUint8() (uint8, error) {
	if r.Remaining() < 1 {
		return 0, fault.ErrBufferUnderrun
	}
	value := r.buffer[r.position]
	r.position += 1
	return value, nil
}

// ReadUint16 - consume a fixed 2 byte big endian integer
func (r *Reader) ReadUint16() (uint16, error) {
	if r.Remaining() < 2 {
		return 0, fault.ErrBufferUnderrun
	}
	value := binary.BigEndian.Uint16(r.buffer[r.position:])
	r.position += 2
	return value, nil
}

// ReadUint32 - consume a fixed 4 byte big endian integer
func (r *Reader) ReadUint32() (uint32, error) {
	if r.Remaining() < 4 {
		return 0, fault.ErrBufferUnderrun
	}
	value := binary.BigEndian.Uint32(r.buffer[r.position:])
	r.position += 4
	return value, nil
}

// ReadUint64 - consume a fixed 8 byte big endian integer
func (r *Reader) ReadUint64() (uint64, error) {
	if r.Remaining() < 8 {
		return 0, fault.ErrBufferUnderrun
	}
	value := binary.BigEndian.Uint64(r.buffer[r.position:])
	r.position += 8
	return value, nil
}

// ReadVarint64 - consume a Varint64
func (r *Reader) ReadVarint64() (uint64, error) {
	value, count := FromVarint64(r.buffer[r.position:])
	if 0 == count {
		return 0, fault.ErrBufferUnderrun
	}
	r.position += count
	return value, nil
}

// ReadRaw - consume a fixed-width field of exactly n bytes
func (r *Reader) ReadRaw(n int) ([]byte, error) {
	if r.Remaining() < n {
		return nil, fault.ErrBufferUnderrun
	}
	data := make([]byte, n)
	copy(data, r.buffer[r.position:])
	r.position += n
	return data, nil
}

// ReadBytes - consume a Varint64 length prefixed blob
//
// maximum bounds the declared length to stop a corrupt prefix from
// forcing a huge allocation
func (r *Reader) ReadBytes(maximum int) ([]byte, error) {
	length, err := r.ReadVarint64()
	if nil != err {
		return nil, err
	}
	if length > uint64(maximum) {
		return nil, fault.ErrFieldTooLong
	}
	return r.ReadRaw(int(length))
}

// ReadString - consume a Varint64 length prefixed string
func (r *Reader) ReadString(maximum int) (string, error) {
	data, err := r.ReadBytes(maximum)
	if nil != err {
		return "", err
	}
	return string(data), nil
}

// maximum bytes in a big integer magnitude, far above anything the
// asset significant-digit ceiling can produce
const maximumBigIntBytes = 64

// ReadBigInt - consume an arbitrary-precision signed integer
//
// rejects every non-canonical form: unknown sign byte, magnitude with
// a leading zero byte, negative zero
func (r *Reader) ReadBigInt() (*big.Int, error) {
	sign, err := r.ReadUint8()
	if nil != err {
		return nil, err
	}
	if sign > 0x01 {
		return nil, fault.ErrNotCanonicalNumber
	}
	magnitude, err := r.ReadBytes(maximumBigIntBytes)
	if nil != err {
		return nil, err
	}
	if 0 != len(magnitude) && 0 == magnitude[0] {
		return nil, fault.ErrNotCanonicalNumber
	}
	if 0 == len(magnitude) && 0x01 == sign {
		return nil, fault.ErrNotCanonicalNumber
	}
	value := new(big.Int).SetBytes(magnitude)
	if 0x01 == sign {
		value.Neg(value)
	}
	return value, nil
}
