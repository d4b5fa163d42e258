// SPDX-License-Identifier: ISC
// Copyright (c) 2018-2026 GODcoin Developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package script - spending scripts and their identifying hashes
//
// A wallet is identified by the hash of its spending script.  Script
// execution itself lives in the external engine; this package only
// carries the byte form, the digest type and the error shape that the
// engine reports through.
package script

import (
	"bytes"

	"github.com/mr-tron/base58"
	"golang.org/x/crypto/sha3"

	"github.com/GODcoin/godcoin-go/fault"
)

// Script - a spending script as raw bytes
type Script []byte

// HashLength - number of bytes in a script hash
const HashLength = 32

// Hash - SHA3-256 digest of a script, used as a wallet identifier
//
// value type with byte-wise equality, never mutated
type Hash [HashLength]byte

// NewHash - digest a script
func NewHash(s Script) Hash {
	return Hash(sha3.Sum256(s))
}

// Hash - the hash identifying this script
func (s Script) Hash() Hash {
	return NewHash(s)
}

// HashFromBytes - wrap raw digest bytes, length checked
func HashFromBytes(buffer []byte) (Hash, error) {
	var hash Hash
	if HashLength != len(buffer) {
		return hash, fault.ErrInvalidDigestLength
	}
	copy(hash[:], buffer)
	return hash, nil
}

// Bytes - the digest as a byte slice
func (hash Hash) Bytes() []byte {
	return hash[:]
}

// String - displayable form: base58(digest + checksum)
func (hash Hash) String() string {
	checksum := sha3.Sum256(hash[:])
	payload := make([]byte, 0, HashLength+checksumLength)
	payload = append(payload, hash[:]...)
	payload = append(payload, checksum[:checksumLength]...)
	return base58.Encode(payload)
}

const checksumLength = 4

// HashFromString - reverse of String, verifying the checksum
func HashFromString(s string) (Hash, error) {
	var hash Hash
	decoded, err := base58.Decode(s)
	if nil != err {
		return hash, fault.ErrCannotDecodeHash
	}
	if HashLength+checksumLength != len(decoded) {
		return hash, fault.ErrInvalidDigestLength
	}
	checksum := sha3.Sum256(decoded[:HashLength])
	if !bytes.Equal(checksum[:checksumLength], decoded[HashLength:]) {
		return hash, fault.ErrChecksumMismatch
	}
	copy(hash[:], decoded[:HashLength])
	return hash, nil
}

// MarshalText - convert a hash into JSON
func (hash Hash) MarshalText() ([]byte, error) {
	return []byte(hash.String()), nil
}

// UnmarshalText - convert a hash string from JSON
func (hash *Hash) UnmarshalText(s []byte) error {
	h, err := HashFromString(string(s))
	if nil != err {
		return err
	}
	*hash = h
	return nil
}
