// SPDX-License-Identifier: ISC
// Copyright (c) 2018-2026 GODcoin Developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package account - ed25519 keys and signatures
//
// Holds the public key, signature and key pair value types used to
// sign and verify transactions.  Keys have a displayable base58 text
// form carrying a network prefix and a 4 byte SHA3-256 checksum; the
// wire form is always the raw fixed-length key bytes.
package account

import (
	"bytes"

	"github.com/mr-tron/base58"
	"golang.org/x/crypto/ed25519"
	"golang.org/x/crypto/sha3"

	"github.com/GODcoin/godcoin-go/fault"
)

// key and signature sizes, fixed by ed25519
const (
	PublicKeySize = ed25519.PublicKeySize
	SignatureSize = ed25519.SignatureSize
)

// miscellaneous constants
const (
	checksumLength  = 4
	publicKeyPrefix = "GOD"
)

// PublicKey - raw ed25519 public key, byte-wise equality
type PublicKey [PublicKeySize]byte

// Signature - raw ed25519 signature
type Signature [SignatureSize]byte

// SignaturePair - one signer's contribution to a transaction
type SignaturePair struct {
	PublicKey PublicKey `json:"publicKey"`
	Signature Signature `json:"signature"`
}

// PublicKeyFromBytes - wrap raw key bytes, length checked
func PublicKeyFromBytes(buffer []byte) (PublicKey, error) {
	var key PublicKey
	if PublicKeySize != len(buffer) {
		return key, fault.ErrInvalidKeyLength
	}
	copy(key[:], buffer)
	return key, nil
}

// SignatureFromBytes - wrap raw signature bytes, length checked
func SignatureFromBytes(buffer []byte) (Signature, error) {
	var signature Signature
	if SignatureSize != len(buffer) {
		return signature, fault.ErrInvalidSignatureLength
	}
	copy(signature[:], buffer)
	return signature, nil
}

// Bytes - the raw key as a byte slice
func (key PublicKey) Bytes() []byte {
	return key[:]
}

// Verify - check a signature over a message made by this key
func (key PublicKey) Verify(message []byte, signature Signature) bool {
	return ed25519.Verify(ed25519.PublicKey(key[:]), message, signature[:])
}

// String - displayable form: prefix + base58(key bytes + checksum)
func (key PublicKey) String() string {
	checksum := sha3.Sum256(key[:])
	payload := make([]byte, 0, PublicKeySize+checksumLength)
	payload = append(payload, key[:]...)
	payload = append(payload, checksum[:checksumLength]...)
	return publicKeyPrefix + base58.Encode(payload)
}

// PublicKeyFromString - reverse of String, verifying the checksum
func PublicKeyFromString(s string) (PublicKey, error) {
	var key PublicKey
	if len(s) <= len(publicKeyPrefix) || publicKeyPrefix != s[:len(publicKeyPrefix)] {
		return key, fault.ErrNotPublicKey
	}
	decoded, err := base58.Decode(s[len(publicKeyPrefix):])
	if nil != err {
		return key, fault.ErrCannotDecodePublicKey
	}
	if PublicKeySize+checksumLength != len(decoded) {
		return key, fault.ErrInvalidKeyLength
	}
	checksum := sha3.Sum256(decoded[:PublicKeySize])
	if !bytes.Equal(checksum[:checksumLength], decoded[PublicKeySize:]) {
		return key, fault.ErrChecksumMismatch
	}
	copy(key[:], decoded[:PublicKeySize])
	return key, nil
}

// MarshalText - convert a key into JSON
func (key PublicKey) MarshalText() ([]byte, error) {
	return []byte(key.String()), nil
}

// UnmarshalText - convert a key string from JSON
func (key *PublicKey) UnmarshalText(s []byte) error {
	k, err := PublicKeyFromString(string(s))
	if nil != err {
		return err
	}
	*key = k
	return nil
}
