// SPDX-License-Identifier: ISC
// Copyright (c) 2018-2026 GODcoin Developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package account

import (
	"crypto/rand"

	"golang.org/x/crypto/ed25519"

	"github.com/GODcoin/godcoin-go/fault"
)

// SeedSize - bytes of entropy behind a key pair
const SeedSize = ed25519.SeedSize

// KeyPair - a public key with its private signing key
type KeyPair struct {
	PublicKey  PublicKey
	PrivateKey ed25519.PrivateKey
}

// NewKeyPair - generate a key pair from secure random data
func NewKeyPair() (*KeyPair, error) {
	publicKey, privateKey, err := ed25519.GenerateKey(rand.Reader)
	if nil != err {
		return nil, err
	}
	key, err := PublicKeyFromBytes(publicKey)
	if nil != err {
		return nil, err
	}
	return &KeyPair{
		PublicKey:  key,
		PrivateKey: privateKey,
	}, nil
}

// KeyPairFromSeed - deterministic key pair from a 32 byte seed
func KeyPairFromSeed(seed []byte) (*KeyPair, error) {
	if SeedSize != len(seed) {
		return nil, fault.ErrInvalidKeyLength
	}
	privateKey := ed25519.NewKeyFromSeed(seed)
	key, err := PublicKeyFromBytes(privateKey.Public().(ed25519.PublicKey))
	if nil != err {
		return nil, err
	}
	return &KeyPair{
		PublicKey:  key,
		PrivateKey: privateKey,
	}, nil
}

// Sign - sign a message, returning the key and signature as a pair
func (pair *KeyPair) Sign(message []byte) SignaturePair {
	var signature Signature
	copy(signature[:], ed25519.Sign(pair.PrivateKey, message))
	return SignaturePair{
		PublicKey: pair.PublicKey,
		Signature: signature,
	}
}
