// SPDX-License-Identifier: ISC
// Copyright (c) 2018-2026 GODcoin Developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package transactionrecord

import (
	"github.com/GODcoin/godcoin-go/account"
	"github.com/GODcoin/godcoin-go/fault"
	"github.com/GODcoin/godcoin-go/util"
)

// Pack - serialize a transaction into its canonical byte form
//
// layout: 2 byte version tag, 1 byte type tag, 8 byte timestamp,
// fee, variant payload, then - only when includeSignatures - 1 byte
// signature count followed by that many (public key, signature)
// pairs.  With includeSignatures false this is the unsigned form,
// the exact payload each signer signs, and it is identical no matter
// how many signatures the record currently holds
func Pack(tx Transaction, includeSignatures bool) (Packed, error) {
	if nil == tx {
		return nil, fault.ErrNotTransactionPack
	}

	data := tx.Data()
	if 0 != data.Timestamp&timestampSignBit {
		return nil, fault.ErrInvalidTimestamp
	}

	w := util.NewWriter()
	w.WriteUint16(Version)
	w.WriteUint8(uint8(tx.TxType()))
	w.WriteUint64(data.Timestamp)
	data.Fee.Pack(w)
	tx.packPayload(w)

	if includeSignatures {
		if len(data.Signatures) > 255 {
			return nil, fault.ErrTooManySignatures
		}
		w.WriteUint8(uint8(len(data.Signatures)))
		for _, pair := range data.Signatures {
			w.WriteRaw(pair.PublicKey.Bytes())
			w.WriteRaw(pair.Signature[:])
		}
	}

	return Packed(w.Bytes()), nil
}

// UnsignedBytes - the exact payload signers sign
//
// always recomputed fresh; a buffer that may already carry signatures
// is never reused, so the validity of one signature is independent of
// how many others exist
func UnsignedBytes(tx Transaction) (Packed, error) {
	return Pack(tx, false)
}

// Sign - sign the unsigned form with a key pair
//
// the resulting pair is appended to the record's signature list
// unless appendPair is false, and is always returned
func Sign(tx Transaction, keys *account.KeyPair, appendPair bool) (account.SignaturePair, error) {
	unsigned, err := UnsignedBytes(tx)
	if nil != err {
		return account.SignaturePair{}, err
	}
	pair := keys.Sign(unsigned)
	if appendPair {
		tx.Data().AppendSignature(pair)
	}
	return pair, nil
}

// payload: minter key, wallet hash, wallet script
func (tx *OwnerTx) packPayload(w *util.Writer) {
	w.WriteRaw(tx.Minter.Bytes())
	w.WriteRaw(tx.Wallet.Bytes())
	w.WriteBytes(tx.Script)
}

// payload: destination hash, amount, attachment, attachment name, script
func (tx *MintTx) packPayload(w *util.Writer) {
	w.WriteRaw(tx.To.Bytes())
	tx.Amount.Pack(w)
	w.WriteBytes(tx.Attachment)
	w.WriteString(tx.AttachmentName)
	w.WriteBytes(tx.Script)
}

// payload: destination hash, reward amount
func (tx *RewardTx) packPayload(w *util.Writer) {
	w.WriteRaw(tx.To.Bytes())
	tx.Rewards.Pack(w)
}

// payload: source hash, destination hash, script, amount, memo
func (tx *TransferTx) packPayload(w *util.Writer) {
	w.WriteRaw(tx.From.Bytes())
	w.WriteRaw(tx.To.Bytes())
	w.WriteBytes(tx.Script)
	tx.Amount.Pack(w)
	w.WriteBytes(tx.Memo)
}
