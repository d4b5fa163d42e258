// SPDX-License-Identifier: ISC
// Copyright (c) 2018-2026 GODcoin Developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package transactionrecord - the versioned transaction model and its
// canonical binary form
//
// A transaction is one of a closed set of variants sharing a common
// header (type tag, timestamp, fee, signature list).  The byte form
// exists in two flavours: the unsigned form, which excludes the
// signature section and is exactly the payload every signer signs,
// and the full signed form put on the wire.  Both are canonical:
// packing the same record always yields identical bytes
package transactionrecord

import (
	"encoding/hex"

	"github.com/GODcoin/godcoin-go/account"
	"github.com/GODcoin/godcoin-go/asset"
	"github.com/GODcoin/godcoin-go/fault"
	"github.com/GODcoin/godcoin-go/script"
	"github.com/GODcoin/godcoin-go/util"
)

// TxType - type code for transactions
type TxType uint8

// enumerate the possible transaction record types
// this is encoded as a single byte after the version tag
const (
	OwnerTag    TxType = 0x00 // network owner change
	MintTag     TxType = 0x01 // create new coins
	RewardTag   TxType = 0x02 // block reward payout
	TransferTag TxType = 0x03 // wallet to wallet payment

	// this item must be last
	invalidTag TxType = 0x04
)

// Version - serialization envelope version, only V0 exists
const Version uint16 = 0x0000

// limits exposed for verifiers; not enforced at construction so that
// incremental multi-party signing stays legal mid-flight
const (
	MaxSignatures   = 8
	MaxMemoByteSize = 1024
)

// the timestamp is unsigned milliseconds since epoch; a set sign bit
// marks a value that was negative in some other representation
const timestampSignBit = uint64(1) << 63

// maximum declared length accepted for any variable field while decoding
const maxFieldLength = 8192

// TxData - header fields shared by every variant
//
// all fields except the signature list are fixed for the life of the
// record; signatures are only ever appended, never removed or
// replaced.  appending is not synchronized here, concurrent signers
// must be serialized by the caller
type TxData struct {
	Timestamp  uint64                  `json:"timestamp"` // unsigned ms since epoch
	Fee        asset.Asset             `json:"fee"`
	Signatures []account.SignaturePair `json:"signatures"`
}

// NewTxData - build a header, rejecting signed timestamps
func NewTxData(timestamp uint64, fee asset.Asset) (TxData, error) {
	if 0 != timestamp&timestampSignBit {
		return TxData{}, fault.ErrInvalidTimestamp
	}
	return TxData{
		Timestamp: timestamp,
		Fee:       fee,
	}, nil
}

// Data - access the shared header through the Transaction interface
func (d *TxData) Data() *TxData {
	return d
}

// AppendSignature - grow the signature list by one pair
func (d *TxData) AppendSignature(pair account.SignaturePair) {
	d.Signatures = append(d.Signatures, pair)
}

// Transaction - generic transaction interface
//
// the variant set is closed: packPayload is unexported so no type
// outside this package can satisfy the interface
type Transaction interface {
	TxType() TxType
	Data() *TxData
	packPayload(w *util.Writer)
}

// OwnerTx - assigns the network owner: the key allowed to sign
// blocks and the wallet collecting rewards
type OwnerTx struct {
	TxData
	Minter account.PublicKey `json:"minter"` // block-signing key
	Wallet script.Hash       `json:"wallet"` // reward wallet
	Script script.Script     `json:"script"` // wallet's spending script
}

// MintTx - creates new coins in a destination wallet
type MintTx struct {
	TxData
	To             script.Hash   `json:"to"`
	Amount         asset.Asset   `json:"amount"`
	Attachment     []byte        `json:"attachment"`
	AttachmentName string        `json:"attachmentName"`
	Script         script.Script `json:"script"`
}

// RewardTx - pays out block rewards, carries no fee payer
type RewardTx struct {
	TxData
	To      script.Hash `json:"to"`
	Rewards asset.Asset `json:"rewards"`
}

// TransferTx - moves an amount between wallets
//
// the memo is opaque here; its 1024 byte bound is a verifier concern
type TransferTx struct {
	TxData
	From   script.Hash   `json:"from"`
	To     script.Hash   `json:"to"`
	Script script.Script `json:"script"`
	Amount asset.Asset   `json:"amount"`
	Memo   []byte        `json:"memo"`
}

// TxType - returns the record type code
func (tx *OwnerTx) TxType() TxType { return OwnerTag }

// TxType - returns the record type code
func (tx *MintTx) TxType() TxType { return MintTag }

// TxType - returns the record type code
func (tx *RewardTx) TxType() TxType { return RewardTag }

// TxType - returns the record type code
func (tx *TransferTx) TxType() TxType { return TransferTag }

// RecordName - returns the name of a transaction record as a string
func RecordName(record interface{}) (string, bool) {
	switch record.(type) {
	case *OwnerTx:
		return "Owner", true

	case *MintTx:
		return "Mint", true

	case *RewardTx:
		return "Reward", true

	case *TransferTx:
		return "Transfer", true

	default:
		return "*unknown*", false
	}
}

// Packed - packed records are just a byte slice
type Packed []byte

// MarshalText - convert a packed to its hex JSON form
func (record Packed) MarshalText() ([]byte, error) {
	size := hex.EncodedLen(len(record))
	b := make([]byte, size)
	hex.Encode(b, record)
	return b, nil
}

// UnmarshalText - convert a packed from its hex JSON form
func (record *Packed) UnmarshalText(s []byte) error {
	size := hex.DecodedLen(len(s))
	*record = make([]byte, size)
	_, err := hex.Decode(*record, s)
	return err
}
