// SPDX-License-Identifier: ISC
// Copyright (c) 2018-2026 GODcoin Developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package transactionrecord_test

import (
	"bytes"
	"reflect"
	"testing"

	"github.com/GODcoin/godcoin-go/account"
	"github.com/GODcoin/godcoin-go/asset"
	"github.com/GODcoin/godcoin-go/fault"
	"github.com/GODcoin/godcoin-go/script"
	"github.com/GODcoin/godcoin-go/transactionrecord"
)

// fixed key material so packed bytes are reproducible
var (
	minterSeed = []byte{
		0x9d, 0x5b, 0x3a, 0x2c, 0x4e, 0x6f, 0x71, 0x83,
		0x95, 0xa7, 0xb9, 0xcb, 0xdd, 0xef, 0x01, 0x13,
		0x25, 0x37, 0x49, 0x5b, 0x6d, 0x7f, 0x91, 0xa3,
		0xb5, 0xc7, 0xd9, 0xeb, 0xfd, 0x0f, 0x21, 0x33,
	}
	walletSeed = []byte{
		0x11, 0x22, 0x33, 0x44, 0x55, 0x66, 0x77, 0x88,
		0x99, 0xaa, 0xbb, 0xcc, 0xdd, 0xee, 0xff, 0x00,
		0x10, 0x20, 0x30, 0x40, 0x50, 0x60, 0x70, 0x80,
		0x90, 0xa0, 0xb0, 0xc0, 0xd0, 0xe0, 0xf0, 0x01,
	}
)

func makeKeyPair(t *testing.T, seed []byte) *account.KeyPair {
	t.Helper()
	pair, err := account.KeyPairFromSeed(seed)
	if nil != err {
		t.Fatalf("key pair error: %s", err)
	}
	return pair
}

func makeAsset(t *testing.T, s string) asset.Asset {
	t.Helper()
	a, err := asset.FromString(s)
	if nil != err {
		t.Fatalf("asset %q error: %s", s, err)
	}
	return a
}

func makeTxData(t *testing.T, timestamp uint64, fee string) transactionrecord.TxData {
	t.Helper()
	data, err := transactionrecord.NewTxData(timestamp, makeAsset(t, fee))
	if nil != err {
		t.Fatalf("tx data error: %s", err)
	}
	return data
}

// a fixed recognisable script hash: 0x01 … 0x20
func fixedHash(t *testing.T) script.Hash {
	t.Helper()
	raw := make([]byte, script.HashLength)
	for i := 0; i < script.HashLength; i += 1 {
		raw[i] = byte(i + 1)
	}
	hash, err := script.HashFromBytes(raw)
	if nil != err {
		t.Fatalf("hash error: %s", err)
	}
	return hash
}

// test the packing of a reward record against a literal byte layout
//
// ensures the canonical field order never drifts
func TestPackReward(t *testing.T) {
	r := &transactionrecord.RewardTx{
		TxData:  makeTxData(t, 1000, "0.10000 GRAEL"),
		To:      fixedHash(t),
		Rewards: makeAsset(t, "10.00000 GRAEL"),
	}

	expected := []byte{
		0x00, 0x00, // version
		0x02,                                           // reward tag
		0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x03, 0xe8, // timestamp
		0x00, 0x02, 0x27, 0x10, // fee 0.10000 = 10000 minor units
		0x01, 0x02, 0x03, 0x04, 0x05, 0x06, 0x07, 0x08, // to
		0x09, 0x0a, 0x0b, 0x0c, 0x0d, 0x0e, 0x0f, 0x10,
		0x11, 0x12, 0x13, 0x14, 0x15, 0x16, 0x17, 0x18,
		0x19, 0x1a, 0x1b, 0x1c, 0x1d, 0x1e, 0x1f, 0x20,
		0x00, 0x03, 0x0f, 0x42, 0x40, // rewards 10.00000 = 1000000 minor units
	}

	unsigned, err := transactionrecord.Pack(r, false)
	if nil != err {
		t.Fatalf("pack error: %s", err)
	}
	if !bytes.Equal(unsigned, expected) {
		t.Errorf("pack record: %x  expected: %x", unsigned, expected)
	}

	// the signed form of a record with no signatures only adds the count byte
	signed, err := transactionrecord.Pack(r, true)
	if nil != err {
		t.Fatalf("pack error: %s", err)
	}
	if !bytes.Equal(signed, append(expected, 0x00)) {
		t.Errorf("pack record: %x  expected: %x 00", signed, expected)
	}
}

// the unsigned form is identical no matter how many signatures exist
func TestUnsignedFormInvariance(t *testing.T) {
	minter := makeKeyPair(t, minterSeed)
	wallet := makeKeyPair(t, walletSeed)

	r := &transactionrecord.TransferTx{
		TxData: makeTxData(t, 1572549910123, "0.00010 GRAEL"),
		From:   fixedHash(t),
		To:     script.Script("destination").Hash(),
		Script: script.Script{0x01},
		Amount: makeAsset(t, "12.50000 GRAEL"),
		Memo:   []byte("rent"),
	}

	before, err := transactionrecord.UnsignedBytes(r)
	if nil != err {
		t.Fatalf("unsigned error: %s", err)
	}

	if _, err := transactionrecord.Sign(r, minter, true); nil != err {
		t.Fatalf("sign error: %s", err)
	}
	if _, err := transactionrecord.Sign(r, wallet, true); nil != err {
		t.Fatalf("sign error: %s", err)
	}
	if 2 != len(r.Signatures) {
		t.Fatalf("signature count: actual: %d  expected: 2", len(r.Signatures))
	}

	after, err := transactionrecord.UnsignedBytes(r)
	if nil != err {
		t.Fatalf("unsigned error: %s", err)
	}
	if !bytes.Equal(before, after) {
		t.Errorf("unsigned form changed after signing")
	}
}

// signing returns the pair and only appends when asked
func TestSign(t *testing.T) {
	minter := makeKeyPair(t, minterSeed)

	r := &transactionrecord.RewardTx{
		TxData:  makeTxData(t, 1000, "0.00000 GRAEL"),
		To:      fixedHash(t),
		Rewards: makeAsset(t, "1.00000 GRAEL"),
	}

	unsigned, err := transactionrecord.UnsignedBytes(r)
	if nil != err {
		t.Fatalf("unsigned error: %s", err)
	}

	pair, err := transactionrecord.Sign(r, minter, false)
	if nil != err {
		t.Fatalf("sign error: %s", err)
	}
	if 0 != len(r.Signatures) {
		t.Errorf("append=false still grew the signature list")
	}
	if !pair.PublicKey.Verify(unsigned, pair.Signature) {
		t.Errorf("signature does not verify over the unsigned form")
	}

	appended, err := transactionrecord.Sign(r, minter, true)
	if nil != err {
		t.Fatalf("sign error: %s", err)
	}
	if 1 != len(r.Signatures) {
		t.Fatalf("append=true did not grow the signature list")
	}
	if r.Signatures[0] != appended {
		t.Errorf("appended pair differs from returned pair")
	}

	// each signer signs the same bytes regardless of earlier signatures
	if pair != appended {
		t.Errorf("same key produced different pairs")
	}
}

// every variant survives a pack/unpack round trip with 0..8 signatures
func TestRoundTripAllVariants(t *testing.T) {
	minter := makeKeyPair(t, minterSeed)
	wallet := makeKeyPair(t, walletSeed)

	build := []func() transactionrecord.Transaction{
		func() transactionrecord.Transaction {
			return &transactionrecord.OwnerTx{
				TxData: makeTxData(t, 1572549910123, "0.00010 GRAEL"),
				Minter: minter.PublicKey,
				Wallet: fixedHash(t),
				Script: script.Script{0x00, 0x01, 0x02},
			}
		},
		func() transactionrecord.Transaction {
			return &transactionrecord.MintTx{
				TxData:         makeTxData(t, 1572549910124, "0.00010 GRAEL"),
				To:             fixedHash(t),
				Amount:         makeAsset(t, "1000000.00000 GRAEL"),
				Attachment:     []byte{0xde, 0xad, 0xbe, 0xef},
				AttachmentName: "genesis.bin",
				Script:         script.Script{0x03},
			}
		},
		func() transactionrecord.Transaction {
			return &transactionrecord.RewardTx{
				TxData:  makeTxData(t, 1572549910125, "0.00000 GRAEL"),
				To:      fixedHash(t),
				Rewards: makeAsset(t, "0.50000 GRAEL"),
			}
		},
		func() transactionrecord.Transaction {
			return &transactionrecord.TransferTx{
				TxData: makeTxData(t, 1572549910126, "0.00010 GRAEL"),
				From:   fixedHash(t),
				To:     script.Script("destination").Hash(),
				Script: script.Script{0x01, 0x02},
				Amount: makeAsset(t, "-1.00000 GRAEL"),
				Memo:   []byte("m"),
			}
		},
	}

	signers := []*account.KeyPair{minter, wallet}

	for v, makeTx := range build {
		for count := 0; count <= transactionrecord.MaxSignatures; count += 1 {
			tx := makeTx()
			for i := 0; i < count; i += 1 {
				if _, err := transactionrecord.Sign(tx, signers[i%2], true); nil != err {
					t.Fatalf("variant %d: sign error: %s", v, err)
				}
			}

			packed, err := transactionrecord.Pack(tx, true)
			if nil != err {
				t.Fatalf("variant %d: pack error: %s", v, err)
			}

			back, n, err := packed.Unpack()
			if nil != err {
				t.Fatalf("variant %d sigs %d: unpack error: %s", v, count, err)
			}
			if len(packed) != n {
				t.Errorf("variant %d sigs %d: consumed %d of %d bytes", v, count, n, len(packed))
			}
			if reflect.TypeOf(tx) != reflect.TypeOf(back) {
				t.Fatalf("variant %d: type: actual: %T  expected: %T", v, back, tx)
			}
			if tx.Data().Timestamp != back.Data().Timestamp {
				t.Errorf("variant %d: timestamp: actual: %d  expected: %d",
					v, back.Data().Timestamp, tx.Data().Timestamp)
			}
			if !tx.Data().Fee.Eq(back.Data().Fee) {
				t.Errorf("variant %d: fee: actual: %s  expected: %s",
					v, back.Data().Fee, tx.Data().Fee)
			}
			if count != len(back.Data().Signatures) {
				t.Fatalf("variant %d: signatures: actual: %d  expected: %d",
					v, len(back.Data().Signatures), count)
			}
			for i, pair := range tx.Data().Signatures {
				if back.Data().Signatures[i] != pair {
					t.Errorf("variant %d: signature %d out of order", v, i)
				}
			}

			// canonical encoding makes byte equality field-for-field equality
			repacked, err := transactionrecord.Pack(back, true)
			if nil != err {
				t.Fatalf("variant %d: repack error: %s", v, err)
			}
			if !bytes.Equal(packed, repacked) {
				t.Errorf("variant %d sigs %d: repack mismatch\nactual:   %x\nexpected: %x",
					v, count, repacked, packed)
			}
		}
	}

	// spot check the payload fields of one decoded variant
	tx := build[3]()
	packed, err := transactionrecord.Pack(tx, true)
	if nil != err {
		t.Fatalf("pack error: %s", err)
	}
	back, _, err := packed.Unpack()
	if nil != err {
		t.Fatalf("unpack error: %s", err)
	}
	transfer, ok := back.(*transactionrecord.TransferTx)
	if !ok {
		t.Fatalf("wrong type: %T", back)
	}
	original := tx.(*transactionrecord.TransferTx)
	if transfer.From != original.From || transfer.To != original.To {
		t.Errorf("transfer hashes mismatch")
	}
	if !bytes.Equal(transfer.Script, original.Script) {
		t.Errorf("transfer script mismatch")
	}
	if !transfer.Amount.Eq(original.Amount) {
		t.Errorf("transfer amount: actual: %s  expected: %s", transfer.Amount, original.Amount)
	}
	if !bytes.Equal(transfer.Memo, original.Memo) {
		t.Errorf("transfer memo mismatch")
	}
}

// trailing bytes are reported, not consumed
func TestUnpackTrailingBytes(t *testing.T) {
	r := &transactionrecord.RewardTx{
		TxData:  makeTxData(t, 1000, "0.00000 GRAEL"),
		To:      fixedHash(t),
		Rewards: makeAsset(t, "1.00000 GRAEL"),
	}

	packed, err := transactionrecord.Pack(r, true)
	if nil != err {
		t.Fatalf("pack error: %s", err)
	}
	expected := len(packed)

	extended := transactionrecord.Packed(append([]byte{}, packed...))
	extended = append(extended, 0xff, 0xff, 0xff)

	_, n, err := extended.Unpack()
	if nil != err {
		t.Fatalf("unpack error: %s", err)
	}
	if expected != n {
		t.Errorf("consumed: actual: %d  expected: %d", n, expected)
	}
}

// fatal decode errors: version, type tag, timestamp sign bit, truncation
func TestUnpackFailures(t *testing.T) {
	r := &transactionrecord.RewardTx{
		TxData:  makeTxData(t, 1000, "0.00000 GRAEL"),
		To:      fixedHash(t),
		Rewards: makeAsset(t, "1.00000 GRAEL"),
	}
	packed, err := transactionrecord.Pack(r, true)
	if nil != err {
		t.Fatalf("pack error: %s", err)
	}

	corrupt := func(offset int, value byte) transactionrecord.Packed {
		c := transactionrecord.Packed(append([]byte{}, packed...))
		c[offset] = value
		return c
	}

	tests := []struct {
		name     string
		record   transactionrecord.Packed
		expected error
	}{
		{"unknown version", corrupt(1, 0x01), fault.ErrInvalidVersionTag},
		{"unknown type tag", corrupt(2, 0x04), fault.ErrInvalidTransactionTag},
		{"timestamp sign bit", corrupt(3, 0x80), fault.ErrInvalidTimestamp},
		{"empty", transactionrecord.Packed{}, fault.ErrNotTransactionPack},
		{"version only", transactionrecord.Packed{0x00, 0x00}, fault.ErrNotTransactionPack},
		{"truncated header", packed[:8], fault.ErrNotTransactionPack},
		{"truncated payload", packed[:20], fault.ErrBufferUnderrun},
	}

	for _, item := range tests {
		_, _, err := item.record.Unpack()
		if item.expected != err {
			t.Errorf("%s: error: %v  expected: %v", item.name, err, item.expected)
		}
	}
}

// construction rejects a timestamp with the sign bit set
func TestNewTxData(t *testing.T) {
	fee := makeAsset(t, "0.00000 GRAEL")

	_, err := transactionrecord.NewTxData(uint64(1)<<63, fee)
	if fault.ErrInvalidTimestamp != err {
		t.Errorf("signed timestamp: error: %v  expected: %v", err, fault.ErrInvalidTimestamp)
	}

	data, err := transactionrecord.NewTxData((uint64(1)<<63)-1, fee)
	if nil != err {
		t.Fatalf("timestamp error: %s", err)
	}
	if (uint64(1)<<63)-1 != data.Timestamp {
		t.Errorf("timestamp not stored")
	}

	// packing also refuses a header built around the check
	r := &transactionrecord.RewardTx{
		TxData: transactionrecord.TxData{
			Timestamp: uint64(1) << 63,
			Fee:       fee,
		},
		To:      fixedHash(t),
		Rewards: fee,
	}
	if _, err := transactionrecord.Pack(r, true); fault.ErrInvalidTimestamp != err {
		t.Errorf("pack signed timestamp: error: %v  expected: %v", err, fault.ErrInvalidTimestamp)
	}
}

// oversigned records still decode; rejection is the verifier's call
func TestUnpackBeyondSignatureCap(t *testing.T) {
	minter := makeKeyPair(t, minterSeed)

	r := &transactionrecord.RewardTx{
		TxData:  makeTxData(t, 1000, "0.00000 GRAEL"),
		To:      fixedHash(t),
		Rewards: makeAsset(t, "1.00000 GRAEL"),
	}
	for i := 0; i < transactionrecord.MaxSignatures+1; i += 1 {
		if _, err := transactionrecord.Sign(r, minter, true); nil != err {
			t.Fatalf("sign error: %s", err)
		}
	}

	packed, err := transactionrecord.Pack(r, true)
	if nil != err {
		t.Fatalf("pack error: %s", err)
	}

	back, _, err := packed.Unpack()
	if nil != err {
		t.Fatalf("unpack error: %s", err)
	}
	if transactionrecord.MaxSignatures+1 != len(back.Data().Signatures) {
		t.Errorf("signature count: actual: %d  expected: %d",
			len(back.Data().Signatures), transactionrecord.MaxSignatures+1)
	}
}

// record names for display
func TestRecordName(t *testing.T) {
	tests := []struct {
		record   interface{}
		expected string
		ok       bool
	}{
		{&transactionrecord.OwnerTx{}, "Owner", true},
		{&transactionrecord.MintTx{}, "Mint", true},
		{&transactionrecord.RewardTx{}, "Reward", true},
		{&transactionrecord.TransferTx{}, "Transfer", true},
		{nil, "*unknown*", false},
		{"text", "*unknown*", false},
	}

	for i, item := range tests {
		name, ok := transactionrecord.RecordName(item.record)
		if name != item.expected || ok != item.ok {
			t.Errorf("%d: record name: actual: %q/%v  expected: %q/%v", i, name, ok, item.expected, item.ok)
		}
	}
}
