// SPDX-License-Identifier: ISC
// Copyright (c) 2018-2026 GODcoin Developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package transactionrecord

import (
	"github.com/GODcoin/godcoin-go/account"
	"github.com/GODcoin/godcoin-go/asset"
	"github.com/GODcoin/godcoin-go/fault"
	"github.com/GODcoin/godcoin-go/script"
	"github.com/GODcoin/godcoin-go/util"
)

// Unpack - turn a byte slice back into a record
//
// also returns the number of bytes consumed; trailing bytes are left
// for the caller.  An unrecognized version tag, unrecognized type
// tag or a timestamp with the sign bit set is a fatal decode error
// and the whole input must be discarded
//
// must cast result to the correct type
//
// e.g.
//   transfer, ok := result.(*transactionrecord.TransferTx)
// or:
//   switch tx := result.(type) {
//   case *transactionrecord.TransferTx:
func (record Packed) Unpack() (Transaction, int, error) {
	r := util.NewReader(record)

	version, err := r.ReadUint16()
	if nil != err {
		return nil, 0, fault.ErrNotTransactionPack
	}
	if Version != version {
		return nil, 0, fault.ErrInvalidVersionTag
	}

	tag, err := r.ReadUint8()
	if nil != err {
		return nil, 0, fault.ErrNotTransactionPack
	}

	timestamp, err := r.ReadUint64()
	if nil != err {
		return nil, 0, fault.ErrNotTransactionPack
	}
	if 0 != timestamp&timestampSignBit {
		return nil, 0, fault.ErrInvalidTimestamp
	}

	fee, err := asset.UnpackAsset(r)
	if nil != err {
		return nil, 0, err
	}

	data := TxData{
		Timestamp: timestamp,
		Fee:       fee,
	}

	var tx Transaction
	switch TxType(tag) {

	case OwnerTag:
		tx, err = unpackOwner(r, data)

	case MintTag:
		tx, err = unpackMint(r, data)

	case RewardTag:
		tx, err = unpackReward(r, data)

	case TransferTag:
		tx, err = unpackTransfer(r, data)

	default:
		return nil, 0, fault.ErrInvalidTransactionTag
	}
	if nil != err {
		return nil, 0, err
	}

	// signature list: the count byte is read as-is; the 0..8 cap is
	// checked by the verifier so an over-signed record can still be
	// decoded and rejected with a precise reason
	count, err := r.ReadUint8()
	if nil != err {
		return nil, 0, err
	}
	for i := 0; i < int(count); i += 1 {
		keyBytes, err := r.ReadRaw(account.PublicKeySize)
		if nil != err {
			return nil, 0, err
		}
		key, err := account.PublicKeyFromBytes(keyBytes)
		if nil != err {
			return nil, 0, err
		}
		signatureBytes, err := r.ReadRaw(account.SignatureSize)
		if nil != err {
			return nil, 0, err
		}
		signature, err := account.SignatureFromBytes(signatureBytes)
		if nil != err {
			return nil, 0, err
		}
		tx.Data().AppendSignature(account.SignaturePair{
			PublicKey: key,
			Signature: signature,
		})
	}

	return tx, r.Position(), nil
}

func unpackOwner(r *util.Reader, data TxData) (Transaction, error) {
	minterBytes, err := r.ReadRaw(account.PublicKeySize)
	if nil != err {
		return nil, err
	}
	minter, err := account.PublicKeyFromBytes(minterBytes)
	if nil != err {
		return nil, err
	}

	walletBytes, err := r.ReadRaw(script.HashLength)
	if nil != err {
		return nil, err
	}
	wallet, err := script.HashFromBytes(walletBytes)
	if nil != err {
		return nil, err
	}

	walletScript, err := r.ReadBytes(maxFieldLength)
	if nil != err {
		return nil, err
	}

	return &OwnerTx{
		TxData: data,
		Minter: minter,
		Wallet: wallet,
		Script: script.Script(walletScript),
	}, nil
}

func unpackMint(r *util.Reader, data TxData) (Transaction, error) {
	toBytes, err := r.ReadRaw(script.HashLength)
	if nil != err {
		return nil, err
	}
	to, err := script.HashFromBytes(toBytes)
	if nil != err {
		return nil, err
	}

	amount, err := asset.UnpackAsset(r)
	if nil != err {
		return nil, err
	}

	attachment, err := r.ReadBytes(maxFieldLength)
	if nil != err {
		return nil, err
	}

	attachmentName, err := r.ReadString(maxFieldLength)
	if nil != err {
		return nil, err
	}

	mintScript, err := r.ReadBytes(maxFieldLength)
	if nil != err {
		return nil, err
	}

	return &MintTx{
		TxData:         data,
		To:             to,
		Amount:         amount,
		Attachment:     attachment,
		AttachmentName: attachmentName,
		Script:         script.Script(mintScript),
	}, nil
}

func unpackReward(r *util.Reader, data TxData) (Transaction, error) {
	toBytes, err := r.ReadRaw(script.HashLength)
	if nil != err {
		return nil, err
	}
	to, err := script.HashFromBytes(toBytes)
	if nil != err {
		return nil, err
	}

	rewards, err := asset.UnpackAsset(r)
	if nil != err {
		return nil, err
	}

	return &RewardTx{
		TxData:  data,
		To:      to,
		Rewards: rewards,
	}, nil
}

func unpackTransfer(r *util.Reader, data TxData) (Transaction, error) {
	fromBytes, err := r.ReadRaw(script.HashLength)
	if nil != err {
		return nil, err
	}
	from, err := script.HashFromBytes(fromBytes)
	if nil != err {
		return nil, err
	}

	toBytes, err := r.ReadRaw(script.HashLength)
	if nil != err {
		return nil, err
	}
	to, err := script.HashFromBytes(toBytes)
	if nil != err {
		return nil, err
	}

	transferScript, err := r.ReadBytes(maxFieldLength)
	if nil != err {
		return nil, err
	}

	amount, err := asset.UnpackAsset(r)
	if nil != err {
		return nil, err
	}

	memo, err := r.ReadBytes(maxFieldLength)
	if nil != err {
		return nil, err
	}

	return &TransferTx{
		TxData: data,
		From:   from,
		To:     to,
		Script: script.Script(transferScript),
		Amount: amount,
		Memo:   memo,
	}, nil
}
