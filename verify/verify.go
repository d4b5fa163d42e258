// SPDX-License-Identifier: ISC
// Copyright (c) 2018-2026 GODcoin Developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package verify - the transaction rejection taxonomy
//
// A verify error is a first-class value, not an internal exception:
// a node builds one when it rejects a transaction and may put it on
// the wire so the submitting wallet learns exactly why.  The binary
// form is deliberately compact and distinct from the transaction
// format, and kind to bytes round-tripping is lossless.  Deciding
// which kind applies is the verifier's job, not this package's
package verify

import (
	"github.com/GODcoin/godcoin-go/fault"
	"github.com/GODcoin/godcoin-go/script"
	"github.com/GODcoin/godcoin-go/util"
)

// Kind - reason code for rejecting a transaction
type Kind byte

// enumerate the possible rejection reasons
// this is the single byte that starts the wire form
const (
	ScriptEval          Kind = iota // script execution failed, carries a payload
	ScriptHashMismatch              // supplied script does not hash to the wallet
	ScriptRetFalse                  // script ran but denied the spend
	Arithmetic                      // amount arithmetic failed during checks
	InsufficientBalance             // spender cannot cover amount plus fee
	InvalidFeeAmount                // fee outside the accepted range
	TooManySignatures               // more than MaxSignatures pairs
	TxTooLarge                      // serialized form exceeds the network cap
	TxProhibited                    // variant not allowed from this sender
	TxExpired                       // timestamp outside the acceptance window
	TxDupe                          // already seen

	// this item must be last
	kindLimit
)

// String - fixed message for a rejection reason
func (kind Kind) String() string {
	switch kind {
	case ScriptEval:
		return "script eval error"
	case ScriptHashMismatch:
		return "script hash mismatch"
	case ScriptRetFalse:
		return "script returned false"
	case Arithmetic:
		return "arithmetic error"
	case InsufficientBalance:
		return "insufficient balance"
	case InvalidFeeAmount:
		return "invalid fee amount"
	case TooManySignatures:
		return "too many signatures"
	case TxTooLarge:
		return "tx too large"
	case TxProhibited:
		return "tx prohibited"
	case TxExpired:
		return "tx expired"
	case TxDupe:
		return "duplicate tx"
	default:
		return "*unknown*"
	}
}

// Error - one rejection with its optional script payload
//
// Eval is non-nil exactly when Kind is ScriptEval; the constructors
// enforce this and Pack re-checks it
type Error struct {
	Kind Kind              `json:"kind"`
	Eval *script.EvalError `json:"eval,omitempty"`
}

// New - build a payload-free rejection
//
// ScriptEval is refused here: it cannot exist without its payload
func New(kind Kind) (*Error, error) {
	if kind >= kindLimit {
		return nil, fault.ErrInvalidVerifyErrorKind
	}
	if ScriptEval == kind {
		return nil, fault.ErrMissingEvalPayload
	}
	return &Error{Kind: kind}, nil
}

// NewScriptEval - build the only payload-carrying rejection
func NewScriptEval(pos uint32, kind script.EvalErrKind) (*Error, error) {
	evalKind, err := script.EvalErrKindFromByte(byte(kind))
	if nil != err {
		return nil, err
	}
	return &Error{
		Kind: ScriptEval,
		Eval: &script.EvalError{
			Pos:  pos,
			Kind: evalKind,
		},
	}, nil
}

// Error - the error interface
//
// every kind maps to a fixed message except ScriptEval, whose message
// derives from the nested failure
func (e *Error) Error() string {
	if ScriptEval == e.Kind && nil != e.Eval {
		return e.Kind.String() + ": " + e.Eval.Error()
	}
	return e.Kind.String()
}

// Pack - serialize a rejection
//
// 1 byte kind, then for ScriptEval only: 4 byte offset and 1 byte
// nested kind
func (e *Error) Pack() ([]byte, error) {
	if e.Kind >= kindLimit {
		return nil, fault.ErrInvalidVerifyErrorKind
	}
	if ScriptEval == e.Kind {
		if nil == e.Eval {
			return nil, fault.ErrMissingEvalPayload
		}
	} else if nil != e.Eval {
		return nil, fault.ErrUnexpectedEvalPayload
	}

	w := util.NewWriter()
	w.WriteUint8(byte(e.Kind))
	if ScriptEval == e.Kind {
		w.WriteUint32(e.Eval.Pos)
		w.WriteUint8(byte(e.Eval.Kind))
	}
	return w.Bytes(), nil
}

// Unpack - deserialize a rejection
//
// also returns the number of bytes consumed.  An unrecognized kind
// byte fails the decode: silently substituting an unknown reason
// would mislead a caller deciding whether to resubmit
func Unpack(buffer []byte) (*Error, int, error) {
	r := util.NewReader(buffer)

	kindByte, err := r.ReadUint8()
	if nil != err {
		return nil, 0, fault.ErrNotVerifyErrorPack
	}
	kind := Kind(kindByte)
	if kind >= kindLimit {
		return nil, 0, fault.ErrInvalidVerifyErrorKind
	}

	if ScriptEval != kind {
		return &Error{Kind: kind}, r.Position(), nil
	}

	pos, err := r.ReadUint32()
	if nil != err {
		return nil, 0, fault.ErrNotVerifyErrorPack
	}
	nestedByte, err := r.ReadUint8()
	if nil != err {
		return nil, 0, fault.ErrNotVerifyErrorPack
	}
	nested, err := script.EvalErrKindFromByte(nestedByte)
	if nil != err {
		return nil, 0, err
	}

	return &Error{
		Kind: kind,
		Eval: &script.EvalError{
			Pos:  pos,
			Kind: nested,
		},
	}, r.Position(), nil
}
