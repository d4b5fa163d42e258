// SPDX-License-Identifier: ISC
// Copyright (c) 2018-2026 GODcoin Developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package script

import (
	"fmt"

	"github.com/GODcoin/godcoin-go/fault"
)

// EvalErrKind - the closed set of script execution failures
type EvalErrKind byte

// enumerate the possible execution failures
// this is encoded as a single byte inside a verify error payload
const (
	EvalErrUnexpectedEOF EvalErrKind = iota
	EvalErrUnknownOp
	EvalErrInvalidItemOnStack
	EvalErrStackOverflow
	EvalErrStackUnderflow

	// this item must be last
	evalErrKindLimit
)

// String - fixed message for an execution failure
func (kind EvalErrKind) String() string {
	switch kind {
	case EvalErrUnexpectedEOF:
		return "unexpected end of script"
	case EvalErrUnknownOp:
		return "unknown operation"
	case EvalErrInvalidItemOnStack:
		return "invalid item on stack"
	case EvalErrStackOverflow:
		return "stack overflow"
	case EvalErrStackUnderflow:
		return "stack underflow"
	default:
		return "*unknown*"
	}
}

// EvalErrKindFromByte - reverse of the byte encoding
//
// an unrecognized byte is a decode failure, never a default
func EvalErrKindFromByte(b byte) (EvalErrKind, error) {
	if EvalErrKind(b) >= evalErrKindLimit {
		return 0, fault.ErrInvalidScriptErrorKind
	}
	return EvalErrKind(b), nil
}

// EvalError - where and how script execution failed
type EvalError struct {
	Pos  uint32      `json:"pos"`
	Kind EvalErrKind `json:"kind"`
}

// Error - the error interface
func (e *EvalError) Error() string {
	return fmt.Sprintf("%s at position %d", e.Kind, e.Pos)
}

// Evaluator - consumed contract of the external script engine
//
// evaluation runs a script against the serialized transaction that
// spends it and reports success as nil or the position and kind of
// the first failure
type Evaluator interface {
	Evaluate(script Script, transaction []byte) *EvalError
}
