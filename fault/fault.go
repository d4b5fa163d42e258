// SPDX-License-Identifier: ISC
// Copyright (c) 2018-2026 GODcoin Developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package fault

// GenericError - error base
type GenericError string

// to allow for different classes of errors
type (
	// InvalidError - parse or format failure, fatal to the single operation
	InvalidError GenericError

	// ArithmeticError - raised synchronously by asset arithmetic, never coerced
	ArithmeticError GenericError

	// ProcessError - fatal decode failure, caller discards the input
	ProcessError GenericError
)

// common errors - grouped by error family
var (
	// asset parsing
	ErrInvalidAssetFormat = InvalidError("invalid format")
	ErrAmountNotNumber    = InvalidError("amount must be a valid number")
	ErrInputTooLarge      = InvalidError("input too large")
	ErrInvalidPrecision   = InvalidError("invalid precision")
	ErrWrongAssetSymbol   = InvalidError("asset type must be GRAEL")

	// asset arithmetic
	ErrDivideByZero       = ArithmeticError("divide by zero")
	ErrExponentNotNumber  = ArithmeticError("input must be of type number")
	ErrExponentNotInteger = ArithmeticError("input must be an integer")
	ErrExponentTooLarge   = ArithmeticError("exponent too large")

	// construction
	ErrInvalidTimestamp       = InvalidError("timestamp must not be negative")
	ErrTooManySignatures      = InvalidError("too many signatures")
	ErrInvalidKeyLength       = InvalidError("key length is invalid")
	ErrInvalidSignatureLength = InvalidError("signature length is invalid")
	ErrInvalidDigestLength    = InvalidError("digest length is invalid")
	ErrNotPublicKey           = InvalidError("not a public key")
	ErrChecksumMismatch       = InvalidError("checksum mismatch")
	ErrCannotDecodePublicKey  = InvalidError("cannot decode public key")
	ErrCannotDecodeHash       = InvalidError("cannot decode script hash")
	ErrMissingEvalPayload     = InvalidError("script eval error requires a payload")
	ErrUnexpectedEvalPayload  = InvalidError("only script eval errors carry a payload")
	ErrInvalidVerifyErrorKind = InvalidError("unrecognized verify error kind")

	// decoding
	ErrBufferUnderrun         = ProcessError("buffer underrun")
	ErrFieldTooLong           = ProcessError("field length exceeds limit")
	ErrNotCanonicalNumber     = ProcessError("number encoding is not canonical")
	ErrNotTransactionPack     = ProcessError("not a transaction record")
	ErrInvalidVersionTag      = ProcessError("unrecognized transaction version")
	ErrInvalidTransactionTag  = ProcessError("unrecognized transaction type")
	ErrNotVerifyErrorPack     = ProcessError("not a verify error record")
	ErrInvalidScriptErrorKind = ProcessError("unrecognized script error kind")

	// logging channel
	ErrAlreadyInitialised   = ProcessError("already initialised")
	ErrInvalidLoggerChannel = ProcessError("invalid logger channel")
)

// Error - the error interface base method
func (e GenericError) Error() string { return string(e) }

// the error interface methods
func (e InvalidError) Error() string    { return string(e) }
func (e ArithmeticError) Error() string { return string(e) }
func (e ProcessError) Error() string    { return string(e) }

// IsErrInvalid - determine the class of an error
func IsErrInvalid(e error) bool { _, ok := e.(InvalidError); return ok }

// IsErrArithmetic - determine the class of an error
func IsErrArithmetic(e error) bool { _, ok := e.(ArithmeticError); return ok }

// IsErrProcess - determine the class of an error
func IsErrProcess(e error) bool { _, ok := e.(ProcessError); return ok }
