// SPDX-License-Identifier: ISC
// Copyright (c) 2018-2026 GODcoin Developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package asset - fixed-point arithmetic for the network's native asset
//
// An Asset is an immutable decimal amount of GRAEL held to exactly
// Precision fractional digits.  Internally the amount is an
// arbitrary-precision integer of minor units (amount × 10^Precision),
// so addition and subtraction are exact and every node truncates
// multiplication and division results identically.  Rounding is
// always toward zero; nothing here rounds away from zero.
package asset

import (
	"math"
	"math/big"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/GODcoin/godcoin-go/fault"
	"github.com/GODcoin/godcoin-go/util"
)

// Precision - number of fractional digits carried by every amount
const Precision = 5

// Symbol - the only asset symbol on this network
const Symbol = "GRAEL"

// amounts needing more significant digits than this are rejected at
// parse time, before the decimal point or precision checks run
const maximumSignificantDigits = 20

// Asset - an immutable amount of GRAEL
type Asset struct {
	value decimal.Decimal
}

// Zero - the zero amount
var Zero Asset

// FromString - parse "[-]digits.digits GRAEL" into an Asset
//
// the amount must carry exactly Precision digits after the decimal
// point and the symbol must match exactly.  the significant-digit
// ceiling is checked as soon as the amount is known to be numeric, so
// an over-long integer with no decimal point reports "input too
// large" rather than "invalid format"
func FromString(s string) (Asset, error) {
	tokens := strings.Split(s, " ")
	if 2 != len(tokens) {
		return Zero, fault.ErrInvalidAssetFormat
	}

	// only the grammar's own characters are allowed; in particular
	// this blocks exponent notation, which the decimal parser would
	// otherwise accept
	amount := tokens[0]
	for _, c := range amount {
		if ('0' > c || '9' < c) && '.' != c && '-' != c {
			return Zero, fault.ErrAmountNotNumber
		}
	}
	value, err := decimal.NewFromString(amount)
	if nil != err {
		return Zero, fault.ErrAmountNotNumber
	}
	if significantDigits(amount) > maximumSignificantDigits {
		return Zero, fault.ErrInputTooLarge
	}

	point := strings.IndexByte(amount, '.')
	if point < 0 {
		return Zero, fault.ErrInvalidAssetFormat
	}
	if Precision != len(amount)-point-1 {
		return Zero, fault.ErrInvalidPrecision
	}

	if Symbol != tokens[1] {
		return Zero, fault.ErrWrongAssetSymbol
	}

	return Asset{value: value}, nil
}

// FromMinorUnits - wrap a raw minor-unit integer
//
// the argument is copied; later mutation of units cannot affect the
// returned Asset
func FromMinorUnits(units *big.Int) Asset {
	return Asset{
		value: decimal.NewFromBigInt(new(big.Int).Set(units), -Precision),
	}
}

// MinorUnits - the amount as an integer of 10^-Precision units
func (a Asset) MinorUnits() *big.Int {
	return a.value.Shift(Precision).BigInt()
}

// Add - exact addition
func (a Asset) Add(b Asset) Asset {
	return Asset{value: a.value.Add(b.value)}
}

// Sub - exact subtraction
func (a Asset) Sub(b Asset) Asset {
	return Asset{value: a.value.Sub(b.value)}
}

// Mul - multiply then truncate toward zero to Precision digits
func (a Asset) Mul(b Asset) Asset {
	return Asset{value: a.value.Mul(b.value).Truncate(Precision)}
}

// Div - divide then truncate toward zero to Precision digits
func (a Asset) Div(b Asset) (Asset, error) {
	if b.value.IsZero() {
		return Zero, fault.ErrDivideByZero
	}
	quotient, _ := a.value.QuoRem(b.value, Precision)
	return Asset{value: quotient}, nil
}

// Pow - raise to a non-negative integer power
//
// repeated multiplication, truncating toward zero at every
// intermediate step: the compounded truncation is part of the
// consensus contract and must not be optimised away.  cost is linear
// in the exponent; exponents that do not fit an int64 are rejected
// rather than converted, as that conversion is platform-defined
func (a Asset) Pow(exponent float64) (Asset, error) {
	if math.IsNaN(exponent) || math.IsInf(exponent, 0) {
		return Zero, fault.ErrExponentNotNumber
	}
	if math.Trunc(exponent) != exponent {
		return Zero, fault.ErrExponentNotInteger
	}
	if math.MaxInt64 <= exponent {
		return Zero, fault.ErrExponentTooLarge
	}

	n := int64(0)
	if 0 < exponent {
		n = int64(exponent)
	}
	result := Asset{value: decimal.New(1, 0)}
	for i := int64(0); i < n; i += 1 {
		result = result.Mul(a)
	}
	return result, nil
}

// Gt - strictly greater
func (a Asset) Gt(b Asset) bool { return a.value.Cmp(b.value) > 0 }

// Geq - greater or equal
func (a Asset) Geq(b Asset) bool { return a.value.Cmp(b.value) >= 0 }

// Leq - less or equal
func (a Asset) Leq(b Asset) bool { return a.value.Cmp(b.value) <= 0 }

// Lt - strictly less
func (a Asset) Lt(b Asset) bool { return a.value.Cmp(b.value) < 0 }

// Eq - numerically equal
func (a Asset) Eq(b Asset) bool { return 0 == a.value.Cmp(b.value) }

// String - "amount GRAEL" with exactly Precision fractional digits
//
// magnitudes under one unit keep a leading zero; zero is never shown
// with a negative sign
func (a Asset) String() string {
	return a.DecimalString() + " " + Symbol
}

// DecimalString - the bare amount without the symbol
func (a Asset) DecimalString() string {
	return a.value.StringFixed(Precision)
}

// count digits of a numeral ignoring sign, decimal point and leading zeros
func significantDigits(s string) int {
	digits := 0
	significant := false
	for _, c := range s {
		if c < '0' || c > '9' {
			continue
		}
		if '0' == c && !significant {
			continue
		}
		significant = true
		digits += 1
	}
	return digits
}

// Pack - append the canonical minor-unit encoding
func (a Asset) Pack(w *util.Writer) {
	w.WriteBigInt(a.MinorUnits())
}

// UnpackAsset - consume a canonically encoded amount
func UnpackAsset(r *util.Reader) (Asset, error) {
	units, err := r.ReadBigInt()
	if nil != err {
		return Zero, err
	}
	return FromMinorUnits(units), nil
}
