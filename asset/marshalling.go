// SPDX-License-Identifier: ISC
// Copyright (c) 2018-2026 GODcoin Developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package asset

// MarshalText - convert an amount into JSON
func (a Asset) MarshalText() ([]byte, error) {
	return []byte(a.String()), nil
}

// UnmarshalText - convert an amount string from JSON
func (a *Asset) UnmarshalText(s []byte) error {
	parsed, err := FromString(string(s))
	if nil != err {
		return err
	}
	*a = parsed
	return nil
}
