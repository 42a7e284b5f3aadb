// Copyright (C) 2018-2026, The rai Authors. All rights reserved.
// See the file LICENSE for licensing terms.

package rai

import (
	"encoding/json"
	"fmt"
	"math/big"
	"strconv"
	"strings"
)

// Account is a checksummed node address: a prefix followed by the
// base32-encoded public key and checksum.
type Account string

// Wallet identifies a wallet on the node, a 64-digit hex token.
type Wallet string

// PublicKey is a hex-encoded account public key.
type PublicKey string

// accountAlphabet is the node's base32 alphabet (no 0, 2, l, v).
const accountAlphabet = "13456789abcdefghijkmnopqrstuwxyz"

var accountPrefixes = []string{"xrb_", "nano_"}

// ParseAccount validates the structural format of an address. No
// checksum or other cryptographic verification is performed.
func ParseAccount(s string) (Account, error) {
	if s == "" {
		return "", &ValidationError{Field: "account", Reason: "must not be empty"}
	}
	body, matched := "", false
	for _, prefix := range accountPrefixes {
		if strings.HasPrefix(s, prefix) {
			body, matched = s[len(prefix):], true
			break
		}
	}
	if !matched {
		return "", &ValidationError{Field: "account", Reason: fmt.Sprintf("%q has no known prefix", s)}
	}
	if len(body) != 60 {
		return "", &ValidationError{Field: "account", Reason: fmt.Sprintf("%q has a malformed body", s)}
	}
	for _, r := range body {
		if !strings.ContainsRune(accountAlphabet, r) {
			return "", &ValidationError{Field: "account", Reason: fmt.Sprintf("%q has a malformed body", s)}
		}
	}
	return Account(s), nil
}

// ParseWallet validates a wallet token.
func ParseWallet(s string) (Wallet, error) {
	if err := checkHexToken("wallet", s); err != nil {
		return "", err
	}
	return Wallet(s), nil
}

// ParsePublicKey validates a hex-encoded public key.
func ParsePublicKey(s string) (PublicKey, error) {
	if err := checkHexToken("public key", s); err != nil {
		return "", err
	}
	return PublicKey(s), nil
}

func checkHexToken(field, s string) error {
	if s == "" {
		return &ValidationError{Field: field, Reason: "must not be empty"}
	}
	if len(s) != 64 {
		return &ValidationError{Field: field, Reason: fmt.Sprintf("%q is not 64 hex digits", s)}
	}
	for _, r := range s {
		switch {
		case r >= '0' && r <= '9':
		case r >= 'a' && r <= 'f':
		case r >= 'A' && r <= 'F':
		default:
			return &ValidationError{Field: field, Reason: fmt.Sprintf("%q is not 64 hex digits", s)}
		}
	}
	return nil
}

// Amount is an arbitrary-precision quantity of raw, the ledger's
// smallest unit. The node transmits amounts as decimal strings because
// observed balances exceed what a JSON number (or a 128-bit integer)
// can hold losslessly.
type Amount struct {
	big.Int
}

// NewAmount wraps v as an Amount.
func NewAmount(v *big.Int) *Amount {
	a := new(Amount)
	a.Int.Set(v)
	return a
}

// MarshalJSON encodes the amount as a decimal string.
func (a Amount) MarshalJSON() ([]byte, error) {
	return []byte(strconv.Quote(a.Int.String())), nil
}

// UnmarshalJSON decodes a decimal string. Bare JSON numbers are accepted
// too, the node is not consistent for small values.
func (a *Amount) UnmarshalJSON(data []byte) error {
	s := string(data)
	if len(s) > 0 && s[0] == '"' {
		var err error
		if s, err = strconv.Unquote(s); err != nil {
			return fmt.Errorf("amount: %w", err)
		}
	}
	if _, ok := a.Int.SetString(s, 10); !ok {
		return fmt.Errorf("amount: %q is not a decimal integer", s)
	}
	return nil
}

// Uint is an unsigned integer the node transmits as a decimal JSON
// string (block counts, timestamps, version numbers).
type Uint uint64

// MarshalJSON encodes the value as a decimal string.
func (u Uint) MarshalJSON() ([]byte, error) {
	return []byte(strconv.Quote(strconv.FormatUint(uint64(u), 10))), nil
}

// UnmarshalJSON decodes a decimal string or a bare JSON number.
func (u *Uint) UnmarshalJSON(data []byte) error {
	s := string(data)
	if len(s) > 0 && s[0] == '"' {
		var err error
		if s, err = strconv.Unquote(s); err != nil {
			return fmt.Errorf("uint: %w", err)
		}
	}
	v, err := strconv.ParseUint(s, 10, 64)
	if err != nil {
		return fmt.Errorf("uint: %q is not a decimal integer", s)
	}
	*u = Uint(v)
	return nil
}

var _ json.Marshaler = Amount{}
var _ json.Unmarshaler = (*Amount)(nil)
