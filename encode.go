// Copyright (C) 2018-2026, The rai Authors. All rights reserved.
// See the file LICENSE for licensing terms.

package rai

import (
	"fmt"
	"math/big"
	"strconv"
)

// boolString encodes a flag the way the wire protocol expects: the
// literal strings "true" and "false", not JSON booleans.
func boolString(v bool) string {
	if v {
		return "true"
	}
	return "false"
}

// countString encodes a count as a decimal string. Counts are never
// negative on the wire.
func countString(field string, n int) (string, error) {
	if n < 0 {
		return "", &ValidationError{Field: field, Reason: fmt.Sprintf("%d is negative", n)}
	}
	return strconv.Itoa(n), nil
}

// amountString encodes an arbitrary-precision integer as a decimal
// string, preserving values past 64 bits.
func amountString(field string, v *big.Int) (string, error) {
	if v == nil {
		return "", &ValidationError{Field: field, Reason: "must not be nil"}
	}
	if v.Sign() < 0 {
		return "", &ValidationError{Field: field, Reason: fmt.Sprintf("%s is negative", v)}
	}
	return v.String(), nil
}
