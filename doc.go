// Copyright (C) 2018-2026, The rai Authors. All rights reserved.
// See the file LICENSE for licensing terms.

// Package rai is a client for the JSON-over-HTTP RPC interface of a
// RaiBlocks node.
//
// Every request is a single HTTP POST of a JSON object to one endpoint;
// the "action" field selects the remote operation. The node encodes
// booleans as the literal strings "true" and "false", large integers as
// decimal strings (balances exceed 128 bits) and boolean results as a
// "1" sentinel. The typed wrappers reproduce that wire contract exactly
// and hand back native values: decimal-string amounts become
// arbitrary-precision Amounts, sentinel fields become bools.
//
// # Usage
//
//	client, err := rai.New("") // http://localhost:7076
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	balance, err := client.AccountBalance(ctx,
//	    "xrb_1111111111111111111111111111111111111111111111111117353trpda")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(balance.Balance.String(), balance.Pending.String())
//
// Actions without a typed wrapper go through the raw dispatcher:
//
//	raw, err := client.Call(ctx, "block_count", nil)
//
// # Errors
//
// Malformed arguments fail with a *ValidationError before anything is
// sent. Failures the node itself reports (unknown account, control
// disabled, ...) come back as a *Error. Transport failures propagate
// from net/http unchanged; the client never retries.
//
// # Architecture
//
// The package separates concerns:
//
//   - client.go: Client construction, options and the Call dispatcher
//   - transport.go: the injectable Transport and its net/http default
//   - types.go: Account/Wallet/PublicKey validation and wire integers
//   - encode.go: request-side string encodings
//   - accounts.go, wallet.go, node.go: the per-action wrappers
//
// A Client holds no state between calls beyond its endpoint and
// transport and may be shared between goroutines.
//
// Several actions (account_create, accounts_create, account_move,
// account_remove, account_representative_set, stop) require the node to
// run with control enabled; the client does not enforce this, the node
// rejects unauthorized calls with an error the client surfaces as
// *Error.
package rai
