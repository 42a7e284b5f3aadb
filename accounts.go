// Copyright (C) 2018-2026, The rai Authors. All rights reserved.
// See the file LICENSE for licensing terms.

package rai

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"math/big"
)

// Balance is an account's settled and not-yet-received raw.
type Balance struct {
	Balance Amount `json:"balance"`
	Pending Amount `json:"pending"`
}

// AccountBalance returns how much raw is owned by account and how much
// has been sent to it but not yet received.
func (c *Client) AccountBalance(ctx context.Context, account string) (*Balance, error) {
	acc, err := ParseAccount(account)
	if err != nil {
		return nil, err
	}
	resp := new(Balance)
	if err := c.do(ctx, "account_balance", map[string]interface{}{"account": acc}, resp); err != nil {
		return nil, err
	}
	return resp, nil
}

// AccountsBalances returns the balances of every account in accounts.
// Accounts unknown to the node are simply absent from the result.
func (c *Client) AccountsBalances(ctx context.Context, accounts []string) (map[string]Balance, error) {
	var resp struct {
		Balances map[string]Balance `json:"balances"`
	}
	err := c.do(ctx, "accounts_balances", map[string]interface{}{"accounts": accounts}, &resp)
	if err != nil {
		return nil, err
	}
	if resp.Balances == nil {
		return map[string]Balance{}, nil
	}
	return resp.Balances, nil
}

// AccountBlockCount returns the number of blocks in account's chain.
func (c *Client) AccountBlockCount(ctx context.Context, account string) (uint64, error) {
	acc, err := ParseAccount(account)
	if err != nil {
		return 0, err
	}
	var resp struct {
		BlockCount Uint `json:"block_count"`
	}
	if err := c.do(ctx, "account_block_count", map[string]interface{}{"account": acc}, &resp); err != nil {
		return 0, err
	}
	return uint64(resp.BlockCount), nil
}

// AccountsFrontiers returns the head block hash of every account in
// accounts.
func (c *Client) AccountsFrontiers(ctx context.Context, accounts []string) (map[string]string, error) {
	var resp struct {
		Frontiers map[string]string `json:"frontiers"`
	}
	err := c.do(ctx, "accounts_frontiers", map[string]interface{}{"accounts": accounts}, &resp)
	if err != nil {
		return nil, err
	}
	if resp.Frontiers == nil {
		return map[string]string{}, nil
	}
	return resp.Frontiers, nil
}

// AccountInfoOptions selects the optional account_info response fields.
// A flag set to false is omitted from the request entirely, the node
// treats absent and "false" the same here.
type AccountInfoOptions struct {
	Representative bool
	Weight         bool
	Pending        bool
}

// AccountInfo is the node's view of one account. Representative, Weight
// and Pending are only populated when requested through
// AccountInfoOptions.
type AccountInfo struct {
	Frontier            string  `json:"frontier"`
	OpenBlock           string  `json:"open_block"`
	RepresentativeBlock string  `json:"representative_block"`
	Balance             Amount  `json:"balance"`
	ModifiedTimestamp   Uint    `json:"modified_timestamp"`
	BlockCount          Uint    `json:"block_count"`
	Representative      string  `json:"representative"`
	Weight              *Amount `json:"weight"`
	Pending             *Amount `json:"pending"`
}

// AccountInfo returns frontier, open block, change representative
// block, balance, last modified timestamp and block count for account.
// opts may be nil.
func (c *Client) AccountInfo(ctx context.Context, account string, opts *AccountInfoOptions) (*AccountInfo, error) {
	acc, err := ParseAccount(account)
	if err != nil {
		return nil, err
	}
	params := map[string]interface{}{"account": acc}
	if opts != nil {
		if opts.Representative {
			params["representative"] = boolString(opts.Representative)
		}
		if opts.Weight {
			params["weight"] = boolString(opts.Weight)
		}
		if opts.Pending {
			params["pending"] = boolString(opts.Pending)
		}
	}
	resp := new(AccountInfo)
	if err := c.do(ctx, "account_info", params, resp); err != nil {
		return nil, err
	}
	return resp, nil
}

// HistoryEntry is one send or receive in an account's chain.
type HistoryEntry struct {
	Hash    string `json:"hash"`
	Type    string `json:"type"`
	Account string `json:"account"`
	Amount  Amount `json:"amount"`
}

// AccountHistory reports the most recent count sends and receives of
// account.
func (c *Client) AccountHistory(ctx context.Context, account string, count int) ([]HistoryEntry, error) {
	acc, err := ParseAccount(account)
	if err != nil {
		return nil, err
	}
	n, err := countString("count", count)
	if err != nil {
		return nil, err
	}
	var resp struct {
		History json.RawMessage `json:"history"`
	}
	params := map[string]interface{}{"account": acc, "count": n}
	if err := c.do(ctx, "account_history", params, &resp); err != nil {
		return nil, err
	}
	history := []HistoryEntry{}
	if emptyWireList(resp.History) {
		return history, nil
	}
	if err := json.Unmarshal(resp.History, &history); err != nil {
		return nil, fmt.Errorf("decode account_history response: %w", err)
	}
	return history, nil
}

// AccountKey returns the public key of account.
func (c *Client) AccountKey(ctx context.Context, account string) (string, error) {
	acc, err := ParseAccount(account)
	if err != nil {
		return "", err
	}
	var resp struct {
		Key string `json:"key"`
	}
	if err := c.do(ctx, "account_key", map[string]interface{}{"account": acc}, &resp); err != nil {
		return "", err
	}
	return resp.Key, nil
}

// AccountGet returns the address for a public key.
func (c *Client) AccountGet(ctx context.Context, key string) (string, error) {
	pub, err := ParsePublicKey(key)
	if err != nil {
		return "", err
	}
	var resp struct {
		Account string `json:"account"`
	}
	if err := c.do(ctx, "account_get", map[string]interface{}{"key": pub}, &resp); err != nil {
		return "", err
	}
	return resp.Account, nil
}

// AccountRepresentative returns the representative of account.
func (c *Client) AccountRepresentative(ctx context.Context, account string) (string, error) {
	acc, err := ParseAccount(account)
	if err != nil {
		return "", err
	}
	var resp struct {
		Representative string `json:"representative"`
	}
	if err := c.do(ctx, "account_representative", map[string]interface{}{"account": acc}, &resp); err != nil {
		return "", err
	}
	return resp.Representative, nil
}

// AccountWeight returns the voting weight of account.
func (c *Client) AccountWeight(ctx context.Context, account string) (*Amount, error) {
	acc, err := ParseAccount(account)
	if err != nil {
		return nil, err
	}
	var resp struct {
		Weight Amount `json:"weight"`
	}
	if err := c.do(ctx, "account_weight", map[string]interface{}{"account": acc}, &resp); err != nil {
		return nil, err
	}
	return &resp.Weight, nil
}

// PendingOptions narrows an AccountsPending query. Nil fields are left
// out of the request entirely; for Source that is not the same as
// false, the response shape changes when the flag is present.
type PendingOptions struct {
	// Count limits the number of blocks returned per account.
	Count *int
	// Threshold drops blocks below the given amount and switches the
	// response from hash lists to hash→amount maps.
	Threshold *big.Int
	// Source additionally reports each block's sender, switching the
	// response to hash→{amount, source} maps.
	Source *bool
}

// PendingBlock describes one block sent to an account but not yet
// received by it. Source is empty unless the query asked for it.
type PendingBlock struct {
	Amount *Amount
	Source string
}

// PendingBlocks holds one account's pending blocks. Depending on the
// query the node answers with a bare hash list, a hash→amount map or a
// hash→{amount, source} map; Hashes is set in the first case, Blocks in
// the other two.
type PendingBlocks struct {
	Hashes []string
	Blocks map[string]PendingBlock
}

// UnmarshalJSON decodes whichever of the three wire shapes the node
// chose to answer with.
func (p *PendingBlocks) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if emptyWireList(data) {
		return nil
	}
	switch data[0] {
	case '[':
		return json.Unmarshal(data, &p.Hashes)
	case '{':
		var entries map[string]json.RawMessage
		if err := json.Unmarshal(data, &entries); err != nil {
			return err
		}
		p.Blocks = make(map[string]PendingBlock, len(entries))
		for hash, raw := range entries {
			raw = bytes.TrimSpace(raw)
			var blk PendingBlock
			if len(raw) > 0 && raw[0] == '{' {
				var full struct {
					Amount *Amount `json:"amount"`
					Source string  `json:"source"`
				}
				if err := json.Unmarshal(raw, &full); err != nil {
					return err
				}
				blk.Amount = full.Amount
				blk.Source = full.Source
			} else {
				amt := new(Amount)
				if err := amt.UnmarshalJSON(raw); err != nil {
					return err
				}
				blk.Amount = amt
			}
			p.Blocks[hash] = blk
		}
		return nil
	}
	return fmt.Errorf("pending blocks: unexpected shape %q", data)
}

// AccountsPending returns, per account, the blocks sent to it that it
// has not yet received. opts may be nil for a plain hash-list query.
func (c *Client) AccountsPending(ctx context.Context, accounts []string, opts *PendingOptions) (map[string]PendingBlocks, error) {
	params := map[string]interface{}{"accounts": accounts}
	if opts != nil {
		if opts.Count != nil {
			n, err := countString("count", *opts.Count)
			if err != nil {
				return nil, err
			}
			params["count"] = n
		}
		if opts.Threshold != nil {
			t, err := amountString("threshold", opts.Threshold)
			if err != nil {
				return nil, err
			}
			params["threshold"] = t
		}
		if opts.Source != nil {
			params["source"] = boolString(*opts.Source)
		}
	}

	var resp struct {
		Blocks json.RawMessage `json:"blocks"`
	}
	if err := c.do(ctx, "accounts_pending", params, &resp); err != nil {
		return nil, err
	}
	blocks := map[string]PendingBlocks{}
	if emptyWireList(resp.Blocks) {
		return blocks, nil
	}
	if err := json.Unmarshal(resp.Blocks, &blocks); err != nil {
		return nil, fmt.Errorf("decode accounts_pending response: %w", err)
	}
	return blocks, nil
}

// emptyWireList reports whether raw is an absent field or the node's ""
// stand-in for an empty collection.
func emptyWireList(raw json.RawMessage) bool {
	trimmed := bytes.TrimSpace(raw)
	return len(trimmed) == 0 ||
		bytes.Equal(trimmed, []byte(`""`)) ||
		bytes.Equal(trimmed, []byte("null"))
}
