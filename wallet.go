// Copyright (C) 2018-2026, The rai Authors. All rights reserved.
// See the file LICENSE for licensing terms.

package rai

import (
	"context"
	"encoding/json"
	"fmt"
)

// AccountCreate inserts the next deterministic key of wallet as a new
// account and returns its address. Requires a control-enabled node.
func (c *Client) AccountCreate(ctx context.Context, wallet string) (string, error) {
	w, err := ParseWallet(wallet)
	if err != nil {
		return "", err
	}
	var resp struct {
		Account string `json:"account"`
	}
	if err := c.do(ctx, "account_create", map[string]interface{}{"wallet": w}, &resp); err != nil {
		return "", err
	}
	return resp.Account, nil
}

// AccountsCreate inserts up to count deterministic keys into wallet and
// returns the new addresses. Requires a control-enabled node.
func (c *Client) AccountsCreate(ctx context.Context, wallet string, count int) ([]string, error) {
	w, err := ParseWallet(wallet)
	if err != nil {
		return nil, err
	}
	n, err := countString("count", count)
	if err != nil {
		return nil, err
	}
	var resp struct {
		Accounts json.RawMessage `json:"accounts"`
	}
	params := map[string]interface{}{"wallet": w, "count": n}
	if err := c.do(ctx, "accounts_create", params, &resp); err != nil {
		return nil, err
	}
	return decodeAccountList("accounts_create", resp.Accounts)
}

// AccountList lists the accounts inside wallet.
func (c *Client) AccountList(ctx context.Context, wallet string) ([]string, error) {
	w, err := ParseWallet(wallet)
	if err != nil {
		return nil, err
	}
	var resp struct {
		Accounts json.RawMessage `json:"accounts"`
	}
	if err := c.do(ctx, "account_list", map[string]interface{}{"wallet": w}, &resp); err != nil {
		return nil, err
	}
	return decodeAccountList("account_list", resp.Accounts)
}

// AccountMove moves accounts from the source wallet into wallet and
// reports whether the node performed the move. Requires a
// control-enabled node.
func (c *Client) AccountMove(ctx context.Context, source, wallet string, accounts []string) (bool, error) {
	w, err := ParseWallet(wallet)
	if err != nil {
		return false, err
	}
	src, err := ParseWallet(source)
	if err != nil {
		return false, err
	}
	var resp struct {
		Moved string `json:"moved"`
	}
	params := map[string]interface{}{
		"wallet":   w,
		"source":   src,
		"accounts": accounts,
	}
	if err := c.do(ctx, "account_move", params, &resp); err != nil {
		return false, err
	}
	return resp.Moved == "1", nil
}

// AccountRemove removes account from wallet and reports whether the
// node removed it. Requires a control-enabled node.
func (c *Client) AccountRemove(ctx context.Context, wallet, account string) (bool, error) {
	w, err := ParseWallet(wallet)
	if err != nil {
		return false, err
	}
	acc, err := ParseAccount(account)
	if err != nil {
		return false, err
	}
	var resp struct {
		Removed string `json:"removed"`
	}
	params := map[string]interface{}{"wallet": w, "account": acc}
	if err := c.do(ctx, "account_remove", params, &resp); err != nil {
		return false, err
	}
	return resp.Removed == "1", nil
}

// AccountRepresentativeSet sets the representative of account in wallet
// and returns the hash of the change block. Requires a control-enabled
// node.
func (c *Client) AccountRepresentativeSet(ctx context.Context, wallet, account, representative string) (string, error) {
	w, err := ParseWallet(wallet)
	if err != nil {
		return "", err
	}
	acc, err := ParseAccount(account)
	if err != nil {
		return "", err
	}
	rep, err := ParseAccount(representative)
	if err != nil {
		return "", err
	}
	var resp struct {
		Block string `json:"block"`
	}
	params := map[string]interface{}{
		"wallet":         w,
		"account":        acc,
		"representative": rep,
	}
	if err := c.do(ctx, "account_representative_set", params, &resp); err != nil {
		return "", err
	}
	return resp.Block, nil
}

// decodeAccountList turns an optional account list field into a
// non-nil slice; an absent field is an empty result, not an error.
func decodeAccountList(action string, raw json.RawMessage) ([]string, error) {
	accounts := []string{}
	if emptyWireList(raw) {
		return accounts, nil
	}
	if err := json.Unmarshal(raw, &accounts); err != nil {
		return nil, fmt.Errorf("decode %s response: %w", action, err)
	}
	return accounts, nil
}
