// Copyright (C) 2018-2026, The rai Authors. All rights reserved.
// See the file LICENSE for licensing terms.

package rai

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
)

const testWallet2 = "0123456789ABCDEF0123456789ABCDEF0123456789ABCDEF0123456789ABCDEF"

func TestAccountCreate(t *testing.T) {
	var got map[string]interface{}
	c := testClient(t, respondWith(t, `{"account": "`+testAccount+`"}`, &got))

	account, err := c.AccountCreate(context.Background(), testWallet)
	require.NoError(t, err)
	require.Equal(t, "account_create", got["action"])
	require.Equal(t, testWallet, got["wallet"])
	require.Equal(t, testAccount, account)
}

func TestAccountCreateInvalidWallet(t *testing.T) {
	c := testClient(t, respondWith(t, `{}`, nil))

	_, err := c.AccountCreate(context.Background(), "xyz")
	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	require.Equal(t, "wallet", verr.Field)
}

func TestAccountsCreate(t *testing.T) {
	var got map[string]interface{}
	c := testClient(t, respondWith(t,
		`{"accounts": ["`+testAccount+`", "`+testAccount2+`"]}`, &got))

	accounts, err := c.AccountsCreate(context.Background(), testWallet, 2)
	require.NoError(t, err)
	require.Equal(t, "2", got["count"])
	require.Equal(t, []string{testAccount, testAccount2}, accounts)
}

func TestAccountsCreateMissingKey(t *testing.T) {
	c := testClient(t, respondWith(t, `{}`, nil))

	accounts, err := c.AccountsCreate(context.Background(), testWallet, 2)
	require.NoError(t, err)
	require.NotNil(t, accounts)
	require.Empty(t, accounts)
}

func TestAccountList(t *testing.T) {
	c := testClient(t, respondWith(t, `{"accounts": ["`+testAccount+`"]}`, nil))

	accounts, err := c.AccountList(context.Background(), testWallet)
	require.NoError(t, err)
	require.Equal(t, []string{testAccount}, accounts)
}

func TestAccountListEmpty(t *testing.T) {
	for _, body := range []string{`{}`, `{"accounts": ""}`} {
		c := testClient(t, respondWith(t, body, nil))

		accounts, err := c.AccountList(context.Background(), testWallet)
		require.NoError(t, err, body)
		require.NotNil(t, accounts)
		require.Empty(t, accounts)
	}
}

func TestAccountMove(t *testing.T) {
	var got map[string]interface{}
	c := testClient(t, respondWith(t, `{"moved": "1"}`, &got))

	moved, err := c.AccountMove(context.Background(), testWallet2, testWallet, []string{testAccount})
	require.NoError(t, err)
	require.True(t, moved)

	require.Equal(t, testWallet, got["wallet"])
	require.Equal(t, testWallet2, got["source"])
	require.Equal(t, []interface{}{testAccount}, got["accounts"])
}

func TestAccountMoveRefused(t *testing.T) {
	c := testClient(t, respondWith(t, `{"moved": "0"}`, nil))

	moved, err := c.AccountMove(context.Background(), testWallet2, testWallet, []string{testAccount})
	require.NoError(t, err)
	require.False(t, moved)
}

func TestAccountRemove(t *testing.T) {
	var got map[string]interface{}
	c := testClient(t, respondWith(t, `{"removed": "1"}`, &got))

	removed, err := c.AccountRemove(context.Background(), testWallet, testAccount)
	require.NoError(t, err)
	require.True(t, removed)
	require.Equal(t, "account_remove", got["action"])
}

func TestAccountRemoveRefused(t *testing.T) {
	c := testClient(t, respondWith(t, `{"removed": "0"}`, nil))

	removed, err := c.AccountRemove(context.Background(), testWallet, testAccount)
	require.NoError(t, err)
	require.False(t, removed)
}

func TestAccountRepresentativeSet(t *testing.T) {
	var got map[string]interface{}
	c := testClient(t, respondWith(t, `{"block": "`+testWallet+`"}`, &got))

	block, err := c.AccountRepresentativeSet(context.Background(), testWallet, testAccount, testAccount2)
	require.NoError(t, err)
	require.Equal(t, testAccount2, got["representative"])
	require.Equal(t, testWallet, block)
}

func TestAccountRepresentativeSetInvalidRepresentative(t *testing.T) {
	c := testClient(t, respondWith(t, `{}`, nil))

	_, err := c.AccountRepresentativeSet(context.Background(), testWallet, testAccount, "bogus")
	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	require.Equal(t, "account", verr.Field)
}
