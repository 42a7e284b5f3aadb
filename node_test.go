// Copyright (C) 2018-2026, The rai Authors. All rights reserved.
// See the file LICENSE for licensing terms.

package rai

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestVersion(t *testing.T) {
	c := testClient(t, respondWith(t,
		`{"rpc_version": "1", "store_version": "10", "node_vendor": "RaiBlocks 9.0"}`, nil))

	v, err := c.Version(context.Background())
	require.NoError(t, err)
	require.Equal(t, Uint(1), v.RPCVersion)
	require.Equal(t, Uint(10), v.StoreVersion)
	require.Equal(t, "RaiBlocks 9.0", v.NodeVendor)
}

func TestStop(t *testing.T) {
	var got map[string]interface{}
	c := testClient(t, respondWith(t, `{"success": ""}`, &got))

	ok, err := c.Stop(context.Background())
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, "stop", got["action"])
}

func TestStopNotAcknowledged(t *testing.T) {
	c := testClient(t, respondWith(t, `{}`, nil))

	ok, err := c.Stop(context.Background())
	require.NoError(t, err)
	require.False(t, ok)
}
