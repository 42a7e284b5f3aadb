// Copyright (C) 2018-2026, The rai Authors. All rights reserved.
// See the file LICENSE for licensing terms.

package rai

import (
	"context"
	"encoding/json"
)

// Version describes the node's RPC and store versions.
type Version struct {
	RPCVersion   Uint   `json:"rpc_version"`
	StoreVersion Uint   `json:"store_version"`
	NodeVendor   string `json:"node_vendor"`
}

// Version returns the node's version information.
func (c *Client) Version(ctx context.Context) (*Version, error) {
	resp := new(Version)
	if err := c.do(ctx, "version", nil, resp); err != nil {
		return nil, err
	}
	return resp, nil
}

// Stop asks the node to shut down and reports whether it acknowledged.
// The node acknowledges with a bare "success" key whose value carries
// no meaning. Requires a control-enabled node.
func (c *Client) Stop(ctx context.Context) (bool, error) {
	var resp map[string]json.RawMessage
	if err := c.do(ctx, "stop", nil, &resp); err != nil {
		return false, err
	}
	_, ok := resp["success"]
	return ok, nil
}
