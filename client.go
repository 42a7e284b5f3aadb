// Copyright (C) 2018-2026, The rai Authors. All rights reserved.
// See the file LICENSE for licensing terms.

package rai

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"time"

	"go.uber.org/zap"
)

// DefaultEndpoint is the RPC endpoint used when none is configured.
const DefaultEndpoint = "http://localhost:7076"

const (
	defaultDialTimeout    = 4 * time.Second
	defaultRequestTimeout = 4 * time.Second
)

// Client talks to a node's JSON-over-HTTP RPC interface. Every request is
// a single POST of an object carrying an "action" field to one endpoint;
// Client holds no state between calls beyond the endpoint and transport.
//
// Client is safe for concurrent use as long as its Transport is; the
// default HTTP transport is.
type Client struct {
	endpoint  *url.URL
	transport Transport
	log       *zap.Logger

	dialTimeout    time.Duration
	requestTimeout time.Duration
}

// Option configures a Client.
type Option func(*Client)

// WithTransport substitutes the HTTP POST capability, e.g. with a fake
// node in tests.
func WithTransport(t Transport) Option {
	return func(c *Client) { c.transport = t }
}

// WithLogger sets a logger for per-call debug entries. The default is a
// no-op logger.
func WithLogger(log *zap.Logger) Option {
	return func(c *Client) { c.log = log }
}

// WithDialTimeout sets the TCP dial timeout of the default transport.
// It has no effect when WithTransport is also given.
func WithDialTimeout(d time.Duration) Option {
	return func(c *Client) { c.dialTimeout = d }
}

// WithRequestTimeout bounds a whole request/response round trip on the
// default transport. It has no effect when WithTransport is also given.
func WithRequestTimeout(d time.Duration) Option {
	return func(c *Client) { c.requestTimeout = d }
}

// New returns a Client for the node at endpoint. An empty endpoint
// selects DefaultEndpoint.
func New(endpoint string, opts ...Option) (*Client, error) {
	if endpoint == "" {
		endpoint = DefaultEndpoint
	}
	u, err := url.Parse(endpoint)
	if err != nil {
		return nil, fmt.Errorf("parse endpoint: %w", err)
	}

	c := &Client{
		endpoint:       u,
		log:            zap.NewNop(),
		dialTimeout:    defaultDialTimeout,
		requestTimeout: defaultRequestTimeout,
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.transport == nil {
		c.transport = NewHTTPTransport(c.dialTimeout, c.requestTimeout)
	}
	return c, nil
}

// Endpoint returns the configured RPC endpoint.
func (c *Client) Endpoint() string {
	return c.endpoint.String()
}

// Call invokes a raw RPC action. The action name is injected into a copy
// of params and the encoded object is POSTed in one round trip; the
// response body is returned after it is checked to be well-formed JSON
// and free of a node-reported error. Transport failures propagate
// unchanged in kind, without retries.
//
// The typed wrappers cover the common actions; Call is the escape hatch
// for anything else the node understands.
func (c *Client) Call(ctx context.Context, action string, params map[string]interface{}) (json.RawMessage, error) {
	if action == "" {
		return nil, &ValidationError{Field: "action", Reason: "must not be empty"}
	}

	payload := make(map[string]interface{}, len(params)+1)
	for k, v := range params {
		payload[k] = v
	}
	payload["action"] = action

	body, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("encode %s request: %w", action, err)
	}

	start := time.Now()
	raw, err := c.transport.Post(ctx, c.endpoint.String(), body)
	if err != nil {
		return nil, err
	}
	c.log.Debug("rpc call",
		zap.String("action", action),
		zap.Duration("took", time.Since(start)))

	if !json.Valid(raw) {
		return nil, fmt.Errorf("decode %s response: invalid JSON", action)
	}
	if trimmed := bytes.TrimSpace(raw); len(trimmed) > 0 && trimmed[0] == '{' {
		var probe struct {
			Error string `json:"error"`
		}
		if err := json.Unmarshal(raw, &probe); err == nil && probe.Error != "" {
			return nil, &Error{Action: action, Message: probe.Error}
		}
	}
	return raw, nil
}

// do dispatches action and decodes the response into out (skipped when
// out is nil).
func (c *Client) do(ctx context.Context, action string, params map[string]interface{}, out interface{}) error {
	raw, err := c.Call(ctx, action, params)
	if err != nil {
		return err
	}
	if out == nil {
		return nil
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return fmt.Errorf("decode %s response: %w", action, err)
	}
	return nil
}
