// Copyright (C) 2018-2026, The rai Authors. All rights reserved.
// See the file LICENSE for licensing terms.

package rai

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net"
	"net/http"
	"time"
)

// Transport performs one HTTP POST round trip against the node. It is
// injectable so tests can stand in a fake node; implementations must be
// safe for concurrent use if the Client is shared between goroutines.
type Transport interface {
	Post(ctx context.Context, endpoint string, body []byte) ([]byte, error)
}

// HTTPTransport is the default Transport, backed by net/http. It never
// retries: a failed round trip fails the whole call.
type HTTPTransport struct {
	cli *http.Client
}

// NewHTTPTransport builds the default transport. dialTimeout bounds TCP
// connection establishment, requestTimeout the whole round trip; zero
// means no limit.
func NewHTTPTransport(dialTimeout, requestTimeout time.Duration) *HTTPTransport {
	return &HTTPTransport{
		cli: &http.Client{
			Transport: &http.Transport{
				DialContext: (&net.Dialer{
					Timeout: dialTimeout,
				}).DialContext,
			},
			Timeout: requestTimeout,
		},
	}
}

// Post sends body to endpoint and returns the response body.
func (t *HTTPTransport) Post(ctx context.Context, endpoint string, body []byte) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := t.cli.Do(req)
	if err != nil {
		return nil, err
	}
	defer closeBody(resp.Body)

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("received status code: %d", resp.StatusCode)
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read response: %w", err)
	}
	return data, nil
}

// closeBody drains before closing so the underlying connection can be
// reused. See https://github.com/golang/go/issues/46071.
func closeBody(body io.ReadCloser) {
	_, _ = io.Copy(io.Discard, body)
	_ = body.Close()
}
