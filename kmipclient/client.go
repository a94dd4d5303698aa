// Package kmipclient implements a synchronous KMIP 1.0-1.4 client:
// the TTLV exchange engine, operation builders/extractors wiring (via
// the message package), and one method per supported operation on
// Client. It depends only on the abstract Transport; tlstransport
// provides the reference TLS-backed implementation used outside of
// tests.
package kmipclient

import "fmt"

// LibraryVersion is the codec/library version, independent of any
// particular wrapper or client release.
const LibraryVersion = "1.0.0"

// ClientVersion is the version of this client package's public
// surface.
const ClientVersion = "1.0.0"

// Client is the public entry point: one method per KMIP operation
// this library supports. A Client is not safe for concurrent use by
// multiple goroutines (§5): it serializes operations onto a single
// Transport and has no internal locking.
type Client struct {
	transport Transport
	cfg       config
	closed    bool
}

// New builds a Client bound to transport. transport is not connected
// until the first operation is issued. The Client takes ownership of
// transport: Close on the Client closes the transport exactly once.
func New(transport Transport, opts ...Option) (*Client, error) {
	if transport == nil {
		return nil, argInvalid("New", "transport must not be nil")
	}

	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	return &Client{transport: transport, cfg: cfg}, nil
}

// Close closes the underlying Transport. Close is idempotent: calling
// it more than once has no effect after the first.
func (c *Client) Close() error {
	if c.closed {
		return nil
	}
	c.closed = true

	return c.transport.Close()
}

func requireNonEmpty(op, field, value string) error {
	if value == "" {
		return argInvalid(op, fmt.Sprintf("%s must not be empty", field))
	}

	return nil
}
