package kmipclient

import (
	"time"

	"github.com/openkmip/kmipclient/message"
)

// defaultMaxMessageSize is the response body ceiling applied unless
// overridden, per §4.3.
const defaultMaxMessageSize = 8 * 1024 * 1024

// defaultLocatePageSize is the maximum_items value the engine uses for
// every page of a Locate paging loop, per §4.4.
const defaultLocatePageSize = 16

// config holds the per-client settings an Option mutates.
type config struct {
	protocolVersion     message.ProtocolVersion
	maxMessageSize      int
	maxResponseSize     int32
	locatePageSize      int32
	operationTimeout    time.Duration
}

func defaultConfig() config {
	return config{
		protocolVersion: message.ProtocolVersion14,
		maxMessageSize:  defaultMaxMessageSize,
		locatePageSize:  defaultLocatePageSize,
	}
}

// Option configures a Client at construction time.
type Option func(*config)

// WithProtocolVersion selects the KMIP protocol version advertised in
// every request header. The core supports 1.0, 1.2, and 1.4; the
// default is 1.4.
func WithProtocolVersion(v message.ProtocolVersion) Option {
	return func(c *config) { c.protocolVersion = v }
}

// WithMaxMessageSize overrides the response body ceiling enforced by
// the framing layer before any body bytes are read.
func WithMaxMessageSize(bytes int) Option {
	return func(c *config) { c.maxMessageSize = bytes }
}

// WithMaxResponseSize sets the MaximumResponseSize field advertised in
// the request header, asking a cooperative server to cap its own
// response. It does not change what the framing layer will accept;
// pair it with WithMaxMessageSize if both should move together.
func WithMaxResponseSize(bytes int32) Option {
	return func(c *config) { c.maxResponseSize = bytes }
}

// WithLocatePageSize overrides the per-page maximum_items used while
// paging through a Locate result set. The default is 16.
func WithLocatePageSize(n int32) Option {
	return func(c *config) { c.locatePageSize = n }
}

// WithOperationTimeout sets a deadline on the context of each
// exchange, which is passed to the Transport's Connect, Send and Recv
// calls. Whether a call stops at that deadline depends on the
// Transport: tlstransport honors it while connecting, and bounds Send
// and Recv only by its own WriteTimeout and ReadTimeout. There is no
// in-band cancellation in the KMIP wire protocol itself; this only
// governs the local wait.
func WithOperationTimeout(d time.Duration) Option {
	return func(c *config) { c.operationTimeout = d }
}
