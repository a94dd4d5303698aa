package kmipclient

import "context"

// Transport is the byte-oriented collaborator the exchange engine
// sends requests to and reads responses from. It knows nothing about
// KMIP; it is a reliable, ordered, full-duplex byte stream with lazy
// connection setup. tlstransport provides the reference TLS-backed
// implementation; tests typically use an in-memory fake.
type Transport interface {
	// Connect establishes the underlying connection if one is not
	// already open. Connect is called lazily by the engine before the
	// first send of a session; a Transport that is already connected
	// returns nil immediately.
	Connect(ctx context.Context) error

	// Close releases the connection. The engine calls Close after
	// every IOFailure and when the client is explicitly closed, so the
	// same Transport may see Close more than once.
	Close() error

	// IsConnected reports whether Connect has succeeded and Close has
	// not yet been called.
	IsConnected() bool

	// Send writes the entirety of data. A Transport must not return
	// successfully having written fewer than len(data) bytes; partial
	// writes are reported as an error, not a short return.
	Send(ctx context.Context, data []byte) error

	// Recv reads exactly len(buf) bytes into buf. Fewer bytes than
	// requested, for any reason including EOF, is reported as an
	// error.
	Recv(ctx context.Context, buf []byte) error
}
