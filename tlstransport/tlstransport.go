// Package tlstransport provides the reference kmipclient.Transport
// implementation: a mutually-authenticated TLS connection to a KMIP
// server. The core codec and exchange engine never import this
// package or crypto/tls directly (§6.1); callers wire it in at the
// edge.
package tlstransport

import (
	"context"
	"crypto/tls"
	"crypto/x509"
	"fmt"
	"net"
	"time"
)

// Config names the five inputs the reference transport needs to dial
// and authenticate a KMIP server: host, port, client certificate
// (PEM), client key (PEM), and server CA bundle (PEM), plus a connect
// timeout.
type Config struct {
	Host string
	Port int

	ClientCertPEM []byte
	ClientKeyPEM  []byte
	ServerCAPEM   []byte

	// ConnectTimeout bounds the initial TCP+TLS handshake. Zero means
	// no timeout.
	ConnectTimeout time.Duration

	// ReadTimeout and WriteTimeout, when nonzero, are applied as
	// deadlines on every Recv/Send call.
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
}

// Transport is the reference kmipclient.Transport: a single
// mutually-authenticated TLS connection, dialed lazily on first use.
type Transport struct {
	cfg       Config
	tlsConfig *tls.Config
	conn      *tls.Conn
}

// New builds a Transport from cfg. It parses the certificate and CA
// material eagerly so configuration mistakes surface before the first
// connection attempt, but does not dial until Connect is called.
func New(cfg Config) (*Transport, error) {
	cert, err := tls.X509KeyPair(cfg.ClientCertPEM, cfg.ClientKeyPEM)
	if err != nil {
		return nil, fmt.Errorf("tlstransport: invalid client certificate/key pair: %w", err)
	}

	caPool := x509.NewCertPool()
	if !caPool.AppendCertsFromPEM(cfg.ServerCAPEM) {
		return nil, fmt.Errorf("tlstransport: no certificates found in server CA bundle")
	}

	return &Transport{
		cfg: cfg,
		tlsConfig: &tls.Config{
			MinVersion:   tls.VersionTLS12,
			ServerName:   cfg.Host,
			RootCAs:      caPool,
			Certificates: []tls.Certificate{cert},
		},
	}, nil
}

// Connect dials the server and performs the TLS handshake if no
// connection is already open.
func (t *Transport) Connect(ctx context.Context) error {
	if t.conn != nil {
		return nil
	}

	if t.cfg.ConnectTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, t.cfg.ConnectTimeout)
		defer cancel()
	}

	dialer := &net.Dialer{Timeout: t.cfg.ConnectTimeout}
	addr := net.JoinHostPort(t.cfg.Host, fmt.Sprintf("%d", t.cfg.Port))

	rawConn, err := dialer.DialContext(ctx, "tcp", addr)
	if err != nil {
		return fmt.Errorf("tlstransport: dial %s: %w", addr, err)
	}

	conn := tls.Client(rawConn, t.tlsConfig)
	deadline, hasDeadline := ctx.Deadline()
	if hasDeadline {
		if err := conn.SetDeadline(deadline); err != nil {
			conn.Close()

			return fmt.Errorf("tlstransport: set handshake deadline: %w", err)
		}
	}

	if err := conn.Handshake(); err != nil {
		conn.Close()

		return fmt.Errorf("tlstransport: TLS handshake: %w", err)
	}

	if hasDeadline {
		if err := conn.SetDeadline(time.Time{}); err != nil {
			conn.Close()

			return fmt.Errorf("tlstransport: clear handshake deadline: %w", err)
		}
	}

	t.conn = conn

	return nil
}

// Close closes the underlying connection, if any.
func (t *Transport) Close() error {
	if t.conn == nil {
		return nil
	}
	err := t.conn.Close()
	t.conn = nil

	return err
}

// IsConnected reports whether a connection is currently open.
func (t *Transport) IsConnected() bool {
	return t.conn != nil
}

// Send writes the entirety of data, applying WriteTimeout as a
// deadline if configured.
func (t *Transport) Send(_ context.Context, data []byte) error {
	if t.conn == nil {
		return fmt.Errorf("tlstransport: not connected")
	}
	if t.cfg.WriteTimeout > 0 {
		if err := t.conn.SetWriteDeadline(time.Now().Add(t.cfg.WriteTimeout)); err != nil {
			return fmt.Errorf("tlstransport: set write deadline: %w", err)
		}
	}

	n, err := t.conn.Write(data)
	if err != nil {
		return fmt.Errorf("tlstransport: write: %w", err)
	}
	if n != len(data) {
		return fmt.Errorf("tlstransport: short write: wrote %d of %d bytes", n, len(data))
	}

	return nil
}

// Recv reads exactly len(buf) bytes into buf, applying ReadTimeout as
// a deadline if configured.
func (t *Transport) Recv(_ context.Context, buf []byte) error {
	if t.conn == nil {
		return fmt.Errorf("tlstransport: not connected")
	}
	if t.cfg.ReadTimeout > 0 {
		if err := t.conn.SetReadDeadline(time.Now().Add(t.cfg.ReadTimeout)); err != nil {
			return fmt.Errorf("tlstransport: set read deadline: %w", err)
		}
	}

	read := 0
	for read < len(buf) {
		n, err := t.conn.Read(buf[read:])
		read += n
		if err != nil {
			return fmt.Errorf("tlstransport: read: %w", err)
		}
	}

	return nil
}
