package tlstransport

import (
	"context"
	"crypto/ecdsa"
	"crypto/elliptic"
	"crypto/rand"
	"crypto/tls"
	"crypto/x509"
	"crypto/x509/pkix"
	"encoding/pem"
	"math/big"
	"net"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

// selfSignedPair generates a throwaway self-signed certificate/key
// pair usable as both the server's identity and, since mutual auth
// isn't exercised by a bare TCP+TLS loopback test, the client's CA.
func selfSignedPair(t *testing.T, host string) (certPEM, keyPEM []byte) {
	t.Helper()

	priv, err := ecdsa.GenerateKey(elliptic.P256(), rand.Reader)
	require.NoError(t, err)

	template := x509.Certificate{
		SerialNumber: big.NewInt(1),
		Subject:      pkix.Name{CommonName: host},
		NotBefore:    time.Now().Add(-time.Hour),
		NotAfter:     time.Now().Add(time.Hour),
		KeyUsage:     x509.KeyUsageDigitalSignature | x509.KeyUsageCertSign,
		ExtKeyUsage:  []x509.ExtKeyUsage{x509.ExtKeyUsageServerAuth, x509.ExtKeyUsageClientAuth},
		IsCA:         true,
		DNSNames:     []string{host},
	}

	der, err := x509.CreateCertificate(rand.Reader, &template, &template, &priv.PublicKey, priv)
	require.NoError(t, err)

	certPEM = pem.EncodeToMemory(&pem.Block{Type: "CERTIFICATE", Bytes: der})
	keyDER, err := x509.MarshalECPrivateKey(priv)
	require.NoError(t, err)
	keyPEM = pem.EncodeToMemory(&pem.Block{Type: "EC PRIVATE KEY", Bytes: keyDER})

	return certPEM, keyPEM
}

func TestTransportSendRecvRoundTrip(t *testing.T) {
	certPEM, keyPEM := selfSignedPair(t, "127.0.0.1")

	serverCert, err := tls.X509KeyPair(certPEM, keyPEM)
	require.NoError(t, err)

	listener, err := tls.Listen("tcp", "127.0.0.1:0", &tls.Config{Certificates: []tls.Certificate{serverCert}})
	require.NoError(t, err)
	defer listener.Close()

	serverDone := make(chan error, 1)
	go func() {
		conn, err := listener.Accept()
		if err != nil {
			serverDone <- err

			return
		}
		defer conn.Close()

		buf := make([]byte, 5)
		if _, err := conn.Read(buf); err != nil {
			serverDone <- err

			return
		}
		if _, err := conn.Write(buf); err != nil {
			serverDone <- err

			return
		}
		serverDone <- nil
	}()

	_, portStr, err := net.SplitHostPort(listener.Addr().String())
	require.NoError(t, err)
	port := mustAtoi(t, portStr)

	transport, err := New(Config{
		Host:          "127.0.0.1",
		Port:          port,
		ClientCertPEM: certPEM,
		ClientKeyPEM:  keyPEM,
		ServerCAPEM:   certPEM,
	})
	require.NoError(t, err)
	defer transport.Close()

	ctx := context.Background()
	require.NoError(t, transport.Connect(ctx))
	assert := require.New(t)
	assert.True(transport.IsConnected())

	require.NoError(t, transport.Send(ctx, []byte("hello")))

	out := make([]byte, 5)
	require.NoError(t, transport.Recv(ctx, out))
	assert.Equal("hello", string(out))

	require.NoError(t, <-serverDone)
}

func mustAtoi(t *testing.T, s string) int {
	t.Helper()
	n := 0
	for _, c := range s {
		if c < '0' || c > '9' {
			t.Fatalf("not a port number: %q", s)
		}
		n = n*10 + int(c-'0')
	}

	return n
}
