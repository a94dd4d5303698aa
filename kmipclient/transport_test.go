package kmipclient

import (
	"context"
	"fmt"
)

// fakeTransport is an in-memory Transport for exercising the exchange
// engine without a real socket. Each queued response is the complete
// framed byte stream (an encoded ResponseMessage already carries its
// own 8-byte outer header, so no separate framing step is needed
// here).
type fakeTransport struct {
	connected    bool
	closed       bool
	connectErr   error
	sendErr      error
	sentMessages [][]byte
	responses    [][]byte
	respIndex    int
	current      []byte
}

func (f *fakeTransport) Connect(_ context.Context) error {
	if f.connectErr != nil {
		return f.connectErr
	}
	f.connected = true

	return nil
}

func (f *fakeTransport) Close() error {
	f.closed = true
	f.connected = false

	return nil
}

func (f *fakeTransport) IsConnected() bool { return f.connected }

func (f *fakeTransport) Send(_ context.Context, data []byte) error {
	if f.sendErr != nil {
		return f.sendErr
	}
	cp := make([]byte, len(data))
	copy(cp, data)
	f.sentMessages = append(f.sentMessages, cp)

	return nil
}

func (f *fakeTransport) Recv(_ context.Context, buf []byte) error {
	if f.current == nil {
		if f.respIndex >= len(f.responses) {
			return fmt.Errorf("fakeTransport: no more queued responses")
		}
		f.current = f.responses[f.respIndex]
		f.respIndex++
	}
	if len(f.current) < len(buf) {
		return fmt.Errorf("fakeTransport: short read, have %d want %d", len(f.current), len(buf))
	}
	copy(buf, f.current[:len(buf)])
	f.current = f.current[len(buf):]
	if len(f.current) == 0 {
		f.current = nil
	}

	return nil
}
