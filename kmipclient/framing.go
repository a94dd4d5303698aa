package kmipclient

import (
	"context"
	"encoding/binary"
	"fmt"
)

const ttlvHeaderSize = 8

// readFramedMessage implements the receive procedure of §4.3: read
// the fixed 8-byte outer header, reject before reading any body bytes
// if the declared length exceeds maxMessageSize, then read exactly
// that many more bytes. The returned buffer is the complete
// header+body ready for the TTLV decoder.
func readFramedMessage(ctx context.Context, t Transport, maxMessageSize int) ([]byte, error) {
	header := make([]byte, ttlvHeaderSize)
	if err := t.Recv(ctx, header); err != nil {
		return nil, newError("readFramedMessage", CodeIOFailure, fmt.Errorf("reading 8-byte header: %w", err))
	}

	bodyLen := int(binary.BigEndian.Uint32(header[4:8]))
	if bodyLen > maxMessageSize {
		return nil, newError("readFramedMessage", CodeMessageTooLarge,
			fmt.Errorf("declared body length %d exceeds max_message_size %d", bodyLen, maxMessageSize))
	}

	buf := make([]byte, ttlvHeaderSize+bodyLen)
	copy(buf, header)
	if bodyLen > 0 {
		if err := t.Recv(ctx, buf[ttlvHeaderSize:]); err != nil {
			return nil, newError("readFramedMessage", CodeIOFailure, fmt.Errorf("reading %d-byte body: %w", bodyLen, err))
		}
	}

	return buf, nil
}
