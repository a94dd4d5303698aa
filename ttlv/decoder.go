package ttlv

import (
	"context"
	"encoding/binary"
	"fmt"
	"time"

	"github.com/openkmip/kmipclient/internal/log"
)

// cursor is a bounded reader over an already-framed, complete buffer.
// It never reads past the end of data; every read is checked.
type cursor struct {
	data []byte
	pos  int
}

func (c *cursor) remaining() int {
	return len(c.data) - c.pos
}

func (c *cursor) readBytes(n int) ([]byte, error) {
	if n < 0 || c.remaining() < n {
		return nil, ErrBufferUnderflow
	}
	b := c.data[c.pos : c.pos+n]
	c.pos += n

	return b, nil
}

func (c *cursor) readHeader() (tag Tag, typ Type, length int, err error) {
	b, err := c.readBytes(lenTTL)
	if err != nil {
		return 0, 0, 0, err
	}
	tag = Tag(uint32(b[0])<<16 | uint32(b[1])<<8 | uint32(b[2]))
	typ = Type(b[3])
	length = int(binary.BigEndian.Uint32(b[4:8]))

	return tag, typ, length, nil
}

// Unmarshal decodes exactly one complete TTLV item from data. data
// must be the full, already-framed buffer produced by the framing
// layer (see readFramedMessage in kmipclient); Unmarshal returns an error if any
// bytes remain unconsumed afterward.
func Unmarshal(ctx context.Context, data []byte) (Item, error) {
	c := &cursor{data: data}
	item, err := decodeItem(c)
	if err != nil {
		return nil, err
	}
	if c.remaining() != 0 {
		return nil, fmt.Errorf("ttlv: %d surplus bytes after decoding top-level item", c.remaining())
	}
	log.TraceLog(ctx, "ttlv: decoded %s (%s), %d bytes consumed", item.GetTag(), item.GetType(), len(data))

	return item, nil
}

func decodeItem(c *cursor) (Item, error) {
	tag, typ, length, err := c.readHeader()
	if err != nil {
		return nil, err
	}
	if length < 0 {
		return nil, &LengthInvalidError{Tag: tag, Type: typ, Length: length}
	}

	switch typ {
	case TypeStructure:
		return decodeStructure(c, tag, length)
	case TypeInteger:
		v, err := decodePadded4(c)
		if err != nil {
			return nil, err
		}

		return &Integer{Tag: tag, Value: v}, nil
	case TypeEnumeration:
		v, err := decodePadded4(c)
		if err != nil {
			return nil, err
		}

		return &Enumeration{Tag: tag, Value: v}, nil
	case TypeBoolean:
		v, err := decodePadded4(c)
		if err != nil {
			return nil, err
		}

		return &Boolean{Tag: tag, Value: v != 0}, nil
	case TypeInterval:
		v, err := decodePadded4(c)
		if err != nil {
			return nil, err
		}

		return &Interval{Tag: tag, Value: uint32(v)}, nil
	case TypeLongInteger:
		v, err := decodeUnpadded8(c)
		if err != nil {
			return nil, err
		}

		return &LongInteger{Tag: tag, Value: v}, nil
	case TypeDateTime:
		v, err := decodeUnpadded8(c)
		if err != nil {
			return nil, err
		}

		return &DateTime{Tag: tag, Value: time.Unix(v, 0).UTC()}, nil
	case TypeTextString:
		b, err := decodePaddedString(c, length)
		if err != nil {
			return nil, err
		}

		return &TextString{Tag: tag, Value: string(b)}, nil
	case TypeByteString:
		b, err := decodePaddedString(c, length)
		if err != nil {
			return nil, err
		}
		value := make([]byte, len(b))
		copy(value, b)

		return &ByteString{Tag: tag, Value: value}, nil
	case TypeBigInteger:
		return nil, &UnsupportedError{What: fmt.Sprintf("tag %s: BigInteger items are not decoded by this codec", tag)}
	default:
		return nil, &UnsupportedError{What: fmt.Sprintf("tag %s: unknown wire type 0x%02x", tag, byte(typ))}
	}
}

// decodePadded4 reads the 8-byte on-wire representation of
// Integer/Enumeration/Boolean/Interval: 4 bytes of value, 4 bytes of
// padding. Padding is consumed but never checked for zero, matching
// historical server behavior (§4.1).
func decodePadded4(c *cursor) (int32, error) {
	b, err := c.readBytes(8)
	if err != nil {
		return 0, err
	}

	return int32(binary.BigEndian.Uint32(b[0:4])), nil
}

// decodeUnpadded8 reads the 8-byte on-wire representation of
// LongInteger/DateTime: no padding, the full 8 bytes are value.
func decodeUnpadded8(c *cursor) (int64, error) {
	b, err := c.readBytes(8)
	if err != nil {
		return 0, err
	}

	return int64(binary.BigEndian.Uint64(b)), nil
}

// decodePaddedString reads length value bytes plus the padding needed
// to reach the next 8-byte boundary, and returns the value bytes
// (unpadded).
func decodePaddedString(c *cursor, length int) ([]byte, error) {
	b, err := c.readBytes(roundUpTo8(length))
	if err != nil {
		return nil, err
	}

	return b[:length], nil
}

func decodeStructure(c *cursor, tag Tag, length int) (*Structure, error) {
	valueBytes, err := c.readBytes(length)
	if err != nil {
		return nil, err
	}

	sub := &cursor{data: valueBytes}
	items := make([]Item, 0, 4)
	for sub.remaining() > 0 {
		item, err := decodeItem(sub)
		if err != nil {
			return nil, fmt.Errorf("ttlv: decoding child of structure %s: %w", tag, err)
		}
		items = append(items, item)
	}

	return &Structure{Tag: tag, Items: items}, nil
}
