package ttlv

import (
	"context"
	"encoding/binary"

	"github.com/openkmip/kmipclient/internal/log"
)

// Marshal encodes item into its KMIP wire representation.
//
// Encoding is not streaming: it writes into a fixed-capacity buffer
// and, if that buffer fills, discards the partial output and retries
// the entire encode into a larger buffer (see fixedBuffer and §4.1).
// This keeps worst-case memory bounded and matches the teacher's
// "encode into growable buffer" discipline. Marshal never returns
// ErrBufferFull; it only surfaces genuine structural errors.
func Marshal(ctx context.Context, item Item) ([]byte, error) {
	capacity := initialBufferCapacity
	for {
		buf := newFixedBuffer(capacity)
		if err := encodeItem(buf, item); err != nil {
			if err == ErrBufferFull {
				capacity += bufferGrowthBlock
				log.TraceLog(ctx, "ttlv: buffer full at capacity %d, retrying at %d", capacity-bufferGrowthBlock, capacity)

				continue
			}

			return nil, err
		}

		return buf.bytes(), nil
	}
}

func encodeItem(buf *fixedBuffer, item Item) error {
	length := valueLength(item)
	if err := encodeHeader(buf, item.GetTag(), item.GetType(), length); err != nil {
		return err
	}

	switch v := item.(type) {
	case *Structure:
		for _, child := range v.Items {
			if err := encodeItem(buf, child); err != nil {
				return err
			}
		}

		return nil
	case *Integer:
		return encodeInt32Padded(buf, v.Value)
	case *Enumeration:
		return encodeInt32Padded(buf, v.Value)
	case *Boolean:
		var val int32
		if v.Value {
			val = 1
		}

		return encodeInt32Padded(buf, val)
	case *LongInteger:
		return encodeInt64(buf, v.Value)
	case *DateTime:
		return encodeInt64(buf, v.Value.Unix())
	case *Interval:
		return encodeInt32Padded(buf, int32(v.Value))
	case *TextString:
		return encodeBytesPadded(buf, []byte(v.Value))
	case *ByteString:
		return encodeBytesPadded(buf, v.Value)
	default:
		return &UnsupportedError{What: "encode of unknown item type"}
	}
}

func encodeHeader(buf *fixedBuffer, tag Tag, typ Type, length int) error {
	var header [lenTTL]byte
	header[0] = byte(tag >> 16)
	header[1] = byte(tag >> 8)
	header[2] = byte(tag)
	header[3] = byte(typ)
	binary.BigEndian.PutUint32(header[4:8], uint32(length))

	return buf.write(header[:])
}

// encodeInt32Padded writes a 4-byte value followed by 4 bytes of zero
// padding, per §4.1: "Integer/Enumeration/Boolean: 4 bytes of value
// followed by 4 bytes of zero padding (total 8)."
func encodeInt32Padded(buf *fixedBuffer, v int32) error {
	var b [8]byte
	binary.BigEndian.PutUint32(b[0:4], uint32(v))

	return buf.write(b[:])
}

// encodeInt64 writes an unpadded 8-byte value, used for LongInteger
// and DateTime.
func encodeInt64(buf *fixedBuffer, v int64) error {
	var b [8]byte
	binary.BigEndian.PutUint64(b[:], uint64(v))

	return buf.write(b[:])
}

func encodeBytesPadded(buf *fixedBuffer, v []byte) error {
	if err := buf.write(v); err != nil {
		return err
	}

	return buf.writePadding(roundUpTo8(len(v)) - len(v))
}

func valueLength(item Item) int {
	switch v := item.(type) {
	case *Structure:
		total := 0
		for _, child := range v.Items {
			total += lenTTL + roundUpTo8(valueLength(child))
		}

		return total
	case *Integer:
		return 4
	case *Enumeration:
		return 4
	case *Boolean:
		return 4
	case *LongInteger:
		return 8
	case *DateTime:
		return 8
	case *Interval:
		return 4
	case *TextString:
		return len(v.Value)
	case *ByteString:
		return len(v.Value)
	default:
		return 0
	}
}
