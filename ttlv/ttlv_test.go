package ttlv

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRoundUpTo8(t *testing.T) {
	assert.Equal(t, 8, roundUpTo8(1))
	assert.Equal(t, 8, roundUpTo8(8))
	assert.Equal(t, 16, roundUpTo8(9))
	assert.Equal(t, 0, roundUpTo8(0))
}

func sampleMessage() *Structure {
	return NewStructure(0x420078,
		&Integer{Tag: 0x420069, Value: 7},
		&LongInteger{Tag: 0x42006a, Value: -9000000000},
		&Enumeration{Tag: 0x42005c, Value: 1},
		&Boolean{Tag: 0x420123, Value: true},
		&Interval{Tag: 0x420124, Value: 3600},
		&DateTime{Tag: 0x420092, Value: time.Unix(1700000000, 0).UTC()},
		&TextString{Tag: 0x420055, Value: "k1"},
		&ByteString{Tag: 0x420043, Value: []byte{0x00, 0x01, 0x02, 0x03, 0x04}},
		NewStructure(0x420008,
			&TextString{Tag: 0x42000a, Value: "Cryptographic Algorithm"},
		),
	)
}

func TestRoundTrip(t *testing.T) {
	ctx := context.Background()
	msg := sampleMessage()

	encoded, err := Marshal(ctx, msg)
	require.NoError(t, err)

	decoded, err := Unmarshal(ctx, encoded)
	require.NoError(t, err)

	reencoded, err := Marshal(ctx, decoded)
	require.NoError(t, err)
	assert.Equal(t, encoded, reencoded)

	got, ok := decoded.(*Structure)
	require.True(t, ok)
	assert.Equal(t, Tag(0x420078), got.Tag)
	assert.Len(t, got.Items, 9)

	integer, ok := got.Items[0].(*Integer)
	require.True(t, ok)
	assert.Equal(t, int32(7), integer.Value)

	long, ok := got.Items[1].(*LongInteger)
	require.True(t, ok)
	assert.Equal(t, int64(-9000000000), long.Value)

	enum, ok := got.Items[2].(*Enumeration)
	require.True(t, ok)
	assert.Equal(t, int32(1), enum.Value)

	boolean, ok := got.Items[3].(*Boolean)
	require.True(t, ok)
	assert.True(t, boolean.Value)

	interval, ok := got.Items[4].(*Interval)
	require.True(t, ok)
	assert.Equal(t, uint32(3600), interval.Value)

	dt, ok := got.Items[5].(*DateTime)
	require.True(t, ok)
	assert.Equal(t, int64(1700000000), dt.Value.Unix())

	text, ok := got.Items[6].(*TextString)
	require.True(t, ok)
	assert.Equal(t, "k1", text.Value)

	byteStr, ok := got.Items[7].(*ByteString)
	require.True(t, ok)
	assert.Equal(t, []byte{0x00, 0x01, 0x02, 0x03, 0x04}, byteStr.Value)

	inner, ok := got.Items[8].(*Structure)
	require.True(t, ok)
	assert.Len(t, inner.Items, 1)
}

// TestPadding verifies every item, once encoded, ends on an 8-byte
// boundary, per the padding invariant in §8.
func TestPadding(t *testing.T) {
	ctx := context.Background()
	for _, item := range []Item{
		&TextString{Tag: 1, Value: "a"},
		&TextString{Tag: 1, Value: "abcdefgh"},
		&ByteString{Tag: 1, Value: []byte{1, 2, 3}},
		&Integer{Tag: 1, Value: 5},
		&LongInteger{Tag: 1, Value: 5},
		sampleMessage(),
	} {
		encoded, err := Marshal(ctx, item)
		require.NoError(t, err)
		assert.Zero(t, len(encoded)%8, "not 8-byte aligned: %d bytes", len(encoded))
	}
}

// TestBufferGrowthIdempotence encodes a message large enough to force
// several buffer-full retries and checks that the output decodes and
// re-encodes to the same bytes; the retry loop must not corrupt or
// duplicate output.
func TestBufferGrowthIdempotence(t *testing.T) {
	ctx := context.Background()
	big := NewStructure(0x420078)
	for i := 0; i < 200; i++ {
		big.Items = append(big.Items, &TextString{Tag: Tag(0x420100 + i), Value: "some attribute value padding out the message"})
	}

	encoded, err := Marshal(ctx, big)
	require.NoError(t, err)

	decoded, err := Unmarshal(ctx, encoded)
	require.NoError(t, err)

	reencoded, err := Marshal(ctx, decoded)
	require.NoError(t, err)
	assert.Equal(t, encoded, reencoded)
}

func TestUnmarshalSurplusBytesRejected(t *testing.T) {
	ctx := context.Background()
	encoded, err := Marshal(ctx, &Integer{Tag: 1, Value: 5})
	require.NoError(t, err)

	_, err = Unmarshal(ctx, append(encoded, 0x00))
	assert.Error(t, err)
}

func TestUnmarshalShortBufferUnderflows(t *testing.T) {
	ctx := context.Background()
	_, err := Unmarshal(ctx, []byte{0x42, 0x00, 0x78, 0x01})
	assert.ErrorIs(t, err, ErrBufferUnderflow)
}

func TestUnmarshalUnknownTypeIsUnsupported(t *testing.T) {
	ctx := context.Background()
	data := []byte{0x42, 0x00, 0x78, 0xFE, 0x00, 0x00, 0x00, 0x00}
	_, err := Unmarshal(ctx, data)
	var unsupported *UnsupportedError
	assert.ErrorAs(t, err, &unsupported)
}
