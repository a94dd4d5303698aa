package kmipclient

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/openkmip/kmipclient/kmip14"
	"github.com/openkmip/kmipclient/ttlv"
)

func TestRegisterKeyRejectsBadLengths(t *testing.T) {
	for _, n := range []int{0, 1, 15, 20, 33} {
		transport := &fakeTransport{}
		c := newTestClient(t, transport)

		_, err := c.RegisterKey(context.Background(), "k", "", make([]byte, n))
		require.Error(t, err, "length %d bytes", n)
		kerr, ok := AsError(err)
		require.True(t, ok)
		assert.Equal(t, CodeArgInvalid, kerr.Code)
		assert.Empty(t, transport.sentMessages)
	}
}

func TestRegisterKeyAcceptsValidLengths(t *testing.T) {
	for _, n := range []int{16, 24, 32} {
		payload := ttlv.NewStructure(kmip14.TagResponsePayload,
			&ttlv.Enumeration{Tag: kmip14.TagObjectType, Value: int32(kmip14.ObjectTypeSymmetricKey)},
			&ttlv.TextString{Tag: kmip14.TagUniqueIdentifier, Value: "uuid-reg"},
		)
		transport := &fakeTransport{responses: [][]byte{
			buildResponse(t, kmip14.OperationRegister, kmip14.ResultStatusSuccess, 0, false, "", payload),
		}}
		c := newTestClient(t, transport)

		id, err := c.RegisterKey(context.Background(), "k", "", make([]byte, n))
		require.NoError(t, err, "length %d bytes", n)
		assert.Equal(t, "uuid-reg", id)
	}
}
