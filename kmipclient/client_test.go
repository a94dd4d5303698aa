package kmipclient

import (
	"context"
	"encoding/binary"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/openkmip/kmipclient/kmip14"
	"github.com/openkmip/kmipclient/ttlv"
)

func protocolVersionItem() *ttlv.Structure {
	return ttlv.NewStructure(kmip14.TagProtocolVersion,
		&ttlv.Integer{Tag: kmip14.TagProtocolVersionMajor, Value: 1},
		&ttlv.Integer{Tag: kmip14.TagProtocolVersionMinor, Value: 4},
	)
}

func buildResponse(t *testing.T, op kmip14.Operation, status kmip14.ResultStatus, reason kmip14.ResultReason, hasReason bool, resultMessage string, payload *ttlv.Structure) []byte {
	t.Helper()

	items := []ttlv.Item{
		&ttlv.Enumeration{Tag: kmip14.TagOperation, Value: int32(op)},
		&ttlv.Enumeration{Tag: kmip14.TagResultStatus, Value: int32(status)},
	}
	if hasReason {
		items = append(items, &ttlv.Enumeration{Tag: kmip14.TagResultReason, Value: int32(reason)})
	}
	if resultMessage != "" {
		items = append(items, &ttlv.TextString{Tag: kmip14.TagResultMessage, Value: resultMessage})
	}
	if payload != nil {
		items = append(items, payload)
	}

	msg := ttlv.NewStructure(kmip14.TagResponseMessage,
		ttlv.NewStructure(kmip14.TagResponseHeader,
			protocolVersionItem(),
			&ttlv.Integer{Tag: kmip14.TagBatchCount, Value: 1},
		),
		ttlv.NewStructure(kmip14.TagBatchItem, items...),
	)

	encoded, err := ttlv.Marshal(context.Background(), msg)
	require.NoError(t, err)

	return encoded
}

func newTestClient(t *testing.T, transport *fakeTransport, opts ...Option) *Client {
	t.Helper()
	transport.connected = true
	c, err := New(transport, opts...)
	require.NoError(t, err)

	return c
}

// Scenario 1: Create AES-256 — request tag order and response extraction.
func TestScenarioCreateAES256(t *testing.T) {
	payload := ttlv.NewStructure(kmip14.TagResponsePayload,
		&ttlv.Enumeration{Tag: kmip14.TagObjectType, Value: int32(kmip14.ObjectTypeSymmetricKey)},
		&ttlv.TextString{Tag: kmip14.TagUniqueIdentifier, Value: "uuid-42"},
	)
	transport := &fakeTransport{responses: [][]byte{
		buildResponse(t, kmip14.OperationCreate, kmip14.ResultStatusSuccess, 0, false, "", payload),
	}}
	c := newTestClient(t, transport)

	id, err := c.CreateAESKey(context.Background(), "k1", "TestGroup")
	require.NoError(t, err)
	assert.Equal(t, "uuid-42", id)

	require.Len(t, transport.sentMessages, 1)
	decoded, err := ttlv.Unmarshal(context.Background(), transport.sentMessages[0])
	require.NoError(t, err)
	req := decoded.(*ttlv.Structure)
	assert.Equal(t, kmip14.TagRequestMessage, req.Tag)

	batchItem := req.Find(kmip14.TagBatchItem).(*ttlv.Structure)
	op := batchItem.Find(kmip14.TagOperation).(*ttlv.Enumeration)
	assert.Equal(t, int32(kmip14.OperationCreate), op.Value)

	reqPayload := batchItem.Find(kmip14.TagRequestPayload).(*ttlv.Structure)
	objType := reqPayload.Find(kmip14.TagObjectType).(*ttlv.Enumeration)
	assert.Equal(t, int32(kmip14.ObjectTypeSymmetricKey), objType.Value)

	tmpl := reqPayload.Find(kmip14.TagTemplateAttribute).(*ttlv.Structure)
	require.Len(t, tmpl.Items, 5)
	var names []string
	for _, item := range tmpl.Items {
		s := item.(*ttlv.Structure)
		names = append(names, s.Find(kmip14.TagAttributeName).(*ttlv.TextString).Value)
	}
	assert.Equal(t, []string{
		"Cryptographic Algorithm",
		"Cryptographic Length",
		"Cryptographic Usage Mask",
		"Name",
		"Object Group",
	}, names)
}

// Scenario 2: Get existing symmetric key.
func TestScenarioGetSymmetricKey(t *testing.T) {
	material := make([]byte, 32)
	for i := range material {
		material[i] = byte(i)
	}
	obj := ttlv.NewStructure(kmip14.TagSymmetricKey,
		ttlv.NewStructure(kmip14.TagKeyBlock,
			&ttlv.Enumeration{Tag: kmip14.TagKeyFormatType, Value: int32(kmip14.KeyFormatTypeRaw)},
			ttlv.NewStructure(kmip14.TagKeyValue, &ttlv.ByteString{Tag: kmip14.TagKeyMaterial, Value: material}),
			&ttlv.Enumeration{Tag: kmip14.TagCryptographicAlgorithm, Value: int32(kmip14.CryptographicAlgorithmAES)},
		),
	)
	payload := ttlv.NewStructure(kmip14.TagResponsePayload,
		&ttlv.Enumeration{Tag: kmip14.TagObjectType, Value: int32(kmip14.ObjectTypeSymmetricKey)},
		obj,
	)
	transport := &fakeTransport{responses: [][]byte{
		buildResponse(t, kmip14.OperationGet, kmip14.ResultStatusSuccess, 0, false, "", payload),
	}}
	c := newTestClient(t, transport)

	key, err := c.GetKey(context.Background(), "uuid-42")
	require.NoError(t, err)
	assert.Equal(t, kmip14.CryptographicAlgorithmAES, key.Algorithm)
	assert.Equal(t, material, key.Material)
}

// Scenario 3: Get with wrapped key material returns ObjectMismatch.
func TestScenarioGetWrappedKey(t *testing.T) {
	obj := ttlv.NewStructure(kmip14.TagSymmetricKey,
		ttlv.NewStructure(kmip14.TagKeyBlock,
			&ttlv.Enumeration{Tag: kmip14.TagKeyFormatType, Value: int32(kmip14.KeyFormatTypeRaw)},
			ttlv.NewStructure(kmip14.TagKeyWrappingData),
		),
	)
	payload := ttlv.NewStructure(kmip14.TagResponsePayload,
		&ttlv.Enumeration{Tag: kmip14.TagObjectType, Value: int32(kmip14.ObjectTypeSymmetricKey)},
		obj,
	)
	transport := &fakeTransport{responses: [][]byte{
		buildResponse(t, kmip14.OperationGet, kmip14.ResultStatusSuccess, 0, false, "", payload),
	}}
	c := newTestClient(t, transport)

	_, err := c.GetKey(context.Background(), "uuid-42")
	require.Error(t, err)
	kerr, ok := AsError(err)
	require.True(t, ok)
	assert.Equal(t, CodeObjectMismatch, kerr.Code)
}

// Scenario 4: Locate-by-group across three pages (16, 16, 1), no located_items.
func TestScenarioLocateByGroupPaging(t *testing.T) {
	page := func(n, start int) *ttlv.Structure {
		items := make([]ttlv.Item, n)
		for i := 0; i < n; i++ {
			items[i] = &ttlv.TextString{Tag: kmip14.TagUniqueIdentifier, Value: idAt(start + i)}
		}

		return ttlv.NewStructure(kmip14.TagResponsePayload, items...)
	}

	transport := &fakeTransport{responses: [][]byte{
		buildResponse(t, kmip14.OperationLocate, kmip14.ResultStatusSuccess, 0, false, "", page(16, 0)),
		buildResponse(t, kmip14.OperationLocate, kmip14.ResultStatusSuccess, 0, false, "", page(16, 16)),
		buildResponse(t, kmip14.OperationLocate, kmip14.ResultStatusSuccess, 0, false, "", page(1, 32)),
	}}
	c := newTestClient(t, transport)

	ids, err := c.LocateByGroup(context.Background(), kmip14.ObjectTypeSymmetricKey, "g")
	require.NoError(t, err)
	require.Len(t, ids, 33)
	assert.Equal(t, idAt(0), ids[0])
	assert.Equal(t, idAt(32), ids[32])
	assert.Len(t, transport.sentMessages, 3)

	offsets := make([]int32, 3)
	for i, sent := range transport.sentMessages {
		decoded, err := ttlv.Unmarshal(context.Background(), sent)
		require.NoError(t, err)
		req := decoded.(*ttlv.Structure)
		reqPayload := req.Find(kmip14.TagBatchItem).(*ttlv.Structure).Find(kmip14.TagRequestPayload).(*ttlv.Structure)
		offsets[i] = reqPayload.Find(kmip14.TagOffsetItems).(*ttlv.Integer).Value
	}
	assert.Equal(t, []int32{0, 16, 32}, offsets)
}

func idAt(i int) string {
	return "id-" + string(rune('A'+i%26)) + string(rune('0'+(i/26)%10))
}

// Scenario 5: server-reported failure on Activate.
func TestScenarioServerReportedFailure(t *testing.T) {
	transport := &fakeTransport{responses: [][]byte{
		buildResponse(t, kmip14.OperationActivate, kmip14.ResultStatusOperationFailed, kmip14.ResultReasonPermissionDenied, true, "object destroyed", nil),
	}}
	c := newTestClient(t, transport)

	_, err := c.Activate(context.Background(), "uuid-42")
	require.Error(t, err)
	kerr, ok := AsError(err)
	require.True(t, ok)
	assert.Equal(t, CodeServerError, kerr.Code)
	assert.Equal(t, kmip14.ResultStatusOperationFailed, kerr.Status)
	assert.Equal(t, kmip14.ResultReasonPermissionDenied, kerr.Reason)
	assert.Equal(t, "object destroyed", kerr.Message)
}

// Scenario 6: oversized response is rejected before the body is read.
func TestScenarioOversizedResponse(t *testing.T) {
	header := make([]byte, 8)
	header[0], header[1], header[2] = 0x42, 0x00, 0x7B
	header[3] = byte(ttlv.TypeStructure)
	binary.BigEndian.PutUint32(header[4:8], 16*1024*1024)

	transport := &fakeTransport{responses: [][]byte{header}}
	c := newTestClient(t, transport, WithMaxMessageSize(8*1024*1024))

	_, err := c.Activate(context.Background(), "uuid-42")
	require.Error(t, err)
	kerr, ok := AsError(err)
	require.True(t, ok)
	assert.Equal(t, CodeMessageTooLarge, kerr.Code)
	assert.True(t, transport.connected, "transport must stay usable after a MessageTooLarge rejection")
}

func TestCreateAESKeyRejectsEmptyName(t *testing.T) {
	transport := &fakeTransport{}
	c := newTestClient(t, transport)

	_, err := c.CreateAESKey(context.Background(), "", "")
	require.Error(t, err)
	kerr, ok := AsError(err)
	require.True(t, ok)
	assert.Equal(t, CodeArgInvalid, kerr.Code)
	assert.Empty(t, transport.sentMessages)
}
