// Package message builds and parses the KMIP request/response message
// tree on top of the ttlv wire codec: headers, batch items, operation
// payloads, attributes and key material. Each operation gets a pair
// of functions, BuildXRequest and ExtractXResponse, that the exchange
// engine in kmipclient drives.
package message

import (
	"fmt"
	"time"

	"github.com/openkmip/kmipclient/kmip14"
	"github.com/openkmip/kmipclient/ttlv"
)

// ProtocolVersion identifies the KMIP protocol revision carried in
// every request header.
type ProtocolVersion struct {
	Major int32
	Minor int32
}

var (
	ProtocolVersion10 = ProtocolVersion{Major: 1, Minor: 0}
	ProtocolVersion12 = ProtocolVersion{Major: 1, Minor: 2}
	ProtocolVersion14 = ProtocolVersion{Major: 1, Minor: 4}
)

func (v ProtocolVersion) ttlv() *ttlv.Structure {
	return ttlv.NewStructure(kmip14.TagProtocolVersion,
		&ttlv.Integer{Tag: kmip14.TagProtocolVersionMajor, Value: v.Major},
		&ttlv.Integer{Tag: kmip14.TagProtocolVersionMinor, Value: v.Minor},
	)
}

func decodeProtocolVersion(item ttlv.Item) (ProtocolVersion, error) {
	s, err := ttlv.AssertType[*ttlv.Structure](kmip14.TagProtocolVersion, item)
	if err != nil {
		return ProtocolVersion{}, err
	}
	if s == nil {
		return ProtocolVersion{}, fmt.Errorf("%w: ProtocolVersion is not a structure", ErrMalformedResponse)
	}
	major, err := ttlv.RequireChild[*ttlv.Integer](s, kmip14.TagProtocolVersionMajor)
	if err != nil {
		return ProtocolVersion{}, err
	}
	if major == nil {
		return ProtocolVersion{}, fmt.Errorf("%w: ProtocolVersion missing major", ErrMalformedResponse)
	}
	minor, err := ttlv.RequireChild[*ttlv.Integer](s, kmip14.TagProtocolVersionMinor)
	if err != nil {
		return ProtocolVersion{}, err
	}
	if minor == nil {
		return ProtocolVersion{}, fmt.Errorf("%w: ProtocolVersion missing minor", ErrMalformedResponse)
	}

	return ProtocolVersion{Major: major.Value, Minor: minor.Value}, nil
}

// RequestHeader carries the protocol version, the optional response
// size ceiling the client wants to advertise, a timestamp, and the
// batch count (always 1 in the core profile).
type RequestHeader struct {
	Version             ProtocolVersion
	MaximumResponseSize int32
	TimeStamp           time.Time
	BatchCount          int32
}

func (h RequestHeader) ttlv() *ttlv.Structure {
	items := []ttlv.Item{
		h.Version.ttlv(),
	}
	if h.MaximumResponseSize > 0 {
		items = append(items, &ttlv.Integer{Tag: kmip14.TagMaximumResponseSize, Value: h.MaximumResponseSize})
	}
	items = append(items,
		&ttlv.DateTime{Tag: kmip14.TagTimeStamp, Value: h.TimeStamp},
		&ttlv.Integer{Tag: kmip14.TagBatchCount, Value: h.BatchCount},
	)

	return ttlv.NewStructure(kmip14.TagRequestHeader, items...)
}

// RequestBatchItem carries one operation and its request payload. The
// UniqueBatchItemID, when set, is echoed verbatim by a conforming
// server and lets the exchange engine confirm the response it reads
// answers the request it sent.
type RequestBatchItem struct {
	Operation         kmip14.Operation
	UniqueBatchItemID []byte
	Payload           *ttlv.Structure
}

func (b RequestBatchItem) ttlv() *ttlv.Structure {
	items := []ttlv.Item{
		&ttlv.Enumeration{Tag: kmip14.TagOperation, Value: int32(b.Operation)},
	}
	if len(b.UniqueBatchItemID) > 0 {
		items = append(items, &ttlv.ByteString{Tag: kmip14.TagUniqueBatchItemID, Value: b.UniqueBatchItemID})
	}
	items = append(items, b.Payload)

	return ttlv.NewStructure(kmip14.TagBatchItem, items...)
}

// RequestMessage is the top-level request envelope; the core profile
// always carries exactly one batch item.
type RequestMessage struct {
	Header RequestHeader
	Item   RequestBatchItem
}

// TTLV renders the request as an encodable TTLV tree.
func (m RequestMessage) TTLV() *ttlv.Structure {
	m.Header.BatchCount = 1

	return ttlv.NewStructure(kmip14.TagRequestMessage, m.Header.ttlv(), m.Item.ttlv())
}

// ResponseHeader mirrors RequestHeader for a decoded response.
type ResponseHeader struct {
	Version    ProtocolVersion
	TimeStamp  time.Time
	BatchCount int32
}

// ResponseBatchItem carries the echoed operation, the server's result
// status and optional reason/message, and the raw operation-specific
// payload for an extractor to interpret.
type ResponseBatchItem struct {
	Operation         kmip14.Operation
	UniqueBatchItemID []byte
	ResultStatus      kmip14.ResultStatus
	ResultReason      kmip14.ResultReason
	HasResultReason   bool
	ResultMessage     string
	Payload           *ttlv.Structure
}

// ResponseMessage is the top-level decoded response envelope.
type ResponseMessage struct {
	Header ResponseHeader
	Item   ResponseBatchItem
}

// DecodeResponseMessage parses a decoded top-level ttlv.Item into a
// ResponseMessage. It enforces the core profile's batch_count == 1
// invariant but does not interpret the payload; callers pass
// Item.Payload to the operation-specific extractor.
func DecodeResponseMessage(item ttlv.Item) (*ResponseMessage, error) {
	root, err := ttlv.AssertType[*ttlv.Structure](kmip14.TagResponseMessage, item)
	if err != nil {
		return nil, err
	}
	if root == nil || root.Tag != kmip14.TagResponseMessage {
		return nil, fmt.Errorf("%w: top-level item is not a ResponseMessage", ErrMalformedResponse)
	}

	headerStruct, err := ttlv.RequireChild[*ttlv.Structure](root, kmip14.TagResponseHeader)
	if err != nil {
		return nil, err
	}
	if headerStruct == nil {
		return nil, fmt.Errorf("%w: missing ResponseHeader", ErrMalformedResponse)
	}
	header, err := decodeResponseHeader(headerStruct)
	if err != nil {
		return nil, err
	}
	if header.BatchCount != 1 {
		return nil, fmt.Errorf("%w: batch_count %d, core profile requires exactly 1", ErrMalformedResponse, header.BatchCount)
	}

	batchStruct, err := ttlv.RequireChild[*ttlv.Structure](root, kmip14.TagBatchItem)
	if err != nil {
		return nil, err
	}
	if batchStruct == nil {
		return nil, fmt.Errorf("%w: missing BatchItem", ErrMalformedResponse)
	}
	item2, err := decodeResponseBatchItem(batchStruct)
	if err != nil {
		return nil, err
	}

	return &ResponseMessage{Header: header, Item: item2}, nil
}

func decodeResponseHeader(s *ttlv.Structure) (ResponseHeader, error) {
	versionItem := s.Find(kmip14.TagProtocolVersion)
	if versionItem == nil {
		return ResponseHeader{}, fmt.Errorf("%w: ResponseHeader missing ProtocolVersion", ErrMalformedResponse)
	}
	version, err := decodeProtocolVersion(versionItem)
	if err != nil {
		return ResponseHeader{}, err
	}

	ts, _ := s.Find(kmip14.TagTimeStamp).(*ttlv.DateTime)
	var tsValue time.Time
	if ts != nil {
		tsValue = ts.Value
	}

	count, err := ttlv.RequireChild[*ttlv.Integer](s, kmip14.TagBatchCount)
	if err != nil {
		return ResponseHeader{}, err
	}
	if count == nil {
		return ResponseHeader{}, fmt.Errorf("%w: ResponseHeader missing BatchCount", ErrMalformedResponse)
	}

	return ResponseHeader{Version: version, TimeStamp: tsValue, BatchCount: count.Value}, nil
}

func decodeResponseBatchItem(s *ttlv.Structure) (ResponseBatchItem, error) {
	op, err := ttlv.RequireChild[*ttlv.Enumeration](s, kmip14.TagOperation)
	if err != nil {
		return ResponseBatchItem{}, err
	}
	if op == nil {
		return ResponseBatchItem{}, fmt.Errorf("%w: BatchItem missing Operation", ErrMalformedResponse)
	}

	status, err := ttlv.RequireChild[*ttlv.Enumeration](s, kmip14.TagResultStatus)
	if err != nil {
		return ResponseBatchItem{}, err
	}
	if status == nil {
		return ResponseBatchItem{}, fmt.Errorf("%w: BatchItem missing ResultStatus", ErrMalformedResponse)
	}

	item := ResponseBatchItem{
		Operation:    kmip14.Operation(op.Value),
		ResultStatus: kmip14.ResultStatus(status.Value),
	}

	if id, ok := s.Find(kmip14.TagUniqueBatchItemID).(*ttlv.ByteString); ok {
		item.UniqueBatchItemID = id.Value
	}
	if reason, ok := s.Find(kmip14.TagResultReason).(*ttlv.Enumeration); ok {
		item.ResultReason = kmip14.ResultReason(reason.Value)
		item.HasResultReason = true
	}
	if msg, ok := s.Find(kmip14.TagResultMessage).(*ttlv.TextString); ok {
		item.ResultMessage = msg.Value
	}
	if payload, ok := s.Find(kmip14.TagResponsePayload).(*ttlv.Structure); ok {
		item.Payload = payload
	}

	return item, nil
}
