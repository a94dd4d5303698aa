package message

import (
	"time"

	"github.com/openkmip/kmipclient/kmip14"
	"github.com/openkmip/kmipclient/ttlv"
)

// BuildRevokeRequest builds a Revoke request payload. message may be
// empty, in which case the RevocationMessage field is omitted.
// occurredAt may be the zero time, in which case
// CompromiseOccurrenceDate is omitted (only meaningful for a
// KeyCompromise reason).
func BuildRevokeRequest(id string, reason kmip14.RevocationReasonCode, message string, occurredAt time.Time) *ttlv.Structure {
	reasonItems := []ttlv.Item{
		&ttlv.Enumeration{Tag: kmip14.TagRevocationReasonCode, Value: int32(reason)},
	}
	if message != "" {
		reasonItems = append(reasonItems, &ttlv.TextString{Tag: kmip14.TagRevocationMessage, Value: message})
	}

	items := []ttlv.Item{
		&ttlv.TextString{Tag: kmip14.TagUniqueIdentifier, Value: id},
		ttlv.NewStructure(kmip14.TagRevocationReason, reasonItems...),
	}
	if !occurredAt.IsZero() {
		items = append(items, &ttlv.DateTime{Tag: kmip14.TagCompromiseOccurrenceDate, Value: occurredAt})
	}

	return ttlv.NewStructure(kmip14.TagRequestPayload, items...)
}

// ExtractRevokeResponse returns the revoked object's unique
// identifier, echoed back by the server.
func ExtractRevokeResponse(payload *ttlv.Structure) (string, error) {
	return extractEchoedID(payload, "Revoke")
}
