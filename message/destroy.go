package message

import (
	"github.com/openkmip/kmipclient/kmip14"
	"github.com/openkmip/kmipclient/ttlv"
)

// BuildDestroyRequest builds a Destroy request payload.
func BuildDestroyRequest(id string) *ttlv.Structure {
	return ttlv.NewStructure(kmip14.TagRequestPayload,
		&ttlv.TextString{Tag: kmip14.TagUniqueIdentifier, Value: id},
	)
}

// ExtractDestroyResponse returns the destroyed object's unique
// identifier, echoed back by the server.
func ExtractDestroyResponse(payload *ttlv.Structure) (string, error) {
	return extractEchoedID(payload, "Destroy")
}
