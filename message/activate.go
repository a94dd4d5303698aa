package message

import (
	"fmt"

	"github.com/openkmip/kmipclient/kmip14"
	"github.com/openkmip/kmipclient/ttlv"
)

// BuildActivateRequest builds an Activate request payload.
func BuildActivateRequest(id string) *ttlv.Structure {
	return ttlv.NewStructure(kmip14.TagRequestPayload,
		&ttlv.TextString{Tag: kmip14.TagUniqueIdentifier, Value: id},
	)
}

// ExtractActivateResponse returns the activated object's unique
// identifier, echoed back by the server.
func ExtractActivateResponse(payload *ttlv.Structure) (string, error) {
	return extractEchoedID(payload, "Activate")
}

func extractEchoedID(payload *ttlv.Structure, operation string) (string, error) {
	if payload == nil {
		return "", fmt.Errorf("%w: %s response has no payload", ErrMalformedResponse, operation)
	}
	id, err := ttlv.RequireChild[*ttlv.TextString](payload, kmip14.TagUniqueIdentifier)
	if err != nil {
		return "", err
	}
	if id == nil {
		return "", fmt.Errorf("%w: %s response missing UniqueIdentifier", ErrMalformedResponse, operation)
	}

	return id.Value, nil
}
