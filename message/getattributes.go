package message

import (
	"fmt"

	"github.com/openkmip/kmipclient/kmip14"
	"github.com/openkmip/kmipclient/ttlv"
)

// BuildGetAttributesRequest builds a GetAttributes request payload
// for a single named attribute.
func BuildGetAttributesRequest(id, attributeName string) *ttlv.Structure {
	return ttlv.NewStructure(kmip14.TagRequestPayload,
		&ttlv.TextString{Tag: kmip14.TagUniqueIdentifier, Value: id},
		&ttlv.TextString{Tag: kmip14.TagAttributeName, Value: attributeName},
	)
}

// ExtractGetAttributesResponse returns the requested attribute's
// unique identifier and rendered value. Known attribute names ("Name",
// "State", "Unique Identifier") are rendered as their natural string
// form; any other attribute name renders as "(not converted)" and
// callers must not depend on its shape.
func ExtractGetAttributesResponse(payload *ttlv.Structure, attributeName string) (id string, value string, err error) {
	if payload == nil {
		return "", "", fmt.Errorf("%w: GetAttributes response has no payload", ErrMalformedResponse)
	}
	idItem, err := ttlv.RequireChild[*ttlv.TextString](payload, kmip14.TagUniqueIdentifier)
	if err != nil {
		return "", "", err
	}
	if idItem == nil {
		return "", "", fmt.Errorf("%w: GetAttributes response missing UniqueIdentifier", ErrMalformedResponse)
	}

	attr := findAttribute(payload, attributeName)
	if attr == nil {
		return "", "", fmt.Errorf("%w: GetAttributes response missing attribute %q", ErrMalformedResponse, attributeName)
	}
	rendered, err := renderAttributeValue(attr, attributeName)
	if err != nil {
		return "", "", err
	}

	return idItem.Value, rendered, nil
}
