package message

import (
	"fmt"

	"github.com/openkmip/kmipclient/kmip14"
	"github.com/openkmip/kmipclient/ttlv"
)

// BuildCreateAESRequest builds a Create request payload for a 256-bit
// AES symmetric key, with attributes in the exact order the core
// profile requires: CryptographicAlgorithm, CryptographicLength,
// CryptographicUsageMask, Name, then ObjectGroup when group is
// non-empty.
func BuildCreateAESRequest(name, group string) *ttlv.Structure {
	attrs := []*ttlv.Structure{
		attributeCryptographicAlgorithm(kmip14.CryptographicAlgorithmAES),
		attributeCryptographicLength(256),
		attributeCryptographicUsageMask(kmip14.CryptographicUsageMaskEncrypt | kmip14.CryptographicUsageMaskDecrypt),
		attributeName(name),
	}
	if group != "" {
		attrs = append(attrs, attributeObjectGroup(group))
	}

	return ttlv.NewStructure(kmip14.TagRequestPayload,
		&ttlv.Enumeration{Tag: kmip14.TagObjectType, Value: int32(kmip14.ObjectTypeSymmetricKey)},
		newTemplateAttribute(attrs...),
	)
}

// ExtractCreateResponse pulls the server-assigned unique identifier
// out of a Create response payload.
func ExtractCreateResponse(payload *ttlv.Structure) (string, error) {
	if payload == nil {
		return "", fmt.Errorf("%w: Create response has no payload", ErrMalformedResponse)
	}
	id, err := ttlv.RequireChild[*ttlv.TextString](payload, kmip14.TagUniqueIdentifier)
	if err != nil {
		return "", err
	}
	if id == nil {
		return "", fmt.Errorf("%w: Create response missing UniqueIdentifier", ErrMalformedResponse)
	}

	return id.Value, nil
}
