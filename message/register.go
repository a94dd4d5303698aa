package message

import (
	"fmt"

	"github.com/openkmip/kmipclient/kmip14"
	"github.com/openkmip/kmipclient/ttlv"
)

// BuildRegisterSymmetricKeyRequest builds a Register request payload
// for pre-existing AES key material. The KeyBlock deliberately omits
// KeyCompressionType; some servers (HashiCorp Vault among them)
// reject a Register request that sets it at all.
func BuildRegisterSymmetricKeyRequest(name, group string, key []byte) *ttlv.Structure {
	attrs := []*ttlv.Structure{
		attributeCryptographicAlgorithm(kmip14.CryptographicAlgorithmAES),
		attributeCryptographicLength(int32(len(key) * 8)),
		attributeCryptographicUsageMask(kmip14.CryptographicUsageMaskEncrypt | kmip14.CryptographicUsageMaskDecrypt),
		attributeName(name),
	}
	if group != "" {
		attrs = append(attrs, attributeObjectGroup(group))
	}

	return ttlv.NewStructure(kmip14.TagRequestPayload,
		&ttlv.Enumeration{Tag: kmip14.TagObjectType, Value: int32(kmip14.ObjectTypeSymmetricKey)},
		newTemplateAttribute(attrs...),
		buildSymmetricKeyObject(key, kmip14.CryptographicAlgorithmAES),
	)
}

// BuildRegisterSecretRequest builds a Register request payload for
// opaque secret data (a password, token, or other non-key blob).
func BuildRegisterSecretRequest(name, group string, secret []byte, secretType int32) *ttlv.Structure {
	attrs := []*ttlv.Structure{
		attributeCryptographicUsageMask(kmip14.CryptographicUsageMaskEncrypt | kmip14.CryptographicUsageMaskDecrypt | kmip14.CryptographicUsageMaskExport),
		attributeName(name),
	}
	if group != "" {
		attrs = append(attrs, attributeObjectGroup(group))
	}

	return ttlv.NewStructure(kmip14.TagRequestPayload,
		&ttlv.Enumeration{Tag: kmip14.TagObjectType, Value: int32(kmip14.ObjectTypeSecretData)},
		newTemplateAttribute(attrs...),
		buildSecretDataObject(secret, secretType),
	)
}

// ExtractRegisterResponse pulls the server-assigned unique identifier
// out of a Register response payload.
func ExtractRegisterResponse(payload *ttlv.Structure) (string, error) {
	if payload == nil {
		return "", fmt.Errorf("%w: Register response has no payload", ErrMalformedResponse)
	}
	id, err := ttlv.RequireChild[*ttlv.TextString](payload, kmip14.TagUniqueIdentifier)
	if err != nil {
		return "", err
	}
	if id == nil {
		return "", fmt.Errorf("%w: Register response missing UniqueIdentifier", ErrMalformedResponse)
	}

	return id.Value, nil
}
