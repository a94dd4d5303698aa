package message

import (
	"fmt"

	"github.com/openkmip/kmipclient/kmip14"
	"github.com/openkmip/kmipclient/ttlv"
)

// BuildGetRequest builds a Get request payload for the object
// identified by id. The core only ever requests the object's native
// format; it never asks the server to wrap or re-encode key material.
func BuildGetRequest(id string) *ttlv.Structure {
	return ttlv.NewStructure(kmip14.TagRequestPayload,
		&ttlv.TextString{Tag: kmip14.TagUniqueIdentifier, Value: id},
	)
}

func getResponseObject(payload *ttlv.Structure, wantType kmip14.ObjectType, objectTag ttlv.Tag) (*ttlv.Structure, error) {
	if payload == nil {
		return nil, fmt.Errorf("%w: Get response has no payload", ErrMalformedResponse)
	}
	objType, err := ttlv.RequireChild[*ttlv.Enumeration](payload, kmip14.TagObjectType)
	if err != nil {
		return nil, err
	}
	if objType == nil {
		return nil, fmt.Errorf("%w: Get response missing ObjectType", ErrMalformedResponse)
	}
	if kmip14.ObjectType(objType.Value) != wantType {
		return nil, fmt.Errorf("%w: expected object type %s, got %s", ErrObjectMismatch, wantType, kmip14.ObjectType(objType.Value))
	}
	obj, err := ttlv.RequireChild[*ttlv.Structure](payload, objectTag)
	if err != nil {
		return nil, err
	}
	if obj == nil {
		return nil, fmt.Errorf("%w: Get response missing managed object for %s", ErrMalformedResponse, wantType)
	}

	return obj, nil
}

// ExtractGetKeyResponse extracts a raw symmetric key from a Get
// response payload. It rejects any response whose object type is not
// SymmetricKey, whose key format is not Raw, or whose key material
// arrived wrapped.
func ExtractGetKeyResponse(payload *ttlv.Structure) (Key, error) {
	obj, err := getResponseObject(payload, kmip14.ObjectTypeSymmetricKey, kmip14.TagSymmetricKey)
	if err != nil {
		return Key{}, err
	}
	block, err := decodeKeyBlock(obj)
	if err != nil {
		return Key{}, err
	}
	if block.Wrapped {
		return Key{}, fmt.Errorf("%w: key material returned wrapped", ErrObjectMismatch)
	}
	if block.FormatType != kmip14.KeyFormatTypeRaw {
		return Key{}, fmt.Errorf("%w: expected Raw key format, got %s", ErrObjectMismatch, block.FormatType)
	}

	return Key{Algorithm: block.CryptographicAlgorithm, Material: block.Material}, nil
}

// ExtractGetSecretResponse extracts opaque secret data from a Get
// response payload. It rejects any response whose object type is not
// SecretData, whose format is not Opaque, or whose material arrived
// wrapped.
func ExtractGetSecretResponse(payload *ttlv.Structure) (Secret, error) {
	obj, err := getResponseObject(payload, kmip14.ObjectTypeSecretData, kmip14.TagSecretData)
	if err != nil {
		return Secret{}, err
	}
	block, err := decodeKeyBlock(obj)
	if err != nil {
		return Secret{}, err
	}
	if block.Wrapped {
		return Secret{}, fmt.Errorf("%w: secret material returned wrapped", ErrObjectMismatch)
	}
	if block.FormatType != kmip14.KeyFormatTypeOpaque {
		return Secret{}, fmt.Errorf("%w: expected Opaque key format, got %s", ErrObjectMismatch, block.FormatType)
	}

	return Secret{Material: block.Material, SecretType: decodeSecretDataType(obj)}, nil
}
