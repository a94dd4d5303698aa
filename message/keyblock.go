package message

import (
	"fmt"

	"github.com/openkmip/kmipclient/kmip14"
	"github.com/openkmip/kmipclient/ttlv"
)

// keyBlock is the decoded form of a KeyBlock structure, the container
// KMIP uses inside every ManagedObject to carry key or secret
// material along with its format and algorithm metadata.
type keyBlock struct {
	FormatType             kmip14.KeyFormatType
	Material               []byte
	CryptographicAlgorithm kmip14.CryptographicAlgorithm
	CryptographicLength    int32
	Wrapped                bool
}

func buildSymmetricKeyObject(material []byte, alg kmip14.CryptographicAlgorithm) *ttlv.Structure {
	keyValue := ttlv.NewStructure(kmip14.TagKeyValue, &ttlv.ByteString{Tag: kmip14.TagKeyMaterial, Value: material})
	block := ttlv.NewStructure(kmip14.TagKeyBlock,
		&ttlv.Enumeration{Tag: kmip14.TagKeyFormatType, Value: int32(kmip14.KeyFormatTypeRaw)},
		keyValue,
		&ttlv.Enumeration{Tag: kmip14.TagCryptographicAlgorithm, Value: int32(alg)},
		&ttlv.Integer{Tag: kmip14.TagCryptographicLength, Value: int32(len(material) * 8)},
	)

	return ttlv.NewStructure(kmip14.TagSymmetricKey, block)
}

func buildSecretDataObject(material []byte, secretType int32) *ttlv.Structure {
	keyValue := ttlv.NewStructure(kmip14.TagKeyValue, &ttlv.ByteString{Tag: kmip14.TagKeyMaterial, Value: material})
	block := ttlv.NewStructure(kmip14.TagKeyBlock,
		&ttlv.Enumeration{Tag: kmip14.TagKeyFormatType, Value: int32(kmip14.KeyFormatTypeOpaque)},
		keyValue,
	)

	return ttlv.NewStructure(kmip14.TagSecretData,
		block,
		&ttlv.Enumeration{Tag: kmip14.TagSecretDataType, Value: secretType},
	)
}

func decodeKeyBlock(managedObject *ttlv.Structure) (keyBlock, error) {
	block, err := ttlv.RequireChild[*ttlv.Structure](managedObject, kmip14.TagKeyBlock)
	if err != nil {
		return keyBlock{}, err
	}
	if block == nil {
		return keyBlock{}, fmt.Errorf("%w: managed object missing KeyBlock", ErrMalformedResponse)
	}

	formatType, err := ttlv.RequireChild[*ttlv.Enumeration](block, kmip14.TagKeyFormatType)
	if err != nil {
		return keyBlock{}, err
	}
	if formatType == nil {
		return keyBlock{}, fmt.Errorf("%w: KeyBlock missing KeyFormatType", ErrMalformedResponse)
	}

	wrapped := block.Find(kmip14.TagKeyWrappingData) != nil

	var material []byte
	if !wrapped {
		if kv, ok := block.Find(kmip14.TagKeyValue).(*ttlv.Structure); ok {
			if m, ok := kv.Find(kmip14.TagKeyMaterial).(*ttlv.ByteString); ok {
				material = m.Value
			}
		}
	}

	var alg kmip14.CryptographicAlgorithm
	if a, ok := block.Find(kmip14.TagCryptographicAlgorithm).(*ttlv.Enumeration); ok {
		alg = kmip14.CryptographicAlgorithm(a.Value)
	}
	var length int32
	if l, ok := block.Find(kmip14.TagCryptographicLength).(*ttlv.Integer); ok {
		length = l.Value
	}

	return keyBlock{
		FormatType:             kmip14.KeyFormatType(formatType.Value),
		Material:               material,
		CryptographicAlgorithm: alg,
		CryptographicLength:    length,
		Wrapped:                wrapped,
	}, nil
}

func decodeSecretDataType(managedObject *ttlv.Structure) int32 {
	if t, ok := managedObject.Find(kmip14.TagSecretDataType).(*ttlv.Enumeration); ok {
		return t.Value
	}

	return 0
}
