package message

import (
	"fmt"

	"github.com/openkmip/kmipclient/kmip14"
	"github.com/openkmip/kmipclient/ttlv"
)

// attribute wraps a named value into the {AttributeName, AttributeValue}
// structure KMIP uses for every attribute, regardless of the value's
// underlying wire type.
func attribute(name string, value ttlv.Item) *ttlv.Structure {
	return ttlv.NewStructure(kmip14.TagAttribute,
		&ttlv.TextString{Tag: kmip14.TagAttributeName, Value: name},
		value,
	)
}

func attributeName(name string) *ttlv.Structure {
	value := ttlv.NewStructure(kmip14.TagAttributeValue,
		&ttlv.TextString{Tag: kmip14.TagNameValue, Value: name},
		&ttlv.Enumeration{Tag: kmip14.TagNameType, Value: int32(kmip14.NameTypeUninterpretedTextString)},
	)

	return attribute(kmip14.AttributeNameName, value)
}

func attributeObjectGroup(group string) *ttlv.Structure {
	return attribute(kmip14.AttributeNameObjectGroup, &ttlv.TextString{Tag: kmip14.TagAttributeValue, Value: group})
}

func attributeCryptographicAlgorithm(alg kmip14.CryptographicAlgorithm) *ttlv.Structure {
	return attribute(kmip14.AttributeNameCryptographicAlgorithm, &ttlv.Enumeration{Tag: kmip14.TagAttributeValue, Value: int32(alg)})
}

func attributeCryptographicLength(bits int32) *ttlv.Structure {
	return attribute(kmip14.AttributeNameCryptographicLength, &ttlv.Integer{Tag: kmip14.TagAttributeValue, Value: bits})
}

func attributeCryptographicUsageMask(mask int32) *ttlv.Structure {
	return attribute(kmip14.AttributeNameCryptographicUsageMask, &ttlv.Integer{Tag: kmip14.TagAttributeValue, Value: mask})
}

// newTemplateAttribute assembles a TemplateAttribute structure from an
// ordered list of attributes. Callers must pass attributes in the
// order the KMIP profile requires; this function does not reorder.
func newTemplateAttribute(attrs ...*ttlv.Structure) *ttlv.Structure {
	items := make([]ttlv.Item, len(attrs))
	for i, a := range attrs {
		items[i] = a
	}

	return ttlv.NewStructure(kmip14.TagTemplateAttribute, items...)
}

// findAttribute returns the Attribute structure named name among
// container's direct Attribute children (such as those of a
// GetAttributes response payload), or nil if absent.
func findAttribute(container *ttlv.Structure, name string) *ttlv.Structure {
	for _, item := range container.Items {
		s, ok := item.(*ttlv.Structure)
		if !ok || s.Tag != kmip14.TagAttribute {
			continue
		}
		nameItem, ok := s.Find(kmip14.TagAttributeName).(*ttlv.TextString)
		if ok && nameItem.Value == name {
			return s
		}
	}

	return nil
}

// renderAttributeValue formats the AttributeValue of attr for the
// named attribute. KMIP identifies attributes by name, and Name is
// itself a structured value, so this dispatches on name the way
// GetAttributes callers are expected to.
func renderAttributeValue(attr *ttlv.Structure, name string) (string, error) {
	value := attr.Find(kmip14.TagAttributeValue)
	if value == nil {
		return "", fmt.Errorf("%w: attribute %q has no value", ErrMalformedResponse, name)
	}

	switch name {
	case kmip14.AttributeNameName:
		s, err := ttlv.AssertType[*ttlv.Structure](kmip14.TagAttributeValue, value)
		if err != nil {
			return "", err
		}
		nameValue, err := ttlv.RequireChild[*ttlv.TextString](s, kmip14.TagNameValue)
		if err != nil {
			return "", err
		}
		if nameValue == nil {
			return "", fmt.Errorf("%w: Name attribute missing NameValue", ErrMalformedResponse)
		}

		return nameValue.Value, nil
	case kmip14.AttributeNameState:
		enum, err := ttlv.AssertType[*ttlv.Enumeration](kmip14.TagAttributeValue, value)
		if err != nil {
			return "", err
		}

		return kmip14.State(enum.Value).String(), nil
	case kmip14.AttributeNameUniqueIdentifier:
		text, err := ttlv.AssertType[*ttlv.TextString](kmip14.TagAttributeValue, value)
		if err != nil {
			return "", err
		}

		return text.Value, nil
	default:
		return "(not converted)", nil
	}
}
