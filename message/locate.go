package message

import (
	"github.com/openkmip/kmipclient/kmip14"
	"github.com/openkmip/kmipclient/ttlv"
)

func locatePayload(maximumItems, offsetItems int32, attrs []*ttlv.Structure) *ttlv.Structure {
	items := []ttlv.Item{
		&ttlv.Integer{Tag: kmip14.TagMaximumItems, Value: maximumItems},
		&ttlv.Integer{Tag: kmip14.TagOffsetItems, Value: offsetItems},
		&ttlv.Integer{Tag: kmip14.TagStorageStatusMask, Value: 1},
		&ttlv.Enumeration{Tag: kmip14.TagGroupMemberOption, Value: int32(kmip14.GroupMemberOptionFresh)},
	}
	for _, a := range attrs {
		items = append(items, a)
	}

	return ttlv.NewStructure(kmip14.TagRequestPayload, items...)
}

func objectTypeAttribute(objectType kmip14.ObjectType) *ttlv.Structure {
	return attribute(kmip14.AttributeNameObjectType, &ttlv.Enumeration{Tag: kmip14.TagAttributeValue, Value: int32(objectType)})
}

// BuildLocateAllRequest builds a Locate request payload matching every
// object of the given type; only ObjectType is sent as a filter.
func BuildLocateAllRequest(maximumItems, offsetItems int32, objectType kmip14.ObjectType) *ttlv.Structure {
	return locatePayload(maximumItems, offsetItems, []*ttlv.Structure{objectTypeAttribute(objectType)})
}

// BuildLocateByNameRequest builds a Locate request payload filtering
// on object type and Name. An empty name is equivalent to
// BuildLocateAllRequest: the Name attribute is omitted.
func BuildLocateByNameRequest(maximumItems, offsetItems int32, objectType kmip14.ObjectType, name string) *ttlv.Structure {
	attrs := []*ttlv.Structure{objectTypeAttribute(objectType)}
	if name != "" {
		attrs = append(attrs, attributeName(name))
	}

	return locatePayload(maximumItems, offsetItems, attrs)
}

// BuildLocateByGroupRequest builds a Locate request payload filtering
// on object type and ObjectGroup. An empty group is equivalent to
// BuildLocateAllRequest: the ObjectGroup attribute is omitted.
func BuildLocateByGroupRequest(maximumItems, offsetItems int32, objectType kmip14.ObjectType, group string) *ttlv.Structure {
	attrs := []*ttlv.Structure{objectTypeAttribute(objectType)}
	if group != "" {
		attrs = append(attrs, attributeObjectGroup(group))
	}

	return locatePayload(maximumItems, offsetItems, attrs)
}

// LocatePage is one page of a Locate response: the ids returned and,
// when the server reports it, the total number of matching objects.
type LocatePage struct {
	IDs             []string
	LocatedItems    int32
	HasLocatedItems bool
}

// ExtractLocateResponse reads one page of unique identifiers, and the
// optional LocatedItems total, out of a Locate response payload. A
// payload with no UniqueIdentifier children is a valid empty page,
// not an error.
func ExtractLocateResponse(payload *ttlv.Structure) (LocatePage, error) {
	if payload == nil {
		return LocatePage{}, nil
	}

	var page LocatePage
	for _, item := range payload.Items {
		switch v := item.(type) {
		case *ttlv.TextString:
			if v.Tag == kmip14.TagUniqueIdentifier {
				page.IDs = append(page.IDs, v.Value)
			}
		case *ttlv.Integer:
			if v.Tag == kmip14.TagLocatedItems {
				page.LocatedItems = v.Value
				page.HasLocatedItems = true
			}
		}
	}

	return page, nil
}
