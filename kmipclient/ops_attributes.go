package kmipclient

import (
	"context"

	"github.com/openkmip/kmipclient/kmip14"
	"github.com/openkmip/kmipclient/message"
)

// GetAttribute fetches one named attribute's value for a managed
// object. "Name", "State", and "Unique Identifier" render as their
// natural string form; any other attribute name renders as
// "(not converted)" and callers must not depend on its shape.
func (c *Client) GetAttribute(ctx context.Context, id, attributeName string) (string, error) {
	if err := requireNonEmpty("GetAttribute", "id", id); err != nil {
		return "", err
	}
	if err := requireNonEmpty("GetAttribute", "attributeName", attributeName); err != nil {
		return "", err
	}

	item, err := c.exchange(ctx, kmip14.OperationGetAttributes, message.BuildGetAttributesRequest(id, attributeName))
	if err != nil {
		return "", err
	}

	_, value, err := message.ExtractGetAttributesResponse(item.Payload, attributeName)
	if err != nil {
		return "", wrapExtractError("GetAttribute", err)
	}

	return value, nil
}
