package kmipclient

import (
	"context"

	"github.com/openkmip/kmipclient/kmip14"
	"github.com/openkmip/kmipclient/message"
)

// CreateAESKey creates a 256-bit AES symmetric key on the server and
// returns its unique identifier. group may be empty, in which case no
// Object Group attribute is attached.
func (c *Client) CreateAESKey(ctx context.Context, name, group string) (string, error) {
	if err := requireNonEmpty("CreateAESKey", "name", name); err != nil {
		return "", err
	}

	item, err := c.exchange(ctx, kmip14.OperationCreate, message.BuildCreateAESRequest(name, group))
	if err != nil {
		return "", err
	}

	id, err := message.ExtractCreateResponse(item.Payload)
	if err != nil {
		return "", wrapExtractError("CreateAESKey", err)
	}

	return id, nil
}
