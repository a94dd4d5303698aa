package kmipclient

import (
	"context"

	"github.com/openkmip/kmipclient/kmip14"
	"github.com/openkmip/kmipclient/message"
)

// GetKey fetches the raw key material for a symmetric key by its
// unique identifier. It returns ObjectMismatch if the identifier
// names anything other than a Raw-format symmetric key, including a
// key whose material the server returns wrapped.
func (c *Client) GetKey(ctx context.Context, id string) (message.Key, error) {
	if err := requireNonEmpty("GetKey", "id", id); err != nil {
		return message.Key{}, err
	}

	item, err := c.exchange(ctx, kmip14.OperationGet, message.BuildGetRequest(id))
	if err != nil {
		return message.Key{}, err
	}

	key, err := message.ExtractGetKeyResponse(item.Payload)
	if err != nil {
		return message.Key{}, wrapExtractError("GetKey", err)
	}

	return key, nil
}

// GetSecret fetches opaque secret data by its unique identifier. It
// returns ObjectMismatch if the identifier names anything other than
// Opaque-format secret data.
func (c *Client) GetSecret(ctx context.Context, id string) (message.Secret, error) {
	if err := requireNonEmpty("GetSecret", "id", id); err != nil {
		return message.Secret{}, err
	}

	item, err := c.exchange(ctx, kmip14.OperationGet, message.BuildGetRequest(id))
	if err != nil {
		return message.Secret{}, err
	}

	secret, err := message.ExtractGetSecretResponse(item.Payload)
	if err != nil {
		return message.Secret{}, wrapExtractError("GetSecret", err)
	}

	return secret, nil
}
