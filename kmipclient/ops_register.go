package kmipclient

import (
	"context"

	"github.com/openkmip/kmipclient/kmip14"
	"github.com/openkmip/kmipclient/message"
)

// RegisterKey registers pre-existing AES key material with the server
// and returns its unique identifier.
func (c *Client) RegisterKey(ctx context.Context, name, group string, key []byte) (string, error) {
	if err := requireNonEmpty("RegisterKey", "name", name); err != nil {
		return "", err
	}
	switch len(key) * 8 {
	case 128, 192, 256:
	default:
		return "", argInvalid("RegisterKey", "key must be 128, 192, or 256 bits")
	}

	item, err := c.exchange(ctx, kmip14.OperationRegister, message.BuildRegisterSymmetricKeyRequest(name, group, key))
	if err != nil {
		return "", err
	}

	id, err := message.ExtractRegisterResponse(item.Payload)
	if err != nil {
		return "", wrapExtractError("RegisterKey", err)
	}

	return id, nil
}

// RegisterSecret registers opaque secret data (a password, token, or
// other non-key blob) with the server and returns its unique
// identifier.
func (c *Client) RegisterSecret(ctx context.Context, name, group string, secret []byte, secretType int32) (string, error) {
	if err := requireNonEmpty("RegisterSecret", "name", name); err != nil {
		return "", err
	}
	if len(secret) == 0 {
		return "", argInvalid("RegisterSecret", "secret must not be empty")
	}

	item, err := c.exchange(ctx, kmip14.OperationRegister, message.BuildRegisterSecretRequest(name, group, secret, secretType))
	if err != nil {
		return "", err
	}

	id, err := message.ExtractRegisterResponse(item.Payload)
	if err != nil {
		return "", wrapExtractError("RegisterSecret", err)
	}

	return id, nil
}
