package kmipclient

import (
	"context"
	"time"

	"github.com/openkmip/kmipclient/kmip14"
	"github.com/openkmip/kmipclient/message"
)

// Activate transitions a managed object into the Active state and
// returns its unique identifier, as echoed by the server.
func (c *Client) Activate(ctx context.Context, id string) (string, error) {
	if err := requireNonEmpty("Activate", "id", id); err != nil {
		return "", err
	}

	item, err := c.exchange(ctx, kmip14.OperationActivate, message.BuildActivateRequest(id))
	if err != nil {
		return "", err
	}

	out, err := message.ExtractActivateResponse(item.Payload)
	if err != nil {
		return "", wrapExtractError("Activate", err)
	}

	return out, nil
}

// Revoke marks a managed object revoked for reason, with an optional
// human-readable message and an optional compromise occurrence time
// (meaningful only alongside a KeyCompromise-family reason).
func (c *Client) Revoke(ctx context.Context, id string, reason kmip14.RevocationReasonCode, revokeMessage string, occurredAt time.Time) (string, error) {
	if err := requireNonEmpty("Revoke", "id", id); err != nil {
		return "", err
	}

	item, err := c.exchange(ctx, kmip14.OperationRevoke, message.BuildRevokeRequest(id, reason, revokeMessage, occurredAt))
	if err != nil {
		return "", err
	}

	out, err := message.ExtractRevokeResponse(item.Payload)
	if err != nil {
		return "", wrapExtractError("Revoke", err)
	}

	return out, nil
}

// Destroy permanently removes a managed object and returns its unique
// identifier, as echoed by the server.
func (c *Client) Destroy(ctx context.Context, id string) (string, error) {
	if err := requireNonEmpty("Destroy", "id", id); err != nil {
		return "", err
	}

	item, err := c.exchange(ctx, kmip14.OperationDestroy, message.BuildDestroyRequest(id))
	if err != nil {
		return "", err
	}

	out, err := message.ExtractDestroyResponse(item.Payload)
	if err != nil {
		return "", wrapExtractError("Destroy", err)
	}

	return out, nil
}
