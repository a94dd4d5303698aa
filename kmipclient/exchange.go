package kmipclient

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/openkmip/kmipclient/internal/log"
	"github.com/openkmip/kmipclient/kmip14"
	"github.com/openkmip/kmipclient/message"
	"github.com/openkmip/kmipclient/ttlv"
)

// exchange drives one request-response cycle: it builds the envelope
// around payload, encodes it, sends it, reads a framed response,
// decodes it, and validates that it answers this exact request. It
// returns the raw response batch item for an operation-specific
// extractor to interpret, or a structured *Error.
//
// This is the only place a request ever touches the Transport; every
// public Client method is a thin builder/extractor wrapper around it.
func (c *Client) exchange(ctx context.Context, op kmip14.Operation, payload *ttlv.Structure) (*message.ResponseBatchItem, error) {
	if c.cfg.operationTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.cfg.operationTimeout)
		defer cancel()
	}

	if !c.transport.IsConnected() {
		if err := c.transport.Connect(ctx); err != nil {
			return nil, newError(op.String(), CodeIOFailure, fmt.Errorf("connect: %w", err))
		}
	}

	batchItemID := uuid.New()
	req := message.RequestMessage{
		Header: message.RequestHeader{
			Version:             c.cfg.protocolVersion,
			MaximumResponseSize: c.cfg.maxResponseSize,
			TimeStamp:           time.Now().UTC(),
		},
		Item: message.RequestBatchItem{
			Operation:         op,
			UniqueBatchItemID: batchItemID[:],
			Payload:           payload,
		},
	}

	encoded, err := ttlv.Marshal(ctx, req.TTLV())
	if err != nil {
		return nil, newError(op.String(), CodeIOFailure, fmt.Errorf("encoding request: %w", err))
	}

	log.ExtendedLog(ctx, "kmipclient: sending %s, %d bytes, batch item %s", op, len(encoded), batchItemID)

	if err := c.transport.Send(ctx, encoded); err != nil {
		c.closeOnIOFailure()

		return nil, newError(op.String(), CodeIOFailure, fmt.Errorf("sending request: %w", err))
	}

	respBytes, err := readFramedMessage(ctx, c.transport, c.cfg.maxMessageSize)
	if err != nil {
		var clientErr *Error
		if !errors.As(err, &clientErr) || clientErr.Code != CodeMessageTooLarge {
			c.closeOnIOFailure()
		}

		return nil, err
	}

	decoded, err := ttlv.Unmarshal(ctx, respBytes)
	if err != nil {
		code := CodeMalformedResponse
		if errors.Is(err, ttlv.ErrBufferUnderflow) {
			code = CodeBufferUnderflow
		}

		return nil, newError(op.String(), code, fmt.Errorf("decoding response: %w", err))
	}

	respMsg, err := message.DecodeResponseMessage(decoded)
	if err != nil {
		return nil, newError(op.String(), CodeMalformedResponse, err)
	}

	log.ExtendedLog(ctx, "kmipclient: received %s, status %s", respMsg.Item.Operation, respMsg.Item.ResultStatus)

	if respMsg.Item.Operation != op {
		return nil, newError(op.String(), CodeMalformedResponse,
			fmt.Errorf("response echoed operation %s, expected %s", respMsg.Item.Operation, op))
	}
	if len(respMsg.Item.UniqueBatchItemID) > 0 && !bytes.Equal(respMsg.Item.UniqueBatchItemID, batchItemID[:]) {
		return nil, newError(op.String(), CodeMalformedResponse, fmt.Errorf("response batch item id does not match request"))
	}

	if respMsg.Item.ResultStatus != kmip14.ResultStatusSuccess {
		return nil, serverError(op.String(), respMsg.Item.ResultStatus, respMsg.Item.ResultReason, respMsg.Item.ResultMessage)
	}

	return &respMsg.Item, nil
}

func (c *Client) closeOnIOFailure() {
	_ = c.transport.Close()
}
