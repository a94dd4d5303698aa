package kmipclient

import (
	"errors"

	"github.com/openkmip/kmipclient/message"
)

// wrapExtractError classifies an error returned by a message package
// extractor into the right Error Code. Extractors signal their
// failure kind via the message.Err* sentinels; this is the only place
// that translation happens.
func wrapExtractError(op string, err error) error {
	if err == nil {
		return nil
	}
	switch {
	case errors.Is(err, message.ErrObjectMismatch):
		return newError(op, CodeObjectMismatch, err)
	case errors.Is(err, message.ErrUnsupported):
		return newError(op, CodeUnsupported, err)
	default:
		return newError(op, CodeMalformedResponse, err)
	}
}
