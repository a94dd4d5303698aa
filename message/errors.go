package message

import "errors"

// ErrMalformedResponse is returned when a decoded response is missing
// a mandatory field, carries a batch count other than one, or omits
// the payload an operation requires.
var ErrMalformedResponse = errors.New("message: malformed response")

// ErrObjectMismatch is returned when a response's object type or key
// format does not match what the caller's operation requires, e.g. a
// Get-key extractor receiving SecretData, or key material arriving
// wrapped when the caller asked for raw key material.
var ErrObjectMismatch = errors.New("message: object type or format mismatch")

// ErrUnsupported is returned when a response names an object type or
// attribute this package does not implement.
var ErrUnsupported = errors.New("message: unsupported object type or attribute")
