package kmipclient

import (
	"errors"
	"fmt"

	"github.com/openkmip/kmipclient/kmip14"
)

// Code identifies the kind of failure an Error carries. It mirrors
// the taxonomy external callers need to branch on; the message string
// carries the rest.
type Code int

const (
	// CodeArgInvalid means the caller passed a null or empty required
	// field.
	CodeArgInvalid Code = iota + 1
	// CodeBufferUnderflow means the codec ran out of input before a
	// structurally required field was fully read.
	CodeBufferUnderflow
	// CodeIOFailure means the transport read or wrote fewer bytes than
	// requested, or reported an error outright.
	CodeIOFailure
	// CodeMessageTooLarge means a response declared a body larger than
	// the client's configured ceiling.
	CodeMessageTooLarge
	// CodeMalformedResponse means the response decoded but violated a
	// structural invariant: wrong batch count, missing payload, missing
	// mandatory field.
	CodeMalformedResponse
	// CodeObjectMismatch means the response's object type or key
	// format did not match what the operation required.
	CodeObjectMismatch
	// CodeServerError means the server answered with a non-Success
	// result status.
	CodeServerError
	// CodeUnsupported means the response named an object type or
	// attribute this client does not implement.
	CodeUnsupported
)

func (c Code) String() string {
	switch c {
	case CodeArgInvalid:
		return "ArgInvalid"
	case CodeBufferUnderflow:
		return "BufferUnderflow"
	case CodeIOFailure:
		return "IOFailure"
	case CodeMessageTooLarge:
		return "MessageTooLarge"
	case CodeMalformedResponse:
		return "MalformedResponse"
	case CodeObjectMismatch:
		return "ObjectMismatch"
	case CodeServerError:
		return "ServerError"
	case CodeUnsupported:
		return "Unsupported"
	default:
		return "Unknown"
	}
}

// Error is the single error type every public Client method returns.
// It never panics on a server-reported or malformed-response
// condition; those are always surfaced as an Error with the
// appropriate Code.
type Error struct {
	Code    Code
	Op      string
	Message string

	// Status and Reason are populated only when Code == CodeServerError.
	Status kmip14.ResultStatus
	Reason kmip14.ResultReason

	err error
}

func (e *Error) Error() string {
	if e.Code == CodeServerError {
		return fmt.Sprintf("kmipclient: %s: server error: status=%s reason=%s message=%q", e.Op, e.Status, e.Reason, e.Message)
	}

	return fmt.Sprintf("kmipclient: %s: %s: %s", e.Op, e.Code, e.Message)
}

func (e *Error) Unwrap() error { return e.err }

func newError(op string, code Code, err error) *Error {
	msg := ""
	if err != nil {
		msg = err.Error()
	}

	return &Error{Op: op, Code: code, Message: msg, err: err}
}

func argInvalid(op, message string) *Error {
	return &Error{Op: op, Code: CodeArgInvalid, Message: message}
}

func serverError(op string, status kmip14.ResultStatus, reason kmip14.ResultReason, message string) *Error {
	return &Error{Op: op, Code: CodeServerError, Status: status, Reason: reason, Message: message}
}

// AsError reports whether err is (or wraps) a *kmipclient.Error and
// returns it.
func AsError(err error) (*Error, bool) {
	var e *Error
	if errors.As(err, &e) {
		return e, true
	}

	return nil, false
}
