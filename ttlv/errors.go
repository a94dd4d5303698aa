package ttlv

import (
	"errors"
	"fmt"
)

// ErrBufferFull is signaled by the encoder when the destination buffer
// cannot hold the next byte of output. Marshal recovers from it by
// enlarging the buffer and re-encoding the whole message from
// scratch; it never propagates to a caller of Marshal.
var ErrBufferFull = errors.New("ttlv: buffer full")

// ErrBufferUnderflow is returned by the decoder when fewer bytes
// remain in the input than a header or value declares. Unlike
// ErrBufferFull it is not recoverable: the input is simply incomplete
// or corrupt.
var ErrBufferUnderflow = errors.New("ttlv: buffer underflow")

// TypeMismatchError reports that an item found at a given tag was not
// of the wire type the caller required there. Produced by AssertType
// and RequireChild.
type TypeMismatchError struct {
	Tag      Tag
	Expected Type
	Found    Type
}

func (e *TypeMismatchError) Error() string {
	return fmt.Sprintf("ttlv: tag %s: expected type %s, found %s", e.Tag, e.Expected, e.Found)
}

// LengthInvalidError reports a declared length that is negative, or
// otherwise cannot possibly be correct for the item's type.
type LengthInvalidError struct {
	Tag    Tag
	Type   Type
	Length int
}

func (e *LengthInvalidError) Error() string {
	return fmt.Sprintf("ttlv: tag %s: invalid length %d for type %s", e.Tag, e.Length, e.Type)
}

// UnsupportedError reports a wire value the codec has no decoding for,
// such as a type byte outside the ten KMIP-defined codes.
type UnsupportedError struct {
	What string
}

func (e *UnsupportedError) Error() string {
	return fmt.Sprintf("ttlv: unsupported: %s", e.What)
}
