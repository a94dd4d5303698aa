// Package ttlv implements the KMIP Tag-Type-Length-Value binary wire
// encoding (KMIP 1.0-1.4), independent of any particular operation or
// message shape. It knows how to turn a tree of Item values into bytes
// and back; it has no notion of "Create" or "Get".
package ttlv

import (
	"fmt"
	"time"
)

// Tag is the 24-bit, KMIP-assigned identifier of a TTLV item. Only the
// low 24 bits are ever significant on the wire.
type Tag uint32

// String renders the tag as the 6 hex digits used throughout the KMIP
// spec and in wire dumps, e.g. "420078".
func (t Tag) String() string {
	return fmt.Sprintf("%06x", uint32(t)&0xFFFFFF)
}

// Type is the one-byte TTLV type code.
type Type byte

const (
	TypeStructure   Type = 0x01
	TypeInteger     Type = 0x02
	TypeLongInteger Type = 0x03
	TypeBigInteger  Type = 0x04
	TypeEnumeration Type = 0x05
	TypeBoolean     Type = 0x06
	TypeTextString  Type = 0x07
	TypeByteString  Type = 0x08
	TypeDateTime    Type = 0x09
	TypeInterval    Type = 0x0A
)

func (t Type) String() string {
	switch t {
	case TypeStructure:
		return "Structure"
	case TypeInteger:
		return "Integer"
	case TypeLongInteger:
		return "LongInteger"
	case TypeBigInteger:
		return "BigInteger"
	case TypeEnumeration:
		return "Enumeration"
	case TypeBoolean:
		return "Boolean"
	case TypeTextString:
		return "TextString"
	case TypeByteString:
		return "ByteString"
	case TypeDateTime:
		return "DateTime"
	case TypeInterval:
		return "Interval"
	default:
		return fmt.Sprintf("Type(0x%02x)", byte(t))
	}
}

// lenTTL is the size in bytes of the fixed Tag+Type+Length header that
// precedes every item's value on the wire.
const lenTTL = 3 + 1 + 4

// roundUpTo8 returns n rounded up to the next multiple of 8.
func roundUpTo8(n int) int {
	if n%8 != 0 {
		n += 8 - n%8
	}

	return n
}

// Item is implemented by every decoded or to-be-encoded TTLV value.
// Callers type-switch on the concrete type to inspect a value; Tag and
// Type are common to all of them.
type Item interface {
	GetTag() Tag
	GetType() Type
}

// Structure is an ordered, tagged sequence of child items. KMIP
// messages, headers, batch items, payloads, and attributes are all
// structures.
type Structure struct {
	Tag   Tag
	Items []Item
}

func (s *Structure) GetTag() Tag   { return s.Tag }
func (s *Structure) GetType() Type { return TypeStructure }

// NewStructure builds a Structure from its children in the order they
// must appear on the wire.
func NewStructure(tag Tag, items ...Item) *Structure {
	return &Structure{Tag: tag, Items: items}
}

// Find returns the first direct child item carrying tag, or nil. It
// does not descend into nested structures.
func (s *Structure) Find(tag Tag) Item {
	for _, item := range s.Items {
		if item.GetTag() == tag {
			return item
		}
	}

	return nil
}

// AssertType type-asserts item, which was looked up under tag, as T.
// A nil item yields a nil T and a nil error: "absent" and "wrong type"
// are different failure modes, and callers that require the field
// present report the absent case themselves. An item that is present
// but not of type T produces a *TypeMismatchError naming tag and both
// wire types, per the decode contract in §4.1.
func AssertType[T Item](tag Tag, item Item) (T, error) {
	var zero T
	if item == nil {
		return zero, nil
	}
	typed, ok := item.(T)
	if !ok {
		return zero, &TypeMismatchError{Tag: tag, Expected: zero.GetType(), Found: item.GetType()}
	}

	return typed, nil
}

// RequireChild locates the direct child of s at tag and asserts it as
// T, combining Find and AssertType.
func RequireChild[T Item](s *Structure, tag Tag) (T, error) {
	return AssertType[T](tag, s.Find(tag))
}

// Integer is a 4-byte signed value, wire-padded to 8 bytes.
type Integer struct {
	Tag   Tag
	Value int32
}

func (i *Integer) GetTag() Tag   { return i.Tag }
func (i *Integer) GetType() Type { return TypeInteger }

// LongInteger is an 8-byte signed value with no padding.
type LongInteger struct {
	Tag   Tag
	Value int64
}

func (l *LongInteger) GetTag() Tag   { return l.Tag }
func (l *LongInteger) GetType() Type { return TypeLongInteger }

// Enumeration is wire-identical to Integer; it is distinguished only
// by its type byte and by carrying a KMIP-assigned enumerated value.
type Enumeration struct {
	Tag   Tag
	Value int32
}

func (e *Enumeration) GetTag() Tag   { return e.Tag }
func (e *Enumeration) GetType() Type { return TypeEnumeration }

// Boolean is a 4-byte value (0 or 1), wire-padded to 8 bytes, per the
// encoding contract in §4.1.
type Boolean struct {
	Tag   Tag
	Value bool
}

func (b *Boolean) GetTag() Tag   { return b.Tag }
func (b *Boolean) GetType() Type { return TypeBoolean }

// TextString is a UTF-8 string, never NUL-terminated on the wire; its
// declared length is the true byte length, excluding padding.
type TextString struct {
	Tag   Tag
	Value string
}

func (t *TextString) GetTag() Tag   { return t.Tag }
func (t *TextString) GetType() Type { return TypeTextString }

// ByteString is an opaque byte blob, padded like TextString.
type ByteString struct {
	Tag   Tag
	Value []byte
}

func (b *ByteString) GetTag() Tag   { return b.Tag }
func (b *ByteString) GetType() Type { return TypeByteString }

// DateTime is a signed 64-bit Unix-seconds timestamp, unpadded.
type DateTime struct {
	Tag   Tag
	Value time.Time
}

func (d *DateTime) GetTag() Tag   { return d.Tag }
func (d *DateTime) GetType() Type { return TypeDateTime }

// Interval is a 32-bit unsigned seconds duration, Integer-shaped on
// the wire (4 bytes value, 4 bytes padding).
type Interval struct {
	Tag   Tag
	Value uint32
}

func (iv *Interval) GetTag() Tag   { return iv.Tag }
func (iv *Interval) GetType() Type { return TypeInterval }
