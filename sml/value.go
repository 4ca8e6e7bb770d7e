package sml

import (
	"fmt"
	"strconv"
)

// ValueKind identifies the variant held by a Value.
type ValueKind uint8

const (
	OctetStringValue ValueKind = iota + 1
	BooleanValue
	IntegerValue
	UnsignedValue
)

func (k ValueKind) String() string {
	switch k {
	case OctetStringValue:
		return "octet string"
	case BooleanValue:
		return "boolean"
	case IntegerValue:
		return "integer"
	case UnsignedValue:
		return "unsigned"
	default:
		return "invalid"
	}
}

// Value is an SML value: an octet string, a boolean, or a signed or unsigned
// number of width 1, 2, 4 or 8 bytes.
//
// Values are created with the New*Value constructors or by ParseValue and are not
// modified afterwards, so the kind and the payload always agree. The zero Value
// holds no variant: Kind returns 0 and Encode writes the absent-field sentinel.
type Value struct {
	kind    ValueKind
	width   int
	bytes   OctetString
	boolean bool
	num     uint64
}

// NewOctetStringValue creates an octet string value.
func NewOctetStringValue(s []byte) *Value {
	return &Value{kind: OctetStringValue, bytes: OctetString(s)}
}

// NewBooleanValue creates a boolean value.
func NewBooleanValue(b bool) *Value {
	return &Value{kind: BooleanValue, boolean: b}
}

// NewInt8Value creates an 8-bit signed value.
func NewInt8Value(v int8) *Value { return newIntValue(1, int64(v)) }

// NewInt16Value creates a 16-bit signed value.
func NewInt16Value(v int16) *Value { return newIntValue(2, int64(v)) }

// NewInt32Value creates a 32-bit signed value.
func NewInt32Value(v int32) *Value { return newIntValue(4, int64(v)) }

// NewInt64Value creates a 64-bit signed value.
func NewInt64Value(v int64) *Value { return newIntValue(8, v) }

// NewUint8Value creates an 8-bit unsigned value.
func NewUint8Value(v uint8) *Value { return newUintValue(1, uint64(v)) }

// NewUint16Value creates a 16-bit unsigned value.
func NewUint16Value(v uint16) *Value { return newUintValue(2, uint64(v)) }

// NewUint32Value creates a 32-bit unsigned value.
func NewUint32Value(v uint32) *Value { return newUintValue(4, uint64(v)) }

// NewUint64Value creates a 64-bit unsigned value.
func NewUint64Value(v uint64) *Value { return newUintValue(8, v) }

func newIntValue(width int, v int64) *Value {
	return &Value{kind: IntegerValue, width: width, num: uint64(v) & widthMask(width)} //nolint:gosec
}

func newUintValue(width int, v uint64) *Value {
	return &Value{kind: UnsignedValue, width: width, num: v & widthMask(width)}
}

// numberWidth rounds a content length up to the next supported width.
func numberWidth(length int) int {
	width := 1
	for width < length {
		width <<= 1
	}

	return width
}

// ParseValue parses an optional value at the cursor.
// It returns nil without error if the field is absent.
//
// The width of a number is its content length rounded up to 1, 2, 4 or 8 bytes.
func ParseValue(buf *Buffer) (*Value, error) {
	if buf.SkipOptional() {
		return nil, nil
	}

	start := buf.Cursor()
	tl, err := buf.PeekTL()
	if err != nil {
		return nil, err
	}

	switch tl.Type {
	case OctetStringType:
		s, err := ParseOctetString(buf)
		if err != nil {
			return nil, err
		}
		return &Value{kind: OctetStringValue, bytes: s}, nil

	case BooleanType:
		b, err := ParseBoolean(buf)
		if err != nil {
			return nil, err
		}
		return &Value{kind: BooleanValue, boolean: *b}, nil

	case IntegerType, UnsignedType:
		if tl.Length > 8 {
			return nil, buf.failAt(start, NumericError, ErrNumberTooWide, "%d content bytes", tl.Length)
		}
		width := numberWidth(tl.Length)
		raw, _, err := parseNumber(buf, tl.Type, width)
		if err != nil {
			return nil, err
		}
		kind := UnsignedValue
		if tl.Type == IntegerType {
			kind = IntegerValue
		}
		return &Value{kind: kind, width: width, num: raw}, nil

	default:
		return nil, buf.failAt(start, StructuralError, ErrTypeMismatch, "%s is not a value", TypeName(tl.Type))
	}
}

// Encode appends v to buf, or the absent-field sentinel if v is nil or holds no
// variant. Numbers are written with their full width.
func (v *Value) Encode(buf *Buffer) {
	if v == nil {
		buf.WriteOptional()
		return
	}

	switch v.kind {
	case OctetStringValue:
		v.bytes.Encode(buf)
	case BooleanValue:
		WriteBoolean(buf, &v.boolean)
	case IntegerValue:
		writeNumber(buf, IntegerType, v.width, v.num)
	case UnsignedValue:
		writeNumber(buf, UnsignedType, v.width, v.num)
	default:
		buf.WriteOptional()
	}
}

// Kind returns the variant held by v.
func (v *Value) Kind() ValueKind {
	return v.kind
}

// Width returns the width in bytes of a number, or 0 for other kinds.
func (v *Value) Width() int {
	return v.width
}

// IsNumber reports whether v holds a signed or unsigned number.
func (v *Value) IsNumber() bool {
	return v.kind == IntegerValue || v.kind == UnsignedValue
}

// Bytes returns the octet string held by v, or nil for other kinds.
func (v *Value) Bytes() OctetString {
	return v.bytes
}

// Bool returns the boolean held by v, or false for other kinds.
func (v *Value) Bool() bool {
	return v.boolean
}

// Int returns the number held by v as int64. Signed numbers are sign-extended from
// their width; 64-bit unsigned numbers above math.MaxInt64 wrap.
func (v *Value) Int() int64 {
	switch v.kind {
	case IntegerValue:
		return signExtend(v.num, v.width)
	case UnsignedValue:
		return int64(v.num) //nolint:gosec
	default:
		return 0
	}
}

// Uint returns the number held by v as uint64. Negative signed numbers wrap.
func (v *Value) Uint() uint64 {
	switch v.kind {
	case IntegerValue:
		return uint64(signExtend(v.num, v.width)) //nolint:gosec
	case UnsignedValue:
		return v.num
	default:
		return 0
	}
}

// Float64 returns the number held by v as float64, or 0 for other kinds.
func (v *Value) Float64() float64 {
	switch v.kind {
	case IntegerValue:
		return float64(signExtend(v.num, v.width))
	case UnsignedValue:
		return float64(v.num)
	default:
		return 0
	}
}

// asUnsigned returns v reinterpreted as an unsigned number of the same width.
func (v *Value) asUnsigned() *Value {
	return &Value{kind: UnsignedValue, width: v.width, num: v.num}
}

// Equal reports whether v and other hold the same kind, width and payload.
func (v *Value) Equal(other *Value) bool {
	if v == nil || other == nil {
		return v == other
	}
	if v.kind != other.kind || v.width != other.width {
		return false
	}

	switch v.kind {
	case OctetStringValue:
		return v.bytes.Equal(other.bytes)
	case BooleanValue:
		return v.boolean == other.boolean
	default:
		return v.num == other.num
	}
}

// String returns a textual representation of v.
func (v *Value) String() string {
	if v == nil {
		return "<absent>"
	}

	switch v.kind {
	case OctetStringValue:
		return v.bytes.String()
	case BooleanValue:
		return strconv.FormatBool(v.boolean)
	case IntegerValue:
		return strconv.FormatInt(v.Int(), 10)
	case UnsignedValue:
		return strconv.FormatUint(v.num, 10)
	default:
		return fmt.Sprintf("<invalid value kind %d>", v.kind)
	}
}

// MarshalJSON encodes v as a JSON string, boolean or number.
func (v *Value) MarshalJSON() ([]byte, error) {
	if v == nil {
		return []byte("null"), nil
	}

	switch v.kind {
	case OctetStringValue:
		return []byte(strconv.Quote(v.bytes.String())), nil
	case BooleanValue, IntegerValue, UnsignedValue:
		return []byte(v.String()), nil
	default:
		return []byte("null"), nil
	}
}

// MarshalYAML encodes v as a YAML scalar.
func (v *Value) MarshalYAML() (any, error) {
	if v == nil {
		return nil, nil
	}

	switch v.kind {
	case OctetStringValue:
		return v.bytes.String(), nil
	case BooleanValue:
		return v.boolean, nil
	case IntegerValue:
		return v.Int(), nil
	case UnsignedValue:
		return v.num, nil
	default:
		return nil, nil
	}
}

func signExtend(raw uint64, width int) int64 {
	shift := uint(64 - 8*width)       //nolint:gosec
	return int64(raw<<shift) >> shift //nolint:gosec
}
