package sml

import "strconv"

// Status is an SML status word: an unsigned number of width 1, 2, 4 or 8 bytes.
// The zero value is a 64-bit status of 0.
type Status struct {
	width int
	value uint64
}

// NewStatus8 creates an 8-bit status word.
func NewStatus8(v uint8) *Status { return &Status{width: 1, value: uint64(v)} }

// NewStatus16 creates a 16-bit status word.
func NewStatus16(v uint16) *Status { return &Status{width: 2, value: uint64(v)} }

// NewStatus32 creates a 32-bit status word.
func NewStatus32(v uint32) *Status { return &Status{width: 4, value: uint64(v)} }

// NewStatus64 creates a 64-bit status word.
func NewStatus64(v uint64) *Status { return &Status{width: 8, value: v} }

// ParseStatus parses an optional status word at the cursor.
// It returns nil without error if the field is absent.
func ParseStatus(buf *Buffer) (*Status, error) {
	if buf.SkipOptional() {
		return nil, nil
	}

	start := buf.Cursor()
	tl, err := buf.PeekTL()
	if err != nil {
		return nil, err
	}
	if tl.Type != UnsignedType {
		return nil, buf.failAt(start, StructuralError, ErrTypeMismatch, "status must be unsigned, got %s", TypeName(tl.Type))
	}
	if tl.Length > 8 {
		return nil, buf.failAt(start, NumericError, ErrNumberTooWide, "%d content bytes", tl.Length)
	}

	width := numberWidth(tl.Length)
	raw, _, err := parseNumber(buf, UnsignedType, width)
	if err != nil {
		return nil, err
	}

	return &Status{width: width, value: raw}, nil
}

// Encode appends s to buf, or the absent-field sentinel if s is nil.
func (s *Status) Encode(buf *Buffer) {
	if s == nil {
		buf.WriteOptional()
		return
	}
	writeNumber(buf, UnsignedType, s.width, s.value)
}

// Width returns the width of s in bytes.
func (s *Status) Width() int {
	if s.width == 0 {
		return 8
	}

	return s.width
}

// Value returns the status bits.
func (s *Status) Value() uint64 {
	return s.value
}

// Equal reports whether s and other have the same width and value.
func (s *Status) Equal(other *Status) bool {
	if s == nil || other == nil {
		return s == other
	}

	return s.Width() == other.Width() && s.value == other.value
}

// String returns s as a hexadecimal number.
func (s *Status) String() string {
	if s == nil {
		return "<absent>"
	}

	return "0x" + strconv.FormatUint(s.value, 16)
}

// MarshalText implements encoding.TextMarshaler.
func (s *Status) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}
