package sml

import (
	"encoding/binary"
)

// parseNumber parses an optional number of the given family whose content may be
// up to width bytes. Short content is sign-extended for IntegerType and
// zero-extended for UnsignedType. The result holds the two's complement bits of
// the value at the given width.
func parseNumber(buf *Buffer, typ Type, width int) (uint64, bool, error) {
	if buf.SkipOptional() {
		return 0, false, nil
	}

	start := buf.Cursor()
	tl, err := buf.ExpectTL(typ)
	if err != nil {
		return 0, false, err
	}

	return readNumberContent(buf, start, typ, width, tl.Length)
}

func readNumberContent(buf *Buffer, start int, typ Type, width int, length int) (uint64, bool, error) {
	if length > width {
		return 0, false, buf.failAt(start, NumericError, ErrNumberTooWide,
			"%d content bytes for a %d byte %s", length, width, TypeName(typ))
	}

	content, err := buf.read(length)
	if err != nil {
		return 0, false, err
	}

	var raw uint64
	for _, c := range content {
		raw = raw<<8 | uint64(c)
	}

	if typ == IntegerType && length > 0 && length < width && content[0]&0x80 != 0 {
		raw |= ^uint64(0) << (8 * length)
	}

	return raw & widthMask(width), true, nil
}

func widthMask(width int) uint64 {
	if width >= 8 {
		return ^uint64(0)
	}

	return 1<<(8*width) - 1
}

// writeNumber appends raw as a number of the given family using exactly width content bytes.
// Widths other than 1, 2 and 4 are written as 8 bytes.
func writeNumber(buf *Buffer, typ Type, width int, raw uint64) {
	if buf.HasErrors() {
		return
	}

	switch width {
	case 1:
		buf.WriteTL(typ, 1)
		buf.data = append(buf.data, byte(raw)) //nolint:gosec
	case 2:
		buf.WriteTL(typ, 2)
		buf.data = binary.BigEndian.AppendUint16(buf.data, uint16(raw)) //nolint:gosec
	case 4:
		buf.WriteTL(typ, 4)
		buf.data = binary.BigEndian.AppendUint32(buf.data, uint32(raw)) //nolint:gosec
	default:
		buf.WriteTL(typ, 8)
		buf.data = binary.BigEndian.AppendUint64(buf.data, raw)
	}
	buf.pos = len(buf.data)
}

// ParseU8 parses an optional 8-bit unsigned number.
func ParseU8(buf *Buffer) (*uint8, error) {
	raw, ok, err := parseNumber(buf, UnsignedType, 1)
	if err != nil || !ok {
		return nil, err
	}
	v := uint8(raw) //nolint:gosec

	return &v, nil
}

// ParseU16 parses an optional 16-bit unsigned number.
func ParseU16(buf *Buffer) (*uint16, error) {
	raw, ok, err := parseNumber(buf, UnsignedType, 2)
	if err != nil || !ok {
		return nil, err
	}
	v := uint16(raw) //nolint:gosec

	return &v, nil
}

// ParseU32 parses an optional 32-bit unsigned number.
func ParseU32(buf *Buffer) (*uint32, error) {
	raw, ok, err := parseNumber(buf, UnsignedType, 4)
	if err != nil || !ok {
		return nil, err
	}
	v := uint32(raw) //nolint:gosec

	return &v, nil
}

// ParseU64 parses an optional 64-bit unsigned number.
func ParseU64(buf *Buffer) (*uint64, error) {
	raw, ok, err := parseNumber(buf, UnsignedType, 8)
	if err != nil || !ok {
		return nil, err
	}

	return &raw, nil
}

// ParseI8 parses an optional 8-bit signed number.
func ParseI8(buf *Buffer) (*int8, error) {
	raw, ok, err := parseNumber(buf, IntegerType, 1)
	if err != nil || !ok {
		return nil, err
	}
	v := int8(raw) //nolint:gosec

	return &v, nil
}

// ParseI16 parses an optional 16-bit signed number.
func ParseI16(buf *Buffer) (*int16, error) {
	raw, ok, err := parseNumber(buf, IntegerType, 2)
	if err != nil || !ok {
		return nil, err
	}
	v := int16(raw) //nolint:gosec

	return &v, nil
}

// ParseI32 parses an optional 32-bit signed number.
func ParseI32(buf *Buffer) (*int32, error) {
	raw, ok, err := parseNumber(buf, IntegerType, 4)
	if err != nil || !ok {
		return nil, err
	}
	v := int32(raw) //nolint:gosec

	return &v, nil
}

// ParseI64 parses an optional 64-bit signed number.
func ParseI64(buf *Buffer) (*int64, error) {
	raw, ok, err := parseNumber(buf, IntegerType, 8)
	if err != nil || !ok {
		return nil, err
	}
	v := int64(raw) //nolint:gosec

	return &v, nil
}

// WriteU8 appends v, or the absent-field sentinel if v is nil.
func WriteU8(buf *Buffer, v *uint8) {
	if v == nil {
		buf.WriteOptional()
		return
	}
	writeNumber(buf, UnsignedType, 1, uint64(*v))
}

// WriteU16 appends v, or the absent-field sentinel if v is nil.
func WriteU16(buf *Buffer, v *uint16) {
	if v == nil {
		buf.WriteOptional()
		return
	}
	writeNumber(buf, UnsignedType, 2, uint64(*v))
}

// WriteU32 appends v, or the absent-field sentinel if v is nil.
func WriteU32(buf *Buffer, v *uint32) {
	if v == nil {
		buf.WriteOptional()
		return
	}
	writeNumber(buf, UnsignedType, 4, uint64(*v))
}

// WriteU64 appends v, or the absent-field sentinel if v is nil.
func WriteU64(buf *Buffer, v *uint64) {
	if v == nil {
		buf.WriteOptional()
		return
	}
	writeNumber(buf, UnsignedType, 8, *v)
}

// WriteI8 appends v, or the absent-field sentinel if v is nil.
func WriteI8(buf *Buffer, v *int8) {
	if v == nil {
		buf.WriteOptional()
		return
	}
	writeNumber(buf, IntegerType, 1, uint64(*v)) //nolint:gosec
}

// WriteI16 appends v, or the absent-field sentinel if v is nil.
func WriteI16(buf *Buffer, v *int16) {
	if v == nil {
		buf.WriteOptional()
		return
	}
	writeNumber(buf, IntegerType, 2, uint64(*v)) //nolint:gosec
}

// WriteI32 appends v, or the absent-field sentinel if v is nil.
func WriteI32(buf *Buffer, v *int32) {
	if v == nil {
		buf.WriteOptional()
		return
	}
	writeNumber(buf, IntegerType, 4, uint64(*v)) //nolint:gosec
}

// WriteI64 appends v, or the absent-field sentinel if v is nil.
func WriteI64(buf *Buffer, v *int64) {
	if v == nil {
		buf.WriteOptional()
		return
	}
	writeNumber(buf, IntegerType, 8, uint64(*v)) //nolint:gosec
}
