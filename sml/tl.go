package sml

import "fmt"

// Type is the type field of a TL header.
type Type = byte

const (
	OctetStringType Type = 0x00
	BooleanType     Type = 0x40
	IntegerType     Type = 0x50
	UnsignedType    Type = 0x60
	ListType        Type = 0x70
)

const (
	anotherTL   byte = 0x80
	typeField   byte = 0x70
	lengthField byte = 0x0F

	// maxTLBytes bounds the header to 32 bits of length.
	maxTLBytes = 8
)

// TypeName returns a human readable name of t.
func TypeName(t Type) string {
	switch t {
	case OctetStringType:
		return "octet string"
	case BooleanType:
		return "boolean"
	case IntegerType:
		return "integer"
	case UnsignedType:
		return "unsigned"
	case ListType:
		return "list"
	default:
		return fmt.Sprintf("invalid type 0x%02x", t)
	}
}

// TL is a decoded type-length header.
type TL struct {
	// Type is the element type.
	Type Type
	// Length is the number of content bytes for scalar types and the number of
	// child elements for lists.
	Length int
	// Size is the number of header bytes.
	Size int
}

// ReadTL decodes the TL header at the cursor and advances past it.
//
// For scalar types the declared length includes the header bytes; ReadTL removes
// them so that Length is always the content length.
func (b *Buffer) ReadTL() (TL, error) {
	if b.err != nil {
		return TL{}, b.err
	}

	start := b.pos
	c, err := b.ReadByte()
	if err != nil {
		return TL{}, err
	}

	tl := TL{Type: c & typeField, Length: int(c & lengthField), Size: 1}
	switch tl.Type {
	case OctetStringType, BooleanType, IntegerType, UnsignedType, ListType:
	default:
		return TL{}, b.failAt(start, StructuralError, ErrInvalidTL, "%s", TypeName(tl.Type))
	}

	for c&anotherTL != 0 {
		if tl.Size >= maxTLBytes {
			return TL{}, b.failAt(start, StructuralError, ErrInvalidTL, "header exceeds %d bytes", maxTLBytes)
		}
		c, err = b.ReadByte()
		if err != nil {
			return TL{}, err
		}
		tl.Length = tl.Length<<4 | int(c&lengthField)
		tl.Size++
	}

	if tl.Type != ListType {
		tl.Length -= tl.Size
		if tl.Length < 0 {
			return TL{}, b.failAt(start, StructuralError, ErrInvalidTL,
				"%s length is shorter than its %d header bytes", TypeName(tl.Type), tl.Size)
		}
	}

	return tl, nil
}

// PeekTL decodes the TL header at the cursor without consuming it.
func (b *Buffer) PeekTL() (TL, error) {
	start := b.pos
	tl, err := b.ReadTL()
	if err != nil {
		return TL{}, err
	}
	b.pos = start

	return tl, nil
}

// PeekType returns the type of the element at the cursor without consuming it.
func (b *Buffer) PeekType() (Type, error) {
	c, err := b.PeekByte()
	if err != nil {
		return 0, err
	}

	return c & typeField, nil
}

// ExpectTL decodes the TL header at the cursor and requires it to be of type typ.
func (b *Buffer) ExpectTL(typ Type) (TL, error) {
	start := b.pos
	tl, err := b.ReadTL()
	if err != nil {
		return TL{}, err
	}
	if tl.Type != typ {
		return TL{}, b.failAt(start, StructuralError, ErrTypeMismatch,
			"expected %s, got %s", TypeName(typ), TypeName(tl.Type))
	}

	return tl, nil
}

// ReadListHeader decodes a list header at the cursor and returns its element count.
// Counts that cannot fit in the remaining bytes are rejected.
func (b *Buffer) ReadListHeader() (int, error) {
	start := b.pos
	tl, err := b.ExpectTL(ListType)
	if err != nil {
		return 0, err
	}
	if err := b.checkCount(start, tl.Length); err != nil {
		return 0, err
	}

	return tl.Length, nil
}

// ExpectList decodes a list header at the cursor and requires exactly n elements.
func (b *Buffer) ExpectList(n int) error {
	start := b.pos
	tl, err := b.ExpectTL(ListType)
	if err != nil {
		return err
	}
	if tl.Length != n {
		return b.failAt(start, StructuralError, ErrLengthMismatch, "expected list of %d, got %d", n, tl.Length)
	}

	return nil
}

// WriteTL appends a TL header for an element of type typ.
//
// For scalar types length is the content length and the header bytes are added to
// the encoded length; for lists it is the element count.
func (b *Buffer) WriteTL(typ Type, length int) {
	if b.err != nil {
		return
	}

	total := length
	size := 1
	if typ == ListType {
		for size < maxTLBytes && total >= 1<<(4*size) {
			size++
		}
	} else {
		for total = length + size; size < maxTLBytes && total >= 1<<(4*size); total = length + size {
			size++
		}
	}

	for i := size - 1; i >= 0; i-- {
		c := byte(total>>(4*i)) & lengthField //nolint:gosec
		if i == size-1 {
			c |= typ
		}
		if i > 0 {
			c |= anotherTL
		}
		b.data = append(b.data, c)
	}
	b.pos = len(b.data)
}
