package sml

// ParseBoolean parses an optional boolean at the cursor.
// It returns nil without error if the field is absent.
//
// Any nonzero content byte is true.
func ParseBoolean(buf *Buffer) (*bool, error) {
	if buf.SkipOptional() {
		return nil, nil
	}

	start := buf.Cursor()
	tl, err := buf.ExpectTL(BooleanType)
	if err != nil {
		return nil, err
	}
	if tl.Length != 1 {
		return nil, buf.failAt(start, StructuralError, ErrLengthMismatch, "boolean with %d content bytes", tl.Length)
	}

	c, err := buf.ReadByte()
	if err != nil {
		return nil, err
	}
	val := c != 0

	return &val, nil
}

// WriteBoolean appends v to buf, or the absent-field sentinel if v is nil.
// True is written as 0xFF.
func WriteBoolean(buf *Buffer, v *bool) {
	if v == nil {
		buf.WriteOptional()
		return
	}

	buf.WriteTL(BooleanType, 1)
	if *v {
		_ = buf.WriteByte(0xFF)
	} else {
		_ = buf.WriteByte(0x00)
	}
}
