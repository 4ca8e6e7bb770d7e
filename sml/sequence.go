package sml

// ElemCodec parses and encodes the elements of a Sequence.
type ElemCodec[T any] struct {
	Parse  func(buf *Buffer) (T, error)
	Encode func(buf *Buffer, elem T)
}

// Sequence is an ordered list of elements of the same kind.
// A nil Sequence is an absent optional field.
type Sequence[T any] []T

// ParseSequence parses a list of elements at the cursor using codec.
func ParseSequence[T any](buf *Buffer, codec ElemCodec[T]) (Sequence[T], error) {
	n, err := buf.ReadListHeader()
	if err != nil {
		return nil, err
	}

	seq := make(Sequence[T], 0, n)
	for range n {
		elem, err := codec.Parse(buf)
		if err != nil {
			return nil, err
		}
		seq = append(seq, elem)
	}

	return seq, nil
}

// ParseOptionalSequence is like ParseSequence but returns nil without error if the
// field is absent.
func ParseOptionalSequence[T any](buf *Buffer, codec ElemCodec[T]) (Sequence[T], error) {
	if buf.SkipOptional() {
		return nil, nil
	}

	return ParseSequence(buf, codec)
}

// EncodeSequence appends seq to buf using codec. A nil seq is written as the
// absent-field sentinel; an empty one as an empty list.
func EncodeSequence[T any](buf *Buffer, seq Sequence[T], codec ElemCodec[T]) {
	if seq == nil {
		buf.WriteOptional()
		return
	}

	buf.WriteTL(ListType, len(seq))
	for _, elem := range seq {
		codec.Encode(buf, elem)
	}
}

// OctetStringCodec is the element codec for sequences of octet strings.
var OctetStringCodec = ElemCodec[OctetString]{
	Parse: ParseOctetString,
	Encode: func(buf *Buffer, s OctetString) {
		s.Encode(buf)
	},
}
