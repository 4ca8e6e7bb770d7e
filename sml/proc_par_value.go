package sml

import "fmt"

// ProcParTag identifies the payload of a ProcParValue.
type ProcParTag uint8

const (
	ProcParValueTag       ProcParTag = 1
	ProcParPeriodEntryTag ProcParTag = 2
	ProcParTupelEntryTag  ProcParTag = 3
	ProcParTimeTag        ProcParTag = 4
)

func (t ProcParTag) String() string {
	switch t {
	case ProcParValueTag:
		return "value"
	case ProcParPeriodEntryTag:
		return "periodEntry"
	case ProcParTupelEntryTag:
		return "tupelEntry"
	case ProcParTimeTag:
		return "time"
	default:
		return fmt.Sprintf("procParTag(%d)", uint8(t))
	}
}

// ProcParValue is the value of a parameter tree node. It is implemented by *Value,
// *PeriodEntry, *TupelEntry and *Time; the tag written on the wire is derived from
// the dynamic type.
type ProcParValue interface {
	ProcParTag() ProcParTag
	Encode(buf *Buffer)
}

var (
	_ ProcParValue = (*Value)(nil)
	_ ProcParValue = (*PeriodEntry)(nil)
	_ ProcParValue = (*TupelEntry)(nil)
	_ ProcParValue = (*Time)(nil)
)

// ProcParTag implements ProcParValue.
func (v *Value) ProcParTag() ProcParTag { return ProcParValueTag }

// ProcParTag implements ProcParValue.
func (p *PeriodEntry) ProcParTag() ProcParTag { return ProcParPeriodEntryTag }

// ProcParTag implements ProcParValue.
func (t *TupelEntry) ProcParTag() ProcParTag { return ProcParTupelEntryTag }

// ProcParTag implements ProcParValue.
func (t *Time) ProcParTag() ProcParTag { return ProcParTimeTag }

// ParseProcParValue parses an optional 2-element {tag, payload} list at the cursor.
// It returns nil without error if the field or its payload is absent. An unknown
// tag is a SemanticError.
func ParseProcParValue(buf *Buffer) (ProcParValue, error) {
	if buf.SkipOptional() {
		return nil, nil
	}

	if err := buf.ExpectList(2); err != nil {
		return nil, err
	}

	start := buf.Cursor()
	tag, err := ParseU8(buf)
	if err != nil {
		return nil, err
	}
	if tag == nil {
		return nil, buf.failAt(start, SemanticError, ErrUnknownTag, "proc-par-value without tag")
	}

	switch ProcParTag(*tag) {
	case ProcParValueTag:
		v, err := ParseValue(buf)
		if err != nil || v == nil {
			return nil, err
		}
		return v, nil
	case ProcParPeriodEntryTag:
		p, err := ParsePeriodEntry(buf)
		if err != nil || p == nil {
			return nil, err
		}
		return p, nil
	case ProcParTupelEntryTag:
		t, err := ParseTupelEntry(buf)
		if err != nil || t == nil {
			return nil, err
		}
		return t, nil
	case ProcParTimeTag:
		t, err := ParseTime(buf)
		if err != nil || t == nil {
			return nil, err
		}
		return t, nil
	default:
		return nil, buf.failAt(start, SemanticError, ErrUnknownTag, "proc-par-value tag %d", *tag)
	}
}

// EncodeProcParValue appends v as a {tag, payload} list, or the absent-field
// sentinel if v is nil.
func EncodeProcParValue(buf *Buffer, v ProcParValue) {
	if isNilProcParValue(v) {
		buf.WriteOptional()
		return
	}

	tag := uint8(v.ProcParTag())
	buf.WriteTL(ListType, 2)
	WriteU8(buf, &tag)
	v.Encode(buf)
}

func isNilProcParValue(v ProcParValue) bool {
	switch p := v.(type) {
	case nil:
		return true
	case *Value:
		return p == nil
	case *PeriodEntry:
		return p == nil
	case *TupelEntry:
		return p == nil
	case *Time:
		return p == nil
	default:
		return false
	}
}
