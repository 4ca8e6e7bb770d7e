package sml

import (
	"fmt"
	"time"
)

// TimeType selects the meaning of a Time value.
type TimeType uint8

const (
	// SecIndex is a free-running seconds counter of the device.
	SecIndex TimeType = 1
	// Timestamp is a UNIX timestamp in seconds.
	Timestamp TimeType = 2
	// LocalTimestamp is a UNIX timestamp with local and daylight saving offsets in minutes.
	LocalTimestamp TimeType = 3
)

func (t TimeType) String() string {
	switch t {
	case SecIndex:
		return "secIndex"
	case Timestamp:
		return "timestamp"
	case LocalTimestamp:
		return "localTimestamp"
	default:
		return fmt.Sprintf("timeType(%d)", uint8(t))
	}
}

// Time is an SML time value.
type Time struct {
	Type  TimeType
	Value uint32
	// LocalOffset and SeasonOffset are only used by LocalTimestamp.
	LocalOffset  int16
	SeasonOffset int16
}

// NewSecIndex creates a seconds index time.
func NewSecIndex(v uint32) *Time {
	return &Time{Type: SecIndex, Value: v}
}

// NewTimestamp creates a timestamp time.
func NewTimestamp(t time.Time) *Time {
	return &Time{Type: Timestamp, Value: uint32(t.Unix())} //nolint:gosec
}

// ParseTime parses an optional time at the cursor.
// It returns nil without error if the field is absent.
//
// Besides the 2-element list form, two deviations seen in the field are accepted:
// a bare 32-bit unsigned number, read as a seconds index, and a 3-element list
// {timestamp, local offset, season offset} in the payload slot.
func ParseTime(buf *Buffer) (*Time, error) {
	if buf.SkipOptional() {
		return nil, nil
	}

	c, err := buf.PeekByte()
	if err != nil {
		return nil, err
	}
	if c == UnsignedType|5 {
		v, err := ParseU32(buf)
		if err != nil {
			return nil, err
		}
		return &Time{Type: SecIndex, Value: *v}, nil
	}

	if err := buf.ExpectList(2); err != nil {
		return nil, err
	}

	tag, err := ParseU8(buf)
	if err != nil {
		return nil, err
	}

	t := &Time{}
	if tag != nil {
		t.Type = TimeType(*tag)
	}

	typ, err := buf.PeekType()
	if err != nil {
		return nil, err
	}
	if typ == ListType {
		if err := t.parseLocal(buf); err != nil {
			return nil, err
		}
		return t, nil
	}

	v, err := ParseU32(buf)
	if err != nil {
		return nil, err
	}
	if v != nil {
		t.Value = *v
	}

	return t, nil
}

func (t *Time) parseLocal(buf *Buffer) error {
	if err := buf.ExpectList(3); err != nil {
		return err
	}
	v, err := ParseU32(buf)
	if err != nil {
		return err
	}
	local, err := ParseI16(buf)
	if err != nil {
		return err
	}
	season, err := ParseI16(buf)
	if err != nil {
		return err
	}

	t.Type = LocalTimestamp
	if v != nil {
		t.Value = *v
	}
	if local != nil {
		t.LocalOffset = *local
	}
	if season != nil {
		t.SeasonOffset = *season
	}

	return nil
}

// Encode appends t to buf, or the absent-field sentinel if t is nil.
func (t *Time) Encode(buf *Buffer) {
	if t == nil {
		buf.WriteOptional()
		return
	}

	tag := uint8(t.Type)
	buf.WriteTL(ListType, 2)
	WriteU8(buf, &tag)
	if t.Type == LocalTimestamp {
		buf.WriteTL(ListType, 3)
		WriteU32(buf, &t.Value)
		WriteI16(buf, &t.LocalOffset)
		WriteI16(buf, &t.SeasonOffset)
		return
	}
	WriteU32(buf, &t.Value)
}

// Time converts a Timestamp or LocalTimestamp to time.Time in UTC.
// It returns false for a seconds index.
func (t *Time) Time() (time.Time, bool) {
	if t == nil || t.Type == SecIndex {
		return time.Time{}, false
	}

	return time.Unix(int64(t.Value), 0).UTC(), true
}

// String returns a textual representation of t.
func (t *Time) String() string {
	if t == nil {
		return "<absent>"
	}

	switch t.Type {
	case SecIndex:
		return fmt.Sprintf("secIndex %d", t.Value)
	case LocalTimestamp:
		ts := time.Unix(int64(t.Value), 0).UTC().Format(time.RFC3339)
		return fmt.Sprintf("%s local %+dm season %+dm", ts, t.LocalOffset, t.SeasonOffset)
	default:
		return time.Unix(int64(t.Value), 0).UTC().Format(time.RFC3339)
	}
}

// MarshalText implements encoding.TextMarshaler.
func (t *Time) MarshalText() ([]byte, error) {
	return []byte(t.String()), nil
}
