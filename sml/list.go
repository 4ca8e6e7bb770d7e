package sml

import (
	"encoding/json"
	"iter"
	"math"
)

// ListEntry is one measured quantity reported by a metering server.
//
// Entries are chained through Next to form the value list of a GetList response.
// The chain has a single owner and no back references.
type ListEntry struct {
	ObjName        OctetString
	Status         *Status
	ValTime        *Time
	Unit           *uint8
	Scaler         *int8
	Value          *Value
	ValueSignature OctetString

	Next *ListEntry
}

var (
	dzgSerialObjName  = OctetString{1, 0, 96, 1, 0, 255}
	dzgPowerObjName   = OctetString{1, 0, 16, 7, 0, 255}
	dzgSerialPrefix   = []byte{0x0a, 0x01, 'D', 'Z', 'G'}
	dzgBrokenSerials  = [][2]uint64{{42000000, 48999999}, {55000000, 58999999}}
	dzgSerialLength   = 10
	listEntryElements = 7
)

// workarounds carries meter quirks detected while parsing one list.
type workarounds struct {
	enabled     bool
	oldDZGDVS74 bool
}

// ParseListEntry parses a single 7-element list entry at the cursor.
func ParseListEntry(buf *Buffer) (*ListEntry, error) {
	return parseListEntry(buf, &workarounds{})
}

func parseListEntry(buf *Buffer, wa *workarounds) (*ListEntry, error) {
	if err := buf.ExpectList(listEntryElements); err != nil {
		return nil, err
	}

	var err error
	e := &ListEntry{}
	if e.ObjName, err = ParseOctetString(buf); err != nil {
		return nil, err
	}
	if e.Status, err = ParseStatus(buf); err != nil {
		return nil, err
	}
	if e.ValTime, err = ParseTime(buf); err != nil {
		return nil, err
	}
	if e.Unit, err = ParseU8(buf); err != nil {
		return nil, err
	}
	if e.Scaler, err = ParseI8(buf); err != nil {
		return nil, err
	}

	valueTL, err := buf.PeekByte()
	if err != nil {
		return nil, err
	}
	if e.Value, err = ParseValue(buf); err != nil {
		return nil, err
	}
	if e.ValueSignature, err = ParseOctetString(buf); err != nil {
		return nil, err
	}

	if wa.enabled {
		wa.apply(e, valueTL)
	}

	return e, nil
}

// apply corrects power readings of DZG DVS74 meters in the affected serial number
// ranges. They send small positive values with an integer type, e.g. 53 80 25 for
// 32805, which would read as -32731. Negative readings are always sent as 4 bytes,
// so integers with up to 2 content bytes are reinterpreted as unsigned.
func (wa *workarounds) apply(e *ListEntry, valueTL byte) {
	if isBuggyDZGDVS74(e) {
		wa.oldDZGDVS74 = true
		return
	}

	if !wa.oldDZGDVS74 || !e.ObjName.Equal(dzgPowerObjName) || e.Value == nil || e.Value.Kind() != IntegerValue {
		return
	}

	switch valueTL & (anotherTL | lengthField) {
	case 1, 2, 3:
		e.Value = e.Value.asUnsigned()
	}
}

func isBuggyDZGDVS74(e *ListEntry) bool {
	if !e.ObjName.Equal(dzgSerialObjName) || e.Value == nil || e.Value.Kind() != OctetStringValue {
		return false
	}

	serial := e.Value.Bytes()
	if len(serial) != dzgSerialLength || !serial[:len(dzgSerialPrefix)].EqualBytes(dzgSerialPrefix...) {
		return false
	}

	var num uint64
	for _, c := range serial[len(dzgSerialPrefix):] {
		num = num<<8 | uint64(c)
	}

	for _, r := range dzgBrokenSerials {
		if num >= r[0] && num <= r[1] {
			return true
		}
	}

	return false
}

// ParseList parses an optional list of entries at the cursor and returns the head
// of the chain. It returns nil without error if the list is absent or empty.
//
// Unless the buffer was created with WithoutDZGWorkaround, power readings of DZG
// DVS74 meters with a serial number in the ranges 42000000-48999999 and
// 55000000-58999999 are corrected: those meters encode the positive active power
// 1-0:16.7.0*255 as a signed integer of up to 2 bytes.
func ParseList(buf *Buffer) (*ListEntry, error) {
	if buf.SkipOptional() {
		return nil, nil
	}

	n, err := buf.ReadListHeader()
	if err != nil {
		return nil, err
	}

	wa := &workarounds{enabled: buf.dzgWorkaround}
	var head, tail *ListEntry
	for range n {
		e, err := parseListEntry(buf, wa)
		if err != nil {
			head.Free()
			return nil, err
		}
		if head == nil {
			head = e
		} else {
			tail.Next = e
		}
		tail = e
	}

	return head, nil
}

// Encode appends the chain starting at e as a list, or the absent-field sentinel if
// e is nil.
func (e *ListEntry) Encode(buf *Buffer) {
	if e == nil {
		buf.WriteOptional()
		return
	}

	buf.WriteTL(ListType, e.Len())
	for entry := range e.All() {
		entry.EncodeEntry(buf)
	}
}

// EncodeEntry appends e alone as a 7-element list, ignoring the rest of the chain.
func (e *ListEntry) EncodeEntry(buf *Buffer) {
	buf.WriteTL(ListType, listEntryElements)
	e.ObjName.Encode(buf)
	e.Status.Encode(buf)
	e.ValTime.Encode(buf)
	WriteU8(buf, e.Unit)
	WriteI8(buf, e.Scaler)
	e.Value.Encode(buf)
	e.ValueSignature.Encode(buf)
}

// Append adds next to the end of the chain starting at e and returns e.
// If e is nil, next is returned.
func (e *ListEntry) Append(next *ListEntry) *ListEntry {
	if e == nil {
		return next
	}

	tail := e
	for tail.Next != nil {
		tail = tail.Next
	}
	tail.Next = next

	return e
}

// Len returns the number of entries in the chain starting at e.
func (e *ListEntry) Len() int {
	n := 0
	for ; e != nil; e = e.Next {
		n++
	}

	return n
}

// All returns an iterator over the chain starting at e.
func (e *ListEntry) All() iter.Seq[*ListEntry] {
	return func(yield func(*ListEntry) bool) {
		for entry := e; entry != nil; entry = entry.Next {
			if !yield(entry) {
				return
			}
		}
	}
}

// Free detaches every entry of the chain starting at e.
// It walks the chain iteratively, so long chains do not grow the stack.
func (e *ListEntry) Free() {
	for e != nil {
		next := e.Next
		e.Next = nil
		e = next
	}
}

// ScaledValue returns the numeric value multiplied by 10^Scaler.
// It returns false if the entry does not hold a number.
func (e *ListEntry) ScaledValue() (float64, bool) {
	if e.Value == nil || !e.Value.IsNumber() {
		return 0, false
	}

	v := e.Value.Float64()
	if e.Scaler != nil {
		v *= math.Pow10(int(*e.Scaler))
	}

	return v, true
}

type listEntryView struct {
	ObjName        OctetString `json:"objName" yaml:"objName"`
	Status         *Status     `json:"status,omitempty" yaml:"status,omitempty"`
	ValTime        *Time       `json:"valTime,omitempty" yaml:"valTime,omitempty"`
	Unit           *uint8      `json:"unit,omitempty" yaml:"unit,omitempty"`
	Scaler         *int8       `json:"scaler,omitempty" yaml:"scaler,omitempty"`
	Value          *Value      `json:"value" yaml:"value"`
	ValueSignature OctetString `json:"valueSignature,omitempty" yaml:"valueSignature,omitempty"`
}

func (e *ListEntry) views() []listEntryView {
	views := make([]listEntryView, 0, e.Len())
	for entry := range e.All() {
		views = append(views, listEntryView{
			ObjName:        entry.ObjName,
			Status:         entry.Status,
			ValTime:        entry.ValTime,
			Unit:           entry.Unit,
			Scaler:         entry.Scaler,
			Value:          entry.Value,
			ValueSignature: entry.ValueSignature,
		})
	}

	return views
}

// MarshalJSON encodes the chain starting at e as a JSON array.
func (e *ListEntry) MarshalJSON() ([]byte, error) {
	return json.Marshal(e.views())
}

// MarshalYAML encodes the chain starting at e as a YAML sequence.
func (e *ListEntry) MarshalYAML() (any, error) {
	return e.views(), nil
}
