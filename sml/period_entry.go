package sml

// PeriodEntry is one value of a load profile or a parameter tree.
type PeriodEntry struct {
	ObjName        OctetString `json:"objName" yaml:"objName"`
	Unit           *uint8      `json:"unit,omitempty" yaml:"unit,omitempty"`
	Scaler         *int8       `json:"scaler,omitempty" yaml:"scaler,omitempty"`
	Value          *Value      `json:"value" yaml:"value"`
	ValueSignature OctetString `json:"valueSignature,omitempty" yaml:"valueSignature,omitempty"`
}

// ParsePeriodEntry parses an optional 5-element period entry at the cursor.
func ParsePeriodEntry(buf *Buffer) (*PeriodEntry, error) {
	if buf.SkipOptional() {
		return nil, nil
	}
	if err := buf.ExpectList(5); err != nil {
		return nil, err
	}

	var err error
	p := &PeriodEntry{}
	if p.ObjName, err = ParseOctetString(buf); err != nil {
		return nil, err
	}
	if p.Unit, err = ParseU8(buf); err != nil {
		return nil, err
	}
	if p.Scaler, err = ParseI8(buf); err != nil {
		return nil, err
	}
	if p.Value, err = ParseValue(buf); err != nil {
		return nil, err
	}
	if p.ValueSignature, err = ParseOctetString(buf); err != nil {
		return nil, err
	}

	return p, nil
}

// Encode appends p to buf, or the absent-field sentinel if p is nil.
func (p *PeriodEntry) Encode(buf *Buffer) {
	if p == nil {
		buf.WriteOptional()
		return
	}

	buf.WriteTL(ListType, 5)
	p.ObjName.Encode(buf)
	WriteU8(buf, p.Unit)
	WriteI8(buf, p.Scaler)
	p.Value.Encode(buf)
	p.ValueSignature.Encode(buf)
}

// PeriodEntryCodec is the element codec for sequences of period entries.
var PeriodEntryCodec = ElemCodec[*PeriodEntry]{
	Parse: ParsePeriodEntry,
	Encode: func(buf *Buffer, p *PeriodEntry) {
		p.Encode(buf)
	},
}

// Reading is a unit, scaler and 64-bit value triple of a TupelEntry.
type Reading struct {
	Unit   *uint8 `json:"unit,omitempty" yaml:"unit,omitempty"`
	Scaler *int8  `json:"scaler,omitempty" yaml:"scaler,omitempty"`
	Value  *int64 `json:"value,omitempty" yaml:"value,omitempty"`
}

func (r *Reading) parse(buf *Buffer) error {
	var err error
	if r.Unit, err = ParseU8(buf); err != nil {
		return err
	}
	if r.Scaler, err = ParseI8(buf); err != nil {
		return err
	}
	r.Value, err = ParseI64(buf)

	return err
}

func (r *Reading) encode(buf *Buffer) {
	WriteU8(buf, r.Unit)
	WriteI8(buf, r.Scaler)
	WriteI64(buf, r.Value)
}

// TupelEntry is the 23-element tuple of a metering point: positive active energy
// (PA) with reactive registers R1 and R4, and negative active energy (MA) with
// reactive registers R2 and R3, each group followed by its signature.
type TupelEntry struct {
	ServerID    OctetString `json:"serverId" yaml:"serverId"`
	SecIndex    *Time       `json:"secIndex,omitempty" yaml:"secIndex,omitempty"`
	Status      *uint64     `json:"status,omitempty" yaml:"status,omitempty"`
	PA          Reading     `json:"pA" yaml:"pA"`
	R1          Reading     `json:"r1" yaml:"r1"`
	R4          Reading     `json:"r4" yaml:"r4"`
	SignaturePA OctetString `json:"signaturePA,omitempty" yaml:"signaturePA,omitempty"`
	MA          Reading     `json:"mA" yaml:"mA"`
	R2          Reading     `json:"r2" yaml:"r2"`
	R3          Reading     `json:"r3" yaml:"r3"`
	SignatureMA OctetString `json:"signatureMA,omitempty" yaml:"signatureMA,omitempty"`
}

// ParseTupelEntry parses an optional 23-element tupel entry at the cursor.
func ParseTupelEntry(buf *Buffer) (*TupelEntry, error) {
	if buf.SkipOptional() {
		return nil, nil
	}
	if err := buf.ExpectList(23); err != nil {
		return nil, err
	}

	var err error
	t := &TupelEntry{}
	if t.ServerID, err = ParseOctetString(buf); err != nil {
		return nil, err
	}
	if t.SecIndex, err = ParseTime(buf); err != nil {
		return nil, err
	}
	if t.Status, err = ParseU64(buf); err != nil {
		return nil, err
	}
	for _, r := range []*Reading{&t.PA, &t.R1, &t.R4} {
		if err := r.parse(buf); err != nil {
			return nil, err
		}
	}
	if t.SignaturePA, err = ParseOctetString(buf); err != nil {
		return nil, err
	}
	for _, r := range []*Reading{&t.MA, &t.R2, &t.R3} {
		if err := r.parse(buf); err != nil {
			return nil, err
		}
	}
	if t.SignatureMA, err = ParseOctetString(buf); err != nil {
		return nil, err
	}

	return t, nil
}

// Encode appends t to buf, or the absent-field sentinel if t is nil.
func (t *TupelEntry) Encode(buf *Buffer) {
	if t == nil {
		buf.WriteOptional()
		return
	}

	buf.WriteTL(ListType, 23)
	t.ServerID.Encode(buf)
	t.SecIndex.Encode(buf)
	WriteU64(buf, t.Status)
	t.PA.encode(buf)
	t.R1.encode(buf)
	t.R4.encode(buf)
	t.SignaturePA.Encode(buf)
	t.MA.encode(buf)
	t.R2.encode(buf)
	t.R3.encode(buf)
	t.SignatureMA.Encode(buf)
}
