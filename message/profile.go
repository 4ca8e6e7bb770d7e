package message

import "github.com/arloliu/go-sml/sml"

// ProfileRequest is the layout shared by GetProfilePackRequest and
// GetProfileListRequest.
type ProfileRequest struct {
	ServerID    sml.OctetString               `json:"serverId,omitempty" yaml:"serverId,omitempty"`
	Username    sml.OctetString               `json:"username,omitempty" yaml:"username,omitempty"`
	Password    sml.OctetString               `json:"password,omitempty" yaml:"password,omitempty"`
	WithRawdata *bool                         `json:"withRawdata,omitempty" yaml:"withRawdata,omitempty"`
	BeginTime   *sml.Time                     `json:"beginTime,omitempty" yaml:"beginTime,omitempty"`
	EndTime     *sml.Time                     `json:"endTime,omitempty" yaml:"endTime,omitempty"`
	TreePath    sml.TreePath                  `json:"treePath" yaml:"treePath"`
	ObjectList  sml.Sequence[sml.OctetString] `json:"objectList,omitempty" yaml:"objectList,omitempty"`
	DASDetails  *sml.Tree                     `json:"dasDetails,omitempty" yaml:"dasDetails,omitempty"`
}

func parseProfileRequest(buf *sml.Buffer) (ProfileRequest, error) {
	var r ProfileRequest
	if err := buf.ExpectList(9); err != nil {
		return r, err
	}

	var err error
	for _, s := range []*sml.OctetString{&r.ServerID, &r.Username, &r.Password} {
		if *s, err = sml.ParseOctetString(buf); err != nil {
			return r, err
		}
	}
	if r.WithRawdata, err = sml.ParseBoolean(buf); err != nil {
		return r, err
	}
	if r.BeginTime, err = sml.ParseTime(buf); err != nil {
		return r, err
	}
	if r.EndTime, err = sml.ParseTime(buf); err != nil {
		return r, err
	}
	if r.TreePath, err = sml.ParseTreePath(buf); err != nil {
		return r, err
	}
	if r.ObjectList, err = sml.ParseOptionalSequence(buf, sml.OctetStringCodec); err != nil {
		return r, err
	}
	r.DASDetails, err = sml.ParseTree(buf)

	return r, err
}

// Encode writes the request. Every element of ObjectList is written.
func (r *ProfileRequest) Encode(buf *sml.Buffer) {
	buf.WriteTL(sml.ListType, 9)
	r.ServerID.Encode(buf)
	r.Username.Encode(buf)
	r.Password.Encode(buf)
	sml.WriteBoolean(buf, r.WithRawdata)
	r.BeginTime.Encode(buf)
	r.EndTime.Encode(buf)
	r.TreePath.Encode(buf)
	sml.EncodeSequence(buf, r.ObjectList, sml.OctetStringCodec)
	r.DASDetails.Encode(buf)
}

func (r *ProfileRequest) print(p *sml.Printer, name string) {
	p.Begin("%s", name)
	p.Field("serverId", r.ServerID)
	p.Field("username", r.Username)
	p.Field("withRawdata", r.WithRawdata)
	p.Field("beginTime", r.BeginTime)
	p.Field("endTime", r.EndTime)
	r.TreePath.Print(p)
	if r.ObjectList == nil {
		p.Field("objectList", nil)
	} else {
		p.Begin("objectList[%d]", len(r.ObjectList))
		for _, obj := range r.ObjectList {
			p.Field("objName", obj.Hex())
		}
		p.End()
	}
	r.DASDetails.Print(p)
	p.End()
}

// GetProfilePackRequest requests a load profile as a header and period matrix
// (SML_GetProfilePack.Req).
type GetProfilePackRequest struct {
	ProfileRequest
}

// ParseGetProfilePackRequest parses a 9-element profile pack request at the cursor.
func ParseGetProfilePackRequest(buf *sml.Buffer) (*GetProfilePackRequest, error) {
	r, err := parseProfileRequest(buf)
	if err != nil {
		return nil, err
	}

	return &GetProfilePackRequest{ProfileRequest: r}, nil
}

// Tag implements Body.
func (r *GetProfilePackRequest) Tag() BodyTag { return GetProfilePackRequestTag }

// Print implements Body.
func (r *GetProfilePackRequest) Print(p *sml.Printer) { r.print(p, "getProfilePackRequest") }

// GetProfileListRequest requests a load profile as a list of periods
// (SML_GetProfileList.Req).
type GetProfileListRequest struct {
	ProfileRequest
}

// ParseGetProfileListRequest parses a 9-element profile list request at the cursor.
func ParseGetProfileListRequest(buf *sml.Buffer) (*GetProfileListRequest, error) {
	r, err := parseProfileRequest(buf)
	if err != nil {
		return nil, err
	}

	return &GetProfileListRequest{ProfileRequest: r}, nil
}

// Tag implements Body.
func (r *GetProfileListRequest) Tag() BodyTag { return GetProfileListRequestTag }

// Print implements Body.
func (r *GetProfileListRequest) Print(p *sml.Printer) { r.print(p, "getProfileListRequest") }

// ProfileHeader describes one column of a profile pack.
type ProfileHeader struct {
	ObjName sml.OctetString `json:"objName" yaml:"objName"`
	Unit    *uint8          `json:"unit,omitempty" yaml:"unit,omitempty"`
	Scaler  *int8           `json:"scaler,omitempty" yaml:"scaler,omitempty"`
}

// ParseProfileHeader parses a 3-element profile header at the cursor.
func ParseProfileHeader(buf *sml.Buffer) (*ProfileHeader, error) {
	if err := buf.ExpectList(3); err != nil {
		return nil, err
	}

	var err error
	h := &ProfileHeader{}
	if h.ObjName, err = sml.ParseOctetString(buf); err != nil {
		return nil, err
	}
	if h.Unit, err = sml.ParseU8(buf); err != nil {
		return nil, err
	}
	if h.Scaler, err = sml.ParseI8(buf); err != nil {
		return nil, err
	}

	return h, nil
}

// Encode appends h to buf.
func (h *ProfileHeader) Encode(buf *sml.Buffer) {
	buf.WriteTL(sml.ListType, 3)
	h.ObjName.Encode(buf)
	sml.WriteU8(buf, h.Unit)
	sml.WriteI8(buf, h.Scaler)
}

// ProfileValue is one cell of a profile pack period.
type ProfileValue struct {
	Value          *sml.Value      `json:"value" yaml:"value"`
	ValueSignature sml.OctetString `json:"valueSignature,omitempty" yaml:"valueSignature,omitempty"`
}

// ParseProfileValue parses a 2-element profile value at the cursor.
func ParseProfileValue(buf *sml.Buffer) (*ProfileValue, error) {
	if err := buf.ExpectList(2); err != nil {
		return nil, err
	}

	var err error
	v := &ProfileValue{}
	if v.Value, err = sml.ParseValue(buf); err != nil {
		return nil, err
	}
	if v.ValueSignature, err = sml.ParseOctetString(buf); err != nil {
		return nil, err
	}

	return v, nil
}

// Encode appends v to buf.
func (v *ProfileValue) Encode(buf *sml.Buffer) {
	buf.WriteTL(sml.ListType, 2)
	v.Value.Encode(buf)
	v.ValueSignature.Encode(buf)
}

// ProfilePeriod is one row of a profile pack.
type ProfilePeriod struct {
	ValTime         *sml.Time                   `json:"valTime,omitempty" yaml:"valTime,omitempty"`
	Status          *uint64                     `json:"status,omitempty" yaml:"status,omitempty"`
	ValueList       sml.Sequence[*ProfileValue] `json:"valueList" yaml:"valueList"`
	PeriodSignature sml.OctetString             `json:"periodSignature,omitempty" yaml:"periodSignature,omitempty"`
}

// ParseProfilePeriod parses a 4-element profile period at the cursor.
func ParseProfilePeriod(buf *sml.Buffer) (*ProfilePeriod, error) {
	if err := buf.ExpectList(4); err != nil {
		return nil, err
	}

	var err error
	pp := &ProfilePeriod{}
	if pp.ValTime, err = sml.ParseTime(buf); err != nil {
		return nil, err
	}
	if pp.Status, err = sml.ParseU64(buf); err != nil {
		return nil, err
	}
	if pp.ValueList, err = sml.ParseOptionalSequence(buf, profileValueCodec); err != nil {
		return nil, err
	}
	if pp.PeriodSignature, err = sml.ParseOctetString(buf); err != nil {
		return nil, err
	}

	return pp, nil
}

// Encode appends pp to buf.
func (pp *ProfilePeriod) Encode(buf *sml.Buffer) {
	buf.WriteTL(sml.ListType, 4)
	pp.ValTime.Encode(buf)
	sml.WriteU64(buf, pp.Status)
	sml.EncodeSequence(buf, pp.ValueList, profileValueCodec)
	pp.PeriodSignature.Encode(buf)
}

var (
	profileHeaderCodec = sml.ElemCodec[*ProfileHeader]{
		Parse:  ParseProfileHeader,
		Encode: func(buf *sml.Buffer, h *ProfileHeader) { h.Encode(buf) },
	}
	profileValueCodec = sml.ElemCodec[*ProfileValue]{
		Parse:  ParseProfileValue,
		Encode: func(buf *sml.Buffer, v *ProfileValue) { v.Encode(buf) },
	}
	profilePeriodCodec = sml.ElemCodec[*ProfilePeriod]{
		Parse:  ParseProfilePeriod,
		Encode: func(buf *sml.Buffer, pp *ProfilePeriod) { pp.Encode(buf) },
	}
)

// GetProfilePackResponse carries a load profile as a header list and a period
// matrix (SML_GetProfilePack.Res).
type GetProfilePackResponse struct {
	ServerID         sml.OctetString              `json:"serverId" yaml:"serverId"`
	ActTime          *sml.Time                    `json:"actTime,omitempty" yaml:"actTime,omitempty"`
	RegPeriod        *uint32                      `json:"regPeriod,omitempty" yaml:"regPeriod,omitempty"`
	TreePath         sml.TreePath                 `json:"treePath" yaml:"treePath"`
	HeaderList       sml.Sequence[*ProfileHeader] `json:"headerList" yaml:"headerList"`
	PeriodList       sml.Sequence[*ProfilePeriod] `json:"periodList" yaml:"periodList"`
	Rawdata          sml.OctetString              `json:"rawdata,omitempty" yaml:"rawdata,omitempty"`
	ProfileSignature sml.OctetString              `json:"profileSignature,omitempty" yaml:"profileSignature,omitempty"`
}

// ParseGetProfilePackResponse parses an 8-element profile pack response at the cursor.
func ParseGetProfilePackResponse(buf *sml.Buffer) (*GetProfilePackResponse, error) {
	if err := buf.ExpectList(8); err != nil {
		return nil, err
	}

	var err error
	r := &GetProfilePackResponse{}
	if r.ServerID, err = sml.ParseOctetString(buf); err != nil {
		return nil, err
	}
	if r.ActTime, err = sml.ParseTime(buf); err != nil {
		return nil, err
	}
	if r.RegPeriod, err = sml.ParseU32(buf); err != nil {
		return nil, err
	}
	if r.TreePath, err = sml.ParseTreePath(buf); err != nil {
		return nil, err
	}
	if r.HeaderList, err = sml.ParseOptionalSequence(buf, profileHeaderCodec); err != nil {
		return nil, err
	}
	if r.PeriodList, err = sml.ParseOptionalSequence(buf, profilePeriodCodec); err != nil {
		return nil, err
	}
	if r.Rawdata, err = sml.ParseOctetString(buf); err != nil {
		return nil, err
	}
	if r.ProfileSignature, err = sml.ParseOctetString(buf); err != nil {
		return nil, err
	}

	return r, nil
}

// Tag implements Body.
func (r *GetProfilePackResponse) Tag() BodyTag { return GetProfilePackResponseTag }

// Encode implements Body.
func (r *GetProfilePackResponse) Encode(buf *sml.Buffer) {
	buf.WriteTL(sml.ListType, 8)
	r.ServerID.Encode(buf)
	r.ActTime.Encode(buf)
	sml.WriteU32(buf, r.RegPeriod)
	r.TreePath.Encode(buf)
	sml.EncodeSequence(buf, r.HeaderList, profileHeaderCodec)
	sml.EncodeSequence(buf, r.PeriodList, profilePeriodCodec)
	r.Rawdata.Encode(buf)
	r.ProfileSignature.Encode(buf)
}

// Print implements Body.
func (r *GetProfilePackResponse) Print(p *sml.Printer) {
	p.Begin("getProfilePackResponse")
	p.Field("serverId", r.ServerID)
	p.Field("actTime", r.ActTime)
	p.Field("regPeriod", r.RegPeriod)
	r.TreePath.Print(p)
	p.Begin("headerList[%d]", len(r.HeaderList))
	for _, h := range r.HeaderList {
		p.Begin("header")
		p.Field("objName", h.ObjName.Hex())
		p.Field("unit", h.Unit)
		p.Field("scaler", h.Scaler)
		p.End()
	}
	p.End()
	p.Begin("periodList[%d]", len(r.PeriodList))
	for _, pp := range r.PeriodList {
		p.Begin("period")
		p.Field("valTime", pp.ValTime)
		p.Field("status", pp.Status)
		for _, v := range pp.ValueList {
			p.Field("value", v.Value)
		}
		p.End()
	}
	p.End()
	p.Field("rawdata", r.Rawdata)
	p.End()
}

// GetProfileListResponse carries one period of a load profile
// (SML_GetProfileList.Res).
type GetProfileListResponse struct {
	ServerID        sml.OctetString                `json:"serverId" yaml:"serverId"`
	ActTime         *sml.Time                      `json:"actTime,omitempty" yaml:"actTime,omitempty"`
	RegPeriod       *uint32                        `json:"regPeriod,omitempty" yaml:"regPeriod,omitempty"`
	TreePath        sml.TreePath                   `json:"treePath" yaml:"treePath"`
	ValTime         *sml.Time                      `json:"valTime,omitempty" yaml:"valTime,omitempty"`
	Status          *uint64                        `json:"status,omitempty" yaml:"status,omitempty"`
	PeriodList      sml.Sequence[*sml.PeriodEntry] `json:"periodList" yaml:"periodList"`
	Rawdata         sml.OctetString                `json:"rawdata,omitempty" yaml:"rawdata,omitempty"`
	PeriodSignature sml.OctetString                `json:"periodSignature,omitempty" yaml:"periodSignature,omitempty"`
}

// ParseGetProfileListResponse parses a 9-element profile list response at the cursor.
func ParseGetProfileListResponse(buf *sml.Buffer) (*GetProfileListResponse, error) {
	if err := buf.ExpectList(9); err != nil {
		return nil, err
	}

	var err error
	r := &GetProfileListResponse{}
	if r.ServerID, err = sml.ParseOctetString(buf); err != nil {
		return nil, err
	}
	if r.ActTime, err = sml.ParseTime(buf); err != nil {
		return nil, err
	}
	if r.RegPeriod, err = sml.ParseU32(buf); err != nil {
		return nil, err
	}
	if r.TreePath, err = sml.ParseTreePath(buf); err != nil {
		return nil, err
	}
	if r.ValTime, err = sml.ParseTime(buf); err != nil {
		return nil, err
	}
	if r.Status, err = sml.ParseU64(buf); err != nil {
		return nil, err
	}
	if r.PeriodList, err = sml.ParseOptionalSequence(buf, sml.PeriodEntryCodec); err != nil {
		return nil, err
	}
	if r.Rawdata, err = sml.ParseOctetString(buf); err != nil {
		return nil, err
	}
	if r.PeriodSignature, err = sml.ParseOctetString(buf); err != nil {
		return nil, err
	}

	return r, nil
}

// Tag implements Body.
func (r *GetProfileListResponse) Tag() BodyTag { return GetProfileListResponseTag }

// Encode implements Body.
func (r *GetProfileListResponse) Encode(buf *sml.Buffer) {
	buf.WriteTL(sml.ListType, 9)
	r.ServerID.Encode(buf)
	r.ActTime.Encode(buf)
	sml.WriteU32(buf, r.RegPeriod)
	r.TreePath.Encode(buf)
	r.ValTime.Encode(buf)
	sml.WriteU64(buf, r.Status)
	sml.EncodeSequence(buf, r.PeriodList, sml.PeriodEntryCodec)
	r.Rawdata.Encode(buf)
	r.PeriodSignature.Encode(buf)
}

// Print implements Body.
func (r *GetProfileListResponse) Print(p *sml.Printer) {
	p.Begin("getProfileListResponse")
	p.Field("serverId", r.ServerID)
	p.Field("actTime", r.ActTime)
	p.Field("regPeriod", r.RegPeriod)
	r.TreePath.Print(p)
	p.Field("valTime", r.ValTime)
	p.Field("status", r.Status)
	p.Begin("periodList[%d]", len(r.PeriodList))
	for _, pe := range r.PeriodList {
		pe.Print(p)
	}
	p.End()
	p.Field("rawdata", r.Rawdata)
	p.Field("periodSignature", r.PeriodSignature)
	p.End()
}
