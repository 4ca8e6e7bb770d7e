package message

import (
	"iter"

	"github.com/arloliu/go-sml/sml"
)

// GetListRequest requests a list of current readings (SML_GetList.Req).
type GetListRequest struct {
	ClientID sml.OctetString `json:"clientId" yaml:"clientId"`
	ServerID sml.OctetString `json:"serverId,omitempty" yaml:"serverId,omitempty"`
	Username sml.OctetString `json:"username,omitempty" yaml:"username,omitempty"`
	Password sml.OctetString `json:"password,omitempty" yaml:"password,omitempty"`
	ListName sml.OctetString `json:"listName,omitempty" yaml:"listName,omitempty"`
}

// ParseGetListRequest parses a 5-element list request at the cursor.
func ParseGetListRequest(buf *sml.Buffer) (*GetListRequest, error) {
	if err := buf.ExpectList(5); err != nil {
		return nil, err
	}

	var err error
	r := &GetListRequest{}
	for _, s := range []*sml.OctetString{&r.ClientID, &r.ServerID, &r.Username, &r.Password, &r.ListName} {
		if *s, err = sml.ParseOctetString(buf); err != nil {
			return nil, err
		}
	}

	return r, nil
}

// Tag implements Body.
func (r *GetListRequest) Tag() BodyTag { return GetListRequestTag }

// Encode implements Body.
func (r *GetListRequest) Encode(buf *sml.Buffer) {
	buf.WriteTL(sml.ListType, 5)
	r.ClientID.Encode(buf)
	r.ServerID.Encode(buf)
	r.Username.Encode(buf)
	r.Password.Encode(buf)
	r.ListName.Encode(buf)
}

// Print implements Body.
func (r *GetListRequest) Print(p *sml.Printer) {
	p.Begin("getListRequest")
	p.Field("clientId", r.ClientID)
	p.Field("serverId", r.ServerID)
	p.Field("username", r.Username)
	p.Field("listName", r.ListName)
	p.End()
}

// GetListResponse carries a list of current readings (SML_GetList.Res). This is
// the body smart meters push periodically on their optical interface.
type GetListResponse struct {
	ClientID       sml.OctetString `json:"clientId,omitempty" yaml:"clientId,omitempty"`
	ServerID       sml.OctetString `json:"serverId" yaml:"serverId"`
	ListName       sml.OctetString `json:"listName,omitempty" yaml:"listName,omitempty"`
	ActSensorTime  *sml.Time       `json:"actSensorTime,omitempty" yaml:"actSensorTime,omitempty"`
	ValList        *sml.ListEntry  `json:"valList" yaml:"valList"`
	ListSignature  sml.OctetString `json:"listSignature,omitempty" yaml:"listSignature,omitempty"`
	ActGatewayTime *sml.Time       `json:"actGatewayTime,omitempty" yaml:"actGatewayTime,omitempty"`
}

// ParseGetListResponse parses a 7-element list response at the cursor.
func ParseGetListResponse(buf *sml.Buffer) (*GetListResponse, error) {
	if err := buf.ExpectList(7); err != nil {
		return nil, err
	}

	var err error
	r := &GetListResponse{}
	for _, s := range []*sml.OctetString{&r.ClientID, &r.ServerID, &r.ListName} {
		if *s, err = sml.ParseOctetString(buf); err != nil {
			return nil, err
		}
	}
	if r.ActSensorTime, err = sml.ParseTime(buf); err != nil {
		return nil, err
	}
	if r.ValList, err = sml.ParseList(buf); err != nil {
		return nil, err
	}
	if r.ListSignature, err = sml.ParseOctetString(buf); err != nil {
		r.ValList.Free()
		return nil, err
	}
	if r.ActGatewayTime, err = sml.ParseTime(buf); err != nil {
		r.ValList.Free()
		return nil, err
	}

	return r, nil
}

// Tag implements Body.
func (r *GetListResponse) Tag() BodyTag { return GetListResponseTag }

// Encode implements Body.
func (r *GetListResponse) Encode(buf *sml.Buffer) {
	buf.WriteTL(sml.ListType, 7)
	r.ClientID.Encode(buf)
	r.ServerID.Encode(buf)
	r.ListName.Encode(buf)
	r.ActSensorTime.Encode(buf)
	r.ValList.Encode(buf)
	r.ListSignature.Encode(buf)
	r.ActGatewayTime.Encode(buf)
}

// Print implements Body.
func (r *GetListResponse) Print(p *sml.Printer) {
	p.Begin("getListResponse")
	p.Field("clientId", r.ClientID)
	p.Field("serverId", r.ServerID)
	p.Field("listName", r.ListName)
	p.Field("actSensorTime", r.ActSensorTime)
	r.ValList.Print(p)
	p.Field("listSignature", r.ListSignature)
	p.Field("actGatewayTime", r.ActGatewayTime)
	p.End()
}

// Values iterates over the object name and value of every list entry.
// Entries without a value are skipped.
func (r *GetListResponse) Values() iter.Seq2[sml.OctetString, *sml.Value] {
	return func(yield func(sml.OctetString, *sml.Value) bool) {
		for entry := range r.ValList.All() {
			if entry.Value == nil {
				continue
			}
			if !yield(entry.ObjName, entry.Value) {
				return
			}
		}
	}
}
