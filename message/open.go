package message

import "github.com/arloliu/go-sml/sml"

// OpenRequest opens an SML file (SML_PublicOpen.Req).
type OpenRequest struct {
	Codepage   sml.OctetString `json:"codepage,omitempty" yaml:"codepage,omitempty"`
	ClientID   sml.OctetString `json:"clientId" yaml:"clientId"`
	ReqFileID  sml.OctetString `json:"reqFileId" yaml:"reqFileId"`
	ServerID   sml.OctetString `json:"serverId,omitempty" yaml:"serverId,omitempty"`
	Username   sml.OctetString `json:"username,omitempty" yaml:"username,omitempty"`
	Password   sml.OctetString `json:"password,omitempty" yaml:"password,omitempty"`
	SMLVersion *uint8          `json:"smlVersion,omitempty" yaml:"smlVersion,omitempty"`
}

// ParseOpenRequest parses a 7-element open request at the cursor.
func ParseOpenRequest(buf *sml.Buffer) (*OpenRequest, error) {
	if err := buf.ExpectList(7); err != nil {
		return nil, err
	}

	var err error
	r := &OpenRequest{}
	for _, s := range []*sml.OctetString{&r.Codepage, &r.ClientID, &r.ReqFileID, &r.ServerID, &r.Username, &r.Password} {
		if *s, err = sml.ParseOctetString(buf); err != nil {
			return nil, err
		}
	}
	if r.SMLVersion, err = sml.ParseU8(buf); err != nil {
		return nil, err
	}

	return r, nil
}

// Tag implements Body.
func (r *OpenRequest) Tag() BodyTag { return OpenRequestTag }

// Encode implements Body.
func (r *OpenRequest) Encode(buf *sml.Buffer) {
	buf.WriteTL(sml.ListType, 7)
	r.Codepage.Encode(buf)
	r.ClientID.Encode(buf)
	r.ReqFileID.Encode(buf)
	r.ServerID.Encode(buf)
	r.Username.Encode(buf)
	r.Password.Encode(buf)
	sml.WriteU8(buf, r.SMLVersion)
}

// Print implements Body.
func (r *OpenRequest) Print(p *sml.Printer) {
	p.Begin("openRequest")
	p.Field("codepage", r.Codepage)
	p.Field("clientId", r.ClientID)
	p.Field("reqFileId", r.ReqFileID)
	p.Field("serverId", r.ServerID)
	p.Field("username", r.Username)
	p.Field("password", r.Password)
	p.Field("smlVersion", r.SMLVersion)
	p.End()
}

// OpenResponse acknowledges an open request (SML_PublicOpen.Res).
type OpenResponse struct {
	Codepage   sml.OctetString `json:"codepage,omitempty" yaml:"codepage,omitempty"`
	ClientID   sml.OctetString `json:"clientId,omitempty" yaml:"clientId,omitempty"`
	ReqFileID  sml.OctetString `json:"reqFileId" yaml:"reqFileId"`
	ServerID   sml.OctetString `json:"serverId" yaml:"serverId"`
	RefTime    *sml.Time       `json:"refTime,omitempty" yaml:"refTime,omitempty"`
	SMLVersion *uint8          `json:"smlVersion,omitempty" yaml:"smlVersion,omitempty"`
}

// ParseOpenResponse parses a 6-element open response at the cursor.
func ParseOpenResponse(buf *sml.Buffer) (*OpenResponse, error) {
	if err := buf.ExpectList(6); err != nil {
		return nil, err
	}

	var err error
	r := &OpenResponse{}
	for _, s := range []*sml.OctetString{&r.Codepage, &r.ClientID, &r.ReqFileID, &r.ServerID} {
		if *s, err = sml.ParseOctetString(buf); err != nil {
			return nil, err
		}
	}
	if r.RefTime, err = sml.ParseTime(buf); err != nil {
		return nil, err
	}
	if r.SMLVersion, err = sml.ParseU8(buf); err != nil {
		return nil, err
	}

	return r, nil
}

// Tag implements Body.
func (r *OpenResponse) Tag() BodyTag { return OpenResponseTag }

// Encode implements Body.
func (r *OpenResponse) Encode(buf *sml.Buffer) {
	buf.WriteTL(sml.ListType, 6)
	r.Codepage.Encode(buf)
	r.ClientID.Encode(buf)
	r.ReqFileID.Encode(buf)
	r.ServerID.Encode(buf)
	r.RefTime.Encode(buf)
	sml.WriteU8(buf, r.SMLVersion)
}

// Print implements Body.
func (r *OpenResponse) Print(p *sml.Printer) {
	p.Begin("openResponse")
	p.Field("codepage", r.Codepage)
	p.Field("clientId", r.ClientID)
	p.Field("reqFileId", r.ReqFileID)
	p.Field("serverId", r.ServerID)
	p.Field("refTime", r.RefTime)
	p.Field("smlVersion", r.SMLVersion)
	p.End()
}
