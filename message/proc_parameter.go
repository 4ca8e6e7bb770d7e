package message

import "github.com/arloliu/go-sml/sml"

// GetProcParameterRequest reads a parameter tree (SML_GetProcParameter.Req).
type GetProcParameterRequest struct {
	ServerID  sml.OctetString `json:"serverId,omitempty" yaml:"serverId,omitempty"`
	Username  sml.OctetString `json:"username,omitempty" yaml:"username,omitempty"`
	Password  sml.OctetString `json:"password,omitempty" yaml:"password,omitempty"`
	TreePath  sml.TreePath    `json:"treePath" yaml:"treePath"`
	Attribute sml.OctetString `json:"attribute,omitempty" yaml:"attribute,omitempty"`
}

// ParseGetProcParameterRequest parses a 5-element request at the cursor.
func ParseGetProcParameterRequest(buf *sml.Buffer) (*GetProcParameterRequest, error) {
	if err := buf.ExpectList(5); err != nil {
		return nil, err
	}

	var err error
	r := &GetProcParameterRequest{}
	for _, s := range []*sml.OctetString{&r.ServerID, &r.Username, &r.Password} {
		if *s, err = sml.ParseOctetString(buf); err != nil {
			return nil, err
		}
	}
	if r.TreePath, err = sml.ParseTreePath(buf); err != nil {
		return nil, err
	}
	if r.Attribute, err = sml.ParseOctetString(buf); err != nil {
		return nil, err
	}

	return r, nil
}

// Tag implements Body.
func (r *GetProcParameterRequest) Tag() BodyTag { return GetProcParameterRequestTag }

// Encode implements Body.
func (r *GetProcParameterRequest) Encode(buf *sml.Buffer) {
	buf.WriteTL(sml.ListType, 5)
	r.ServerID.Encode(buf)
	r.Username.Encode(buf)
	r.Password.Encode(buf)
	r.TreePath.Encode(buf)
	r.Attribute.Encode(buf)
}

// Print implements Body.
func (r *GetProcParameterRequest) Print(p *sml.Printer) {
	p.Begin("getProcParameterRequest")
	p.Field("serverId", r.ServerID)
	p.Field("username", r.Username)
	r.TreePath.Print(p)
	p.Field("attribute", r.Attribute)
	p.End()
}

// GetProcParameterResponse returns a parameter tree (SML_GetProcParameter.Res).
type GetProcParameterResponse struct {
	ServerID sml.OctetString `json:"serverId" yaml:"serverId"`
	TreePath sml.TreePath    `json:"treePath" yaml:"treePath"`
	Tree     *sml.Tree       `json:"tree,omitempty" yaml:"tree,omitempty"`
}

// ParseGetProcParameterResponse parses a 3-element response at the cursor.
func ParseGetProcParameterResponse(buf *sml.Buffer) (*GetProcParameterResponse, error) {
	if err := buf.ExpectList(3); err != nil {
		return nil, err
	}

	var err error
	r := &GetProcParameterResponse{}
	if r.ServerID, err = sml.ParseOctetString(buf); err != nil {
		return nil, err
	}
	if r.TreePath, err = sml.ParseTreePath(buf); err != nil {
		return nil, err
	}
	if r.Tree, err = sml.ParseTree(buf); err != nil {
		return nil, err
	}

	return r, nil
}

// Tag implements Body.
func (r *GetProcParameterResponse) Tag() BodyTag { return GetProcParameterResponseTag }

// Encode implements Body.
func (r *GetProcParameterResponse) Encode(buf *sml.Buffer) {
	buf.WriteTL(sml.ListType, 3)
	r.ServerID.Encode(buf)
	r.TreePath.Encode(buf)
	r.Tree.Encode(buf)
}

// Print implements Body.
func (r *GetProcParameterResponse) Print(p *sml.Printer) {
	p.Begin("getProcParameterResponse")
	p.Field("serverId", r.ServerID)
	r.TreePath.Print(p)
	r.Tree.Print(p)
	p.End()
}

// SetProcParameterRequest writes a parameter tree (SML_SetProcParameter.Req).
type SetProcParameterRequest struct {
	ServerID sml.OctetString `json:"serverId,omitempty" yaml:"serverId,omitempty"`
	Username sml.OctetString `json:"username,omitempty" yaml:"username,omitempty"`
	Password sml.OctetString `json:"password,omitempty" yaml:"password,omitempty"`
	TreePath sml.TreePath    `json:"treePath" yaml:"treePath"`
	Tree     *sml.Tree       `json:"tree" yaml:"tree"`
}

// ParseSetProcParameterRequest parses a 5-element request at the cursor.
func ParseSetProcParameterRequest(buf *sml.Buffer) (*SetProcParameterRequest, error) {
	if err := buf.ExpectList(5); err != nil {
		return nil, err
	}

	var err error
	r := &SetProcParameterRequest{}
	for _, s := range []*sml.OctetString{&r.ServerID, &r.Username, &r.Password} {
		if *s, err = sml.ParseOctetString(buf); err != nil {
			return nil, err
		}
	}
	if r.TreePath, err = sml.ParseTreePath(buf); err != nil {
		return nil, err
	}
	if r.Tree, err = sml.ParseTree(buf); err != nil {
		return nil, err
	}

	return r, nil
}

// Tag implements Body.
func (r *SetProcParameterRequest) Tag() BodyTag { return SetProcParameterRequestTag }

// Encode implements Body.
func (r *SetProcParameterRequest) Encode(buf *sml.Buffer) {
	buf.WriteTL(sml.ListType, 5)
	r.ServerID.Encode(buf)
	r.Username.Encode(buf)
	r.Password.Encode(buf)
	r.TreePath.Encode(buf)
	r.Tree.Encode(buf)
}

// Print implements Body.
func (r *SetProcParameterRequest) Print(p *sml.Printer) {
	p.Begin("setProcParameterRequest")
	p.Field("serverId", r.ServerID)
	p.Field("username", r.Username)
	r.TreePath.Print(p)
	r.Tree.Print(p)
	p.End()
}
