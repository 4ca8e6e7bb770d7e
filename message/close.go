package message

import "github.com/arloliu/go-sml/sml"

// CloseRequest closes an SML file (SML_PublicClose.Req).
type CloseRequest struct {
	GlobalSignature sml.OctetString `json:"globalSignature,omitempty" yaml:"globalSignature,omitempty"`
}

// ParseCloseRequest parses a 1-element close request at the cursor.
func ParseCloseRequest(buf *sml.Buffer) (*CloseRequest, error) {
	sig, err := parseGlobalSignature(buf)
	if err != nil {
		return nil, err
	}

	return &CloseRequest{GlobalSignature: sig}, nil
}

// Tag implements Body.
func (r *CloseRequest) Tag() BodyTag { return CloseRequestTag }

// Encode implements Body.
func (r *CloseRequest) Encode(buf *sml.Buffer) {
	buf.WriteTL(sml.ListType, 1)
	r.GlobalSignature.Encode(buf)
}

// Print implements Body.
func (r *CloseRequest) Print(p *sml.Printer) {
	p.Begin("closeRequest")
	p.Field("globalSignature", r.GlobalSignature)
	p.End()
}

// CloseResponse acknowledges a close request (SML_PublicClose.Res).
type CloseResponse struct {
	GlobalSignature sml.OctetString `json:"globalSignature,omitempty" yaml:"globalSignature,omitempty"`
}

// ParseCloseResponse parses a 1-element close response at the cursor.
func ParseCloseResponse(buf *sml.Buffer) (*CloseResponse, error) {
	sig, err := parseGlobalSignature(buf)
	if err != nil {
		return nil, err
	}

	return &CloseResponse{GlobalSignature: sig}, nil
}

// Tag implements Body.
func (r *CloseResponse) Tag() BodyTag { return CloseResponseTag }

// Encode implements Body.
func (r *CloseResponse) Encode(buf *sml.Buffer) {
	buf.WriteTL(sml.ListType, 1)
	r.GlobalSignature.Encode(buf)
}

// Print implements Body.
func (r *CloseResponse) Print(p *sml.Printer) {
	p.Begin("closeResponse")
	p.Field("globalSignature", r.GlobalSignature)
	p.End()
}

func parseGlobalSignature(buf *sml.Buffer) (sml.OctetString, error) {
	if err := buf.ExpectList(1); err != nil {
		return nil, err
	}

	return sml.ParseOctetString(buf)
}
