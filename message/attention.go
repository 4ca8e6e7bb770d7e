package message

import "github.com/arloliu/go-sml/sml"

// AttentionResponse reports an error or acknowledgement of the server
// (SML_Attention.Res).
type AttentionResponse struct {
	ServerID         sml.OctetString `json:"serverId" yaml:"serverId"`
	AttentionNo      sml.OctetString `json:"attentionNo" yaml:"attentionNo"`
	AttentionMsg     sml.OctetString `json:"attentionMsg,omitempty" yaml:"attentionMsg,omitempty"`
	AttentionDetails *sml.Tree       `json:"attentionDetails,omitempty" yaml:"attentionDetails,omitempty"`
}

// ParseAttentionResponse parses a 4-element attention response at the cursor.
func ParseAttentionResponse(buf *sml.Buffer) (*AttentionResponse, error) {
	if err := buf.ExpectList(4); err != nil {
		return nil, err
	}

	var err error
	r := &AttentionResponse{}
	for _, s := range []*sml.OctetString{&r.ServerID, &r.AttentionNo, &r.AttentionMsg} {
		if *s, err = sml.ParseOctetString(buf); err != nil {
			return nil, err
		}
	}
	if r.AttentionDetails, err = sml.ParseTree(buf); err != nil {
		return nil, err
	}

	return r, nil
}

// Tag implements Body.
func (r *AttentionResponse) Tag() BodyTag { return AttentionResponseTag }

// Encode implements Body.
func (r *AttentionResponse) Encode(buf *sml.Buffer) {
	buf.WriteTL(sml.ListType, 4)
	r.ServerID.Encode(buf)
	r.AttentionNo.Encode(buf)
	r.AttentionMsg.Encode(buf)
	r.AttentionDetails.Encode(buf)
}

// Print implements Body.
func (r *AttentionResponse) Print(p *sml.Printer) {
	p.Begin("attentionResponse")
	p.Field("serverId", r.ServerID)
	p.Field("attentionNo", r.AttentionNo.Hex())
	p.Field("attentionMsg", r.AttentionMsg)
	r.AttentionDetails.Print(p)
	p.End()
}
