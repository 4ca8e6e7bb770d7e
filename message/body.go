package message

import (
	"fmt"

	"github.com/arloliu/go-sml/sml"
)

// BodyTag identifies the kind of a message body.
type BodyTag uint32

// Message body tags.
const (
	OpenRequestTag              BodyTag = 0x00000100
	OpenResponseTag             BodyTag = 0x00000101
	CloseRequestTag             BodyTag = 0x00000200
	CloseResponseTag            BodyTag = 0x00000201
	GetProfilePackRequestTag    BodyTag = 0x00000300
	GetProfilePackResponseTag   BodyTag = 0x00000301
	GetProfileListRequestTag    BodyTag = 0x00000400
	GetProfileListResponseTag   BodyTag = 0x00000401
	GetProcParameterRequestTag  BodyTag = 0x00000500
	GetProcParameterResponseTag BodyTag = 0x00000501
	SetProcParameterRequestTag  BodyTag = 0x00000600
	GetListRequestTag           BodyTag = 0x00000700
	GetListResponseTag          BodyTag = 0x00000701
	AttentionResponseTag        BodyTag = 0x0000FF01
)

var bodyNames = map[BodyTag]string{
	OpenRequestTag:              "OpenRequest",
	OpenResponseTag:             "OpenResponse",
	CloseRequestTag:             "CloseRequest",
	CloseResponseTag:            "CloseResponse",
	GetProfilePackRequestTag:    "GetProfilePackRequest",
	GetProfilePackResponseTag:   "GetProfilePackResponse",
	GetProfileListRequestTag:    "GetProfileListRequest",
	GetProfileListResponseTag:   "GetProfileListResponse",
	GetProcParameterRequestTag:  "GetProcParameterRequest",
	GetProcParameterResponseTag: "GetProcParameterResponse",
	SetProcParameterRequestTag:  "SetProcParameterRequest",
	GetListRequestTag:           "GetListRequest",
	GetListResponseTag:          "GetListResponse",
	AttentionResponseTag:        "AttentionResponse",
}

// String returns the body name, or the hexadecimal tag if it is unknown.
func (t BodyTag) String() string {
	if name, ok := bodyNames[t]; ok {
		return name
	}

	return fmt.Sprintf("BodyTag(0x%04X)", uint32(t))
}

// IsKnown reports whether t is one of the defined body tags.
func (t BodyTag) IsKnown() bool {
	_, ok := bodyParsers[t]
	return ok
}

// Body is the payload of a Message.
//
// It is implemented by the request and response types of this package; the tag
// written on the wire is the one returned by Tag.
type Body interface {
	// Tag returns the tag identifying the body kind.
	Tag() BodyTag
	// Encode appends the body to buf.
	Encode(buf *sml.Buffer)
	// Print writes a human readable dump of the body.
	Print(p *sml.Printer)
}

// ensure all bodies implement the Body interface.
var (
	_ Body = (*OpenRequest)(nil)
	_ Body = (*OpenResponse)(nil)
	_ Body = (*CloseRequest)(nil)
	_ Body = (*CloseResponse)(nil)
	_ Body = (*GetProfilePackRequest)(nil)
	_ Body = (*GetProfilePackResponse)(nil)
	_ Body = (*GetProfileListRequest)(nil)
	_ Body = (*GetProfileListResponse)(nil)
	_ Body = (*GetProcParameterRequest)(nil)
	_ Body = (*GetProcParameterResponse)(nil)
	_ Body = (*SetProcParameterRequest)(nil)
	_ Body = (*GetListRequest)(nil)
	_ Body = (*GetListResponse)(nil)
	_ Body = (*AttentionResponse)(nil)
)

type bodyParser func(buf *sml.Buffer) (Body, error)

// wrapParser adapts a typed parse function to a bodyParser.
func wrapParser[T Body](parse func(buf *sml.Buffer) (T, error)) bodyParser {
	return func(buf *sml.Buffer) (Body, error) {
		body, err := parse(buf)
		if err != nil {
			return nil, err
		}

		return body, nil
	}
}

var bodyParsers = map[BodyTag]bodyParser{
	OpenRequestTag:              wrapParser(ParseOpenRequest),
	OpenResponseTag:             wrapParser(ParseOpenResponse),
	CloseRequestTag:             wrapParser(ParseCloseRequest),
	CloseResponseTag:            wrapParser(ParseCloseResponse),
	GetProfilePackRequestTag:    wrapParser(ParseGetProfilePackRequest),
	GetProfilePackResponseTag:   wrapParser(ParseGetProfilePackResponse),
	GetProfileListRequestTag:    wrapParser(ParseGetProfileListRequest),
	GetProfileListResponseTag:   wrapParser(ParseGetProfileListResponse),
	GetProcParameterRequestTag:  wrapParser(ParseGetProcParameterRequest),
	GetProcParameterResponseTag: wrapParser(ParseGetProcParameterResponse),
	SetProcParameterRequestTag:  wrapParser(ParseSetProcParameterRequest),
	GetListRequestTag:           wrapParser(ParseGetListRequest),
	GetListResponseTag:          wrapParser(ParseGetListResponse),
	AttentionResponseTag:        wrapParser(ParseAttentionResponse),
}

// ParseBody parses the 2-element {tag, body} list at the cursor.
// An absent or unknown tag is a SemanticError matching sml.ErrUnknownTag.
func ParseBody(buf *sml.Buffer) (Body, error) {
	if err := buf.ExpectList(2); err != nil {
		return nil, err
	}

	start := buf.Cursor()
	tag, err := sml.ParseU32(buf)
	if err != nil {
		return nil, err
	}
	if tag == nil {
		return nil, buf.FailAt(start, sml.SemanticError, sml.ErrUnknownTag, "message body without tag")
	}

	parse, ok := bodyParsers[BodyTag(*tag)]
	if !ok {
		return nil, buf.FailAt(start, sml.SemanticError, sml.ErrUnknownTag, "message body %s", BodyTag(*tag))
	}

	return parse(buf)
}

// EncodeBody appends body as a {tag, body} list.
// It returns ErrUnknownBody if body is nil or its tag is not a defined body tag.
func EncodeBody(buf *sml.Buffer, body Body) error {
	if isNilBody(body) {
		return ErrUnknownBody
	}
	tag := body.Tag()
	if !tag.IsKnown() {
		return fmt.Errorf("%w: %s", ErrUnknownBody, tag)
	}

	raw := uint32(tag)
	buf.WriteTL(sml.ListType, 2)
	sml.WriteU32(buf, &raw)
	body.Encode(buf)

	return buf.Err()
}

func isNilBody(body Body) bool {
	switch b := body.(type) {
	case nil:
		return true
	case *OpenRequest:
		return b == nil
	case *OpenResponse:
		return b == nil
	case *CloseRequest:
		return b == nil
	case *CloseResponse:
		return b == nil
	case *GetProfilePackRequest:
		return b == nil
	case *GetProfilePackResponse:
		return b == nil
	case *GetProfileListRequest:
		return b == nil
	case *GetProfileListResponse:
		return b == nil
	case *GetProcParameterRequest:
		return b == nil
	case *GetProcParameterResponse:
		return b == nil
	case *SetProcParameterRequest:
		return b == nil
	case *GetListRequest:
		return b == nil
	case *GetListResponse:
		return b == nil
	case *AttentionResponse:
		return b == nil
	default:
		return false
	}
}
