package message

import (
	"encoding/json"
	"fmt"

	"github.com/arloliu/go-sml/internal/util"
	"github.com/arloliu/go-sml/sml"
)

// Abort-on-error values of a message.
const (
	// AbortContinue continues with the next message.
	AbortContinue uint8 = 0x00
	// AbortSkipGroup continues with the next group.
	AbortSkipGroup uint8 = 0x01
	// AbortAfterGroup finishes the current group, then aborts.
	AbortAfterGroup uint8 = 0x02
	// AbortImmediately aborts at once.
	AbortImmediately uint8 = 0xFF
)

const messageElements = 6

// Message is one SML message: a transaction header, a body and a checksum.
type Message struct {
	// TransactionID identifies the request/response pair the message belongs to.
	TransactionID sml.OctetString
	// GroupID groups messages that are processed together.
	GroupID uint8
	// AbortOnError tells the receiver how to proceed if the message fails.
	AbortOnError uint8
	// Body is the payload of the message.
	Body Body
	// Checksum is the CRC of the message as read from the wire, or as computed by
	// an encoder configured with WithComputedChecksum.
	Checksum uint16
}

// New creates a message carrying body with a fresh transaction id from the
// configured IDGenerator.
func New(body Body, opts ...Option) (*Message, error) {
	if isNilBody(body) {
		return nil, ErrUnknownBody
	}

	cfg, err := newConfig(opts)
	if err != nil {
		return nil, err
	}

	return &Message{TransactionID: cfg.idGen.NewTransactionID(), Body: body}, nil
}

// ParseMessage parses a 6-element message at the cursor. A trailing end-of-message
// byte is consumed if present.
func ParseMessage(buf *sml.Buffer) (*Message, error) {
	if err := buf.ExpectList(messageElements); err != nil {
		return nil, err
	}

	msg := &Message{}
	var err error
	if msg.TransactionID, err = sml.ParseOctetString(buf); err != nil {
		return nil, err
	}

	groupID, err := sml.ParseU8(buf)
	if err != nil {
		return nil, err
	}
	msg.GroupID = util.Deref(groupID)

	abort, err := sml.ParseU8(buf)
	if err != nil {
		return nil, err
	}
	msg.AbortOnError = util.Deref(abort)

	if msg.Body, err = ParseBody(buf); err != nil {
		return nil, err
	}

	crc, err := sml.ParseU16(buf)
	if err != nil {
		return nil, err
	}
	msg.Checksum = util.Deref(crc)

	if buf.Remaining() > 0 {
		if c, _ := buf.PeekByte(); c == sml.EndOfMessage {
			_ = buf.Skip(1)
		}
	}

	return msg, nil
}

// Encode appends msg and the end-of-message byte to buf, writing the stored checksum.
func (m *Message) Encode(buf *sml.Buffer) error {
	return m.encode(buf, false)
}

func (m *Message) encode(buf *sml.Buffer, computeChecksum bool) error {
	if isNilBody(m.Body) {
		return ErrUnknownBody
	}
	if !m.Body.Tag().IsKnown() {
		return fmt.Errorf("%w: %s", ErrUnknownBody, m.Body.Tag())
	}

	start := buf.Cursor()
	buf.WriteTL(sml.ListType, messageElements)
	m.TransactionID.Encode(buf)
	sml.WriteU8(buf, &m.GroupID)
	sml.WriteU8(buf, &m.AbortOnError)
	if err := EncodeBody(buf, m.Body); err != nil {
		return err
	}

	if computeChecksum {
		m.Checksum = Checksum(buf.Slice(start, buf.Cursor()))
	}
	sml.WriteU16(buf, &m.Checksum)
	_ = buf.WriteByte(sml.EndOfMessage)

	return buf.Err()
}

// DecodeMessage decodes a single message from data.
//
// Bytes left over after the message are reported as a warning through the
// configured logger.
func DecodeMessage(data []byte, opts ...Option) (*Message, error) {
	cfg, err := newConfig(opts)
	if err != nil {
		return nil, err
	}

	buf := sml.NewReadBuffer(data, cfg.bufOpts...)
	defer buf.Free()

	msg, err := ParseMessage(buf)
	if err != nil {
		cfg.metrics.incErrCount(err)
		return nil, err
	}
	cfg.metrics.incMessageCount(buf.Cursor())

	if buf.Remaining() > 0 {
		cfg.logger.Warn("trailing bytes after sml message", "offset", buf.Cursor(), "remaining", buf.Remaining())
	}

	return msg, nil
}

// EncodeMessage encodes msg and returns the bytes, including the end-of-message byte.
func EncodeMessage(msg *Message, opts ...Option) ([]byte, error) {
	if msg == nil {
		return nil, ErrUnknownBody
	}

	cfg, err := newConfig(opts)
	if err != nil {
		return nil, err
	}

	buf := sml.NewBuffer(256, cfg.bufOpts...)
	defer buf.Free()

	if err := msg.encode(buf, cfg.computeChecksum); err != nil {
		return nil, err
	}
	cfg.metrics.incEncodeCount()

	return append([]byte(nil), buf.Bytes()...), nil
}

// Print writes a human readable dump of the message.
func (m *Message) Print(p *sml.Printer) {
	p.Begin("message")
	p.Field("transactionId", m.TransactionID.Hex())
	p.Field("groupId", m.GroupID)
	p.Field("abortOnError", m.AbortOnError)
	if isNilBody(m.Body) {
		p.Field("body", nil)
	} else {
		m.Body.Print(p)
	}
	p.Field("checksum", fmt.Sprintf("0x%04x", m.Checksum))
	p.End()
}

// String returns the text produced by Print.
func (m *Message) String() string {
	p := sml.NewPrinter()
	m.Print(p)

	return p.String()
}

type messageView struct {
	TransactionID sml.OctetString `json:"transactionId" yaml:"transactionId"`
	GroupID       uint8           `json:"groupId" yaml:"groupId"`
	AbortOnError  uint8           `json:"abortOnError" yaml:"abortOnError"`
	BodyTag       string          `json:"bodyTag" yaml:"bodyTag"`
	Body          Body            `json:"body" yaml:"body"`
	Checksum      string          `json:"checksum" yaml:"checksum"`
}

func (m *Message) view() messageView {
	v := messageView{
		TransactionID: m.TransactionID,
		GroupID:       m.GroupID,
		AbortOnError:  m.AbortOnError,
		Body:          m.Body,
		Checksum:      fmt.Sprintf("0x%04x", m.Checksum),
	}
	if !isNilBody(m.Body) {
		v.BodyTag = m.Body.Tag().String()
	}

	return v
}

// MarshalJSON encodes the message with its body tag name and body fields.
func (m *Message) MarshalJSON() ([]byte, error) {
	return json.Marshal(m.view())
}

// MarshalYAML implements yaml.Marshaler.
func (m *Message) MarshalYAML() (any, error) {
	return m.view(), nil
}
