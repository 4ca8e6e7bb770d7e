package message

import (
	"encoding/json"
	"fmt"

	"github.com/arloliu/go-sml/sml"
)

// File is a sequence of SML messages, typically an OpenResponse, one or more
// responses and a CloseResponse.
type File struct {
	Messages []*Message

	buf *sml.Buffer
}

// DecodeFile decodes all messages in data. Zero bytes between messages are skipped.
//
// Decoding stops at the first message that fails to parse. DecodeFile then returns
// the messages parsed so far together with the error, or, if WithStrict(false) is
// set, logs the error and returns the messages without error.
//
// The returned File keeps a reference to data until Free is called.
func DecodeFile(data []byte, opts ...Option) (*File, error) {
	cfg, err := newConfig(opts)
	if err != nil {
		return nil, err
	}

	buf := sml.NewReadBuffer(data, cfg.bufOpts...)
	file := &File{buf: buf}
	cfg.metrics.incFileCount()

	for buf.Remaining() > 0 {
		if c, _ := buf.PeekByte(); c == sml.EndOfMessage {
			_ = buf.Skip(1)
			continue
		}

		start := buf.Cursor()
		msg, err := ParseMessage(buf)
		if err != nil {
			cfg.metrics.incErrCount(err)
			if cfg.strict {
				return file, fmt.Errorf("message #%d at offset %d: %w", len(file.Messages), start, err)
			}
			cfg.logger.Warn("could not read the whole sml file",
				"messages", len(file.Messages), "offset", start, "size", len(data), "error", err)

			break
		}
		cfg.metrics.incMessageCount(buf.Cursor() - start)
		file.Messages = append(file.Messages, msg)
	}

	return file, nil
}

// Add appends messages to the file.
func (f *File) Add(msgs ...*Message) {
	f.Messages = append(f.Messages, msgs...)
}

// Encode writes all messages back to back and returns the bytes.
func (f *File) Encode(opts ...Option) ([]byte, error) {
	cfg, err := newConfig(opts)
	if err != nil {
		return nil, err
	}

	buf := sml.NewBuffer(512, cfg.bufOpts...)
	for i, msg := range f.Messages {
		if msg == nil {
			buf.Free()
			return nil, fmt.Errorf("message #%d: %w", i, ErrUnknownBody)
		}
		if err := msg.encode(buf, cfg.computeChecksum); err != nil {
			buf.Free()
			return nil, fmt.Errorf("message #%d: %w", i, err)
		}
		cfg.metrics.incEncodeCount()
	}

	f.buf.Free()
	f.buf = buf

	return buf.Bytes(), nil
}

// Bytes returns the bytes the file was decoded from or last encoded to.
func (f *File) Bytes() []byte {
	if f.buf == nil {
		return nil
	}

	return f.buf.Bytes()
}

// Bodies returns the bodies of all messages with the given tag, in file order.
func (f *File) Bodies(tag BodyTag) []Body {
	var bodies []Body
	for _, msg := range f.Messages {
		if msg != nil && !isNilBody(msg.Body) && msg.Body.Tag() == tag {
			bodies = append(bodies, msg.Body)
		}
	}

	return bodies
}

// Free releases the buffer held by the file. Calling Free on a nil file is a no-op.
func (f *File) Free() {
	if f == nil {
		return
	}
	f.buf.Free()
	f.buf = nil
}

// Print writes a human readable dump of all messages.
func (f *File) Print(p *sml.Printer) {
	p.Begin("file[%d]", len(f.Messages))
	for _, msg := range f.Messages {
		msg.Print(p)
	}
	p.End()
}

// String returns the text produced by Print.
func (f *File) String() string {
	p := sml.NewPrinter()
	f.Print(p)

	return p.String()
}

// MarshalJSON encodes the file as an array of messages.
func (f *File) MarshalJSON() ([]byte, error) {
	return json.Marshal(f.Messages)
}

// MarshalYAML implements yaml.Marshaler.
func (f *File) MarshalYAML() (any, error) {
	return f.Messages, nil
}
