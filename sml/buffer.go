package sml

import (
	"fmt"
)

const (
	// OptionalSkipped is the single byte that marks an absent optional field.
	OptionalSkipped byte = 0x01
	// EndOfMessage is the byte that terminates an SML message.
	EndOfMessage byte = 0x00
	// DefaultMaxDepth is the default maximum nesting depth of parameter trees.
	DefaultMaxDepth = 64
)

// Buffer is a cursor over an SML byte range.
//
// A read buffer wraps an existing byte slice and every Parse function consumes
// bytes at the cursor. A write buffer starts empty and every Encode method appends
// to it.
//
// The first error is sticky: once set, every later read or write is a no-op that
// returns the same error. A Buffer is not safe for concurrent use.
type Buffer struct {
	data []byte
	pos  int
	err  error

	maxDepth      int
	dzgWorkaround bool
}

// NewBuffer creates an empty write buffer with the given initial capacity.
func NewBuffer(capacity int, opts ...Option) *Buffer {
	buf := getBuffer()
	buf.init(make([]byte, 0, capacity), opts)

	return buf
}

// NewReadBuffer creates a read buffer over data with the cursor at offset 0.
//
// The buffer does not copy data; the caller must not modify it while parsing.
func NewReadBuffer(data []byte, opts ...Option) *Buffer {
	buf := getBuffer()
	buf.init(data, opts)

	return buf
}

func (b *Buffer) init(data []byte, opts []Option) {
	b.data = data
	b.pos = 0
	b.err = nil
	b.maxDepth = DefaultMaxDepth
	b.dzgWorkaround = true

	for _, opt := range opts {
		if opt != nil {
			opt.apply(b)
		}
	}
}

// Reset rewinds the buffer to offset 0 over data and clears the sticky error.
// Options given at construction are kept.
func (b *Buffer) Reset(data []byte) {
	b.data = data
	b.pos = 0
	b.err = nil
}

// Free returns the buffer to the pool. The buffer must not be used afterwards.
// Calling Free on a nil buffer is a no-op.
func (b *Buffer) Free() {
	if b == nil {
		return
	}
	b.data = nil
	b.err = nil
	putBuffer(b)
}

// Cursor returns the current offset.
func (b *Buffer) Cursor() int {
	return b.pos
}

// Len returns the total number of bytes held by the buffer.
func (b *Buffer) Len() int {
	return len(b.data)
}

// Remaining returns the number of unread bytes.
func (b *Buffer) Remaining() int {
	return len(b.data) - b.pos
}

// Bytes returns the bytes held by the buffer. For a write buffer these are the
// encoded bytes. The returned slice aliases the buffer.
func (b *Buffer) Bytes() []byte {
	return b.data
}

// Slice returns the bytes between from and to. It returns nil if the range is invalid.
func (b *Buffer) Slice(from, to int) []byte {
	if from < 0 || to > len(b.data) || from > to {
		return nil
	}

	return b.data[from:to]
}

// Err returns the sticky error, or nil.
func (b *Buffer) Err() error {
	return b.err
}

// HasErrors reports whether the sticky error is set.
func (b *Buffer) HasErrors() bool {
	return b.err != nil
}

// MaxDepth returns the maximum tree nesting depth accepted by the buffer.
func (b *Buffer) MaxDepth() int {
	return b.maxDepth
}

// Failf latches a DecodeError of the given kind at the current cursor and returns
// the sticky error. If an error is already latched, it is returned unchanged.
func (b *Buffer) Failf(kind ErrorKind, err error, format string, args ...any) error {
	return b.failAt(b.pos, kind, err, format, args...)
}

// FailAt is like Failf but reports the error at the given offset.
func (b *Buffer) FailAt(offset int, kind ErrorKind, err error, format string, args ...any) error {
	return b.failAt(offset, kind, err, format, args...)
}

func (b *Buffer) failAt(offset int, kind ErrorKind, err error, format string, args ...any) error {
	if b.err == nil {
		b.err = NewDecodeError(kind, offset, err, format, args...)
	}

	return b.err
}

// PeekByte returns the byte at the cursor without consuming it.
func (b *Buffer) PeekByte() (byte, error) {
	if b.err != nil {
		return 0, b.err
	}
	if b.pos >= len(b.data) {
		return 0, b.failAt(b.pos, StructuralError, ErrUnexpectedEOF, "need 1 byte")
	}

	return b.data[b.pos], nil
}

// ReadByte consumes and returns the byte at the cursor.
func (b *Buffer) ReadByte() (byte, error) {
	c, err := b.PeekByte()
	if err != nil {
		return 0, err
	}
	b.pos++

	return c, nil
}

// Skip advances the cursor by n bytes.
func (b *Buffer) Skip(n int) error {
	_, err := b.read(n)
	return err
}

// read consumes n bytes and returns them without copying.
func (b *Buffer) read(n int) ([]byte, error) {
	if b.err != nil {
		return nil, b.err
	}
	if n < 0 || n > b.Remaining() {
		return nil, b.failAt(b.pos, StructuralError, ErrUnexpectedEOF, "need %d bytes, have %d", n, b.Remaining())
	}
	result := b.data[b.pos : b.pos+n]
	b.pos += n

	return result, nil
}

// SkipOptional consumes the absent-field sentinel if it is at the cursor and
// reports whether it did.
func (b *Buffer) SkipOptional() bool {
	if b.err != nil || b.pos >= len(b.data) {
		return false
	}
	if b.data[b.pos] == OptionalSkipped {
		b.pos++
		return true
	}

	return false
}

// WriteByte appends c to a write buffer.
func (b *Buffer) WriteByte(c byte) error {
	if b.err != nil {
		return b.err
	}
	b.data = append(b.data, c)
	b.pos = len(b.data)

	return nil
}

// Write appends p to a write buffer. It implements io.Writer.
func (b *Buffer) Write(p []byte) (int, error) {
	if b.err != nil {
		return 0, b.err
	}
	b.data = append(b.data, p...)
	b.pos = len(b.data)

	return len(p), nil
}

// WriteOptional appends the absent-field sentinel.
func (b *Buffer) WriteOptional() {
	_ = b.WriteByte(OptionalSkipped)
}

// checkCount rejects a list count that cannot fit in the remaining bytes; every
// element needs at least one byte.
func (b *Buffer) checkCount(offset int, count int) error {
	if count > b.Remaining() {
		return b.failAt(offset, StructuralError, ErrImplausibleCount,
			"list claims %d elements but only %d bytes remain", count, b.Remaining())
	}

	return nil
}

// String returns a short description of the buffer state.
func (b *Buffer) String() string {
	return fmt.Sprintf("sml.Buffer{len: %d, cursor: %d, err: %v}", len(b.data), b.pos, b.err)
}
