package message

import (
	"crypto/rand"
	"encoding/binary"
	"io"
	"sync"
	"sync/atomic"

	"github.com/google/uuid"

	"github.com/arloliu/go-sml/sml"
)

// IDGenerator creates transaction ids for new messages.
// Implementations must be safe for concurrent use.
type IDGenerator interface {
	NewTransactionID() sml.OctetString
}

// UUIDGenerator creates 16-byte random transaction ids from version 4 UUIDs.
// It is the default IDGenerator.
type UUIDGenerator struct{}

// NewTransactionID implements IDGenerator.
func (UUIDGenerator) NewTransactionID() sml.OctetString {
	id := uuid.New()
	return sml.OctetString(id[:])
}

// SequenceGenerator creates 4-byte big-endian transaction ids from a counter that
// starts at a random value.
type SequenceGenerator struct {
	id atomic.Uint32
}

// NewSequenceGenerator creates a SequenceGenerator seeded from crypto/rand.
func NewSequenceGenerator() *SequenceGenerator {
	inst := &SequenceGenerator{}
	var buf [4]byte
	if _, err := io.ReadFull(rand.Reader, buf[:]); err != nil {
		return inst
	}
	inst.id.Store(binary.LittleEndian.Uint32(buf[:]))

	return inst
}

// NewTransactionID implements IDGenerator.
func (g *SequenceGenerator) NewTransactionID() sml.OctetString {
	return binary.BigEndian.AppendUint32(make(sml.OctetString, 0, 4), g.id.Add(1))
}

var (
	seqInst *SequenceGenerator
	seqOnce sync.Once
)

// DefaultSequenceGenerator returns the process wide SequenceGenerator.
func DefaultSequenceGenerator() *SequenceGenerator {
	seqOnce.Do(func() {
		seqInst = NewSequenceGenerator()
	})

	return seqInst
}
