package message

import (
	"sync/atomic"

	"github.com/arloliu/go-sml/sml"
)

// DecodeMetrics contains atomic counters of the decoder and encoder.
// Metrics can be used as the value of a prometheus CounterFunc.
//
// A nil *DecodeMetrics is valid and counts nothing.
type DecodeMetrics struct {
	// FileCount indicates the number of files decoded.
	FileCount atomic.Uint64
	// MessageCount indicates the number of messages decoded.
	MessageCount atomic.Uint64
	// ByteCount indicates the number of bytes consumed by decoded messages.
	ByteCount atomic.Uint64
	// EncodeCount indicates the number of messages encoded.
	EncodeCount atomic.Uint64

	// StructuralErrCount indicates the number of decode failures caused by malformed TLV structure.
	StructuralErrCount atomic.Uint64
	// NumericErrCount indicates the number of decode failures caused by numbers that do not fit.
	NumericErrCount atomic.Uint64
	// SemanticErrCount indicates the number of decode failures caused by unknown tags.
	SemanticErrCount atomic.Uint64
}

func (m *DecodeMetrics) incFileCount() {
	if m != nil {
		m.FileCount.Add(1)
	}
}

func (m *DecodeMetrics) incMessageCount(size int) {
	if m != nil {
		m.MessageCount.Add(1)
		m.ByteCount.Add(uint64(size)) //nolint:gosec
	}
}

func (m *DecodeMetrics) incEncodeCount() {
	if m != nil {
		m.EncodeCount.Add(1)
	}
}

func (m *DecodeMetrics) incErrCount(err error) {
	if m == nil {
		return
	}

	switch sml.KindOf(err) {
	case sml.NumericError:
		m.NumericErrCount.Add(1)
	case sml.SemanticError:
		m.SemanticErrCount.Add(1)
	default:
		m.StructuralErrCount.Add(1)
	}
}

// ErrCount returns the total number of decode failures.
func (m *DecodeMetrics) ErrCount() uint64 {
	if m == nil {
		return 0
	}

	return m.StructuralErrCount.Load() + m.NumericErrCount.Load() + m.SemanticErrCount.Load()
}
