package message

import (
	"github.com/arloliu/go-sml/logger"
	"github.com/arloliu/go-sml/sml"
)

// config holds the settings of a decode or encode call.
type config struct {
	// logger receives warnings about recoverable conditions such as a truncated file.
	// Defaults to the package default logger.
	logger logger.Logger

	// strict makes DecodeFile return the error of a message that fails to parse.
	// When false, the error is logged and the messages parsed so far are returned.
	// Defaults to true.
	strict bool

	// computeChecksum makes the encoder fill in the checksum of every message.
	// Defaults to false, which writes the stored checksum verbatim.
	computeChecksum bool

	// idGen creates transaction ids for New.
	// Defaults to UUIDGenerator.
	idGen IDGenerator

	// metrics counts decoded and encoded messages. It may be nil.
	metrics *DecodeMetrics

	// bufOpts are passed to every sml.Buffer created by the call.
	bufOpts []sml.Option
}

func newConfig(opts []Option) (*config, error) {
	cfg := &config{
		logger: logger.GetLogger(),
		strict: true,
		idGen:  UUIDGenerator{},
	}

	for _, opt := range opts {
		if opt == nil {
			continue
		}
		if err := opt.apply(cfg); err != nil {
			return cfg, err
		}
	}

	return cfg, nil
}

// Option represents a functional option for decoding and encoding messages.
type Option interface {
	apply(*config) error
}

type optFunc struct {
	name      string
	applyFunc func(*config) error
}

func (o *optFunc) apply(cfg *config) error { return o.applyFunc(cfg) }

func newOptFunc(name string, f func(*config) error) *optFunc {
	return &optFunc{
		name:      name,
		applyFunc: f,
	}
}

// WithLogger sets the logger used to report recoverable conditions.
// An error is returned if l is nil.
func WithLogger(l logger.Logger) Option {
	return newOptFunc("WithLogger", func(cfg *config) error {
		if l == nil {
			return ErrNilLogger
		}
		cfg.logger = l

		return nil
	})
}

// WithStrict sets whether DecodeFile fails on the first message that does not parse.
//
// When val is false, the failure is logged as a warning and DecodeFile returns the
// messages parsed before it without error.
//
// Defaults to true.
func WithStrict(val bool) Option {
	return newOptFunc("WithStrict", func(cfg *config) error {
		cfg.strict = val
		return nil
	})
}

// WithComputedChecksum makes the encoder compute the checksum of every message with
// Checksum and store it in the message, instead of writing the stored value.
func WithComputedChecksum() Option {
	return newOptFunc("WithComputedChecksum", func(cfg *config) error {
		cfg.computeChecksum = true
		return nil
	})
}

// WithIDGenerator sets the generator of transaction ids used by New.
// An error is returned if gen is nil.
func WithIDGenerator(gen IDGenerator) Option {
	return newOptFunc("WithIDGenerator", func(cfg *config) error {
		if gen == nil {
			return ErrNilIDGenerator
		}
		cfg.idGen = gen

		return nil
	})
}

// WithMetrics sets the metrics updated by decode and encode calls.
func WithMetrics(m *DecodeMetrics) Option {
	return newOptFunc("WithMetrics", func(cfg *config) error {
		cfg.metrics = m
		return nil
	})
}

// WithBufferOptions sets options for the sml.Buffer used by decode calls, such as
// sml.WithMaxDepth.
func WithBufferOptions(opts ...sml.Option) Option {
	return newOptFunc("WithBufferOptions", func(cfg *config) error {
		cfg.bufOpts = append(cfg.bufOpts, opts...)
		return nil
	})
}
