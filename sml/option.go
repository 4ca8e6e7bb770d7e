package sml

// Option configures a Buffer.
type Option interface {
	apply(*Buffer)
}

type optFunc struct {
	name      string
	applyFunc func(*Buffer)
}

func (o *optFunc) apply(buf *Buffer) { o.applyFunc(buf) }

func newOptFunc(name string, f func(*Buffer)) *optFunc {
	return &optFunc{name: name, applyFunc: f}
}

// WithMaxDepth sets the maximum nesting depth accepted when parsing parameter trees.
// A depth below 1 selects DefaultMaxDepth.
func WithMaxDepth(depth int) Option {
	return newOptFunc("WithMaxDepth", func(buf *Buffer) {
		if depth < 1 {
			depth = DefaultMaxDepth
		}
		buf.maxDepth = depth
	})
}

// WithoutDZGWorkaround disables the correction of power readings sent by DZG DVS74
// meters with an affected serial number. See ParseList for details.
func WithoutDZGWorkaround() Option {
	return newOptFunc("WithoutDZGWorkaround", func(buf *Buffer) {
		buf.dzgWorkaround = false
	})
}
