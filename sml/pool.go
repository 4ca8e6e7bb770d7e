package sml

import "sync"

var bufferPool = sync.Pool{New: func() any { return &Buffer{} }}

var usePool = true

func getBuffer() *Buffer {
	if usePool {
		buf, _ := bufferPool.Get().(*Buffer)
		if buf == nil {
			return &Buffer{}
		}
		return buf
	}

	return &Buffer{}
}

func putBuffer(buf *Buffer) {
	if usePool {
		bufferPool.Put(buf)
	}
}

// UsePool sets whether buffers are recycled through a sync.Pool.
// It is enabled by default.
func UsePool(val bool) {
	usePool = val
}
