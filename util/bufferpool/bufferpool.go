package bufferpool

import (
	"bytes"
	"sync"
)

// buffers larger than this are dropped instead of pooled
const maxPooledCap = 64 << 10

var pool = sync.Pool{
	New: func() any { return &Buffer{Buffer: new(bytes.Buffer)} },
}

// Buffer is a pooled bytes.Buffer, return it with Free once done.
type Buffer struct {
	*bytes.Buffer
}

func GetBuffer() *Buffer {
	b := pool.Get().(*Buffer)
	b.Reset()
	return b
}

func (b *Buffer) Free() {
	if b.Cap() > maxPooledCap {
		return
	}
	pool.Put(b)
}
