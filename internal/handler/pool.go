package handler

import (
	"bytes"
	"sync"
)

// Board views of a 100x100 farm run to a few hundred KB; buffers that grew
// past this are dropped instead of pinned in the pool.
const maxPooledBufferSize = 64 << 10

var encodeBuffers = sync.Pool{
	New: func() any { return new(bytes.Buffer) },
}

func getBuffer() *bytes.Buffer {
	return encodeBuffers.Get().(*bytes.Buffer)
}

func putBuffer(buf *bytes.Buffer) {
	if buf.Cap() > maxPooledBufferSize {
		return
	}
	buf.Reset()
	encodeBuffers.Put(buf)
}
