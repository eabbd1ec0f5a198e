package avro

import "sync"

// DefaultEncodeBufferSize is the guessed initial buffer size for a
// top-level Encode call, per §4.7. Most encoded values are much
// smaller than this; the resize-and-retry path (§4.1) handles the
// rest without needing a larger guess.
const DefaultEncodeBufferSize = 1024

// scratchPool reuses the initial guessed buffer across Encode calls,
// generalizing the donor codec's bufpool.go sync.Pool idea from
// streaming byte chunks to the Tap's single encode-time buffer. Only
// the first-guess buffer is pooled; the exactly-sized buffer used on
// the overflow-retry path is allocated directly, since its size is
// call-specific and pooling would not help.
var scratchPool = sync.Pool{
	New: func() any {
		b := make([]byte, DefaultEncodeBufferSize)
		return &b
	},
}

// getScratch returns a buffer of at least size bytes. Buffers sized
// exactly DefaultEncodeBufferSize come from the pool; anything larger
// (an explicit Size option) is allocated directly since pooling
// odd-sized buffers would just fragment the pool.
func getScratch(size int) (buf []byte, pooled bool) {
	if size == DefaultEncodeBufferSize {
		p := scratchPool.Get().(*[]byte)
		return *p, true
	}
	return make([]byte, size), false
}

func putScratch(buf []byte) {
	if cap(buf) != DefaultEncodeBufferSize {
		return
	}
	b := buf[:DefaultEncodeBufferSize]
	scratchPool.Put(&b)
}
