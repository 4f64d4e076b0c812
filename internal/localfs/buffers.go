package localfs

import (
	"sync"

	"github.com/openneighborhood/neighborhood/internal/constants"
)

// chunkPool holds TransferChunkSize copy buffers so directory copies reuse
// one buffer per file instead of allocating a megabyte each time.
var chunkPool = &sync.Pool{
	New: func() interface{} {
		buf := make([]byte, constants.TransferChunkSize)
		return &buf
	},
}

// getBuffer returns a buffer of size bytes, pooled when size is the
// transfer chunk size.
func getBuffer(size int) *[]byte {
	if size == constants.TransferChunkSize {
		return chunkPool.Get().(*[]byte)
	}
	buf := make([]byte, size)
	return &buf
}

// putBuffer returns buf to the pool. Buffers of other sizes are dropped.
func putBuffer(buf *[]byte) {
	if buf != nil && len(*buf) == constants.TransferChunkSize {
		clear(*buf)
		chunkPool.Put(buf)
	}
}
