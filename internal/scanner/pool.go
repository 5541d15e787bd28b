package scanner

import "sync"

// escapeBufPool holds scratch []byte buffers used to collapse doubled
// quotes when a quoted field can't be returned as a zero-copy slice
// into the chunk buffer. Grounded on the teacher's bufferPool
// (internal/fastparser/pool.go in the retrieved shape-csv sources).
var escapeBufPool = sync.Pool{
	New: func() any {
		b := make([]byte, 0, 64)
		return &b
	},
}

// GetScratch returns a zero-length []byte with reusable capacity.
func GetScratch() []byte {
	p := escapeBufPool.Get().(*[]byte)
	return (*p)[:0]
}

// PutScratch returns buf to the pool. Buffers that grew unusually
// large are dropped instead of pooled, so one wide row doesn't pin a
// large allocation for the lifetime of the process.
func PutScratch(buf []byte) {
	const maxCapacity = 4096
	if cap(buf) > maxCapacity {
		return
	}
	buf = buf[:0]
	escapeBufPool.Put(&buf)
}
