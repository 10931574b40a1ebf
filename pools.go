package protodef

import "sync"

var serialBytesPool = &sync.Pool{
	New: func() any {
		return make([]byte, 0, 4096)
	},
}

func releaseSerialBytes(b []byte) {
	if cap(b) <= 65536 {
		serialBytesPool.Put(b[:0])
	}
}
