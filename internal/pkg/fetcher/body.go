package fetcher

import (
	"io"
	"sync"
)

// maxDrainBytes 커넥션 재사용을 위해 버릴 최대 바이트 수. 이보다 크면 커넥션을 포기하고 닫는다.
const maxDrainBytes = 64 * 1024

var drainBufPool = sync.Pool{
	New: func() any {
		b := make([]byte, 32*1024)
		return &b
	},
}

func drainAndCloseBody(body io.ReadCloser) {
	if body == nil {
		return
	}
	defer body.Close()

	bufPtr := drainBufPool.Get().(*[]byte)
	defer drainBufPool.Put(bufPtr)

	_, _ = io.CopyBuffer(io.Discard, io.LimitReader(body, maxDrainBytes), *bufPtr)
}
