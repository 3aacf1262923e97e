package log

import (
	"fmt"
	"io"
	"os"
	"sync"
)

// hook 로그 레벨에 따라 엔트리를 여러 Writer로 분배합니다.
//
//   - console:  모든 레벨
//   - critical: ERROR 이상
//   - verbose:  DEBUG 이하 (verbose가 설정되어 있으면 main에는 기록하지 않음)
//   - main:     INFO 이상
type hook struct {
	mainWriter     io.Writer
	criticalWriter io.Writer
	verboseWriter  io.Writer
	consoleWriter  io.Writer

	formatter Formatter

	mu     sync.RWMutex
	closed bool
}

func (h *hook) Levels() []Level {
	return AllLevels
}

func (h *hook) Fire(entry *Entry) error {
	h.mu.RLock()
	defer h.mu.RUnlock()

	if h.closed {
		return nil
	}

	msg, err := h.formatter.Format(entry)
	if err != nil {
		return err
	}

	if h.consoleWriter != nil {
		if _, err := h.consoleWriter.Write(msg); err != nil {
			fmt.Fprintf(os.Stderr, "[LOG-SYSTEM-WARN] 콘솔 출력 실패: %v\n", err)
		}
	}

	var firstErr error
	write := func(w io.Writer, name string) {
		if w == nil {
			return
		}
		if _, err := w.Write(msg); err != nil {
			if firstErr == nil {
				firstErr = err
			}
			fmt.Fprintf(os.Stderr, "[LOG-SYSTEM-FAILURE] %s 로그 파일 쓰기 실패: %v\n", name, err)
		}
	}

	if entry.Level <= ErrorLevel {
		write(h.criticalWriter, "Critical")
	}

	if entry.Level >= DebugLevel {
		if h.verboseWriter != nil {
			write(h.verboseWriter, "Verbose")
			return firstErr
		}
	}

	write(h.mainWriter, "Main")

	return firstErr
}

// Close 이후의 모든 기록 요청을 무시하도록 hook을 닫습니다.
// 진행 중인 Fire 호출이 끝날 때까지 대기합니다.
func (h *hook) Close() {
	h.mu.Lock()
	defer h.mu.Unlock()

	h.closed = true
}
