package log

// silentFormatter 포맷팅을 하지 않는 포맷터입니다.
// 전역 출력은 io.Discard로 버려지고 실제 포맷팅은 hook에서 수행합니다.
type silentFormatter struct{}

func (f *silentFormatter) Format(_ *Entry) ([]byte, error) {
	return nil, nil
}
