package log

import (
	"io"

	"github.com/sirupsen/logrus"
)

// Level logrus.Level의 별칭입니다.
type Level = logrus.Level

const (
	PanicLevel Level = logrus.PanicLevel
	FatalLevel Level = logrus.FatalLevel
	ErrorLevel Level = logrus.ErrorLevel
	WarnLevel  Level = logrus.WarnLevel
	InfoLevel  Level = logrus.InfoLevel
	DebugLevel Level = logrus.DebugLevel
	TraceLevel Level = logrus.TraceLevel
)

// AllLevels logrus.AllLevels의 별칭입니다.
var AllLevels = logrus.AllLevels

type (
	Fields        = logrus.Fields
	Entry         = logrus.Entry
	Hook          = logrus.Hook
	Logger        = logrus.Logger
	Formatter     = logrus.Formatter
	TextFormatter = logrus.TextFormatter
	JSONFormatter = logrus.JSONFormatter
)

// FieldLogger 구조화된 필드를 지원하는 로거 인터페이스입니다.
//
// 도메인 컴포넌트(연락처 해석기, 메일 디스패처, 알림 오케스트레이터)는 전역 로거 대신
// 이 인터페이스를 주입받아 사용합니다. *Logger와 *Entry 모두 이를 만족합니다.
type FieldLogger = logrus.FieldLogger

// StandardLogger 전역 로거를 반환합니다.
func StandardLogger() *Logger {
	return logrus.StandardLogger()
}

// New 전역 설정과 독립된 새 로거를 생성합니다.
func New() *Logger {
	return logrus.New()
}

// SetLevel 전역 로거의 레벨을 변경합니다.
func SetLevel(level Level) {
	logrus.SetLevel(level)
}

// SetOutput 전역 로거의 출력 대상을 변경합니다.
func SetOutput(w io.Writer) {
	logrus.SetOutput(w)
}

// SetFormatter 전역 로거의 포맷터를 변경합니다.
func SetFormatter(f Formatter) {
	logrus.SetFormatter(f)
}

// ParseLevel 문자열을 로그 레벨로 변환합니다.
func ParseLevel(level string) (Level, error) {
	return logrus.ParseLevel(level)
}
