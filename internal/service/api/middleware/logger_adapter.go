package middleware

import (
	"io"

	"github.com/darkkaiser/notify-relay/internal/service/api/constants"
	applog "github.com/darkkaiser/notify-relay/pkg/log"
	"github.com/labstack/echo/v4"
	"github.com/labstack/gommon/log"
)

// EchoLogger Echo의 log.Logger 인터페이스를 애플리케이션 로거 위에 구현합니다.
//
// Echo 내부에서 남기는 로그(서버 시작 실패 등)에는 component=api.echo 필드가 붙습니다.
// 레벨 조회와 변경은 기반 Logger에 그대로 반영됩니다.
type EchoLogger struct {
	entry *applog.Entry
}

var _ echo.Logger = EchoLogger{}

// NewEchoLogger logger를 기반으로 하는 EchoLogger를 생성합니다.
func NewEchoLogger(logger *applog.Logger) EchoLogger {
	return EchoLogger{entry: logger.WithField("component", constants.ComponentEcho)}
}

func (l EchoLogger) Output() io.Writer     { return l.entry.Logger.Out }
func (l EchoLogger) SetOutput(w io.Writer) { l.entry.Logger.SetOutput(w) }
func (l EchoLogger) Prefix() string        { return "" }
func (l EchoLogger) SetPrefix(string)      {}
func (l EchoLogger) SetHeader(string)      {}

// Level 대응하는 Echo 레벨이 없는 Trace, Fatal, Panic은 OFF로 보고합니다.
func (l EchoLogger) Level() log.Lvl {
	switch l.entry.Logger.GetLevel() {
	case applog.DebugLevel:
		return log.DEBUG
	case applog.InfoLevel:
		return log.INFO
	case applog.WarnLevel:
		return log.WARN
	case applog.ErrorLevel:
		return log.ERROR
	default:
		return log.OFF
	}
}

// SetLevel OFF는 애플리케이션 레벨을 바꾸지 않습니다.
func (l EchoLogger) SetLevel(lvl log.Lvl) {
	levels := map[log.Lvl]applog.Level{
		log.DEBUG: applog.DebugLevel,
		log.INFO:  applog.InfoLevel,
		log.WARN:  applog.WarnLevel,
		log.ERROR: applog.ErrorLevel,
	}
	if level, ok := levels[lvl]; ok {
		l.entry.Logger.SetLevel(level)
	}
}

func (l EchoLogger) withJSON(j log.JSON) *applog.Entry {
	return l.entry.WithFields(applog.Fields(j))
}

func (l EchoLogger) Print(i ...interface{})                    { l.entry.Print(i...) }
func (l EchoLogger) Printf(format string, args ...interface{}) { l.entry.Printf(format, args...) }
func (l EchoLogger) Printj(j log.JSON)                         { l.withJSON(j).Print() }

func (l EchoLogger) Debug(i ...interface{})                    { l.entry.Debug(i...) }
func (l EchoLogger) Debugf(format string, args ...interface{}) { l.entry.Debugf(format, args...) }
func (l EchoLogger) Debugj(j log.JSON)                         { l.withJSON(j).Debug() }

func (l EchoLogger) Info(i ...interface{})                    { l.entry.Info(i...) }
func (l EchoLogger) Infof(format string, args ...interface{}) { l.entry.Infof(format, args...) }
func (l EchoLogger) Infoj(j log.JSON)                         { l.withJSON(j).Info() }

func (l EchoLogger) Warn(i ...interface{})                    { l.entry.Warn(i...) }
func (l EchoLogger) Warnf(format string, args ...interface{}) { l.entry.Warnf(format, args...) }
func (l EchoLogger) Warnj(j log.JSON)                         { l.withJSON(j).Warn() }

func (l EchoLogger) Error(i ...interface{})                    { l.entry.Error(i...) }
func (l EchoLogger) Errorf(format string, args ...interface{}) { l.entry.Errorf(format, args...) }
func (l EchoLogger) Errorj(j log.JSON)                         { l.withJSON(j).Error() }

func (l EchoLogger) Fatal(i ...interface{})                    { l.entry.Fatal(i...) }
func (l EchoLogger) Fatalf(format string, args ...interface{}) { l.entry.Fatalf(format, args...) }
func (l EchoLogger) Fatalj(j log.JSON)                         { l.withJSON(j).Fatal() }

func (l EchoLogger) Panic(i ...interface{})                    { l.entry.Panic(i...) }
func (l EchoLogger) Panicf(format string, args ...interface{}) { l.entry.Panicf(format, args...) }
func (l EchoLogger) Panicj(j log.JSON)                         { l.withJSON(j).Panic() }
