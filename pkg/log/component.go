package log

import "github.com/sirupsen/logrus"

// WithComponent component 필드를 포함한 로그 Entry를 반환합니다.
func WithComponent(component string) *Entry {
	return logrus.WithField("component", component)
}

// WithComponentAndFields component 필드와 추가 필드를 포함한 로그 Entry를 반환합니다.
func WithComponentAndFields(component string, fields Fields) *Entry {
	merged := make(Fields, len(fields)+1)
	for k, v := range fields {
		merged[k] = v
	}
	merged["component"] = component
	return logrus.WithFields(merged)
}

// Component 주입받은 로거에 component 필드를 덧붙입니다. logger가 nil이면 전역 로거를 사용합니다.
func Component(logger FieldLogger, component string) FieldLogger {
	if logger == nil {
		return WithComponent(component)
	}
	return logger.WithField("component", component)
}
