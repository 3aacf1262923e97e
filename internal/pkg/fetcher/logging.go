package fetcher

import (
	"net/http"
	"time"

	applog "github.com/darkkaiser/notify-relay/pkg/log"
)

// LoggingFetcher 요청 메서드, URL, 상태 코드, 소요 시간을 기록합니다.
// 실패는 WARN, 성공은 DEBUG 레벨로 남깁니다. 에러 처리 여부는 상위 계층이 결정합니다.
type LoggingFetcher struct {
	delegate Fetcher
	logger   applog.FieldLogger
}

// NewLoggingFetcher 새로운 LoggingFetcher를 생성합니다. logger가 nil이면 전역 로거를 사용합니다.
func NewLoggingFetcher(delegate Fetcher, logger applog.FieldLogger) *LoggingFetcher {
	return &LoggingFetcher{
		delegate: delegate,
		logger:   applog.Component(logger, component),
	}
}

func (f *LoggingFetcher) Do(req *http.Request) (*http.Response, error) {
	start := time.Now()

	resp, err := f.delegate.Do(req)

	fields := applog.Fields{
		"method":   req.Method,
		"url":      redactURL(req.URL),
		"duration": time.Since(start).String(),
	}
	if resp != nil {
		fields["status_code"] = resp.StatusCode
	}

	if err != nil {
		fields["error"] = err.Error()
		f.logger.WithFields(fields).Warn("외부 API 요청 실패")
		return resp, err
	}

	f.logger.WithFields(fields).Debug("외부 API 요청 완료")

	return resp, nil
}
