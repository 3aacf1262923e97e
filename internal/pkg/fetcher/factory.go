package fetcher

import (
	"time"

	applog "github.com/darkkaiser/notify-relay/pkg/log"
)

// Config 기본 Fetcher 체인 구성 옵션입니다.
type Config struct {
	Timeout  time.Duration
	MaxBytes int64

	DisableLogging bool
	Logger         applog.FieldLogger
}

// New 설정에 따라 Fetcher 체인을 조립합니다.
func New(cfg Config) Fetcher {
	var f Fetcher = NewHTTPFetcher(cfg.Timeout)
	if !cfg.DisableLogging {
		f = NewLoggingFetcher(f, cfg.Logger)
	}
	f = NewStatusCodeFetcher(f)
	f = NewMaxBytesFetcher(f, cfg.MaxBytes)

	return f
}
