package fetcher

import (
	"net/http"
	"time"

	"github.com/darkkaiser/notify-relay/internal/pkg/version"
)

// HTTPFetcher http.Client로 실제 요청을 수행합니다.
type HTTPFetcher struct {
	client    *http.Client
	userAgent string
}

// NewHTTPFetcher 지정된 타임아웃을 사용하는 HTTPFetcher를 생성합니다.
// timeout이 0 이하이면 타임아웃을 적용하지 않습니다. (요청 Context의 데드라인만 적용)
func NewHTTPFetcher(timeout time.Duration) *HTTPFetcher {
	client := &http.Client{}
	if timeout > 0 {
		client.Timeout = timeout
	}

	return &HTTPFetcher{
		client:    client,
		userAgent: version.UserAgent(),
	}
}

func (h *HTTPFetcher) Do(req *http.Request) (*http.Response, error) {
	if req.Header.Get("User-Agent") == "" {
		req.Header.Set("User-Agent", h.userAgent)
	}
	return h.client.Do(req)
}
