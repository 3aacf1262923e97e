package fetcher

import (
	"fmt"
	"io"
	"net/http"
	"strings"
	"unicode/utf8"
)

// maxBodySnippetBytes 상태 코드 에러에 포함할 응답 본문의 최대 크기
const maxBodySnippetBytes = 4 * 1024

// HTTPStatusError 허용되지 않은 상태 코드의 응답을 나타냅니다.
type HTTPStatusError struct {
	StatusCode  int
	Status      string
	URL         string
	BodySnippet string
}

func (e *HTTPStatusError) Error() string {
	msg := fmt.Sprintf("HTTP %d (%s)", e.StatusCode, e.Status)
	if e.URL != "" {
		msg += " URL: " + e.URL
	}
	if e.BodySnippet != "" {
		msg += ", Body: " + e.BodySnippet
	}
	return msg
}

// StatusCodeFetcher 2xx 이외의 응답을 HTTPStatusError로 변환합니다.
// 에러를 반환할 때는 응답 본문의 앞부분을 BodySnippet에 담고 Body를 정리합니다.
type StatusCodeFetcher struct {
	delegate Fetcher
}

var _ Fetcher = (*StatusCodeFetcher)(nil)

// NewStatusCodeFetcher 새로운 StatusCodeFetcher를 생성합니다.
func NewStatusCodeFetcher(delegate Fetcher) *StatusCodeFetcher {
	return &StatusCodeFetcher{delegate: delegate}
}

func (f *StatusCodeFetcher) Do(req *http.Request) (*http.Response, error) {
	resp, err := f.delegate.Do(req)
	if err != nil {
		if resp != nil {
			drainAndCloseBody(resp.Body)
		}
		return nil, err
	}

	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		return resp, nil
	}

	statusErr := &HTTPStatusError{
		StatusCode:  resp.StatusCode,
		Status:      strings.TrimSpace(strings.TrimPrefix(resp.Status, fmt.Sprint(resp.StatusCode))),
		URL:         redactURL(req.URL),
		BodySnippet: readSnippet(resp.Body),
	}
	if statusErr.Status == "" {
		statusErr.Status = http.StatusText(resp.StatusCode)
	}
	drainAndCloseBody(resp.Body)

	return nil, statusErr
}

func readSnippet(body io.Reader) string {
	if body == nil {
		return ""
	}

	data, _ := io.ReadAll(io.LimitReader(body, maxBodySnippetBytes))

	// 잘린 멀티바이트 문자를 제거한다.
	for len(data) > 0 && !utf8.Valid(data) {
		data = data[:len(data)-1]
	}
	return strings.TrimSpace(string(data))
}
