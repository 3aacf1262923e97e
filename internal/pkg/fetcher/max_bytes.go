package fetcher

import (
	"errors"
	"io"
	"net/http"

	apperrors "github.com/darkkaiser/notify-relay/internal/pkg/errors"
)

// defaultMaxBytes 응답 본문의 기본 크기 제한 (JMAP 세션 문서와 메서드 응답에 충분한 크기)
const defaultMaxBytes = 2 * 1024 * 1024

type maxBytesReader struct {
	rc    io.ReadCloser
	limit int64
}

func (r *maxBytesReader) Read(p []byte) (int, error) {
	n, err := r.rc.Read(p)
	if err != nil {
		var maxBytesErr *http.MaxBytesError
		if errors.As(err, &maxBytesErr) {
			return n, apperrors.Newf(apperrors.ExecutionFailed, "응답 본문 크기가 제한(%d bytes)을 초과하였습니다", r.limit)
		}
	}
	return n, err
}

func (r *maxBytesReader) Close() error {
	return r.rc.Close()
}

// MaxBytesFetcher 응답 본문의 크기를 제한합니다.
// Content-Length로 먼저 차단하고, 헤더가 없거나 조작된 경우에도 읽기 시점에 제한합니다.
type MaxBytesFetcher struct {
	delegate Fetcher
	limit    int64
}

// NewMaxBytesFetcher 새로운 MaxBytesFetcher를 생성합니다. limit이 0 이하이면 기본값을 사용합니다.
func NewMaxBytesFetcher(delegate Fetcher, limit int64) *MaxBytesFetcher {
	if limit <= 0 {
		limit = defaultMaxBytes
	}
	return &MaxBytesFetcher{delegate: delegate, limit: limit}
}

func (f *MaxBytesFetcher) Do(req *http.Request) (*http.Response, error) {
	resp, err := f.delegate.Do(req)
	if err != nil {
		if resp != nil {
			drainAndCloseBody(resp.Body)
		}
		return nil, err
	}

	if resp.ContentLength > f.limit {
		drainAndCloseBody(resp.Body)
		return nil, apperrors.Newf(apperrors.ExecutionFailed, "응답 본문 크기(%d bytes)가 제한(%d bytes)을 초과하였습니다", resp.ContentLength, f.limit)
	}

	resp.Body = &maxBytesReader{
		rc:    http.MaxBytesReader(nil, resp.Body, f.limit),
		limit: f.limit,
	}

	return resp, nil
}
