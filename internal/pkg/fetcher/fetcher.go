// Package fetcher 외부 메일 제공자 API 호출에 사용하는 HTTP 클라이언트 데코레이터를 제공합니다.
//
// 기본 구성은 New를 통해 다음 순서로 조립됩니다.
//
//	MaxBytesFetcher → StatusCodeFetcher → LoggingFetcher → HTTPFetcher
package fetcher

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"

	apperrors "github.com/darkkaiser/notify-relay/internal/pkg/errors"
)

const component = "fetcher"

// Fetcher HTTP 요청을 수행하는 인터페이스입니다.
//
// 성공 시 반환된 응답의 Body는 호출자가 닫아야 합니다.
// 에러가 반환되면 응답 Body는 이미 정리된 상태입니다.
type Fetcher interface {
	Do(req *http.Request) (*http.Response, error)
}

// FetcherFunc 함수를 Fetcher로 사용할 수 있게 하는 어댑터입니다.
type FetcherFunc func(req *http.Request) (*http.Response, error)

func (fn FetcherFunc) Do(req *http.Request) (*http.Response, error) {
	return fn(req)
}

// NewJSONRequest payload를 JSON으로 직렬화한 요청을 생성합니다.
func NewJSONRequest(ctx context.Context, method, url string, payload any) (*http.Request, error) {
	var body io.Reader
	if payload != nil {
		data, err := json.Marshal(payload)
		if err != nil {
			return nil, apperrors.Wrap(err, apperrors.Internal, "요청 본문 직렬화에 실패했습니다")
		}
		body = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, url, body)
	if err != nil {
		return nil, apperrors.Wrap(err, apperrors.InvalidInput, "HTTP 요청 생성에 실패했습니다")
	}
	req.Header.Set("Accept", "application/json")
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	return req, nil
}

// DoRead 요청을 수행하고 응답 본문 전체를 읽어 반환합니다.
func DoRead(f Fetcher, req *http.Request) ([]byte, error) {
	resp, err := f.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, apperrors.Wrap(err, apperrors.System, "응답 본문을 읽는 중 오류가 발생했습니다")
	}
	return data, nil
}
