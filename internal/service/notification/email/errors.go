package email

import (
	"fmt"

	apperrors "github.com/darkkaiser/notify-relay/internal/pkg/errors"
	"github.com/darkkaiser/notify-relay/internal/pkg/fetcher"
)

func newDispatchError(message string) error {
	return apperrors.New(apperrors.ExecutionFailed, message)
}

func newDispatchErrorf(format string, args ...any) error {
	return apperrors.Newf(apperrors.ExecutionFailed, format, args...)
}

// newRequestError 외부 API 호출 실패를 발송 에러로 변환합니다.
//
// 허용되지 않은 상태 코드이면 "<prefix>: <status>" 형태의 메시지를,
// 그 외 전송 계층 에러이면 prefix로 원인 에러를 감싼 에러를 반환합니다.
func newRequestError(err error, prefix string) error {
	var statusErr *fetcher.HTTPStatusError
	if apperrors.As(err, &statusErr) {
		return newDispatchErrorf("%s: %d", prefix, statusErr.StatusCode)
	}
	return apperrors.Wrap(err, apperrors.ExecutionFailed, prefix)
}

// IsDispatchError 메일 발송 단계에서 발생한 에러인지 확인합니다.
func IsDispatchError(err error) bool {
	return apperrors.Is(err, apperrors.ExecutionFailed)
}

func jmapStepPrefix(step string) string {
	return fmt.Sprintf("Fastmail %s error", step)
}
