package notification

import (
	apperrors "github.com/darkkaiser/notify-relay/internal/pkg/errors"
)

// NewValidationError 요청 본문 검증 실패 에러를 생성합니다. HTTP 계층에서 400으로 변환됩니다.
func NewValidationError(message string) error {
	return apperrors.New(apperrors.InvalidInput, message)
}

// IsValidationError 요청 본문 검증 실패 에러인지 확인합니다.
func IsValidationError(err error) bool {
	return apperrors.Is(err, apperrors.InvalidInput)
}
