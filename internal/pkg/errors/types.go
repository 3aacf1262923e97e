package errors

import "strconv"

// ErrorType 에러의 종류를 나타내는 타입입니다.
//
// HTTP 계층은 이 값을 기준으로 응답 상태 코드를 결정합니다.
type ErrorType int

const (
	// Unknown 분류되지 않은 에러
	Unknown ErrorType = iota

	// Internal 내부 로직 오류
	Internal

	// System 시스템 또는 인프라 오류 (디스크, 네트워크 등)
	System

	// Unauthorized 인증 실패 (토큰 누락, 토큰 불일치 등)
	Unauthorized

	// Forbidden 권한 없음
	Forbidden

	// InvalidInput 잘못된 요청 본문 (유효성 검사 실패)
	InvalidInput

	// Conflict 리소스 충돌
	Conflict

	// NotFound 리소스를 찾을 수 없음
	NotFound

	// ExecutionFailed 외부 메일 제공자 호출 등 작업 수행 실패
	ExecutionFailed

	// ParsingFailed 데이터 파싱 또는 형식 변환 실패
	ParsingFailed

	// Timeout 작업 시간 초과
	Timeout

	// Unavailable 서비스 일시적 사용 불가
	Unavailable
)

var errorTypeNames = [...]string{
	Unknown:         "Unknown",
	Internal:        "Internal",
	System:          "System",
	Unauthorized:    "Unauthorized",
	Forbidden:       "Forbidden",
	InvalidInput:    "InvalidInput",
	Conflict:        "Conflict",
	NotFound:        "NotFound",
	ExecutionFailed: "ExecutionFailed",
	ParsingFailed:   "ParsingFailed",
	Timeout:         "Timeout",
	Unavailable:     "Unavailable",
}

// String ErrorType의 이름을 반환합니다.
func (t ErrorType) String() string {
	if t < 0 || int(t) >= len(errorTypeNames) {
		return "ErrorType(" + strconv.Itoa(int(t)) + ")"
	}
	return errorTypeNames[t]
}
