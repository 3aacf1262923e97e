// Package strutil 문자열 처리 유틸리티를 제공합니다.
package strutil

import "strings"

// MaskSensitiveData 토큰, API 키 등의 민감 정보를 로그에 남길 수 있는 형태로 마스킹합니다.
//
//	""              → ""
//	3자 이하        → "***"
//	12자 이하       → 앞 4자 + "***"
//	그 외           → 앞 4자 + "***" + 뒤 4자
func MaskSensitiveData(data string) string {
	if data == "" {
		return ""
	}
	if len(data) <= 3 {
		return "***"
	}
	if len(data) <= 12 {
		return data[:4] + "***"
	}
	return data[:4] + "***" + data[len(data)-4:]
}

// FirstNonBlank 공백이 아닌 첫 번째 값을 반환합니다. 모두 비어 있으면 빈 문자열을 반환합니다.
func FirstNonBlank(values ...string) string {
	for _, v := range values {
		if strings.TrimSpace(v) != "" {
			return v
		}
	}
	return ""
}

// Truncate 문자열을 최대 max 룬으로 자르고, 잘린 경우 "..."를 덧붙입니다.
func Truncate(s string, max int) string {
	if max <= 0 {
		return ""
	}

	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max]) + "..."
}
