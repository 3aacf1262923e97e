package fetcher

import (
	"net/url"
	"strings"
)

var sensitiveQueryKeys = []string{"token", "key", "secret", "password", "auth", "signature"}

// redactURL URL의 사용자 정보와 민감한 쿼리 파라미터 값을 마스킹합니다.
func redactURL(u *url.URL) string {
	if u == nil {
		return ""
	}

	redacted := *u
	if redacted.User != nil {
		redacted.User = url.User("xxxxx")
	}

	if redacted.RawQuery != "" {
		query := redacted.Query()
		for key := range query {
			if isSensitiveKey(key) {
				query.Set(key, "xxxxx")
			}
		}
		redacted.RawQuery = query.Encode()
	}

	return redacted.String()
}

func isSensitiveKey(key string) bool {
	lower := strings.ToLower(key)
	for _, s := range sensitiveQueryKeys {
		if strings.Contains(lower, s) {
			return true
		}
	}
	return false
}
