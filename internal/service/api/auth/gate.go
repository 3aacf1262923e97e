// Package auth 알림 엔드포인트 앞단의 Bearer 토큰 인증 게이트를 제공합니다.
package auth

import (
	"crypto/subtle"
	"strings"

	"github.com/darkkaiser/notify-relay/internal/config"
)

const bearerPrefix = "Bearer "

// 인증 실패 사유. 401 응답 본문에 그대로 사용됩니다.
const (
	MsgNotConfigured = "Authentication not configured"
	MsgMissingHeader = "Missing Authorization header"
	MsgInvalidToken  = "Invalid authentication token"
)

// Result 인증 검사 결과입니다.
type Result struct {
	Valid   bool
	Message string
}

// Gate 설정된 토큰과 Authorization 헤더를 비교합니다.
//
// 활성화 플래그가 정확히 "true"일 때만 동작하며, 비활성 상태에서는 모든 요청을 통과시킵니다.
// 활성 상태에서 서버 측 토큰이 비어 있으면 모든 요청을 거부합니다.
type Gate struct {
	enabled bool
	token   string
}

// NewGate 인증 설정으로 Gate를 생성합니다.
func NewGate(cfg config.AuthConfig) *Gate {
	return &Gate{
		enabled: cfg.IsEnabled(),
		token:   cfg.Token,
	}
}

// Enabled 인증 검사가 활성화되어 있는지 반환합니다.
func (g *Gate) Enabled() bool {
	return g.enabled
}

// Check Authorization 헤더 값을 검사합니다. "Bearer <token>"과 "<token>" 형식을 모두 허용합니다.
func (g *Gate) Check(authorization string) Result {
	if !g.enabled {
		return Result{Valid: true}
	}
	if g.token == "" {
		return Result{Message: MsgNotConfigured}
	}
	if authorization == "" {
		return Result{Message: MsgMissingHeader}
	}

	token := strings.TrimPrefix(authorization, bearerPrefix)
	if subtle.ConstantTimeCompare([]byte(token), []byte(g.token)) != 1 {
		return Result{Message: MsgInvalidToken}
	}

	return Result{Valid: true}
}
