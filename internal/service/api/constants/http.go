package constants

import "time"

// CORS 응답 헤더 값. 모든 응답에 동일하게 설정됩니다.
const (
	CORSAllowOrigin  = "*"
	CORSAllowMethods = "POST, OPTIONS"
	CORSAllowHeaders = "Content-Type, Authorization"
)

// 응답 본문 문구
const (
	ErrorTypeBadRequest     = "Bad request"
	ErrorTypeInternalServer = "Internal server error"

	MsgMethodNotAllowed = "Method not allowed"
)

// HTTP 서버 기본값
const (
	DefaultReadHeaderTimeout = 10 * time.Second
	DefaultIdleTimeout       = 120 * time.Second

	// ShutdownTimeout Graceful Shutdown 시 최대 대기 시간
	ShutdownTimeout = 5 * time.Second
)
