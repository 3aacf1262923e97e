// Package middleware 알림 릴레이 HTTP 서버에서 사용하는 Echo 미들웨어를 제공합니다.
//
// 전역 체인(PanicRecovery, HTTPLogger, CORS)과 알림 라우트 전용 미들웨어
// (AllowMethod, RequireAuthentication)로 나뉩니다.
package middleware
