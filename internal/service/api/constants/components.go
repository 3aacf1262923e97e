package constants

// 로그의 component 필드 값. "api." 접두사로 HTTP 계층에서 발생한 로그를 구분합니다.
const (
	ComponentService = "api.service"
	ComponentHandler = "api.handler"
	ComponentEcho    = "api.echo"

	ComponentMiddlewareAuthentication = "api.middleware.auth"
	ComponentMiddlewarePanicRecovery  = "api.middleware.panic_recovery"
	ComponentMiddlewareHTTPLogger     = "api.middleware.http_logger"

	ComponentErrorHandler = "api.error_handler"
)
