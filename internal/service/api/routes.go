package api

import (
	"net/http"

	"github.com/darkkaiser/notify-relay/internal/metrics"
	"github.com/darkkaiser/notify-relay/internal/service/api/auth"
	"github.com/darkkaiser/notify-relay/internal/service/api/handler"
	"github.com/darkkaiser/notify-relay/internal/service/api/handler/system"
	appmiddleware "github.com/darkkaiser/notify-relay/internal/service/api/middleware"
	"github.com/labstack/echo/v4"
	echoSwagger "github.com/swaggo/echo-swagger"
)

// RegisterRoutes 시스템 엔드포인트와 API 문서를 등록합니다. 모두 인증 없이 호출할 수 있습니다.
func RegisterRoutes(e *echo.Echo, h *system.Handler) {
	e.GET("/health", h.HealthCheckHandler)
	e.GET("/version", h.VersionHandler)
	e.GET("/metrics", echo.WrapHandler(metrics.Handler()))

	e.GET("/swagger/*", echoSwagger.EchoWrapHandler(
		echoSwagger.URL("/swagger/doc.json"),
		echoSwagger.DeepLinking(true),
		echoSwagger.DocExpansion("list"),
	))
}

// RegisterNotificationRoutes 나머지 모든 경로를 알림 발송 엔드포인트로 등록합니다.
//
// 메서드 검사가 인증보다 먼저 이루어지므로 POST가 아닌 요청은 인증 여부와 관계없이 405를 받습니다.
// OPTIONS 요청은 CORS 미들웨어에서 이미 응답됩니다.
func RegisterNotificationRoutes(e *echo.Echo, h *handler.NotificationHandler, gate *auth.Gate) {
	e.Any("/*", h.SendNotificationHandler,
		appmiddleware.AllowMethod(http.MethodPost),
		appmiddleware.RequireAuthentication(gate),
	)
}
