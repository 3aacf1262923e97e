package api

import (
	"github.com/darkkaiser/notify-relay/internal/service/api/constants"
	"github.com/darkkaiser/notify-relay/internal/service/api/httputil"
	appmiddleware "github.com/darkkaiser/notify-relay/internal/service/api/middleware"
	applog "github.com/darkkaiser/notify-relay/pkg/log"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
)

// HTTPServerConfig HTTP 서버 생성에 필요한 설정을 정의합니다.
type HTTPServerConfig struct {
	// Debug Echo 프레임워크의 디버그 모드 활성화 여부
	Debug bool

	// BodyLimit 요청 본문의 최대 크기 (예: "128K"). 초과 시 413 응답
	BodyLimit string

	// EnableHSTS TLS 서버일 때 Strict-Transport-Security 헤더를 설정합니다.
	EnableHSTS bool
}

// NewHTTPServer 미들웨어 체인을 포함한 Echo 인스턴스를 생성합니다.
//
// 미들웨어는 다음 순서로 적용됩니다:
//
//  1. PanicRecovery - 다른 미들웨어에서 발생한 panic까지 복구
//  2. RequestID - X-Request-ID 부여 (UUID)
//  3. ServerHeader - Server 헤더 제거
//  4. HTTPLogger - 구조화된 요청 로그, 민감 쿼리 파라미터 마스킹
//  5. CORS - 모든 응답에 CORS 헤더, OPTIONS는 204로 즉시 응답
//  6. BodyLimit - 본문 크기 제한 (413 응답에도 CORS 헤더가 포함되도록 CORS 다음에 위치)
//  7. Secure - X-Content-Type-Options 등 보안 헤더
//
// 라우트 설정은 포함되지 않으며, 반환된 Echo 인스턴스에 별도로 설정해야 합니다.
func NewHTTPServer(cfg HTTPServerConfig) *echo.Echo {
	e := echo.New()

	e.Debug = cfg.Debug
	e.HideBanner = true
	e.HidePort = true

	e.Server.ReadHeaderTimeout = constants.DefaultReadHeaderTimeout
	e.Server.IdleTimeout = constants.DefaultIdleTimeout

	e.Logger = appmiddleware.NewEchoLogger(applog.StandardLogger())

	e.HTTPErrorHandler = httputil.ErrorHandler

	e.Use(appmiddleware.PanicRecovery())
	e.Use(middleware.RequestIDWithConfig(middleware.RequestIDConfig{
		Generator: uuid.NewString,
	}))
	e.Use(func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			c.Response().Header().Set(echo.HeaderServer, "")
			return next(c)
		}
	})
	e.Use(appmiddleware.HTTPLogger())
	e.Use(appmiddleware.CORS())
	e.Use(middleware.BodyLimit(cfg.BodyLimit))

	secure := middleware.DefaultSecureConfig
	if cfg.EnableHSTS {
		secure.HSTSMaxAge = 31536000
	}
	e.Use(middleware.SecureWithConfig(secure))

	return e
}
