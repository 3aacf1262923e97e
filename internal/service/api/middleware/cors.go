package middleware

import (
	"net/http"

	"github.com/darkkaiser/notify-relay/internal/service/api/constants"
	"github.com/labstack/echo/v4"
)

// CORS 모든 응답에 고정된 CORS 헤더를 설정하고, OPTIONS 요청에는 본문 없이 204로 응답합니다.
//
// OPTIONS 응답은 인증 검사보다 먼저 이루어지며, Origin 헤더의 유무와 관계없이 동일하게 동작합니다.
func CORS() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			h := c.Response().Header()
			h.Set(echo.HeaderAccessControlAllowOrigin, constants.CORSAllowOrigin)
			h.Set(echo.HeaderAccessControlAllowMethods, constants.CORSAllowMethods)
			h.Set(echo.HeaderAccessControlAllowHeaders, constants.CORSAllowHeaders)

			if c.Request().Method == http.MethodOptions {
				return c.NoContent(http.StatusNoContent)
			}

			return next(c)
		}
	}
}
