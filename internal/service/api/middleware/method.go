package middleware

import (
	"net/http"

	"github.com/darkkaiser/notify-relay/internal/service/api/constants"
	"github.com/labstack/echo/v4"
)

// AllowMethod 지정한 메서드 이외의 요청을 405 text/plain "Method not allowed"로 거부합니다.
func AllowMethod(method string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if c.Request().Method != method {
				return c.String(http.StatusMethodNotAllowed, constants.MsgMethodNotAllowed)
			}
			return next(c)
		}
	}
}
