package middleware

import (
	"net/http"

	"github.com/darkkaiser/notify-relay/internal/service/api/auth"
	"github.com/darkkaiser/notify-relay/internal/service/api/constants"
	applog "github.com/darkkaiser/notify-relay/pkg/log"
	"github.com/labstack/echo/v4"
)

// RequireAuthentication Authorization 헤더를 인증 게이트로 검사합니다.
// 실패하면 실패 사유를 본문으로 하는 401 text/plain 응답을 반환합니다.
func RequireAuthentication(gate *auth.Gate) echo.MiddlewareFunc {
	if gate == nil {
		panic(constants.PanicMsgAuthGateRequired)
	}

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			result := gate.Check(c.Request().Header.Get(echo.HeaderAuthorization))
			if !result.Valid {
				applog.WithComponentAndFields(constants.ComponentMiddlewareAuthentication, applog.Fields{
					"remote_ip": c.RealIP(),
					"reason":    result.Message,
				}).Warn("인증 실패")

				return c.String(http.StatusUnauthorized, result.Message)
			}

			return next(c)
		}
	}
}
