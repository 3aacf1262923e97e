package middleware

import (
	"fmt"
	"runtime"

	apperrors "github.com/darkkaiser/notify-relay/internal/pkg/errors"
	"github.com/darkkaiser/notify-relay/internal/service/api/constants"
	applog "github.com/darkkaiser/notify-relay/pkg/log"
	"github.com/labstack/echo/v4"
)

// stackBufferSize panic 발생 시 스택 트레이스를 저장할 버퍼 크기 (4KB)
const stackBufferSize = 4 << 10

// PanicRecovery 핸들러에서 발생한 panic을 복구하고, 스택 트레이스와 함께 로깅한 뒤 에러 핸들러로 넘깁니다.
func PanicRecovery() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) (err error) {
			defer func() {
				r := recover()
				if r == nil {
					return
				}

				panicErr, ok := r.(error)
				if !ok {
					panicErr = apperrors.New(apperrors.Internal, fmt.Sprintf("%v", r))
				}

				stack := make([]byte, stackBufferSize)
				length := runtime.Stack(stack, false)

				fields := applog.Fields{
					"error": panicErr,
					"stack": string(stack[:length]),
				}
				if requestID := c.Response().Header().Get(echo.HeaderXRequestID); requestID != "" {
					fields["request_id"] = requestID
				}

				applog.WithComponentAndFields(constants.ComponentMiddlewarePanicRecovery, fields).Error("PANIC RECOVERED")

				c.Error(panicErr)
				err = nil
			}()

			return next(c)
		}
	}
}
