package httputil

import (
	"net/http"

	"github.com/darkkaiser/notify-relay/internal/service/api/constants"
	"github.com/darkkaiser/notify-relay/internal/service/api/model/response"
	applog "github.com/darkkaiser/notify-relay/pkg/log"
	"github.com/labstack/echo/v4"
)

// ErrorHandler Echo 프레임워크의 전역 에러 핸들러입니다.
//
// 모든 에러를 {error, message} 형식의 JSON으로 변환합니다.
// echo.HTTPError가 아닌 에러는 500 Internal server error로 취급합니다.
func ErrorHandler(err error, c echo.Context) {
	code := http.StatusInternalServerError
	body := response.ErrorResponse{
		Error:   constants.ErrorTypeInternalServer,
		Message: err.Error(),
	}

	if he, ok := err.(*echo.HTTPError); ok {
		code = he.Code
		switch msg := he.Message.(type) {
		case response.ErrorResponse:
			body = msg
		case string:
			body = response.ErrorResponse{Error: errorType(code), Message: msg}
		default:
			body = response.ErrorResponse{Error: errorType(code), Message: http.StatusText(code)}
		}
	}

	fields := applog.Fields{
		"path":        c.Request().URL.Path,
		"method":      c.Request().Method,
		"status_code": code,
		"error":       err,
		"remote_ip":   c.RealIP(),
		"request_id":  c.Response().Header().Get(echo.HeaderXRequestID),
	}

	if code >= http.StatusInternalServerError {
		applog.WithComponentAndFields(constants.ComponentErrorHandler, fields).Error("HTTP 5xx 서버 오류")
	} else if code >= http.StatusBadRequest {
		applog.WithComponentAndFields(constants.ComponentErrorHandler, fields).Warn("HTTP 4xx 클라이언트 오류")
	}

	if c.Response().Committed {
		return
	}

	if c.Request().Method == http.MethodHead {
		_ = c.NoContent(code)
		return
	}

	_ = c.JSON(code, body)
}

func errorType(code int) string {
	switch code {
	case http.StatusBadRequest:
		return constants.ErrorTypeBadRequest
	case http.StatusInternalServerError:
		return constants.ErrorTypeInternalServer
	}
	return http.StatusText(code)
}
