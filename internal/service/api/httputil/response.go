// Package httputil 표준 오류 응답 생성과 전역 에러 핸들러를 제공합니다.
package httputil

import (
	"net/http"

	"github.com/darkkaiser/notify-relay/internal/service/api/constants"
	"github.com/darkkaiser/notify-relay/internal/service/api/model/response"
	"github.com/labstack/echo/v4"
)

// NewBadRequestError 400 Bad Request 에러를 생성합니다.
func NewBadRequestError(message string) error {
	return echo.NewHTTPError(http.StatusBadRequest, response.ErrorResponse{
		Error:   constants.ErrorTypeBadRequest,
		Message: message,
	})
}

// NewInternalServerError 500 Internal Server Error 에러를 생성합니다.
func NewInternalServerError(message string) error {
	return echo.NewHTTPError(http.StatusInternalServerError, response.ErrorResponse{
		Error:   constants.ErrorTypeInternalServer,
		Message: message,
	})
}

// PlainText CORS 헤더가 이미 설정된 응답에 text/plain 본문을 씁니다. 401, 405 응답에 사용합니다.
func PlainText(c echo.Context, code int, message string) error {
	return c.String(code, message)
}
