// Package handler 알림 발송 엔드포인트 핸들러를 제공합니다.
package handler

import (
	"context"
	"errors"
	"io"
	"net/http"

	apperrors "github.com/darkkaiser/notify-relay/internal/pkg/errors"
	"github.com/darkkaiser/notify-relay/internal/service/api/constants"
	"github.com/darkkaiser/notify-relay/internal/service/api/httputil"
	"github.com/darkkaiser/notify-relay/internal/service/notification"
	applog "github.com/darkkaiser/notify-relay/pkg/log"
	"github.com/labstack/echo/v4"
)

// Notifier 요청 본문을 받아 알림을 발송하고 집계 결과를 반환합니다. notification.Service가 구현합니다.
type Notifier interface {
	Handle(ctx context.Context, body []byte) (*notification.Result, error)
}

var _ Notifier = (*notification.Service)(nil)

// NotificationHandler 알림 발송 요청을 처리합니다.
type NotificationHandler struct {
	notifier Notifier
}

// NewNotificationHandler NotificationHandler 인스턴스를 생성합니다.
func NewNotificationHandler(notifier Notifier) *NotificationHandler {
	if notifier == nil {
		panic(constants.PanicMsgNotifierRequired)
	}

	return &NotificationHandler{notifier: notifier}
}

// SendNotificationHandler godoc
// @Summary 알림 발송
// @Description 수신자 라벨을 연락처 주소로 해석한 뒤, 주소마다 메일을 발송하고 결과를 집계합니다.
// @Description recipients를 생략하면 personal로 발송합니다.
// @Description 일부 수신자에게만 실패해도 200으로 응답하며, 실패 내역은 errors에 담깁니다.
// @Tags Notification
// @Accept json
// @Produce json
// @Param Authorization header string false "Bearer 토큰 (인증 활성화 시 필수)"
// @Param request body notification.Request true "알림 요청"
// @Success 200 {object} notification.Result "발송 결과"
// @Failure 400 {object} response.ErrorResponse "요청 본문 검증 실패"
// @Failure 401 {string} string "인증 실패"
// @Failure 405 {string} string "Method not allowed"
// @Failure 500 {object} response.ErrorResponse "서버 내부 오류"
// @Router / [post]
func (h *NotificationHandler) SendNotificationHandler(c echo.Context) error {
	body, err := io.ReadAll(c.Request().Body)
	if err != nil {
		var he *echo.HTTPError
		if errors.As(err, &he) {
			return he
		}
		return httputil.NewInternalServerError(err.Error())
	}

	result, err := h.notifier.Handle(c.Request().Context(), body)
	if err != nil {
		if notification.IsValidationError(err) {
			return httputil.NewBadRequestError(apperrors.MessageOf(err))
		}

		applog.WithComponentAndFields(constants.ComponentHandler, applog.Fields{
			"remote_ip": c.RealIP(),
			"error":     err,
		}).Error("알림 요청 처리 중 예상치 못한 오류가 발생하였습니다")

		return httputil.NewInternalServerError(apperrors.Describe(err))
	}

	return c.JSON(http.StatusOK, result)
}
