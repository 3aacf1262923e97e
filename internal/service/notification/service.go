package notification

import (
	"context"
	"time"

	"github.com/darkkaiser/notify-relay/internal/metrics"
	apperrors "github.com/darkkaiser/notify-relay/internal/pkg/errors"
	applog "github.com/darkkaiser/notify-relay/pkg/log"
	"github.com/tidwall/gjson"
)

const component = "notification.service"

// Service 알림 요청 하나를 처리하는 오케스트레이터입니다.
//
// 요청 간에 공유하는 가변 상태가 없으므로 여러 고루틴에서 동시에 호출할 수 있습니다.
type Service struct {
	resolver Resolver
	sender   Sender
	logger   applog.FieldLogger
}

// NewService 새로운 Service를 생성합니다.
func NewService(resolver Resolver, sender Sender, logger applog.FieldLogger) *Service {
	if resolver == nil {
		panic("notification: Resolver는 필수입니다")
	}
	if sender == nil {
		panic("notification: Sender는 필수입니다")
	}

	return &Service{
		resolver: resolver,
		sender:   sender,
		logger:   applog.Component(logger, component),
	}
}

// ParseRequest 요청 본문을 검증하고 Request로 변환합니다. recipients가 없으면 기본 수신자로 채웁니다.
func ParseRequest(body []byte) (*Request, error) {
	if result := ValidateRequest(body); !result.Valid {
		return nil, NewValidationError(result.Message)
	}

	doc := gjson.ParseBytes(body)
	req := &Request{
		Subject: lastField(doc, "subject").Str,
		Message: lastField(doc, "message").Str,
	}

	if recipients := lastField(doc, "recipients"); recipients.Exists() {
		for _, r := range recipients.Array() {
			req.Recipients = append(req.Recipients, r.Str)
		}
	} else {
		req.Recipients = []string{DefaultRecipient}
	}

	return req, nil
}

// Handle 요청 본문을 검증한 뒤 알림을 발송합니다.
// 검증에 실패하면 ValidationError를 반환하며, 발송 실패는 에러가 아니라 Result.Errors에 기록됩니다.
func (s *Service) Handle(ctx context.Context, body []byte) (*Result, error) {
	req, err := ParseRequest(body)
	if err != nil {
		s.logger.WithField("reason", apperrors.MessageOf(err)).Debug("알림 요청 검증 실패")
		return nil, err
	}

	return s.Notify(ctx, req), nil
}

// Notify 검증된 요청의 수신자를 해석하고, 주소마다 순차적으로 메일을 발송합니다.
//
// 한 수신자의 실패는 다음 수신자의 발송을 막지 않습니다.
// Context가 취소되어도 남은 수신자에 대한 시도는 계속되며, 각 시도는 Context 에러로 실패합니다.
func (s *Service) Notify(ctx context.Context, req *Request) *Result {
	started := time.Now()

	labels := req.Recipients
	if len(labels) == 0 {
		labels = []string{DefaultRecipient}
	}

	contacts := s.resolver.Resolve(labels)

	result := &Result{
		Success: true,
		Sent:    Sent{Email: []string{}, SMS: []string{}},
		Errors:  []SendError{},
	}

	for _, address := range contacts.Email {
		if _, err := s.sender.Send(ctx, address, req.Subject, req.Message); err != nil {
			result.Errors = append(result.Errors, SendError{
				Type:      ChannelEmail,
				Recipient: address,
				Error:     apperrors.Describe(err),
			})
			continue
		}
		result.Sent.Email = append(result.Sent.Email, address)
	}

	outcome := summarize(result)
	metrics.NotificationsTotal.WithLabelValues(outcome).Inc()

	s.logger.WithFields(applog.Fields{
		"labels":   labels,
		"resolved": len(contacts.Email),
		"sent":     len(result.Sent.Email),
		"failed":   len(result.Errors),
		"outcome":  outcome,
		"duration": time.Since(started).String(),
	}).Info("알림 요청 처리 완료")

	return result
}

// summarize 발송 결과로부터 success와 message를 결정하고, 메트릭 라벨로 사용할 outcome을 반환합니다.
func summarize(result *Result) string {
	sentAny := len(result.Sent.Email) > 0 || len(result.Sent.SMS) > 0

	switch {
	case len(result.Errors) == 0:
		result.Success = true
		result.Message = MessageAllSent
		return metrics.OutcomeSuccess

	case sentAny:
		result.Success = false
		result.Message = MessagePartial
		return metrics.OutcomePartial

	default:
		result.Success = false
		result.Message = MessageAllFailed
		return metrics.OutcomeFailed
	}
}
